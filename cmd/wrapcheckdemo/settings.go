package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix prefixes the environment variables that stand in for flags,
// for example WRAPCHECK_WIDTH or WRAPCHECK_LOG_LEVEL.
const envPrefix = "WRAPCHECK"

// settings are the resolved command line settings.
type settings struct {
	window   string
	width    int
	output   string
	logLevel string
	shaper   string
	watch    bool
	clicks   []string
}

// loadSettings resolves the flags in fs. A flag given on the command line
// wins over its environment variable, which wins over the flag default.
func loadSettings(fs *pflag.FlagSet) (settings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return settings{}, fmt.Errorf("wrapcheckdemo: bind flags: %w", err)
	}

	clicks, err := fs.GetStringSlice("click")
	if err != nil {
		return settings{}, fmt.Errorf("wrapcheckdemo: %w", err)
	}
	return settings{
		window:   v.GetString("window"),
		width:    v.GetInt("width"),
		output:   v.GetString("output"),
		logLevel: v.GetString("log-level"),
		shaper:   v.GetString("shaper"),
		watch:    v.GetBool("watch"),
		clicks:   clicks,
	}, nil
}
