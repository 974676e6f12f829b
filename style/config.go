package style

import (
	"errors"
	"fmt"
	"image/color"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/wrapcheck/geom"
	"github.com/gogpu/wrapcheck/paint"
)

// ErrInvalidConfig is returned for configurations with negative metrics.
var ErrInvalidConfig = errors.New("style: invalid config")

// Color is a color that reads and writes itself as a hex string in YAML.
type Color struct {
	color.NRGBA
}

// HexColor parses a hex color, panicking on malformed input.
// It is meant for package-level defaults.
func HexColor(s string) Color {
	c, err := paint.ParseHex(s)
	if err != nil {
		panic(err)
	}
	return Color{c}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("style: line %d: color must be a string: %w", value.Line, err)
	}
	n, err := paint.ParseHex(s)
	if err != nil {
		return fmt.Errorf("style: line %d: %w", value.Line, err)
	}
	c.NRGBA = n
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) {
	return paint.HexString(c.NRGBA), nil
}

// Palette holds the colors a style paints with.
type Palette struct {
	Window       Color `yaml:"window"`
	Base         Color `yaml:"base"`
	Border       Color `yaml:"border"`
	Indicator    Color `yaml:"indicator"`
	Text         Color `yaml:"text"`
	DisabledText Color `yaml:"disabled_text"`
	Light        Color `yaml:"light"`
	Focus        Color `yaml:"focus"`
}

// DefaultPalette returns the light palette used by DefaultConfig.
func DefaultPalette() Palette {
	return Palette{
		Window:       HexColor("#efefef"),
		Base:         HexColor("#ffffff"),
		Border:       HexColor("#767676"),
		Indicator:    HexColor("#1e1e1e"),
		Text:         HexColor("#000000"),
		DisabledText: HexColor("#a0a0a0"),
		Light:        HexColor("#ffffff"),
		Focus:        HexColor("#000000"),
	}
}

// Config holds the metrics, hints and palette of a Common style.
type Config struct {
	IndicatorWidth    int  `yaml:"indicator_width"`
	IndicatorHeight   int  `yaml:"indicator_height"`
	LabelSpacing      int  `yaml:"label_spacing"`
	FocusFrameHMargin int  `yaml:"focus_frame_hmargin"`
	FocusFrameVMargin int  `yaml:"focus_frame_vmargin"`
	ButtonIconSize    int  `yaml:"button_icon_size"`
	UnderlineShortcut bool `yaml:"underline_shortcut"`
	EtchDisabledText  bool `yaml:"etch_disabled_text"`
	StrutWidth        int  `yaml:"strut_width"`
	StrutHeight       int  `yaml:"strut_height"`

	Palette Palette `yaml:"palette"`
}

// DefaultConfig returns the metrics of the classic desktop check box.
func DefaultConfig() Config {
	return Config{
		IndicatorWidth:    13,
		IndicatorHeight:   13,
		LabelSpacing:      6,
		FocusFrameHMargin: 2,
		FocusFrameVMargin: 1,
		ButtonIconSize:    16,
		UnderlineShortcut: true,
		EtchDisabledText:  true,
		Palette:           DefaultPalette(),
	}
}

// DecodeConfig decodes YAML on top of DefaultConfig, so a document only
// needs the fields it changes. Empty input yields the defaults.
func DecodeConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("style: failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports an error wrapping ErrInvalidConfig for negative metrics.
func (c Config) Validate() error {
	metrics := []struct {
		name  string
		value int
	}{
		{"indicator_width", c.IndicatorWidth},
		{"indicator_height", c.IndicatorHeight},
		{"label_spacing", c.LabelSpacing},
		{"focus_frame_hmargin", c.FocusFrameHMargin},
		{"focus_frame_vmargin", c.FocusFrameVMargin},
		{"button_icon_size", c.ButtonIconSize},
		{"strut_width", c.StrutWidth},
		{"strut_height", c.StrutHeight},
	}
	for _, m := range metrics {
		if m.value < 0 {
			return fmt.Errorf("%w: %s is %d", ErrInvalidConfig, m.name, m.value)
		}
	}
	return nil
}

// Strut returns the global strut as a size.
func (c Config) Strut() geom.Size {
	return geom.Sz(c.StrutWidth, c.StrutHeight)
}
