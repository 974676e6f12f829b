// Command wrapcheckdemo lays out a column of word-wrapping check boxes and
// renders it to a PNG file.
package main

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gogpu/wrapcheck"
	"github.com/gogpu/wrapcheck/paint"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wrapcheckdemo [window.yaml]",
		Short: "Render a column of word-wrapping check boxes",
		Long: `Render a column of word-wrapping check boxes to a PNG file.

The window is read from a YAML file; without one a built-in window is used.
Clicks are applied in window coordinates before rendering. Every flag can
also be set from the environment, for example WRAPCHECK_WIDTH=140.

Examples:
  wrapcheckdemo                          # built-in window, 240 px wide
  wrapcheckdemo --width 140 -o narrow.png
  wrapcheckdemo window.yaml --click 20,30 --log-level debug
  wrapcheckdemo --shaper harfbuzz        # measure with HarfBuzz shaping
  wrapcheckdemo window.yaml --watch      # re-render on every save
  wrapcheckdemo schema > window.schema.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd.Flags())
			if err != nil {
				return err
			}
			if len(args) > 0 {
				s.window = args[0]
			}
			return run(cmd, s)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringP("window", "f", "", "YAML window description")
	cmd.Flags().IntP("width", "w", 0, "window width in pixels (default from the window)")
	cmd.Flags().StringP("output", "o", "wrapcheck.png", "output PNG file")
	cmd.Flags().String("log-level", "info", "log level: debug, info, warn or error")
	cmd.Flags().String("shaper", "", "text shaper: builtin or harfbuzz (default from the window)")
	cmd.Flags().StringSlice("click", nil, "click at x,y before rendering (repeatable)")
	cmd.Flags().Bool("watch", false, "re-render whenever the window file changes")
	cmd.AddCommand(newSchemaCmd())
	return cmd
}

func run(cmd *cobra.Command, s settings) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", s.logLevel, err)
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	wrapcheck.SetLogger(logger)

	if s.watch && s.window == "" {
		return errWatchWithoutFile
	}
	clicks, err := parseClicks(s.clicks)
	if err != nil {
		return err
	}

	renderFile := func() error {
		win := builtinWindow()
		if s.window != "" {
			var err error
			if win, err = LoadWindow(s.window); err != nil {
				return err
			}
		}
		if s.width > 0 {
			win.Width = s.width
		}
		if s.shaper != "" {
			win.Shaper = s.shaper
			if err := win.Validate(); err != nil {
				return err
			}
		}
		c, err := render(win, clicks, logger)
		if err != nil {
			return err
		}
		if err := c.SavePNG(s.output); err != nil {
			return err
		}
		logger.Info("saved", "title", win.Title, "shaper", win.Shaper, "file", s.output, "width", c.Width(), "height", c.Height())
		return nil
	}

	if err := renderFile(); err != nil {
		return err
	}
	if !s.watch {
		return nil
	}
	return watchWindow(cmd.Context(), s.window, renderFile, logger)
}

// render lays win out at its width, applies clicks and paints it.
func render(win Window, clicks []image.Point, logger *slog.Logger) (*paint.Canvas, error) {
	col, boxes, err := win.Build(nil)
	if err != nil {
		return nil, err
	}

	h := max(col.HeightForWidth(win.Width), col.MinimumSizeHint().H)
	col.SetGeometry(image.Rect(0, 0, win.Width, h))

	for _, p := range clicks {
		hit := col.HandleClick(p)
		logger.Info("click", "pos", p, "hit", hit)
	}
	for i, cb := range boxes {
		r := cb.Rects()
		logger.Debug("checkbox",
			"index", i,
			"geometry", cb.Geometry(),
			"state", cb.CheckState(),
			"size_hint", cb.SizeHint(),
			"minimum_size_hint", cb.MinimumSizeHint(),
			"focus", r.Focus,
			"hit", r.Hit)
	}

	pal := win.Style.Palette
	c := paint.NewCanvas(win.Width, h)
	c.Clear(pal.Window)
	col.Paint(c)
	return c, nil
}

// parseClicks parses "x,y" pairs.
func parseClicks(in []string) ([]image.Point, error) {
	pts := make([]image.Point, 0, len(in)/2)
	// StringSlice splits on commas, so "20,30" arrives as two values.
	var coords []string
	for _, s := range in {
		coords = append(coords, strings.Split(s, ",")...)
	}
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("invalid --click %q: want x,y pairs", strings.Join(in, ","))
	}
	for i := 0; i < len(coords); i += 2 {
		x, err := strconv.Atoi(strings.TrimSpace(coords[i]))
		if err != nil {
			return nil, fmt.Errorf("invalid --click x %q: %w", coords[i], err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(coords[i+1]))
		if err != nil {
			return nil, fmt.Errorf("invalid --click y %q: %w", coords[i+1], err)
		}
		pts = append(pts, image.Pt(x, y))
	}
	return pts, nil
}
