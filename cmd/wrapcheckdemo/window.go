package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/wrapcheck"
	"github.com/gogpu/wrapcheck/geom"
	"github.com/gogpu/wrapcheck/layout"
	"github.com/gogpu/wrapcheck/paint"
	"github.com/gogpu/wrapcheck/style"
	"github.com/gogpu/wrapcheck/text"
)

// Shaper names accepted in window files.
const (
	ShaperBuiltin  = "builtin"
	ShaperHarfBuzz = "harfbuzz"
)

// ErrInvalidWindow is returned for window files that decode but make no
// sense.
var ErrInvalidWindow = errors.New("wrapcheckdemo: invalid window")

// Window describes the demo window: a column of check boxes.
type Window struct {
	Title    string         `yaml:"title"`
	Width    int            `yaml:"width" jsonschema:"minimum=1"`
	Margins  int            `yaml:"margins" jsonschema:"minimum=0"`
	Spacing  int            `yaml:"spacing" jsonschema:"minimum=0"`
	FontSize float64        `yaml:"font_size" jsonschema:"exclusiveMinimum=0"`
	Shaper   string         `yaml:"shaper" jsonschema:"enum=builtin,enum=harfbuzz"`
	Style    style.Config   `yaml:"style"`
	Boxes    []CheckBoxSpec `yaml:"checkboxes"`
}

// CheckBoxSpec describes one check box of the window.
type CheckBoxSpec struct {
	Text      string      `yaml:"text"`
	Checked   bool        `yaml:"checked"`
	Tristate  bool        `yaml:"tristate"`
	Partial   bool        `yaml:"partial"`
	Disabled  bool        `yaml:"disabled"`
	Focus     bool        `yaml:"focus"`
	Direction string      `yaml:"direction"`
	Shortcut  string      `yaml:"shortcut"`
	Icon      style.Color `yaml:"icon"`
}

// defaultWindow returns the window fields a file does not set.
func defaultWindow() Window {
	return Window{
		Title:    "wrapcheck",
		Width:    240,
		Margins:  9,
		Spacing:  6,
		FontSize: 13,
		Shaper:   ShaperBuiltin,
		Style:    style.DefaultConfig(),
	}
}

// builtinWindow is shown when no window file is given.
func builtinWindow() Window {
	w := defaultWindow()
	w.Boxes = []CheckBoxSpec{
		{Text: "Short"},
		{Text: "A check box with a long label that wraps onto several lines when the window is narrow", Checked: true},
		{Text: "&Remember my choice for all files of this type", Focus: true},
		{Text: "Icon next to a wrapped label, drawn between the indicator and the text", Icon: style.HexColor("#3daee9")},
		{Text: "Tristate, partially checked", Tristate: true, Partial: true},
		{Text: "Disabled entries keep their geometry and draw etched text", Disabled: true, Checked: true},
		{Text: "Right-to-left layout puts the indicator on the right", Direction: "rtl"},
	}
	return w
}

// DecodeWindow decodes a YAML window description on top of the defaults.
func DecodeWindow(data []byte) (Window, error) {
	w := defaultWindow()
	if err := yaml.Unmarshal(data, &w); err != nil {
		return Window{}, fmt.Errorf("wrapcheckdemo: failed to parse window: %w", err)
	}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

// LoadWindow reads and decodes a window file.
func LoadWindow(path string) (Window, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Window{}, fmt.Errorf("wrapcheckdemo: read %s: %w", path, err)
	}
	w, err := DecodeWindow(data)
	if err != nil {
		return Window{}, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// Validate reports an error wrapping ErrInvalidWindow or
// style.ErrInvalidConfig.
func (w Window) Validate() error {
	switch {
	case w.Width <= 0:
		return fmt.Errorf("%w: width is %d", ErrInvalidWindow, w.Width)
	case w.Margins < 0:
		return fmt.Errorf("%w: margins is %d", ErrInvalidWindow, w.Margins)
	case w.Spacing < 0:
		return fmt.Errorf("%w: spacing is %d", ErrInvalidWindow, w.Spacing)
	case w.FontSize <= 0:
		return fmt.Errorf("%w: font_size is %g", ErrInvalidWindow, w.FontSize)
	case w.Shaper != ShaperBuiltin && w.Shaper != ShaperHarfBuzz:
		return fmt.Errorf("%w: unknown shaper %q", ErrInvalidWindow, w.Shaper)
	}
	for i, b := range w.Boxes {
		if b.Direction == "" {
			continue
		}
		if _, ok := geom.ParseDirection(b.Direction); !ok {
			return fmt.Errorf("%w: checkbox %d: unknown direction %q", ErrInvalidWindow, i, b.Direction)
		}
	}
	return w.Style.Validate()
}

// Build creates the check boxes of w and the column holding them.
// A nil face uses the Go Regular font at w.FontSize, measured with the
// shaper named by w.Shaper.
func (w Window) Build(face text.Face) (*layout.Column, []*wrapcheck.CheckBox, error) {
	st, err := style.NewCommon(w.Style)
	if err != nil {
		return nil, nil, err
	}
	if face == nil {
		var opts []text.FaceOption
		if w.Shaper == ShaperHarfBuzz {
			opts = append(opts, text.WithShaper(text.NewGoTextShaper()))
		}
		face, err = text.GoRegular(w.FontSize, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("wrapcheckdemo: load font: %w", err)
		}
	}

	col := layout.NewColumn(w.Spacing)
	col.SetContentsMargins(geom.Uniform(w.Margins))
	boxes := make([]*wrapcheck.CheckBox, 0, len(w.Boxes))
	for _, b := range w.Boxes {
		cb := b.checkBox(st, face)
		boxes = append(boxes, cb)
		col.Add(cb)
	}
	return col, boxes, nil
}

func (b CheckBoxSpec) checkBox(st style.Style, face text.Face) *wrapcheck.CheckBox {
	dir, _ := geom.ParseDirection(b.Direction)
	state := wrapcheck.Unchecked
	switch {
	case b.Partial:
		state = wrapcheck.PartiallyChecked
	case b.Checked:
		state = wrapcheck.Checked
	}
	opts := []wrapcheck.Option{
		wrapcheck.WithText(b.Text),
		wrapcheck.WithStyle(st),
		wrapcheck.WithFont(face),
		wrapcheck.WithLayoutDirection(dir),
		wrapcheck.WithEnabled(!b.Disabled),
		wrapcheck.WithTristate(b.Tristate),
		wrapcheck.WithCheckState(state),
	}
	if b.Shortcut != "" {
		opts = append(opts, wrapcheck.WithShortcut(b.Shortcut))
	}
	if b.Icon.A != 0 {
		n := st.PixelMetric(style.MetricButtonIconSize, nil)
		opts = append(opts, wrapcheck.WithIcon(paint.NewSolidIcon(n, b.Icon.NRGBA)))
	}
	cb := wrapcheck.New(opts...)
	cb.SetFocus(b.Focus)
	return cb
}
