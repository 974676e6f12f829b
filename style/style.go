package style

import (
	"image"

	"github.com/gogpu/wrapcheck/geom"
	"github.com/gogpu/wrapcheck/paint"
	"github.com/gogpu/wrapcheck/text"
)

// PixelMetric names a style-dependent distance.
type PixelMetric int

const (
	MetricIndicatorWidth PixelMetric = iota
	MetricIndicatorHeight
	MetricCheckBoxLabelSpacing
	MetricFocusFrameHMargin
	MetricFocusFrameVMargin
	MetricButtonIconSize
)

// SubElement names a sub-rectangle of a control.
type SubElement int

const (
	SubElementCheckBoxIndicator SubElement = iota
	SubElementCheckBoxContents
	SubElementCheckBoxFocusRect
)

// Hint names a boolean style behavior.
type Hint int

const (
	// HintUnderlineShortcut reports whether mnemonics are underlined.
	HintUnderlineShortcut Hint = iota
	// HintEtchDisabledText reports whether disabled text gets a light shadow.
	HintEtchDisabledText
)

// Primitive names an element drawn by DrawPrimitive.
type Primitive int

const (
	PrimitiveFocusRect Primitive = iota
	PrimitiveIndicatorCheckBox
)

// Control names a complete control drawn by DrawControl.
type Control int

const (
	// ControlCheckBox draws the indicator, the label and the focus frame.
	ControlCheckBox Control = iota
	// ControlCheckBoxLabel draws only the icon and text.
	ControlCheckBoxLabel
)

// State holds the state flags of a styled control.
type State uint32

const (
	StateEnabled State = 1 << iota
	StateHasFocus
	StateOn
	StateOff
	StateNoChange
)

// Has reports whether every flag in o is set in s.
func (s State) Has(o State) bool {
	return s&o == o
}

// Option describes the control a style query is about.
type Option struct {
	// Rect is the control rectangle in its own coordinates.
	Rect      image.Rectangle
	Direction geom.Direction
	State     State
	Text      string
	Icon      *paint.Icon
	IconSize  geom.Size
	Palette   Palette
	// Font lays out Text; nil means the default face.
	Font *text.Measurer
}

// Style is the set of style queries and drawing operations a check box uses.
type Style interface {
	PixelMetric(m PixelMetric, opt *Option) int
	SubElementRect(e SubElement, opt *Option) image.Rectangle
	StyleHint(h Hint, opt *Option) bool

	// VisualAlignment resolves a logical alignment for dir.
	VisualAlignment(dir geom.Direction, a geom.Alignment) geom.Alignment
	// ItemPixmapRect places a pixmap of the given size inside r.
	// a must already be a visual alignment.
	ItemPixmapRect(r image.Rectangle, a geom.Alignment, size geom.Size) image.Rectangle
	// GlobalStrut is the smallest size any widget may report.
	GlobalStrut() geom.Size
	// Palette returns the default colors of the style.
	Palette() Palette

	DrawPrimitive(pe Primitive, opt *Option, p paint.Painter)
	DrawControl(ce Control, opt *Option, p paint.Painter)
	DrawItemPixmap(p paint.Painter, r image.Rectangle, a geom.Alignment, pm image.Image)
	DrawItemText(p paint.Painter, r image.Rectangle, flags text.Flags, pal Palette, enabled bool, s string, m *text.Measurer)
}
