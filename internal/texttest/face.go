// Package texttest provides a text.Face with fixed metrics for tests.
package texttest

import (
	"image"
	"unicode"
	"unicode/utf8"

	"golang.org/x/image/draw"

	"github.com/gogpu/wrapcheck/text"
)

// Face advances every rune by Advance pixels and reports Ascent and
// Descent as its only vertical metrics. Draw fills one box per visible rune.
type Face struct {
	AdvancePx int
	AscentPx  int
	DescentPx int
}

// New returns the face used by geometry tests: 7 px per rune and a line
// spacing of 16 px.
func New() *Face {
	return &Face{AdvancePx: 7, AscentPx: 12, DescentPx: 4}
}

// Metrics implements text.Face.
func (f *Face) Metrics() text.Metrics {
	return text.Metrics{
		Ascent:    float64(f.AscentPx),
		Descent:   float64(f.DescentPx),
		XHeight:   float64(f.AscentPx) / 2,
		CapHeight: float64(f.AscentPx),
	}
}

// Advance implements text.Face.
func (f *Face) Advance(s string) float64 {
	return float64(utf8.RuneCountInString(s) * f.AdvancePx)
}

// Draw implements text.Face.
func (f *Face) Draw(dst draw.Image, src image.Image, x, y float64, s string) {
	px, py := int(x), int(y)
	for _, r := range s {
		if !unicode.IsSpace(r) {
			box := image.Rect(px+1, py-f.AscentPx+2, px+f.AdvancePx-1, py)
			draw.Draw(dst, box, src, box.Min, draw.Over)
		}
		px += f.AdvancePx
	}
}

var _ text.Face = (*Face)(nil)
