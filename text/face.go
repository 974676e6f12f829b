package text

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/wrapcheck/geom"
)

// Face represents a font face at a specific size.
// Faces are not safe for concurrent use; a widget tree owns its faces.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	Metrics() Metrics

	// Advance returns the total advance width of the text in pixels.
	Advance(s string) float64

	// Draw renders s with its baseline origin at (x, y).
	Draw(dst draw.Image, src image.Image, x, y float64, s string)
}

// NewFace adapts a golang.org/x/image/font.Face.
func NewFace(f font.Face) Face {
	return xfontFace{face: f}
}

// DefaultFace returns the fixed 7x13 bitmap face from x/image.
// It needs no font file and is used when a widget has no font configured.
func DefaultFace() Face {
	return NewFace(basicfont.Face7x13)
}

// xfontFace implements Face on top of an x/image font.Face.
type xfontFace struct {
	face font.Face
}

// Metrics implements Face.Metrics.
func (f xfontFace) Metrics() Metrics {
	m := f.face.Metrics()
	return Metrics{
		Ascent:    fixedToFloat64(m.Ascent),
		Descent:   fixedToFloat64(m.Descent),
		LineGap:   fixedToFloat64(m.Height - m.Ascent - m.Descent),
		XHeight:   fixedToFloat64(m.XHeight),
		CapHeight: fixedToFloat64(m.CapHeight),
	}
}

// Advance implements Face.Advance.
func (f xfontFace) Advance(s string) float64 {
	if s == "" {
		return 0
	}
	return fixedToFloat64(font.MeasureString(f.face, s))
}

// runeAdvance returns the advance of a single glyph, zero if it is missing.
func (f xfontFace) runeAdvance(r rune) float64 {
	adv, ok := f.face.GlyphAdvance(r)
	if !ok {
		return 0
	}
	return fixedToFloat64(adv)
}

// Draw implements Face.Draw.
func (f xfontFace) Draw(dst draw.Image, src image.Image, x, y float64, s string) {
	if s == "" {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: f.face,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}
	d.DrawString(s)
}

// sourceFace is a Face created from a FontSource.
type sourceFace struct {
	xfontFace
	source *FontSource
	ppem   float64
	config faceConfig
}

// Advance implements Face.Advance, using the configured shaper if any.
func (f *sourceFace) Advance(s string) float64 {
	if s == "" {
		return 0
	}
	if f.config.shaper != nil {
		if glyphs := f.config.shaper.Shape(s, f); len(glyphs) > 0 {
			var width float64
			for i := range glyphs {
				width += glyphs[i].XAdvance
			}
			return width
		}
	}
	return f.xfontFace.Advance(s)
}

// Source returns the FontSource this face was created from.
func (f *sourceFace) Source() *FontSource {
	return f.source
}

// Size returns the size of this face in pixels per em.
func (f *sourceFace) Size() float64 {
	return f.ppem
}

// Direction returns the shaping direction of this face.
func (f *sourceFace) Direction() geom.Direction {
	return f.config.direction
}

// Language returns the language tag used when shaping.
func (f *sourceFace) Language() string {
	return f.config.language
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

// floatToFixed converts a float64 to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
