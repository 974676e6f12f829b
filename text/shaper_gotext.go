package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/wrapcheck/geom"
	"github.com/gogpu/wrapcheck/internal/cache"
)

// fontCacheSize bounds the number of parsed fonts a GoTextShaper keeps.
const fontCacheSize = 16

// GoTextShaper shapes text with the HarfBuzz port of go-text/typesetting,
// applying ligatures and kerning. Mixed text is split into runs of one
// script and one bidi level before shaping.
//
// Only faces created by a FontSource can be shaped; for any other Face,
// Shape returns nil and the face falls back to its own advances.
//
// GoTextShaper is safe for concurrent use.
type GoTextShaper struct {
	states sync.Pool
	fonts  *cache.Cache[*FontSource, *font.Font]
}

// shapeState is the non-reentrant part of a Shape call.
type shapeState struct {
	hb  shaping.HarfbuzzShaper
	seg shaping.Segmenter
}

// shapeSource is implemented by faces backed by a FontSource.
type shapeSource interface {
	Source() *FontSource
	Size() float64
	Direction() geom.Direction
	Language() string
}

// singleFace resolves every rune to the same face.
type singleFace struct{ face *font.Face }

func (f singleFace) ResolveFace(rune) *font.Face { return f.face }

// NewGoTextShaper creates a GoTextShaper.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		states: sync.Pool{New: func() any { return new(shapeState) }},
		fonts:  cache.New[*FontSource, *font.Font](fontCacheSize),
	}
}

// Shape implements the Shaper interface.
func (s *GoTextShaper) Shape(text string, face Face) []ShapedGlyph {
	if text == "" || face == nil {
		return nil
	}
	sf, ok := face.(shapeSource)
	if !ok || sf.Source() == nil {
		return nil
	}
	f := s.parsedFont(sf.Source())
	if f == nil {
		return nil
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunEnd:    len(runes),
		Direction: mapDirection(sf.Direction()),
		Face:      font.NewFace(f),
		Size:      floatToFixed(sf.Size()),
		Script:    detectScript(runes),
		Language:  language.NewLanguage(sf.Language()),
	}

	st := s.states.Get().(*shapeState)
	defer s.states.Put(st)

	var glyphs []shaping.Glyph
	for _, run := range st.seg.Split(input, singleFace{input.Face}) {
		glyphs = append(glyphs, st.hb.Shape(run).Glyphs...)
	}
	return convertGlyphs(glyphs)
}

// parsedFont returns the parsed font of source, or nil if source is closed or
// its data does not parse.
func (s *GoTextShaper) parsedFont(source *FontSource) *font.Font {
	if f, ok := s.fonts.Get(source); ok {
		return f
	}
	data := source.bytes()
	if data == nil {
		return nil
	}
	parsed, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	s.fonts.Set(source, parsed.Font)
	return parsed.Font
}

// RemoveSource drops the parsed font of source, typically after Close.
func (s *GoTextShaper) RemoveSource(source *FontSource) {
	s.fonts.Delete(source)
}

// mapDirection converts a layout direction to a shaping direction.
func mapDirection(d geom.Direction) di.Direction {
	if d == geom.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space character.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertGlyphs lays out glyphs left to right from x = 0.
func convertGlyphs(glyphs []shaping.Glyph) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}
	result := make([]ShapedGlyph, len(glyphs))
	var x float64
	for i, g := range glyphs {
		adv := fixedToFloat64(g.Advance)
		result[i] = ShapedGlyph{
			GID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // TrueType glyph IDs fit in uint16
			Cluster:  g.TextIndex(),
			X:        x + fixedToFloat64(g.XOffset),
			Y:        fixedToFloat64(g.YOffset),
			XAdvance: adv,
		}
		x += adv
	}
	return result
}
