package text

// GlyphID is a unique identifier for a glyph within a font.
// The glyph ID is assigned by the font file and is font-specific.
type GlyphID uint16

// ShapedGlyph is a positioned glyph produced by a Shaper.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the source character index in the original text.
	Cluster int

	// X is the horizontal position relative to the text origin.
	X float64

	// Y is the vertical position relative to the baseline.
	Y float64

	// XAdvance is the horizontal advance to the next glyph.
	XAdvance float64

	// YAdvance is the vertical advance (for vertical text).
	YAdvance float64
}

// Shaper converts text to positioned glyphs.
// Implementations provide different levels of text shaping support:
//   - BuiltinShaper: per-rune advances from the face, no kerning
//   - GoTextShaper: HarfBuzz shaping via go-text/typesetting
type Shaper interface {
	// Shape converts text into positioned glyphs using the given face.
	// It returns nil when the face cannot be shaped by this implementation.
	Shape(text string, face Face) []ShapedGlyph
}

// BuiltinShaper positions each rune at the advance of the previous one.
// Ligatures, kerning pairs and right-to-left reordering are not applied.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
func (BuiltinShaper) Shape(text string, face Face) []ShapedGlyph {
	if text == "" || face == nil {
		return nil
	}

	result := make([]ShapedGlyph, 0, len(text))
	var x float64
	cluster := 0
	for _, r := range text {
		advance := runeAdvance(face, r)
		result = append(result, ShapedGlyph{
			Cluster:  cluster,
			X:        x,
			XAdvance: advance,
		})
		x += advance
		cluster++
	}
	return result
}

// runeAdvancer is implemented by faces that can report a single glyph
// advance without going through a shaper.
type runeAdvancer interface {
	runeAdvance(r rune) float64
}

// runeAdvance returns the advance of r in face.
func runeAdvance(face Face, r rune) float64 {
	if ra, ok := face.(runeAdvancer); ok {
		return ra.runeAdvance(r)
	}
	return face.Advance(string(r))
}
