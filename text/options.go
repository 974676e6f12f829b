package text

import (
	"golang.org/x/image/font"

	"github.com/gogpu/wrapcheck/geom"
)

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	name string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{}
}

// WithName overrides the family name read from the font file.
func WithName(name string) SourceOption {
	return func(c *sourceConfig) {
		c.name = name
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	direction geom.Direction
	hinting   font.Hinting
	language  string
	dpi       float64
	shaper    Shaper
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		direction: geom.LeftToRight,
		hinting:   font.HintingFull,
		language:  "en",
		dpi:       72,
	}
}

// WithDirection sets the text direction used when shaping.
func WithDirection(d geom.Direction) FaceOption {
	return func(c *faceConfig) {
		c.direction = d
	}
}

// WithHinting sets the hinting of the glyph outlines. The default is
// font.HintingFull, which snaps advances to whole pixels.
func WithHinting(h font.Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}

// WithLanguage sets the language tag for the face (e.g., "en", "ja", "ar").
func WithLanguage(lang string) FaceOption {
	return func(c *faceConfig) {
		c.language = lang
	}
}

// WithDPI sets the resolution the point size is scaled by. The default of 72
// makes one point one pixel.
func WithDPI(dpi float64) FaceOption {
	return func(c *faceConfig) {
		if dpi > 0 {
			c.dpi = dpi
		}
	}
}

// WithShaper measures advances with s instead of the face's own kerning
// tables. Pass NewGoTextShaper() for HarfBuzz shaping.
func WithShaper(s Shaper) FaceOption {
	return func(c *faceConfig) {
		c.shaper = s
	}
}
