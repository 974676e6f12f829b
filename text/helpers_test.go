package text

import (
	"image"
	"testing"
	"unicode/utf8"

	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"
)

// fixedFace advances every rune by 7 px and has a 16 px line height.
type fixedFace struct{}

func newFixedFace() Face { return fixedFace{} }

func (fixedFace) Metrics() Metrics {
	return Metrics{Ascent: 12, Descent: 4}
}

func (fixedFace) Advance(s string) float64 {
	return float64(7 * utf8.RuneCountInString(s))
}

func (fixedFace) Draw(dst draw.Image, src image.Image, x, y float64, s string) {
	px := int(x)
	for _, r := range s {
		if r != ' ' {
			box := image.Rect(px+1, int(y)-10, px+6, int(y))
			draw.Draw(dst, box, src, box.Min, draw.Over)
		}
		px += 7
	}
}

// goRegularFace returns a Go Regular face at size pixels.
func goRegularFace(t *testing.T, size float64, opts ...FaceOption) Face {
	t.Helper()

	face, err := GoRegular(size, opts...)
	if err != nil {
		t.Fatalf("GoRegular(%v) failed: %v", size, err)
	}
	return face
}

// goRegularData returns a private copy of the Go Regular font file.
func goRegularData() []byte {
	return append([]byte(nil), goregular.TTF...)
}
