package text

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource is a parsed font file. Faces of any size are created from it
// with Face; a source is meant to be loaded once and shared.
//
// FontSource is safe for concurrent use and must not be copied.
type FontSource struct {
	loaded atomic.Pointer[loadedFont]
	name   string
}

// loadedFont is the data a FontSource drops on Close.
type loadedFont struct {
	data []byte
	font *opentype.Font
}

// NewFontSource parses TrueType or OpenType data. The data is copied, so
// the caller may reuse it.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	data = append([]byte(nil), data...)
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &FontSource{name: config.name}
	if s.name == "" {
		s.name = familyName(f)
	}
	s.loaded.Store(&loadedFont{data: data, font: f})
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- the font path is chosen by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// Face creates a face at size points. It returns ErrSourceClosed after
// Close.
func (s *FontSource) Face(size float64, opts ...FaceOption) (Face, error) {
	l := s.loaded.Load()
	if l == nil {
		return nil, ErrSourceClosed
	}
	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	xf, err := opentype.NewFace(l.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     config.dpi,
		Hinting: config.hinting,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}
	return &sourceFace{
		xfontFace: xfontFace{face: xf},
		source:    s,
		ppem:      size * config.dpi / 72,
		config:    config,
	}, nil
}

// Name returns the family name of the font, or the name set with WithName.
func (s *FontSource) Name() string {
	return s.name
}

// Close releases the font data. Faces already created keep working, but
// no new faces can be created and shapers can no longer parse the data.
func (s *FontSource) Close() error {
	s.loaded.Store(nil)
	return nil
}

// bytes returns the raw font data, or nil once the source is closed.
func (s *FontSource) bytes() []byte {
	if l := s.loaded.Load(); l != nil {
		return l.data
	}
	return nil
}

// familyName reads the family name of f, falling back to the full name.
func familyName(f *opentype.Font) string {
	var buf sfnt.Buffer
	for _, id := range []sfnt.NameID{sfnt.NameIDFamily, sfnt.NameIDFull} {
		if name, err := f.Name(&buf, id); err == nil && name != "" {
			return name
		}
	}
	return unknownStr
}

// goRegular parses the embedded Go Regular font once per process.
var goRegular = sync.OnceValues(func() (*FontSource, error) {
	return NewFontSource(goregular.TTF)
})

// GoRegular returns a face of the embedded Go Regular font at size points.
func GoRegular(size float64, opts ...FaceOption) (Face, error) {
	src, err := goRegular()
	if err != nil {
		return nil, err
	}
	return src.Face(size, opts...)
}
