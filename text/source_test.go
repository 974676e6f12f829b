package text

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/wrapcheck/geom"
)

func TestNewFontSource(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource failed: %v", err)
	}
	defer func() { _ = source.Close() }()

	if got := source.Name(); got != "Go" {
		t.Errorf("Name() = %q, want %q", got, "Go")
	}
}

func TestNewFontSourceWithName(t *testing.T) {
	source, err := NewFontSource(goregular.TTF, WithName("Label Font"))
	if err != nil {
		t.Fatalf("NewFontSource failed: %v", err)
	}
	if got := source.Name(); got != "Label Font" {
		t.Errorf("Name() = %q, want %q", got, "Label Font")
	}
}

func TestNewFontSourceErrors(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFontSource([]byte("not a font")); err == nil {
		t.Error("NewFontSource(invalid) should fail")
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	source, err := NewFontSourceFromFile(path)
	if err != nil {
		t.Fatalf("NewFontSourceFromFile failed: %v", err)
	}
	if source.Name() == "" {
		t.Error("Name() is empty")
	}

	_, err = NewFontSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
}

func TestFontSourceDataIsCopied(t *testing.T) {
	data := append([]byte(nil), goregular.TTF...)
	source, err := NewFontSource(data)
	if err != nil {
		t.Fatalf("NewFontSource failed: %v", err)
	}
	for i := range data {
		data[i] = 0
	}
	if _, err := source.Face(12); err != nil {
		t.Errorf("Face after caller reused data: %v", err)
	}
}

func TestFontSourceClose(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource failed: %v", err)
	}
	face, err := source.Face(12)
	if err != nil {
		t.Fatalf("Face failed: %v", err)
	}

	if err := source.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := source.Face(12); !errors.Is(err, ErrSourceClosed) {
		t.Errorf("Face after Close error = %v, want ErrSourceClosed", err)
	}
	if face.Advance("abc") <= 0 {
		t.Error("face created before Close stopped working")
	}
}

func TestFaceOptions(t *testing.T) {
	base := goRegularFace(t, 12)
	scaled := goRegularFace(t, 12, WithDPI(144))

	if ratio := scaled.Advance("Hello") / base.Advance("Hello"); ratio < 1.8 || ratio > 2.2 {
		t.Errorf("144/72 DPI advance ratio = %.2f, want about 2", ratio)
	}

	f := goRegularFace(t, 12, WithDirection(geom.RightToLeft), WithLanguage("he"), WithHinting(font.HintingNone))
	sf, ok := f.(shapeSource)
	if !ok {
		t.Fatalf("face %T does not expose its source", f)
	}
	if sf.Direction() != geom.RightToLeft || sf.Language() != "he" || sf.Size() != 12 {
		t.Errorf("face config = (%v, %q, %v), want (RTL, he, 12)", sf.Direction(), sf.Language(), sf.Size())
	}
}
