package text

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/wrapcheck/geom"
)

func TestNewMeasurer(t *testing.T) {
	m := NewMeasurer(newFixedFace())
	if got := m.LineSpacing(); got != 16 {
		t.Errorf("LineSpacing() = %d, want 16", got)
	}
	if got := m.Ascent(); got != 12 {
		t.Errorf("Ascent() = %d, want 12", got)
	}
	if got := m.Advance("abc"); got != 21 {
		t.Errorf("Advance(abc) = %d, want 21", got)
	}

	def := NewMeasurer(nil)
	if def.Face() == nil {
		t.Fatal("NewMeasurer(nil) has no face")
	}
	if got := def.LineSpacing(); got != 13 {
		t.Errorf("default LineSpacing() = %d, want 13", got)
	}
	if got := def.Advance("abc"); got != 21 {
		t.Errorf("default Advance(abc) = %d, want 21", got)
	}
}

func TestMeasurerLayout(t *testing.T) {
	m := NewMeasurer(newFixedFace())

	tests := []struct {
		name         string
		text         string
		flags        Flags
		maxWidth     int
		wantLines    []string
		wantMnemonic []int
		wantSize     geom.Size
	}{
		{
			name:         "word wrap",
			text:         "one two three four",
			flags:        WordWrap,
			maxWidth:     63,
			wantLines:    []string{"one two", "three", "four"},
			wantMnemonic: []int{-1, -1, -1},
			wantSize:     geom.Sz(49, 48),
		},
		{
			name:         "no wrap",
			text:         "one two three four",
			maxWidth:     63,
			wantLines:    []string{"one two three four"},
			wantMnemonic: []int{-1},
			wantSize:     geom.Sz(126, 16),
		},
		{
			name:         "single line",
			text:         "a\nb",
			flags:        SingleLine | WordWrap,
			maxWidth:     100,
			wantLines:    []string{"a b"},
			wantMnemonic: []int{-1},
			wantSize:     geom.Sz(21, 16),
		},
		{
			name:         "literal ampersand",
			text:         "&File",
			maxWidth:     100,
			wantLines:    []string{"&File"},
			wantMnemonic: []int{-1},
			wantSize:     geom.Sz(35, 16),
		},
		{
			name:         "show mnemonic",
			text:         "Save &all files",
			flags:        WordWrap | ShowMnemonic,
			maxWidth:     40,
			wantLines:    []string{"Save", "all", "files"},
			wantMnemonic: []int{-1, 0, -1},
			wantSize:     geom.Sz(35, 48),
		},
		{
			name:         "hide mnemonic",
			text:         "&File",
			flags:        ShowMnemonic | HideMnemonic,
			maxWidth:     100,
			wantLines:    []string{"File"},
			wantMnemonic: []int{-1},
			wantSize:     geom.Sz(28, 16),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := m.Layout(tt.text, tt.flags, tt.maxWidth)
			if len(l.Lines) != len(tt.wantLines) {
				t.Fatalf("Layout() has %d lines, want %d", len(l.Lines), len(tt.wantLines))
			}
			for i, line := range l.Lines {
				if line.Text != tt.wantLines[i] {
					t.Errorf("line %d = %q, want %q", i, line.Text, tt.wantLines[i])
				}
				if line.Mnemonic != tt.wantMnemonic[i] {
					t.Errorf("line %d mnemonic = %d, want %d", i, line.Mnemonic, tt.wantMnemonic[i])
				}
			}
			if got := l.Size(); got != tt.wantSize {
				t.Errorf("Layout().Size() = %v, want %v", got, tt.wantSize)
			}
		})
	}
}

func TestMeasurerLayoutCached(t *testing.T) {
	m := NewMeasurer(newFixedFace())
	a := m.Layout("one two three", WordWrap, 50)
	b := m.Layout("one two three", WordWrap, 50)
	if &a.Lines[0] != &b.Lines[0] {
		t.Error("second Layout call did not reuse the cached lines")
	}
	c := m.Layout("one two three", WordWrap, 200)
	if len(c.Lines) != 1 || len(a.Lines) != 2 {
		t.Errorf("layouts at different widths: %d and %d lines, want 2 and 1", len(a.Lines), len(c.Lines))
	}
	if s := m.layouts.Stats(); s.Hits != 1 || s.Misses != 2 {
		t.Errorf("cache stats = %+v, want 1 hit and 2 misses", s)
	}
}

func TestMeasurerBoundingRect(t *testing.T) {
	m := NewMeasurer(newFixedFace())
	r := image.Rect(10, 0, 400, 40)
	leftV := AlignFlags(geom.AlignLeft|geom.AlignVCenter) | WordWrap

	tests := []struct {
		name  string
		flags Flags
		text  string
		want  image.Rectangle
	}{
		{"empty", leftV, "", image.Rect(10, 0, 10, 0)},
		{"left vcenter", leftV, "Hello", image.Rect(10, 12, 45, 28)},
		{"mirrored", leftV | ForceRightToLeft, "Hello", image.Rect(365, 12, 400, 28)},
		{"absolute left ignores direction", leftV | AlignFlags(geom.AlignAbsolute) | ForceRightToLeft, "Hello", image.Rect(10, 12, 45, 28)},
		{"top hcenter", AlignFlags(geom.AlignHCenter | geom.AlignTop), "Hi", image.Rect(198, 0, 212, 16)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.BoundingRect(r, tt.flags, tt.text); got != tt.want {
				t.Errorf("BoundingRect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMeasurerBoundingRect_Wraps(t *testing.T) {
	m := NewMeasurer(newFixedFace())
	text := "one two three four five six seven eight nine ten"

	narrow := m.BoundingRect(image.Rect(0, 0, 120, 2000), WordWrap, text)
	wide := m.BoundingRect(image.Rect(0, 0, 1000, 2000), WordWrap, text)

	if wide.Dy() != 16 {
		t.Errorf("wide height = %d, want 16", wide.Dy())
	}
	if narrow.Dy() <= wide.Dy() {
		t.Errorf("narrow height %d should exceed wide height %d", narrow.Dy(), wide.Dy())
	}
	if narrow.Dx() > 120 {
		t.Errorf("narrow width %d exceeds 120", narrow.Dx())
	}
}

func TestMeasurerItemTextRect(t *testing.T) {
	m := NewMeasurer(newFixedFace())
	r := image.Rect(0, 0, 100, 20)
	flags := AlignFlags(geom.AlignLeft|geom.AlignVCenter) | WordWrap

	if got, want := m.ItemTextRect(r, flags, true, "Hi"), image.Rect(0, 2, 14, 18); got != want {
		t.Errorf("enabled ItemTextRect() = %v, want %v", got, want)
	}
	if got, want := m.ItemTextRect(r, flags, false, "Hi"), image.Rect(0, 2, 15, 19); got != want {
		t.Errorf("disabled ItemTextRect() = %v, want %v", got, want)
	}
	if got := m.ItemTextRect(r, flags, true, ""); got != r {
		t.Errorf("empty ItemTextRect() = %v, want %v", got, r)
	}
}

func TestMeasurerDraw(t *testing.T) {
	m := NewMeasurer(newFixedFace())
	dst := image.NewRGBA(image.Rect(0, 0, 120, 60))
	r := image.Rect(10, 5, 110, 55)
	flags := AlignFlags(geom.AlignLeft|geom.AlignVCenter) | WordWrap | ShowMnemonic
	text := "&ab cd"

	m.Draw(dst, r, flags, text, image.NewUniform(color.Black))

	bounds := m.BoundingRect(r, flags, text)
	painted := 0
	for y := dst.Rect.Min.Y; y < dst.Rect.Max.Y; y++ {
		for x := dst.Rect.Min.X; x < dst.Rect.Max.X; x++ {
			if dst.RGBAAt(x, y).A == 0 {
				continue
			}
			painted++
			if !image.Pt(x, y).In(bounds) {
				t.Fatalf("pixel (%d, %d) painted outside %v", x, y, bounds)
			}
		}
	}
	if painted == 0 {
		t.Fatal("Draw painted nothing")
	}

	// The mnemonic underline sits one pixel below the baseline of "a".
	baseline := bounds.Min.Y + m.Ascent()
	if dst.RGBAAt(bounds.Min.X+3, baseline+1).A == 0 {
		t.Error("mnemonic underline not drawn")
	}
	if dst.RGBAAt(bounds.Min.X+10, baseline+1).A != 0 {
		t.Error("underline extends past the mnemonic character")
	}
}

func TestMeasurerDraw_Empty(t *testing.T) {
	m := NewMeasurer(newFixedFace())
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	m.Draw(dst, dst.Rect, WordWrap, "", image.NewUniform(color.Black))
	for _, p := range dst.Pix {
		if p != 0 {
			t.Fatal("empty text painted pixels")
		}
	}
}

func TestMeasurerGoRegular(t *testing.T) {
	m := NewMeasurer(goRegularFace(t, 13))
	if m.LineSpacing() < 13 {
		t.Errorf("LineSpacing() = %d, want at least the font size", m.LineSpacing())
	}
	r := m.BoundingRect(image.Rect(0, 0, 80, 2000), WordWrap, "The quick brown fox jumps over the lazy dog")
	if r.Dy() < 2*m.LineSpacing() {
		t.Errorf("height %d: expected at least two lines of %d", r.Dy(), m.LineSpacing())
	}
}
