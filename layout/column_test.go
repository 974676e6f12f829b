package layout

import (
	"image"
	"testing"

	"github.com/gogpu/wrapcheck/geom"
	"github.com/gogpu/wrapcheck/paint"
)

// fakeItem wraps to a fixed area: its height is area/width.
type fakeItem struct {
	hint     geom.Size
	area     int
	geometry image.Rectangle
	clicks   []image.Point
	painted  int
}

func (f *fakeItem) SizeHint() geom.Size        { return f.hint }
func (f *fakeItem) MinimumSizeHint() geom.Size { return geom.Sz(1, 1) }
func (f *fakeItem) SizePolicy() SizePolicy {
	return SizePolicy{Horizontal: Preferred, Vertical: Preferred, HeightForWidth: f.area > 0}
}
func (f *fakeItem) HeightForWidth(w int) int {
	if w <= 0 {
		return f.area
	}
	return (f.area + w - 1) / w
}
func (f *fakeItem) SetGeometry(r image.Rectangle) { f.geometry = r }
func (f *fakeItem) Geometry() image.Rectangle     { return f.geometry }
func (f *fakeItem) Paint(p paint.Painter) {
	f.painted++
	p.FillRect(image.Rect(0, 0, 1, 1), nil)
}
func (f *fakeItem) HandleClick(pos image.Point) bool {
	f.clicks = append(f.clicks, pos)
	return true
}

func TestColumnSizeHint(t *testing.T) {
	a := &fakeItem{hint: geom.Sz(50, 10)}
	b := &fakeItem{hint: geom.Sz(80, 20)}
	c := NewColumn(4, a, b)
	c.SetContentsMargins(geom.Uniform(2))

	if got, want := c.SizeHint(), geom.Sz(84, 38); got != want {
		t.Errorf("SizeHint() = %v, want %v", got, want)
	}
	if got, want := c.MinimumSizeHint(), geom.Sz(5, 10); got != want {
		t.Errorf("MinimumSizeHint() = %v, want %v", got, want)
	}
	if c.SizePolicy().HeightForWidth {
		t.Error("column without height-for-width items reports HeightForWidth")
	}
}

func TestColumnHeightForWidth(t *testing.T) {
	a := &fakeItem{hint: geom.Sz(50, 10), area: 1000}
	b := &fakeItem{hint: geom.Sz(80, 20)}
	c := NewColumn(5, a, b)

	if !c.SizePolicy().HeightForWidth {
		t.Fatal("SizePolicy().HeightForWidth = false, want true")
	}
	tests := []struct {
		width int
		want  int
	}{
		{100, 10 + 5 + 20},
		{50, 20 + 5 + 20},
		{10, 100 + 5 + 20},
	}
	for _, tt := range tests {
		if got := c.HeightForWidth(tt.width); got != tt.want {
			t.Errorf("HeightForWidth(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestColumnSetGeometry(t *testing.T) {
	a := &fakeItem{hint: geom.Sz(50, 10), area: 1000}
	b := &fakeItem{hint: geom.Sz(80, 20)}
	c := NewColumn(5, a, b)
	c.SetContentsMargins(geom.Margins{Left: 3, Top: 4, Right: 3, Bottom: 4})

	c.SetGeometry(image.Rect(10, 10, 116, 200))

	if got, want := a.Geometry(), image.Rect(13, 14, 113, 24); got != want {
		t.Errorf("first item geometry = %v, want %v", got, want)
	}
	if got, want := b.Geometry(), image.Rect(13, 29, 113, 49); got != want {
		t.Errorf("second item geometry = %v, want %v", got, want)
	}
}

func TestColumnPaintTranslates(t *testing.T) {
	a := &fakeItem{hint: geom.Sz(50, 10)}
	b := &fakeItem{hint: geom.Sz(50, 10)}
	c := NewColumn(2, a, b)
	c.SetGeometry(image.Rect(100, 100, 150, 200))

	rec := paint.NewRecorder()
	c.Paint(rec)

	want := []paint.CommandType{
		paint.CmdSave, paint.CmdTranslate, paint.CmdFillRect, paint.CmdRestore,
		paint.CmdSave, paint.CmdTranslate, paint.CmdFillRect, paint.CmdRestore,
	}
	got := rec.Types()
	if len(got) != len(want) {
		t.Fatalf("Types() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Types()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	tr := rec.Commands()[5].(paint.TranslateCommand)
	if tr.DX != 0 || tr.DY != 12 {
		t.Errorf("second translate = (%d,%d), want (0,12)", tr.DX, tr.DY)
	}
	if rec.Origin() != (image.Point{}) {
		t.Errorf("origin after Paint = %v, want (0,0)", rec.Origin())
	}
}

func TestColumnHandleClick(t *testing.T) {
	a := &fakeItem{hint: geom.Sz(50, 10)}
	b := &fakeItem{hint: geom.Sz(50, 10)}
	c := NewColumn(2, a, b)
	c.SetGeometry(image.Rect(0, 0, 50, 100))

	if !c.HandleClick(image.Pt(7, 15)) {
		t.Fatal("HandleClick on second item = false")
	}
	if len(a.clicks) != 0 || len(b.clicks) != 1 || b.clicks[0] != image.Pt(7, 3) {
		t.Errorf("clicks a=%v b=%v, want b=[(7,3)]", a.clicks, b.clicks)
	}
	if c.HandleClick(image.Pt(7, 11)) {
		t.Error("HandleClick in the gap = true, want false")
	}
}

func TestPolicyString(t *testing.T) {
	tests := []struct {
		p    Policy
		want string
	}{
		{Fixed, "Fixed"},
		{Preferred, "Preferred"},
		{Expanding, "Expanding"},
		{Policy(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Policy(%d).String() = %q, want %q", tt.p, got, tt.want)
		}
	}
}
