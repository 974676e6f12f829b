package wrapcheck

import (
	"image/color"
	"testing"

	"github.com/gogpu/wrapcheck/geom"
	"github.com/gogpu/wrapcheck/paint"
	"github.com/gogpu/wrapcheck/style"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if !o.enabled {
		t.Error("default options are disabled")
	}
	if o.state != Unchecked || o.tristate {
		t.Errorf("default state %v tristate %v", o.state, o.tristate)
	}
	if got, want := o.maxSize, geom.Sz(geom.MaxWidgetSize, geom.MaxWidgetSize); got != want {
		t.Errorf("default maximum size %v, want %v", got, want)
	}
}

func TestOptionsApplied(t *testing.T) {
	icon := paint.NewSolidIcon(24, color.NRGBA{G: 128, A: 255})
	st := style.Default()
	face := testFont()
	toggled := 0

	cb := New(
		WithText("Text"),
		WithIcon(icon),
		WithIconSize(geom.Sz(24, 24)),
		WithShortcut("Ctrl+T"),
		WithStyle(st),
		WithFont(face),
		WithMargins(geom.Uniform(3)),
		WithLayoutDirection(geom.RightToLeft),
		WithEnabled(false),
		WithTristate(true),
		WithChecked(true),
		WithMinimumSize(geom.Sz(10, 20)),
		WithMaximumSize(geom.Sz(300, 400)),
		WithOnToggled(func(CheckState) { toggled++ }),
	)

	switch {
	case cb.Text() != "Text":
		t.Errorf("Text() = %q", cb.Text())
	case cb.Icon() != icon:
		t.Error("Icon() is not the configured icon")
	case cb.IconSize() != geom.Sz(24, 24):
		t.Errorf("IconSize() = %v", cb.IconSize())
	case cb.Shortcut() != "Ctrl+T":
		t.Errorf("Shortcut() = %q", cb.Shortcut())
	case cb.Style() != style.Style(st):
		t.Error("Style() is not the configured style")
	case cb.Font().Face() != face:
		t.Error("Font().Face() is not the configured face")
	case cb.ContentsMargins() != geom.Uniform(3):
		t.Errorf("ContentsMargins() = %v", cb.ContentsMargins())
	case cb.LayoutDirection() != geom.RightToLeft:
		t.Errorf("LayoutDirection() = %v", cb.LayoutDirection())
	case cb.IsEnabled():
		t.Error("IsEnabled() = true")
	case !cb.IsTristate() || !cb.IsChecked():
		t.Errorf("tristate %v checked %v", cb.IsTristate(), cb.IsChecked())
	case cb.MinimumSize() != geom.Sz(10, 20) || cb.MaximumSize() != geom.Sz(300, 400):
		t.Errorf("MinimumSize() = %v MaximumSize() = %v", cb.MinimumSize(), cb.MaximumSize())
	}
	if toggled != 0 {
		t.Errorf("options called OnToggled %d times", toggled)
	}
	cb.Click()
	if toggled != 1 || cb.CheckState() != Unchecked {
		t.Errorf("after Click: toggled %d state %v", toggled, cb.CheckState())
	}
}
