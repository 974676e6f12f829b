package wrapcheck

import (
	"testing"

	"github.com/gogpu/wrapcheck/internal/texttest"
	"github.com/gogpu/wrapcheck/style"
	"github.com/gogpu/wrapcheck/text"
)

// testFont returns a face advancing 7 px per rune with a line spacing of 16.
func testFont() text.Face {
	return texttest.New()
}

// testStyle returns a style with a 13x13 indicator, a label spacing of 4
// and focus frame margins of 2x1.
func testStyle(t testing.TB) *style.Common {
	t.Helper()

	cfg := style.DefaultConfig()
	cfg.LabelSpacing = 4
	s, err := style.NewCommon(cfg)
	if err != nil {
		t.Fatalf("NewCommon failed: %v", err)
	}
	return s
}

// newTestBox creates a check box with the test font and style.
func newTestBox(t testing.TB, opts ...Option) *CheckBox {
	t.Helper()
	base := []Option{WithFont(testFont()), WithStyle(testStyle(t))}
	return New(append(base, opts...)...)
}
