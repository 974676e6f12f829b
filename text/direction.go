package text

import (
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/wrapcheck/geom"
)

// DetectDirection returns the direction of the first strong directional
// character of s. Text without one is left-to-right.
func DetectDirection(s string) geom.Direction {
	for len(s) > 0 {
		p, size := bidi.LookupString(s)
		switch p.Class() {
		case bidi.R, bidi.AL:
			return geom.RightToLeft
		case bidi.L:
			return geom.LeftToRight
		}
		if size == 0 {
			return geom.LeftToRight
		}
		s = s[size:]
	}
	return geom.LeftToRight
}

// IsRightToLeft reports whether s reads right-to-left.
func IsRightToLeft(s string) bool {
	return DetectDirection(s) == geom.RightToLeft
}
