package geom

import (
	"image"
	"strings"
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction is the layout direction of a widget.
type Direction int

const (
	// LeftToRight places leading content on the left (default).
	LeftToRight Direction = iota
	// RightToLeft places leading content on the right.
	RightToLeft
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "LeftToRight"
	case RightToLeft:
		return "RightToLeft"
	default:
		return unknownStr
	}
}

// ParseDirection parses "ltr", "rtl" and the String forms of Direction.
// Anything else yields LeftToRight and false.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(s) {
	case "ltr", "lefttoright", "left-to-right":
		return LeftToRight, true
	case "rtl", "righttoleft", "right-to-left":
		return RightToLeft, true
	default:
		return LeftToRight, false
	}
}

// Alignment is a set of horizontal and vertical alignment flags.
//
// AlignLeft and AlignRight are logical unless AlignAbsolute is set: under a
// right-to-left layout they swap. VisualAlignment resolves them.
type Alignment uint32

const (
	AlignLeft     Alignment = 0x0001
	AlignRight    Alignment = 0x0002
	AlignHCenter  Alignment = 0x0004
	AlignJustify  Alignment = 0x0008
	AlignAbsolute Alignment = 0x0010
	AlignTop      Alignment = 0x0020
	AlignBottom   Alignment = 0x0040
	AlignVCenter  Alignment = 0x0080

	AlignLeading  = AlignLeft
	AlignTrailing = AlignRight
	AlignCenter   = AlignHCenter | AlignVCenter

	AlignHorizontalMask = AlignLeft | AlignRight | AlignHCenter | AlignJustify | AlignAbsolute
	AlignVerticalMask   = AlignTop | AlignBottom | AlignVCenter
)

// VisualAlignment maps a logical alignment to a physical one for dir.
// A missing horizontal component defaults to AlignLeft. The result carries
// AlignAbsolute whenever it names a left or right edge.
func VisualAlignment(dir Direction, a Alignment) Alignment {
	if a&AlignHorizontalMask == 0 {
		a |= AlignLeft
	}
	if a&AlignAbsolute == 0 && a&(AlignLeft|AlignRight) != 0 {
		if dir == RightToLeft {
			a ^= AlignLeft | AlignRight
		}
		a |= AlignAbsolute
	}
	return a
}

// VisualRect mirrors r horizontally inside bounds when dir is RightToLeft.
// Under LeftToRight r is returned unchanged.
func VisualRect(dir Direction, bounds, r image.Rectangle) image.Rectangle {
	if dir != RightToLeft {
		return r
	}
	x := bounds.Min.X + bounds.Max.X - r.Max.X
	return image.Rect(x, r.Min.Y, x+r.Dx(), r.Max.Y)
}

// AlignedRect places a rectangle of the given size inside bounds according
// to a, resolved for dir. The result may extend past bounds when size is
// larger than bounds.
func AlignedRect(dir Direction, a Alignment, size Size, bounds image.Rectangle) image.Rectangle {
	a = VisualAlignment(dir, a)
	x, y := bounds.Min.X, bounds.Min.Y
	switch {
	case a&AlignVCenter != 0:
		y += bounds.Dy()/2 - size.H/2
	case a&AlignBottom != 0:
		y += bounds.Dy() - size.H
	}
	switch {
	case a&AlignRight != 0:
		x += bounds.Dx() - size.W
	case a&AlignHCenter != 0:
		x += bounds.Dx()/2 - size.W/2
	}
	return image.Rect(x, y, x+size.W, y+size.H)
}
