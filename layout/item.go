package layout

import (
	"image"

	"github.com/gogpu/wrapcheck/geom"
	"github.com/gogpu/wrapcheck/paint"
)

// Policy describes how an item uses space along one axis.
type Policy int

const (
	// Fixed items always take their size hint.
	Fixed Policy = iota
	// Minimum items can grow but not shrink below their hint.
	Minimum
	// Maximum items can shrink but not grow past their hint.
	Maximum
	// Preferred items prefer their hint but can grow or shrink.
	Preferred
	// Expanding items prefer their hint and want any extra space.
	Expanding
)

// String returns the string representation of the policy.
func (p Policy) String() string {
	switch p {
	case Fixed:
		return "Fixed"
	case Minimum:
		return "Minimum"
	case Maximum:
		return "Maximum"
	case Preferred:
		return "Preferred"
	case Expanding:
		return "Expanding"
	default:
		return "Unknown"
	}
}

// SizePolicy is the resizing behavior of an item.
type SizePolicy struct {
	Horizontal Policy
	Vertical   Policy
	// HeightForWidth reports whether the height depends on the width.
	HeightForWidth bool
}

// Item is anything a layout can place.
type Item interface {
	SizeHint() geom.Size
	MinimumSizeHint() geom.Size
	// HeightForWidth returns the height needed at width w. Layouts only
	// call it when SizePolicy().HeightForWidth is set.
	HeightForWidth(w int) int
	SizePolicy() SizePolicy
	// SetGeometry places the item at r in its parent's coordinates.
	SetGeometry(r image.Rectangle)
	Geometry() image.Rectangle
}

// Painter is implemented by items that draw themselves. Paint is called
// with the origin at the top-left corner of the item.
type Painter interface {
	Paint(p paint.Painter)
}

// Clicker is implemented by items that react to pointer clicks. pos is in
// the item's own coordinates. HandleClick reports whether it used the click.
type Clicker interface {
	HandleClick(pos image.Point) bool
}
