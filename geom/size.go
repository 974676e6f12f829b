package geom

import "image"

// MaxWidgetSize is the largest width or height a widget may report.
// It is the default maximum size of every widget.
const MaxWidgetSize = 16777215

// Size is a width and height pair in pixels.
type Size struct {
	W, H int
}

// Sz is a convenience function to create a Size.
func Sz(w, h int) Size {
	return Size{W: w, H: h}
}

// SizeOf returns the size of r.
func SizeOf(r image.Rectangle) Size {
	return Size{W: r.Dx(), H: r.Dy()}
}

// Add returns the component-wise sum of s and o.
func (s Size) Add(o Size) Size {
	return Size{W: s.W + o.W, H: s.H + o.H}
}

// ExpandedTo returns a size holding the maximum width and height of s and o.
func (s Size) ExpandedTo(o Size) Size {
	return Size{W: max(s.W, o.W), H: max(s.H, o.H)}
}

// BoundedTo returns a size holding the minimum width and height of s and o.
func (s Size) BoundedTo(o Size) Size {
	return Size{W: min(s.W, o.W), H: min(s.H, o.H)}
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.W <= 0 || s.H <= 0
}

// Pt returns s as an image.Point.
func (s Size) Pt() image.Point {
	return image.Pt(s.W, s.H)
}

// Rect returns the rectangle of size s with its top-left corner at origin.
func (s Size) Rect(origin image.Point) image.Rectangle {
	return image.Rectangle{Min: origin, Max: origin.Add(s.Pt())}
}

// Margins are the four contents margins of a widget.
type Margins struct {
	Left, Top, Right, Bottom int
}

// Uniform returns margins of n pixels on every side.
func Uniform(n int) Margins {
	return Margins{Left: n, Top: n, Right: n, Bottom: n}
}

// Horizontal returns Left + Right.
func (m Margins) Horizontal() int {
	return m.Left + m.Right
}

// Vertical returns Top + Bottom.
func (m Margins) Vertical() int {
	return m.Top + m.Bottom
}

// Size returns the total horizontal and vertical margin.
func (m Margins) Size() Size {
	return Size{W: m.Horizontal(), H: m.Vertical()}
}

// Shrink returns r with the margins removed from each side.
func (m Margins) Shrink(r image.Rectangle) image.Rectangle {
	return image.Rect(r.Min.X+m.Left, r.Min.Y+m.Top, r.Max.X-m.Right, r.Max.Y-m.Bottom)
}

// Outset returns r grown by dx on the left and right and dy on the top and
// bottom. Negative values shrink it.
func Outset(r image.Rectangle, dx, dy int) image.Rectangle {
	return image.Rect(r.Min.X-dx, r.Min.Y-dy, r.Max.X+dx, r.Max.Y+dy)
}
