package layout

import (
	"image"

	"github.com/gogpu/wrapcheck/geom"
	"github.com/gogpu/wrapcheck/paint"
)

// Column stacks items top to bottom. It is itself an Item, so columns nest.
type Column struct {
	items    []Item
	spacing  int
	margins  geom.Margins
	geometry image.Rectangle
}

var (
	_ Item    = (*Column)(nil)
	_ Painter = (*Column)(nil)
	_ Clicker = (*Column)(nil)
)

// NewColumn creates a column with the given spacing between items.
func NewColumn(spacing int, items ...Item) *Column {
	return &Column{items: items, spacing: max(0, spacing)}
}

// Add appends items to the column.
func (c *Column) Add(items ...Item) {
	c.items = append(c.items, items...)
}

// Items returns the items of the column.
func (c *Column) Items() []Item {
	return c.items
}

// SetContentsMargins sets the space around the items.
func (c *Column) SetContentsMargins(m geom.Margins) {
	c.margins = m
}

// ContentsMargins returns the space around the items.
func (c *Column) ContentsMargins() geom.Margins {
	return c.margins
}

// Spacing returns the vertical gap between items.
func (c *Column) Spacing() int {
	return c.spacing
}

// gaps returns the total spacing between the items.
func (c *Column) gaps() int {
	if len(c.items) < 2 {
		return 0
	}
	return c.spacing * (len(c.items) - 1)
}

// SizeHint implements Item.
func (c *Column) SizeHint() geom.Size {
	var s geom.Size
	for _, it := range c.items {
		h := it.SizeHint()
		s.W = max(s.W, h.W)
		s.H += h.H
	}
	s.H += c.gaps()
	return s.Add(c.margins.Size())
}

// MinimumSizeHint implements Item.
func (c *Column) MinimumSizeHint() geom.Size {
	var s geom.Size
	for _, it := range c.items {
		h := it.MinimumSizeHint()
		s.W = max(s.W, h.W)
		s.H += h.H
	}
	s.H += c.gaps()
	return s.Add(c.margins.Size())
}

// SizePolicy implements Item. The column depends on width as soon as one
// of its items does.
func (c *Column) SizePolicy() SizePolicy {
	sp := SizePolicy{Horizontal: Preferred, Vertical: Preferred}
	for _, it := range c.items {
		if it.SizePolicy().HeightForWidth {
			sp.HeightForWidth = true
			break
		}
	}
	return sp
}

// HeightForWidth implements Item.
func (c *Column) HeightForWidth(w int) int {
	inner := max(0, w-c.margins.Horizontal())
	h := c.margins.Vertical() + c.gaps()
	for _, it := range c.items {
		h += itemHeight(it, inner)
	}
	return h
}

// itemHeight returns the height an item gets at width w.
func itemHeight(it Item, w int) int {
	if it.SizePolicy().HeightForWidth {
		return max(it.HeightForWidth(w), it.MinimumSizeHint().H)
	}
	return it.SizeHint().H
}

// Geometry implements Item.
func (c *Column) Geometry() image.Rectangle {
	return c.geometry
}

// maxPlacePasses bounds the placement passes of SetGeometry.
const maxPlacePasses = 3

// SetGeometry implements Item. Every item gets the full inner width and
// the height it asks for at that width; extra height is left at the bottom.
//
// An item may change its minimum size while it is resized, which changes
// the height it asks for. The items are then placed again.
func (c *Column) SetGeometry(r image.Rectangle) {
	c.geometry = r
	inner := c.margins.Shrink(r)
	w := max(0, inner.Dx())
	for range maxPlacePasses {
		if c.place(inner.Min, w) {
			return
		}
	}
}

// place lays the items out from origin at width w. It reports whether
// every item still asks for the height it got.
func (c *Column) place(origin image.Point, w int) bool {
	settled := true
	y := origin.Y
	for _, it := range c.items {
		h := itemHeight(it, w)
		it.SetGeometry(image.Rect(origin.X, y, origin.X+w, y+h))
		if it.Geometry().Dy() != itemHeight(it, w) {
			settled = false
		}
		y += h + c.spacing
	}
	return settled
}

// Paint draws every item that implements Painter, translated to its
// position. The origin is the top-left corner of the column.
func (c *Column) Paint(p paint.Painter) {
	for _, it := range c.items {
		ip, ok := it.(Painter)
		if !ok {
			continue
		}
		g := it.Geometry().Sub(c.geometry.Min)
		p.Save()
		p.Translate(g.Min.X, g.Min.Y)
		ip.Paint(p)
		p.Restore()
	}
}

// HandleClick routes a click in column coordinates to the item under it.
func (c *Column) HandleClick(pos image.Point) bool {
	for _, it := range c.items {
		g := it.Geometry().Sub(c.geometry.Min)
		if !pos.In(g) {
			continue
		}
		if ck, ok := it.(Clicker); ok {
			return ck.HandleClick(pos.Sub(g.Min))
		}
		return false
	}
	return false
}
