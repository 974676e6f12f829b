package paint

import (
	"image"
	"image/color"

	"github.com/gogpu/wrapcheck/text"
)

// Painter draws widget primitives. All coordinates are relative to the
// current origin, which Translate moves and Save/Restore preserve.
type Painter interface {
	// Save pushes the current origin.
	Save()
	// Restore pops the origin pushed by the matching Save.
	Restore()
	// Translate moves the origin by (dx, dy).
	Translate(dx, dy int)

	// FillRect fills r with c.
	FillRect(r image.Rectangle, c color.Color)
	// StrokeRect draws a one pixel outline just inside r.
	StrokeRect(r image.Rectangle, c color.Color)
	// DrawLine draws a one pixel line from p0 to p1, both included.
	DrawLine(p0, p1 image.Point, c color.Color)
	// DrawDottedRect draws a dotted one pixel outline just inside r.
	DrawDottedRect(r image.Rectangle, c color.Color)
	// DrawImage draws img with its top-left corner at r.Min, clipped to r.
	DrawImage(r image.Rectangle, img image.Image)
	// DrawText draws s laid out by m inside r with flags.
	DrawText(r image.Rectangle, flags text.Flags, m *text.Measurer, s string, c color.Color)
}
