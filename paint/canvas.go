package paint

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/wrapcheck/text"
)

// Canvas is a Painter that rasterizes into an RGBA image.
type Canvas struct {
	img    *image.RGBA
	origin image.Point
	stack  []image.Point
}

var _ Painter = (*Canvas)(nil)

// NewCanvas creates a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Clear fills the whole canvas with col, ignoring the origin.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// Save implements Painter.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.origin)
}

// Restore implements Painter. Unbalanced calls are ignored.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.origin = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate implements Painter.
func (c *Canvas) Translate(dx, dy int) {
	c.origin = c.origin.Add(image.Pt(dx, dy))
}

// FillRect implements Painter.
func (c *Canvas) FillRect(r image.Rectangle, col color.Color) {
	r = r.Add(c.origin)
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// StrokeRect implements Painter.
func (c *Canvas) StrokeRect(r image.Rectangle, col color.Color) {
	if r.Empty() {
		return
	}
	c.outline(r, col, 1)
}

// DrawDottedRect implements Painter.
func (c *Canvas) DrawDottedRect(r image.Rectangle, col color.Color) {
	if r.Empty() {
		return
	}
	c.outline(r, col, 2)
}

// outline sets every step-th pixel along the inner border of r.
func (c *Canvas) outline(r image.Rectangle, col color.Color, step int) {
	r = r.Add(c.origin)
	last := r.Max.Sub(image.Pt(1, 1))
	for x := r.Min.X; x <= last.X; x++ {
		if (x-r.Min.X)%step == 0 {
			c.blend(x, r.Min.Y, col)
			if last.Y != r.Min.Y {
				c.blend(x, last.Y, col)
			}
		}
	}
	for y := r.Min.Y + 1; y < last.Y; y++ {
		if (y-r.Min.Y)%step == 0 {
			c.blend(r.Min.X, y, col)
			if last.X != r.Min.X {
				c.blend(last.X, y, col)
			}
		}
	}
}

// DrawLine implements Painter using Bresenham's algorithm.
func (c *Canvas) DrawLine(p0, p1 image.Point, col color.Color) {
	p0, p1 = p0.Add(c.origin), p1.Add(c.origin)
	dx, dy := abs(p1.X-p0.X), -abs(p1.Y-p0.Y)
	sx, sy := sign(p1.X-p0.X), sign(p1.Y-p0.Y)
	e := dx + dy
	for {
		c.blend(p0.X, p0.Y, col)
		if p0 == p1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			p0.X += sx
		}
		if e2 <= dx {
			e += dx
			p0.Y += sy
		}
	}
}

// DrawImage implements Painter.
func (c *Canvas) DrawImage(r image.Rectangle, img image.Image) {
	if img == nil {
		return
	}
	r = r.Add(c.origin)
	draw.Draw(c.img, r, img, img.Bounds().Min, draw.Over)
}

// DrawText implements Painter.
func (c *Canvas) DrawText(r image.Rectangle, flags text.Flags, m *text.Measurer, s string, col color.Color) {
	if m == nil || s == "" {
		return
	}
	m.Draw(c.img, r.Add(c.origin), flags, s, image.NewUniform(col))
}

// blend composites col over the pixel at (x, y).
func (c *Canvas) blend(x, y int, col color.Color) {
	p := image.Pt(x, y)
	if !p.In(c.img.Rect) {
		return
	}
	draw.Draw(c.img, image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))}, image.NewUniform(col), image.Point{}, draw.Over)
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("paint: create %s: %w", path, err)
	}
	if err := png.Encode(f, c.img); err != nil {
		_ = f.Close()
		return fmt.Errorf("paint: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("paint: close %s: %w", path, err)
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
