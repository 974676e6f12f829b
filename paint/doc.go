// Package paint provides the drawing surface widgets paint onto.
//
// Widgets draw through the Painter interface, which has two
// implementations:
//
//   - Canvas rasterizes into an *image.RGBA and can be saved as PNG
//   - Recorder captures typed commands for inspection and replay
//
// Coordinates are integer pixels. Rectangles are half-open, as with
// image.Rectangle: Max is outside.
//
// # Example
//
//	c := paint.NewCanvas(200, 40)
//	c.Clear(color.White)
//	c.FillRect(image.Rect(4, 4, 17, 17), paint.Hex("#3daee9"))
//	if err := c.SavePNG("out.png"); err != nil {
//	    log.Fatal(err)
//	}
package paint
