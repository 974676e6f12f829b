package paint

import (
	"image"
	"image/color"

	"github.com/gogpu/wrapcheck/text"
)

// Recorder is a Painter that records every call as a Command.
// Coordinates are stored as passed, relative to the origin at the time of
// the call; Playback reproduces the same output on another Painter.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command
	origin   image.Point
	stack    []image.Point
}

var _ Painter = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{commands: make([]Command, 0, 16)}
}

// Commands returns the recorded commands in call order.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Types returns the type of every recorded command in call order.
func (r *Recorder) Types() []CommandType {
	types := make([]CommandType, len(r.commands))
	for i, c := range r.commands {
		types[i] = c.Type()
	}
	return types
}

// Origin returns the current origin in device coordinates.
func (r *Recorder) Origin() image.Point {
	return r.origin
}

// Reset discards all recorded commands and state.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.origin = image.Point{}
	r.stack = r.stack[:0]
}

// Playback replays the recorded commands onto p.
func (r *Recorder) Playback(p Painter) {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case SaveCommand:
			p.Save()
		case RestoreCommand:
			p.Restore()
		case TranslateCommand:
			p.Translate(c.DX, c.DY)
		case FillRectCommand:
			p.FillRect(c.Rect, c.Color)
		case StrokeRectCommand:
			p.StrokeRect(c.Rect, c.Color)
		case DrawLineCommand:
			p.DrawLine(c.From, c.To, c.Color)
		case DrawDottedRectCommand:
			p.DrawDottedRect(c.Rect, c.Color)
		case DrawImageCommand:
			p.DrawImage(c.Rect, c.Image)
		case DrawTextCommand:
			p.DrawText(c.Rect, c.Flags, c.Measurer, c.Text, c.Color)
		}
	}
}

// Save implements Painter.
func (r *Recorder) Save() {
	r.stack = append(r.stack, r.origin)
	r.commands = append(r.commands, SaveCommand{})
}

// Restore implements Painter.
func (r *Recorder) Restore() {
	if n := len(r.stack); n > 0 {
		r.origin = r.stack[n-1]
		r.stack = r.stack[:n-1]
	}
	r.commands = append(r.commands, RestoreCommand{})
}

// Translate implements Painter.
func (r *Recorder) Translate(dx, dy int) {
	r.origin = r.origin.Add(image.Pt(dx, dy))
	r.commands = append(r.commands, TranslateCommand{DX: dx, DY: dy})
}

// FillRect implements Painter.
func (r *Recorder) FillRect(rect image.Rectangle, c color.Color) {
	r.commands = append(r.commands, FillRectCommand{Rect: rect, Color: c})
}

// StrokeRect implements Painter.
func (r *Recorder) StrokeRect(rect image.Rectangle, c color.Color) {
	r.commands = append(r.commands, StrokeRectCommand{Rect: rect, Color: c})
}

// DrawLine implements Painter.
func (r *Recorder) DrawLine(p0, p1 image.Point, c color.Color) {
	r.commands = append(r.commands, DrawLineCommand{From: p0, To: p1, Color: c})
}

// DrawDottedRect implements Painter.
func (r *Recorder) DrawDottedRect(rect image.Rectangle, c color.Color) {
	r.commands = append(r.commands, DrawDottedRectCommand{Rect: rect, Color: c})
}

// DrawImage implements Painter.
func (r *Recorder) DrawImage(rect image.Rectangle, img image.Image) {
	r.commands = append(r.commands, DrawImageCommand{Rect: rect, Image: img})
}

// DrawText implements Painter.
func (r *Recorder) DrawText(rect image.Rectangle, flags text.Flags, m *text.Measurer, s string, c color.Color) {
	r.commands = append(r.commands, DrawTextCommand{Rect: rect, Flags: flags, Measurer: m, Text: s, Color: c})
}
