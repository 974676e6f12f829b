package paint

import (
	"image"
	"image/color"

	"github.com/gogpu/wrapcheck/text"
)

// CommandType identifies the type of a command.
// Each command type corresponds to a Painter method.
type CommandType uint8

const (
	// State commands
	CmdSave      CommandType = iota // Save current origin
	CmdRestore                      // Restore previous origin
	CmdTranslate                    // Move the origin

	// Drawing commands
	CmdFillRect       // Fill a rectangle
	CmdStrokeRect     // Outline a rectangle
	CmdDrawLine       // Draw a line
	CmdDrawDottedRect // Draw a dotted outline
	CmdDrawImage      // Draw an image
	CmdDrawText       // Draw text
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSave:           "Save",
	CmdRestore:        "Restore",
	CmdTranslate:      "Translate",
	CmdFillRect:       "FillRect",
	CmdStrokeRect:     "StrokeRect",
	CmdDrawLine:       "DrawLine",
	CmdDrawDottedRect: "DrawDottedRect",
	CmdDrawImage:      "DrawImage",
	CmdDrawText:       "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// SaveCommand saves the current origin.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand restores the origin saved by the matching SaveCommand.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// TranslateCommand moves the origin.
type TranslateCommand struct {
	DX, DY int
}

// Type implements Command.
func (TranslateCommand) Type() CommandType { return CmdTranslate }

// FillRectCommand fills a rectangle.
type FillRectCommand struct {
	Rect  image.Rectangle
	Color color.Color
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// StrokeRectCommand outlines a rectangle.
type StrokeRectCommand struct {
	Rect  image.Rectangle
	Color color.Color
}

// Type implements Command.
func (StrokeRectCommand) Type() CommandType { return CmdStrokeRect }

// DrawLineCommand draws a line between two points.
type DrawLineCommand struct {
	From, To image.Point
	Color    color.Color
}

// Type implements Command.
func (DrawLineCommand) Type() CommandType { return CmdDrawLine }

// DrawDottedRectCommand draws a dotted outline, typically a focus frame.
type DrawDottedRectCommand struct {
	Rect  image.Rectangle
	Color color.Color
}

// Type implements Command.
func (DrawDottedRectCommand) Type() CommandType { return CmdDrawDottedRect }

// DrawImageCommand draws an image clipped to a rectangle.
type DrawImageCommand struct {
	Rect  image.Rectangle
	Image image.Image
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }

// DrawTextCommand draws laid out text.
type DrawTextCommand struct {
	Rect     image.Rectangle
	Flags    text.Flags
	Measurer *text.Measurer
	Text     string
	Color    color.Color
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }
