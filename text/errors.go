package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrSourceClosed is returned when a face is requested from a closed FontSource.
	ErrSourceClosed = errors.New("text: font source is closed")
)
