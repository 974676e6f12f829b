// Package geom holds the integer geometry shared by the widget, its style and
// its text layout: sizes, margins, layout direction and alignment flags.
//
// Rectangles are plain [image.Rectangle] values with half-open bounds, so a
// rectangle contains Min but not Max. The helpers here only add what the
// standard type lacks: mirroring for right-to-left layouts, alignment of a
// size inside a rectangle, and symmetric outsetting.
package geom
