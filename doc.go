// Package wrapcheck provides a check box whose label wraps onto several
// lines.
//
// # Overview
//
// A CheckBox draws an indicator followed by an optional icon and a label.
// Unlike a plain check box, the label is laid out with word wrapping, so
// the widget's height depends on the width it is given. The widget reports
// this through its size hints and HeightForWidth, and every Resize derives
// a minimum height that keeps the whole label visible.
//
// # Quick Start
//
//	import "github.com/gogpu/wrapcheck"
//
//	cb := wrapcheck.New(
//	    wrapcheck.WithText("Remember my choice for all files of this type"),
//	    wrapcheck.WithChecked(true),
//	)
//	cb.Resize(geom.Sz(160, cb.HeightForWidth(160)))
//
//	canvas := paint.NewCanvas(160, cb.Size().H)
//	cb.Paint(canvas)
//	canvas.SavePNG("checkbox.png")
//
// # Architecture
//
// The module is organized into:
//   - wrapcheck: the CheckBox widget and its geometry engine
//   - geom: sizes, margins, alignment and layout direction helpers
//   - text: fonts, line breaking, measurement and text flags
//   - style: pixel metrics, sub-element rectangles and primitive drawing
//   - paint: the Painter interface, a raster Canvas, a Recorder and icons
//   - layout: a height-for-width aware Column layout
//
// # Geometry
//
// The widget caches the rectangles it derives from its size: the
// indicator, the contents area, the icon, the text and the focus frame.
// The cache is dropped whenever a property that affects geometry changes
// and is rebuilt before painting or hit-testing.
//
// # Logging
//
// wrapcheck is silent by default. Use [SetLogger] to route diagnostics to
// any [log/slog] handler.
package wrapcheck
