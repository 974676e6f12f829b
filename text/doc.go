// Package text measures and draws word-wrapped labels.
//
// The pipeline follows the same separation of concerns as a typical text
// stack:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF files)
//   - Face: lightweight font instance at a specific size
//   - Measurer: wraps, measures and draws text with a Face, implementing
//     FontMetrics for widgets
//
// # Example usage
//
//	source, err := text.NewFontSource(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	face, err := source.Face(13)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m := text.NewMeasurer(face)
//
//	// Box of the label wrapped at 120 pixels.
//	r := m.BoundingRect(image.Rect(0, 0, 120, 2000), text.WordWrap, "one two three four")
//
// # Shaping
//
// By default advances come from golang.org/x/image/font, which applies
// kerning but no other OpenType features. For HarfBuzz-level shaping, pass
// a GoTextShaper (backed by go-text/typesetting) when creating the face:
//
//	face, err := source.Face(13, text.WithShaper(text.NewGoTextShaper()))
//
// # Line breaking
//
// WordWrap ends lines at the Unicode line break opportunities (UAX #14)
// found by the go-text segmenter, so ideographs, hyphens and no-break
// spaces wrap as expected. WrapAnywhere breaks between grapheme clusters.
//
// # Flags
//
// Layout is controlled by Flags, which embed a geom.Alignment in their low
// bits and add wrapping, mnemonic and direction flags on top.
package text
