package text

import (
	"slices"
	"strings"
	"unicode"

	"github.com/go-text/typesetting/segmenter"
)

// WrapMode selects where a line may end.
type WrapMode uint8

const (
	// WrapNone keeps every paragraph on one line.
	WrapNone WrapMode = iota
	// WrapWord ends lines at Unicode line break opportunities (UAX #14).
	// A word wider than the line overflows.
	WrapWord
	// WrapChar ends lines at any grapheme cluster boundary.
	WrapChar
	// WrapWordChar behaves like WrapWord but splits a word that does not
	// fit on a line of its own at grapheme cluster boundaries.
	WrapWordChar
)

var wrapModeNames = [...]string{
	WrapNone:     "None",
	WrapWord:     "Word",
	WrapChar:     "Char",
	WrapWordChar: "WordChar",
}

// String returns the string representation of the wrap mode.
func (m WrapMode) String() string {
	if int(m) < len(wrapModeNames) {
		return wrapModeNames[m]
	}
	return unknownStr
}

// WrapResult is one wrapped line.
type WrapResult struct {
	// Text is the line without trailing white space.
	Text string
	// Start and End are byte offsets of the line, trailing white space
	// included, in the wrapped string.
	Start int
	End   int
}

// WrapText breaks s into lines no wider than maxWidth, measured with face.
// Hard line breaks (\n, \r\n, \r) end a paragraph in every mode, and each
// paragraph is wrapped on its own. With a maxWidth of zero or less every
// break opportunity is taken, giving the narrowest layout.
func WrapText(s string, face Face, maxWidth float64, mode WrapMode) []WrapResult {
	if s == "" {
		return []WrapResult{{}}
	}
	w := wrapper{face: face, maxWidth: maxWidth, mode: mode}
	for _, p := range splitParagraphs(s) {
		w.paragraph(s[p.Start:p.End], p.Start)
	}
	return w.lines
}

// splitParagraphs returns the byte ranges of the lines of s, treating
// \n, \r\n and \r as separators.
func splitParagraphs(s string) []WrapResult {
	paras := make([]WrapResult, 0, 1)
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			paras = append(paras, WrapResult{Start: start, End: i})
			start = i + 1
		case '\r':
			paras = append(paras, WrapResult{Start: start, End: i})
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	return append(paras, WrapResult{Start: start, End: len(s)})
}

// boundary is a byte offset where a line may end.
type boundary struct {
	end  int
	hard bool
}

// wrapper carries the state of one WrapText call.
type wrapper struct {
	face     Face
	maxWidth float64
	mode     WrapMode
	seg      segmenter.Segmenter
	lines    []WrapResult
}

// paragraph wraps one paragraph starting at byte offset off.
func (w *wrapper) paragraph(p string, off int) {
	if w.mode == WrapNone || strings.TrimSpace(p) == "" {
		w.emit(p, off, 0, len(p))
		return
	}

	var bounds []boundary
	if w.mode == WrapChar {
		bounds = w.graphemeBounds(p)
	} else {
		bounds = w.lineBounds(p)
	}

	for start := 0; start < len(p); {
		end := w.lineEnd(p, start, bounds)
		w.emit(p, off, start, end)
		start = skipSpace(p, end)
	}
}

// lineEnd returns where the line starting at start ends: the last
// boundary whose line fits, or a mandatory break before it. A first
// segment that does not fit overflows, except in WrapWordChar mode where
// it is split between grapheme clusters.
func (w *wrapper) lineEnd(p string, start int, bounds []boundary) int {
	i := slices.IndexFunc(bounds, func(b boundary) bool { return b.end > start })
	first := bounds[i].end

	end := -1
	for ; i < len(bounds); i++ {
		b := bounds[i]
		if !w.fits(p[start:b.end]) {
			break
		}
		end = b.end
		if b.hard {
			return end
		}
	}
	switch {
	case end >= 0:
		return end
	case w.mode == WrapWordChar:
		return start + w.splitWord(p[start:first])
	default:
		return first
	}
}

// splitWord returns the length of the longest grapheme prefix of word
// that fits. The first grapheme is always taken.
func (w *wrapper) splitWord(word string) int {
	bounds := w.graphemeBounds(word)
	n := bounds[0].end
	for _, b := range bounds[1:] {
		if !w.fits(word[:b.end]) {
			break
		}
		n = b.end
	}
	return n
}

// lineBounds returns the UAX #14 line break opportunities of p.
func (w *wrapper) lineBounds(p string) []boundary {
	runes, offsets := splitRunes(p)
	w.seg.Init(runes)
	bounds := make([]boundary, 0, 8)
	it := w.seg.LineIterator()
	for it.Next() {
		l := it.Line()
		bounds = append(bounds, boundary{
			end:  offsets[l.Offset+len(l.Text)],
			hard: l.IsMandatoryBreak,
		})
	}
	return bounds
}

// graphemeBounds returns the grapheme cluster boundaries of p.
func (w *wrapper) graphemeBounds(p string) []boundary {
	runes, offsets := splitRunes(p)
	w.seg.Init(runes)
	bounds := make([]boundary, 0, len(runes))
	it := w.seg.GraphemeIterator()
	for it.Next() {
		g := it.Grapheme()
		bounds = append(bounds, boundary{end: offsets[g.Offset+len(g.Text)]})
	}
	return bounds
}

// splitRunes returns the runes of s and the byte offset of each rune,
// followed by len(s).
func splitRunes(s string) ([]rune, []int) {
	runes := make([]rune, 0, len(s))
	offsets := make([]int, 0, len(s)+1)
	for i, r := range s {
		runes = append(runes, r)
		offsets = append(offsets, i)
	}
	return runes, append(offsets, len(s))
}

// fits reports whether line, without trailing white space, fits.
func (w *wrapper) fits(line string) bool {
	return w.maxWidth > 0 && measure(w.face, TrimRightSpace(line)) <= w.maxWidth
}

func (w *wrapper) emit(p string, off, start, end int) {
	w.lines = append(w.lines, WrapResult{
		Text:  TrimRightSpace(p[start:end]),
		Start: off + start,
		End:   off + end,
	})
}

// skipSpace returns the offset of the first non-space rune of p at or
// after i.
func skipSpace(p string, i int) int {
	if j := strings.IndexFunc(p[i:], func(r rune) bool { return !unicode.IsSpace(r) }); j >= 0 {
		return i + j
	}
	return len(p)
}

// measure returns the advance of s, or zero without a face.
func measure(face Face, s string) float64 {
	if face == nil || s == "" {
		return 0
	}
	return face.Advance(s)
}

// MeasureText measures the total advance width of s.
func MeasureText(s string, face Face) float64 {
	return measure(face, s)
}

// TrimRightSpace removes trailing white space from s.
func TrimRightSpace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
