package text

import (
	"image"
	"image/draw"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/gogpu/wrapcheck/geom"
	"github.com/gogpu/wrapcheck/internal/cache"
)

// layoutCacheSize bounds the layouts a Measurer remembers. Size negotiation
// probes the same label at a handful of widths.
const layoutCacheSize = 64

// FontMetrics answers the layout questions a widget asks about its font.
type FontMetrics interface {
	// LineSpacing returns the distance between two baselines in pixels.
	LineSpacing() int

	// BoundingRect returns the rectangle occupied by s laid out inside r
	// with flags. Wrapping uses the width of r; the height of r only
	// positions the result. Empty text yields an empty rectangle at r.Min.
	BoundingRect(r image.Rectangle, flags Flags, s string) image.Rectangle

	// ItemTextRect returns the rectangle s occupies when drawn as an item
	// inside r. Disabled text is one pixel larger for its etched shadow.
	// Empty text yields r.
	ItemTextRect(r image.Rectangle, flags Flags, enabled bool, s string) image.Rectangle
}

// Line is one laid out line of text.
type Line struct {
	// Text is the line content with mnemonic markers removed.
	Text string
	// Width is the advance of Text rounded up to whole pixels.
	Width int
	// Mnemonic is the byte offset in Text of the underlined character, or -1.
	Mnemonic int
}

// Layout is the result of laying out text at a given width.
type Layout struct {
	Lines  []Line
	Width  int
	Height int
}

// Size returns the size of the laid out block.
func (l Layout) Size() geom.Size {
	return geom.Sz(l.Width, l.Height)
}

// Measurer lays out and draws text with a single face.
// It implements FontMetrics. Layouts are cached, so a Measurer is cheap to
// query repeatedly with the same text.
type Measurer struct {
	face        Face
	lineSpacing int
	ascent      int
	layouts     *cache.Cache[layoutKey, Layout]
}

type layoutKey struct {
	text     string
	flags    Flags
	maxWidth int
}

var _ FontMetrics = (*Measurer)(nil)

// NewMeasurer creates a Measurer for face. A nil face uses DefaultFace.
func NewMeasurer(face Face) *Measurer {
	if face == nil {
		face = DefaultFace()
	}
	m := face.Metrics()
	return &Measurer{
		face:        face,
		lineSpacing: max(1, m.LineSpacing()),
		ascent:      int(math.Ceil(m.Ascent)),
		layouts:     cache.New[layoutKey, Layout](layoutCacheSize),
	}
}

// Face returns the face used for measuring and drawing.
func (m *Measurer) Face() Face {
	return m.face
}

// LineSpacing implements FontMetrics.LineSpacing.
func (m *Measurer) LineSpacing() int {
	return m.lineSpacing
}

// Ascent returns the face ascent rounded up to whole pixels.
func (m *Measurer) Ascent() int {
	return m.ascent
}

// Advance returns the advance of s rounded up to whole pixels.
func (m *Measurer) Advance(s string) int {
	return int(math.Ceil(measure(m.face, s)))
}

// Layout breaks s into lines no wider than maxWidth, as far as flags and
// the break opportunities of s allow. The result is shared with later
// calls and must not be modified.
func (m *Measurer) Layout(s string, flags Flags, maxWidth int) Layout {
	key := layoutKey{text: s, flags: flags, maxWidth: maxWidth}
	return m.layouts.GetOrCreate(key, func() Layout {
		return m.layout(s, flags, maxWidth)
	})
}

func (m *Measurer) layout(s string, flags Flags, maxWidth int) Layout {
	mnemonic := -1
	if flags&(ShowMnemonic|HideMnemonic) != 0 {
		s, mnemonic = StripMnemonic(s)
		if flags&HideMnemonic != 0 {
			mnemonic = -1
		}
	}
	if flags&SingleLine != 0 {
		s = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
	}

	wrapped := WrapText(s, m.face, float64(maxWidth), wrapMode(flags))
	l := Layout{Lines: make([]Line, 0, len(wrapped))}
	for _, w := range wrapped {
		line := Line{Text: w.Text, Width: m.Advance(w.Text), Mnemonic: -1}
		if mnemonic >= w.Start && mnemonic < w.Start+len(w.Text) {
			line.Mnemonic = mnemonic - w.Start
		}
		l.Width = max(l.Width, line.Width)
		l.Lines = append(l.Lines, line)
	}
	l.Height = len(l.Lines) * m.lineSpacing
	return l
}

// wrapMode maps layout flags to a WrapMode.
func wrapMode(flags Flags) WrapMode {
	switch {
	case flags&SingleLine != 0:
		return WrapNone
	case flags&WordWrap != 0 && flags&WrapAnywhere != 0:
		return WrapWordChar
	case flags&WrapAnywhere != 0:
		return WrapChar
	case flags&WordWrap != 0:
		return WrapWord
	default:
		return WrapNone
	}
}

// BoundingRect implements FontMetrics.BoundingRect.
func (m *Measurer) BoundingRect(r image.Rectangle, flags Flags, s string) image.Rectangle {
	if s == "" {
		return image.Rectangle{Min: r.Min, Max: r.Min}
	}
	l := m.Layout(s, flags, r.Dx())
	return geom.AlignedRect(flags.Direction(), flags.Alignment(), l.Size(), r)
}

// ItemTextRect implements FontMetrics.ItemTextRect.
func (m *Measurer) ItemTextRect(r image.Rectangle, flags Flags, enabled bool, s string) image.Rectangle {
	if s == "" {
		return r
	}
	br := m.BoundingRect(r, flags, s)
	if !enabled {
		br.Max = br.Max.Add(image.Pt(1, 1))
	}
	return br
}

// Draw renders s inside r with flags, filling glyphs with src. Each line is
// aligned on its own within the width of r; the block is aligned vertically.
func (m *Measurer) Draw(dst draw.Image, r image.Rectangle, flags Flags, s string, src image.Image) {
	if s == "" {
		return
	}
	l := m.Layout(s, flags, r.Dx())
	block := geom.AlignedRect(flags.Direction(), flags.Alignment(), l.Size(), r)
	dir := flags.Direction()
	halign := flags.Alignment() & geom.AlignHorizontalMask

	for i, line := range l.Lines {
		top := block.Min.Y + i*m.lineSpacing
		row := image.Rect(r.Min.X, top, r.Max.X, top+m.lineSpacing)
		lr := geom.AlignedRect(dir, halign, geom.Sz(line.Width, m.lineSpacing), row)
		baseline := top + m.ascent
		m.face.Draw(dst, src, float64(lr.Min.X), float64(baseline), line.Text)

		if line.Mnemonic >= 0 {
			x0 := lr.Min.X + m.Advance(line.Text[:line.Mnemonic])
			_, size := utf8.DecodeRuneInString(line.Text[line.Mnemonic:])
			x1 := x0 + m.Advance(line.Text[line.Mnemonic:line.Mnemonic+size])
			underline := image.Rect(x0, baseline+1, x1, baseline+2)
			draw.Draw(dst, underline, src, underline.Min, draw.Over)
		}
	}
}
