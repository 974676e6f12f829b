package style

import (
	"image"

	"github.com/gogpu/wrapcheck/geom"
	"github.com/gogpu/wrapcheck/paint"
	"github.com/gogpu/wrapcheck/text"
)

// Common is the default Style.
type Common struct {
	cfg Config
}

var _ Style = (*Common)(nil)

// NewCommon creates a style from cfg.
func NewCommon(cfg Config) (*Common, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Common{cfg: cfg}, nil
}

// Default returns a Common style with DefaultConfig.
func Default() *Common {
	return &Common{cfg: DefaultConfig()}
}

// Config returns the configuration of the style.
func (s *Common) Config() Config {
	return s.cfg
}

// PixelMetric implements Style.
func (s *Common) PixelMetric(m PixelMetric, _ *Option) int {
	switch m {
	case MetricIndicatorWidth:
		return s.cfg.IndicatorWidth
	case MetricIndicatorHeight:
		return s.cfg.IndicatorHeight
	case MetricCheckBoxLabelSpacing:
		return s.cfg.LabelSpacing
	case MetricFocusFrameHMargin:
		return s.cfg.FocusFrameHMargin
	case MetricFocusFrameVMargin:
		return s.cfg.FocusFrameVMargin
	case MetricButtonIconSize:
		return s.cfg.ButtonIconSize
	default:
		return 0
	}
}

// StyleHint implements Style.
func (s *Common) StyleHint(h Hint, _ *Option) bool {
	switch h {
	case HintUnderlineShortcut:
		return s.cfg.UnderlineShortcut
	case HintEtchDisabledText:
		return s.cfg.EtchDisabledText
	default:
		return false
	}
}

// VisualAlignment implements Style.
func (s *Common) VisualAlignment(dir geom.Direction, a geom.Alignment) geom.Alignment {
	return geom.VisualAlignment(dir, a)
}

// ItemPixmapRect implements Style.
func (s *Common) ItemPixmapRect(r image.Rectangle, a geom.Alignment, size geom.Size) image.Rectangle {
	return geom.AlignedRect(geom.LeftToRight, a, size, r)
}

// GlobalStrut implements Style.
func (s *Common) GlobalStrut() geom.Size {
	return s.cfg.Strut()
}

// Palette implements Style.
func (s *Common) Palette() Palette {
	return s.cfg.Palette
}

// SubElementRect implements Style. Rectangles are computed for a
// left-to-right layout and mirrored inside opt.Rect for right-to-left.
func (s *Common) SubElementRect(e SubElement, opt *Option) image.Rectangle {
	switch e {
	case SubElementCheckBoxIndicator:
		return geom.VisualRect(opt.Direction, opt.Rect, s.indicatorRect(opt))
	case SubElementCheckBoxContents:
		return geom.VisualRect(opt.Direction, opt.Rect, s.contentsRect(opt))
	case SubElementCheckBoxFocusRect:
		return s.focusRect(opt)
	default:
		return image.Rectangle{}
	}
}

// indicatorRect returns the logical indicator rectangle.
func (s *Common) indicatorRect(opt *Option) image.Rectangle {
	w := s.PixelMetric(MetricIndicatorWidth, opt)
	h := s.PixelMetric(MetricIndicatorHeight, opt)
	y := opt.Rect.Min.Y + (opt.Rect.Dy()-h)/2
	return image.Rect(opt.Rect.Min.X, y, opt.Rect.Min.X+w, y+h)
}

// contentsRect returns the logical label rectangle. It starts at the last
// indicator column plus the label spacing.
func (s *Common) contentsRect(opt *Option) image.Rectangle {
	ir := s.indicatorRect(opt)
	spacing := s.PixelMetric(MetricCheckBoxLabelSpacing, opt)
	x := ir.Max.X - 1 + spacing
	w := opt.Rect.Dx() - ir.Dx() - spacing
	return image.Rect(x, opt.Rect.Min.Y, x+w, opt.Rect.Max.Y)
}

// focusRect returns the focus frame around the icon and text, or the
// indicator inset by one pixel when there is neither.
func (s *Common) focusRect(opt *Option) image.Rectangle {
	if opt.Icon.IsNull() && opt.Text == "" {
		return geom.Outset(s.SubElementRect(SubElementCheckBoxIndicator, opt), -1, -1)
	}

	cr := s.contentsRect(opt)
	leftV := geom.AlignAbsolute | geom.AlignLeft | geom.AlignVCenter
	var iconRect, textRect image.Rectangle
	if opt.Text != "" {
		fm := fontOf(opt)
		textRect = fm.ItemTextRect(cr, text.AlignFlags(leftV)|text.ShowMnemonic,
			opt.State.Has(StateEnabled), opt.Text)
	}
	if !opt.Icon.IsNull() {
		iconRect = s.ItemPixmapRect(cr, leftV, opt.Icon.ActualSize(opt.IconSize))
		if !textRect.Empty() {
			textRect = textRect.Add(image.Pt(iconRect.Dx()+4, 0))
		}
	}

	r := geom.Outset(iconRect.Union(textRect), 3, 2).Intersect(opt.Rect)
	return geom.VisualRect(opt.Direction, opt.Rect, r)
}

// fontOf returns the measurer of opt, or a default one.
func fontOf(opt *Option) *text.Measurer {
	if opt.Font != nil {
		return opt.Font
	}
	return text.NewMeasurer(nil)
}

// DrawPrimitive implements Style.
func (s *Common) DrawPrimitive(pe Primitive, opt *Option, p paint.Painter) {
	switch pe {
	case PrimitiveFocusRect:
		p.DrawDottedRect(opt.Rect, opt.Palette.Focus)
	case PrimitiveIndicatorCheckBox:
		s.drawIndicator(opt, p)
	}
}

// drawIndicator draws the check box frame and its mark inside opt.Rect.
func (s *Common) drawIndicator(opt *Option, p paint.Painter) {
	r := opt.Rect
	pal := opt.Palette
	enabled := opt.State.Has(StateEnabled)

	base, mark := pal.Base, pal.Indicator
	if !enabled {
		base, mark = pal.Window, pal.DisabledText
	}
	p.FillRect(r, base)
	p.StrokeRect(r, pal.Border)

	inner := geom.Outset(r, -3, -3)
	if inner.Empty() {
		return
	}
	switch {
	case opt.State.Has(StateOn):
		// Check mark: a short stroke down, then a long stroke up.
		mid := image.Pt(inner.Min.X+inner.Dx()/3, inner.Max.Y-1)
		p.DrawLine(image.Pt(inner.Min.X, inner.Min.Y+inner.Dy()/2), mid, mark)
		p.DrawLine(mid, image.Pt(inner.Max.X-1, inner.Min.Y), mark)
	case opt.State.Has(StateNoChange):
		y := inner.Min.Y + inner.Dy()/2
		p.FillRect(image.Rect(inner.Min.X, y-1, inner.Max.X, y+1), mark)
	}
}

// DrawControl implements Style.
func (s *Common) DrawControl(ce Control, opt *Option, p paint.Painter) {
	switch ce {
	case ControlCheckBox:
		sub := *opt
		sub.Rect = s.SubElementRect(SubElementCheckBoxIndicator, opt)
		s.DrawPrimitive(PrimitiveIndicatorCheckBox, &sub, p)

		sub.Rect = s.SubElementRect(SubElementCheckBoxContents, opt)
		s.DrawControl(ControlCheckBoxLabel, &sub, p)

		if opt.State.Has(StateHasFocus) {
			sub.Rect = s.SubElementRect(SubElementCheckBoxFocusRect, opt)
			s.DrawPrimitive(PrimitiveFocusRect, &sub, p)
		}
	case ControlCheckBoxLabel:
		s.drawLabel(opt, p)
	}
}

// drawLabel draws the icon and text of opt inside opt.Rect.
func (s *Common) drawLabel(opt *Option, p paint.Painter) {
	align := s.VisualAlignment(opt.Direction, geom.AlignLeft|geom.AlignVCenter)
	flags := text.AlignFlags(align) | text.ShowMnemonic
	if !s.StyleHint(HintUnderlineShortcut, opt) {
		flags |= text.HideMnemonic
	}
	enabled := opt.State.Has(StateEnabled)

	textRect := opt.Rect
	if !opt.Icon.IsNull() {
		mode := paint.IconNormal
		if !enabled {
			mode = paint.IconDisabled
		}
		pm := opt.Icon.Pixmap(opt.IconSize, mode)
		s.DrawItemPixmap(p, opt.Rect, align, pm)

		inset := opt.Icon.ActualSize(opt.IconSize).W + 4
		if opt.Direction == geom.RightToLeft {
			textRect.Max.X -= inset
		} else {
			textRect.Min.X += inset
		}
	}
	if opt.Text != "" {
		s.DrawItemText(p, textRect, flags, opt.Palette, enabled, opt.Text, opt.Font)
	}
}

// DrawItemPixmap implements Style.
func (s *Common) DrawItemPixmap(p paint.Painter, r image.Rectangle, a geom.Alignment, pm image.Image) {
	if pm == nil {
		return
	}
	p.DrawImage(s.ItemPixmapRect(r, a, geom.SizeOf(pm.Bounds())), pm)
}

// DrawItemText implements Style. Disabled text is drawn in the disabled
// color, over a light copy offset by one pixel when the style etches it.
func (s *Common) DrawItemText(p paint.Painter, r image.Rectangle, flags text.Flags, pal Palette, enabled bool, str string, m *text.Measurer) {
	if str == "" {
		return
	}
	if m == nil {
		m = text.NewMeasurer(nil)
	}
	if enabled {
		p.DrawText(r, flags, m, str, pal.Text)
		return
	}
	if s.StyleHint(HintEtchDisabledText, nil) {
		p.DrawText(r.Add(image.Pt(1, 1)), flags, m, str, pal.Light)
	}
	p.DrawText(r, flags, m, str, pal.DisabledText)
}
