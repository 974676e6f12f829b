package wrapcheck

import (
	"image"

	"github.com/gogpu/wrapcheck/geom"
	"github.com/gogpu/wrapcheck/style"
	"github.com/gogpu/wrapcheck/text"
)

const (
	// labelGap is the gap between the icon and the text, and the slack
	// added around the indicator and text.
	labelGap = 4
	// focusOutsetX and focusOutsetY grow the label ink into the focus frame.
	focusOutsetX = 3
	focusOutsetY = 2
	// probeHeight bounds the height of a wrapped text measurement.
	probeHeight = 2000
)

// geometryCache holds everything derived from the widget state. The zero
// value is an empty cache.
type geometryCache struct {
	hintsValid  bool
	sizeHint    geom.Size
	minSizeHint geom.Size

	rectsValid    bool
	align         geom.Alignment
	flags         text.Flags
	indicatorRect image.Rectangle
	contentRect   image.Rectangle
	iconRect      image.Rectangle
	textRect      image.Rectangle
	focusRect     image.Rectangle
	hitRect       image.Rectangle
}

// Rects are the rectangles a check box derives from its size, in the
// widget's own coordinates. Icon is empty without an icon.
type Rects struct {
	Indicator image.Rectangle
	Contents  image.Rectangle
	Icon      image.Rectangle
	Text      image.Rectangle
	Focus     image.Rectangle
	Hit       image.Rectangle
}

// hasContent reports whether there is an icon or a label.
func (cb *CheckBox) hasContent() bool {
	return cb.text != "" || !cb.icon.IsNull()
}

// visualAlignment is the label alignment: leading edge, vertically centered.
func (cb *CheckBox) visualAlignment() geom.Alignment {
	return cb.style.VisualAlignment(cb.direction, geom.AlignLeft|geom.AlignVCenter)
}

// textFlags returns the flags the label is laid out and drawn with.
func (cb *CheckBox) textFlags(align geom.Alignment) text.Flags {
	flags := text.WordWrap | text.AlignFlags(align)
	if text.IsRightToLeft(cb.text) {
		flags |= text.ForceRightToLeft
	} else {
		flags |= text.ForceLeftToRight
	}
	if cb.shortcut != "" {
		flags |= text.ShowMnemonic
		if !cb.style.StyleHint(style.HintUnderlineShortcut, nil) {
			flags |= text.HideMnemonic
		}
	}
	return flags
}

// textSize measures s wrapped at width inside a tall probe rectangle.
func textSize(fm text.FontMetrics, width int, flags text.Flags, s string) geom.Size {
	return geom.SizeOf(fm.BoundingRect(image.Rect(0, 0, width, probeHeight), flags, s))
}

// sizeForWidth returns the outer size needed to show the whole label at
// outer width w. A negative w asks for a natural width: the label is first
// measured at the maximum width and then squared up.
func (cb *CheckBox) sizeForWidth(w int) geom.Size {
	cb.ensurePolished()

	if cb.minSize.W > 0 {
		w = max(w, cb.minSize.W)
	}

	indW := cb.style.PixelMetric(style.MetricIndicatorWidth, nil)
	indH := cb.style.PixelMetric(style.MetricIndicatorHeight, nil)
	spacing := cb.style.PixelMetric(style.MetricCheckBoxLabelSpacing, nil)

	indicatorMargin := geom.Sz(indW, labelGap)
	if cb.hasContent() {
		indicatorMargin.W += labelGap + spacing
	}
	var iconMargin, iconSize geom.Size
	hasIcon := !cb.icon.IsNull()
	if hasIcon {
		iconSize = cb.IconSize()
		iconMargin = geom.Sz(iconSize.W+labelGap, 0)
	}
	hfix := cb.margins.Horizontal() + indicatorMargin.W + iconMargin.W

	tryWidth := w < 0
	if tryWidth {
		w = cb.maxSize.W
	}
	wt := w - hfix + labelGap

	var fm text.FontMetrics = cb.font
	flags := cb.textFlags(cb.visualAlignment())
	t := textSize(fm, wt, flags, cb.text)
	if tryWidth {
		ls := fm.LineSpacing()
		if t.H < 4*ls && t.W > wt/2 {
			t = textSize(fm, wt/2, flags, cb.text)
		}
		if t.H < 2*ls && t.W > wt/4 {
			t = textSize(fm, wt/4, flags, cb.text)
		}
	}

	size := t.Add(cb.margins.Size()).Add(indicatorMargin).Add(iconMargin)
	size = size.ExpandedTo(cb.minSize).ExpandedTo(geom.Sz(indW, indH))
	if hasIcon {
		size = size.ExpandedTo(iconSize)
	}
	return size
}

// HeightForWidth implements layout.Item.
func (cb *CheckBox) HeightForWidth(w int) int {
	return cb.sizeForWidth(w).H
}

// ensureHints computes the size hints if the cache lacks them.
func (cb *CheckBox) ensureHints() {
	c := &cb.cache
	if c.hintsValid {
		return
	}
	cb.ensurePolished()

	pref := cb.sizeForWidth(-1)
	minH := min(cb.sizeForWidth(cb.maxSize.W).H, pref.H)
	minSize := geom.Sz(cb.sizeForWidth(0).W, minH)

	strut := cb.style.GlobalStrut()
	c.sizeHint = pref.ExpandedTo(strut)
	c.minSizeHint = minSize.ExpandedTo(strut)
	c.hintsValid = true

	Logger().Debug("wrapcheck: size hints",
		"text", cb.text,
		"preferred", c.sizeHint,
		"minimum", c.minSizeHint)
}

// SizeHint implements layout.Item. It is the size at the natural width of
// the label.
func (cb *CheckBox) SizeHint() geom.Size {
	cb.ensureHints()
	return cb.cache.sizeHint
}

// MinimumSizeHint implements layout.Item. Its width is the narrowest the
// widget can get and its height the smallest the label wraps to.
func (cb *CheckBox) MinimumSizeHint() geom.Size {
	cb.ensureHints()
	return cb.cache.minSizeHint
}

// Resize sets the outer size and derives the minimum height the label
// needs at the new width. The widget grows if it is shorter than that.
func (cb *CheckBox) Resize(size geom.Size) {
	size = size.ExpandedTo(geom.Size{})
	cb.geometry = size.Rect(cb.geometry.Min)

	minW := cb.minSize.W
	cb.minSize = geom.Size{}
	cb.invalidate()
	h := cb.HeightForWidth(size.W)
	cb.minSize = geom.Sz(minW, h)
	cb.invalidate()

	if size.H < h || size.W < minW {
		cb.geometry = size.ExpandedTo(cb.minSize).Rect(cb.geometry.Min)
	}

	Logger().Debug("wrapcheck: height for width",
		"text", cb.text,
		"width", size.W,
		"height", h,
		"size", cb.Size())
}

// refresh rebuilds the cached rectangles and text flags if needed.
func (cb *CheckBox) refresh() {
	c := &cb.cache
	if c.rectsValid {
		return
	}
	opt := cb.styleOption()
	outer := opt.Rect

	c.align = cb.visualAlignment()
	c.flags = cb.textFlags(c.align)
	c.indicatorRect = cb.style.SubElementRect(style.SubElementCheckBoxIndicator, &opt)
	c.contentRect = cb.style.SubElementRect(style.SubElementCheckBoxContents, &opt)

	c.iconRect = image.Rectangle{}
	c.textRect = c.contentRect
	if !cb.icon.IsNull() {
		c.iconRect = cb.style.ItemPixmapRect(c.contentRect, c.align, cb.icon.ActualSize(opt.IconSize))
		inset := opt.IconSize.W + labelGap
		if cb.direction == geom.RightToLeft {
			c.textRect.Max.X -= inset
		} else {
			c.textRect.Min.X += inset
		}
	}

	if !cb.hasContent() {
		c.focusRect = geom.Outset(c.indicatorRect, -1, -1).Intersect(outer)
		c.hitRect = c.focusRect
	} else {
		var ink image.Rectangle
		if cb.text != "" {
			var fm text.FontMetrics = cb.font
			ink = fm.ItemTextRect(c.textRect, c.flags, cb.enabled, cb.text)
		}
		c.focusRect = geom.Outset(c.iconRect.Union(ink), focusOutsetX, focusOutsetY).Intersect(outer)

		inner := cb.margins.Shrink(outer)
		hit := c.focusRect
		if cb.direction == geom.RightToLeft {
			hit.Max.X = max(hit.Max.X, inner.Max.X)
		} else {
			hit.Min.X = min(hit.Min.X, inner.Min.X)
		}
		c.hitRect = hit.Union(c.indicatorRect.Intersect(outer))
	}
	c.rectsValid = true

	Logger().Debug("wrapcheck: geometry",
		"text", cb.text,
		"outer", outer,
		"contents", c.contentRect,
		"icon", c.iconRect,
		"text_rect", c.textRect,
		"focus", c.focusRect,
		"hit", c.hitRect,
		"flags", c.flags)
}

// Rects returns the cached rectangles, rebuilding them if needed.
func (cb *CheckBox) Rects() Rects {
	cb.refresh()
	c := &cb.cache
	return Rects{
		Indicator: c.indicatorRect,
		Contents:  c.contentRect,
		Icon:      c.iconRect,
		Text:      c.textRect,
		Focus:     c.focusRect,
		Hit:       c.hitRect,
	}
}

// TextFlags returns the flags the label is laid out with.
func (cb *CheckBox) TextFlags() text.Flags {
	cb.refresh()
	return cb.cache.flags
}

// HitButton reports whether pos, in widget coordinates, is over the
// clickable area: the label, its focus frame and the indicator.
func (cb *CheckBox) HitButton(pos image.Point) bool {
	cb.refresh()
	return pos.In(cb.cache.hitRect)
}
