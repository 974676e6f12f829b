package wrapcheck

import (
	"image"
	"strings"
	"unicode"

	"github.com/gogpu/wrapcheck/geom"
	"github.com/gogpu/wrapcheck/layout"
	"github.com/gogpu/wrapcheck/paint"
	"github.com/gogpu/wrapcheck/style"
	"github.com/gogpu/wrapcheck/text"
)

// CheckState is the state of the indicator.
type CheckState int

const (
	// Unchecked shows an empty indicator.
	Unchecked CheckState = iota
	// PartiallyChecked shows a bar, used by tristate check boxes.
	PartiallyChecked
	// Checked shows a check mark.
	Checked
)

// String returns the string representation of the check state.
func (s CheckState) String() string {
	switch s {
	case Unchecked:
		return "Unchecked"
	case PartiallyChecked:
		return "PartiallyChecked"
	case Checked:
		return "Checked"
	default:
		return "Unknown"
	}
}

// CheckBox is a check box whose label wraps onto as many lines as the
// width it is given requires.
//
// Coordinates passed to HitButton and HandleClick, and the rectangles
// returned by Rects, are relative to the top-left corner of the widget.
//
// A CheckBox is not safe for concurrent use.
type CheckBox struct {
	text        string
	shortcut    string
	mnemonicCut bool
	icon        *paint.Icon
	iconSize    geom.Size

	style         style.Style
	explicitStyle bool
	font          *text.Measurer
	explicitFace  text.Face
	polished      bool

	margins   geom.Margins
	direction geom.Direction
	geometry  image.Rectangle
	minSize   geom.Size
	maxSize   geom.Size

	enabled   bool
	focused   bool
	state     CheckState
	tristate  bool
	onToggled func(CheckState)

	cache geometryCache
}

var (
	_ layout.Item    = (*CheckBox)(nil)
	_ layout.Painter = (*CheckBox)(nil)
	_ layout.Clicker = (*CheckBox)(nil)
)

// New creates a check box without a label.
//
// Example:
//
//	cb := wrapcheck.New(wrapcheck.WithText("Wrap long lines"))
func New(opts ...Option) *CheckBox {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cb := &CheckBox{
		icon:      o.icon,
		iconSize:  o.iconSize,
		style:     o.style,
		margins:   o.margins,
		direction: o.direction,
		enabled:   o.enabled,
		state:     o.state,
		tristate:  o.tristate,
		minSize:   o.minSize,
		maxSize:   o.maxSize,
		onToggled: o.onToggled,
	}
	cb.explicitStyle = o.style != nil
	if o.face != nil {
		cb.explicitFace = o.face
		cb.font = text.NewMeasurer(o.face)
	}
	cb.setText(o.text)
	if o.shortcut != "" {
		cb.shortcut = o.shortcut
		cb.mnemonicCut = false
	}
	return cb
}

// NewWithText creates a check box with the given label.
func NewWithText(s string, opts ...Option) *CheckBox {
	return New(append([]Option{WithText(s)}, opts...)...)
}

// ensurePolished resolves the style and font once, before the first
// geometry computation.
func (cb *CheckBox) ensurePolished() {
	if cb.polished {
		return
	}
	if cb.style == nil {
		cb.style = style.Default()
	}
	if cb.font == nil {
		cb.font = text.NewMeasurer(cb.explicitFace)
	}
	cb.polished = true
	Logger().Debug("wrapcheck: polish",
		"text", cb.text,
		"line_spacing", cb.font.LineSpacing(),
		"explicit_style", cb.explicitStyle)
}

// invalidate drops every cached hint and rectangle.
func (cb *CheckBox) invalidate() {
	cb.cache = geometryCache{}
}

// Text returns the label.
func (cb *CheckBox) Text() string {
	return cb.text
}

// SetText sets the label. A mnemonic in the label replaces the shortcut
// previously derived from a mnemonic; an explicit shortcut is kept.
func (cb *CheckBox) SetText(s string) {
	if s == cb.text {
		return
	}
	cb.setText(s)
	cb.invalidate()
}

func (cb *CheckBox) setText(s string) {
	cb.text = s
	if r, ok := text.Mnemonic(s); ok {
		if cb.shortcut == "" || cb.mnemonicCut {
			cb.shortcut = "Alt+" + string(unicode.ToUpper(r))
			cb.mnemonicCut = true
		}
		return
	}
	if cb.mnemonicCut {
		cb.shortcut = ""
		cb.mnemonicCut = false
	}
}

// Shortcut returns the keyboard shortcut, or "" if there is none.
func (cb *CheckBox) Shortcut() string {
	return cb.shortcut
}

// SetShortcut sets the keyboard shortcut. Pass "" to remove it.
func (cb *CheckBox) SetShortcut(seq string) {
	seq = strings.TrimSpace(seq)
	if seq == cb.shortcut && !cb.mnemonicCut {
		return
	}
	cb.shortcut = seq
	cb.mnemonicCut = false
	cb.invalidate()
}

// Icon returns the icon, or nil if there is none.
func (cb *CheckBox) Icon() *paint.Icon {
	return cb.icon
}

// SetIcon sets the icon. Pass nil to remove it.
func (cb *CheckBox) SetIcon(icon *paint.Icon) {
	cb.icon = icon
	cb.invalidate()
}

// IconSize returns the size the icon is drawn at.
func (cb *CheckBox) IconSize() geom.Size {
	if cb.iconSize.IsEmpty() {
		cb.ensurePolished()
		n := cb.style.PixelMetric(style.MetricButtonIconSize, nil)
		return geom.Sz(n, n)
	}
	return cb.iconSize
}

// SetIconSize sets the size the icon is drawn at. The zero size restores
// the style's button icon size.
func (cb *CheckBox) SetIconSize(size geom.Size) {
	cb.iconSize = size
	cb.invalidate()
}

// Style returns the style in use.
func (cb *CheckBox) Style() style.Style {
	cb.ensurePolished()
	return cb.style
}

// SetStyle sets the style. Pass nil to restore the default style.
func (cb *CheckBox) SetStyle(s style.Style) {
	cb.style = s
	cb.explicitStyle = s != nil
	cb.polished = false
	cb.invalidate()
}

// Font returns the measurer the label is laid out with.
func (cb *CheckBox) Font() *text.Measurer {
	cb.ensurePolished()
	return cb.font
}

// SetFont sets the face the label is laid out with. Pass nil to restore
// the default face.
func (cb *CheckBox) SetFont(face text.Face) {
	cb.explicitFace = face
	cb.font = nil
	cb.polished = false
	cb.invalidate()
}

// ContentsMargins returns the margins around indicator and label.
func (cb *CheckBox) ContentsMargins() geom.Margins {
	return cb.margins
}

// SetContentsMargins sets the margins around indicator and label.
func (cb *CheckBox) SetContentsMargins(m geom.Margins) {
	cb.margins = m
	cb.invalidate()
}

// LayoutDirection returns the layout direction.
func (cb *CheckBox) LayoutDirection() geom.Direction {
	return cb.direction
}

// SetLayoutDirection sets the layout direction.
func (cb *CheckBox) SetLayoutDirection(dir geom.Direction) {
	cb.direction = dir
	cb.invalidate()
}

// IsEnabled reports whether the check box accepts clicks.
func (cb *CheckBox) IsEnabled() bool {
	return cb.enabled
}

// SetEnabled enables or disables the check box. Disabled labels are drawn
// etched, which makes their ink rectangle one pixel larger.
func (cb *CheckBox) SetEnabled(enabled bool) {
	cb.enabled = enabled
	cb.invalidate()
}

// HasFocus reports whether the focus frame is drawn.
func (cb *CheckBox) HasFocus() bool {
	return cb.focused
}

// SetFocus sets whether the check box has keyboard focus.
func (cb *CheckBox) SetFocus(focused bool) {
	cb.focused = focused
}

// CheckState returns the check state.
func (cb *CheckBox) CheckState() CheckState {
	return cb.state
}

// SetCheckState sets the check state and calls the toggled callback if it
// changed.
func (cb *CheckBox) SetCheckState(state CheckState) {
	if state == cb.state {
		return
	}
	cb.state = state
	Logger().Debug("wrapcheck: check state changed", "text", cb.text, "state", state)
	if cb.onToggled != nil {
		cb.onToggled(state)
	}
}

// IsChecked reports whether the check state is Checked.
func (cb *CheckBox) IsChecked() bool {
	return cb.state == Checked
}

// SetChecked sets the check state to Checked or Unchecked.
func (cb *CheckBox) SetChecked(checked bool) {
	if checked {
		cb.SetCheckState(Checked)
	} else {
		cb.SetCheckState(Unchecked)
	}
}

// IsTristate reports whether clicks cycle through PartiallyChecked.
func (cb *CheckBox) IsTristate() bool {
	return cb.tristate
}

// SetTristate enables or disables the PartiallyChecked state in the click
// cycle.
func (cb *CheckBox) SetTristate(tristate bool) {
	cb.tristate = tristate
}

// OnToggled sets the function called after the check state changes.
// Pass nil to remove it.
func (cb *CheckBox) OnToggled(fn func(CheckState)) {
	cb.onToggled = fn
}

// MinimumSize returns the explicit minimum size. After a Resize its height
// is the height the label needs at the new width.
func (cb *CheckBox) MinimumSize() geom.Size {
	return cb.minSize
}

// SetMinimumSize sets the explicit minimum size.
func (cb *CheckBox) SetMinimumSize(size geom.Size) {
	cb.minSize = size
	cb.invalidate()
}

// MaximumSize returns the explicit maximum size.
func (cb *CheckBox) MaximumSize() geom.Size {
	return cb.maxSize
}

// SetMaximumSize sets the explicit maximum size.
func (cb *CheckBox) SetMaximumSize(size geom.Size) {
	cb.maxSize = size
	cb.invalidate()
}

// SizePolicy implements layout.Item. The height is fixed for a given
// width and depends on it.
func (cb *CheckBox) SizePolicy() layout.SizePolicy {
	return layout.SizePolicy{
		Horizontal:     layout.Preferred,
		Vertical:       layout.Fixed,
		HeightForWidth: true,
	}
}

// Geometry implements layout.Item. It returns the outer rectangle in the
// parent's coordinates.
func (cb *CheckBox) Geometry() image.Rectangle {
	return cb.geometry
}

// Size returns the current outer size.
func (cb *CheckBox) Size() geom.Size {
	return geom.SizeOf(cb.geometry)
}

// Rect returns the outer rectangle in the widget's own coordinates.
func (cb *CheckBox) Rect() image.Rectangle {
	return image.Rectangle{Max: cb.Size().Pt()}
}

// SetGeometry implements layout.Item. A change of size goes through Resize.
func (cb *CheckBox) SetGeometry(r image.Rectangle) {
	r = r.Canon()
	if geom.SizeOf(r) == cb.Size() {
		cb.geometry = r
		return
	}
	cb.geometry = cb.geometry.Sub(cb.geometry.Min).Add(r.Min)
	cb.Resize(geom.SizeOf(r))
}

// Click advances the check state as a click would: Unchecked and Checked
// alternate, and tristate check boxes pass through PartiallyChecked.
func (cb *CheckBox) Click() {
	next := Checked
	switch {
	case cb.tristate:
		next = (cb.state + 1) % 3
	case cb.state == Checked:
		next = Unchecked
	}
	Logger().Info("wrapcheck: toggled", "text", cb.text, "from", cb.state, "to", next)
	cb.SetCheckState(next)
}

// HandleClick implements layout.Clicker. It toggles the check box when it
// is enabled and pos is inside the hit rectangle.
func (cb *CheckBox) HandleClick(pos image.Point) bool {
	if !cb.enabled || !cb.HitButton(pos) {
		return false
	}
	cb.Click()
	return true
}

// styleOption describes the check box to the style.
func (cb *CheckBox) styleOption() style.Option {
	cb.ensurePolished()
	opt := style.Option{
		Rect:      cb.Rect(),
		Direction: cb.direction,
		Text:      cb.text,
		Icon:      cb.icon,
		IconSize:  cb.IconSize(),
		Palette:   cb.style.Palette(),
		Font:      cb.font,
	}
	if cb.enabled {
		opt.State |= style.StateEnabled
	}
	if cb.focused {
		opt.State |= style.StateHasFocus
	}
	switch cb.state {
	case Checked:
		opt.State |= style.StateOn
	case PartiallyChecked:
		opt.State |= style.StateNoChange
	default:
		opt.State |= style.StateOff
	}
	return opt
}

// Paint draws the check box with its top-left corner at the painter's
// origin.
func (cb *CheckBox) Paint(p paint.Painter) {
	cb.refresh()
	opt := cb.styleOption()
	c := &cb.cache

	sub := opt
	sub.Text = ""
	sub.Icon = nil
	sub.State &^= style.StateHasFocus
	cb.style.DrawControl(style.ControlCheckBox, &sub, p)

	if !cb.icon.IsNull() {
		mode := paint.IconNormal
		if !cb.enabled {
			mode = paint.IconDisabled
		}
		pm := cb.icon.Pixmap(opt.IconSize, mode)
		cb.style.DrawItemPixmap(p, c.iconRect, c.align, pm)
	}

	cb.style.DrawItemText(p, c.textRect, c.flags, opt.Palette, cb.enabled, cb.text, cb.font)

	if cb.focused {
		fopt := opt
		fopt.Rect = c.focusRect
		cb.style.DrawPrimitive(style.PrimitiveFocusRect, &fopt, p)
	}
}
