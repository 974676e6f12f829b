package wrapcheck

import (
	"github.com/gogpu/wrapcheck/geom"
	"github.com/gogpu/wrapcheck/paint"
	"github.com/gogpu/wrapcheck/style"
	"github.com/gogpu/wrapcheck/text"
)

// Option configures a CheckBox during creation.
//
// Example:
//
//	cb := wrapcheck.New(
//	    wrapcheck.WithText("Show &hidden files"),
//	    wrapcheck.WithChecked(true),
//	)
type Option func(*options)

// options holds optional configuration for CheckBox creation.
type options struct {
	text      string
	icon      *paint.Icon
	iconSize  geom.Size
	shortcut  string
	style     style.Style
	face      text.Face
	margins   geom.Margins
	direction geom.Direction
	enabled   bool
	state     CheckState
	tristate  bool
	minSize   geom.Size
	maxSize   geom.Size
	onToggled func(CheckState)
}

// defaultOptions returns the default check box options.
func defaultOptions() options {
	return options{
		enabled: true,
		maxSize: geom.Sz(geom.MaxWidgetSize, geom.MaxWidgetSize),
	}
}

// WithText sets the label. An ampersand marks the following character as
// the mnemonic and sets an Alt shortcut for it; "&&" is a literal ampersand.
func WithText(s string) Option {
	return func(o *options) {
		o.text = s
	}
}

// WithIcon sets the icon shown between the indicator and the label.
// A nil icon means none.
func WithIcon(icon *paint.Icon) Option {
	return func(o *options) {
		o.icon = icon
	}
}

// WithIconSize sets the size the icon is drawn at. The zero size uses the
// style's button icon size.
func WithIconSize(size geom.Size) Option {
	return func(o *options) {
		o.iconSize = size
	}
}

// WithShortcut sets the keyboard shortcut, for example "Alt+S". It takes
// precedence over the shortcut derived from the label mnemonic.
func WithShortcut(seq string) Option {
	return func(o *options) {
		o.shortcut = seq
	}
}

// WithStyle sets the style used for metrics and drawing.
// The default is style.Default().
func WithStyle(s style.Style) Option {
	return func(o *options) {
		o.style = s
	}
}

// WithFont sets the face the label is laid out with.
// The default is text.DefaultFace().
//
// Example:
//
//	face, err := text.GoRegular(13)
//	if err != nil {
//	    return err
//	}
//	cb := wrapcheck.New(wrapcheck.WithFont(face))
func WithFont(face text.Face) Option {
	return func(o *options) {
		o.face = face
	}
}

// WithMargins sets the contents margins around indicator and label.
func WithMargins(m geom.Margins) Option {
	return func(o *options) {
		o.margins = m
	}
}

// WithLayoutDirection sets the layout direction. Under right-to-left the
// indicator sits on the right and the label is right aligned.
func WithLayoutDirection(dir geom.Direction) Option {
	return func(o *options) {
		o.direction = dir
	}
}

// WithEnabled sets whether the check box accepts clicks.
func WithEnabled(enabled bool) Option {
	return func(o *options) {
		o.enabled = enabled
	}
}

// WithChecked sets the initial check state to Checked or Unchecked.
func WithChecked(checked bool) Option {
	return func(o *options) {
		o.state = Unchecked
		if checked {
			o.state = Checked
		}
	}
}

// WithCheckState sets the initial check state.
func WithCheckState(state CheckState) Option {
	return func(o *options) {
		o.state = state
	}
}

// WithTristate enables the PartiallyChecked state in the click cycle.
func WithTristate(tristate bool) Option {
	return func(o *options) {
		o.tristate = tristate
	}
}

// WithMinimumSize sets the explicit minimum size.
func WithMinimumSize(size geom.Size) Option {
	return func(o *options) {
		o.minSize = size
	}
}

// WithMaximumSize sets the explicit maximum size. Its width bounds the
// width tried for the preferred size hint.
func WithMaximumSize(size geom.Size) Option {
	return func(o *options) {
		o.maxSize = size
	}
}

// WithOnToggled sets the function called after the check state changes.
func WithOnToggled(fn func(CheckState)) Option {
	return func(o *options) {
		o.onToggled = fn
	}
}
