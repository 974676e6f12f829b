package text

import (
	"strings"

	"github.com/gogpu/wrapcheck/geom"
)

// Flags control how text is laid out. The low byte holds a geom.Alignment.
type Flags uint32

const (
	// SingleLine treats line breaks as spaces.
	SingleLine Flags = 0x0100
	// ShowMnemonic strips mnemonic markers and underlines the mnemonic.
	ShowMnemonic Flags = 0x0800
	// WordWrap breaks lines at word boundaries; long words overflow.
	WordWrap Flags = 0x1000
	// WrapAnywhere breaks lines at any character.
	WrapAnywhere Flags = 0x2000
	// HideMnemonic strips mnemonic markers without underlining.
	HideMnemonic Flags = 0x8000
	// ForceLeftToRight lays the text out left-to-right.
	ForceLeftToRight Flags = 0x20000
	// ForceRightToLeft lays the text out right-to-left.
	ForceRightToLeft Flags = 0x40000
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

const alignmentMask = Flags(geom.AlignHorizontalMask | geom.AlignVerticalMask)

// AlignFlags converts an alignment to layout flags.
func AlignFlags(a geom.Alignment) Flags {
	return Flags(a) & alignmentMask
}

// Alignment returns the alignment part of f.
func (f Flags) Alignment() geom.Alignment {
	return geom.Alignment(f & alignmentMask)
}

// Has reports whether every flag in o is set in f.
func (f Flags) Has(o Flags) bool {
	return f&o == o
}

// Direction returns the layout direction forced by f.
func (f Flags) Direction() geom.Direction {
	if f&ForceRightToLeft != 0 {
		return geom.RightToLeft
	}
	return geom.LeftToRight
}

var flagNames = []struct {
	flag Flags
	name string
}{
	{SingleLine, "SingleLine"},
	{ShowMnemonic, "ShowMnemonic"},
	{WordWrap, "WordWrap"},
	{WrapAnywhere, "WrapAnywhere"},
	{HideMnemonic, "HideMnemonic"},
	{ForceLeftToRight, "ForceLeftToRight"},
	{ForceRightToLeft, "ForceRightToLeft"},
}

// String lists the non-alignment flags set in f, joined by "|".
func (f Flags) String() string {
	var names []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}
	if len(names) == 0 {
		return "0"
	}
	return strings.Join(names, "|")
}
