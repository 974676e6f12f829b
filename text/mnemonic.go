package text

import (
	"strings"
	"unicode/utf8"
)

// StripMnemonic removes mnemonic markers from s. "&&" becomes a literal
// ampersand and "&x" becomes "x". It returns the plain text and the byte
// offset in it of the first mnemonic character, or -1.
func StripMnemonic(s string) (string, int) {
	if !strings.Contains(s, "&") {
		return s, -1
	}

	var b strings.Builder
	b.Grow(len(s))
	index := -1
	for i := 0; i < len(s); i++ {
		if s[i] != '&' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		if s[i] != '&' && index < 0 {
			index = b.Len()
		}
		b.WriteByte(s[i])
	}
	return b.String(), index
}

// Mnemonic returns the first mnemonic character of s, if it has one.
func Mnemonic(s string) (rune, bool) {
	plain, index := StripMnemonic(s)
	if index < 0 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(plain[index:])
	return r, true
}
