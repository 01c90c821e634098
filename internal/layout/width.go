// Package layout measures the visible width of terminal text and packs
// pre-rendered cells into columns that fit a terminal.
package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	esc = '\x1b'
	bel = '\x07'
)

// Measure returns the number of terminal columns s occupies. CSI sequences
// (ESC [ ... final letter) and OSC sequences (ESC ] ... ST or BEL) count as
// zero. An ESC that starts neither contributes the width of the ESC rune alone.
func Measure(s string) int {
	width := 0
	for _, r := range StripEscapes(s) {
		width += runewidth.RuneWidth(r)
	}
	return width
}

// StripEscapes removes every CSI and OSC sequence Measure would skip
func StripEscapes(s string) string {
	if !strings.ContainsRune(s, esc) {
		return s
	}
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == esc {
			if end, ok := sequenceEnd(runes, i); ok {
				i = end
				continue
			}
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

// sequenceEnd returns the index of the last rune of the escape sequence
// starting at runes[start]. An unterminated sequence runs to the end of input.
func sequenceEnd(runes []rune, start int) (int, bool) {
	if start+1 >= len(runes) {
		return start, false
	}
	switch runes[start+1] {
	case '[':
		for j := start + 2; j < len(runes); j++ {
			if isASCIILetter(runes[j]) {
				return j, true
			}
		}
		return len(runes) - 1, true
	case ']':
		for j := start + 2; j < len(runes); j++ {
			switch runes[j] {
			case bel:
				return j, true
			case esc:
				if j+1 < len(runes) && runes[j+1] == '\\' {
					return j + 1, true
				}
			}
		}
		return len(runes) - 1, true
	default:
		return start, false
	}
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// WidthCache memoizes Measure by exact string for one render pass.
// It only grows; a listing holds a bounded number of distinct strings.
type WidthCache struct {
	widths map[string]int
}

// NewWidthCache creates an empty cache
func NewWidthCache() *WidthCache {
	return &WidthCache{widths: make(map[string]int)}
}

// Measure returns the cached width of s, measuring it on first sight
func (c *WidthCache) Measure(s string) int {
	if w, ok := c.widths[s]; ok {
		return w
	}
	w := Measure(s)
	c.widths[s] = w
	return w
}

// Len returns the number of distinct strings measured so far
func (c *WidthCache) Len() int {
	return len(c.widths)
}
