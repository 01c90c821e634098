package layout

import "strings"

// Alignment is the side a value is pushed to within its column
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Pad pads text with spaces to width visible columns. Text already at or
// beyond width is returned unchanged.
func Pad(text string, width int, align Alignment) string {
	padding := width - Measure(text)
	if padding <= 0 {
		return text
	}
	if align == AlignRight {
		return strings.Repeat(" ", padding) + text
	}
	return text + strings.Repeat(" ", padding)
}
