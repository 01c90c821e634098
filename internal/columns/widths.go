package columns

import "github.com/harrison/cairn/internal/models"

// Widths maps each selected column to the widest value it must hold
type Widths map[Column]int

// Calculate measures every entry's value for every column in one pass. With
// headers on, each column starts at its header width instead of zero.
func Calculate(entries []models.Entry, cols []Column, b *Builder, headers bool) Widths {
	measure := b.cache.Widths.Measure
	widths := make(Widths, len(cols))
	for _, c := range cols {
		if headers {
			widths[c] = measure(c.Header())
		} else {
			widths[c] = 0
		}
	}

	for _, e := range entries {
		for _, c := range cols {
			if w := measure(b.Value(e, c)); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}
