package display

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/harrison/cairn/internal/models"
)

// Counts tallies what a listing showed. Anything that is not a real
// directory counts as a file.
type Counts struct {
	Dirs  int
	Files int
}

// Add counts one entry
func (c *Counts) Add(e models.Entry) {
	if models.IsDir(e) {
		c.Dirs++
	} else {
		c.Files++
	}
}

// CountEntries tallies a single level
func CountEntries(entries []models.Entry) Counts {
	var c Counts
	for _, e := range entries {
		c.Add(e)
	}
	return c
}

// String renders "2 directories and 1 file", dropping zero parts. Both zero
// renders as the empty string.
func (c Counts) String() string {
	var parts []string
	if c.Dirs > 0 {
		parts = append(parts, plural(c.Dirs, "directory", "directories"))
	}
	if c.Files > 0 {
		parts = append(parts, plural(c.Files, "file", "files"))
	}
	return strings.Join(parts, " and ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return humanize.Comma(int64(n)) + " " + many
}

func (r *renderer) summary(c Counts) {
	text := c.String()
	if text == "" {
		return
	}
	r.out.line("\n" + r.deps.Styler.Summary(text+"."))
}
