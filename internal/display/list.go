package display

import (
	"strings"

	"github.com/harrison/cairn/internal/columns"
	"github.com/harrison/cairn/internal/layout"
	"github.com/harrison/cairn/internal/models"
)

// list prints one aligned row per entry. An empty level prints nothing, not
// even headers.
func (r *renderer) list(entries []models.Entry) {
	if len(entries) == 0 {
		return
	}
	cols := columns.Select(r.opts)
	widths := columns.Calculate(entries, cols, r.builder, r.opts.Headers)
	alignSpace := anyQuotable(entries)

	if r.opts.Headers {
		r.out.line(r.headerLine(cols, widths))
	}
	for _, e := range entries {
		r.out.line(strings.Join(r.cells(e, cols, widths, alignSpace), " "))
	}
}

// cells styles and pads every column of a row. The final column is left
// unpadded so rows carry no trailing spaces.
func (r *renderer) cells(e models.Entry, cols []columns.Column, widths columns.Widths, alignSpace bool) []string {
	parts := make([]string, 0, len(cols))
	for i, c := range cols {
		text := r.styledValue(e, c, alignSpace)
		if i < len(cols)-1 {
			text = layout.Pad(text, widths[c], c.Alignment())
		}
		parts = append(parts, text)
	}
	return parts
}

func (r *renderer) styledValue(e models.Entry, c columns.Column, alignSpace bool) string {
	if c.Kind == columns.Name {
		return r.deps.Styler.Name(e, alignSpace, false)
	}
	text := r.builder.Value(e, c)
	if age, ok := r.builder.Age(e, c); ok {
		return r.deps.Styler.Date(text, age)
	}
	return r.deps.Styler.Value(c, text)
}

func (r *renderer) headerLine(cols []columns.Column, widths columns.Widths) string {
	parts := make([]string, 0, len(cols))
	for i, c := range cols {
		text := r.deps.Styler.Header(c.Header())
		if i < len(cols)-1 {
			text = layout.Pad(text, widths[c], c.Alignment())
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " ")
}

func anyQuotable(entries []models.Entry) bool {
	for _, e := range entries {
		if IsQuotable(e.Name()) {
			return true
		}
	}
	return false
}
