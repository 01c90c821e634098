package display

import (
	"github.com/harrison/cairn/internal/models"
)

// traverse renders a level, then each real subdirectory below it under a
// "<path>:" title. Counts accumulate across every level. title is empty for
// the starting level.
func (r *renderer) traverse(mode Mode, entries []models.Entry, title string) {
	if title != "" {
		r.out.line("\n" + r.deps.Styler.PathHeader(title) + ":")
	}
	r.level(mode, entries)

	for _, e := range entries {
		r.counts.Add(e)
	}
	for _, e := range entries {
		if models.IsDir(e) {
			r.traverse(mode, r.deps.Reader.List(e.Path()), e.Path())
		}
	}
}
