package display

import (
	"github.com/harrison/cairn/internal/layout"
	"github.com/harrison/cairn/internal/models"
)

// grid packs styled names into as many columns as the output width allows
func (r *renderer) grid(entries []models.Entry) {
	if len(entries) == 0 {
		return
	}
	alignSpace := anyQuotable(entries)
	cells := make([]layout.Cell, 0, len(entries))
	for _, e := range entries {
		cells = append(cells, layout.NewCell(r.deps.Styler.Name(e, alignSpace, false)))
	}
	grid := layout.NewGrid(cells)
	if r.opts.Across {
		grid.Direction = layout.LeftToRight
	}
	r.out.write(grid.Fit(r.width()).String())
}

func (r *renderer) width() int {
	if r.deps.Width <= 0 {
		return layout.Unlimited
	}
	return r.deps.Width
}
