package layout

import (
	"strings"
)

// Cell is a pre-styled fragment with its measured visible width
type Cell struct {
	Contents string
	Width    int
	Align    Alignment
}

// NewCell measures contents and wraps it in a left-aligned cell
func NewCell(contents string) Cell {
	return Cell{Contents: contents, Width: Measure(contents), Align: AlignLeft}
}

// Direction is the order cells are placed in
type Direction int

const (
	// TopToBottom fills each column before moving right, like ls
	TopToBottom Direction = iota
	// LeftToRight fills each row before moving down
	LeftToRight
)

// Grid arranges cells into as many columns as fit a width
type Grid struct {
	Cells     []Cell
	Separator int // spaces between columns
	Direction Direction
}

// NewGrid creates a column-major grid with a two-space separator
func NewGrid(cells []Cell) *Grid {
	return &Grid{Cells: cells, Separator: 2, Direction: TopToBottom}
}

// Display is a grid committed to a column count, ready to print
type Display struct {
	cells        []Cell
	columnWidths []int
	columns      int
	rows         int
	direction    Direction
	separator    int
}

// Columns returns the committed column count
func (d Display) Columns() int { return d.columns }

// Rows returns the number of printed rows
func (d Display) Rows() int { return d.rows }

// FitIntoColumns commits the grid to n columns (at least one)
func (g *Grid) FitIntoColumns(n int) Display {
	if n < 1 {
		n = 1
	}
	d := Display{cells: g.Cells, direction: g.Direction, separator: g.Separator}
	if len(g.Cells) == 0 {
		return d
	}
	if n > len(g.Cells) {
		n = len(g.Cells)
	}
	d.rows = ceilDiv(len(g.Cells), n)
	if g.Direction == TopToBottom {
		// with rows fixed, trailing columns may be empty; drop them so they
		// never count towards the width
		n = ceilDiv(len(g.Cells), d.rows)
	}
	d.columns = n
	d.columnWidths = make([]int, n)
	for i, cell := range g.Cells {
		col := d.columnOf(i)
		if cell.Width > d.columnWidths[col] {
			d.columnWidths[col] = cell.Width
		}
	}
	return d
}

// FitIntoWidth scans column counts upward from one and keeps the arrangement
// with the most columns whose total width fits. Column-major widths are not
// monotonic in the count, so an overflow does not end the scan; it stops once
// columns of the narrowest cell could not fit, or at a single row.
// It reports false when not even a single column fits.
func (g *Grid) FitIntoWidth(width int) (Display, bool) {
	if len(g.Cells) == 0 {
		return g.FitIntoColumns(1), true
	}
	narrowest := g.Cells[0].Width
	for _, c := range g.Cells[1:] {
		if c.Width < narrowest {
			narrowest = c.Width
		}
	}

	var best Display
	found := false
	for n := 1; n <= len(g.Cells); n++ {
		d := g.FitIntoColumns(n)
		if d.columns*narrowest+g.Separator*(d.columns-1) > width {
			break
		}
		if d.TotalWidth() <= width && (!found || d.columns > best.columns ||
			(d.columns == best.columns && d.rows < best.rows)) {
			best = d
			found = true
		}
		if d.rows == 1 {
			break
		}
	}
	return best, found
}

// Fit picks the widest arrangement that fits width. It tries the analytic
// scan first; when that finds nothing it binary searches column counts by
// rendering each candidate and measuring its longest line, and finally
// settles on a single column.
func (g *Grid) Fit(width int) Display {
	if d, ok := g.FitIntoWidth(width); ok {
		return d
	}

	low, high := 1, len(g.Cells)
	if high < 1 {
		high = 1
	}
	var best Display
	found := false
	for low <= high {
		mid := low + (high-low)/2
		d := g.FitIntoColumns(mid)
		if d.MaxLineWidth() <= width {
			best = d
			found = true
			low = mid + 1
		} else {
			high = mid - 1
		}
	}
	if found {
		return best
	}
	return g.FitIntoColumns(1)
}

// TotalWidth is the sum of the column widths plus separators
func (d Display) TotalWidth() int {
	if d.columns == 0 {
		return 0
	}
	total := d.separator * (d.columns - 1)
	for _, w := range d.columnWidths {
		total += w
	}
	return total
}

// MaxLineWidth renders the display and measures its longest line
func (d Display) MaxLineWidth() int {
	longest := 0
	for _, line := range strings.Split(d.String(), "\n") {
		if w := Measure(line); w > longest {
			longest = w
		}
	}
	return longest
}

// String renders one line per row, each newline-terminated. The last cell on
// a row is never padded and trailing whitespace is trimmed.
func (d Display) String() string {
	if d.columns == 0 || len(d.cells) == 0 {
		return ""
	}
	var b strings.Builder
	sep := strings.Repeat(" ", d.separator)
	for row := 0; row < d.rows; row++ {
		var parts []string
		for col := 0; col < d.columns; col++ {
			cell, ok := d.cellAt(row, col)
			if !ok {
				continue
			}
			_, hasNext := d.cellAt(row, col+1)
			if col == d.columns-1 || !hasNext {
				parts = append(parts, cell.Contents)
			} else {
				parts = append(parts, Pad(cell.Contents, d.columnWidths[col], cell.Align))
			}
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, sep), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

func (d Display) columnOf(index int) int {
	if d.direction == TopToBottom {
		return index / d.rows
	}
	return index % d.columns
}

func (d Display) cellAt(row, col int) (Cell, bool) {
	if col >= d.columns {
		return Cell{}, false
	}
	var index int
	if d.direction == TopToBottom {
		index = col*d.rows + row
	} else {
		index = row*d.columns + col
	}
	if index >= len(d.cells) {
		return Cell{}, false
	}
	return d.cells[index], true
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
