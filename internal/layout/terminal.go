package layout

import (
	"math"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// DefaultTerminalWidth is used when the terminal cannot be queried
const DefaultTerminalWidth = 80

// Unlimited is the width used when the caller asks for no limit
const Unlimited = math.MaxInt

// TerminalWidth asks the terminal behind stdout for its column count and
// falls back to DefaultTerminalWidth when stdout is not a terminal or the
// query fails
func TerminalWidth() int {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return DefaultTerminalWidth
	}
	cols, _, err := term.GetSize(int(fd))
	if err != nil || cols <= 0 {
		return DefaultTerminalWidth
	}
	return cols
}

// ResolveWidth maps a width override to a concrete limit:
// nil queries the terminal, 0 is unlimited, anything else is taken as is
func ResolveWidth(override *int) int {
	if override == nil {
		return TerminalWidth()
	}
	if *override == 0 {
		return Unlimited
	}
	return *override
}
