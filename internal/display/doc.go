// Package display turns listed entries into terminal output.
//
// A render pass is started with Render, which picks one of four modes from
// the options alone:
//
//   - Grid packs bare names into as many columns as the width allows
//   - List prints one aligned row per entry whenever any column besides the
//     name is requested
//   - Tree (streaming) prints each entry as its directory is read
//   - Tree (table) builds the whole tree first so columns line up
//
// List and Grid close with a summary line such as "2 directories and 1 file.".
// With recursion on, each subdirectory follows under a "<path>:" title and the
// summary covers every level.
//
// # Styling
//
// A Styler is built once per run:
//
//	styler := display.NewStyler(&opts, display.ProcessEnvironment(), cfg.Theme)
//
// Colours come from a theme.Theme and go through fatih/color objects that
// are each switched on or off explicitly, so output written to a buffer in
// tests is deterministic. Sizes are coloured by unit, dates by age and
// permissions one character at a time. Names
// may carry an icon, shell quoting and an OSC 8 hyperlink.
//
// # Warnings
//
// Warning prints an indented yellow block to stderr, used when a search
// pattern is rejected:
//
//	display.WarnInvalidPattern(pattern, root, err).Display(os.Stderr)
//
// All output goes through io.Writer values for testability.
package display
