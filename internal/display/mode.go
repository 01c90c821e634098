package display

import (
	"fmt"
	"io"

	"github.com/harrison/cairn/internal/columns"
	"github.com/harrison/cairn/internal/fileutil"
	"github.com/harrison/cairn/internal/format"
	"github.com/harrison/cairn/internal/logger"
	"github.com/harrison/cairn/internal/models"
	"github.com/harrison/cairn/internal/theme"
)

// Mode is the renderer a listing is drawn with
type Mode int

const (
	ModeGrid Mode = iota
	ModeList
	ModeTreeStreaming
	ModeTreeTable
)

func (m Mode) String() string {
	switch m {
	case ModeGrid:
		return "grid"
	case ModeList:
		return "list"
	case ModeTreeStreaming:
		return "tree (streaming)"
	case ModeTreeTable:
		return "tree (table)"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// SelectMode decides the renderer from the options alone. Search results are
// always drawn as a list or grid, even when tree output was asked for.
func SelectMode(opts *models.Options) Mode {
	if opts.Tree && opts.Find == "" {
		if NeedsTable(opts) {
			return ModeTreeTable
		}
		return ModeTreeStreaming
	}
	if columns.NeedsAlignment(opts) {
		return ModeList
	}
	return ModeGrid
}

// NeedsTable reports whether a tree must be built up front so its columns
// can be aligned, rather than streamed as directories are read
func NeedsTable(opts *models.Options) bool {
	return columns.NeedsAlignment(opts)
}

// Deps are the collaborators a render pass draws on
type Deps struct {
	Reader   *fileutil.Reader
	Features columns.Features
	Styler   *Styler
	Log      logger.Logger
	Width    int       // resolved output width, layout.Unlimited for none
	Err      io.Writer // warnings
}

// Render lists root to w using the reader's options. The listing itself never
// fails; the returned error is the first failed write to w.
func Render(w io.Writer, root string, deps Deps) error {
	r := newRenderer(w, deps)
	opts := r.opts

	mode := SelectMode(opts)
	if opts.Find != "" {
		r.renderFlat(mode, r.search(root))
		return r.finish(mode)
	}

	switch mode {
	case ModeTreeStreaming:
		r.treeStreaming(root)
	case ModeTreeTable:
		r.treeTable(root)
	case ModeList, ModeGrid:
		entries := deps.Reader.List(root)
		if opts.Recursive {
			r.traverse(mode, entries, "")
			r.summary(r.counts)
		} else {
			r.renderFlat(mode, entries)
		}
	}
	return r.finish(mode)
}

func (r *renderer) finish(mode Mode) error {
	if text := r.counts.String(); text != "" {
		r.deps.Log.LogDebug(fmt.Sprintf("Rendered %s as %s", text, mode))
	}
	return r.out.err
}

func (r *renderer) search(root string) []models.Entry {
	s, err := fileutil.NewSearch(r.opts.Find, root, r.deps.Reader)
	if err != nil {
		warning := WarnInvalidPattern(r.opts.Find, root, err)
		warning.Colour = r.deps.Styler.Colours
		warning.Display(r.deps.Err)
		return nil
	}
	return s.Find()
}

func (r *renderer) renderFlat(mode Mode, entries []models.Entry) {
	r.level(mode, entries)
	r.counts = CountEntries(entries)
	r.summary(r.counts)
}

func (r *renderer) level(mode Mode, entries []models.Entry) {
	if mode == ModeList {
		r.list(entries)
	} else {
		r.grid(entries)
	}
}

// renderer carries the state of one render pass
type renderer struct {
	out     *output
	opts    *models.Options
	deps    Deps
	builder *columns.Builder
	counts  Counts
}

func newRenderer(w io.Writer, deps Deps) *renderer {
	opts := deps.Reader.Options()
	if deps.Styler == nil {
		deps.Styler = NewStylerWith(false, false, false, opts.QuoteName, theme.Default())
	}
	if deps.Log == nil {
		deps.Log = logger.NewNoOpLogger()
	}
	if deps.Err == nil {
		deps.Err = io.Discard
	}
	cache := format.NewCache(format.SettingsFrom(opts))
	return &renderer{
		out:     &output{w: w},
		opts:    opts,
		deps:    deps,
		builder: columns.NewBuilder(opts, cache, deps.Features),
	}
}

// output remembers the first write error and drops everything after it
type output struct {
	w   io.Writer
	err error
}

func (o *output) line(s string) {
	o.write(s + "\n")
}

func (o *output) write(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}
