package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/harrison/cairn/internal/columns"
	"github.com/harrison/cairn/internal/logger"
	"github.com/harrison/cairn/internal/models"
)

// Reader lists directory levels according to the listing options
type Reader struct {
	opts          *models.Options
	log           logger.Logger
	icons         bool
	needsMetadata bool
	hide          []*Glob
}

// NewReader creates a reader. icons enables the child-state lookup the
// empty-directory icon depends on. Hide patterns that fail to compile are
// logged and ignored.
func NewReader(opts *models.Options, log logger.Logger, icons bool) *Reader {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	r := &Reader{
		opts:          opts,
		log:           log,
		icons:         icons,
		needsMetadata: columns.NeedsMetadata(opts),
	}
	for _, pattern := range opts.Hide {
		g, err := CompileGlob(pattern)
		if err != nil {
			log.LogWarn(fmt.Sprintf("Invalid hide pattern '%s': %v", pattern, err))
			continue
		}
		r.hide = append(r.hide, g)
	}
	return r
}

// Options returns the options the reader filters and sorts with
func (r *Reader) Options() *models.Options {
	return r.opts
}

// List returns the filtered, sorted entries of the directory at path. A path
// that is not a directory yields a single entry for itself; a missing path
// yields nothing.
func (r *Reader) List(path string) []models.Entry {
	var entries []models.Entry

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		entries = r.readDir(path)
		entries = r.applyHide(entries, path)
	} else if e, err := NewEntry(path, r.opts.ShowLinkTarget()); err == nil {
		r.prepare(e)
		entries = append(entries, e)
	}

	r.sort(entries)
	return entries
}

// Root returns the prepared entry for the listing root itself
func (r *Reader) Root(path string) (models.Entry, error) {
	e, err := NewEntry(path, r.opts.ShowLinkTarget())
	if err != nil {
		return nil, err
	}
	r.prepare(e)
	return e, nil
}

func (r *Reader) readDir(path string) []models.Entry {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		r.log.LogWarn(fmt.Sprintf("cannot read %s: %v", path, err))
	}

	entries := make([]models.Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		if !r.opts.All && strings.HasPrefix(name, ".") {
			continue
		}

		e := newEntry(filepath.Join(path, name), de.IsDir(), de.Type()&fs.ModeSymlink != 0, r.opts.ShowLinkTarget())

		dirLike := models.IsDirLike(e)
		if r.opts.Dirs && !dirLike {
			continue
		}
		if r.opts.Files && dirLike {
			continue
		}
		if r.opts.Prune && models.IsDir(e) && !computeChildren(e) {
			continue
		}

		r.prepare(e)
		entries = append(entries, e)
	}
	return entries
}

// prepare loads what the renderers will ask for: metadata when a column
// needs it, child state when icons distinguish empty directories
func (r *Reader) prepare(e models.Entry) {
	if r.needsMetadata {
		e.LoadMetadata(Lstat)
	}
	if r.icons && models.IsDir(e) {
		computeChildren(e)
	}
}

func (r *Reader) applyHide(entries []models.Entry, path string) []models.Entry {
	if len(r.opts.Hide) == 0 {
		return entries
	}

	kept := entries[:0]
	for _, e := range entries {
		if !r.hidden(e.Name()) {
			kept = append(kept, e)
		}
	}

	if len(kept) == len(entries) {
		r.log.LogInfo(fmt.Sprintf("Hide pattern(s) %q matched nothing in '%s'", r.opts.Hide, path))
	}
	return kept
}

func (r *Reader) hidden(name string) bool {
	for _, g := range r.hide {
		if g.Match(name) {
			return true
		}
	}
	return false
}

func (r *Reader) sort(entries []models.Entry) {
	if r.opts.Sort.NeedsMetadata() {
		for _, e := range entries {
			e.LoadMetadata(Lstat)
		}
	}

	switch r.opts.Sort {
	case models.SortSize:
		sortByInt(entries, func(m *models.Metadata) int64 { return int64(m.Size) })
	case models.SortModified:
		sortByInt(entries, func(m *models.Metadata) int64 { return m.Modified.Unix() })
	case models.SortCreated:
		sortByInt(entries, func(m *models.Metadata) int64 { return m.Created.Unix() })
	case models.SortAccessed:
		sortByInt(entries, func(m *models.Metadata) int64 { return m.Accessed.Unix() })
	case models.SortInode:
		sortByInt(entries, func(m *models.Metadata) int64 { return int64(m.Inode) })
	case models.SortExtension:
		sortByString(entries, func(e models.Entry) string { return strings.ToLower(models.Extension(e)) })
	default:
		sortByString(entries, func(e models.Entry) string { return strings.ToLower(e.Name()) })
	}

	if r.opts.Reverse {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}
}

func sortByInt(entries []models.Entry, key func(*models.Metadata) int64) {
	keys := make(map[models.Entry]int64, len(entries))
	for _, e := range entries {
		if m := e.Metadata(); !m.Empty() {
			keys[e] = key(m)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return keys[entries[i]] < keys[entries[j]]
	})
}

func sortByString(entries []models.Entry, key func(models.Entry) string) {
	keys := make(map[models.Entry]string, len(entries))
	for _, e := range entries {
		keys[e] = key(e)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return keys[entries[i]] < keys[entries[j]]
	})
}

// NewEntry creates the entry for an explicit path, such as the listing root.
// It fails only when the path itself cannot be lstat'ed.
func NewEntry(path string, showLinkTarget bool) (models.Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	return newEntry(path, info.IsDir(), info.Mode()&fs.ModeSymlink != 0, showLinkTarget), nil
}

func newEntry(path string, isDir, isSymlink, showLinkTarget bool) models.Entry {
	name := entryName(path)

	if isSymlink {
		target, err := os.Stat(path)
		exists := err == nil
		link := models.NewSymlink(name, path, exists, exists && target.IsDir())
		if showLinkTarget {
			dest, _ := os.Readlink(path)
			link.SetName(name + models.SymlinkArrow + dest)
		}
		return link
	}
	if isDir {
		return models.NewDirectory(name, path)
	}
	return models.NewFile(name, path)
}

// entryName is the last path element. "." and ".." resolve to the name of
// the directory they point at.
func entryName(path string) string {
	base := filepath.Base(path)
	if base != "." && base != ".." {
		return base
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return base
	}
	return filepath.Base(abs)
}

// computeChildren records whether a directory has at least one entry and
// reports the result. Unreadable directories count as non-empty.
func computeChildren(e models.Entry) bool {
	d, ok := e.(*models.Directory)
	if !ok {
		return models.HasChildren(e)
	}
	if d.Children != models.ChildrenUnknown {
		return d.Children == models.ChildrenPresent
	}

	d.Children = models.ChildrenPresent
	if empty, err := isEmptyDir(d.Path()); err == nil && empty {
		d.Children = models.ChildrenAbsent
	}
	return d.Children == models.ChildrenPresent
}

func isEmptyDir(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	_, err = f.Readdirnames(1)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	return false, err
}
