package columns

import (
	"strconv"
	"time"

	"github.com/harrison/cairn/internal/format"
	"github.com/harrison/cairn/internal/models"
)

// Features looks up values that are not part of the stat snapshot.
// Every method returns format.Placeholder when the value is unavailable.
type Features interface {
	HasXattr(path string) bool
	Xattrs(path string) string
	ACL(path string) string
	Context(path string) string
	Mountpoint(path string) string
	Checksum(path string, algo models.HashAlgorithm) string
	Magic(path string) string
	TrueSize(path string) uint64
}

// Builder produces the unstyled value of a column for an entry. It never
// mutates the entry.
type Builder struct {
	opts     *models.Options
	cache    *format.Cache
	features Features

	// SizeOverride holds directory sizes already aggregated by a caller that
	// owns a full traversal, keyed by path
	SizeOverride map[string]uint64
}

// NewBuilder creates a row builder. features may be nil, in which case
// feature columns render as placeholders.
func NewBuilder(opts *models.Options, cache *format.Cache, features Features) *Builder {
	return &Builder{opts: opts, cache: cache, features: features}
}

// Cache returns the render-pass cache the builder formats through
func (b *Builder) Cache() *format.Cache {
	return b.cache
}

// Options returns the options rows are built for
func (b *Builder) Options() *models.Options {
	return b.opts
}

// Value returns the text of column c for entry e
func (b *Builder) Value(e models.Entry, c Column) string {
	path := e.Path()

	switch c.Kind {
	case Name:
		return e.Name()
	case Xattr:
		return b.feature(func(f Features) string { return f.Xattrs(path) })
	case ACL:
		return b.feature(func(f Features) string { return f.ACL(path) })
	case Context:
		return b.feature(func(f Features) string { return f.Context(path) })
	case Mountpoint:
		return b.feature(func(f Features) string { return f.Mountpoint(path) })
	case Checksum:
		return b.feature(func(f Features) string { return f.Checksum(path, c.Algorithm) })
	case Magic:
		return b.feature(func(f Features) string { return f.Magic(path) })
	}

	meta := e.Metadata()
	if c.Kind == Size && b.opts.TrueSize && models.IsDir(e) {
		return b.cache.Size(b.trueSize(path))
	}
	if meta.Empty() {
		return format.Placeholder
	}

	switch c.Kind {
	case Size:
		return b.cache.Size(meta.Size)
	case Permissions:
		hasXattr := b.features != nil && b.features.HasXattr(path)
		return b.cache.Permission(meta.Mode, hasXattr)
	case User:
		return b.cache.User(meta.UID)
	case Group:
		return b.cache.Group(meta.GID)
	case Created:
		return b.cache.Date(meta.Created)
	case Modified:
		return b.cache.Date(meta.Modified)
	case Accessed:
		return b.cache.Date(meta.Accessed)
	case Inode:
		return strconv.FormatUint(meta.Inode, 10)
	case Blocks:
		return b.cache.Number(meta.Blocks)
	case HardLinks:
		return b.cache.Number(meta.Links)
	case BlockSize:
		return b.cache.Size(meta.BlkSize)
	default:
		panic("columns: unknown column kind " + strconv.Itoa(int(c.Kind)))
	}
}

// Age returns how old the timestamp behind a date column is. It reports
// false for other columns and for entries without metadata.
func (b *Builder) Age(e models.Entry, c Column) (time.Duration, bool) {
	meta := e.Metadata()
	if meta.Empty() {
		return 0, false
	}
	var t time.Time
	switch c.Kind {
	case Created:
		t = meta.Created
	case Modified:
		t = meta.Modified
	case Accessed:
		t = meta.Accessed
	default:
		return 0, false
	}
	if t.IsZero() {
		return 0, false
	}
	return b.cache.Age(t), true
}

func (b *Builder) feature(lookup func(Features) string) string {
	if b.features == nil {
		return format.Placeholder
	}
	return lookup(b.features)
}

func (b *Builder) trueSize(path string) uint64 {
	if size, ok := b.SizeOverride[path]; ok {
		return size
	}
	if b.features == nil {
		return 0
	}
	return b.features.TrueSize(path)
}
