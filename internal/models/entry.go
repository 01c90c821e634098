package models

import (
	"path/filepath"
	"strings"
	"time"
)

// SymlinkArrow separates a symlink name from its target in long listings
const SymlinkArrow = " ⇒ "

// Metadata is a stat snapshot for one entry. It is either absent (nil on the
// entry) or fully populated; there is no partially loaded state.
type Metadata struct {
	Mode     uint32    // raw st_mode, file type bits included
	Size     uint64    // size in bytes
	Inode    uint64    // inode number
	Links    uint64    // hard link count
	UID      uint32    // owner user id
	GID      uint32    // owner group id
	Blocks   uint64    // allocated 512-byte blocks
	BlkSize  uint64    // preferred I/O block size
	Accessed time.Time // last access
	Modified time.Time // last modification
	Created  time.Time // status change (ctime)
}

// Empty reports whether m carries no information, either because it was
// never loaded or because loading failed
func (m *Metadata) Empty() bool {
	return m == nil || *m == (Metadata{})
}

// MetadataLoader loads a stat snapshot for a path
type MetadataLoader func(path string) (*Metadata, error)

// ChildState records whether a directory has children. Unknown means nobody
// has asked yet.
type ChildState int

const (
	ChildrenUnknown ChildState = iota
	ChildrenPresent
	ChildrenAbsent
)

// Entry is one filesystem object. The set of implementations is closed:
// *File, *Directory and *Symlink. Callers switch on the concrete type.
type Entry interface {
	Name() string
	SetName(name string)
	Path() string
	Metadata() *Metadata
	LoadMetadata(load MetadataLoader)
	entry()
}

type common struct {
	name string
	path string
	meta *Metadata
}

func (c *common) Name() string        { return c.name }
func (c *common) SetName(name string) { c.name = name }
func (c *common) Path() string        { return c.path }
func (c *common) Metadata() *Metadata { return c.meta }

// LoadMetadata populates the snapshot once. A failed load stores an empty
// snapshot so the entry is never retried within the same run.
func (c *common) LoadMetadata(load MetadataLoader) {
	if c.meta != nil || load == nil {
		return
	}
	meta, err := load(c.path)
	if err != nil || meta == nil {
		meta = &Metadata{}
	}
	c.meta = meta
}

func (c *common) entry() {}

// File is a regular file (or any non-directory, non-symlink object)
type File struct {
	common
	Extension string
}

// Directory is a real directory, never a symlink to one
type Directory struct {
	common
	Children ChildState
}

// Symlink is a symbolic link. TargetIsDir is only meaningful when TargetExists.
type Symlink struct {
	common
	Extension    string
	TargetExists bool
	TargetIsDir  bool
}

// NewFile creates a file entry
func NewFile(name, path string) *File {
	return &File{common: common{name: name, path: path}, Extension: extensionOf(name)}
}

// NewDirectory creates a directory entry with an unknown child state
func NewDirectory(name, path string) *Directory {
	return &Directory{common: common{name: name, path: path}}
}

// NewSymlink creates a symlink entry
func NewSymlink(name, path string, targetExists, targetIsDir bool) *Symlink {
	return &Symlink{
		common:       common{name: name, path: path},
		Extension:    extensionOf(name),
		TargetExists: targetExists,
		TargetIsDir:  targetExists && targetIsDir,
	}
}

// WithMetadata attaches a snapshot directly. Used by readers that already hold
// stat results and by tests.
func WithMetadata[E Entry](e E, meta *Metadata) E {
	e.LoadMetadata(func(string) (*Metadata, error) { return meta, nil })
	return e
}

// IsDir reports whether e is a real directory
func IsDir(e Entry) bool {
	_, ok := e.(*Directory)
	return ok
}

// IsDirLike reports whether e is a directory or a symlink to one
func IsDirLike(e Entry) bool {
	switch v := e.(type) {
	case *Directory:
		return true
	case *Symlink:
		return v.TargetIsDir
	case *File:
		return false
	default:
		panic("models: unknown entry type")
	}
}

// Extension returns the file extension of e without the dot, empty for directories
func Extension(e Entry) string {
	switch v := e.(type) {
	case *File:
		return v.Extension
	case *Symlink:
		return v.Extension
	case *Directory:
		return ""
	default:
		panic("models: unknown entry type")
	}
}

// IsBrokenSymlink reports whether e is a symlink whose target is missing
func IsBrokenSymlink(e Entry) bool {
	s, ok := e.(*Symlink)
	return ok && !s.TargetExists
}

// HasChildren reports whether a directory is known to have entries.
// Symlinks to directories are assumed to have children.
func HasChildren(e Entry) bool {
	switch v := e.(type) {
	case *Directory:
		return v.Children != ChildrenAbsent
	case *Symlink:
		return v.TargetIsDir
	case *File:
		return false
	default:
		panic("models: unknown entry type")
	}
}

// SplitSymlinkName splits "link ⇒ target" into its two halves
func SplitSymlinkName(name string) (link, target string, ok bool) {
	idx := strings.Index(name, "⇒")
	if idx < 0 {
		return name, "", false
	}
	return strings.TrimRight(name[:idx], " "), strings.TrimLeft(name[idx+len("⇒"):], " "), true
}

func extensionOf(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		// dotfiles like ".bashrc" have no extension
		return ""
	}
	return strings.TrimPrefix(ext, ".")
}
