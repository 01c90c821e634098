// Package columns defines the attributes a listing can show, the order they
// are selected in, and how each entry's value for a column is produced.
package columns

import (
	"github.com/harrison/cairn/internal/layout"
	"github.com/harrison/cairn/internal/models"
)

// Kind identifies a displayable attribute
type Kind int

const (
	Name Kind = iota
	Size
	Permissions
	User
	Group
	Created
	Modified
	Accessed
	Inode
	Blocks
	BlockSize
	HardLinks
	Xattr
	ACL
	Context
	Mountpoint
	Checksum
	Magic
)

// Column is a comparable column tag. Algorithm is set only for Checksum so
// that two checksum columns with different algorithms are distinct map keys.
type Column struct {
	Kind      Kind
	Algorithm models.HashAlgorithm
}

// Of returns the column for a kind without an algorithm
func Of(k Kind) Column {
	return Column{Kind: k}
}

// ChecksumOf returns the checksum column for algo
func ChecksumOf(algo models.HashAlgorithm) Column {
	return Column{Kind: Checksum, Algorithm: algo}
}

var headers = map[Kind]string{
	Name:        "Name",
	Size:        "Size",
	Permissions: "Permissions",
	User:        "User",
	Group:       "Group",
	Created:     "Created",
	Modified:    "Modified",
	Accessed:    "Accessed",
	Inode:       "inode",
	Blocks:      "Blocks",
	BlockSize:   "Block Size",
	HardLinks:   "HardLinks",
	Xattr:       "Xattr",
	ACL:         "ACL",
	Context:     "Context",
	Mountpoint:  "Mountpoint",
	Magic:       "Magic",
}

var checksumHeaders = map[models.HashAlgorithm]string{
	models.HashMD5:    "MD5",
	models.HashCRC32:  "CRC32",
	models.HashSHA224: "SHA-224",
	models.HashSHA256: "SHA-256",
	models.HashSHA384: "SHA-384",
	models.HashSHA512: "SHA-512",
}

// Header returns the fixed header text of the column
func (c Column) Header() string {
	if c.Kind == Checksum {
		return checksumHeaders[c.Algorithm]
	}
	return headers[c.Kind]
}

func (c Column) String() string {
	return c.Header()
}

// Alignment is right for numeric and temporal columns, left otherwise
func (c Column) Alignment() layout.Alignment {
	switch c.Kind {
	case Size, Modified, Created, Accessed, Inode, HardLinks, Blocks, BlockSize:
		return layout.AlignRight
	default:
		return layout.AlignLeft
	}
}

// Select maps options to an ordered column list without duplicates.
// The long flag contributes Permissions, Size, User and Modified first; the
// individual flags follow in a fixed order. Name comes last except in tree
// mode, where the renderer draws the name after the connector.
func Select(opts *models.Options) []Column {
	var cols []Column
	add := func(when bool, c Column) {
		if !when {
			return
		}
		for _, existing := range cols {
			if existing == c {
				return
			}
		}
		cols = append(cols, c)
	}

	if opts.Long {
		add(true, Of(Permissions))
		add(true, Of(Size))
		add(true, Of(User))
		add(true, Of(Modified))
	}

	add(opts.Size, Of(Size))
	add(opts.Permission, Of(Permissions))
	add(opts.User, Of(User))
	add(opts.Group, Of(Group))
	add(opts.Magic, Of(Magic))
	add(opts.Checksum != models.HashNone, ChecksumOf(opts.Checksum))
	add(opts.Xattr, Of(Xattr))
	add(opts.ACL, Of(ACL))
	add(opts.Context, Of(Context))
	add(opts.Mountpoint, Of(Mountpoint))
	add(opts.Inode, Of(Inode))
	add(opts.Blocks, Of(Blocks))
	add(opts.HardLinks, Of(HardLinks))
	add(opts.BlockSize, Of(BlockSize))
	add(opts.Created, Of(Created))
	add(opts.Modified, Of(Modified))
	add(opts.Accessed, Of(Accessed))
	add(!opts.Tree, Of(Name))

	return cols
}

// NeedsMetadata reports whether any stat-backed column is requested
func NeedsMetadata(opts *models.Options) bool {
	return opts.Long || opts.Size || opts.Permission || opts.User || opts.Group ||
		opts.Created || opts.Modified || opts.Accessed || opts.Inode ||
		opts.Blocks || opts.HardLinks || opts.BlockSize
}

// NeedsTableColumn reports whether a feature column or single-column output
// is requested
func NeedsTableColumn(opts *models.Options) bool {
	return opts.Magic || opts.Checksum != models.HashNone || opts.Xattr || opts.ACL ||
		opts.Context || opts.Mountpoint || opts.Oneline
}

// NeedsAlignment reports whether output must be laid out as an aligned table
// rather than packed names
func NeedsAlignment(opts *models.Options) bool {
	return NeedsMetadata(opts) || NeedsTableColumn(opts)
}
