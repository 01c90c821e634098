package models

import (
	"fmt"
	"strings"
)

// When controls a feature that may depend on whether stdout is a terminal
type When string

const (
	WhenAlways When = "always"
	WhenAuto   When = "auto"
	WhenNever  When = "never"
)

// QuoteStyle controls how names containing shell-special characters are quoted
type QuoteStyle string

const (
	QuoteAuto   QuoteStyle = "auto"
	QuoteSingle QuoteStyle = "single"
	QuoteDouble QuoteStyle = "double"
	QuoteNever  QuoteStyle = "never"
)

// SortBy selects the sort key applied by the directory reader
type SortBy string

const (
	SortName      SortBy = "name"
	SortSize      SortBy = "size"
	SortCreated   SortBy = "created"
	SortAccessed  SortBy = "accessed"
	SortModified  SortBy = "modified"
	SortExtension SortBy = "extension"
	SortInode     SortBy = "inode"
)

// NeedsMetadata reports whether sorting by s requires a stat snapshot
func (s SortBy) NeedsMetadata() bool {
	switch s {
	case SortSize, SortCreated, SortAccessed, SortModified, SortInode:
		return true
	default:
		return false
	}
}

type DateFormat string

const (
	DateLocale    DateFormat = "locale"
	DateHumanly   DateFormat = "humanly"
	DateTimestamp DateFormat = "timestamp"
)

type NumberFormat string

const (
	NumberHumanly NumberFormat = "humanly"
	NumberNatural NumberFormat = "natural"
)

type OwnershipFormat string

const (
	OwnershipName OwnershipFormat = "name"
	OwnershipID   OwnershipFormat = "id"
)

type PermissionFormat string

const (
	PermissionSymbolic PermissionFormat = "symbolic"
	PermissionOctal    PermissionFormat = "octal"
	PermissionHex      PermissionFormat = "hex"
)

type SizeFormat string

const (
	SizeBytes   SizeFormat = "bytes"
	SizeBinary  SizeFormat = "binary"
	SizeDecimal SizeFormat = "decimal"
)

// HashAlgorithm names a checksum column
type HashAlgorithm string

const (
	HashNone   HashAlgorithm = ""
	HashCRC32  HashAlgorithm = "crc32"
	HashMD5    HashAlgorithm = "md5"
	HashSHA224 HashAlgorithm = "sha224"
	HashSHA256 HashAlgorithm = "sha256"
	HashSHA384 HashAlgorithm = "sha384"
	HashSHA512 HashAlgorithm = "sha512"
)

// Options is the validated set of choices a listing is rendered with.
// It is built once by the command layer and never mutated during a render.
type Options struct {
	Path string

	// column flags
	Long       bool
	Size       bool
	Permission bool
	User       bool
	Group      bool
	Created    bool
	Modified   bool
	Accessed   bool
	Inode      bool
	Blocks     bool
	BlockSize  bool
	HardLinks  bool
	Xattr      bool
	ACL        bool
	Context    bool
	Mountpoint bool
	Magic      bool
	Checksum   HashAlgorithm

	// layout
	Headers   bool
	Oneline   bool
	Across    bool // grid fills rows before columns
	Tree      bool
	Recursive bool
	Width     *int // nil queries the terminal, 0 means unlimited

	// filtering and ordering
	All      bool
	Dirs     bool
	Files    bool
	Prune    bool
	Hide     []string
	Find     string
	Sort     SortBy
	Reverse  bool
	TrueSize bool
	Verbose  bool

	// presentation
	QuoteName        QuoteStyle
	Colours          When
	Icons            When
	Hyperlink        When
	DateFormat       DateFormat
	NumberFormat     NumberFormat
	OwnershipFormat  OwnershipFormat
	PermissionFormat PermissionFormat
	SizeFormat       SizeFormat
}

// DefaultOptions returns the options used when no flag or config overrides them
func DefaultOptions() Options {
	return Options{
		Path:             ".",
		Sort:             SortName,
		QuoteName:        QuoteAuto,
		Colours:          WhenAuto,
		Icons:            WhenNever,
		Hyperlink:        WhenNever,
		DateFormat:       DateLocale,
		NumberFormat:     NumberHumanly,
		OwnershipFormat:  OwnershipName,
		PermissionFormat: PermissionSymbolic,
		SizeFormat:       SizeDecimal,
	}
}

// Validate rejects enumeration values outside their allowed sets and
// mutually exclusive modes
func (o *Options) Validate() error {
	checks := []struct {
		flag    string
		value   string
		allowed []string
	}{
		{"sort", string(o.Sort), []string{"name", "size", "created", "accessed", "modified", "extension", "inode"}},
		{"quote-name", string(o.QuoteName), []string{"auto", "single", "double", "never"}},
		{"colours", string(o.Colours), []string{"always", "auto", "never"}},
		{"icons", string(o.Icons), []string{"always", "auto", "never"}},
		{"hyperlink", string(o.Hyperlink), []string{"always", "auto", "never"}},
		{"date-format", string(o.DateFormat), []string{"locale", "humanly", "timestamp"}},
		{"number-format", string(o.NumberFormat), []string{"humanly", "natural"}},
		{"ownership-format", string(o.OwnershipFormat), []string{"name", "id"}},
		{"permission-format", string(o.PermissionFormat), []string{"symbolic", "octal", "hex"}},
		{"size-format", string(o.SizeFormat), []string{"bytes", "binary", "decimal"}},
		{"checksum", string(o.Checksum), []string{"", "crc32", "md5", "sha224", "sha256", "sha384", "sha512"}},
	}
	for _, c := range checks {
		if !oneOf(c.allowed, c.value) {
			return fmt.Errorf("invalid %s %q, must be one of: %s", c.flag, c.value, strings.Join(nonEmpty(c.allowed), ", "))
		}
	}

	if o.Tree && o.Recursive {
		return fmt.Errorf("--tree and --recursive cannot be used together")
	}
	if o.Tree && o.Find != "" {
		return fmt.Errorf("--tree and --find cannot be used together")
	}
	if o.Width != nil && *o.Width < 0 {
		return fmt.Errorf("width must be >= 0, got %d", *o.Width)
	}
	return nil
}

// ShowLinkTarget reports whether symlink names carry their target
func (o *Options) ShowLinkTarget() bool {
	return o.Long
}

func oneOf(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func nonEmpty(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
