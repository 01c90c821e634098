package fileutil

import (
	"bufio"
	"bytes"
	"crypto/md5"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/harrison/cairn/internal/format"
	"github.com/harrison/cairn/internal/logger"
	"github.com/harrison/cairn/internal/models"
)

const (
	aclXattr     = "system.posix_acl_access"
	selinuxXattr = "security.selinux"
)

// DefaultMountTable is where mount points are read from
const DefaultMountTable = "/proc/mounts"

// Features answers the lookups columns need beyond the stat snapshot.
// Results are memoized per path for the lifetime of one render.
type Features struct {
	includeHidden bool
	log           logger.Logger

	// MountTable may be pointed at a fixture before the first lookup
	MountTable string
	mounts     []string
	mountsRead bool

	xattrs map[string][]string
	sizes  map[string]uint64
}

// NewFeatures creates a lookup for one render. includeHidden controls
// whether true-size walks count dotfiles.
func NewFeatures(includeHidden bool, log logger.Logger) *Features {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Features{
		includeHidden: includeHidden,
		log:           log,
		MountTable:    DefaultMountTable,
		xattrs:        make(map[string][]string),
		sizes:         make(map[string]uint64),
	}
}

func (f *Features) xattrNames(path string) []string {
	if names, ok := f.xattrs[path]; ok {
		return names
	}
	names, err := listXattrs(path)
	if err != nil {
		names = nil
	}
	f.xattrs[path] = names
	return names
}

// HasXattr reports whether path carries any extended attribute
func (f *Features) HasXattr(path string) bool {
	return len(f.xattrNames(path)) > 0
}

// Xattrs lists attribute names joined by ", "
func (f *Features) Xattrs(path string) string {
	names := f.xattrNames(path)
	if len(names) == 0 {
		return format.Placeholder
	}
	return strings.Join(names, ", ")
}

// ACL is "+" when a POSIX access ACL is attached, "-" otherwise
func (f *Features) ACL(path string) string {
	for _, name := range f.xattrNames(path) {
		if name == aclXattr {
			return "+"
		}
	}
	return format.Placeholder
}

// Context returns the SELinux security context, "?" when there is none
func (f *Features) Context(path string) string {
	value, err := getXattr(path, selinuxXattr)
	if err != nil || len(value) == 0 {
		return "?"
	}
	return string(bytes.TrimRight(value, "\x00"))
}

// Mountpoint returns the most specific mount point containing path
func (f *Features) Mountpoint(path string) string {
	if !f.mountsRead {
		f.mountsRead = true
		mounts, err := readMountTable(f.MountTable)
		if err != nil {
			f.log.LogDebug(fmt.Sprintf("cannot read mount table %s: %v", f.MountTable, err))
		}
		f.mounts = mounts
	}

	canonical, err := filepath.EvalSymlinks(path)
	if err != nil {
		return format.Placeholder
	}
	if canonical, err = filepath.Abs(canonical); err != nil {
		return format.Placeholder
	}
	if mount, ok := matchMount(canonical, f.mounts); ok {
		return mount
	}
	return format.Placeholder
}

// Checksum hashes the file contents with algo and returns lowercase hex.
// Directories and unreadable files render as the placeholder.
func (f *Features) Checksum(path string, algo models.HashAlgorithm) string {
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return format.Placeholder
	}
	h := newHash(algo)
	if h == nil {
		return format.Placeholder
	}

	file, err := os.Open(path)
	if err != nil {
		return format.Placeholder
	}
	defer file.Close()

	if _, err := io.Copy(h, file); err != nil {
		f.log.LogDebug(fmt.Sprintf("checksum of %s failed: %v", path, err))
		return format.Placeholder
	}
	return hex.EncodeToString(h.Sum(nil))
}

func newHash(algo models.HashAlgorithm) hash.Hash {
	switch algo {
	case models.HashCRC32:
		return crc32.NewIEEE()
	case models.HashMD5:
		return md5.New()
	case models.HashSHA224:
		return sha256.New224()
	case models.HashSHA256:
		return sha256.New()
	case models.HashSHA384:
		return sha512.New384()
	case models.HashSHA512:
		return sha512.New()
	default:
		return nil
	}
}

// Magic describes the content type of path
func (f *Features) Magic(path string) string {
	info, err := os.Lstat(path)
	if err != nil {
		return format.Placeholder
	}
	if info.Mode()&os.ModeSymlink != 0 {
		target, _ := os.Readlink(path)
		return fmt.Sprintf("Symbolic link, to %q", target)
	}
	if info.IsDir() || !info.Mode().IsRegular() {
		return format.Placeholder
	}
	if info.Size() == 0 {
		return "empty"
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		f.log.LogWarn(fmt.Sprintf("content detection of %s failed: %v", path, err))
		return format.Placeholder
	}
	return mtype.String()
}

// TrueSize is the recursive sum of regular file sizes below a directory
func (f *Features) TrueSize(path string) uint64 {
	if size, ok := f.sizes[path]; ok {
		return size
	}
	var size uint64
	result, err := ScanDirectory(path, ScanOptions{IncludeHidden: f.includeHidden})
	if err != nil {
		f.log.LogDebug(fmt.Sprintf("true size of %s: %v", path, err))
	} else {
		size = result.Bytes
		f.log.LogTrace(fmt.Sprintf("true size of %s: %d bytes in %d files", path, result.Bytes, result.Files))
		for _, scanErr := range result.Errors {
			f.log.LogDebug(scanErr.Error())
		}
	}
	f.sizes[path] = size
	return size
}

// readMountTable parses a /proc/mounts style table and returns the mount
// points longest first
func readMountTable(name string) ([]string, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var mounts []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}
		mounts = append(mounts, unescapeMountPath(fields[1]))
	}
	sort.SliceStable(mounts, func(i, j int) bool {
		return len(mounts[i]) > len(mounts[j])
	})
	return mounts, scanner.Err()
}

// unescapeMountPath decodes the \ooo octal escapes the kernel writes for
// spaces, tabs and backslashes
func unescapeMountPath(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+4 <= len(s) {
			if code, err := strconv.ParseUint(s[i+1:i+4], 8, 8); err == nil {
				b.WriteByte(byte(code))
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func matchMount(path string, mounts []string) (string, bool) {
	for _, m := range mounts {
		if path == m || m == "/" || strings.HasPrefix(path, strings.TrimSuffix(m, "/")+"/") {
			return m, true
		}
	}
	return "", false
}

func splitNulTerminated(buf []byte) []string {
	var names []string
	for _, part := range bytes.Split(buf, []byte{0}) {
		if len(part) > 0 {
			names = append(names, string(part))
		}
	}
	return names
}
