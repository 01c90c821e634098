// Package format turns raw stat values into the text shown in listing
// columns. The formatters are stateless; Cache memoizes them for one render.
package format

import (
	"fmt"
	"os/user"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/harrison/cairn/internal/models"
)

// Placeholder is shown for any value that cannot be determined
const Placeholder = "-"

// LocaleLayout is the layout used for DateLocale, e.g. "Mar 07 14:05"
const LocaleLayout = "Jan 02 15:04"

// Size formats a byte count. Human-readable forms are compact ("1.2kB").
func Size(bytes uint64, f models.SizeFormat) string {
	switch f {
	case models.SizeBinary:
		return compact(humanize.IBytes(bytes))
	case models.SizeDecimal:
		return compact(humanize.Bytes(bytes))
	default:
		return strconv.FormatUint(bytes, 10)
	}
}

// Number formats a count such as links or blocks
func Number(n uint64, f models.NumberFormat) string {
	if f == models.NumberHumanly {
		return compact(humanize.SIWithDigits(float64(n), 1, ""))
	}
	return strconv.FormatUint(n, 10)
}

// Date formats a timestamp relative to now. The zero time is a placeholder.
func Date(t time.Time, f models.DateFormat, now time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	switch f {
	case models.DateHumanly:
		return humanize.RelTime(t, now, "ago", "from now")
	case models.DateTimestamp:
		if t.Unix() < 0 {
			return Placeholder
		}
		return strconv.FormatInt(t.Unix(), 10)
	default:
		return t.Local().Format(LocaleLayout)
	}
}

// file type and permission bits of st_mode
const (
	modeType   = 0o170000
	modeSocket = 0o140000
	modeLink   = 0o120000
	modeReg    = 0o100000
	modeBlock  = 0o060000
	modeDir    = 0o040000
	modeChar   = 0o020000
	modeFIFO   = 0o010000

	modeSetuid = 0o4000
	modeSetgid = 0o2000
	modeSticky = 0o1000
)

// FileTypeChar returns the leading type character of a permission string
func FileTypeChar(mode uint32) byte {
	switch mode & modeType {
	case modeDir:
		return 'd'
	case modeReg:
		return '.'
	case modeLink:
		return 'l'
	case modeBlock:
		return 'b'
	case modeChar:
		return 'c'
	case modeFIFO:
		return 'p'
	case modeSocket:
		return 's'
	default:
		return '?'
	}
}

// Permission formats st_mode. hasXattr appends "@".
func Permission(mode uint32, hasXattr bool, f models.PermissionFormat) string {
	var out string
	switch f {
	case models.PermissionOctal:
		out = fmt.Sprintf("%c%04o", FileTypeChar(mode), mode&0o7777)
	case models.PermissionHex:
		out = fmt.Sprintf("%c%x", FileTypeChar(mode), mode)
	default:
		out = symbolic(mode)
	}
	if hasXattr {
		out += "@"
	}
	return out
}

func symbolic(mode uint32) string {
	const rwx = "rwxrwxrwx"
	b := make([]byte, 10)
	b[0] = FileTypeChar(mode)
	for i := 0; i < 9; i++ {
		if mode&(1<<uint(8-i)) != 0 {
			b[i+1] = rwx[i]
		} else {
			b[i+1] = '-'
		}
	}
	special := func(idx int, set bool, on, off byte) {
		if !set {
			return
		}
		if b[idx] == 'x' {
			b[idx] = on
		} else {
			b[idx] = off
		}
	}
	special(3, mode&modeSetuid != 0, 's', 'S')
	special(6, mode&modeSetgid != 0, 's', 'S')
	special(9, mode&modeSticky != 0, 't', 'T')
	return string(b)
}

// User resolves a uid for display, falling back to the number
func User(uid uint32, f models.OwnershipFormat) string {
	id := strconv.FormatUint(uint64(uid), 10)
	if f == models.OwnershipID {
		return id
	}
	if u, err := user.LookupId(id); err == nil && u.Username != "" {
		return u.Username
	}
	return id
}

// Group resolves a gid for display, falling back to the number
func Group(gid uint32, f models.OwnershipFormat) string {
	id := strconv.FormatUint(uint64(gid), 10)
	if f == models.OwnershipID {
		return id
	}
	if g, err := user.LookupGroupId(id); err == nil && g.Name != "" {
		return g.Name
	}
	return id
}

func compact(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "")
}
