//go:build !linux

package fileutil

import (
	"errors"
	"io/fs"
	"os"

	"github.com/harrison/cairn/internal/models"
)

var errXattrUnsupported = errors.New("extended attributes are not supported on this platform")

// Lstat loads the portable subset of a stat snapshot. Inode, link count,
// ownership and block fields stay zero.
func Lstat(path string) (*models.Metadata, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	return &models.Metadata{
		Mode:     unixMode(info.Mode()),
		Size:     uint64(info.Size()),
		Accessed: info.ModTime(),
		Modified: info.ModTime(),
		Created:  info.ModTime(),
	}, nil
}

func unixMode(m fs.FileMode) uint32 {
	mode := uint32(m.Perm())
	switch {
	case m&fs.ModeDir != 0:
		mode |= 0o040000
	case m&fs.ModeSymlink != 0:
		mode |= 0o120000
	case m&fs.ModeNamedPipe != 0:
		mode |= 0o010000
	case m&fs.ModeSocket != 0:
		mode |= 0o140000
	case m&fs.ModeCharDevice != 0:
		mode |= 0o020000
	case m&fs.ModeDevice != 0:
		mode |= 0o060000
	default:
		mode |= 0o100000
	}
	if m&fs.ModeSetuid != 0 {
		mode |= 0o4000
	}
	if m&fs.ModeSetgid != 0 {
		mode |= 0o2000
	}
	if m&fs.ModeSticky != 0 {
		mode |= 0o1000
	}
	return mode
}

func listXattrs(string) ([]string, error) {
	return nil, errXattrUnsupported
}

func getXattr(string, string) ([]byte, error) {
	return nil, errXattrUnsupported
}
