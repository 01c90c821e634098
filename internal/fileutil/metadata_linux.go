//go:build linux

package fileutil

import (
	"time"

	"golang.org/x/sys/unix"

	"github.com/harrison/cairn/internal/models"
)

// Lstat loads a stat snapshot for path without following a final symlink
func Lstat(path string) (*models.Metadata, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return nil, err
	}
	return &models.Metadata{
		Mode:     st.Mode,
		Size:     uint64(st.Size),
		Inode:    st.Ino,
		Links:    uint64(st.Nlink),
		UID:      st.Uid,
		GID:      st.Gid,
		Blocks:   uint64(st.Blocks),
		BlkSize:  uint64(st.Blksize),
		Accessed: time.Unix(st.Atim.Unix()),
		Modified: time.Unix(st.Mtim.Unix()),
		Created:  time.Unix(st.Ctim.Unix()),
	}, nil
}

func listXattrs(path string) ([]string, error) {
	size, err := unix.Llistxattr(path, nil)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, nil
	}
	buf := make([]byte, size)
	n, err := unix.Llistxattr(path, buf)
	if err != nil {
		return nil, err
	}
	return splitNulTerminated(buf[:n]), nil
}

func getXattr(path, name string) ([]byte, error) {
	size, err := unix.Lgetxattr(path, name, nil)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	n, err := unix.Lgetxattr(path, name, buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}
