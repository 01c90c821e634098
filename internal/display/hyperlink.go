package display

import (
	"net/url"
	"path/filepath"
)

// Hyperlink wraps text in an OSC 8 link to the file at path. The target is
// made absolute and resolved through symlinks when possible.
func Hyperlink(text, path string) string {
	return "\x1b]8;;" + fileURL(path) + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}

func fileURL(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}
