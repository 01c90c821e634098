// Package fileutil reads the filesystem on behalf of the renderers.
//
// It turns directory contents into models.Entry values and answers the
// lookups a listing may need beyond a plain name.
//
// # Main Components
//
// Reader - lists one directory level:
//   - hidden-file policy (--all), dir-only and file-only filters
//   - pruning of empty directories
//   - hide globs applied after collection
//   - metadata loading only when a column or sort key needs it
//   - sorting by name, extension, size, inode or any timestamp, optionally reversed
//
// BuildTree - reads a whole subtree into a models.TreeNode for table-mode trees.
//
// Search - matches a glob against entry names, recursing when asked.
//
// Features - implements columns.Features: xattr names, ACL marker, SELinux
// context, mountpoint, checksums, content type and recursive true size.
//
// # Error Handling
//
// Nothing here fails a listing. Unreadable directories are logged at debug
// level and contribute no entries; failed stat calls leave an empty metadata
// snapshot that renders as a placeholder.
package fileutil
