package fileutil

import (
	"github.com/harrison/cairn/internal/models"
)

const modeTypeMask, modeRegular = 0o170000, 0o100000

// BuildTree reads path and every real directory below it. Symlinks to
// directories are leaves.
func (r *Reader) BuildTree(path string) (*models.TreeNode, error) {
	root, err := r.Root(path)
	if err != nil {
		return nil, err
	}
	return r.buildNode(root), nil
}

func (r *Reader) buildNode(e models.Entry) *models.TreeNode {
	node := &models.TreeNode{Entry: e}
	if !models.IsDir(e) {
		return node
	}
	for _, child := range r.List(e.Path()) {
		node.Children = append(node.Children, r.buildNode(child))
	}
	return node
}

// TreeSizes sums regular file sizes bottom-up and returns the total for
// every directory in the tree, keyed by path
func TreeSizes(root *models.TreeNode) map[string]uint64 {
	sizes := make(map[string]uint64)
	treeSize(root, sizes)
	return sizes
}

func treeSize(n *models.TreeNode, sizes map[string]uint64) uint64 {
	switch n.Entry.(type) {
	case *models.Directory:
		var total uint64
		for _, child := range n.Children {
			total += treeSize(child, sizes)
		}
		sizes[n.Entry.Path()] = total
		return total
	case *models.File:
		n.Entry.LoadMetadata(Lstat)
		if m := n.Entry.Metadata(); m.Mode&modeTypeMask == modeRegular {
			return m.Size
		}
		return 0
	case *models.Symlink:
		return 0
	default:
		panic("fileutil: unknown entry type")
	}
}
