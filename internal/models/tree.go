package models

// TreeNode owns one entry and its ordered children. A tree is built once per
// table-mode tree render and dropped after output.
type TreeNode struct {
	Entry    Entry
	Children []*TreeNode
}

// Flatten returns every entry in the tree in pre-order, root first
func (n *TreeNode) Flatten() []Entry {
	var out []Entry
	stack := []*TreeNode{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, node.Entry)
		for i := len(node.Children) - 1; i >= 0; i-- {
			stack = append(stack, node.Children[i])
		}
	}
	return out
}

// CountDescendants counts directories and files below the root, excluding it
func (n *TreeNode) CountDescendants() (dirs, files int) {
	for _, e := range n.Flatten()[1:] {
		if IsDir(e) {
			dirs++
		} else {
			files++
		}
	}
	return dirs, files
}
