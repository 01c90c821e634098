package models

import (
	"strings"
	"testing"
)

func TestTreeNodeFlattenIsPreOrder(t *testing.T) {
	root := &TreeNode{
		Entry: NewDirectory("root", "/root"),
		Children: []*TreeNode{
			{
				Entry:    NewDirectory("a", "/root/a"),
				Children: []*TreeNode{{Entry: NewFile("a1", "/root/a/a1")}},
			},
			{Entry: NewSymlink("b", "/root/b", true, true)},
			{Entry: NewFile("c", "/root/c")},
		},
	}

	var names []string
	for _, e := range root.Flatten() {
		names = append(names, e.Name())
	}
	if got := strings.Join(names, ","); got != "root,a,a1,b,c" {
		t.Errorf("Flatten() = %s", got)
	}

	dirs, files := root.CountDescendants()
	if dirs != 1 || files != 3 {
		t.Errorf("CountDescendants() = %d, %d; want 1, 3", dirs, files)
	}
}

func TestTreeNodeLeaf(t *testing.T) {
	leaf := &TreeNode{Entry: NewFile("x", "/x")}
	if n := len(leaf.Flatten()); n != 1 {
		t.Errorf("Flatten() returned %d entries, want 1", n)
	}
	if dirs, files := leaf.CountDescendants(); dirs != 0 || files != 0 {
		t.Errorf("a leaf has no descendants, got %d, %d", dirs, files)
	}
}
