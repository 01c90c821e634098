package display

import (
	"strings"

	"github.com/harrison/cairn/internal/columns"
	"github.com/harrison/cairn/internal/fileutil"
	"github.com/harrison/cairn/internal/layout"
	"github.com/harrison/cairn/internal/models"
)

const (
	lineConnector   = "│   "
	branchConnector = "├── "
	cornerConnector = "╰── "
	blankConnector  = "    "
)

// Connector draws the prefix of a tree line. parentsLast holds, for each
// ancestor from the root down, whether that ancestor was the last of its
// siblings; the final element is the node itself. The root gets no prefix.
func Connector(parentsLast []bool) string {
	depth := len(parentsLast)
	if depth == 0 {
		return ""
	}
	var b strings.Builder
	for _, last := range parentsLast[:depth-1] {
		if last {
			b.WriteString(blankConnector)
		} else {
			b.WriteString(lineConnector)
		}
	}
	if parentsLast[depth-1] {
		b.WriteString(cornerConnector)
	} else {
		b.WriteString(branchConnector)
	}
	return b.String()
}

// treeStreaming prints each entry as soon as its directory is read
func (r *renderer) treeStreaming(root string) {
	e, err := r.deps.Reader.Root(root)
	if err != nil {
		r.deps.Log.LogError("Cannot read tree root " + root + ": " + err.Error())
		return
	}
	r.streamNode(e, nil)
}

func (r *renderer) streamNode(e models.Entry, parentsLast []bool) {
	r.out.line(r.deps.Styler.Connector(Connector(parentsLast)) + r.deps.Styler.Name(e, false, true))
	if len(parentsLast) > 0 {
		r.counts.Add(e)
	}
	if !models.IsDir(e) {
		return
	}
	children := r.deps.Reader.List(e.Path())
	for i, child := range children {
		r.streamNode(child, appendLast(parentsLast, i == len(children)-1))
	}
}

// treeTable builds the whole tree first so every column lines up
func (r *renderer) treeTable(root string) {
	node, err := r.deps.Reader.BuildTree(root)
	if err != nil {
		r.deps.Log.LogError("Cannot read tree root " + root + ": " + err.Error())
		return
	}
	if r.opts.TrueSize && len(r.opts.Hide) == 0 && !r.opts.Dirs && !r.opts.Files {
		r.builder.SizeOverride = fileutil.TreeSizes(node)
	}

	entries := node.Flatten()
	cols := columns.Select(r.opts)
	widths := columns.Calculate(entries, cols, r.builder, r.opts.Headers)
	alignSpace := anyQuotable(entries)

	if r.opts.Headers && len(cols) > 0 {
		r.out.line(r.headerLine(cols, widths))
	}
	r.tableNode(node, cols, widths, alignSpace, nil)
	r.counts.Dirs, r.counts.Files = node.CountDescendants()
}

func (r *renderer) tableNode(n *models.TreeNode, cols []columns.Column, widths columns.Widths, alignSpace bool, parentsLast []bool) {
	// every column is padded here since the name follows them
	parts := make([]string, 0, len(cols)+1)
	for _, c := range cols {
		parts = append(parts, layout.Pad(r.styledValue(n.Entry, c, alignSpace), widths[c], c.Alignment()))
	}
	parts = append(parts, r.deps.Styler.Connector(Connector(parentsLast))+r.deps.Styler.Name(n.Entry, false, true))
	r.out.line(strings.Join(parts, " "))

	for i, child := range n.Children {
		r.tableNode(child, cols, widths, alignSpace, appendLast(parentsLast, i == len(n.Children)-1))
	}
}

func appendLast(parentsLast []bool, last bool) []bool {
	next := make([]bool, len(parentsLast), len(parentsLast)+1)
	copy(next, parentsLast)
	return append(next, last)
}
