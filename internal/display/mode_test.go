package display

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/cairn/internal/fileutil"
	"github.com/harrison/cairn/internal/layout"
	"github.com/harrison/cairn/internal/logger"
	"github.com/harrison/cairn/internal/models"
)

// makeTree creates files under dir; a trailing slash makes a directory
func makeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func render(t *testing.T, root string, opts models.Options, width int) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := Render(&out, root, Deps{
		Reader:   fileutil.NewReader(&opts, nil, false),
		Features: fileutil.NewFeatures(opts.All, nil),
		Width:    width,
		Err:      &errOut,
	})
	require.NoError(t, err)
	return out.String(), errOut.String()
}

func TestSelectMode(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(o *models.Options)
		want   Mode
	}{
		{"bare names", func(o *models.Options) {}, ModeGrid},
		{"long", func(o *models.Options) { o.Long = true }, ModeList},
		{"oneline", func(o *models.Options) { o.Oneline = true }, ModeList},
		{"magic", func(o *models.Options) { o.Magic = true }, ModeList},
		{"checksum", func(o *models.Options) { o.Checksum = models.HashMD5 }, ModeList},
		{"tree", func(o *models.Options) { o.Tree = true }, ModeTreeStreaming},
		{"tree with size", func(o *models.Options) { o.Tree = true; o.Size = true }, ModeTreeTable},
		{"tree with oneline", func(o *models.Options) { o.Tree = true; o.Oneline = true }, ModeTreeTable},
		{"find", func(o *models.Options) { o.Find = "*.go" }, ModeGrid},
		{"find with columns", func(o *models.Options) { o.Find = "*.go"; o.Inode = true }, ModeList},
		{"find beats tree", func(o *models.Options) { o.Find = "*.go"; o.Tree = true }, ModeGrid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := models.DefaultOptions()
			tt.mutate(&opts)
			assert.Equal(t, tt.want, SelectMode(&opts))
			assert.NotEmpty(t, SelectMode(&opts).String())
		})
	}
}

func TestRenderGrid(t *testing.T) {
	dir := t.TempDir()
	makeTree(t, dir, map[string]string{"a.txt": "", "bb.txt": "", "ccc.txt": ""})

	out, _ := render(t, dir, models.DefaultOptions(), 20)
	assert.Equal(t, "a.txt   ccc.txt\nbb.txt\n\n3 files.\n", out)
}

func TestRenderGridAcross(t *testing.T) {
	dir := t.TempDir()
	makeTree(t, dir, map[string]string{"a.txt": "", "bb.txt": "", "ccc.txt": ""})

	opts := models.DefaultOptions()
	opts.Across = true
	out, _ := render(t, dir, opts, 20)
	assert.Equal(t, "a.txt    bb.txt\nccc.txt\n\n3 files.\n", out)
}

func TestRenderGridUnlimitedWidth(t *testing.T) {
	dir := t.TempDir()
	makeTree(t, dir, map[string]string{"a.txt": "", "bb.txt": "", "ccc.txt": ""})

	out, _ := render(t, dir, models.DefaultOptions(), layout.Unlimited)
	assert.Equal(t, "a.txt  bb.txt  ccc.txt\n\n3 files.\n", out)
}

func TestRenderGridAlignsQuotedNames(t *testing.T) {
	dir := t.TempDir()
	makeTree(t, dir, map[string]string{"a b": "", "c": "", "d/": ""})

	out, _ := render(t, dir, models.DefaultOptions(), layout.Unlimited)
	assert.Equal(t, "'a b'   c   d\n\n1 directory and 2 files.\n", out)
}

func TestRenderList(t *testing.T) {
	dir := t.TempDir()
	makeTree(t, dir, map[string]string{"a.txt": "12345", "bb.txt": "123456789012", "c": "1"})

	opts := models.DefaultOptions()
	opts.Size = true
	opts.SizeFormat = models.SizeBytes

	out, _ := render(t, dir, opts, 80)
	assert.Equal(t, " 5 a.txt\n12 bb.txt\n 1 c\n\n3 files.\n", out)

	opts.Headers = true
	out, _ = render(t, dir, opts, 80)
	assert.Equal(t, "Size Name\n   5 a.txt\n  12 bb.txt\n   1 c\n\n3 files.\n", out)
}

func TestRenderEmptyDirectory(t *testing.T) {
	opts := models.DefaultOptions()
	opts.Headers = true
	opts.Long = true

	out, _ := render(t, t.TempDir(), opts, 80)
	assert.Equal(t, "", out, "an empty listing prints neither headers nor a summary")
}

func TestRenderSingleFile(t *testing.T) {
	dir := t.TempDir()
	makeTree(t, dir, map[string]string{"only.txt": "x"})

	out, _ := render(t, filepath.Join(dir, "only.txt"), models.DefaultOptions(), 80)
	assert.Equal(t, "only.txt\n\n1 file.\n", out)
}

func TestRenderRecursive(t *testing.T) {
	dir := t.TempDir()
	makeTree(t, dir, map[string]string{"a.txt": "", "sub/b.txt": "", "sub/deeper/": ""})

	opts := models.DefaultOptions()
	opts.Recursive = true

	out, _ := render(t, dir, opts, layout.Unlimited)
	sub := filepath.Join(dir, "sub")
	want := "a.txt  sub\n" +
		"\n" + sub + ":\n" +
		"b.txt  deeper\n" +
		"\n" + filepath.Join(sub, "deeper") + ":\n" +
		"\n2 directories and 2 files.\n"
	assert.Equal(t, want, out)
}

func TestRenderTreeStreaming(t *testing.T) {
	dir := t.TempDir()
	makeTree(t, dir, map[string]string{"sub/y": "", "x": ""})

	opts := models.DefaultOptions()
	opts.Tree = true

	out, _ := render(t, dir, opts, 80)
	want := filepath.Base(dir) + "\n" +
		"├── sub\n" +
		"│   ╰── y\n" +
		"╰── x\n"
	assert.Equal(t, want, out, "tree output carries no summary")
}

func TestRenderTreeTable(t *testing.T) {
	dir := t.TempDir()
	makeTree(t, dir, map[string]string{"sub/y": "", "x": "hello"})

	opts := models.DefaultOptions()
	opts.Tree = true
	opts.Headers = true
	opts.Checksum = models.HashCRC32

	out, _ := render(t, dir, opts, 80)
	want := "CRC32\n" +
		"-        " + filepath.Base(dir) + "\n" +
		"-        ├── sub\n" +
		"00000000 │   ╰── y\n" +
		"3610a686 ╰── x\n"
	assert.Equal(t, want, out)
}

func TestRenderTreeTableTrueSize(t *testing.T) {
	dir := t.TempDir()
	makeTree(t, dir, map[string]string{"sub/y": "1234", "x": "12"})

	opts := models.DefaultOptions()
	opts.Tree = true
	opts.Size = true
	opts.TrueSize = true
	opts.SizeFormat = models.SizeBytes

	out, _ := render(t, dir, opts, 80)
	want := "6 " + filepath.Base(dir) + "\n" +
		"4 ├── sub\n" +
		"4 │   ╰── y\n" +
		"2 ╰── x\n"
	assert.Equal(t, want, out)
}

func TestRenderFind(t *testing.T) {
	dir := t.TempDir()
	makeTree(t, dir, map[string]string{"a.txt": "", "b.md": "", "sub/c.txt": ""})

	opts := models.DefaultOptions()
	opts.Find = "*.txt"
	opts.Recursive = true

	out, _ := render(t, dir, opts, layout.Unlimited)
	assert.Equal(t, "a.txt  sub/c.txt\n\n2 files.\n", out)
}

func TestRenderFindInvalidPattern(t *testing.T) {
	dir := t.TempDir()
	makeTree(t, dir, map[string]string{"a.txt": ""})

	opts := models.DefaultOptions()
	opts.Find = "bad\x00"

	out, errOut := render(t, dir, opts, 80)
	assert.Equal(t, "", out)
	assert.Contains(t, errOut, "Warning: Invalid pattern")
	assert.Contains(t, errOut, dir)
}

func TestRenderLogsCounts(t *testing.T) {
	dir := t.TempDir()
	makeTree(t, dir, map[string]string{"a": "", "b/": ""})

	opts := models.DefaultOptions()
	var logs bytes.Buffer
	err := Render(&bytes.Buffer{}, dir, Deps{
		Reader: fileutil.NewReader(&opts, nil, false),
		Log:    logger.NewConsoleLogger(&logs, "debug"),
		Width:  80,
	})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "Rendered 1 directory and 1 file as grid")
}

func TestRenderTreeOfMissingRootLogsError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")

	opts := models.DefaultOptions()
	opts.Tree = true
	var out, logs bytes.Buffer
	err := Render(&out, missing, Deps{
		Reader: fileutil.NewReader(&opts, nil, false),
		Log:    logger.NewConsoleLogger(&logs, "error"),
		Width:  80,
	})
	require.NoError(t, err)
	assert.Empty(t, out.String())
	assert.Contains(t, logs.String(), "[ERROR] Cannot read tree root "+missing)
}

type failingWriter struct{ writes int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.writes++
	return 0, errors.New("disk full")
}

func TestRenderReportsFirstWriteError(t *testing.T) {
	dir := t.TempDir()
	makeTree(t, dir, map[string]string{"a": "", "b": "", "c": ""})

	opts := models.DefaultOptions()
	opts.Oneline = true
	w := &failingWriter{}
	err := Render(w, dir, Deps{Reader: fileutil.NewReader(&opts, nil, false), Width: 80})

	require.Error(t, err)
	assert.Equal(t, "disk full", err.Error())
	assert.Equal(t, 1, w.writes, "nothing is written after the first failure")
}
