package fileutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/cairn/internal/logger"
	"github.com/harrison/cairn/internal/models"
)

func setupSearch(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"main.go":           "package main",
		"README.md":         "# readme",
		"cmd/app/app.go":    "package app",
		"cmd/app/notes.txt": "",
		"docs/guide.md":     "",
		"go/":               "",
		".git/config.go":    "",
	})
	return dir
}

func TestSearchFind(t *testing.T) {
	dir := setupSearch(t)

	tests := []struct {
		name    string
		pattern string
		mutate  func(o *models.Options)
		want    []string
	}{
		{
			name:    "top level only without recursion",
			pattern: "*.go",
			mutate:  func(o *models.Options) {},
			want:    []string{"main.go"},
		},
		{
			name:    "recursive matches carry their relative directory",
			pattern: "*.go",
			mutate:  func(o *models.Options) { o.Recursive = true },
			want:    []string{"cmd/app/app.go", "main.go"},
		},
		{
			name:    "case-insensitive",
			pattern: "readme.*",
			mutate:  func(o *models.Options) {},
			want:    []string{"README.md"},
		},
		{
			name:    "dirs filter",
			pattern: "go*",
			mutate:  func(o *models.Options) { o.Dirs = true },
			want:    []string{"go"},
		},
		{
			name:    "files filter with recursion",
			pattern: "*",
			mutate:  func(o *models.Options) { o.Files = true; o.Recursive = true },
			want:    []string{"main.go", "README.md"},
		},
		{
			name:    "hidden directories searched with all",
			pattern: "config.*",
			mutate:  func(o *models.Options) { o.All = true; o.Recursive = true },
			want:    []string{".git/config.go"},
		},
		{
			name:    "no matches",
			pattern: "*.zip",
			mutate:  func(o *models.Options) { o.Recursive = true },
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := models.DefaultOptions()
			tt.mutate(&opts)
			s, err := NewSearch(tt.pattern, dir, NewReader(&opts, nil, false))
			if err != nil {
				t.Fatalf("NewSearch() error = %v", err)
			}
			equalNames(t, s.Find(), tt.want...)
		})
	}
}

func TestSearchVerboseLogging(t *testing.T) {
	dir := setupSearch(t)
	buf := &bytes.Buffer{}

	opts := models.DefaultOptions()
	s, err := NewSearch("main.*", dir, NewReader(&opts, logger.NewConsoleLogger(buf, "trace"), false))
	if err != nil {
		t.Fatal(err)
	}
	s.Find()

	out := buf.String()
	for _, want := range []string{
		"Searching in " + dir + " ...",
		"Match: " + filepath.Join(dir, "main.go"),
		"Found 1 matches in " + dir,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestSearchSymlinkCycle(t *testing.T) {
	dir := setupSearch(t)
	if err := os.Symlink("..", filepath.Join(dir, "cmd", "up")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	opts := models.DefaultOptions()
	opts.Recursive = true
	s, err := NewSearch("main.go", dir, NewReader(&opts, nil, false))
	if err != nil {
		t.Fatal(err)
	}
	equalNames(t, s.Find(), "main.go")
}
