package fileutil

import (
	"fmt"
	"path/filepath"

	"github.com/harrison/cairn/internal/models"
)

// Search finds entries below a base directory whose names match a glob
type Search struct {
	glob    *Glob
	base    string
	reader  *Reader
	visited map[string]bool
}

// NewSearch compiles pattern for a search rooted at base
func NewSearch(pattern, base string, reader *Reader) (*Search, error) {
	g, err := CompileGlob(pattern)
	if err != nil {
		return nil, err
	}
	return &Search{glob: g, base: base, reader: reader, visited: make(map[string]bool)}, nil
}

// Find returns every match in list order. With the recursive option each
// directory-like entry is searched too, and matches below the base are named
// by their path relative to it.
func (s *Search) Find() []models.Entry {
	var matches []models.Entry
	s.searchDir(s.base, &matches)
	s.reader.log.LogInfo(fmt.Sprintf("Found %d matches in %s", len(matches), s.base))
	return matches
}

func (s *Search) searchDir(dir string, matches *[]models.Entry) {
	// symlinked directories can form cycles
	if canonical, err := filepath.EvalSymlinks(dir); err == nil {
		if s.visited[canonical] {
			return
		}
		s.visited[canonical] = true
	}

	opts := s.reader.opts
	s.reader.log.LogInfo(fmt.Sprintf("Searching in %s ...", dir))

	for _, e := range s.reader.List(dir) {
		dirLike := models.IsDirLike(e)
		excluded := (opts.Dirs && !dirLike) || (opts.Files && dirLike)

		if !excluded && s.glob.Match(e.Name()) {
			s.reader.log.LogTrace(fmt.Sprintf("Match: %s", e.Path()))
			e.SetName(s.relativeName(e))
			*matches = append(*matches, e)
		}

		if opts.Recursive && dirLike {
			s.searchDir(e.Path(), matches)
		}
	}
}

func (s *Search) relativeName(e models.Entry) string {
	rel, err := filepath.Rel(s.base, filepath.Dir(e.Path()))
	if err != nil || rel == "." {
		return e.Name()
	}
	return filepath.ToSlash(rel) + "/" + e.Name()
}
