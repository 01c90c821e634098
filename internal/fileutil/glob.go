package fileutil

import (
	"fmt"
	"regexp"
	"strings"
)

// Glob is a compiled, case-insensitive, fully anchored wildcard pattern.
// '*' matches any run of characters and '?' matches exactly one.
type Glob struct {
	pattern string
	re      *regexp.Regexp
}

// CompileGlob translates pattern into a regular expression and compiles it
func CompileGlob(pattern string) (*Glob, error) {
	if strings.ContainsRune(pattern, 0) {
		return nil, fmt.Errorf("invalid pattern %q: contains NUL byte", pattern)
	}
	re, err := regexp.Compile(globToRegex(pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return &Glob{pattern: pattern, re: re}, nil
}

// Match reports whether name matches the whole pattern
func (g *Glob) Match(name string) bool {
	return g.re.MatchString(name)
}

func (g *Glob) String() string {
	return g.pattern
}

func globToRegex(pattern string) string {
	var b strings.Builder
	b.WriteString("(?i)^")
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return b.String()
}
