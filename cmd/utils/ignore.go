package utils

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// MatchMode selects how ignore patterns are compared against a path.
type MatchMode string

const (
	MatchSubstring MatchMode = "substring"
	MatchGlob      MatchMode = "glob"
	MatchSegment   MatchMode = "segment"
)

var ErrUnknownMode = errors.New("unknown match mode")

// DefaultIgnorePatterns are segment patterns for VCS metadata and OS clutter.
var DefaultIgnorePatterns = []string{
	".git",
	".hg",
	".svn",
	"node_modules",
	"__pycache__",
	".DS_Store",
	"Thumbs.db",
	"desktop.ini",
}

func ParseMatchMode(s string) (MatchMode, error) {
	switch m := MatchMode(strings.ToLower(strings.TrimSpace(s))); m {
	case MatchSubstring, MatchGlob, MatchSegment:
		return m, nil
	case "":
		return MatchSubstring, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Ignorer decides whether a path is excluded from grouping.
type Ignorer interface {
	Match(path string) bool
}

// Ignorers matches when any of its members does.
type Ignorers []Ignorer

func (s Ignorers) Match(path string) bool {
	for _, ig := range s {
		if ig != nil && ig.Match(path) {
			return true
		}
	}
	return false
}

// Matcher is a set of ignore patterns compiled for one MatchMode.
type Matcher struct {
	mode     MatchMode
	count    int
	substr   []string
	globs    []glob.Glob
	segments map[string]struct{}
	runs     []string
}

// NewMatcher compiles patterns once. Empty and repeated patterns are dropped.
func NewMatcher(mode MatchMode, patterns []string) (*Matcher, error) {
	m := &Matcher{mode: mode}
	seen := make(map[string]struct{}, len(patterns))
	var uniq []string
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		uniq = append(uniq, p)
	}
	m.count = len(uniq)
	if m.count == 0 {
		return m, nil
	}

	switch mode {
	case MatchSubstring:
		// Compared byte for byte, so patterns need not be valid UTF-8.
		m.substr = uniq
	case MatchGlob:
		for _, p := range uniq {
			g, err := glob.Compile(filepath.ToSlash(p), '/')
			if err != nil {
				return nil, fmt.Errorf("compiling glob %q: %w", p, err)
			}
			m.globs = append(m.globs, g)
		}
	case MatchSegment:
		m.segments = make(map[string]struct{})
		for _, p := range uniq {
			p = strings.Trim(toSlash(p), "/")
			if p == "" {
				continue
			}
			if strings.Contains(p, "/") {
				m.runs = append(m.runs, "/"+p+"/")
				continue
			}
			m.segments[p] = struct{}{}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	return m, nil
}

// NewDefaultMatcher matches DefaultIgnorePatterns as path segments.
func NewDefaultMatcher() *Matcher {
	m, _ := NewMatcher(MatchSegment, DefaultIgnorePatterns)
	return m
}

func (m *Matcher) Mode() MatchMode { return m.mode }

// Len is the number of distinct patterns compiled into m.
func (m *Matcher) Len() int { return m.count }

func (m *Matcher) Match(path string) bool {
	if m == nil || m.count == 0 {
		return false
	}
	switch m.mode {
	case MatchSubstring:
		for _, p := range m.substr {
			if strings.Contains(path, p) {
				return true
			}
		}
	case MatchGlob:
		norm := toSlash(path)
		base := norm[strings.LastIndex(norm, "/")+1:]
		for _, g := range m.globs {
			if g.Match(norm) || g.Match(base) {
				return true
			}
		}
	case MatchSegment:
		norm := toSlash(path)
		for _, seg := range strings.Split(norm, "/") {
			if _, ok := m.segments[seg]; ok {
				return true
			}
		}
		wrapped := "/" + strings.Trim(norm, "/") + "/"
		for _, run := range m.runs {
			if strings.Contains(wrapped, run) {
				return true
			}
		}
	}
	return false
}

// toSlash treats both separators as '/', whatever the host OS.
func toSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
