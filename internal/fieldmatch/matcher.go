// Package fieldmatch matches validation member paths such as
// SendCommandInput.Targets[0].Key against ignore patterns.
package fieldmatch

import "strings"

// Matcher reports whether a member path is covered by a pattern.
type Matcher interface {
	Match(path string) bool
}

// ExactMatcher matches one path and every member nested below it, so
// "SendCommandInput.Targets" also covers "SendCommandInput.Targets[1].Key".
type ExactMatcher struct {
	path string
}

// NewExactMatcher creates a matcher for path and its nested members.
func NewExactMatcher(path string) *ExactMatcher {
	return &ExactMatcher{path: path}
}

// Match checks if path equals the pattern or is nested below it.
func (m *ExactMatcher) Match(path string) bool {
	if !strings.HasPrefix(path, m.path) {
		return false
	}
	rest := path[len(m.path):]
	return rest == "" || rest[0] == '.' || rest[0] == '['
}

// GlobMatcher matches paths with shell-style wildcards.
// Supports:
// - * (any run of characters, including dots)
// - ? (a single character)
// - *.Key (Key at any depth)
type GlobMatcher struct {
	pattern string
}

// NewGlobMatcher creates a new glob matcher.
func NewGlobMatcher(pattern string) *GlobMatcher {
	return &GlobMatcher{pattern: pattern}
}

// Match checks if the whole path matches the pattern.
func (m *GlobMatcher) Match(path string) bool {
	return globMatch(m.pattern, path)
}

func globMatch(pattern, str string) bool {
	for len(pattern) > 0 {
		if pattern[0] == '*' {
			for len(pattern) > 0 && pattern[0] == '*' {
				pattern = pattern[1:]
			}
			if len(pattern) == 0 {
				return true
			}
			for i := 0; i <= len(str); i++ {
				if globMatch(pattern, str[i:]) {
					return true
				}
			}
			return false
		}

		if len(str) == 0 || (pattern[0] != '?' && pattern[0] != str[0]) {
			return false
		}
		pattern = pattern[1:]
		str = str[1:]
	}
	return len(str) == 0
}

// ParseMatcher creates the matcher a pattern calls for.
func ParseMatcher(pattern string) Matcher {
	if strings.ContainsAny(pattern, "*?") {
		return NewGlobMatcher(pattern)
	}
	return NewExactMatcher(pattern)
}

// Set matches a path against any of several patterns.
type Set []Matcher

// NewSet parses every pattern. Empty patterns are skipped.
func NewSet(patterns []string) Set {
	s := make(Set, 0, len(patterns))
	for _, p := range patterns {
		if p = strings.TrimSpace(p); p != "" {
			s = append(s, ParseMatcher(p))
		}
	}
	return s
}

// Match reports whether any matcher in the set covers path.
func (s Set) Match(path string) bool {
	for _, m := range s {
		if m.Match(path) {
			return true
		}
	}
	return false
}
