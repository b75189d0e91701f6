package paths

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

type ExcludeMatcher struct {
	patterns []string
}

func NewExcludeMatcher(patterns []string) *ExcludeMatcher {
	var cleaned []string
	for _, p := range patterns {
		p = strings.TrimSuffix(strings.TrimSpace(p), "/")
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return &ExcludeMatcher{patterns: cleaned}
}

func (m *ExcludeMatcher) Empty() bool {
	return m == nil || len(m.patterns) == 0
}

func (m *ExcludeMatcher) Match(relPath string) bool {
	if m == nil {
		return false
	}
	for _, pat := range m.patterns {
		if matchPattern(pat, relPath) {
			return true
		}
	}
	return false
}

// Bare names match any single component; anything with a
// slash or ** is anchored at the manifest root.
func matchPattern(pattern, relPath string) bool {
	if !strings.Contains(pattern, "/") &&
		!strings.Contains(pattern, "**") {
		for _, part := range strings.Split(relPath, "/") {
			if matched, _ := path.Match(pattern, part); matched {
				return true
			}
		}
		return false
	}
	if matched, _ := doublestar.Match(pattern, relPath); matched {
		return true
	}
	matched, _ := doublestar.Match(pattern+"/**", relPath)
	return matched
}
