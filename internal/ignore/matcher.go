package ignore

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// defaultRules exclude directories no dependency scan should descend
// into. User rules are appended and can negate them.
var defaultRules = []string{
	".git/",
	"node_modules/",
	"dist/",
	"build/",
	"coverage/",
}

type rule struct {
	pattern string
	negated bool
	dirOnly bool
}

// Matcher applies gitignore-like exclusion rules with last-rule-wins
// semantics. Patterns use doublestar globs; a rule without a slash
// matches any path segment.
type Matcher struct {
	rules []rule
}

// NewMatcher builds a matcher from user-provided ignore lines, layered
// on top of the default excludes.
func NewMatcher(userRules []string) *Matcher {
	all := append(append([]string{}, defaultRules...), userRules...)
	matcher := &Matcher{rules: make([]rule, 0, len(all))}
	for _, line := range all {
		if parsed, ok := parseRule(line); ok {
			matcher.rules = append(matcher.rules, parsed)
		}
	}
	return matcher
}

// Ignored reports whether relPath should be excluded from scanning.
func (m *Matcher) Ignored(relPath string, isDir bool) bool {
	relPath = normalize(relPath)
	ignored := false
	for _, r := range m.rules {
		if matches(r, relPath, isDir) {
			ignored = !r.negated
		}
	}
	return ignored
}

func parseRule(line string) (rule, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return rule{}, false
	}
	parsed := rule{}
	if strings.HasPrefix(line, "!") {
		parsed.negated = true
		line = line[1:]
	}
	if strings.HasSuffix(line, "/") {
		parsed.dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}
	parsed.pattern = normalize(line)
	if parsed.pattern == "" {
		return rule{}, false
	}
	return parsed, true
}

func matches(r rule, relPath string, isDir bool) bool {
	if r.dirOnly {
		// A directory rule matches the directory itself and everything
		// under any segment equal to the pattern.
		if isDir && segmentMatch(r.pattern, relPath) {
			return true
		}
		dir := path.Dir(relPath)
		for dir != "." && dir != "/" {
			if segmentMatch(r.pattern, dir) {
				return true
			}
			dir = path.Dir(dir)
		}
		return false
	}

	if strings.Contains(r.pattern, "/") {
		ok, err := doublestar.Match(r.pattern, relPath)
		return err == nil && ok
	}
	return segmentMatch(r.pattern, relPath)
}

// segmentMatch tries the pattern against the whole path and against
// every trailing sub-path, so an unanchored "dist" matches "a/b/dist".
func segmentMatch(pattern, relPath string) bool {
	if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
		return true
	}
	parts := strings.Split(relPath, "/")
	for i := range parts {
		if ok, err := doublestar.Match(pattern, strings.Join(parts[i:], "/")); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, parts[i]); err == nil && ok {
			return true
		}
	}
	return false
}

func normalize(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.TrimPrefix(p, "./")
	return strings.TrimPrefix(p, "/")
}
