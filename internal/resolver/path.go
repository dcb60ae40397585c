package resolver

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"
)

// ErrInvalidInput is returned when a required path argument is empty.
var ErrInvalidInput = errors.New("invalid input: empty path")

// Resolve normalizes path into an absolute filesystem path. Absolute
// inputs are cleaned and returned as-is; relative inputs are joined
// with baseDir first.
func Resolve(path, baseDir string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", ErrInvalidInput
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	return filepath.Clean(filepath.Join(baseDir, path)), nil
}

// ResolveAlias substitutes a configured alias prefix (e.g. "@" -> "./src")
// in reference and resolves the result against baseDir. Longest alias
// prefix wins, and a prefix only matches at a path-separator boundary so
// that alias "@" never claims "@foo". When no alias matches, the
// reference is returned unchanged and the caller decides whether it is a
// relative path or an external specifier.
func ResolveAlias(reference string, aliases map[string]string, baseDir string) (string, error) {
	if strings.TrimSpace(reference) == "" {
		return "", ErrInvalidInput
	}

	for _, prefix := range aliasKeysByLength(aliases) {
		if !strings.HasPrefix(reference, prefix) {
			continue
		}
		rest := reference[len(prefix):]
		if rest != "" && rest[0] != '/' {
			continue
		}
		target := aliases[prefix]
		return Resolve(filepath.Join(target, strings.TrimPrefix(rest, "/")), baseDir)
	}

	return reference, nil
}

// aliasKeysByLength orders alias prefixes longest-first so the most
// specific alias is tried before any prefix of it. Equal lengths sort
// lexicographically to keep resolution deterministic.
func aliasKeysByLength(aliases map[string]string) []string {
	keys := make([]string, 0, len(aliases))
	for key := range aliases {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}
