package extract

import (
	"regexp"
	"strings"

	"github.com/vuedeps-dev/vuedeps/internal/fileutil"
)

// schemePattern matches URL schemes such as http:, https:, data:, mailto:.
var schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

// IsLocal reports whether a raw reference can denote a file on the local
// filesystem. Absolute URLs, protocol-relative URLs, data URIs, and
// anything routed through a package-manager directory are external.
func IsLocal(reference string) bool {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return false
	}
	if strings.HasPrefix(reference, "//") {
		return false
	}
	if schemePattern.MatchString(reference) {
		return false
	}
	for _, segment := range strings.Split(reference, "/") {
		if segment == "node_modules" {
			return false
		}
	}
	return true
}

// StripQuery removes a query string or fragment from a resource
// reference, so "logo.png?v=2" and "icon.svg#id" resolve as files.
func StripQuery(reference string) string {
	if idx := strings.IndexAny(reference, "?#"); idx >= 0 {
		return reference[:idx]
	}
	return reference
}

// keepLocal drops external references and collapses duplicates produced
// by overlapping patterns (e.g. @import url(...) hit by both the import
// and the url form).
func keepLocal(references []string) []string {
	out := make([]string, 0, len(references))
	for _, ref := range references {
		ref = strings.TrimSpace(ref)
		if IsLocal(ref) {
			out = append(out, ref)
		}
	}
	return fileutil.DedupeStrings(out)
}
