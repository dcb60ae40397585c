package extract

import (
	"regexp"
	"strings"
)

var (
	// @import 'x'; @import "x" screen; @import url('x');
	styleImportPattern = regexp.MustCompile(`@import\s+(?:url\(\s*)?['"]?([^'")\s;]+)['"]?`)
	// url(x), url('x'), url("x")
	styleURLPattern = regexp.MustCompile(`url\(\s*['"]?([^'")]+)['"]?\s*\)`)
)

// StyleReferences scans a stylesheet section for @import directives and
// url(...) references and returns the raw local specifiers.
func StyleReferences(content string) []string {
	var refs []string
	for _, pattern := range []*regexp.Regexp{styleImportPattern, styleURLPattern} {
		for _, match := range pattern.FindAllStringSubmatch(content, -1) {
			refs = append(refs, normalizeStyleRef(match[1]))
		}
	}
	return keepLocal(refs)
}

// normalizeStyleRef drops query strings and the webpack "~" module
// prefix so preprocessor imports like "~@/styles/base.scss" resolve
// through the alias map.
func normalizeStyleRef(ref string) string {
	ref = StripQuery(strings.TrimSpace(ref))
	return strings.TrimPrefix(ref, "~")
}
