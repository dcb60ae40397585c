package extract

import "regexp"

// Each static-import and require form gets its own pattern. A reference
// picked up by more than one form collapses in keepLocal. This is
// deliberately pattern scanning, not parsing: dynamically constructed
// specifiers are out of reach and that is accepted.
var codePatterns = []*regexp.Regexp{
	// import defaultExport from '...'
	regexp.MustCompile(`import\s+[A-Za-z_$][\w$]*\s+from\s+['"]([^'"]+)['"]`),
	// import { named, other as alias } from '...'
	regexp.MustCompile(`import\s+\{[^}]*\}\s*from\s+['"]([^'"]+)['"]`),
	// import * as ns from '...'
	regexp.MustCompile(`import\s+\*\s+as\s+[A-Za-z_$][\w$]*\s+from\s+['"]([^'"]+)['"]`),
	// import defaultExport, { named } from '...'
	regexp.MustCompile(`import\s+[A-Za-z_$][\w$]*\s*,\s*\{[^}]*\}\s*from\s+['"]([^'"]+)['"]`),
	// import defaultExport, * as ns from '...'
	regexp.MustCompile(`import\s+[A-Za-z_$][\w$]*\s*,\s*\*\s+as\s+[A-Za-z_$][\w$]*\s+from\s+['"]([^'"]+)['"]`),
	// import '...' (side-effect only)
	regexp.MustCompile(`import\s+['"]([^'"]+)['"]`),
	// require('...')
	regexp.MustCompile(`require\s*\(\s*['"]([^'"]+)['"]\s*\)`),
	// import('...') with a literal specifier
	regexp.MustCompile(`import\s*\(\s*['"]([^'"]+)['"]\s*\)`),
}

// CodeReferences scans a script section for every recognized import and
// require form and returns the raw local specifiers in match order.
func CodeReferences(content string) []string {
	var refs []string
	for _, pattern := range codePatterns {
		for _, match := range pattern.FindAllStringSubmatch(content, -1) {
			refs = append(refs, match[1])
		}
	}
	return keepLocal(refs)
}
