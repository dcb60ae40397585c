package store

import (
	"path/filepath"

	"github.com/vuedeps-dev/vuedeps/internal/resolver"
)

// moduleExtensions limits store module probing to script files.
var moduleExtensions = []string{".js", ".ts"}

// Locate finds the file backing a store module name by probing the
// conventional store layouts under baseDir and under every alias target.
// Returns "" when no candidate exists.
func Locate(moduleName, baseDir string, aliases map[string]string, prober *resolver.Prober) string {
	if moduleName == "" {
		return ""
	}

	roots := []string{baseDir, filepath.Join(baseDir, "src")}
	for _, target := range aliases {
		root, err := resolver.Resolve(target, baseDir)
		if err != nil {
			continue
		}
		roots = append(roots, root)
	}

	for _, root := range roots {
		candidates := []string{
			filepath.Join(root, "store", "modules", moduleName),
			filepath.Join(root, "store", moduleName),
		}
		for _, candidate := range candidates {
			if hit := prober.ResolveWithExtensions(candidate, moduleExtensions); hit != "" {
				return hit
			}
		}
	}
	return ""
}
