package router

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/vuedeps-dev/vuedeps/internal/ignore"
)

// routerGlobs are the filename shapes router configuration usually
// hides behind.
var routerGlobs = []string{
	"**/router/**/*.{js,ts}",
	"**/router.{js,ts}",
	"**/routes.{js,ts}",
	"**/routes/**/*.{js,ts}",
}

// Route is one route record pulled out of a router configuration file.
type Route struct {
	Path      string `json:"path"`
	Name      string `json:"name,omitempty"`
	Component string `json:"component,omitempty"`
	File      string `json:"file"`
}

// LegacyPattern flags an API usage that needs attention during a router
// migration.
type LegacyPattern struct {
	File    string `json:"file"`
	Pattern string `json:"pattern"`
	Hint    string `json:"hint"`
}

// ScanResult aggregates everything one router scan found.
type ScanResult struct {
	Files          []string        `json:"files"`
	Routes         []Route         `json:"routes"`
	LegacyPatterns []LegacyPattern `json:"legacyPatterns"`
}

var (
	routePathPattern = regexp.MustCompile(`path\s*:\s*['"]([^'"]*)['"]`)
	routeNamePattern = regexp.MustCompile(`^\s*name\s*:\s*['"]([^'"]+)['"]`)
	// component: Foo | component: () => import('...')
	routeComponentPattern = regexp.MustCompile(`component\s*:\s*(?:\(\)\s*=>\s*import\(\s*['"]([^'"]+)['"]\s*\)|([A-Za-z_$][\w$]*))`)
)

// legacyMarkers map source fragments to migration hints.
var legacyMarkers = []LegacyPattern{
	{Pattern: "new VueRouter", Hint: "replace with createRouter()"},
	{Pattern: "new Router(", Hint: "replace with createRouter()"},
	{Pattern: "mode: 'history'", Hint: "replace with history: createWebHistory()"},
	{Pattern: `mode: "history"`, Hint: "replace with history: createWebHistory()"},
	{Pattern: "router.addRoutes", Hint: "addRoutes was removed; call addRoute per record"},
	{Pattern: "Vue.use(Router)", Hint: "router is installed via app.use(router)"},
	{Pattern: "Vue.use(VueRouter)", Hint: "router is installed via app.use(router)"},
}

// Scan walks root for router configuration files and extracts route
// records and legacy API usage from each. Matching is heuristic line
// scanning over glob-selected files, not evaluation.
func Scan(fs afero.Fs, root string, matcher *ignore.Matcher) (*ScanResult, error) {
	scoped := afero.NewIOFS(afero.NewBasePathFs(fs, root))

	seen := make(map[string]bool)
	var files []string
	for _, pattern := range routerGlobs {
		matches, err := doublestar.Glob(scoped, pattern)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			if seen[match] || matcher.Ignored(match, false) {
				continue
			}
			seen[match] = true
			files = append(files, match)
		}
	}
	sort.Strings(files)

	result := &ScanResult{Files: []string{}, Routes: []Route{}, LegacyPatterns: []LegacyPattern{}}
	for _, rel := range files {
		abs := filepath.Join(root, rel)
		content, err := afero.ReadFile(fs, abs)
		if err != nil {
			continue
		}
		result.Files = append(result.Files, abs)
		result.Routes = append(result.Routes, extractRoutes(abs, string(content))...)
		result.LegacyPatterns = append(result.LegacyPatterns, findLegacyPatterns(abs, string(content))...)
	}
	return result, nil
}

// extractRoutes pairs every path: literal with the name: and component:
// entries that follow it before the next route record begins.
func extractRoutes(file, content string) []Route {
	pathMatches := routePathPattern.FindAllStringSubmatchIndex(content, -1)
	routes := make([]Route, 0, len(pathMatches))
	for i, match := range pathMatches {
		record := Route{File: file, Path: content[match[2]:match[3]]}

		end := len(content)
		if i+1 < len(pathMatches) {
			end = pathMatches[i+1][0]
		}
		window := content[match[1]:end]

		for _, line := range strings.Split(window, "\n") {
			if record.Name == "" {
				if m := routeNamePattern.FindStringSubmatch(line); m != nil {
					record.Name = m[1]
				}
			}
		}
		if m := routeComponentPattern.FindStringSubmatch(window); m != nil {
			if m[1] != "" {
				record.Component = m[1]
			} else {
				record.Component = m[2]
			}
		}
		routes = append(routes, record)
	}
	return routes
}

func findLegacyPatterns(file, content string) []LegacyPattern {
	var found []LegacyPattern
	for _, marker := range legacyMarkers {
		if strings.Contains(content, marker.Pattern) {
			found = append(found, LegacyPattern{File: file, Pattern: marker.Pattern, Hint: marker.Hint})
		}
	}
	return found
}
