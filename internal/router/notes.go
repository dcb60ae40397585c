package router

import (
	"fmt"
	"strings"

	"github.com/vuedeps-dev/vuedeps/internal/fileutil"
)

// GenerateNotes renders a scan result as a markdown migration-notes
// document: the files scanned, a route inventory, and every legacy
// pattern with its hint.
func GenerateNotes(result *ScanResult) string {
	var b strings.Builder
	b.WriteString("# Router migration notes\n\n")

	if len(result.Files) == 0 {
		b.WriteString("No router configuration files found.\n")
		return b.String()
	}

	b.WriteString("## Router files\n\n")
	for _, file := range result.Files {
		fmt.Fprintf(&b, "- `%s`\n", file)
	}

	b.WriteString("\n## Routes\n\n")
	if len(result.Routes) == 0 {
		b.WriteString("No route records detected.\n")
	} else {
		b.WriteString("| Path | Name | Component |\n|------|------|-----------|\n")
		for _, route := range result.Routes {
			fmt.Fprintf(&b, "| `%s` | %s | %s |\n", route.Path, orDash(route.Name), orDash(route.Component))
		}
	}

	b.WriteString("\n## Legacy patterns\n\n")
	if len(result.LegacyPatterns) == 0 {
		b.WriteString("No legacy router APIs detected.\n")
	} else {
		for _, legacy := range result.LegacyPatterns {
			fmt.Fprintf(&b, "- `%s` in `%s`: %s\n", legacy.Pattern, legacy.File, legacy.Hint)
		}
	}

	return fileutil.EnsureTrailingNewline(b.String())
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
