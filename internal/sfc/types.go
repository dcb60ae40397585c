package sfc

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind classifies a file by what its content section contains.
type Kind int

const (
	KindComponent Kind = iota
	KindScript
	KindStyle
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindComponent:
		return "component"
	case KindScript:
		return "script"
	case KindStyle:
		return "style"
	default:
		return "other"
	}
}

var (
	scriptExtensions = map[string]bool{
		".js": true, ".ts": true, ".jsx": true, ".tsx": true,
		".mjs": true, ".cjs": true,
	}
	styleExtensions = map[string]bool{
		".css": true, ".scss": true, ".sass": true,
		".less": true, ".styl": true,
	}
)

// Classify maps a file path onto the content kind that decides which
// extraction strategy applies to it.
func Classify(path string) Kind {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".vue":
		return KindComponent
	case scriptExtensions[ext]:
		return KindScript
	case styleExtensions[ext]:
		return KindStyle
	default:
		return KindOther
	}
}

// Descriptor holds the named sections of a single-file component.
type Descriptor struct {
	Path        string
	Template    string
	Script      string
	ScriptSetup string
	Styles      []string
}

// CodeSections returns the script sections in document order.
func (d *Descriptor) CodeSections() []string {
	var sections []string
	if d.Script != "" {
		sections = append(sections, d.Script)
	}
	if d.ScriptSetup != "" {
		sections = append(sections, d.ScriptSetup)
	}
	return sections
}

// ParseError reports malformed component section boundaries. It carries
// the offending file path and every diagnostic collected before parsing
// stopped; analysis of other files continues past it.
type ParseError struct {
	Path        string
	Diagnostics []string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.Path, strings.Join(e.Diagnostics, "; "))
}
