package deps

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/vuedeps-dev/vuedeps/internal/extract"
	"github.com/vuedeps-dev/vuedeps/internal/resolver"
	"github.com/vuedeps-dev/vuedeps/internal/sfc"
	"github.com/vuedeps-dev/vuedeps/internal/store"
)

// Options configures a Resolver. Zero values fall back to the process
// working directory, an empty alias map, and the default extension list.
type Options struct {
	BaseDir    string
	Aliases    map[string]string
	Extensions []string
}

// Resolver turns one file's source text into a classified set of
// absolute dependency paths. It owns no mutable state beyond the stat
// cache inside its Prober, so one Resolver serves a whole traversal.
type Resolver struct {
	fs         afero.Fs
	prober     *resolver.Prober
	detector   *store.Detector
	baseDir    string
	aliases    map[string]string
	extensions []string
}

func NewResolver(fs afero.Fs, opts Options) *Resolver {
	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir, _ = os.Getwd()
	}
	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = resolver.DefaultExtensions
	}
	return &Resolver{
		fs:         fs,
		prober:     resolver.NewProber(fs),
		detector:   store.NewDetector(),
		baseDir:    baseDir,
		aliases:    opts.Aliases,
		extensions: extensions,
	}
}

// Prober exposes the shared stat cache for collaborators that probe
// extension candidates during the same traversal.
func (r *Resolver) Prober() *resolver.Prober {
	return r.prober
}

// Extensions returns the configured extension probe order.
func (r *Resolver) Extensions() []string {
	return r.extensions
}

// EntryPath resolves a caller-supplied file path against the base
// directory without touching the filesystem.
func (r *Resolver) EntryPath(filePath string) (string, error) {
	return resolver.Resolve(filePath, r.baseDir)
}

// Resolve analyzes one file and returns its classified dependency set
// along with the file's resolved absolute path. Missing files return
// ErrNotFound; malformed components return *sfc.ParseError.
func (r *Resolver) Resolve(filePath string) (*Set, string, error) {
	abs, err := resolver.Resolve(filePath, r.baseDir)
	if err != nil {
		return nil, filePath, err
	}
	if !r.prober.IsFile(abs) {
		return nil, abs, fmt.Errorf("%w: %s", ErrNotFound, abs)
	}

	content, err := afero.ReadFile(r.fs, abs)
	if err != nil {
		return nil, abs, fmt.Errorf("read %s: %w", abs, err)
	}

	var markupRefs, codeRefs, styleRefs []string
	var codeSections []string

	switch sfc.Classify(abs) {
	case sfc.KindComponent:
		descriptor, err := sfc.Parse(abs, content)
		if err != nil {
			return nil, abs, err
		}
		markupRefs = extract.MarkupReferences(descriptor.Template)
		codeSections = descriptor.CodeSections()
		for _, section := range codeSections {
			codeRefs = append(codeRefs, extract.CodeReferences(section)...)
		}
		for _, style := range descriptor.Styles {
			styleRefs = append(styleRefs, extract.StyleReferences(style)...)
		}
	case sfc.KindScript:
		codeSections = []string{string(content)}
		codeRefs = extract.CodeReferences(string(content))
	case sfc.KindStyle:
		styleRefs = extract.StyleReferences(string(content))
	default:
		// Assets and unknown formats carry no dependencies.
	}

	set := &Set{raw: make(map[string]string)}
	set.Markup = r.resolveCategory(markupRefs, filepath.Dir(abs), set.raw)
	set.Code = r.resolveCategory(codeRefs, filepath.Dir(abs), set.raw)
	set.Style = r.resolveCategory(styleRefs, filepath.Dir(abs), set.raw)
	set.Store = r.resolveStoreModules(codeSections)

	return set, abs, nil
}

// ResolveResult wraps Resolve into the success/error envelope callers
// serialize.
func (r *Resolver) ResolveResult(filePath string) *Result {
	set, abs, err := r.Resolve(filePath)
	if err != nil {
		return &Result{Success: false, FilePath: abs, Error: err.Error()}
	}
	return &Result{
		Success:      true,
		FilePath:     abs,
		Dependencies: set,
		Summary:      newSummary(set),
	}
}

// resolveCategory maps raw references onto absolute candidate paths,
// dropping external package specifiers and deduplicating while keeping
// first-seen order.
func (r *Resolver) resolveCategory(refs []string, fileDir string, raw map[string]string) []string {
	out := make([]string, 0, len(refs))
	seen := make(map[string]bool)
	for _, ref := range refs {
		candidate, ok := r.resolveReference(ref, fileDir)
		if !ok || seen[candidate] {
			continue
		}
		seen[candidate] = true
		out = append(out, candidate)
		if _, exists := raw[candidate]; !exists {
			raw[candidate] = ref
		}
	}
	return out
}

// resolveReference turns one raw reference into an absolute candidate
// path. Alias-mapped and absolute references resolve against the base
// directory, explicitly relative ones against the referencing file's
// directory. A bare specifier that matches no alias is a package import
// and is excluded.
func (r *Resolver) resolveReference(ref, fileDir string) (string, bool) {
	resolved, err := resolver.ResolveAlias(ref, r.aliases, r.baseDir)
	if err != nil {
		return "", false
	}
	if filepath.IsAbs(resolved) {
		return filepath.Clean(resolved), true
	}
	if isRelative(ref) {
		abs, err := resolver.Resolve(ref, fileDir)
		if err != nil {
			return "", false
		}
		return abs, true
	}
	return "", false
}

func isRelative(ref string) bool {
	return ref == "." || ref == ".." ||
		strings.HasPrefix(ref, "./") || strings.HasPrefix(ref, "../")
}

// resolveStoreModules runs the legacy-store detector over every code
// section and locates the files backing the modules it reports.
func (r *Resolver) resolveStoreModules(codeSections []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, section := range codeSections {
		usage := r.detector.Detect(section)
		if !usage.UsesLegacyStore {
			continue
		}
		for _, module := range usage.UsedModules {
			located := store.Locate(module, r.baseDir, r.aliases, r.prober)
			if located == "" || seen[located] {
				continue
			}
			seen[located] = true
			out = append(out, located)
		}
	}
	return out
}
