package resolver

import (
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/spf13/afero"
)

// DefaultExtensions is the probe order used when a reference omits its
// extension. Components first, then scripts, then stylesheets.
var DefaultExtensions = []string{
	".vue", ".js", ".ts", ".jsx", ".tsx", ".mjs",
	".css", ".scss", ".sass", ".less", ".styl", ".json",
}

const statCacheSize = 4096

type statInfo struct {
	exists bool
	dir    bool
}

// Prober answers existence questions and extension probing against an
// injected filesystem. Stat results are memoized in a bounded LRU so a
// traversal that probes the same candidate from many files only stats
// it once. A Prober is scoped to one top-level analysis call.
type Prober struct {
	fs    afero.Fs
	stats *lru.Cache[string, statInfo]
}

func NewProber(fs afero.Fs) *Prober {
	stats, _ := lru.New[string, statInfo](statCacheSize)
	return &Prober{fs: fs, stats: stats}
}

func (p *Prober) stat(path string) statInfo {
	if cached, ok := p.stats.Get(path); ok {
		return cached
	}
	var info statInfo
	if fi, err := p.fs.Stat(path); err == nil {
		info = statInfo{exists: true, dir: fi.IsDir()}
	}
	p.stats.Add(path, info)
	return info
}

// Exists reports whether path names an existing file or directory.
func (p *Prober) Exists(path string) bool {
	return p.stat(path).exists
}

// IsFile reports whether path names an existing regular file.
func (p *Prober) IsFile(path string) bool {
	info := p.stat(path)
	return info.exists && !info.dir
}

// IsDir reports whether path names an existing directory.
func (p *Prober) IsDir(path string) bool {
	info := p.stat(path)
	return info.exists && info.dir
}

// ResolveWithExtensions locates the file a reference points at when the
// reference may omit its extension. An existing file is returned as-is;
// otherwise each candidate extension is appended in priority order, and
// if path names a directory its index.<ext> entries are probed. Returns
// "" when nothing resolves, which callers record as a not-found node
// rather than an error.
func (p *Prober) ResolveWithExtensions(path string, extensions []string) string {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	if filepath.Ext(path) != "" && p.IsFile(path) {
		return path
	}

	for _, ext := range extensions {
		if candidate := path + ext; p.IsFile(candidate) {
			return candidate
		}
	}

	if p.IsDir(path) {
		for _, ext := range extensions {
			if candidate := filepath.Join(path, "index"+ext); p.IsFile(candidate) {
				return candidate
			}
		}
	}

	return ""
}
