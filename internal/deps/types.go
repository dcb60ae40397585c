package deps

import (
	"errors"

	"github.com/vuedeps-dev/vuedeps/internal/fileutil"
)

// ErrNotFound is returned when the requested file does not exist.
var ErrNotFound = errors.New("file not found")

// Set partitions one file's resolved dependencies by the section they
// were found in. Each category preserves first-seen order with
// duplicates removed.
type Set struct {
	Markup []string `json:"markup"`
	Code   []string `json:"code"`
	Style  []string `json:"style"`
	Store  []string `json:"store"`

	// raw maps a resolved candidate back to the reference text it came
	// from, for diagnostics on candidates that later fail to resolve to
	// a real file.
	raw map[string]string
}

// All returns every candidate across the four categories as one ordered,
// deduplicated list.
func (s *Set) All() []string {
	all := make([]string, 0, len(s.Markup)+len(s.Code)+len(s.Style)+len(s.Store))
	all = append(all, s.Markup...)
	all = append(all, s.Code...)
	all = append(all, s.Style...)
	all = append(all, s.Store...)
	return fileutil.DedupeStrings(all)
}

// RawReference returns the original reference text a resolved candidate
// was derived from, or the candidate itself when unknown.
func (s *Set) RawReference(candidate string) string {
	if raw, ok := s.raw[candidate]; ok {
		return raw
	}
	return candidate
}

// Summary holds per-category dependency counts for the result envelope.
type Summary struct {
	Total  int `json:"total"`
	Markup int `json:"markup"`
	Code   int `json:"code"`
	Style  int `json:"style"`
	Store  int `json:"store"`
}

// Result is the caller-facing envelope for one resolution call.
type Result struct {
	Success      bool     `json:"success"`
	FilePath     string   `json:"filePath"`
	Dependencies *Set     `json:"dependencies,omitempty"`
	Summary      *Summary `json:"summary,omitempty"`
	Error        string   `json:"error,omitempty"`
}

func newSummary(set *Set) *Summary {
	return &Summary{
		Total:  len(set.Markup) + len(set.Code) + len(set.Style) + len(set.Store),
		Markup: len(set.Markup),
		Code:   len(set.Code),
		Style:  len(set.Style),
		Store:  len(set.Store),
	}
}
