package copyutil

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

// CopyResult reports the outcome of copying one source file.
type CopyResult struct {
	Source      string `json:"source"`
	Destination string `json:"destination,omitempty"`
	Copied      bool   `json:"copied"`
	Error       string `json:"error,omitempty"`
}

// Copy streams source into destRoot, preserving the source's path
// relative to relativeBase. Sources outside relativeBase land under an
// "_external" directory by base name so nothing escapes destRoot.
func Copy(fs afero.Fs, source, destRoot, relativeBase string) CopyResult {
	result := CopyResult{Source: source}

	rel, err := filepath.Rel(relativeBase, source)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Join("_external", filepath.Base(source))
	}
	dest := filepath.Join(destRoot, rel)

	if err := copyFile(fs, source, dest); err != nil {
		result.Error = err.Error()
		return result
	}
	result.Destination = dest
	result.Copied = true
	return result
}

// CopyAll copies every source, tolerating per-file failures. The
// returned error aggregates every failure and is nil when all copies
// succeeded.
func CopyAll(fs afero.Fs, sources []string, destRoot, relativeBase string) ([]CopyResult, error) {
	results := make([]CopyResult, 0, len(sources))
	var errs *multierror.Error
	for _, source := range sources {
		result := Copy(fs, source, destRoot, relativeBase)
		if result.Error != "" {
			errs = multierror.Append(errs, fmt.Errorf("copy %s: %s", source, result.Error))
		}
		results = append(results, result)
	}
	return results, errs.ErrorOrNil()
}

func copyFile(fs afero.Fs, source, dest string) error {
	in, err := fs.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := fs.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	out, err := fs.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
