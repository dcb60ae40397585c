package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/vuedeps-dev/vuedeps/internal/copyutil"
	"github.com/vuedeps-dev/vuedeps/internal/deps"
	"github.com/vuedeps-dev/vuedeps/internal/fileutil"
	"github.com/vuedeps-dev/vuedeps/internal/tree"
)

func RunCopy(cmd *cobra.Command, args []string) error {
	cfg, err := loadCommandConfig(cmd)
	if err != nil {
		return err
	}
	dest, err := cmd.Flags().GetString("dest")
	if err != nil {
		return fmt.Errorf("failed to read --dest flag: %w", err)
	}

	fs := afero.NewOsFs()
	r := deps.NewResolver(fs, cfg.resolverOptions())
	builder := tree.NewBuilder(r, cfg.MaxDepth)
	treeResult := builder.Build(args[0])
	if !treeResult.Success {
		return fmt.Errorf("failed to analyze %s: %s", args[0], treeResult.Error)
	}

	// Copy only what exists; not-found and circular node paths stay in
	// the report but have nothing to stream.
	sources := make([]string, 0, len(treeResult.AllFiles))
	for _, file := range treeResult.AllFiles {
		if r.Prober().IsFile(file) {
			sources = append(sources, file)
		}
	}

	results, copyErr := copyutil.CopyAll(fs, sources, dest, cfg.BaseDir)
	copied := 0
	for _, result := range results {
		if result.Copied {
			copied++
		}
	}
	log.Info("copy finished", "copied", copied, "total", len(results), "dest", dest)

	if err := fileutil.PrintJSON(results); err != nil {
		return err
	}
	return copyErr
}
