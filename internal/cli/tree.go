package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/vuedeps-dev/vuedeps/internal/deps"
	"github.com/vuedeps-dev/vuedeps/internal/fileutil"
	"github.com/vuedeps-dev/vuedeps/internal/tree"
)

func RunTree(cmd *cobra.Command, args []string) error {
	cfg, err := loadCommandConfig(cmd)
	if err != nil {
		return err
	}

	r := deps.NewResolver(afero.NewOsFs(), cfg.resolverOptions())
	builder := tree.NewBuilder(r, cfg.MaxDepth)
	result := builder.Build(args[0])
	if result.Success {
		log.Debug("tree built",
			"entry", result.EntryFile,
			"files", result.Summary.TotalFiles,
			"maxDepth", result.Summary.MaxDepthReached,
			"circular", len(result.Summary.CircularPaths))
	}
	return fileutil.PrintJSON(result)
}
