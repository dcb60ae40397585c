package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/vuedeps-dev/vuedeps/internal/deps"
	"github.com/vuedeps-dev/vuedeps/internal/fileutil"
)

func RunDeps(cmd *cobra.Command, args []string) error {
	cfg, err := loadCommandConfig(cmd)
	if err != nil {
		return err
	}

	log.Debug("resolving dependencies", "file", args[0], "baseDir", cfg.BaseDir, "aliases", len(cfg.Aliases))
	r := deps.NewResolver(afero.NewOsFs(), cfg.resolverOptions())
	result := r.ResolveResult(args[0])
	if !result.Success {
		log.Warn("resolution failed", "file", result.FilePath, "error", result.Error)
	}
	return fileutil.PrintJSON(result)
}
