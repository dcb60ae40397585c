package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/vuedeps-dev/vuedeps/internal/fileutil"
	"github.com/vuedeps-dev/vuedeps/internal/ignore"
	"github.com/vuedeps-dev/vuedeps/internal/router"
)

func RunRoutes(cmd *cobra.Command, args []string) error {
	cfg, err := loadCommandConfig(cmd)
	if err != nil {
		return err
	}
	root := cfg.BaseDir
	if len(args) == 1 {
		root = args[0]
	}

	ignoreRules, err := LoadIgnoreRules(root)
	if err != nil {
		return err
	}
	matcher := ignore.NewMatcher(ignoreRules)

	result, err := router.Scan(afero.NewOsFs(), root, matcher)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", root, err)
	}
	log.Debug("router scan finished", "files", len(result.Files), "routes", len(result.Routes))

	notesPath, err := cmd.Flags().GetString("notes")
	if err != nil {
		return fmt.Errorf("failed to read --notes flag: %w", err)
	}
	if notesPath != "" {
		notes := router.GenerateNotes(result)
		if err := fileutil.WriteIfChanged(notesPath, []byte(notes)); err != nil {
			return fmt.Errorf("failed to write notes to %s: %w", notesPath, err)
		}
		log.Info("migration notes written", "path", notesPath)
	}

	return fileutil.PrintJSON(result)
}
