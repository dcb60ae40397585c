package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vuedeps",
		Short: "Trace single-file-component dependencies",
		Long: `Vuedeps analyzes a Vue single-file component (or any script or
stylesheet) and reports every local file it references, directly or
transitively: template assets, script imports, stylesheet imports, and
legacy store modules.

The dependency tree can be printed, flattened, or copied wholesale to a
destination directory, and router configuration files can be scanned
for migration notes.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("base-dir", "", "Project base directory (default: working directory)")
	rootCmd.PersistentFlags().StringArray("alias", nil, "Path alias mapping, prefix=dir (repeatable)")

	depsCmd := &cobra.Command{
		Use:   "deps <file>",
		Short: "Resolve the direct dependencies of one file",
		Args:  cobra.ExactArgs(1),
		RunE:  RunDeps,
	}

	treeCmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Build the recursive dependency tree for a file",
		Args:  cobra.ExactArgs(1),
		RunE:  RunTree,
	}
	treeCmd.Flags().Int("max-depth", -1, "Maximum traversal depth (default from config, else 10)")

	copyCmd := &cobra.Command{
		Use:   "copy <file>",
		Short: "Copy a file and all its local dependencies to a destination",
		Args:  cobra.ExactArgs(1),
		RunE:  RunCopy,
	}
	copyCmd.Flags().String("dest", "", "Destination root directory (required)")
	copyCmd.Flags().Int("max-depth", -1, "Maximum traversal depth (default from config, else 10)")
	_ = copyCmd.MarkFlagRequired("dest")

	routesCmd := &cobra.Command{
		Use:   "routes [path]",
		Short: "Scan for router configuration and report routes and legacy APIs",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunRoutes,
	}
	routesCmd.Flags().String("notes", "", "Write a markdown migration-notes document to this path")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("vuedeps %s\n", version)
		},
	}

	rootCmd.AddCommand(
		depsCmd,
		treeCmd,
		copyCmd,
		routesCmd,
		versionCmd,
	)

	return rootCmd
}
