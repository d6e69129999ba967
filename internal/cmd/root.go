package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gideora/website/internal/config"
)

// NewRootCommand builds the command tree. A fresh tree per call keeps tests
// independent of each other's flags.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "gideora",
		Short: "Gideora landing site",
		Long: `Serves the Gideora landing page and previews it in the terminal.

Configuration is read from the environment; .env and .env.local in the
working directory are loaded first when present.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadDotEnv()
		},
	}

	root.AddCommand(newServeCommand(), newPreviewCommand())
	return root
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return NewRootCommand().Execute()
}
