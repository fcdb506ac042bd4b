// Package cli implements the codetray CLI commands.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "codetray",
	Short: "Open your projects in an editor from the system tray",
	Long: `Code Tray keeps a list of project folders and opens them in a code
editor from the system tray. The CLI manages the same list the tray shows.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		detectStyling(cmd.OutOrStdout())
	},
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(tickerCmd)
	rootCmd.AddCommand(versionCmd)
}
