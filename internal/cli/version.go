package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/codetray/codetray/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n", paint(styleBrand, buildinfo.AppName), paint(styleVersion, buildinfo.Version))
		fmt.Fprintf(out, "  %s %s\n", paint(styleLabel, "Commit: "), buildinfo.CommitHash)
		fmt.Fprintf(out, "  %s %s\n", paint(styleLabel, "Built:  "), buildinfo.BuildDate)
		fmt.Fprintf(out, "  %s %s/%s\n", paint(styleLabel, "OS/Arch:"), runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(out, "  %s %s\n", paint(styleLabel, "Go:     "), runtime.Version())
	},
}
