package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codetray/codetray/internal/tui"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a project interactively and open it",
	Args:  cobra.NoArgs,
	RunE:  runPick,
}

func init() {
	pickCmd.Flags().StringP("editor", "e", "code", "Editor id from settings (code, subl, pstorm)")
}

func runPick(cmd *cobra.Command, args []string) error {
	editorID, _ := cmd.Flags().GetString("editor")

	reg, err := openRegistry()
	if err != nil {
		return err
	}
	projects, err := reg.List()
	if err != nil {
		return err
	}

	p, err := tui.Pick(fmt.Sprintf("Projects (%d)", len(projects)), projects)
	if err != nil {
		return err
	}
	if p == nil {
		return nil
	}
	return openProject(cmd, *p, editorID)
}
