package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/codetray/codetray/internal/config"
	"github.com/codetray/codetray/internal/daemon/launcher"
	"github.com/codetray/codetray/internal/daemon/project"
	"github.com/codetray/codetray/internal/models"
)

// detach starts an editor without waiting for it.
var detach = launcher.Detach

var projectCmd = &cobra.Command{
	Use:     "project",
	Aliases: []string{"p"},
	Short:   "Manage registered projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add [path]",
	Short: "Register a project folder (default: current directory)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProjectAdd,
}

var projectListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List registered projects",
	Args:    cobra.NoArgs,
	RunE:    runProjectList,
}

var projectRemoveCmd = &cobra.Command{
	Use:     "remove <name|path>",
	Aliases: []string{"rm"},
	Short:   "Unregister a project",
	Args:    cobra.ExactArgs(1),
	RunE:    runProjectRemove,
}

var projectOpenCmd = &cobra.Command{
	Use:   "open <name|path>",
	Short: "Open a project in an editor",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectOpen,
}

func init() {
	projectOpenCmd.Flags().StringP("editor", "e", "code", "Editor id from settings (code, subl, pstorm)")

	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectOpenCmd)
	projectCmd.AddCommand(projectRemoveCmd)
}

// openRegistry opens the registry over the global store.
func openRegistry() (*project.Registry, error) {
	store, err := config.OpenGlobalStore()
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return project.NewRegistry(store), nil
}

func runProjectAdd(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		path = cwd
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", abs, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", abs)
	}

	reg, err := openRegistry()
	if err != nil {
		return err
	}
	projects, err := reg.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if existing := models.FindProjectByPath(projects, abs); existing != nil {
		fmt.Fprintln(out, paint(styleWarning, fmt.Sprintf("%s is already registered.", existing.Name)))
		return nil
	}

	p, err := reg.Add(abs)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, paint(styleSuccess, fmt.Sprintf("Added %s (%s).", p.Name, p.Path)))
	return nil
}

func runProjectList(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry()
	if err != nil {
		return err
	}
	projects, err := reg.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(projects) == 0 {
		fmt.Fprintln(out, "No projects registered.")
		fmt.Fprintln(out, paint(styleHint, "Add one with 'codetray project add [path]'."))
		return nil
	}

	for _, p := range projects {
		fmt.Fprintf(out, "%s  %s\n", paint(styleName, p.Name), paint(styleLabel, p.Path))
	}
	return nil
}

func runProjectRemove(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry()
	if err != nil {
		return err
	}
	projects, err := reg.List()
	if err != nil {
		return err
	}

	p := models.FindProject(projects, args[0])
	if p == nil {
		return fmt.Errorf("project not found: %s", args[0])
	}
	if err := reg.Remove(p.Path); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), paint(styleSuccess, fmt.Sprintf("Removed %s.", p.Name)))
	return nil
}

func runProjectOpen(cmd *cobra.Command, args []string) error {
	editorID, _ := cmd.Flags().GetString("editor")

	reg, err := openRegistry()
	if err != nil {
		return err
	}
	projects, err := reg.List()
	if err != nil {
		return err
	}

	p := models.FindProject(projects, args[0])
	if p == nil {
		return fmt.Errorf("project not found: %s", args[0])
	}
	return openProject(cmd, *p, editorID)
}

// openProject launches the editor identified by editorID on p.
func openProject(cmd *cobra.Command, p models.Project, editorID string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	editor := settings.Editor(editorID)
	if editor == nil {
		return fmt.Errorf("unknown editor %q", editorID)
	}

	args := append(append([]string{}, editor.Args...), p.Path)
	if err := detach(editor.Command, args...); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Opening %s with %s.\n", paint(styleName, p.Name), editor.Command)
	return nil
}
