package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/codetray/codetray/internal/config"
	"github.com/codetray/codetray/internal/daemon/dispatch"
)

// run executes the root command with args against a fresh home directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.HomeEnv, home)
	return home
}

func TestProjectAddListRemove(t *testing.T) {
	setupHome(t)
	dir := filepath.Join(t.TempDir(), "app")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "project", "add", dir)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.Contains(out, "Added app") {
		t.Errorf("add output = %q", out)
	}

	out, err = run(t, "project", "add", dir+string(os.PathSeparator))
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if !strings.Contains(out, "already registered") {
		t.Errorf("second add output = %q", out)
	}

	out, err = run(t, "project", "ls")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if strings.Count(out, dir) != 1 {
		t.Errorf("list output = %q, want %s once", out, dir)
	}

	if _, err := run(t, "project", "rm", "app"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	out, _ = run(t, "project", "list")
	if !strings.Contains(out, "No projects registered") {
		t.Errorf("list after remove = %q", out)
	}
}

func TestProjectAddRejectsFile(t *testing.T) {
	setupHome(t)
	file := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "project", "add", file); err == nil {
		t.Error("expected error for a regular file")
	}
}

func TestProjectRemoveUnknown(t *testing.T) {
	setupHome(t)
	if _, err := run(t, "project", "remove", "/nowhere"); err == nil {
		t.Error("expected error for unknown project")
	}
}

func TestProjectOpen(t *testing.T) {
	setupHome(t)
	dir := t.TempDir()
	if _, err := run(t, "project", "add", dir); err != nil {
		t.Fatal(err)
	}

	var gotCmd string
	var gotArgs []string
	orig := detach
	detach = func(command string, args ...string) error {
		gotCmd, gotArgs = command, args
		return nil
	}
	t.Cleanup(func() { detach = orig })

	if _, err := run(t, "project", "open", dir, "--editor", "subl"); err != nil {
		t.Fatalf("open: %v", err)
	}
	if gotCmd != "subl" {
		t.Errorf("command = %q, want subl", gotCmd)
	}
	if len(gotArgs) == 0 || gotArgs[len(gotArgs)-1] != dir {
		t.Errorf("args = %v, want path last", gotArgs)
	}

	if _, err := run(t, "project", "open", dir, "--editor", "vim"); err == nil {
		t.Error("expected error for unknown editor")
	}
}

type fakeLoginItem struct {
	enabled  bool
	enables  int
	disables int
}

func (f *fakeLoginItem) IsEnabled() (bool, error) { return f.enabled, nil }
func (f *fakeLoginItem) Enable() error            { f.enables++; f.enabled = true; return nil }
func (f *fakeLoginItem) Disable() error           { f.disables++; f.enabled = false; return nil }

func TestLogin(t *testing.T) {
	setupHome(t)
	item := &fakeLoginItem{}
	orig := newLoginItem
	newLoginItem = func() (dispatch.AutoLauncher, error) { return item, nil }
	t.Cleanup(func() { newLoginItem = orig })

	if _, err := run(t, "login", "on"); err != nil {
		t.Fatalf("login on: %v", err)
	}
	if _, err := run(t, "login", "on"); err != nil {
		t.Fatalf("login on again: %v", err)
	}
	if item.enables != 1 {
		t.Errorf("enables = %d, want 1", item.enables)
	}

	out, err := run(t, "login", "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if strings.Count(out, "on") < 2 {
		t.Errorf("status output = %q", out)
	}

	if _, err := run(t, "login", "off"); err != nil {
		t.Fatalf("login off: %v", err)
	}
	if item.disables != 1 || item.enabled {
		t.Errorf("disables = %d enabled = %v", item.disables, item.enabled)
	}

	state, err := openState()
	if err != nil {
		t.Fatal(err)
	}
	if state.AutoLogin() {
		t.Error("stored flag should be false")
	}
}
