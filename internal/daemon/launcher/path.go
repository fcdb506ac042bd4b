package launcher

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// FixPath replaces PATH with the one the user's login shell exports.
// Processes started from a desktop session (macOS in particular) inherit a
// minimal PATH that rarely contains editor launchers such as code or subl.
func FixPath() error {
	if runtime.GOOS == "windows" {
		return nil
	}

	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, shell, "-ilc", `printf '%s' "$PATH"`).Output()
	if err != nil {
		return err
	}

	path := cleanPath(string(out))
	if path == "" {
		return nil
	}
	return os.Setenv("PATH", path)
}

// cleanPath keeps the last line of shell output, since interactive shells
// may print banners before it.
func cleanPath(out string) string {
	out = strings.TrimSpace(out)
	if i := strings.LastIndexByte(out, '\n'); i >= 0 {
		out = out[i+1:]
	}
	return strings.TrimSpace(out)
}
