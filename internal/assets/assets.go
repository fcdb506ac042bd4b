// Package assets embeds the tray icon.
package assets

import (
	_ "embed"
	"os"
	"path/filepath"
)

// Icon is the tray icon, a black template image with alpha.
//
//go:embed icon.png
var Icon []byte

// IconFileName is the name WriteIcon uses inside dir.
const IconFileName = "icon.png"

// WriteIcon writes the icon into dir so that tools that need a file path
// (desktop notifications) can use it, and returns that path.
func WriteIcon(dir string) (string, error) {
	path := filepath.Join(dir, IconFileName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, Icon, 0644); err != nil {
		return "", err
	}
	return path, nil
}
