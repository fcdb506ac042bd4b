// Package desktop adapts OS facilities (login items, notifications, folder
// dialogs) to the interfaces the dispatcher consumes.
package desktop

import (
	"errors"
	"fmt"
	"os"

	"github.com/emersion/go-autostart"
	"github.com/gen2brain/beeep"
	"github.com/ncruces/zenity"

	"github.com/codetray/codetray/internal/buildinfo"
)

// LoginItemName identifies the login item on every platform.
const LoginItemName = "codetray"

// AutoLaunch registers the running executable as a login item.
type AutoLaunch struct {
	app *autostart.App
}

// NewAutoLaunch creates a login item named name that runs exe with args.
// An empty exe means the current executable.
func NewAutoLaunch(name, exe string, args ...string) (*AutoLaunch, error) {
	if exe == "" {
		var err error
		exe, err = os.Executable()
		if err != nil {
			return nil, fmt.Errorf("get executable path failed: %w", err)
		}
	}
	return &AutoLaunch{app: &autostart.App{
		Name:        name,
		DisplayName: buildinfo.AppName,
		Exec:        append([]string{exe}, args...),
	}}, nil
}

// IsEnabled reports whether the login item is installed.
func (a *AutoLaunch) IsEnabled() (bool, error) {
	return a.app.IsEnabled(), nil
}

// Enable installs the login item.
func (a *AutoLaunch) Enable() error {
	if err := a.app.Enable(); err != nil {
		return fmt.Errorf("enable login item: %w", err)
	}
	return nil
}

// Disable removes the login item.
func (a *AutoLaunch) Disable() error {
	if err := a.app.Disable(); err != nil {
		return fmt.Errorf("disable login item: %w", err)
	}
	return nil
}

// Notifier shows desktop notifications.
type Notifier struct {
	IconPath string
}

// Notify shows a notification with title and body.
func (n *Notifier) Notify(title, body string) error {
	return beeep.Notify(title, body, n.IconPath)
}

// Picker opens the native folder dialog.
type Picker struct {
	Title string
}

// PickDirectory asks the user for a folder. ok is false when the dialog was
// cancelled.
func (p *Picker) PickDirectory() (string, bool, error) {
	opts := []zenity.Option{zenity.Directory()}
	if p.Title != "" {
		opts = append(opts, zenity.Title(p.Title))
	}
	if home, err := os.UserHomeDir(); err == nil {
		opts = append(opts, zenity.Filename(home+string(os.PathSeparator)))
	}

	path, err := zenity.SelectFile(opts...)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("folder dialog: %w", err)
	}
	if path == "" {
		return "", false, nil
	}
	return path, true, nil
}
