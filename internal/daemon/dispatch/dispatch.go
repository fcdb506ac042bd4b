package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/codetray/codetray/internal/daemon/launcher"
	"github.com/codetray/codetray/internal/daemon/project"
	"github.com/codetray/codetray/internal/locale"
	"github.com/codetray/codetray/internal/menu"
	"github.com/codetray/codetray/internal/ticker"
)

// ErrQuit is returned by Dispatch for the Quit action.
var ErrQuit = errors.New("quit requested")

// Spawner starts a process without waiting for it and returns a task ID.
type Spawner interface {
	Spawn(command string, args ...string) (string, error)
}

// AutoLauncher is the OS login-item registration.
type AutoLauncher interface {
	IsEnabled() (bool, error)
	Enable() error
	Disable() error
}

// Notifier shows a desktop notification.
type Notifier interface {
	Notify(title, body string) error
}

// FolderPicker asks the user for a directory. ok is false on cancel.
type FolderPicker interface {
	PickDirectory() (path string, ok bool, err error)
}

// TickerClient fetches a currency quote.
type TickerClient interface {
	Fetch(ctx context.Context, code string) (ticker.Quote, error)
}

// Dispatcher carries out menu actions. Dispatch is meant to be called from
// a single goroutine, one action at a time.
type Dispatcher struct {
	State    *State
	Spawner  Spawner
	Login    AutoLauncher
	Notifier Notifier
	Picker   FolderPicker
	Ticker   TickerClient

	// Refresh asks the tray to render again; nil means no tray.
	Refresh func()
}

// Tree loads the state, reconciles the login item and builds the menu.
// A corrupt project list is reported, set aside and replaced by an empty one.
func (d *Dispatcher) Tree() menu.Tree {
	in, err := d.State.Input()
	if err != nil {
		var corrupt *project.CorruptStateError
		if errors.As(err, &corrupt) {
			log.Printf("[dispatch] %v; resetting project list", err)
			d.notify(in.Strings.Get("error"), in.Strings.Get("corrupt"))
			if resetErr := d.State.Registry.Reset(); resetErr != nil {
				log.Printf("[dispatch] Failed to reset project list: %v", resetErr)
			}
		} else {
			log.Printf("[dispatch] Failed to load projects: %v", err)
		}
		in.Projects = nil
	}

	d.reconcile(in.AutoLogin)
	return menu.Build(in)
}

// Dispatch carries out one action. It returns ErrQuit for menu.Quit; every
// other failure is reported to the user and logged, and nil is returned.
func (d *Dispatcher) Dispatch(ctx context.Context, action menu.Action) error {
	switch a := action.(type) {
	case menu.AddProject:
		d.addProject()
	case menu.RemoveProject:
		d.removeProject(a.Path)
	case menu.OpenEditor:
		d.openEditor(ctx, a)
	case menu.ToggleAutoLogin:
		d.toggleAutoLogin(a.Enabled)
	case menu.FetchTicker:
		d.fetchTicker(ctx, a.Code)
	case menu.Quit:
		return ErrQuit
	default:
		log.Printf("[dispatch] Unknown action %T", action)
	}
	return nil
}

func (d *Dispatcher) addProject() {
	path, ok, err := d.Picker.PickDirectory()
	if err != nil {
		d.fail(err)
		return
	}
	if !ok {
		return
	}

	p, err := d.State.Registry.Add(path)
	if err != nil {
		d.fail(err)
		return
	}
	log.Printf("[dispatch] Added project %s (%s)", p.Name, p.Path)
	d.refresh()

	settings := d.State.Settings()
	if settings.Notifications.OnAdd {
		d.notify(d.State.Strings(settings).Get("added"), p.Name)
	}
}

func (d *Dispatcher) removeProject(path string) {
	if err := d.State.Registry.Remove(path); err != nil {
		d.fail(err)
		return
	}
	log.Printf("[dispatch] Removed project %s", path)
	d.refresh()
}

func (d *Dispatcher) openEditor(ctx context.Context, a menu.OpenEditor) {
	settings := d.State.Settings()
	editor := settings.Editor(a.Editor)
	if editor == nil {
		d.fail(fmt.Errorf("unknown editor %q", a.Editor))
		return
	}

	args := append(append([]string{}, editor.Args...), a.Path)
	if _, err := d.Spawner.Spawn(editor.Command, args...); err != nil {
		d.fail(err)
		return
	}

	if settings.Ticker.OnOpen {
		if codes := settings.TickerCodes(); len(codes) > 0 {
			d.fetchTicker(ctx, codes[0])
		}
	}
}

func (d *Dispatcher) toggleAutoLogin(enabled bool) {
	if err := d.State.SetAutoLogin(enabled); err != nil {
		d.fail(err)
		return
	}
	d.reconcile(enabled)
	d.refresh()
}

// reconcile brings the OS login item in line with want. Failures are logged
// only; the tray keeps running either way.
func (d *Dispatcher) reconcile(want bool) {
	if d.Login == nil {
		return
	}
	if err := Reconcile(d.Login, want); err != nil {
		log.Printf("[dispatch] Login item: %v", err)
	}
}

// Reconcile enables or disables al so that it matches want, calling at most
// one of Enable or Disable and neither when it already matches.
func Reconcile(al AutoLauncher, want bool) error {
	enabled, err := al.IsEnabled()
	if err != nil {
		return fmt.Errorf("check login item: %w", err)
	}
	switch {
	case want && !enabled:
		return al.Enable()
	case !want && enabled:
		return al.Disable()
	}
	return nil
}

func (d *Dispatcher) fetchTicker(ctx context.Context, code string) {
	settings := d.State.Settings()
	s := d.State.Strings(settings)

	q, err := d.Ticker.Fetch(ctx, code)
	if err != nil {
		log.Printf("[dispatch] Ticker %s: %v", code, err)
		d.notify(s.Get("error"), err.Error())
		return
	}
	d.notify(fmt.Sprintf("%s (%s)", s.Get("price"), q.Code), ticker.FormatBRL(q.Buy))
}

// Forward turns launcher events into notifications until events is closed
// or ctx is done. Each stderr chunk becomes one notification.
func (d *Dispatcher) Forward(ctx context.Context, events <-chan launcher.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev.Kind {
			case launcher.EventStderr:
				s := d.strings()
				d.notify(s.Get("error"), ev.Data)
			case launcher.EventExited:
				if ev.Err != nil {
					log.Printf("[dispatch] %s (task %s) exited: %v", ev.Command, ev.TaskID, ev.Err)
				}
			}
		}
	}
}

func (d *Dispatcher) strings() locale.Strings {
	return d.State.Strings(d.State.Settings())
}

func (d *Dispatcher) fail(err error) {
	log.Printf("[dispatch] %v", err)
	d.notify(d.strings().Get("error"), err.Error())
}

func (d *Dispatcher) notify(title, body string) {
	if d.Notifier == nil {
		return
	}
	if err := d.Notifier.Notify(title, body); err != nil {
		log.Printf("[dispatch] Notification failed: %v", err)
	}
}

func (d *Dispatcher) refresh() {
	if d.Refresh != nil {
		d.Refresh()
	}
}
