// Package main is the entry point for the codetrayd tray daemon.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/codetray/codetray/internal/assets"
	"github.com/codetray/codetray/internal/buildinfo"
	"github.com/codetray/codetray/internal/config"
	"github.com/codetray/codetray/internal/daemon/dispatch"
	"github.com/codetray/codetray/internal/daemon/launcher"
	"github.com/codetray/codetray/internal/daemon/tray"
	"github.com/codetray/codetray/internal/daemon/watcher"
	"github.com/codetray/codetray/internal/desktop"
	"github.com/codetray/codetray/internal/locale"
	"github.com/codetray/codetray/internal/models"
	"github.com/codetray/codetray/internal/ticker"
)

func main() {
	// Parse flags
	showVersion := flag.Bool("version", false, "Print version and exit")
	keepPath := flag.Bool("keep-path", false, "Do not import PATH from the login shell")
	flag.Parse()

	if *showVersion {
		fmt.Printf("codetrayd %s (%s, %s)\n", buildinfo.Version, buildinfo.CommitHash, buildinfo.BuildDate)
		return
	}

	log.SetPrefix("[codetrayd] ")
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure global directory exists
	if err := config.EnsureGlobalDir(); err != nil {
		log.Fatalf("Failed to create global directory: %v", err)
	}

	// Check if daemon is already running
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		log.Fatalf("Failed to check daemon status: %v", err)
	}
	if running {
		log.Fatalf("Daemon already running (PID %d)", info.PID)
	}

	if !*keepPath {
		if err := launcher.FixPath(); err != nil {
			log.Printf("Failed to import PATH from login shell: %v", err)
		}
	}

	runWithTray()
}

// runWithTray runs the daemon with a system tray icon on the main goroutine.
// systray.Run must occupy the main goroutine on macOS (Cocoa requirement).
func runWithTray() {
	store, err := config.OpenGlobalStore()
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	state := dispatch.NewState(store)
	state.LoadSettings = config.LoadSettings
	state.SystemTag = locale.SystemTag

	dir, err := config.GlobalDir()
	if err != nil {
		log.Fatalf("Failed to resolve global directory: %v", err)
	}
	iconPath, err := assets.WriteIcon(dir)
	if err != nil {
		log.Printf("Failed to write notification icon: %v", err)
	}

	login, err := desktop.NewAutoLaunch(desktop.LoginItemName, "")
	if err != nil {
		log.Printf("Login item unavailable: %v", err)
	}

	settings := state.Settings()
	spawner := launcher.New(16)
	d := &dispatch.Dispatcher{
		State:    state,
		Spawner:  spawner,
		Notifier: &desktop.Notifier{IconPath: iconPath},
		Picker:   &desktop.Picker{Title: state.Strings(settings).Get("add")},
		Ticker:   ticker.NewClient(settings.Ticker.Endpoint),
	}
	if login != nil {
		d.Login = login
	}

	t := tray.New(d, assets.Icon)
	d.Refresh = t.Refresh

	ctx, cancel := context.WithCancel(context.Background())
	var w *watcher.Watcher

	onStart := func() {
		if err := config.SaveDaemonInfo(models.NewDaemonInfo(os.Getpid())); err != nil {
			log.Fatalf("Failed to write daemon info: %v", err)
		}
		log.Printf("Daemon started (PID %d)", os.Getpid())

		go d.Forward(ctx, spawner.Events())

		// Re-render when the CLI edits the store or settings
		w, err = watcher.New(dir)
		if err != nil {
			log.Printf("Failed to create watcher: %v", err)
		} else if err := w.Start(); err != nil {
			log.Printf("Failed to start watcher: %v", err)
		} else {
			go func() {
				for {
					select {
					case <-ctx.Done():
						return
					case ev := <-w.Events():
						log.Printf("%s changed, refreshing menu", ev.Path)
						t.Refresh()
					}
				}
			}()
		}

		// Handle OS signals, quit tray on SIGINT/SIGTERM
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			select {
			case sig := <-sigCh:
				log.Printf("Received signal %v, shutting down...", sig)
				t.Quit()
			case <-ctx.Done():
			}
		}()
	}

	onExit := func() {
		cancel()
		if w != nil {
			w.Stop()
		}
		if err := config.RemoveDaemonInfo(); err != nil {
			log.Printf("Failed to remove daemon info: %v", err)
		}
		fmt.Println("Daemon stopped")
	}

	// This blocks the main goroutine until tray exits.
	t.Run(onStart, onExit)
}
