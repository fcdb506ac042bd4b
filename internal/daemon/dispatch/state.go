// Package dispatch connects the menu to the registry and to the desktop.
package dispatch

import (
	"log"
	"strconv"

	"github.com/codetray/codetray/internal/config"
	"github.com/codetray/codetray/internal/daemon/project"
	"github.com/codetray/codetray/internal/locale"
	"github.com/codetray/codetray/internal/menu"
	"github.com/codetray/codetray/internal/models"
)

// State is the application state the menu is rendered from. It is passed
// around explicitly; nothing in the tray reads package-level state.
type State struct {
	Store    config.Store
	Registry *project.Registry
	Locale   *locale.Provider

	// LoadSettings returns the current settings; nil means defaults.
	LoadSettings func() (*models.Settings, error)
	// SystemTag returns the OS locale; nil means English.
	SystemTag func() string
}

// NewState creates a state over store with the bundled locales.
func NewState(store config.Store) *State {
	return &State{
		Store:    store,
		Registry: project.NewRegistry(store),
		Locale:   locale.MustNew(),
	}
}

// Settings returns the current settings, falling back to defaults when they
// cannot be loaded.
func (s *State) Settings() *models.Settings {
	if s.LoadSettings == nil {
		return models.NewSettings()
	}
	settings, err := s.LoadSettings()
	if err != nil || settings == nil {
		log.Printf("[dispatch] Failed to load settings, using defaults: %v", err)
		return models.NewSettings()
	}
	return settings
}

// Strings returns the UI strings for the settings override or the OS locale.
func (s *State) Strings(settings *models.Settings) locale.Strings {
	tag := settings.Locale
	if tag == "" && s.SystemTag != nil {
		tag = s.SystemTag()
	}
	return s.Locale.Resolve(tag)
}

// AutoLogin returns the stored launch-at-login flag (default false).
func (s *State) AutoLogin() bool {
	raw, ok, err := s.Store.Get(config.KeyInitLogin)
	if err != nil {
		log.Printf("[dispatch] Failed to read %s: %v", config.KeyInitLogin, err)
		return false
	}
	if !ok {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return v
}

// SetAutoLogin stores the launch-at-login flag.
func (s *State) SetAutoLogin(enabled bool) error {
	return s.Store.Set(config.KeyInitLogin, strconv.FormatBool(enabled))
}

// Input loads everything the menu builder needs.
func (s *State) Input() (menu.Input, error) {
	settings := s.Settings()
	in := menu.Input{
		Strings:   s.Strings(settings),
		AutoLogin: s.AutoLogin(),
		Editors:   settings.Editors,
		Tickers:   settings.TickerCodes(),
	}

	projects, err := s.Registry.Load()
	if err != nil {
		return in, err
	}
	in.Projects = projects
	return in, nil
}
