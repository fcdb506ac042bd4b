package models

// EditorConfig describes one editor that projects can be opened in.
type EditorConfig struct {
	ID      string   `yaml:"id"`
	Command string   `yaml:"command"`
	Args    []string `yaml:"args,omitempty"` // placed before the project path
	Label   string   `yaml:"label"`          // locale key, or a literal label
}

// TickerConfig holds settings for the currency ticker.
type TickerConfig struct {
	Enabled  bool     `yaml:"enabled"`
	Codes    []string `yaml:"codes"`
	Endpoint string   `yaml:"endpoint"` // fmt pattern, %s is the currency code
	OnOpen   bool     `yaml:"on_open"`  // fetch the first code after each editor launch
}

// NotificationsConfig holds settings for informational notifications.
type NotificationsConfig struct {
	OnAdd bool `yaml:"on_add"`
}

// Settings represents global application settings.
// This corresponds to ~/.codetray/settings.yaml.
type Settings struct {
	Version       int                 `yaml:"version"`
	Locale        string              `yaml:"locale,omitempty"` // empty = system locale
	Editors       []EditorConfig      `yaml:"editors"`
	Ticker        TickerConfig        `yaml:"ticker"`
	Notifications NotificationsConfig `yaml:"notifications"`
}

// DefaultTickerEndpoint is the public BRL ticker used by the currency menu.
const DefaultTickerEndpoint = "https://api.bitcointrade.com.br/v3/public/BRL%s/ticker"

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Editors: []EditorConfig{
			{ID: "code", Command: "code", Label: "openCode"},
			{ID: "subl", Command: "subl", Label: "openSub"},
			{ID: "pstorm", Command: "pstorm", Label: "openPhp"},
		},
		Ticker: TickerConfig{
			Enabled:  true,
			Codes:    []string{"BTC"},
			Endpoint: DefaultTickerEndpoint,
		},
		Notifications: NotificationsConfig{
			OnAdd: true,
		},
	}
}

// Editor finds an editor by ID.
func (s *Settings) Editor(id string) *EditorConfig {
	for i := range s.Editors {
		if s.Editors[i].ID == id {
			return &s.Editors[i]
		}
	}
	return nil
}

// TickerCodes returns the configured ticker codes, or nil when the ticker is off.
func (s *Settings) TickerCodes() []string {
	if !s.Ticker.Enabled {
		return nil
	}
	return s.Ticker.Codes
}
