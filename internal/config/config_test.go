package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/codetray/codetray/internal/models"
)

func TestGlobalDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)

	got, err := GlobalDir()
	if err != nil {
		t.Fatal(err)
	}
	if got != dir {
		t.Errorf("GlobalDir() = %q, want %q", got, dir)
	}

	store, err := GlobalStoreFile()
	if err != nil {
		t.Fatal(err)
	}
	if store != filepath.Join(dir, StoreFileName) {
		t.Errorf("GlobalStoreFile() = %q", store)
	}
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", StoreFileName)
	s := NewFileStore(path)

	if _, ok, err := s.Get(KeyProjects); err != nil || ok {
		t.Fatalf("Get on missing file = ok %v, err %v", ok, err)
	}

	if err := s.Set(KeyProjects, `[{"name":"app","path":"/home/u/app"}]`); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(KeyInitLogin, "true"); err != nil {
		t.Fatal(err)
	}

	// A second store over the same file sees both keys.
	other := NewFileStore(path)
	v, ok, err := other.Get(KeyProjects)
	if err != nil || !ok {
		t.Fatalf("Get = ok %v, err %v", ok, err)
	}
	if v != `[{"name":"app","path":"/home/u/app"}]` {
		t.Errorf("projects = %q", v)
	}
	if v, _, _ := other.Get(KeyInitLogin); v != "true" {
		t.Errorf("initLogin = %q, want true", v)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the store file, found %d entries", len(entries))
	}
}

func TestFileStoreUnreadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), StoreFileName)
	if err := os.WriteFile(path, []byte("projects: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := NewFileStore(path).Get(KeyProjects); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestMemoryStoreWrites(t *testing.T) {
	s := NewMemoryStore()
	_ = s.Set("a", "1")
	_ = s.Set("a", "2")

	if s.Writes() != 2 {
		t.Errorf("Writes() = %d, want 2", s.Writes())
	}
	if v, ok, _ := s.Get("a"); !ok || v != "2" {
		t.Errorf("Get(a) = %q, %v", v, ok)
	}
}

func TestSettingsDefaultsAndOverrides(t *testing.T) {
	t.Setenv(HomeEnv, t.TempDir())

	s, err := LoadSettings()
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Editors) != 3 || !s.Ticker.Enabled {
		t.Fatalf("unexpected defaults: %+v", s)
	}

	path, _ := GlobalSettingsFile()
	if err := os.WriteFile(path, []byte("locale: pt-BR\nticker:\n  enabled: false\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err = LoadSettings()
	if err != nil {
		t.Fatal(err)
	}
	if s.Locale != "pt-BR" {
		t.Errorf("Locale = %q, want pt-BR", s.Locale)
	}
	if s.TickerCodes() != nil {
		t.Errorf("TickerCodes() = %v, want nil when disabled", s.TickerCodes())
	}
	if len(s.Editors) != 3 {
		t.Errorf("editors not kept from defaults: %d", len(s.Editors))
	}
}

func TestDaemonInfo(t *testing.T) {
	t.Setenv(HomeEnv, t.TempDir())

	running, info, err := IsDaemonRunning()
	if err != nil || running || info != nil {
		t.Fatalf("IsDaemonRunning() = %v, %v, %v", running, info, err)
	}

	if err := SaveDaemonInfo(models.NewDaemonInfo(os.Getpid())); err != nil {
		t.Fatal(err)
	}
	running, info, err = IsDaemonRunning()
	if err != nil || !running {
		t.Fatalf("IsDaemonRunning() = %v, %v", running, err)
	}
	if info.PID != os.Getpid() {
		t.Errorf("PID = %d, want %d", info.PID, os.Getpid())
	}

	if err := RemoveDaemonInfo(); err != nil {
		t.Fatal(err)
	}
	if err := RemoveDaemonInfo(); err != nil {
		t.Errorf("second remove: %v", err)
	}
}
