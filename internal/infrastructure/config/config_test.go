package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	store, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if store.Settings.BackendURL != "http://localhost:8765" {
		t.Errorf("Expected default backend URL, got %s", store.Settings.BackendURL)
	}
	if !store.Settings.AutoRefresh.Enabled {
		t.Error("Expected auto refresh enabled by default")
	}
	if store.Settings.AutoRefresh.IntervalMinutes != 30 {
		t.Errorf("Expected default interval 30, got %d", store.Settings.AutoRefresh.IntervalMinutes)
	}
	if store.Settings.NewThemeAgeDays != 3 {
		t.Errorf("Expected default age days 3, got %d", store.Settings.NewThemeAgeDays)
	}
	if store.Settings.KeyMap.Quit != "q" {
		t.Errorf("Expected default quit key 'q', got %q", store.Settings.KeyMap.Quit)
	}
	if store.Settings.PrefsFile == "" {
		t.Error("Expected derived prefs path, got empty")
	}
	if store.Settings.ExportDir == "" {
		t.Error("Expected derived export dir, got empty")
	}

	// Defaults are persisted on first load.
	if _, err := os.Stat(configPath); err != nil {
		t.Errorf("Expected config file to be created: %v", err)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := []byte("backend_url: http://radar.local:9000/\nauto_refresh:\n  interval_minutes: 5\n")
	if err := os.WriteFile(configPath, content, 0600); err != nil {
		t.Fatal(err)
	}

	store, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if store.Settings.BackendURL != "http://radar.local:9000" {
		t.Errorf("Expected trailing slash trimmed, got %s", store.Settings.BackendURL)
	}
	if store.Settings.AutoRefresh.IntervalMinutes != 5 {
		t.Errorf("Expected interval 5, got %d", store.Settings.AutoRefresh.IntervalMinutes)
	}
}

func TestStore_Save(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	store, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	store.Settings.ExportDir = "/exports"
	if err := store.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if reloaded.Settings.ExportDir != "/exports" {
		t.Errorf("Expected saved export dir, got %s", reloaded.Settings.ExportDir)
	}
}

func TestRefreshIntervalDisabled(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := []byte("auto_refresh:\n  interval_minutes: 0\n")
	if err := os.WriteFile(configPath, content, 0600); err != nil {
		t.Fatal(err)
	}

	store, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if store.Settings.RefreshInterval() != 0 {
		t.Errorf("Expected disabled interval, got %s", store.Settings.RefreshInterval())
	}
}
