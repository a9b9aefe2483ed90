// Package settings defines application-level configuration data.
package settings

import "time"

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up       string `yaml:"up" kong:"help='Up key',default='k'"`
	Down     string `yaml:"down" kong:"help='Down key',default='j'"`
	Open     string `yaml:"open" kong:"help='Open detail key',default='enter'"`
	Back     string `yaml:"back" kong:"help='Back key',default='esc'"`
	Quit     string `yaml:"quit" kong:"help='Quit key',default='q'"`
	Refresh  string `yaml:"refresh" kong:"help='Fetch now key',default='r'"`
	MarkRead string `yaml:"mark_read" kong:"help='Mark read key',default='m'"`
	Archive  string `yaml:"archive" kong:"help='Archive key',default='a'"`
	Delete   string `yaml:"delete" kong:"help='Delete key',default='x'"`
	Export   string `yaml:"export" kong:"help='Export key',default='e'"`
	Filter   string `yaml:"filter" kong:"help='Cycle filter key',default='f'"`
}

// AutoRefreshConfig controls the background fetch loop.
type AutoRefreshConfig struct {
	Enabled         bool `yaml:"enabled" kong:"help='Enable auto refresh',default='true'"`
	IntervalMinutes int  `yaml:"interval_minutes" kong:"help='Refresh interval in minutes',default='30'"`
}

// Settings represents the application configuration.
type Settings struct {
	BackendURL      string            `yaml:"backend_url" kong:"help='TrendRadar backend base URL',default='http://localhost:8765'"`
	ExportDir       string            `yaml:"export_dir" kong:"help='Directory for exported markdown'"`
	NewThemeAgeDays int               `yaml:"new_theme_age_days" kong:"help='Fallback freshness window in days',default='3'"`
	AutoRefresh     AutoRefreshConfig `yaml:"auto_refresh" kong:"embed,prefix='auto-refresh.'"`
	KeyMap          KeyMapConfig      `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	PrefsFile       string            `yaml:"prefs_file" kong:"help='Preference database path'"`
}

// RefreshInterval converts the configured minutes to a duration.
// A non-positive interval disables auto refresh.
func (s Settings) RefreshInterval() time.Duration {
	if s.AutoRefresh.IntervalMinutes <= 0 {
		return 0
	}
	return time.Duration(s.AutoRefresh.IntervalMinutes) * time.Minute
}
