package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/trendradar/internal/application/settings"
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Back     key.Binding
	Quit     key.Binding
	Refresh  key.Binding
	MarkRead key.Binding
	Archive  key.Binding
	Delete   key.Binding
	Export   key.Binding
	Filter   key.Binding
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys(cfg.Up, "up"), key.WithHelp(cfg.Up, "up")),
		Down:     key.NewBinding(key.WithKeys(cfg.Down, "down"), key.WithHelp(cfg.Down, "down")),
		Open:     key.NewBinding(key.WithKeys(cfg.Open), key.WithHelp(cfg.Open, "open")),
		Back:     key.NewBinding(key.WithKeys(cfg.Back), key.WithHelp(cfg.Back, "back")),
		Quit:     key.NewBinding(key.WithKeys(cfg.Quit, "ctrl+c"), key.WithHelp(cfg.Quit, "quit")),
		Refresh:  key.NewBinding(key.WithKeys(cfg.Refresh), key.WithHelp(cfg.Refresh, "fetch now")),
		MarkRead: key.NewBinding(key.WithKeys(cfg.MarkRead), key.WithHelp(cfg.MarkRead, "mark read")),
		Archive:  key.NewBinding(key.WithKeys(cfg.Archive), key.WithHelp(cfg.Archive, "archive")),
		Delete:   key.NewBinding(key.WithKeys(cfg.Delete), key.WithHelp(cfg.Delete, "delete")),
		Export:   key.NewBinding(key.WithKeys(cfg.Export), key.WithHelp(cfg.Export, "export")),
		Filter:   key.NewBinding(key.WithKeys(cfg.Filter), key.WithHelp(cfg.Filter, "filter")),
	}
}
