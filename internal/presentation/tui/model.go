// Package tui provides the terminal user interface for browsing and
// managing themes.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/trendradar/internal/application/settings"
	"github.com/tesso57/trendradar/internal/application/usecase"
	"github.com/tesso57/trendradar/internal/domain/theme"
	"github.com/tesso57/trendradar/internal/infrastructure/prefstore"
	"github.com/tesso57/trendradar/internal/presentation/tui/textutil"
)

type session int

const (
	listView session = iota
	detailView
)

type refreshedMsg struct {
	notice *usecase.Notification
	err    error
}

type detailLoadedMsg struct {
	detail *theme.Detail
	err    error
}

type actionDoneMsg struct {
	info string
	err  error
}

type autoTickMsg time.Time

// Model represents the main application state.
type Model struct {
	cfg     settings.Settings
	keys    KeyMap
	themes  usecase.ThemeService
	refresh *usecase.RefreshService
	export  usecase.ExportService
	prefs   *prefstore.Store

	session session
	filter  theme.FilterKind
	stats   theme.Stats
	detail  *theme.Detail

	list     list.Model
	viewport viewport.Model
	spinner  spinner.Model

	width   int
	height  int
	loading bool
	notice  string
	errMsg  string
}

// NewModel creates the application model.
func NewModel(cfg settings.Settings, themes usecase.ThemeService, refresh *usecase.RefreshService, export usecase.ExportService, prefs *prefstore.Store) *Model {
	delegate := list.NewDefaultDelegate()
	l := list.New(nil, delegate, 0, 0)
	l.Title = "TrendRadar"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	filter := theme.FilterAll
	if prefs != nil {
		if raw, ok, _ := prefs.Get(prefstore.KeyActiveFilter); ok {
			filter = theme.FilterKind(raw)
		}
	}

	return &Model{
		cfg:      cfg,
		keys:     NewKeyMap(cfg.KeyMap),
		themes:   themes,
		refresh:  refresh,
		export:   export,
		prefs:    prefs,
		session:  listView,
		filter:   filter,
		list:     l,
		viewport: viewport.New(0, 0),
		spinner:  sp,
		loading:  true,
	}
}

// Init starts the first refresh and, when enabled, the auto-refresh loop.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.refreshCmd()}
	if m.autoRefreshEnabled() {
		cmds = append(cmds, m.autoTickCmd())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width, msg.Height-chromeLines)
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - chromeLines
	case refreshedMsg:
		m.loading = false
		m.errMsg = ""
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		}
		if msg.notice != nil {
			m.notice = msg.notice.Message()
		}
		m.reloadItems()
	case detailLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			break
		}
		m.detail = msg.detail
		m.session = detailView
		m.viewport.SetContent(renderDetail(msg.detail, m.width))
		m.viewport.GotoTop()
	case actionDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		} else {
			m.notice = msg.info
			m.errMsg = ""
		}
		m.reloadItems()
	case autoTickMsg:
		if m.autoRefreshEnabled() {
			return m, tea.Batch(m.refreshCmd(), m.autoTickCmd())
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	if m.loading {
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}
	switch m.session {
	case listView:
		m.list, cmd = m.list.Update(msg)
	case detailView:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, m.keys.Back):
		if m.session == detailView {
			m.session = listView
			m.detail = nil
			return nil, true
		}
	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		m.notice = ""
		return tea.Batch(m.spinner.Tick, m.manualRefreshCmd()), true
	case key.Matches(msg, m.keys.Filter):
		if m.session == listView {
			m.cycleFilter()
			return nil, true
		}
	case key.Matches(msg, m.keys.Open):
		if m.session == listView {
			if id, ok := m.selectedID(); ok {
				m.loading = true
				return tea.Batch(m.spinner.Tick, m.openCmd(id)), true
			}
		}
	case key.Matches(msg, m.keys.MarkRead):
		if id, ok := m.currentID(); ok {
			return m.actionCmd(id, "marked read", m.themes.MarkRead), true
		}
	case key.Matches(msg, m.keys.Archive):
		if id, ok := m.currentID(); ok {
			return m.actionCmd(id, "archived", m.themes.Archive), true
		}
	case key.Matches(msg, m.keys.Delete):
		if id, ok := m.currentID(); ok {
			return m.actionCmd(id, "deleted", m.themes.Delete), true
		}
	case key.Matches(msg, m.keys.Export):
		if id, ok := m.currentID(); ok {
			m.session = listView
			m.detail = nil
			return m.exportCmd(id), true
		}
	}
	return nil, false
}

func (m *Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		notice, err := m.refresh.Tick(context.Background())
		return refreshedMsg{notice: notice, err: err}
	}
}

// manualRefreshCmd reports the trigger outcome itself and pulls the
// list without taking part in edge-triggered notification.
func (m *Model) manualRefreshCmd() tea.Cmd {
	return func() tea.Msg {
		if err := m.refresh.TriggerNow(context.Background()); err != nil {
			return refreshedMsg{err: err}
		}
		if err := m.refresh.Pull(context.Background()); err != nil {
			return refreshedMsg{err: err}
		}
		return refreshedMsg{notice: nil}
	}
}

func (m *Model) openCmd(id string) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.themes.Detail(context.Background(), id)
		return detailLoadedMsg{detail: detail, err: err}
	}
}

func (m *Model) actionCmd(id, info string, action func(context.Context, string) error) tea.Cmd {
	if m.session == detailView {
		m.session = listView
		m.detail = nil
	}
	return func() tea.Msg {
		err := action(context.Background(), id)
		return actionDoneMsg{info: fmt.Sprintf("%s %s", id, info), err: err}
	}
}

func (m *Model) exportCmd(id string) tea.Cmd {
	return func() tea.Msg {
		path, err := m.export.Export(context.Background(), id)
		return actionDoneMsg{info: fmt.Sprintf("exported to %s", path), err: err}
	}
}

func (m *Model) autoTickCmd() tea.Cmd {
	return tea.Tick(m.cfg.RefreshInterval(), func(t time.Time) tea.Msg {
		return autoTickMsg(t)
	})
}

func (m *Model) autoRefreshEnabled() bool {
	if m.cfg.RefreshInterval() <= 0 {
		return false
	}
	if m.prefs != nil {
		return m.prefs.GetBool(prefstore.KeyAutoRefreshEnabled, m.cfg.AutoRefresh.Enabled)
	}
	return m.cfg.AutoRefresh.Enabled
}

func (m *Model) cycleFilter() {
	order := []theme.FilterKind{theme.FilterAll, theme.FilterUnread, theme.FilterRead, theme.FilterArchived}
	for i, f := range order {
		if f == m.filter {
			m.filter = order[(i+1)%len(order)]
			break
		}
	}
	if m.prefs != nil {
		_ = m.prefs.Set(prefstore.KeyActiveFilter, string(m.filter))
	}
	m.reloadItems()
}

func (m *Model) reloadItems() {
	cache := m.themes.Cache
	themes := cache.Filter(m.filter)
	items := make([]list.Item, 0, len(themes))
	now := time.Now()
	for _, t := range themes {
		items = append(items, themeItem{theme: t, fresh: cache.IsFresh(t, now)})
	}
	m.list.SetItems(items)
	m.stats = cache.Stats()
}

func (m *Model) selectedID() (string, bool) {
	item, ok := m.list.SelectedItem().(themeItem)
	if !ok {
		return "", false
	}
	return item.theme.ID, true
}

// currentID resolves the acted-on theme: the open detail wins over the
// list selection.
func (m *Model) currentID() (string, bool) {
	if m.session == detailView && m.detail != nil {
		return m.detail.ID, true
	}
	return m.selectedID()
}

type themeItem struct {
	theme theme.Theme
	fresh bool
}

func (i themeItem) Title() string {
	marker := " "
	if i.fresh {
		marker = "●"
	}
	return fmt.Sprintf("%s [%s] %s", marker, statusBadge(i.theme.Status), i.theme.Title)
}

func (i themeItem) Description() string {
	return textutil.SingleLine(fmt.Sprintf("%s · imp %.1f · %s", i.theme.Category, i.theme.Importance, i.theme.Summary))
}

func (i themeItem) FilterValue() string {
	return i.theme.Title
}

func statusBadge(s theme.Status) string {
	switch s {
	case theme.StatusRead:
		return "R"
	case theme.StatusArchived:
		return "A"
	default:
		return "N"
	}
}
