// Command trendradar is a terminal client for a TrendRadar backend. It
// mirrors server-owned themes and configuration into a local cache,
// refreshes on a timer, and exports themes to portable markdown.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/trendradar/internal/application/usecase"
	"github.com/tesso57/trendradar/internal/domain/theme"
	"github.com/tesso57/trendradar/internal/infrastructure/config"
	"github.com/tesso57/trendradar/internal/infrastructure/feedcheck"
	"github.com/tesso57/trendradar/internal/infrastructure/gateway"
	"github.com/tesso57/trendradar/internal/infrastructure/prefstore"
	"github.com/tesso57/trendradar/internal/infrastructure/scheduler"
	"github.com/tesso57/trendradar/internal/presentation/tui"
)

type cli struct {
	Config string `help:"Config file path." type:"path"`

	Tui      tuiCmd      `cmd:"" default:"1" help:"Open the interactive theme browser."`
	Fetch    fetchCmd    `cmd:"" help:"Trigger a backend fetch job now."`
	Watch    watchCmd    `cmd:"" help:"Run the auto-refresh loop headless."`
	Export   exportCmd   `cmd:"" help:"Export a theme to markdown (and delete it)."`
	Themes   themesCmd   `cmd:"" help:"List cached themes."`
	Sources  sourcesCmd  `cmd:"" help:"List configured sources."`
	Services servicesCmd `cmd:"" help:"List configured AI services."`
	Groups   groupsCmd   `cmd:"" help:"List configured source groups."`
	Check    checkCmd    `cmd:"" help:"Verify a source's endpoint is reachable."`
}

// app is the composition root handed to every command.
type app struct {
	store    *config.Store
	cache    *theme.Cache
	themes   usecase.ThemeService
	refresh  *usecase.RefreshService
	registry usecase.RegistryService
	export   usecase.ExportService
	prefs    *prefstore.Store
}

func newApp(configPath string) (*app, error) {
	store, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	client := gateway.NewClient(store.Settings.BackendURL)
	cache := theme.NewCache()
	themes := usecase.NewThemeService(client, cache)

	prefs, err := prefstore.Open(store.Settings.PrefsFile)
	if err != nil {
		return nil, err
	}

	return &app{
		store:    store,
		cache:    cache,
		themes:   themes,
		refresh:  usecase.NewRefreshService(client, themes),
		registry: usecase.NewRegistryService(client, time.Now),
		export:   usecase.NewExportService(client, cache, store.Settings.ExportDir, time.Now),
		prefs:    prefs,
	}, nil
}

func (a *app) close() {
	if a.prefs != nil {
		_ = a.prefs.Close()
	}
}

type tuiCmd struct{}

func (c *tuiCmd) Run(a *app) error {
	model := tui.NewModel(a.store.Settings, a.themes, a.refresh, a.export, a.prefs)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

type fetchCmd struct{}

func (c *fetchCmd) Run(a *app) error {
	if err := a.refresh.TriggerNow(context.Background()); err != nil {
		return err
	}
	fmt.Println("fetch job started")
	return nil
}

type watchCmd struct{}

func (c *watchCmd) Run(a *app) error {
	interval := a.store.Settings.RefreshInterval()
	if interval <= 0 || !a.store.Settings.AutoRefresh.Enabled {
		return fmt.Errorf("auto refresh is disabled; set auto_refresh in the config")
	}

	a.cache.Subscribe(func(stats theme.Stats) {
		log.Printf("[watch] %d themes cached, %d unread", stats.Total, stats.Unread)
	})

	sched := scheduler.New(func() {
		notice, err := a.refresh.Tick(context.Background())
		if err != nil {
			log.Printf("[watch] tick failed: %v", err)
		}
		if notice != nil {
			log.Printf("[watch] %s", notice.Message())
		}
		_ = a.prefs.Set(prefstore.KeyLastRefreshAt, time.Now().Format(time.RFC3339))
	})
	if err := sched.Start(interval); err != nil {
		return err
	}
	defer sched.Stop()

	log.Printf("[watch] refreshing every %s, next tick at %s", interval, sched.NextTick().Format(time.Kitchen))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	return nil
}

type exportCmd struct {
	ID string `arg:"" help:"Theme id to export."`
}

func (c *exportCmd) Run(a *app) error {
	path, err := a.export.Export(context.Background(), c.ID)
	if err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", path)
	return nil
}

type themesCmd struct {
	Filter string `help:"Filter: all, unread, read, archived." default:"all"`
}

func (c *themesCmd) Run(a *app) error {
	if err := a.themes.Refresh(context.Background()); err != nil {
		return err
	}
	for _, t := range a.cache.Filter(theme.FilterKind(c.Filter)) {
		fmt.Printf("%-24s [%s] %s\n", t.ID, t.Status, t.Title)
	}
	stats := a.cache.Stats()
	fmt.Printf("%d themes, %d unread\n", stats.Total, stats.Unread)
	return nil
}

type sourcesCmd struct{}

func (c *sourcesCmd) Run(a *app) error {
	sources, err := a.registry.ListSources(context.Background())
	if err != nil {
		return err
	}
	for _, s := range sources {
		state := "disabled"
		if s.Enabled {
			state = "enabled"
		}
		fmt.Printf("%-24s %-8s %-8s %s\n", s.ID, s.Type, state, s.Name)
	}
	return nil
}

type servicesCmd struct{}

func (c *servicesCmd) Run(a *app) error {
	services, err := a.registry.ListAIServices(context.Background())
	if err != nil {
		return err
	}
	for _, s := range services {
		fmt.Printf("%-24s %-12s %-20s temp=%.2f\n", s.ID, s.Provider, s.Model, s.Temperature)
	}
	return nil
}

type groupsCmd struct{}

func (c *groupsCmd) Run(a *app) error {
	groups, err := a.registry.ListGroups(context.Background())
	if err != nil {
		return err
	}
	for _, g := range groups {
		fmt.Printf("%-24s %-10s %d sources  %s\n", g.ID, g.AI.Mode, len(g.Sources), g.Name)
	}
	return nil
}

type checkCmd struct {
	ID      string        `arg:"" help:"Source id to check."`
	Timeout time.Duration `help:"Fetch timeout." default:"10s"`
}

func (c *checkCmd) Run(a *app) error {
	sources, err := a.registry.ListSources(context.Background())
	if err != nil {
		return err
	}
	for _, s := range sources {
		if s.ID != c.ID {
			continue
		}
		preview, err := feedcheck.CheckWithTimeout(s, c.Timeout)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %q, %d items\n", s.ID, preview.Title, preview.ItemCount)
		return nil
	}
	return fmt.Errorf("source %q not found", c.ID)
}

func main() {
	var args cli
	ctx := kong.Parse(&args,
		kong.Name("trendradar"),
		kong.Description("Terminal client for a TrendRadar backend."),
		kong.UsageOnError(),
	)

	a, err := newApp(args.Config)
	ctx.FatalIfErrorf(err)
	defer a.close()

	ctx.FatalIfErrorf(ctx.Run(a))
}
