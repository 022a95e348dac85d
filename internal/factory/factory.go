package factory

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/noirbureau/swanhunt/internal/config"
	"github.com/noirbureau/swanhunt/internal/dependencies/clock"
	"github.com/noirbureau/swanhunt/internal/narrator"
	"github.com/noirbureau/swanhunt/internal/notify"
	"github.com/noirbureau/swanhunt/internal/services/auth"
	"github.com/noirbureau/swanhunt/internal/services/gamedata"
	"github.com/noirbureau/swanhunt/internal/services/session"
	"github.com/noirbureau/swanhunt/internal/storage"
	"github.com/noirbureau/swanhunt/internal/storage/failover"
	"github.com/noirbureau/swanhunt/internal/storage/local"
	redisstorage "github.com/noirbureau/swanhunt/internal/storage/redis"
)

// App contains all wired application components. Each App owns its own
// breaker: independent Apps degrade independently.
type App struct {
	// Storage
	Store   storage.Store
	Local   *local.Storage
	Breaker *failover.Breaker

	// External dependencies
	Clock    clock.Clock
	Notifier *notify.Sink

	// Services
	GameData *gamedata.Service
	Auth     *auth.Service
	Sessions *session.Manager
	Narrator *narrator.Client
}

// New creates a new application with all dependencies wired
func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	localStore, err := local.Open(cfg.Local.Path)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}

	var remote storage.Store
	remoteConfigured := cfg.Remote.Configured()
	if remoteConfigured {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.Remote.URL
		if cfg.Remote.PoolSize > 0 {
			redisCfg.PoolSize = cfg.Remote.PoolSize
		}
		if cfg.Remote.MinIdleConns > 0 {
			redisCfg.MinIdleConns = cfg.Remote.MinIdleConns
		}

		redisStore, err := redisstorage.New(redisCfg, logger)
		if err != nil {
			// A malformed URL is a configuration error, not an outage;
			// run local-only rather than refusing to boot
			logger.Warn("remote store misconfigured, running local-only",
				slog.String("error", err.Error()))
			remoteConfigured = false
		} else {
			remote = redisStore
		}
	} else {
		logger.Info("no remote store configured, running local-only")
	}

	var narratorClient *narrator.Client
	if cfg.Narrator.APIKey != "" {
		var opts []narrator.Option
		if cfg.Narrator.BaseURL != "" {
			opts = append(opts, narrator.WithBaseURL(cfg.Narrator.BaseURL))
		}
		if cfg.Narrator.Model != "" {
			opts = append(opts, narrator.WithModel(cfg.Narrator.Model))
		}
		narratorClient, err = narrator.New(cfg.Narrator.APIKey, opts...)
		if err != nil {
			return nil, fmt.Errorf("create narrator: %w", err)
		}
	}

	authCfg := auth.DefaultConfig()
	if cfg.Admin.Email != "" {
		authCfg.AdminEmail = cfg.Admin.Email
	}
	if cfg.Admin.Password != "" {
		authCfg.AdminDefaultPassword = cfg.Admin.Password
	}

	app := newWithDependencies(remote, localStore, remoteConfigured, clock.New(), authCfg, cfg.Session.Duration, logger)
	app.Local = localStore
	app.Narrator = narratorClient
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(remote storage.Store, localStore storage.Store, remoteConfigured bool, clk clock.Clock, authCfg auth.Config, sessionDuration time.Duration, logger *slog.Logger) *App {
	breaker := failover.NewBreaker(remoteConfigured && remote != nil, logger)
	store := failover.New(remote, localStore, breaker)
	notifier := notify.New()

	gameData := gamedata.New(store, clk, notifier, logger)
	authService := auth.New(store, localStore, breaker, clk, notifier, logger, authCfg)
	sessions := session.NewManager(clk, sessionDuration)

	return &App{
		Store:    store,
		Breaker:  breaker,
		Clock:    clk,
		Notifier: notifier,
		GameData: gameData,
		Auth:     authService,
		Sessions: sessions,
	}
}

// Close releases the App's storage resources
func (a *App) Close() error {
	if a.Local != nil {
		return a.Local.Close()
	}
	return nil
}
