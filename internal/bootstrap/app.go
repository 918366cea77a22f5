package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/openshelf/openshelf/config"
	"github.com/openshelf/openshelf/internal/adapters/filestore"
	"github.com/openshelf/openshelf/internal/adapters/memstore"
	"github.com/openshelf/openshelf/internal/adapters/redisstore"
	"github.com/openshelf/openshelf/internal/api"
	"github.com/openshelf/openshelf/internal/guard"
	"github.com/openshelf/openshelf/internal/notify"
	"github.com/openshelf/openshelf/internal/ports"
	"github.com/openshelf/openshelf/internal/service"
	"github.com/openshelf/openshelf/internal/session"
	"github.com/openshelf/openshelf/internal/transport"
)

// AppOptions carries the pieces the front end supplies: where notifications
// surface and how navigation is realized.
type AppOptions struct {
	Config    config.AppConfig
	Logger    *slog.Logger
	Navigator ports.Navigator

	// Sinks receive user-facing notifications in addition to the log sink.
	Sinks []notify.Sink

	// Registry receives the pipeline metrics when metrics are enabled.
	// Defaults to the process-wide default registry.
	Registry prometheus.Registerer
}

// App is the fully wired application.
type App struct {
	Config   config.AppConfig
	Logger   *slog.Logger
	Bridge   *notify.Bridge
	Storage  ports.DurableStorage
	Sessions *session.Store
	Guard    *guard.Guard
	API      *api.Services
	Auth     *service.Auth

	redis *redis.Client
}

// NewApp wires every component from configuration. The session store
// rehydrates during this call, so the returned app already knows whether a
// previous sign-in survived.
func NewApp(ctx context.Context, opts AppOptions) (*App, error) {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	app := &App{Config: cfg, Logger: logger}

	sinks := append([]notify.Sink{notify.NewSlogSink(logger)}, opts.Sinks...)
	app.Bridge = notify.NewBridge(sinks...)

	storage, err := app.openStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.Storage = storage

	var metrics *transport.Metrics
	if cfg.Observability.Metrics.Enabled {
		registry := opts.Registry
		if registry == nil {
			registry = prometheus.DefaultRegisterer
		}
		metrics = transport.NewMetrics(cfg.Observability.Metrics.Namespace, registry)
	}

	client := transport.NewClient(transport.Options{
		BaseURL:    cfg.API.BaseURL,
		Timeout:    cfg.API.Timeout,
		Storage:    storage,
		StorageKey: cfg.Session.StorageKey,
		Notifier:   app.Bridge,
		Navigator:  opts.Navigator,
		LoginPath:  cfg.API.LoginPath,
		Logger:     logger,
		Metrics:    metrics,
	})
	app.API = api.New(client)

	app.Sessions = session.NewStore(ctx, session.Options{
		Storage:    storage,
		StorageKey: cfg.Session.StorageKey,
		Notifier:   app.Bridge,
		Logger:     logger,
	})

	app.Guard = guard.New(guard.Options{
		Sessions:  app.Sessions,
		Notifier:  app.Bridge,
		Logger:    logger,
		LoginPath: cfg.API.LoginPath,
		HomePath:  cfg.API.HomePath,
	})

	app.Auth = service.NewAuth(service.AuthOptions{
		Users:     app.API.Users,
		Sessions:  app.Sessions,
		Navigator: opts.Navigator,
		Notifier:  app.Bridge,
		Logger:    logger,
		HomePath:  cfg.API.HomePath,
	})

	return app, nil
}

func (a *App) openStorage(ctx context.Context, cfg config.AppConfig) (ports.DurableStorage, error) {
	switch cfg.Session.Backend {
	case config.StorageBackendFile:
		return filestore.New(cfg.Session.FilePath), nil
	case config.StorageBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.URI,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Redis.URI, err)
		}
		a.redis = client
		return redisstore.New(client), nil
	case config.StorageBackendMemory:
		return memstore.New(), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}

// Close releases backend connections.
func (a *App) Close() error {
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}
