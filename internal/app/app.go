package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"newtab/internal/config"
	"newtab/internal/favicon"
	"newtab/internal/httpserver"
	"newtab/internal/httpserver/deps"
	"newtab/internal/logger"
	"newtab/internal/quote"
	"newtab/internal/redis"
	"newtab/internal/sources/seed"
	"newtab/internal/storage"
	"newtab/internal/store"
	"newtab/internal/sync"
	"newtab/internal/version"
	"newtab/internal/wallpaper"
	"newtab/internal/weather"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	autoSyncer  *sync.AutoSyncer
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Persistence: redis when configured, in-memory otherwise. The
	// memory adapter loses state on restart, which is fine for dev.
	var kv storage.KV
	var redisClient *goredis.Client
	if cfg.RedisAddr != "" {
		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		redisClient = client
		kv = storage.NewRedis(client)
	} else {
		loggerClient.Warn("no redis address configured, using in-memory persistence")
		kv = storage.NewMemory()
	}

	ctx := context.Background()

	appStore := store.New(kv, loggerClient)
	fresh := appStore.Fresh(ctx)
	if err := appStore.Load(ctx); err != nil {
		loggerClient.Errorf("Failed to load state: %v", err)
		os.Exit(1)
	}

	todoStore := store.NewTodoStore(kv, loggerClient)
	if err := todoStore.Load(ctx); err != nil {
		loggerClient.Warn("failed to load todos", logger.Error(err))
	}
	notesStore := store.NewNotesStore(kv, loggerClient)
	if err := notesStore.Load(ctx); err != nil {
		loggerClient.Warn("failed to load notes", logger.Error(err))
	}

	// Seed a fresh install from the configured YAML file, if any.
	if fresh && cfg.SeedFile != "" {
		importer := seed.NewImporter(cfg.SeedFile, appStore, loggerClient)
		if err := importer.Run(ctx); err != nil {
			loggerClient.Warn("seed import failed", logger.Error(err))
		}
	}

	orch := sync.New(appStore, loggerClient)
	syncTrigger := make(chan struct{}, 1)
	autoSyncer := sync.NewAutoSyncer(orch, appStore, loggerClient, cfg.AutoSyncInterval, syncTrigger)

	d := deps.Deps{
		Logger:    loggerClient,
		StartTime: time.Now(),
		Version:   version.Version,
		Commit:    version.Commit,
		BuildDate: version.BuildDate,
		GoVersion: version.GoVersion,
		TimeNow:   time.Now,

		Store: appStore,
		Todos: todoStore,
		Notes: notesStore,
		KV:    kv,

		RedisClient: redisClient,

		Quote:     quote.New(cfg.QuoteBaseURL, kv, loggerClient),
		Weather:   weather.New(cfg.WeatherBaseURL, loggerClient),
		Wallpaper: wallpaper.New(cfg.WallpaperBaseURL, loggerClient),
		Favicon:   favicon.NewResolver(loggerClient),
		Sync:      orch,

		SyncTrigger: syncTrigger,

		AllowedOrigins: cfg.AllowedOrigins,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		autoSyncer:  autoSyncer,
	}
}

func (a *App) Run() error {
	a.logger.Infof("Starting newtab %s on %s (commit=%s, built=%s, go=%s)",
		version.Version, a.cfg.ListenPort, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.autoSyncer.Start(ctx)
	a.logger.Info("auto syncer started",
		logger.Duration("interval", a.cfg.AutoSyncInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.autoSyncer.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		}
	}

	a.logger.Info("newtab stopped cleanly")
	return nil
}
