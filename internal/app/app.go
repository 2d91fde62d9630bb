package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/linkshelf/internal/config"
	"github.com/MrSnakeDoc/linkshelf/internal/content"
	"github.com/MrSnakeDoc/linkshelf/internal/httpserver"
	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkshelf/internal/index"
	"github.com/MrSnakeDoc/linkshelf/internal/logger"
	"github.com/MrSnakeDoc/linkshelf/internal/metrics"
	"github.com/MrSnakeDoc/linkshelf/internal/redis"
	"github.com/MrSnakeDoc/linkshelf/internal/render"
	"github.com/MrSnakeDoc/linkshelf/internal/scheduler"
	redisstore "github.com/MrSnakeDoc/linkshelf/internal/store/redis"
	"github.com/MrSnakeDoc/linkshelf/internal/theme"
	"github.com/MrSnakeDoc/linkshelf/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	reloader    *scheduler.ContentReloader
	auditor     *scheduler.PreferenceAuditor
}

// New wires the service from the environment configuration.
func New(cfg *config.Config, loggerClient logger.Logger) (*App, error) {
	renderer, err := render.NewRenderer()
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	memIndex := index.NewMemoryIndex()

	// Redis is optional: without it preferences live in the cookie only.
	var (
		redisClient *goredis.Client
		prefs       *redisstore.Store
		auditor     *scheduler.PreferenceAuditor
	)
	redisClient, err = redis.New(context.Background(), redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		RedisDB:        cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, loggerClient.Named("redis"))
	switch {
	case errors.Is(err, redis.ErrDisabled):
		loggerClient.Info("redis not configured, theme preferences are cookie-only")
	case err != nil:
		loggerClient.Warn("continuing without redis", logger.Error(err))
	default:
		prefs = redisstore.NewStore(redisClient)
		auditor = scheduler.NewPreferenceAuditor(prefs, m, loggerClient.Named("audit"), cfg.PreferenceAudit)
	}

	// Create manual reload trigger channel
	reloadTrigger := make(chan struct{}, 1)

	reloader := scheduler.NewContentReloader(
		content.NewLoader(cfg.ContentFile),
		memIndex,
		m,
		loggerClient.Named("reloader"),
		cfg.ReloadInterval,
		reloadTrigger,
	)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		AllowedHosts:  cfg.AllowedHosts,
		AllowedCIDRS:  cfg.AllowedCIDRS,
		TrustProxy:    cfg.TrustProxy,
		CORSOrigins:   cfg.CORSOrigins,
		MemoryIndex:   memIndex,
		Renderer:      renderer,
		Metrics:       m,
		ReloadTrigger: reloadTrigger,
		ThemeCookie: theme.CookieOptions{
			Name:   cfg.ThemeCookieName,
			MaxAge: cfg.ThemeCookieMaxAge,
			Secure: cfg.CookieSecure,
		},
		VisitorCookie:         cfg.VisitorCookieName,
		ToggleBurst:           cfg.ToggleBurst,
		ToggleRefillPerMinute: cfg.ToggleRefillPerMinute,
	}
	if prefs != nil {
		d.Preferences = prefs
	}

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      httpserver.New(cfg, loggerClient, d),
		redisClient: redisClient,
		reloader:    reloader,
		auditor:     auditor,
	}, nil
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting linkshelf %s on %s", version.Version, a.cfg.ListenAddr)
	a.logger.Info(version.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load content (fatal on failure) and start watching for reloads
	if err := a.reloader.Start(ctx); err != nil {
		return fmt.Errorf("failed to start content reloader: %w", err)
	}
	if a.cfg.ReloadInterval > 0 {
		a.logger.Info("content reloader started",
			logger.Duration("interval", a.cfg.ReloadInterval))
	} else {
		a.logger.Info("content loaded once, periodic reload disabled")
	}

	if a.auditor != nil {
		a.auditor.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		a.stopWorkers()
		return err
	}

	a.stopWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ linkshelf stopped cleanly")
	return nil
}

func (a *App) stopWorkers() {
	a.reloader.Stop()
	if a.auditor != nil {
		a.auditor.Stop()
	}
}
