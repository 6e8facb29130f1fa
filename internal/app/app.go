package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stpnv0/ExpoBooker/internal/broker"
	"github.com/stpnv0/ExpoBooker/internal/config"
	"github.com/stpnv0/ExpoBooker/internal/domain"
	"github.com/stpnv0/ExpoBooker/internal/handler"
	"github.com/stpnv0/ExpoBooker/internal/media"
	"github.com/stpnv0/ExpoBooker/internal/middleware"
	"github.com/stpnv0/ExpoBooker/internal/notification"
	"github.com/stpnv0/ExpoBooker/internal/repository"
	"github.com/stpnv0/ExpoBooker/internal/router"
	"github.com/stpnv0/ExpoBooker/internal/scheduler"
	"github.com/stpnv0/ExpoBooker/internal/service"
	"github.com/stpnv0/ExpoBooker/internal/service/ports"
	"github.com/stpnv0/ExpoBooker/internal/session"
	"github.com/stpnv0/ExpoBooker/internal/storage"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	store      storage.Store
	publisher  *broker.Publisher
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"ExpoBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initStorage(); err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage() error {
	switch a.cfg.Storage.Driver {
	case config.StoragePostgres:
		if err := a.runMigrations(); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		return a.initPostgres()

	case config.StorageSQLite:
		store, err := storage.OpenSQLite(a.cfg.SQLite.Path)
		if err != nil {
			return err
		}
		a.store = store
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "sqlite storage opened",
			logger.String("path", a.cfg.SQLite.Path),
		)

	default:
		a.store = storage.NewMemoryStore()
		a.log.Warn("using in-memory storage, data is lost on restart")
	}

	return nil
}

func (a *App) initPostgres() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	configurePool(db.Master, a.cfg.Postgres)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.store = storage.NewPostgresStore(db)
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

// connPool is the part of *sql.DB that dbpg.Options does not cover.
type connPool interface {
	SetConnMaxLifetime(d time.Duration)
}

func configurePool(pool connPool, cfg config.PostgresConfig) {
	pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)
}

func (a *App) initImages() (ports.ImageStore, error) {
	images := a.cfg.Images
	if !images.S3Enabled() {
		return media.NewInline(images.MaxBytes), nil
	}

	s3, err := media.NewS3(images.S3Bucket, images.S3Region, images.S3AccessKey, images.S3SecretKey, images.MaxBytes)
	if err != nil {
		return nil, fmt.Errorf("init s3: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "event images go to s3",
		logger.String("bucket", images.S3Bucket),
		logger.String("region", images.S3Region),
	)
	return s3, nil
}

func (a *App) initServices() error {
	eventRepo := repository.NewEventRepo(a.store)
	userRepo := repository.NewUserRepo(a.store)

	loc, err := a.cfg.Events.Location()
	if err != nil {
		return fmt.Errorf("load events timezone: %w", err)
	}
	grid := domain.NewBoothGrid(a.cfg.Booths.Rows, a.cfg.Booths.Columns)

	images, err := a.initImages()
	if err != nil {
		return err
	}

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	a.publisher, err = broker.NewPublisher(a.cfg.Broker.URL, a.cfg.Broker.Exchange, a.log)
	if err != nil {
		return fmt.Errorf("init broker: %w", err)
	}

	sessions := session.NewManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)

	authService := service.NewAuthService(userRepo, sessions, a.log)
	eventService := service.NewEventService(eventRepo, userRepo, images, n, a.publisher, grid, loc, a.log)
	dashboardService := service.NewDashboardService(eventRepo, userRepo)
	userService := service.NewUserService(userRepo)

	if err = authService.EnsureAdmin(
		context.Background(),
		a.cfg.Auth.AdminName,
		a.cfg.Auth.AdminEmail,
		a.cfg.Auth.AdminPassword,
	); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	a.scheduler = scheduler.New(
		sessions,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(authService, eventService, dashboardService, userService, grid)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.Authenticate(authService, a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.publisher.Close(); err != nil {
		a.log.LogAttrs(context.Background(), logger.WarnLevel, "failed to close broker",
			logger.String("error", err.Error()),
		)
	}

	if err := a.store.Close(); err != nil {
		return fmt.Errorf("close storage: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "storage closed",
		logger.String("driver", a.cfg.Storage.Driver),
	)

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
