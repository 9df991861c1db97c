package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"

	"github.com/cachinadev/turismo-app/internal/auth"
	"github.com/cachinadev/turismo-app/internal/config"
	"github.com/cachinadev/turismo-app/internal/domain"
	"github.com/cachinadev/turismo-app/internal/handler"
	"github.com/cachinadev/turismo-app/internal/middleware"
	"github.com/cachinadev/turismo-app/internal/notification"
	"github.com/cachinadev/turismo-app/internal/repository"
	"github.com/cachinadev/turismo-app/internal/router"
	"github.com/cachinadev/turismo-app/internal/service"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	dispatcher *notification.Dispatcher
	userRepo   *repository.UserRepository
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"turismo-api",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	if err = app.seedAdmin(context.Background()); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
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

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	packageRepo := repository.NewPackageRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	a.userRepo = repository.NewUserRepo(a.db)

	tokens := auth.NewTokenManager(
		a.cfg.Auth.JWTSecret,
		a.cfg.Auth.Issuer,
		a.cfg.Auth.Audience,
		a.cfg.Auth.AccessTTL,
		a.cfg.Auth.RefreshTTL,
	)

	mailer := notification.NewMailer(a.cfg.SMTP, a.log)
	a.dispatcher = notification.NewDispatcher(mailer, a.cfg.SMTP.QueueSize, a.log)

	catalogService := service.NewCatalogService(packageRepo, a.cfg.Business.StrictEnums)
	bookingService := service.NewBookingService(
		bookingRepo,
		packageRepo,
		a.dispatcher,
		a.cfg.Business.Location(),
		a.log,
	)
	authService := service.NewAuthService(a.userRepo, tokens, a.log)

	if err := os.MkdirAll(a.cfg.Uploads.Dir, 0o755); err != nil {
		return fmt.Errorf("create uploads dir: %w", err)
	}

	h := handler.NewHandler(
		catalogService,
		bookingService,
		authService,
		a.dispatcher,
		a.cfg.Uploads,
		a.cfg.Business.PublicBaseURL,
		a.cfg.SMTP.BrandName,
		a.cfg.Auth.RefreshTTL,
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		tokens,
		a.cfg.Uploads.Dir,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
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

// seedAdmin creates the bootstrap admin account when it is configured and
// the email is not taken yet. Existing accounts are left untouched.
func (a *App) seedAdmin(ctx context.Context) error {
	email := strings.ToLower(strings.TrimSpace(a.cfg.Auth.AdminEmail))
	if email == "" || a.cfg.Auth.AdminPassword == "" {
		a.log.Debug("admin seed skipped (not configured)")
		return nil
	}

	_, err := a.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(a.cfg.Auth.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now().UTC()
	admin := &domain.User{
		ID:           uuid.NewString(),
		Name:         a.cfg.Auth.AdminName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := a.userRepo.Create(ctx, admin); err != nil {
		return err
	}

	a.log.Info("admin account seeded", logger.String("email", email))
	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.dispatcher.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

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
