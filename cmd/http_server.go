package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sevginserbest/portal/internal"
	"github.com/sevginserbest/portal/internal/app"
	appPostgres "github.com/sevginserbest/portal/internal/app/postgres"
	"github.com/sevginserbest/portal/internal/auth"
	authPostgres "github.com/sevginserbest/portal/internal/auth/postgres"
	"github.com/sevginserbest/portal/internal/content"
	contentPostgres "github.com/sevginserbest/portal/internal/content/postgres"
	"github.com/sevginserbest/portal/internal/email"
	"github.com/sevginserbest/portal/internal/invitation"
	invitationPostgres "github.com/sevginserbest/portal/internal/invitation/postgres"
	"github.com/sevginserbest/portal/internal/settings"
	settingsPostgres "github.com/sevginserbest/portal/internal/settings/postgres"
	"github.com/sevginserbest/portal/internal/transport"
	"github.com/sevginserbest/portal/internal/transport/rest"
	"github.com/sevginserbest/portal/internal/user"
	userPostgres "github.com/sevginserbest/portal/internal/user/postgres"
	"github.com/sevginserbest/portal/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func setupRoutes(deps *Dependencies) {
	cfg := deps.Config
	lg := deps.Logger
	base := transport.NewBaseHandler(lg)

	tokenGen := auth.NewJWTTokenGenerator(
		cfg.Security.AccessTokenSecret,
		cfg.Security.RefreshTokenSecret,
		cfg.Security.AccessTokenDuration,
		cfg.Security.RefreshTokenDuration,
	)
	authService := auth.NewService(authPostgres.NewRepository(deps.GormDB), tokenGen, cfg.Security.BCryptCost)
	authHandler := auth.NewHandler(authService)
	guard := auth.NewGuard(lg)

	var sender email.Sender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewClient(email.Config{
			APIKey: cfg.Email.ResendAPIKey,
			From:   cfg.Email.From,
		}, lg)
	} else {
		sender = email.NewNoopSender(lg)
	}

	invitationService := invitation.NewService(
		invitationPostgres.NewInvitationRepository(deps.GormDB),
		sender,
		lg,
		cfg.Server.BaseURL,
		cfg.Security.InvitationTTL,
		cfg.Security.BCryptCost,
	)

	userService := user.NewService(userPostgres.NewUserRepository(deps.GormDB), cfg.Security.BCryptCost, lg)
	appService := app.NewService(appPostgres.NewAppRepository(deps.GormDB), lg)
	settingsService := settings.NewService(settingsPostgres.NewSettingsRepository(deps.GormDB), lg)
	contentService := content.NewService(
		contentPostgres.NewPortfolioRepository(deps.GormDB),
		contentPostgres.NewSkillRepository(deps.GormDB),
		contentPostgres.NewExperienceRepository(deps.GormDB),
		contentPostgres.NewPageRepository(deps.GormDB),
		lg,
	)

	handlers := rest.Handlers{
		Auth:       authHandler,
		Guard:      guard,
		User:       user.NewHandler(base, userService),
		Invitation: invitation.NewHandler(base, invitationService),
		App:        app.NewHandler(base, appService),
		Settings:   settings.NewHandler(base, settingsService),
		Content:    content.NewHandler(base, contentService),
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, handlers, cfg.Server.AllowedOrigins, lg)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)
	lg := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: lg,
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
	}, nil
}

// initDB opens the shared connection pool through the pgx stdlib driver.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm layers the ORM over the existing pool. TranslateError turns
// driver unique-violation errors into gorm.ErrDuplicatedKey, which the
// repositories map onto domain conflicts.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{
		TranslateError: true,
	})
}
