package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/safeplace/safeplace-server/internal/adapters/http"
	"github.com/safeplace/safeplace-server/internal/adapters/openai"
	"github.com/safeplace/safeplace-server/internal/adapters/postgres"
	"github.com/safeplace/safeplace-server/internal/adapters/security"
	"github.com/safeplace/safeplace-server/internal/application"
)

// Runtime owns the wired server and its cleanup path.
type Runtime struct {
	cfg        Config
	logger     *slog.Logger
	httpServer *http.Server
	cleanupFn  func()
}

// NewRuntime loads config, connects the store, and wires every adapter
// into the application service. All fail-fast checks happen here so a
// misconfigured process never starts serving.
func NewRuntime(ctx context.Context, configPath string) (*Runtime, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)
	logger.Info("bootstrapping safeplace server", "http_port", cfg.HTTPPort)

	db, err := postgres.Connect(ctx, cfg.DatabaseURL, cfg.MaxDBConns)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("gorm sql db: %w", err)
	}

	if err := postgres.RunMigrations(ctx, db); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	signer, err := security.NewJWTSigner(cfg.JWTSecret)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("init jwt signer: %w", err)
	}

	if cfg.OpenAIAPIKey == "" {
		logger.Warn("openai api key is empty; completion calls will be rejected upstream")
	}
	completion, err := openai.NewClient(openai.Config{
		BaseURL: cfg.OpenAIBaseURL,
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.OpenAIModel,
		Timeout: cfg.OpenAITimeout,
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("init completion client: %w", err)
	}

	repos := postgres.NewRepositories(db)
	svc := application.NewService(application.Dependencies{
		Config: application.Config{
			TokenTTL:  cfg.TokenTTL,
			ListLimit: cfg.ListLimit,
		},
		Accounts:   repos.Accounts,
		Turns:      repos.Turns,
		Journal:    repos.Journal,
		Completion: completion,
		Hasher:     security.NewBcryptHasher(cfg.BcryptCost),
		Signer:     signer,
	})

	handler := httpadapter.NewHandler(svc, sqlDB.Ping)
	router := httpadapter.NewRouter(handler)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Runtime{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
		cleanupFn: func() {
			_ = sqlDB.Close()
		},
	}, nil
}

// Run serves HTTP until a shutdown signal or server failure, then
// drains in-flight requests for up to ten seconds.
func (r *Runtime) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("http server started", "addr", r.httpServer.Addr)
		if err := r.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		r.logger.Info("shutdown signal received")
	case err := <-errCh:
		r.logger.Error("server failure", "error", err)
		runErr = err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = r.httpServer.Shutdown(shutdownCtx)
	r.cleanupFn()

	r.logger.Info("safeplace server stopped")
	return runErr
}
