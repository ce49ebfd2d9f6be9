package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"quotedesk/backend/internal/app/config"
	apphttp "quotedesk/backend/internal/app/http"
	"quotedesk/backend/internal/app/http/handlers"
	"quotedesk/backend/internal/app/logger"
	"quotedesk/backend/internal/domain/catalog"
	"quotedesk/backend/internal/domain/commission"
	"quotedesk/backend/internal/domain/dashboard"
	"quotedesk/backend/internal/domain/quote"
	"quotedesk/backend/internal/domain/quote/pdf/gofpdf"
	"quotedesk/backend/internal/infra/db/postgres"
	"quotedesk/backend/internal/infra/remote"
)

const shutdownTimeout = 10 * time.Second

// NewLogger builds the process logger and installs it globally.
func NewLogger(cfg config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	zap.ReplaceGlobals(log)
	return log, nil
}

func NewRemote(cfg config.Config, log *zap.Logger) (*remote.Client, error) {
	rc, err := remote.New(remote.Config{
		BaseURL: cfg.RemoteAPIURL,
		Suffix:  cfg.RemoteAPISuffix,
		APIKey:  cfg.RemoteAPIKey,
		Timeout: cfg.RemoteTimeout,
	}, log.Named("remote"))
	if err != nil {
		return nil, fmt.Errorf("remote: %w", err)
	}
	return rc, nil
}

// Run serves the API until ctx is cancelled, then drains in-flight
// requests.
func Run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	rc, err := NewRemote(cfg, log)
	if err != nil {
		return err
	}

	var (
		subLog  quote.SubmissionLog
		history handlers.SubmissionHistory
	)
	if cfg.DatabaseURL != "" {
		db, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("db: %w", err)
		}
		defer db.Close()
		if err := db.Migrate(ctx); err != nil {
			return fmt.Errorf("db migrate: %w", err)
		}
		sl := postgres.NewSubmissionLog(db)
		subLog, history = sl, sl
	} else {
		log.Info("app: DATABASE_URL not set, submission log disabled")
	}

	h := handlers.New(handlers.Deps{
		Catalog:     catalog.Default(),
		Numbers:     quote.NewNumberer(cfg.QuoteNumberMode),
		PDF:         gofpdf.New(log.Named("pdf")),
		Sender:      quote.NewSender(rc, subLog, log.Named("quote")),
		Directory:   dashboard.NewDirectory(rc, log.Named("dashboard")),
		Commission:  commission.New(rc, log.Named("commission")),
		Submissions: history,
		Logger:      log,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           apphttp.NewRouter(cfg, h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("app: listening", zap.String("addr", cfg.HTTPAddr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("app: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Migrate applies the embedded schema migrations.
func Migrate(ctx context.Context, databaseURL string) error {
	db, err := postgres.New(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer db.Close()
	return db.Migrate(ctx)
}
