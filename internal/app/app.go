package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/truefeedback-backend/internal/auth"
	"github.com/heartmarshall/truefeedback-backend/internal/config"
	"github.com/heartmarshall/truefeedback-backend/internal/service/account"
	"github.com/heartmarshall/truefeedback-backend/internal/service/delivery"
	"github.com/heartmarshall/truefeedback-backend/internal/service/inbox"
	"github.com/heartmarshall/truefeedback-backend/internal/service/preference"
	"github.com/heartmarshall/truefeedback-backend/internal/service/recipient"
	"github.com/heartmarshall/truefeedback-backend/internal/service/session"
	"github.com/heartmarshall/truefeedback-backend/internal/transport/middleware"
	"github.com/heartmarshall/truefeedback-backend/internal/transport/rest"
)

const rateLimitCleanupInterval = time.Minute

// Run is the application entry point. It loads configuration, opens storage,
// serves HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Driver),
	)

	store, err := OpenStorage(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	defer func() {
		logger.Info("closing storage")
		store.Close()
	}()

	handler, stop := NewHandler(cfg, logger, store, clockwork.NewRealClock())
	defer stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down gracefully")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("server stopped cleanly")
	return nil
}

// NewHandler assembles services, handlers and middleware over store. The
// returned stop func releases background workers.
func NewHandler(cfg *config.Config, logger *slog.Logger, store *Storage, clock clockwork.Clock) (http.Handler, func()) {
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL, clock)

	sessions := session.NewService(logger, store.Accounts)
	preferenceSvc := preference.NewService(logger, sessions, store.Accounts)
	recipientSvc := recipient.NewService(logger, store.Accounts, cfg.Search)
	inboxSvc := inbox.NewService(logger, sessions, store.Messages)
	deliverySvc := delivery.NewService(logger, store.Accounts, store.Messages, store.Tx, cfg.Messages, clock)
	accountSvc := account.NewService(logger, store.Accounts, jwtManager, cfg.Auth, clock)

	handlers := rest.Handlers{
		Account:    rest.NewAccountHandler(accountSvc, logger),
		Preference: rest.NewPreferenceHandler(preferenceSvc, logger),
		Inbox:      rest.NewInboxHandler(inboxSvc, logger),
		Recipient:  rest.NewRecipientHandler(recipientSvc, logger),
		Delivery:   rest.NewDeliveryHandler(deliverySvc, logger),
		Health:     rest.NewHealthHandler(store.Pinger, store.Component, BuildVersion(), clock),
	}

	limiter := middleware.NewRateLimiter(clock, rateLimitCleanupInterval)

	mux := http.NewServeMux()
	handlers.Register(mux, limiter.Limit(cfg.Messages.RateLimitPerMinute))

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
	)

	return chain(mux), limiter.Stop
}
