// Package api implements app.Runner for the faucet HTTP server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/chainsafe/rbt-faucet/internal/metrics"
	apphttp "github.com/chainsafe/rbt-faucet/pkg/app/http"
	"github.com/chainsafe/rbt-faucet/pkg/auth"
	"github.com/chainsafe/rbt-faucet/pkg/config"
	"github.com/chainsafe/rbt-faucet/pkg/counter"
	"github.com/chainsafe/rbt-faucet/pkg/faucet/service"
	"github.com/chainsafe/rbt-faucet/pkg/faucet/store"
	"github.com/chainsafe/rbt-faucet/pkg/pgutil"
	"github.com/chainsafe/rbt-faucet/pkg/ratelimit"
	"github.com/chainsafe/rbt-faucet/pkg/rubix"
)

const readyTimeout = 2 * time.Second

// Server holds cfg to init the faucet server.
type Server struct {
	cfg *config.Config
}

type pinger interface {
	PingContext(ctx context.Context) error
}

// NewServer initializes a new faucet server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Run wires the store, side counter and ledger client into the claim service
// and serves HTTP until an OS shutdown signal is received.
func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("faucet config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting RBT faucet",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("faucet_id", cfg.Faucet.ID),
		zap.String("sender_did", cfg.Faucet.SenderDID),
	)

	db, err := pgutil.ConnectDB(ctx, &cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	faucetStore := store.NewStore(db)
	if err := faucetStore.EnsureCounters(ctx, cfg.Faucet.ID); err != nil {
		return fmt.Errorf("seed faucet counters: %w", err)
	}

	sideCounter, err := counter.Open(cfg.Faucet.CounterFile)
	if err != nil {
		return fmt.Errorf("open side counter: %w", err)
	}
	metrics.SideCounter.Set(float64(sideCounter.Value()))
	logger.Info("Side counter loaded",
		zap.String("path", cfg.Faucet.CounterFile),
		zap.Uint64("value", sideCounter.Value()),
	)

	ledger, err := rubix.NewClient(cfg.Rubix.URL,
		rubix.WithLogger(logger),
		rubix.WithTimeout(cfg.Rubix.Timeout),
		rubix.WithRetryDelay(cfg.Rubix.RetryDelay),
	)
	if err != nil {
		return fmt.Errorf("create ledger client: %w", err)
	}

	var svcOpts []service.Option
	var replenisher *service.Replenisher
	if cfg.Replenish.Enabled {
		replenisher = service.NewReplenisher(faucetStore, ledger, cfg, logger)
		svcOpts = append(svcOpts, service.WithReplenisher(replenisher))
		logger.Info("Reserve replenishment enabled",
			zap.Float64("low_water_mark", cfg.Replenish.LowWaterMark),
			zap.Int64("top_up_amount", cfg.Replenish.TopUpAmount),
		)
	}

	svc := service.NewLog(
		service.NewService(faucetStore, sideCounter, ledger, &cfg.Faucet, logger, svcOpts...),
		logger,
	)

	routeOpts, closeRoutes := s.routeOptions(ctx, logger)
	defer closeRoutes()

	router := NewRouter(cfg, svc, db, logger, routeOpts...)

	err = apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)

	// Let an in-flight top-up finish before the DB closes.
	if replenisher != nil {
		replenisher.Stop()
	}

	return err
}

// routeOptions builds the admin and throttle middlewares. The returned func
// releases their resources.
func (s *Server) routeOptions(ctx context.Context, logger *zap.Logger) ([]service.RouteOption, func()) {
	cfg := s.cfg
	var opts []service.RouteOption
	closer := func() {}

	validator := auth.NewJWTValidator(cfg.Admin.JWTSecret, cfg.Admin.Issuer)
	if validator.IsConfigured() {
		opts = append(opts, service.WithAdminMiddleware(auth.RequireAdmin(validator, logger)))
		logger.Info("Admin token check enabled", zap.String("issuer", cfg.Admin.Issuer))
	} else {
		logger.Warn("admin.jwt_secret is not set, counter overwrite endpoint is open")
	}

	if cfg.RateLimit.Enabled {
		client, err := ratelimit.NewRedisClient(ctx, &cfg.RateLimit)
		if err != nil {
			logger.Warn("Redis unavailable, per-IP throttle disabled", zap.Error(err))
			return opts, closer
		}
		limiter := ratelimit.NewRedisLimiter(client, &cfg.RateLimit)
		opts = append(opts, service.WithClaimMiddleware(
			ratelimit.Middleware(limiter, cfg.RateLimit.Requests, cfg.RateLimit.Prefix, logger),
		))
		closer = func() { _ = client.Close() }
		logger.Info("Per-IP throttle enabled",
			zap.String("addr", cfg.RateLimit.Addr),
			zap.Int("requests", cfg.RateLimit.Requests),
			zap.Duration("window", cfg.RateLimit.Window),
		)
	}

	return opts, closer
}

// NewRouter builds the HTTP handler: middleware stack, health endpoints,
// metrics, the faucet routes and the optional static front-end.
func NewRouter(
	cfg *config.Config,
	svc service.Service,
	db pinger,
	logger *zap.Logger,
	opts ...service.RouteOption,
) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	r.Use(apphttp.AccessLog(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			logger.Warn("Readiness check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("NOT_READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	})

	if cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
		logger.Info("Metrics enabled", zap.String("path", "/metrics"))
	}

	service.RegisterRoutes(r, svc, logger, opts...)

	if cfg.Server.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(cfg.Server.StaticDir)))
		logger.Info("Serving static front-end", zap.String("dir", cfg.Server.StaticDir))
	}

	return r
}
