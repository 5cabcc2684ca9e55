package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/vaultpass/vaultpass-engine/internal/config"
	"github.com/vaultpass/vaultpass-engine/internal/handler"
	"github.com/vaultpass/vaultpass-engine/internal/metrics"
	"github.com/vaultpass/vaultpass-engine/internal/middleware"
	"github.com/vaultpass/vaultpass-engine/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := metrics.New()
	rt, err := service.NewRuntime(cfg.Engine, nil, reg)
	if err != nil {
		slog.Error("invalid engine settings", "error", err)
		os.Exit(1)
	}

	genHandler := handler.NewGeneratorHandler(service.NewGeneratorService(rt))
	strHandler := handler.NewStrengthHandler(service.NewStrengthService(rt))
	metricsHandler := handler.NewMetricsHandler(reg)

	router := handler.NewRouter(genHandler, strHandler, metricsHandler, newLimiter(ctx, cfg))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if cfg.ConfigFile != "" {
		g.Go(func() error {
			return config.Watch(gctx, cfg.ConfigFile, func(e config.Engine) {
				if err := rt.Reload(e); err != nil {
					slog.Error("engine reload rejected", "error", err)
				}
			})
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// newLimiter shares limits through Redis when REDIS_ADDR is set and keeps
// them in memory otherwise.
func newLimiter(ctx context.Context, cfg config.Config) middleware.Limiter {
	if cfg.RedisAddr == "" {
		return middleware.NewMemoryLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable, rate limiting fails open until it recovers", "addr", cfg.RedisAddr, "error", err)
	}

	window := time.Duration(float64(cfg.RateLimitBurst) / cfg.RateLimitRPS * float64(time.Second))
	slog.Info("using redis rate limiter", "addr", cfg.RedisAddr, "limit", cfg.RateLimitBurst, "window", window)
	return middleware.NewRedisLimiter(rdb, cfg.RateLimitBurst, window)
}
