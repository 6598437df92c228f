package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"talentboard/internal/api"
	"talentboard/internal/board"
	"talentboard/internal/board/boardcache"
	"talentboard/internal/config"
	"talentboard/internal/dashboard"
	apphttp "talentboard/internal/http"
	"talentboard/internal/http/handlers"
	"talentboard/internal/http/metrics"
	httpmw "talentboard/internal/http/middleware"
	"talentboard/internal/observability"
	"talentboard/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := observability.NewLogger(cfg.LogLevel)

	client := api.NewClient(cfg.UpstreamBaseURL, &http.Client{Timeout: cfg.UpstreamTimeout})
	sessions := session.NewStore()

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer redisClient.Close()
	}

	var source board.Source = board.NewAPISource(client)
	var limiter httpmw.Limiter
	if redisClient != nil {
		source = boardcache.NewRedis(redisClient, source, cfg.CandidateCacheTTL, logger)
		limiter = httpmw.NewRedisLimiter(redisClient, logger)
	} else {
		source = boardcache.NewMemory(source, cfg.CandidateCacheTTL)
		limiter = httpmw.NewRateLimiter()
	}

	boards := board.NewRegistry(client, source, logger)
	stats := dashboard.NewService(client, logger)

	collector := metrics.NewCollector()
	authMiddleware := httpmw.NewAuthMiddleware(sessions)
	authHandler := handlers.NewAuthHandler(client, sessions, boards, limiter, cfg.LoginRateLimit, cfg.LoginRateWindow)
	boardHandler := handlers.NewBoardHandler(boards)
	dashboardHandler := handlers.NewDashboardHandler(stats)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:      authHandler,
		BoardHandler:     boardHandler,
		DashboardHandler: dashboardHandler,
		MetricsHandler:   handlers.NewMetricsHandler(collector),
		AuthMiddleware:   authMiddleware,
		Metrics:          collector,
		Logger:           logger,
		RequestTimeout:   cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("gateway started")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown failed")
	}
	logger.Info().Msg("gateway stopped")
}
