package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/config"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/controllers"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/dbhelper"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/services"
	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := services.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	if cfg.Auth.JWTSecret != "" {
		os.Setenv("JWT_SECRET", cfg.Auth.JWTSecret)
	}
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET environment variable is not set!")
	}

	err = sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.DSN,
		Environment:      cfg.Sentry.Environment,
		Release:          cfg.Sentry.Release,
		Debug:            false,
		TracesSampleRate: cfg.Sentry.SampleRate,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	defer sentry.Recover()
	defer sentry.Flush(2 * time.Second)

	db := dbhelper.SetupDB(cfg.Database)
	stack, err := services.NewStack(context.Background(), cfg, db, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build services")
	}
	defer stack.Close()

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.Redis.Address})
	defer asynqClient.Close()

	e := controllers.SetupServer(db, stack.Recommendations, stack.Preferences, asynqClient)
	e.Debug = cfg.Server.Debug
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.Server.RateLimit))))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	logger.Info().Str("address", cfg.Server.Address).Msg("starting api")
	e.Logger.Fatal(e.Start(cfg.Server.Address))
}
