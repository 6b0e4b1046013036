package main

import (
	"context"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/hibiken/asynq"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/config"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/dbhelper"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/services"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/tasks"
)

func runScheduler(redis config.RedisConfig) {
	scheduler := asynq.NewScheduler(asynq.RedisClientOpt{Addr: redis.Address}, &asynq.SchedulerOpts{
		LogLevel: asynq.InfoLevel,
	})

	scheduled := []struct {
		cron string
		task *asynq.Task
		desc string
	}{
		{
			cron: redis.DailyPlanCron,
			task: tasks.NewDailyPlanTask(),
			desc: "Daily forecast plans",
		},
	}

	for _, t := range scheduled {
		entryID, err := scheduler.Register(t.cron, t.task, asynq.Queue(tasks.PlanQueue))
		if err != nil {
			log.Fatalf("Failed to register task '%s': %v", t.desc, err)
		}
		log.Printf("Registered task '%s' with ID: %s, cron: %s", t.desc, entryID, t.cron)
	}

	log.Println("Starting scheduler...")
	if err := scheduler.Run(); err != nil {
		log.Fatalf("Scheduler failed: %v", err)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := services.NewLogger(cfg.Logging.Level, cfg.Logging.Format)

	err = sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.DSN,
		Environment:      cfg.Sentry.Environment,
		Release:          cfg.Sentry.Release,
		TracesSampleRate: cfg.Sentry.SampleRate,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	defer sentry.Flush(2 * time.Second)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.Redis.Address},
		asynq.Config{Concurrency: cfg.Redis.Concurrency, Queues: map[string]int{
			tasks.PlanQueue: 7,
			"default":       3,
		}},
	)
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.Redis.Address})
	defer client.Close()

	db := dbhelper.SetupDB(cfg.Database)
	stack, err := services.NewStack(context.Background(), cfg, db, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("[Queue] failed to build services")
	}
	defer stack.Close()

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypePlanForecast, func(ctx context.Context, t *asynq.Task) error {
		return tasks.HandlePlanForecastTask(ctx, t, db, stack.Recommendations, logger)
	})
	mux.HandleFunc(tasks.TypePlanDaily, func(ctx context.Context, t *asynq.Task) error {
		return tasks.HandleDailyPlanTask(ctx, t, db, client, logger)
	})

	go runScheduler(cfg.Redis)
	if err := srv.Run(mux); err != nil {
		log.Fatal(err)
	}
}
