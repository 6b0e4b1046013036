package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/services"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/stylist"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const (
	TypePlanForecast = "plan:forecast"
	TypePlanDaily    = "plan:daily"

	PlanQueue = "plan"
)

type PlanForecastPayload struct {
	UserID uint `json:"user_id"`
}

// Enqueuer is the part of *asynq.Client the fan-out needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

func NewPlanForecastTask(userID uint) (*asynq.Task, error) {
	payload, err := json.Marshal(PlanForecastPayload{UserID: userID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePlanForecast, payload), nil
}

func NewDailyPlanTask() *asynq.Task {
	return asynq.NewTask(TypePlanDaily, []byte{})
}

// EnqueuePlanForecast schedules one forecast plan per user and day.
func EnqueuePlanForecast(ctx context.Context, client Enqueuer, userID uint, day time.Time) (*asynq.TaskInfo, error) {
	task, err := NewPlanForecastTask(userID)
	if err != nil {
		return nil, err
	}
	return client.EnqueueContext(ctx, task,
		asynq.Queue(PlanQueue),
		asynq.TaskID(fmt.Sprintf("plan:%d:%s", userID, day.Format(time.DateOnly))),
		asynq.MaxRetry(3),
	)
}

// HandlePlanForecastTask plans the forecast for one user and stores the best
// outfit of every day. Problems the user has to fix are not retried.
func HandlePlanForecastTask(ctx context.Context, t *asynq.Task, db *gorm.DB, recommendations *services.RecommendationService, logger zerolog.Logger) error {
	var payload PlanForecastPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid plan payload: %v: %w", err, asynq.SkipRetry)
	}
	logger = logger.With().Str("task", TypePlanForecast).Uint("user", payload.UserID).Logger()

	var user models.UserAccount
	res := db.WithContext(ctx).Take(&user, payload.UserID)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		logger.Warn().Msg("user vanished before planning")
		return nil
	}
	if res.Error != nil {
		sentry.CaptureException(fmt.Errorf("[Queue] failed to load user %v for planning: %w", payload.UserID, res.Error))
		return res.Error
	}
	if user.Banned {
		return nil
	}

	plan, err := recommendations.PlanWeek(ctx, &user, services.PlanOptions{Formality: planFormality(user)})
	switch {
	case errors.Is(err, services.ErrNoLocation), errors.Is(err, stylist.ErrEmptyWardrobe):
		logger.Info().Err(err).Msg("skipping plan")
		return nil
	case err != nil:
		sentry.CaptureException(fmt.Errorf("[Queue] plan for user %v failed: %w", payload.UserID, err))
		return err
	}

	saved, err := recommendations.SavePlan(ctx, plan)
	if err != nil {
		sentry.CaptureException(fmt.Errorf("[Queue] saving plan for user %v failed: %w", payload.UserID, err))
		return err
	}
	logger.Info().Str("generation", plan.GenerationID).Int("saved", len(saved)).Msg("plan stored")
	return nil
}

func planFormality(user models.UserAccount) models.Formality {
	if style := user.Preferences.Style; style != nil && style.Formality.Valid() {
		return style.Formality
	}
	return models.FormalityCasual
}

// HandleDailyPlanTask fans out one forecast plan task per opted-in user with a
// location.
func HandleDailyPlanTask(ctx context.Context, t *asynq.Task, db *gorm.DB, client Enqueuer, logger zerolog.Logger) error {
	logger = logger.With().Str("task", TypePlanDaily).Logger()
	var userIDs []uint
	res := db.WithContext(ctx).Model(&models.UserAccount{}).
		Where("daily_plans_enabled = ? AND banned = ? AND latitude IS NOT NULL AND longitude IS NOT NULL", true, false).
		Order("id").
		Pluck("id", &userIDs)
	if res.Error != nil {
		sentry.CaptureException(fmt.Errorf("[Queue] failed to list users for daily plans: %w", res.Error))
		return res.Error
	}

	today := time.Now().UTC()
	enqueued := 0
	for _, id := range userIDs {
		_, err := EnqueuePlanForecast(ctx, client, id, today)
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			continue
		}
		if err != nil {
			logger.Error().Err(err).Uint("user", id).Msg("failed to enqueue plan")
			sentry.CaptureException(err)
			continue
		}
		enqueued++
	}
	logger.Info().Int("users", len(userIDs)).Int("enqueued", enqueued).Msg("daily plans enqueued")
	return nil
}
