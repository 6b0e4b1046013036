package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/services"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/tasks"
)

type OutfitController struct {
	Recommendations *services.RecommendationService
}

func (controller *OutfitController) OutfitRoutes(g *echo.Group) {
	g.POST("/outfits/suggest", func(c echo.Context) error {
		user := currentUser(c)
		var suggestIn models.SuggestIn
		if err := c.Bind(&suggestIn); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		if err := c.Validate(&suggestIn); err != nil {
			return err
		}
		useWeather := suggestIn.UseWeather == nil || *suggestIn.UseWeather
		suggestion, err := controller.Recommendations.Suggest(c.Request().Context(), user, services.SuggestOptions{
			Formality:  suggestIn.Formality,
			Occasions:  suggestIn.Occasions,
			Season:     suggestIn.Season,
			UseWeather: useWeather,
			Limit:      suggestIn.Limit,
		})
		if err != nil {
			return errorResponse(c, "Outfits", err)
		}
		return c.JSON(http.StatusOK, suggestion)
	})

	g.POST("/outfits/plan", func(c echo.Context) error {
		user := currentUser(c)
		var planIn models.PlanIn
		if err := c.Bind(&planIn); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		if err := c.Validate(&planIn); err != nil {
			return err
		}

		if planIn.Async {
			if !user.HasLocation() {
				return errorResponse(c, "Outfits", services.ErrNoLocation)
			}
			client, _ := c.Get("__asynqclient").(*asynq.Client)
			if client == nil {
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Planning queue is not available"})
			}
			info, err := tasks.EnqueuePlanForecast(c.Request().Context(), client, user.ID, time.Now().UTC())
			if err != nil && !errors.Is(err, asynq.ErrTaskIDConflict) {
				return errorResponse(c, "Outfits", err)
			}
			fmt.Printf("[Outfits: user %v] forecast plan queued \n", user.ID)
			out := echo.Map{"status": "queued"}
			if info != nil {
				out["task_id"] = info.ID
			}
			return c.JSON(http.StatusAccepted, out)
		}

		plan, err := controller.Recommendations.PlanWeek(c.Request().Context(), user, services.PlanOptions{
			Formality: planIn.Formality,
			Occasions: planIn.Occasions,
			PerDay:    planIn.PerDay,
		})
		if err != nil {
			return errorResponse(c, "Outfits", err)
		}
		return c.JSON(http.StatusOK, plan)
	})

	g.POST("/outfits", func(c echo.Context) error {
		user := currentUser(c)
		var outfitIn models.SaveOutfitIn
		if err := c.Bind(&outfitIn); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		if err := c.Validate(&outfitIn); err != nil {
			return err
		}
		outfit, err := controller.Recommendations.SaveOutfit(c.Request().Context(), user, services.SaveOutfitInput{
			Name:         outfitIn.Name,
			ItemIDs:      outfitIn.ItemIDs,
			OptionalIDs:  outfitIn.OptionalIDs,
			Occasions:    outfitIn.Occasions,
			Formality:    outfitIn.Formality,
			Creator:      outfitIn.Creator,
			GenerationID: outfitIn.GenerationID,
			Favorite:     outfitIn.Favorite,

			WeatherCondition: outfitIn.WeatherCondition,
		})
		if err != nil {
			return errorResponse(c, "Outfits", err)
		}
		return c.JSON(http.StatusCreated, outfit)
	})

	g.POST("/outfits/:id/rate", func(c echo.Context) error {
		user := currentUser(c)
		var outfitID uint
		if err := echo.PathParamsBinder(c).Uint("id", &outfitID).BindError(); err != nil {
			return echo.ErrBadRequest
		}
		var rateIn models.RateOutfitIn
		if err := c.Bind(&rateIn); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		if err := c.Validate(&rateIn); err != nil {
			return err
		}
		result, err := controller.Recommendations.Rate(c.Request().Context(), user, outfitID, rateIn.Feedback())
		if err != nil {
			return errorResponse(c, "Outfits", err)
		}
		return c.JSON(http.StatusOK, result)
	})

	g.GET("/insights", func(c echo.Context) error {
		user := currentUser(c)
		insights, err := controller.Recommendations.Insights(c.Request().Context(), user)
		if err != nil {
			return errorResponse(c, "Insights", err)
		}
		return c.JSON(http.StatusOK, insights)
	})

	g.POST("/colors/suggest", func(c echo.Context) error {
		var colorIn models.ColorSuggestIn
		if err := c.Bind(&colorIn); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		if err := c.Validate(&colorIn); err != nil {
			return err
		}
		colors, err := controller.Recommendations.SuggestColors(colorIn.Hex)
		if err != nil {
			return errorResponse(c, "Colors", err)
		}
		return c.JSON(http.StatusOK, echo.Map{"colors": colors})
	})
}
