package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/services"
)

type PreferenceController struct {
	Preferences *services.PreferenceStore
}

func (controller *PreferenceController) PreferenceRoutes(g *echo.Group) {
	g.GET("", func(c echo.Context) error {
		user := currentUser(c)
		prefs, err := controller.Preferences.Get(c.Request().Context(), user.ID)
		if err != nil {
			return errorResponse(c, "Preferences", err)
		}
		return c.JSON(http.StatusOK, prefs)
	})

	g.PATCH("", func(c echo.Context) error {
		user := currentUser(c)
		var patch models.PreferencesPatch
		if err := c.Bind(&patch); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		if err := c.Validate(&patch); err != nil {
			return err
		}
		if patch.Style != nil && !patch.Style.Formality.Valid() {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown style formality"})
		}
		prefs, err := controller.Preferences.Patch(c.Request().Context(), user.ID, patch)
		if err != nil {
			return errorResponse(c, "Preferences", err)
		}
		return c.JSON(http.StatusOK, prefs)
	})
}
