package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/services"
)

type WardrobeController struct {
	Wardrobe *services.WardrobeStore
}

func (controller *WardrobeController) WardrobeRoutes(g *echo.Group) {
	g.GET("", func(c echo.Context) error {
		user := currentUser(c)
		items, err := controller.Wardrobe.ListActive(c.Request().Context(), user.ID)
		if err != nil {
			return errorResponse(c, "Wardrobe", err)
		}
		return c.JSON(http.StatusOK, items)
	})

	g.POST("", func(c echo.Context) error {
		user := currentUser(c)
		var itemIn models.CreateWardrobeItemIn
		if err := c.Bind(&itemIn); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		if err := c.Validate(&itemIn); err != nil {
			return err
		}
		item := itemIn.Item(user.ID)
		if err := controller.Wardrobe.Create(c.Request().Context(), &item); err != nil {
			return errorResponse(c, "Wardrobe", err)
		}
		return c.JSON(http.StatusCreated, item)
	})

	g.POST("/worn", func(c echo.Context) error {
		user := currentUser(c)
		var wornIn models.MarkWornIn
		if err := c.Bind(&wornIn); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		if err := c.Validate(&wornIn); err != nil {
			return err
		}
		if err := controller.Wardrobe.MarkWorn(c.Request().Context(), user.ID, wornIn.ItemIDs); err != nil {
			return errorResponse(c, "Wardrobe", err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}
