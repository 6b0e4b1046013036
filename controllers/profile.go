package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
	"gorm.io/gorm"
)

type ProfileController struct {
}

func userInfo(user models.UserAccount) models.UserInfoOut {
	return models.UserInfoOut{
		Id:                user.ID,
		Name:              user.Name,
		Email:             user.Email,
		Latitude:          user.Latitude,
		Longitude:         user.Longitude,
		DailyPlansEnabled: user.DailyPlansEnabled,
		Preferences:       user.Preferences,
	}
}

func (controller *ProfileController) ProfileRoutes(g *echo.Group) {
	g.GET("/me", func(c echo.Context) error {
		user := c.Get("currentUser").(models.UserAccount)
		return c.JSON(http.StatusOK, userInfo(user))
	})

	// location drives weather lookups and the daily forecast plans
	g.PUT("/location", func(c echo.Context) error {
		user := c.Get("currentUser").(models.UserAccount)
		db := c.Get("__db").(*gorm.DB)
		var location models.LocationIn
		if err := c.Bind(&location); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		if err := c.Validate(&location); err != nil {
			return err
		}

		updates := map[string]interface{}{
			"latitude":  *location.Latitude,
			"longitude": *location.Longitude,
		}
		if location.DailyPlansEnabled != nil {
			updates["daily_plans_enabled"] = *location.DailyPlansEnabled
		}
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			return errorResponse(c, "Profile", err)
		}
		if err := db.Take(&user, user.ID).Error; err != nil {
			return errorResponse(c, "Profile", err)
		}
		return c.JSON(http.StatusOK, userInfo(user))
	})
}
