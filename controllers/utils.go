package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/services"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/stylist"
)

func BoolPointer(b bool) *bool {
	return &b
}

func UIntToStr(value uint) string {
	return strconv.FormatUint(uint64(value), 10)
}

func currentUser(c echo.Context) *models.UserAccount {
	user := c.Get("currentUser").(models.UserAccount)
	return &user
}

// errorResponse maps service errors onto status codes. The remediation tells
// the client what to do next.
func errorResponse(c echo.Context, tag string, err error) error {
	user, _ := c.Get("currentUser").(models.UserAccount)
	fmt.Printf("[%v: user %v] %v \n", tag, user.ID, err)

	switch {
	case errors.Is(err, stylist.ErrNoUser):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
	case errors.Is(err, stylist.ErrEmptyWardrobe):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error":       err.Error(),
			"remediation": "Add items to your wardrobe to get outfit suggestions",
		})
	case errors.Is(err, stylist.ErrNoMatchingItems):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error":       err.Error(),
			"remediation": "Adjust the formality or occasion filters, or add matching items",
		})
	case errors.Is(err, services.ErrNoLocation):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error":       err.Error(),
			"remediation": "Set your location to plan outfits for the forecast",
		})
	case errors.Is(err, services.ErrOutfitNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, services.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, services.ErrUnknownItems), errors.Is(err, services.ErrInvalidComposition):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, stylist.ErrInvalidHex):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, services.ErrWeatherUnavailable):
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "Weather is unavailable right now, try again later"})
	}
	sentry.CaptureException(fmt.Errorf("[%v: user %v] %w", tag, user.ID, err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Something went wrong"})
}
