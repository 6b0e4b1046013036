package controllers

import (
	"net/http"
	"os"

	"github.com/go-playground/validator"
	"github.com/hibiken/asynq"
	echojwt "github.com/labstack/echo-jwt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("category", models.ValidateCategory)
	v.RegisterValidation("pattern", models.ValidatePattern)
	v.RegisterValidation("formality", models.ValidateFormality)
	v.RegisterValidation("season", models.ValidateSeason)
	v.RegisterValidation("weather", models.ValidateWeatherTag)
	return &CustomValidator{validator: v}
}

func SetupServer(
	db *gorm.DB,
	recommendations *services.RecommendationService,
	preferences *services.PreferenceStore,
	asynqClient *asynq.Client,
) *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("__db", db)
			c.Set("__asynqclient", asynqClient)
			return next(c)
		}
	})

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/healthz", func(c echo.Context) error {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request().Context())
		}
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "unavailable"})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	stylistGroup := e.Group("/stylist", echojwt.JWT([]byte(os.Getenv("JWT_SECRET"))))
	stylistGroup.Use(UserMiddleware)

	profileController := ProfileController{}
	profileController.ProfileRoutes(stylistGroup.Group("/profile"))

	wardrobeController := WardrobeController{Wardrobe: services.NewWardrobeStore(db)}
	wardrobeController.WardrobeRoutes(stylistGroup.Group("/wardrobe"))

	outfitController := OutfitController{Recommendations: recommendations}
	outfitController.OutfitRoutes(stylistGroup)

	preferenceController := PreferenceController{Preferences: preferences}
	preferenceController.PreferenceRoutes(stylistGroup.Group("/preferences"))

	return e
}
