package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"shuttletrack/internal/auth"
	"shuttletrack/internal/config"
	"shuttletrack/internal/handler"
	"shuttletrack/internal/middleware"
	"shuttletrack/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	invitationHandler *handler.InvitationHandler,
	progressHandler *handler.ProgressHandler,
	userHandler *handler.UserHandler,
	rubricHandler *handler.RubricHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.Telemetry())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":     "ok",
			"configured": cfg.ProviderConfigured(),
		})
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// OAuth popup completion lives outside /api, matching the redirect URL
	// registered with the provider.
	e.GET("/auth/callback", authHandler.Callback)

	api := e.Group("/api")

	// Auth
	api.GET("/auth/url", authHandler.AuthURL)
	api.POST("/auth/sync", authHandler.Sync)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Invitations
	api.POST("/invitations", invitationHandler.Create)
	api.GET("/invitations/:token", invitationHandler.Get)

	// Roster and rubric
	api.GET("/users", userHandler.List)
	api.PATCH("/users/:id/stage", userHandler.SetStage)
	api.GET("/stages", rubricHandler.Rubric)

	// Progress ledger
	api.GET("/progress/:userId", progressHandler.List)
	api.GET("/progress/:userId/score/:stageId", progressHandler.StageScore)
	api.POST("/progress", progressHandler.Upsert)

	// Admin routes require a locally issued JWT with the admin role.
	admin := api.Group("/admin",
		echojwt.WithConfig(echojwt.Config{
			SigningKey:  []byte(cfg.JWTSecret),
			TokenLookup: "header:" + echo.HeaderAuthorization,
			NewClaimsFunc: func(echo.Context) jwt.Claims {
				return new(auth.Claims)
			},
		}),
		middleware.RequireRole(model.RoleAdmin),
	)
	admin.PATCH("/users/:id", userHandler.AdminUpdate)
	admin.DELETE("/users/:id", userHandler.AdminDelete)
	admin.POST("/stages", rubricHandler.CreateStage)
	admin.PATCH("/stages/:id", rubricHandler.UpdateStage)
	admin.DELETE("/stages/:id", rubricHandler.DeleteStage)
	admin.POST("/skills", rubricHandler.CreateSkill)
	admin.PATCH("/skills/:id", rubricHandler.UpdateSkill)
	admin.DELETE("/skills/:id", rubricHandler.DeleteSkill)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
