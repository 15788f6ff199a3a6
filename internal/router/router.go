package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo-contrib/echoprometheus"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"emojiexplainer/internal/auth"
	"emojiexplainer/internal/config"
	"emojiexplainer/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log zerolog.Logger,
	statusHandler *handler.StatusHandler,
	userHandler *handler.UserHandler,
	authHandler *handler.AuthHandler,
	emojiHandler *handler.EmojiHandler,
	feedbackHandler *handler.FeedbackHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("emojiexplainer"))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))

	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Status
	api.GET("/status", statusHandler.Check)

	// Auth
	api.POST("/users/login", authHandler.Login)
	api.POST("/users/refresh", authHandler.Refresh)
	api.POST("/users/logout", authHandler.Logout)

	// Users
	api.POST("/users", userHandler.CreateUser)
	api.GET("/users/:userId", userHandler.GetUserDetails)
	api.PUT("/users/:userId", userHandler.UpdateUser)
	api.DELETE("/users/:userId", userHandler.DeleteUser)

	// Emoji lookups. The three POST routes are legacy variants of the same
	// resolver and differ only in response shape.
	api.GET("/emoji/supported", emojiHandler.ListSupported)
	api.POST("/interpret", emojiHandler.Interpret)
	api.POST("/emoji-explainer", emojiHandler.FetchMeaning)
	e.POST("/emoji/explain", emojiHandler.Explain)

	// Feedback
	e.POST("/feedback", feedbackHandler.Submit)
	e.GET("/feedback", feedbackHandler.Fetch)
	e.PATCH("/feedback/:feedbackId", feedbackHandler.Update)
	e.DELETE("/feedback/:feedbackId", feedbackHandler.Delete)

	// Seed
	api.GET("/seed/emojis", seedHandler.SeedEmojis)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	secured.GET("/history", feedbackHandler.History)

	secured.GET("/me", func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		claims, ok := token.Claims.(*auth.Claims)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
		}
		return c.JSON(http.StatusOK, echo.Map{
			"user_id": claims.UserID,
			"email":   claims.Email,
			"role":    claims.Role,
		})
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
