package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"infracore/internal/auth"
	"infracore/internal/config"
	"infracore/internal/handler"
)

// AdminGate rejects requests whose session cookie is absent, tampered with or
// expired. Valid tokens attach the claims to the request context.
func AdminGate(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "cookie:" + auth.CookieName,
	})
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	attachmentHandler *handler.AttachmentHandler,
	leadHandler *handler.LeadHandler,
	notificationHandler *handler.NotificationHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/verify", authHandler.Verify)

	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Get)
	api.GET("/attachments", attachmentHandler.List)
	api.GET("/attachments/:id", attachmentHandler.Get)

	api.POST("/contact/send", leadHandler.SendContact)
	api.POST("/quote/send", leadHandler.SendQuote)
	api.POST("/quotations", leadHandler.CreateQuotation)

	// Admin routes (session cookie required)
	admin := api.Group("", AdminGate(cfg.JWTSecret))

	admin.POST("/products", productHandler.Create)
	admin.PUT("/products/:id", productHandler.Update)
	admin.DELETE("/products/:id", productHandler.Delete)

	admin.POST("/attachments", attachmentHandler.Create)
	admin.PUT("/attachments/:id", attachmentHandler.Update)
	admin.DELETE("/attachments/:id", attachmentHandler.Delete)

	admin.GET("/notifications", notificationHandler.GetSettings)
	admin.POST("/notifications", notificationHandler.UpdateSettings)
	admin.POST("/notifications/subscribe", notificationHandler.Subscribe)
	admin.POST("/notifications/test", notificationHandler.TestPush)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
