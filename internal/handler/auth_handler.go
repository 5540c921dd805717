package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"infracore/internal/auth"
	errs "infracore/internal/errors"
	"infracore/internal/service"
)

// AuthHandler handles admin session endpoints. The session token travels in
// an HTTP-only, same-site-strict cookie.
type AuthHandler struct {
	authService   service.AuthService
	jwtService    *auth.JWTService
	secureCookies bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, jwtService *auth.JWTService, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		jwtService:    jwtService,
		secureCookies: secureCookies,
	}
}

// LoginRequest represents an admin login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, admin, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		httpErr := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.TokenExpiry / time.Second),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user": map[string]interface{}{
			"id":    admin.ID,
			"email": admin.Email,
		},
	})
}

// Logout handles POST /api/auth/logout. Clearing the cookie is unconditional
// and idempotent.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Logged out successfully",
	})
}

// Verify handles GET /api/auth/verify: it decodes the session cookie and
// returns the admin identity.
func (h *AuthHandler) Verify(c echo.Context) error {
	cookie, err := c.Cookie(auth.CookieName)
	if err != nil || cookie.Value == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, errs.ErrorResponse{
			Error: "no token provided",
			Code:  "NO_TOKEN",
		})
	}

	claims, err := h.jwtService.ValidateToken(cookie.Value)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, errs.ErrorResponse{
			Error: "invalid or expired token",
			Code:  "INVALID_TOKEN",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"valid": true,
		"admin": map[string]interface{}{
			"id":    claims.AdminID,
			"email": claims.Email,
		},
	})
}
