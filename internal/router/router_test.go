package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"infracore/internal/auth"
)

const testSecret = "test-secret"

func newGatedEcho() *echo.Echo {
	e := echo.New()
	e.GET("/admin", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, AdminGate(testSecret))
	return e
}

func TestAdminGate(t *testing.T) {
	jwtService := auth.NewJWTService(testSecret)
	validToken, err := jwtService.GenerateToken(uuid.New(), "admin@ashainfracore.com")
	assert.NoError(t, err)

	expiredToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{
		AdminID: uuid.New(),
		Email:   "admin@ashainfracore.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	assert.NoError(t, err)

	foreignToken, err := auth.NewJWTService("other-secret").GenerateToken(uuid.New(), "admin@ashainfracore.com")
	assert.NoError(t, err)

	tests := []struct {
		name           string
		cookie         *http.Cookie
		expectedStatus int
	}{
		{
			name:           "no cookie",
			cookie:         nil,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "valid token",
			cookie:         &http.Cookie{Name: auth.CookieName, Value: validToken},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "expired token",
			cookie:         &http.Cookie{Name: auth.CookieName, Value: expiredToken},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token signed with a different secret",
			cookie:         &http.Cookie{Name: auth.CookieName, Value: foreignToken},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "garbage token",
			cookie:         &http.Cookie{Name: auth.CookieName, Value: "not-a-jwt"},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	e := newGatedEcho()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
