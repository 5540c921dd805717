package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	errs "infracore/internal/errors"
	"infracore/internal/model"
	"infracore/internal/notify"
	"infracore/internal/service"
)

// NotificationHandler handles settings, subscriptions and test pushes.
type NotificationHandler struct {
	notificationService service.NotificationService
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// GetSettings handles GET /api/notifications.
func (h *NotificationHandler) GetSettings(c echo.Context) error {
	settings, err := h.notificationService.GetSettings(c.Request().Context())
	if err != nil {
		httpErr := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, settings)
}

// UpdateSettings handles POST /api/notifications.
func (h *NotificationHandler) UpdateSettings(c echo.Context) error {
	var update service.SettingsUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.notificationService.UpdateSettings(c.Request().Context(), update); err != nil {
		httpErr := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Subscribe handles POST /api/notifications/subscribe. Duplicate
// subscriptions are accepted silently.
func (h *NotificationHandler) Subscribe(c echo.Context) error {
	var sub model.PushSubscription
	if err := c.Bind(&sub); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if sub.Endpoint == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrorResponse{
			Error: "subscription endpoint is required",
			Code:  "INVALID_SUBSCRIPTION",
		})
	}

	h.notificationService.Subscribe(sub)
	return c.JSON(http.StatusCreated, map[string]string{
		"message": "Subscription saved",
	})
}

// TestPush handles POST /api/notifications/test, the manual push trigger.
func (h *NotificationHandler) TestPush(c echo.Context) error {
	var payload notify.PushPayload
	// body is optional; a bind failure just means default payload
	_ = c.Bind(&payload)

	if h.notificationService.Subscribers() == 0 {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "No subscribers to send to.",
		})
	}

	sent, err := h.notificationService.TestPush(c.Request().Context(), payload)
	if err != nil {
		httpErr := errs.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if sent == 0 {
		return echo.NewHTTPError(http.StatusInternalServerError, errs.ErrorResponse{
			Error: "failed to send push notification",
			Code:  "PUSH_FAILED",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Push notification sent.",
	})
}
