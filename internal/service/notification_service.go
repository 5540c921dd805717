package service

import (
	"context"
	"fmt"
	"time"

	"infracore/internal/errors"
	"infracore/internal/model"
	"infracore/internal/notify"
	"infracore/internal/repository"
)

// SettingsUpdate carries the four delivery toggles posted by the admin UI.
type SettingsUpdate struct {
	EmailNotifications   bool `json:"email_notifications"`
	DesktopNotifications bool `json:"desktop_notifications"`
	GetInTouch           bool `json:"get_in_touch"`
	GetQuote             bool `json:"get_quote"`
}

// NotificationService manages settings, push subscriptions and manual pushes.
type NotificationService interface {
	GetSettings(ctx context.Context) (*model.NotificationSettings, error)
	UpdateSettings(ctx context.Context, update SettingsUpdate) error
	// Subscribe registers a push subscription, reporting whether it was new.
	Subscribe(sub model.PushSubscription) bool
	// TestPush sends a manual push to every subscriber and returns the number
	// of deliveries attempted successfully.
	TestPush(ctx context.Context, payload notify.PushPayload) (int, error)
	Subscribers() int
}

type notificationService struct {
	settings      repository.SettingsRepository
	subscriptions notify.SubscriptionStore
	push          *notify.Broadcaster
}

// NewNotificationService creates a new notification service.
func NewNotificationService(
	settings repository.SettingsRepository,
	subscriptions notify.SubscriptionStore,
	push *notify.Broadcaster,
) NotificationService {
	return &notificationService{
		settings:      settings,
		subscriptions: subscriptions,
		push:          push,
	}
}

func (s *notificationService) GetSettings(ctx context.Context) (*model.NotificationSettings, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, errors.ErrSettingsUnavailable
	}
	return settings, nil
}

// UpdateSettings writes the toggles onto the single existing row. A missing
// row is a hard failure, not an implicit insert.
func (s *notificationService) UpdateSettings(ctx context.Context, update SettingsUpdate) error {
	existing, err := s.settings.Get(ctx)
	if err != nil {
		return errors.ErrSettingsUnavailable
	}

	updates := map[string]interface{}{
		"email_notifications":   update.EmailNotifications,
		"desktop_notifications": update.DesktopNotifications,
		"get_in_touch":          update.GetInTouch,
		"get_quote":             update.GetQuote,
		"updated_at":            time.Now(),
	}
	if err := s.settings.Update(ctx, existing.ID, updates); err != nil {
		return fmt.Errorf("update notification settings: %w", err)
	}
	return nil
}

func (s *notificationService) Subscribe(sub model.PushSubscription) bool {
	return s.subscriptions.Add(sub)
}

func (s *notificationService) TestPush(ctx context.Context, payload notify.PushPayload) (int, error) {
	if payload.Title == "" {
		payload.Title = "Test Notification"
	}
	if payload.Body == "" {
		payload.Body = "This is a test push notification!"
	}
	if payload.URL == "" {
		payload.URL = "/admin-dashboard"
	}
	return s.push.Broadcast(ctx, payload), nil
}

func (s *notificationService) Subscribers() int {
	return s.push.Subscribers()
}
