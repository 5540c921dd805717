package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"infracore/internal/errors"
	"infracore/internal/model"
	"infracore/internal/notify"
)

func newNotificationFixture(settingsRepo *MockSettingsRepository) (NotificationService, *countingSender, *notify.MemorySubscriptionStore) {
	store := notify.NewMemorySubscriptionStore()
	sender := &countingSender{}
	service := NewNotificationService(settingsRepo, store, notify.NewBroadcaster(store, sender))
	return service, sender, store
}

func TestNotificationService_UpdateSettings(t *testing.T) {
	t.Run("writes toggles onto the existing row", func(t *testing.T) {
		id := uuid.New()
		settingsRepo := new(MockSettingsRepository)
		settingsRepo.On("Get", mock.Anything).Return(&model.NotificationSettings{ID: id}, nil)
		settingsRepo.On("Update", mock.Anything, id, mock.MatchedBy(func(updates map[string]interface{}) bool {
			_, hasStamp := updates["updated_at"].(time.Time)
			return updates["email_notifications"] == true &&
				updates["desktop_notifications"] == false &&
				updates["get_in_touch"] == true &&
				updates["get_quote"] == false &&
				hasStamp
		})).Return(nil)

		service, _, _ := newNotificationFixture(settingsRepo)
		err := service.UpdateSettings(context.Background(), SettingsUpdate{
			EmailNotifications: true,
			GetInTouch:         true,
		})

		assert.NoError(t, err)
		settingsRepo.AssertExpectations(t)
	})

	t.Run("missing row is a hard failure", func(t *testing.T) {
		settingsRepo := new(MockSettingsRepository)
		settingsRepo.On("Get", mock.Anything).Return(nil, assert.AnError)

		service, _, _ := newNotificationFixture(settingsRepo)
		err := service.UpdateSettings(context.Background(), SettingsUpdate{})

		assert.ErrorIs(t, err, errors.ErrSettingsUnavailable)
		settingsRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestNotificationService_GetSettings(t *testing.T) {
	settingsRepo := new(MockSettingsRepository)
	settingsRepo.On("Get", mock.Anything).Return(nil, assert.AnError)

	service, _, _ := newNotificationFixture(settingsRepo)
	settings, err := service.GetSettings(context.Background())

	assert.Nil(t, settings)
	assert.ErrorIs(t, err, errors.ErrSettingsUnavailable)
}

func TestNotificationService_TestPush(t *testing.T) {
	service, sender, store := newNotificationFixture(new(MockSettingsRepository))

	// no subscribers yet
	sent, err := service.TestPush(context.Background(), notify.PushPayload{})
	assert.NoError(t, err)
	assert.Equal(t, 0, sent)

	store.Add(model.PushSubscription{Endpoint: "https://push.example.com/a"})
	store.Add(model.PushSubscription{Endpoint: "https://push.example.com/b"})
	assert.Equal(t, 2, service.Subscribers())

	sent, err = service.TestPush(context.Background(), notify.PushPayload{})
	assert.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Equal(t, 2, sender.count())
}

func TestNotificationService_Subscribe(t *testing.T) {
	service, _, _ := newNotificationFixture(new(MockSettingsRepository))

	sub := model.PushSubscription{
		Endpoint: "https://push.example.com/a",
		Keys:     model.SubscriptionKeys{P256dh: "p", Auth: "a"},
	}
	assert.True(t, service.Subscribe(sub))
	assert.False(t, service.Subscribe(sub))
	assert.Equal(t, 1, service.Subscribers())
}
