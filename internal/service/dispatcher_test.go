package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"infracore/internal/errors"
	"infracore/internal/model"
	"infracore/internal/notify"
)

// MockSettingsRepository is a mock implementation of SettingsRepository.
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*model.NotificationSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NotificationSettings), args.Error(1)
}

func (m *MockSettingsRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func (m *MockSettingsRepository) Create(ctx context.Context, settings *model.NotificationSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockMailer is a mock implementation of notify.Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(to []string, subject, htmlBody string) error {
	args := m.Called(to, subject, htmlBody)
	return args.Error(0)
}

// countingSender records every push attempt.
type countingSender struct {
	mu    sync.Mutex
	sends []string
}

func (s *countingSender) Send(ctx context.Context, sub model.PushSubscription, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sends = append(s.sends, sub.Endpoint)
	return nil
}

func (s *countingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sends)
}

func newDispatcherFixture(settings *model.NotificationSettings, subs int) (*NotificationDispatcher, *MockSettingsRepository, *MockMailer, *countingSender) {
	settingsRepo := new(MockSettingsRepository)
	if settings != nil {
		settingsRepo.On("Get", mock.Anything).Return(settings, nil)
	} else {
		settingsRepo.On("Get", mock.Anything).Return(nil, assert.AnError)
	}

	store := notify.NewMemorySubscriptionStore()
	for i := 0; i < subs; i++ {
		store.Add(model.PushSubscription{
			Endpoint: "https://push.example.com/" + string(rune('a'+i)),
			Keys:     model.SubscriptionKeys{P256dh: "p", Auth: "a"},
		})
	}

	sender := &countingSender{}
	mailer := new(MockMailer)
	dispatcher := NewNotificationDispatcher(
		settingsRepo, mailer, notify.NewBroadcaster(store, sender),
		"owner@ashainfracore.com", "quotes@ashainfracore.com",
	)
	return dispatcher, settingsRepo, mailer, sender
}

func TestNotificationDispatcher_ContactCaptured(t *testing.T) {
	msg := &model.ContactMessage{
		FirstName: "Asha", LastName: "Rao",
		Email: "asha@example.com", Branch: "BENGALURU",
	}

	t.Run("email on push off sends one email and no push", func(t *testing.T) {
		dispatcher, _, mailer, sender := newDispatcherFixture(&model.NotificationSettings{
			EmailNotifications: true, DesktopNotifications: false, GetInTouch: true, GetQuote: true,
		}, 2)
		mailer.On("Send",
			[]string{"kkshetty@ashainfracore.com", "owner@ashainfracore.com"},
			"New Contact Form Submission", mock.AnythingOfType("string"),
		).Return(nil)

		assert.NoError(t, dispatcher.ContactCaptured(context.Background(), msg))
		assert.Equal(t, 0, sender.count())
		mailer.AssertExpectations(t)
	})

	t.Run("push on email off reaches every subscriber", func(t *testing.T) {
		dispatcher, _, mailer, sender := newDispatcherFixture(&model.NotificationSettings{
			EmailNotifications: false, DesktopNotifications: true, GetInTouch: true, GetQuote: true,
		}, 3)

		assert.NoError(t, dispatcher.ContactCaptured(context.Background(), msg))
		assert.Equal(t, 3, sender.count())
		mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("event toggle off suppresses both channels", func(t *testing.T) {
		dispatcher, _, mailer, sender := newDispatcherFixture(&model.NotificationSettings{
			EmailNotifications: true, DesktopNotifications: true, GetInTouch: false, GetQuote: true,
		}, 1)

		assert.NoError(t, dispatcher.ContactCaptured(context.Background(), msg))
		assert.Equal(t, 0, sender.count())
		mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("mail failure is swallowed", func(t *testing.T) {
		dispatcher, _, mailer, _ := newDispatcherFixture(&model.NotificationSettings{
			EmailNotifications: true, GetInTouch: true,
		}, 0)
		mailer.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

		assert.NoError(t, dispatcher.ContactCaptured(context.Background(), msg))
	})

	t.Run("unreadable settings surface after capture", func(t *testing.T) {
		dispatcher, _, mailer, sender := newDispatcherFixture(nil, 1)

		err := dispatcher.ContactCaptured(context.Background(), msg)
		assert.ErrorIs(t, err, errors.ErrSettingsUnavailable)
		assert.Equal(t, 0, sender.count())
		mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestNotificationDispatcher_QuoteCaptured(t *testing.T) {
	quotation := &model.Quotation{
		ClientName: "ACME Earthmovers", Email: "buyer@acme.example",
		ProductInterest: "E35 Excavator", TotalAmount: 4200000,
	}

	t.Run("quote email goes to the quote address", func(t *testing.T) {
		dispatcher, _, mailer, sender := newDispatcherFixture(&model.NotificationSettings{
			EmailNotifications: true, DesktopNotifications: true, GetInTouch: true, GetQuote: true,
		}, 1)
		mailer.On("Send",
			[]string{"quotes@ashainfracore.com"},
			"New Get a Quote Form Submission", mock.AnythingOfType("string"),
		).Return(nil)

		assert.NoError(t, dispatcher.QuoteCaptured(context.Background(), quotation))
		assert.Equal(t, 1, sender.count())
		mailer.AssertExpectations(t)
	})

	t.Run("quote toggle off suppresses both channels", func(t *testing.T) {
		dispatcher, _, mailer, sender := newDispatcherFixture(&model.NotificationSettings{
			EmailNotifications: true, DesktopNotifications: true, GetInTouch: true, GetQuote: false,
		}, 1)

		assert.NoError(t, dispatcher.QuoteCaptured(context.Background(), quotation))
		assert.Equal(t, 0, sender.count())
		mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})
}
