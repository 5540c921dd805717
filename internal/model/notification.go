package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationSettings is a single-row table of delivery toggles. The first
// row is authoritative; its absence is a hard failure for settings-dependent
// operations.
type NotificationSettings struct {
	ID                   uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	EmailNotifications   bool      `json:"email_notifications"`
	DesktopNotifications bool      `json:"desktop_notifications"`
	GetInTouch           bool      `json:"get_in_touch"`
	GetQuote             bool      `json:"get_quote"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// SubscriptionKeys are the encryption keys issued by the push service.
type SubscriptionKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// PushSubscription is a browser push delivery descriptor as posted by the
// client. Held in process memory only; never persisted.
type PushSubscription struct {
	Endpoint string           `json:"endpoint"`
	Keys     SubscriptionKeys `json:"keys"`
}
