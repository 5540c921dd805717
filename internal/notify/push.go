package notify

import (
	"context"
	"encoding/json"

	webpush "github.com/SherClockHolmes/webpush-go"
	"go.uber.org/zap"

	"infracore/internal/model"
)

// PushPayload is the JSON document delivered to the service worker.
type PushPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url,omitempty"`
}

// PushSender delivers one payload to one subscription.
type PushSender interface {
	Send(ctx context.Context, sub model.PushSubscription, payload []byte) error
}

// WebPushSender sends notifications through the web-push protocol using VAPID
// keys.
type WebPushSender struct {
	options webpush.Options
}

var _ PushSender = (*WebPushSender)(nil)

// NewWebPushSender creates a sender with the given VAPID key pair.
func NewWebPushSender(subject, publicKey, privateKey string) *WebPushSender {
	return &WebPushSender{
		options: webpush.Options{
			Subscriber:      subject,
			VAPIDPublicKey:  publicKey,
			VAPIDPrivateKey: privateKey,
			TTL:             60,
		},
	}
}

func (s *WebPushSender) Send(ctx context.Context, sub model.PushSubscription, payload []byte) error {
	opts := s.options
	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.Keys.P256dh,
			Auth:   sub.Keys.Auth,
		},
	}, &opts)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// Broadcaster fans one payload out to every registered subscription. Each
// send is attempted independently; a failing subscriber never stops delivery
// to the rest, and failed subscriptions are not pruned.
type Broadcaster struct {
	store  SubscriptionStore
	sender PushSender
}

// NewBroadcaster creates a broadcaster over the given registry and sender.
func NewBroadcaster(store SubscriptionStore, sender PushSender) *Broadcaster {
	return &Broadcaster{store: store, sender: sender}
}

// Subscribers reports the number of registered subscriptions.
func (b *Broadcaster) Subscribers() int {
	return len(b.store.List())
}

// Broadcast sends the payload to every subscription and returns the number of
// successful deliveries.
func (b *Broadcaster) Broadcast(ctx context.Context, payload PushPayload) int {
	subs := b.store.List()
	if len(subs) == 0 {
		return 0
	}

	body, err := json.Marshal(payload)
	if err != nil {
		zap.S().Errorw("marshal push payload", "error", err)
		return 0
	}

	sent := 0
	for _, sub := range subs {
		if err := b.sender.Send(ctx, sub, body); err != nil {
			zap.S().Warnw("push delivery failed", "endpoint", sub.Endpoint, "error", err)
			continue
		}
		sent++
	}
	return sent
}
