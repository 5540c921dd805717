package notify

import (
	"sync"

	"infracore/internal/model"
)

// SubscriptionStore holds registered push subscriptions for the life of the
// server process. Subscriptions are deduplicated on insert and lost on
// restart.
type SubscriptionStore interface {
	// Add registers a subscription, reporting whether it was new.
	Add(sub model.PushSubscription) bool
	List() []model.PushSubscription
	RemoveFailed(endpoint string)
}

// MemorySubscriptionStore is the in-process implementation of
// SubscriptionStore, guarded for concurrent request handling.
type MemorySubscriptionStore struct {
	mu   sync.Mutex
	subs []model.PushSubscription
}

var _ SubscriptionStore = (*MemorySubscriptionStore)(nil)

// NewMemorySubscriptionStore creates an empty registry.
func NewMemorySubscriptionStore() *MemorySubscriptionStore {
	return &MemorySubscriptionStore{}
}

func (s *MemorySubscriptionStore) Add(sub model.PushSubscription) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.subs {
		if existing == sub {
			return false
		}
	}
	s.subs = append(s.subs, sub)
	return true
}

// List returns a snapshot of the registered subscriptions.
func (s *MemorySubscriptionStore) List() []model.PushSubscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.PushSubscription, len(s.subs))
	copy(out, s.subs)
	return out
}

func (s *MemorySubscriptionStore) RemoveFailed(endpoint string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.subs[:0]
	for _, sub := range s.subs {
		if sub.Endpoint != endpoint {
			kept = append(kept, sub)
		}
	}
	s.subs = kept
}
