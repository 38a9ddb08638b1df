package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/anishchandragiri369/studio-sub000/internal/domain/subscription"
	ierr "github.com/anishchandragiri369/studio-sub000/internal/errors"
)

// InMemorySubscriptionStore implements subscription.Repository for tests
type InMemorySubscriptionStore struct {
	mu            sync.RWMutex
	subscriptions map[string]*subscription.Subscription
}

func NewInMemorySubscriptionStore() *InMemorySubscriptionStore {
	return &InMemorySubscriptionStore{
		subscriptions: make(map[string]*subscription.Subscription),
	}
}

func (s *InMemorySubscriptionStore) Create(_ context.Context, sub *subscription.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.subscriptions[sub.ID]; exists {
		return ierr.NewError("subscription already exists").
			WithHintf("Subscription %s already exists", sub.ID).
			Mark(ierr.ErrAlreadyExists)
	}

	copied := *sub
	s.subscriptions[sub.ID] = &copied
	return nil
}

func (s *InMemorySubscriptionStore) Get(_ context.Context, id string) (*subscription.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.subscriptions[id]
	if !ok {
		return nil, ierr.NewError("subscription not found").
			WithHintf("Subscription %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	copied := *sub
	return &copied, nil
}

func (s *InMemorySubscriptionStore) Update(_ context.Context, sub *subscription.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subscriptions[sub.ID]; !ok {
		return ierr.NewError("subscription not found").
			WithHintf("Subscription %s was not found", sub.ID).
			Mark(ierr.ErrNotFound)
	}

	copied := *sub
	s.subscriptions[sub.ID] = &copied
	return nil
}

func (s *InMemorySubscriptionStore) ListByUser(_ context.Context, userID string) ([]*subscription.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var subs []*subscription.Subscription
	for _, sub := range s.subscriptions {
		if sub.UserID == userID {
			copied := *sub
			subs = append(subs, &copied)
		}
	}

	sort.Slice(subs, func(i, j int) bool {
		return subs[i].CreatedAt.After(subs[j].CreatedAt)
	})
	return subs, nil
}
