package subscription

import "context"

// Repository provides access to subscription storage
type Repository interface {
	Create(ctx context.Context, subscription *Subscription) error
	Get(ctx context.Context, id string) (*Subscription, error)
	Update(ctx context.Context, subscription *Subscription) error
	ListByUser(ctx context.Context, userID string) ([]*Subscription, error)
}
