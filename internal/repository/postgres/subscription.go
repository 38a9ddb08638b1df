package postgres

import (
	"context"
	"database/sql"

	"github.com/anishchandragiri369/studio-sub000/internal/domain/subscription"
	ierr "github.com/anishchandragiri369/studio-sub000/internal/errors"
	"github.com/anishchandragiri369/studio-sub000/internal/logger"
	"github.com/anishchandragiri369/studio-sub000/internal/postgres"
	"github.com/anishchandragiri369/studio-sub000/internal/types"
	"github.com/cockroachdb/errors"
)

type subscriptionRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewSubscriptionRepository(db *postgres.DB, logger *logger.Logger) subscription.Repository {
	return &subscriptionRepository{db: db, logger: logger}
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	query := `
		INSERT INTO subscriptions (
			id,
			user_id,
			plan_id,
			subscription_status,
			delivery_frequency,
			base_price,
			duration_units,
			start_date,
			end_date,
			next_delivery_date,
			paused_at,
			status,
			created_at,
			updated_at,
			created_by,
			updated_by
		) VALUES (
			:id,
			:user_id,
			:plan_id,
			:subscription_status,
			:delivery_frequency,
			:base_price,
			:duration_units,
			:start_date,
			:end_date,
			:next_delivery_date,
			:paused_at,
			:status,
			:created_at,
			:updated_at,
			:created_by,
			:updated_by
		)`

	if _, err := r.db.NamedExecContext(ctx, query, sub); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create subscription").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *subscriptionRepository) Get(ctx context.Context, id string) (*subscription.Subscription, error) {
	query := `
		SELECT *
		FROM subscriptions
		WHERE id = $1 AND status != $2`

	var sub subscription.Subscription
	q := r.db.GetQuerier(ctx)
	if err := q.GetContext(ctx, &sub, query, id, types.StatusDeleted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.NewError("subscription not found").
				WithHintf("Subscription %s was not found", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get subscription").
			Mark(ierr.ErrDatabase)
	}
	return &sub, nil
}

func (r *subscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	query := `
		UPDATE subscriptions SET
			subscription_status = :subscription_status,
			delivery_frequency = :delivery_frequency,
			base_price = :base_price,
			duration_units = :duration_units,
			start_date = :start_date,
			end_date = :end_date,
			next_delivery_date = :next_delivery_date,
			paused_at = :paused_at,
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, sub)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update subscription").
			Mark(ierr.ErrDatabase)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update subscription").
			Mark(ierr.ErrDatabase)
	}
	if rows == 0 {
		return ierr.NewError("subscription not found").
			WithHintf("Subscription %s was not found", sub.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *subscriptionRepository) ListByUser(ctx context.Context, userID string) ([]*subscription.Subscription, error) {
	query := `
		SELECT *
		FROM subscriptions
		WHERE user_id = $1 AND status != $2
		ORDER BY created_at DESC`

	var subs []*subscription.Subscription
	q := r.db.GetQuerier(ctx)
	if err := q.SelectContext(ctx, &subs, query, userID, types.StatusDeleted); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list subscriptions").
			Mark(ierr.ErrDatabase)
	}
	return subs, nil
}
