package repository

import (
	"github.com/anishchandragiri369/studio-sub000/internal/domain/subscription"
	"github.com/anishchandragiri369/studio-sub000/internal/logger"
	pg "github.com/anishchandragiri369/studio-sub000/internal/postgres"
	pgRepo "github.com/anishchandragiri369/studio-sub000/internal/repository/postgres"
)

func NewSubscriptionRepository(db *pg.DB, logger *logger.Logger) subscription.Repository {
	return pgRepo.NewSubscriptionRepository(db, logger)
}
