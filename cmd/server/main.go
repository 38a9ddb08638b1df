package main

import (
	"context"
	"net/http"
	"time"

	"github.com/anishchandragiri369/studio-sub000/internal/api"
	v1 "github.com/anishchandragiri369/studio-sub000/internal/api/v1"
	"github.com/anishchandragiri369/studio-sub000/internal/auth"
	"github.com/anishchandragiri369/studio-sub000/internal/cache"
	"github.com/anishchandragiri369/studio-sub000/internal/config"
	"github.com/anishchandragiri369/studio-sub000/internal/domain/eligibility"
	"github.com/anishchandragiri369/studio-sub000/internal/domain/pricing"
	"github.com/anishchandragiri369/studio-sub000/internal/domain/schedule"
	"github.com/anishchandragiri369/studio-sub000/internal/logger"
	"github.com/anishchandragiri369/studio-sub000/internal/postgres"
	"github.com/anishchandragiri369/studio-sub000/internal/repository"
	"github.com/anishchandragiri369/studio-sub000/internal/service"
	"go.uber.org/fx"

	"github.com/gin-gonic/gin"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Cache
			cache.NewInMemoryCache,

			// Postgres
			postgres.NewDB,
			provideTxManager,

			// Auth
			auth.NewProvider,

			// Calculators
			provideScheduleCalculator,
			providePricingCalculator,
			provideEligibilityEvaluator,

			// Repositories
			repository.NewSubscriptionRepository,

			// Services
			service.NewScheduleService,
			service.NewPricingService,
			service.NewSubscriptionService,

			// Handlers
			v1.NewHealthHandler,
			v1.NewAuthHandler,
			v1.NewScheduleHandler,
			v1.NewPricingHandler,
			v1.NewSubscriptionHandler,
			provideHandlers,

			// Router
			api.NewRouter,
		),
		fx.Invoke(startServer),
	)

	app.Run()
}

func provideScheduleCalculator(cfg *config.Configuration) (*schedule.Calculator, error) {
	policy, err := cfg.Delivery.SchedulePolicy()
	if err != nil {
		return nil, err
	}
	return schedule.NewCalculator(policy), nil
}

func providePricingCalculator(cfg *config.Configuration) *pricing.Calculator {
	return pricing.NewCalculator(cfg.Pricing.DiscountConfig())
}

func provideEligibilityEvaluator(cfg *config.Configuration) *eligibility.Evaluator {
	return eligibility.NewEvaluator(cfg.Delivery.EligibilityPolicy())
}

func provideTxManager(db *postgres.DB) service.TxManager {
	return db
}

func provideHandlers(
	health *v1.HealthHandler,
	authHandler *v1.AuthHandler,
	scheduleHandler *v1.ScheduleHandler,
	pricingHandler *v1.PricingHandler,
	subscriptionHandler *v1.SubscriptionHandler,
) api.Handlers {
	return api.Handlers{
		Health:       health,
		Auth:         authHandler,
		Schedule:     scheduleHandler,
		Pricing:      pricingHandler,
		Subscription: subscriptionHandler,
	}
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	db *postgres.DB,
	log *logger.Logger,
) {
	if cfg.Deployment.Mode == "" || cfg.Deployment.Mode == "local" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infof("starting server on %s", cfg.Server.Address)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down server")
			if err := server.Shutdown(ctx); err != nil {
				return err
			}
			db.Close()
			return nil
		},
	})
}
