package api

import (
	v1 "github.com/anishchandragiri369/studio-sub000/internal/api/v1"
	"github.com/anishchandragiri369/studio-sub000/internal/auth"
	"github.com/anishchandragiri369/studio-sub000/internal/config"
	"github.com/anishchandragiri369/studio-sub000/internal/logger"
	"github.com/anishchandragiri369/studio-sub000/internal/rest/middleware"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health       *v1.HealthHandler
	Auth         *v1.AuthHandler
	Schedule     *v1.ScheduleHandler
	Pricing      *v1.PricingHandler
	Subscription *v1.SubscriptionHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, provider auth.Provider, log *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.CORSMiddleware)
	router.Use(middleware.ErrorHandler())

	router.GET("/health", handlers.Health.Health)

	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers, cfg, provider, log)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers, cfg *config.Configuration, provider auth.Provider, log *logger.Logger) {
	// Auth routes
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", handlers.Auth.SignUp)
		authGroup.POST("/login", handlers.Auth.Login)
	}

	// Schedule routes, consumed by the storefront before checkout so
	// they stay public
	schedules := router.Group("/schedules")
	{
		schedules.POST("/next", handlers.Schedule.NextDelivery)
		schedules.POST("/preview", handlers.Schedule.Preview)
	}

	// Pricing routes
	pricing := router.Group("/pricing")
	{
		pricing.POST("/calculate", handlers.Pricing.Calculate)
		pricing.GET("/options", handlers.Pricing.ListOptions)
	}

	// Subscription routes
	subscriptions := router.Group("/subscriptions")
	if cfg.Auth.Enabled {
		subscriptions.Use(middleware.AuthMiddleware(provider, log))
	}
	{
		subscriptions.POST("", handlers.Subscription.Create)
		subscriptions.GET("", handlers.Subscription.List)
		subscriptions.GET("/:id", handlers.Subscription.Get)
		subscriptions.POST("/:id/pause", handlers.Subscription.Pause)
		subscriptions.POST("/:id/reactivate", handlers.Subscription.Reactivate)
		subscriptions.GET("/:id/deliveries", handlers.Subscription.UpcomingDeliveries)
		subscriptions.GET("/:id/renewal", handlers.Subscription.RenewalStatus)
	}
}
