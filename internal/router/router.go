package router

import (
	"context"
	"net/http"
	"time"

	"fixitnow/internal/database"
	"fixitnow/internal/middleware"
	"fixitnow/internal/modules/auth"
	"fixitnow/internal/modules/catalog"
	"fixitnow/internal/modules/feedback"
	"fixitnow/internal/modules/provider"
	"fixitnow/internal/modules/rating"
	"fixitnow/internal/modules/request"
	jwtsvc "fixitnow/internal/pkg/jwt"
	"fixitnow/internal/pkg/response"
	"fixitnow/internal/pkg/validator"
	"fixitnow/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const ServiceName = "fixitnow-api"

type Options struct {
	DB          *gorm.DB
	JWT         *jwtsvc.Service
	Log         *zap.Logger
	CORSOrigins []string
}

// New wires repositories, services and handlers into a gin engine.
func New(opts Options) *gin.Engine {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	validator.Setup()

	customerRepo := repository.NewCustomerRepository(opts.DB)
	providerRepo := repository.NewProviderRepository(opts.DB)
	catalogRepo := repository.NewCatalogRepository(opts.DB)
	requestRepo := repository.NewRequestRepository(opts.DB)
	feedbackRepo := repository.NewFeedbackRepository(opts.DB)

	ratingService := rating.NewService(feedbackRepo, providerRepo)

	authHandler := auth.NewHandler(auth.NewService(customerRepo, providerRepo, opts.JWT))
	providerHandler := provider.NewHandler(provider.NewService(providerRepo, ratingService, log.Named("provider")))
	catalogHandler := catalog.NewHandler(catalog.NewService(catalogRepo, providerRepo))
	feedbackService := feedback.NewService(feedbackRepo)
	feedbackHandler := feedback.NewHandler(feedbackService)
	requestHandler := request.NewHandler(request.NewService(
		requestRepo,
		providerRepo,
		feedbackService,
		ratingService,
		log.Named("request"),
	))

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.ErrorLogger(log),
		middleware.RequestLogger(log),
		middleware.CORS(opts.CORSOrigins),
		middleware.Metrics(ServiceName),
	)

	r.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/readyz", readiness(opts.DB))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := r.Group("/")
	{
		authHandler.RegisterPublicRoutes(public)
		providerHandler.RegisterRoutes(public, nil)
		catalogHandler.RegisterRoutes(public)
	}

	protected := r.Group("/")
	protected.Use(middleware.JWTAuth(opts.JWT))
	{
		authHandler.RegisterProtectedRoutes(protected)
		providerHandler.RegisterRoutes(nil, protected)
		requestHandler.RegisterRoutes(protected)
		feedbackHandler.RegisterRoutes(protected)
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Route not found")
	})

	return r
}

func readiness(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := database.Ping(ctx, db); err != nil {
			_ = c.Error(err)
			response.Error(c, http.StatusServiceUnavailable, "NOT_READY", "Database unavailable")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ready"})
	}
}
