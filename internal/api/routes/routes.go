package routes

import (
	"org-directory/internal/api/handlers"
	"org-directory/internal/api/middleware"
	"org-directory/internal/auth"
	"org-directory/internal/cache"
	"org-directory/internal/config"
	"org-directory/internal/metrics"
	"org-directory/internal/repository"
	"org-directory/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. rdb may be nil, in which
// case activity subtrees are resolved from the database on every request.
func SetupRoutes(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	buildingRepo := repository.NewBuildingRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	organizationRepo := repository.NewOrganizationRepository(db)

	// Descendant cache is optional
	var descendants cache.DescendantCacheInterface
	checks := []handlers.HealthCheck{handlers.DatabaseCheck(db)}
	if rdb != nil {
		descendants = cache.NewRedisDescendantCache(rdb, cfg.CacheTTL())
		checks = append(checks, handlers.RedisCheck(rdb))
	}

	// Initialize services
	tree := service.NewActivityTreeResolver(activityRepo, descendants)
	buildingService := service.NewBuildingService(buildingRepo, validator)
	activityService := service.NewActivityService(activityRepo, tree, validator)
	organizationService := service.NewOrganizationService(organizationRepo, buildingRepo, activityRepo, tree, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(checks...)
	buildingHandler := handlers.NewBuildingHandler(buildingService)
	activityHandler := handlers.NewActivityHandler(activityService)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require the API key
	v1 := router.Group("/api/v1")
	v1.Use(auth.NewAPIKeyMiddleware(cfg.APIKey).RequireAPIKey())
	v1.Use(middleware.Timeout(cfg.RequestTimeout()))
	{
		// Organization routes
		organizations := v1.Group("/organizations")
		{
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.GET("/by-building/:building_id", organizationHandler.GetByBuilding)
			organizations.GET("/by-activity/:activity_id", organizationHandler.GetByActivity)
			organizations.GET("/in-radius", organizationHandler.GetInRadius)
			organizations.GET("/in-rectangle", organizationHandler.GetInRectangle)
			organizations.GET("/search/by-name", organizationHandler.SearchByName)
			organizations.GET("/:id", organizationHandler.GetOrganization)
		}

		// Building routes
		buildings := v1.Group("/buildings")
		{
			buildings.GET("", buildingHandler.ListBuildings)
			buildings.POST("", buildingHandler.CreateBuilding)
			buildings.GET("/:id", buildingHandler.GetBuilding)
		}

		// Activity routes
		activities := v1.Group("/activities")
		{
			activities.POST("", activityHandler.CreateActivity)
			activities.GET("/:id", activityHandler.GetActivity)
		}
	}

	return router
}
