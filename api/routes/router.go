// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"venueplan/internal/drafts"
	"venueplan/internal/layout"
	"venueplan/internal/layoutevents"
	"venueplan/internal/shared/config"
	"venueplan/internal/shared/database"
	"venueplan/internal/venues"
	"venueplan/pkg/cache"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	publisher layoutevents.Publisher
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, publisher layoutevents.Publisher) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		publisher: publisher,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API documentation
	if !r.config.IsProduction() {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupLayoutRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		// Perform health checks
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "venueplan",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "venueplan",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":        "operational",
			"api_version":   r.config.APIVersion,
			"kafka_enabled": r.config.KafkaEnabled(),
			"drafts":        r.config.Draft.Enabled,
			"timestamp":     time.Now(),
		})
	})
}

// setupLayoutRoutes configures the layout editor, templates and numbering routes
func (r *Router) setupLayoutRoutes(rg *gin.RouterGroup) {
	var cacheService cache.Service
	var draftStore venues.DraftStore
	if client := r.db.GetRedisClient(); client != nil {
		cacheService = cache.NewService(client)
		if r.config.Draft.Enabled {
			draftStore = drafts.NewStore(cacheService, r.config.Draft.TTL)
		}
	}

	layoutRepo := venues.NewRepository(r.db.GetPostgreSQL())
	layoutService := venues.NewService(layoutRepo, cacheService, draftStore, r.publisher, venues.ServiceConfig{
		Layout:         LayoutOptions(r.config.Layout),
		LayoutCacheTTL: r.config.Redis.LayoutCacheTTL,
	})
	layoutController := venues.NewController(layoutService)

	venues.SetupLayoutRoutes(rg, layoutController, r.config)
}

// LayoutOptions maps the editor configuration onto the layout engine options.
func LayoutOptions(cfg config.LayoutConfig) layout.Options {
	opts := layout.DefaultOptions()
	opts.SeatSize = cfg.SeatSize
	opts.Padding = cfg.Padding
	opts.DefaultGap = cfg.DefaultGap
	opts.ResizeStep = cfg.ResizeStep
	opts.MinZoneSize = cfg.MinZoneSize
	opts.DuplicateOffset = cfg.DuplicateOffset
	opts.BucketTolerance = cfg.BucketTolerance
	opts.GuideThreshold = cfg.GuideThreshold
	opts.DefaultRows = cfg.DefaultRows
	opts.DefaultCols = cfg.DefaultCols
	return opts
}
