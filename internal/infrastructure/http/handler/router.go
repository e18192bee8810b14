package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hbnb-api/internal/infrastructure/http/middleware"
	"hbnb-api/pkg/logger"
)

// Handlers bundles every resource handler the router mounts
type Handlers struct {
	Users     *UserHandler
	Places    *PlaceHandler
	Reviews   *ReviewHandler
	Amenities *AmenityHandler
}

// NewRouter wires middleware, health, metrics and the /api/v1 routes
func NewRouter(h Handlers, log logger.Logger, metrics *middleware.Metrics) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(log))
	if metrics != nil {
		router.Use(metrics.Middleware())
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	// Health check
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		users := api.Group("/users")
		{
			users.POST("", h.Users.CreateUser)
			users.GET("", h.Users.GetUsers)
			users.GET("/:id", h.Users.GetUser)
			users.PUT("/:id", h.Users.UpdateUser)
		}

		places := api.Group("/places")
		{
			places.POST("", h.Places.CreatePlace)
			places.GET("", h.Places.GetPlaces)
			places.GET("/:id", h.Places.GetPlace)
			places.PUT("/:id", h.Places.UpdatePlace)
			places.GET("/:id/reviews", h.Places.GetPlaceReviews)
			places.POST("/:id/amenities/:amenity_id", h.Places.AddAmenity)
		}

		reviews := api.Group("/reviews")
		{
			reviews.POST("", h.Reviews.CreateReview)
			reviews.GET("", h.Reviews.GetReviews)
			reviews.GET("/:id", h.Reviews.GetReview)
			reviews.PUT("/:id", h.Reviews.UpdateReview)
			reviews.DELETE("/:id", h.Reviews.DeleteReview)
		}

		amenities := api.Group("/amenities")
		{
			amenities.POST("", h.Amenities.CreateAmenity)
			amenities.GET("", h.Amenities.GetAmenities)
			amenities.GET("/:id", h.Amenities.GetAmenity)
			amenities.PUT("/:id", h.Amenities.UpdateAmenity)
		}
	}

	return router
}
