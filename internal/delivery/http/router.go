package http

import (
	"github.com/gin-gonic/gin"

	"github.com/srikanthreddy78/SkillSwapApp/internal/delivery/http/handler"
	"github.com/srikanthreddy78/SkillSwapApp/internal/delivery/http/middleware"
	"github.com/srikanthreddy78/SkillSwapApp/pkg/validator"
)

type Router struct {
	discoveryHandler  *handler.DiscoveryHandler
	profileHandler    *handler.ProfileHandler
	connectionHandler *handler.ConnectionHandler
	chatHandler       *handler.ChatHandler
	reviewHandler     *handler.ReviewHandler
	authMiddleware    *middleware.AuthMiddleware
}

func NewRouter(
	discoveryHandler *handler.DiscoveryHandler,
	profileHandler *handler.ProfileHandler,
	connectionHandler *handler.ConnectionHandler,
	chatHandler *handler.ChatHandler,
	reviewHandler *handler.ReviewHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		discoveryHandler:  discoveryHandler,
		profileHandler:    profileHandler,
		connectionHandler: connectionHandler,
		chatHandler:       chatHandler,
		reviewHandler:     reviewHandler,
		authMiddleware:    authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	validator.RegisterGinValidations()

	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Discovery
			protected.GET("/discovery", r.discoveryHandler.Browse)

			// Profile routes
			profile := protected.Group("/profile")
			{
				profile.GET("/me", r.profileHandler.GetMyProfile)
				profile.PUT("/me", r.profileHandler.UpdateMyProfile)
				profile.POST("/me/bio-suggestion", r.profileHandler.SuggestBio)
			}

			// Presence heartbeat
			protected.POST("/presence", r.profileHandler.Heartbeat)

			// User routes
			users := protected.Group("/users")
			{
				users.GET("/:user_id", r.profileHandler.GetUserProfile)
				users.GET("/:user_id/reviews", r.reviewHandler.List)
				users.POST("/:user_id/reviews", r.reviewHandler.Create)
			}

			// Connection routes
			connections := protected.Group("/connections")
			{
				connections.POST("", r.connectionHandler.Send)
				connections.GET("", r.connectionHandler.List)
				connections.POST("/:connection_id/respond", r.connectionHandler.Respond)
				connections.GET("/:connection_id/messages", r.chatHandler.List)
				connections.POST("/:connection_id/messages", r.chatHandler.Send)
			}
		}
	}

	return router
}
