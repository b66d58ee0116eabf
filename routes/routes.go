package routes

import (
	"net/http"

	"meetly/handlers"
	"meetly/middleware"
	"meetly/utils"

	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute exposes the dependency health snapshot.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterMeetingRoutes registers all endpoints for the meeting scheduler.
func RegisterMeetingRoutes(r *gin.Engine, h *handlers.MeetingHandler) {
	meetings := r.Group("/api/meetings")
	meetings.Use(middleware.JWTAuthMiddleware())
	{
		meetings.GET("", h.Get)
		meetings.GET("/:id", h.GetByID)
		meetings.GET("/business/:id", h.GetByBusinessID)
		meetings.GET("/service/:id", h.GetByServiceID)
		meetings.POST("", h.Create)
		meetings.PUT("/:id", h.Update)
		meetings.DELETE("/:id", h.Delete)
	}
}

// RegisterBusinessRoutes registers the schedule-facing business endpoints.
func RegisterBusinessRoutes(r *gin.Engine, h *handlers.BusinessHandler) {
	businesses := r.Group("/api/businesses")
	businesses.Use(middleware.JWTAuthMiddleware())
	{
		businesses.GET("/:id", h.GetByID)
		businesses.PUT("/:id/opening-hours", h.SetOpeningHours)
		businesses.DELETE("/:id", h.Delete)
	}

	services := r.Group("/api/services")
	services.Use(middleware.JWTAuthMiddleware())
	{
		services.DELETE("/:id", h.DeleteService)
	}
}
