package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/mergington/internal/app/controllers"
	"github.com/yigit/mergington/internal/app/models/dto"
	"github.com/yigit/mergington/internal/middleware"
)

// IndexPath is where the root URL redirects to
const IndexPath = "/static/index.html"

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, activityController *controllers.ActivityController) {
	router.HandleMethodNotAllowed = true
	router.NoRoute(middleware.NoRoute())
	router.NoMethod(middleware.NoMethod())

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, IndexPath)
	})

	// Activity routes
	activities := router.Group("/activities")
	{
		activities.GET("", activityController.GetAllActivities)
		activities.POST("/:activityName/signup", activityController.Signup)
		activities.DELETE("/:activityName/unregister", activityController.Unregister)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
	})
}
