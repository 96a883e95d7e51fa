package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/handlers"
)

// RegisterRoutes mounts every handler group under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.Auth.RegisterRoutes(api)
		appHandlers.Talent.RegisterRoutes(api)
		appHandlers.Request.RegisterRoutes(api)
		appHandlers.Payment.RegisterRoutes(api)
		appHandlers.Ad.RegisterRoutes(api)
		appHandlers.Contact.RegisterRoutes(api)
		appHandlers.Admin.RegisterRoutes(api)
	}
}
