package transport

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ironsheep/thumbor-tools-mcp/internal/transport/middleware"
	"github.com/rs/zerolog"
)

// InitRoutes builds the HTTP API around h.
func InitRoutes(h *ImageHandler, logger zerolog.Logger, requestTimeout time.Duration) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Timeout(requestTimeout))

	api := router.Group("/api/v1")
	{
		api.POST("/url", h.URL)
		api.POST("/srcset", h.Srcset)
		api.POST("/img", h.Img)
		api.GET("/breakpoints", h.Breakpoints)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
