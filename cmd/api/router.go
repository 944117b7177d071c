package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mailtriage-backend/internal/analysis/delivery"
)

func SetupRoutes(r *gin.Engine, analysisHandler *delivery.AnalysisHandler) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Email analysis
		api.POST("/process_email", analysisHandler.ProcessEmail)

		// Settings routes - runtime configuration of the local inference backend
		settings := api.Group("/settings")
		{
			settings.GET("/inference", GetInferenceSettings)
			settings.PUT("/inference", UpdateInferenceSettings)
			settings.POST("/inference/test", TestInferenceConnection)
		}
	}
}
