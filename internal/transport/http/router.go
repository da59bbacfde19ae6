package http

import (
	"github.com/gin-gonic/gin"

	"github.com/iamasit07/connect4-engine/internal/transport/http/middleware"
)

func NewRouter(h *AnalysisHandler, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORSMiddleware(allowedOrigins))

	router.GET("/healthz", Health)

	api := router.Group("/api")
	{
		api.POST("/move", h.BestMove)
		api.POST("/evaluate", h.Evaluate)
	}

	return router
}
