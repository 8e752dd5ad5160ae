package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) setupRoutes() {
	// Unauthenticated surface: service identity, liveness, metrics scrape.
	s.router.GET("/", s.handleIndex)
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/v1")
	v1.Use(s.apiKeyAuth())
	{
		v1.GET("/patterns/:coordinate", s.handleRetrieve)
		v1.GET("/search", s.handleSearch)
		v1.POST("/module", s.handleModule)
		v1.POST("/batch", s.handleBatch)
		v1.GET("/layers", s.handleLayers)
		v1.GET("/stats", s.handleStats)
	}
}
