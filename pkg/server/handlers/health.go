package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundprediction/faqgraph"
)

// HealthHandler reports service liveness and store statistics.
type HealthHandler struct {
	kb faqgraph.KnowledgeBase
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(kb faqgraph.KnowledgeBase) *HealthHandler {
	return &HealthHandler{kb: kb}
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DetailedHealthCheck handles GET /health/detailed
func (h *HealthHandler) DetailedHealthCheck(c *gin.Context) {
	stats := h.kb.Stats()
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"facts":  stats.Total(),
		"stats":  stats,
	})
}
