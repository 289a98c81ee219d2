package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundprediction/faqgraph"
	"github.com/soundprediction/faqgraph/pkg/server/dto"
	"github.com/soundprediction/faqgraph/pkg/types"
)

// KnowledgeHandler exposes the append-only mutation API.
type KnowledgeHandler struct {
	kb     faqgraph.KnowledgeMutator
	logger *slog.Logger
}

// NewKnowledgeHandler creates a new knowledge handler
func NewKnowledgeHandler(kb faqgraph.KnowledgeMutator, logger *slog.Logger) *KnowledgeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &KnowledgeHandler{kb: kb, logger: logger}
}

// AddFAQ handles POST /faq
func (h *KnowledgeHandler) AddFAQ(c *gin.Context) {
	var req dto.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}

	if err := h.kb.AddFAQ(req.Question, req.Answer, req.Category, req.Concepts); err != nil {
		h.writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Result{Success: true, Message: "FAQ added successfully"})
}

// AddEntity handles POST /entity
func (h *KnowledgeHandler) AddEntity(c *gin.Context) {
	var req dto.EntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}

	if err := h.kb.AddEntity(req.Name, req.EntityType, req.Properties); err != nil {
		h.writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Result{Success: true, Message: "Entity added successfully"})
}

// AddRelationship handles POST /relationship
func (h *KnowledgeHandler) AddRelationship(c *gin.Context) {
	var req dto.RelationshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}

	if err := h.kb.AddRelationship(req.FromEntity, req.RelationshipType, req.ToEntity, req.Context); err != nil {
		h.writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Result{Success: true, Message: "Relationship added successfully"})
}

// writeMutationError maps validation failures to 400 and everything else to
// 500.
func (h *KnowledgeHandler) writeMutationError(c *gin.Context, err error) {
	var ve *types.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation_failed", Message: err.Error()})
		return
	}
	h.logger.ErrorContext(c.Request.Context(), "mutation failed", "error", err)
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "mutation_failed", Message: err.Error()})
}
