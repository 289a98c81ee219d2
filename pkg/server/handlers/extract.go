package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundprediction/faqgraph/pkg/extractor"
	"github.com/soundprediction/faqgraph/pkg/server/dto"
)

// ExtractHandler extracts knowledge from submitted text and applies it to the
// knowledge base.
type ExtractHandler struct {
	extractor *extractor.Extractor
	kb        extractor.Mutator
	logger    *slog.Logger
}

// NewExtractHandler creates a new extract handler
func NewExtractHandler(ext *extractor.Extractor, kb extractor.Mutator, logger *slog.Logger) *ExtractHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractHandler{extractor: ext, kb: kb, logger: logger}
}

// ExtractText handles POST /extract/text
func (h *ExtractHandler) ExtractText(c *gin.Context) {
	var req dto.ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}

	extraction, err := h.extractor.ExtractFromText(c.Request.Context(), req.Text)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "extraction failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "extraction_failed", Message: err.Error()})
		return
	}

	applied, skipped := h.extractor.Apply(extraction, h.kb)
	c.JSON(http.StatusOK, dto.Result{
		Success: true,
		Message: "Extraction completed. Data has been added to the knowledge graph.",
		Data: gin.H{
			"extracted_data": extraction,
			"applied":        applied,
			"skipped":        skipped,
		},
	})
}
