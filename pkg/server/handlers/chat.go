// Package handlers implements the HTTP endpoints of the faqgraph server.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundprediction/faqgraph"
	"github.com/soundprediction/faqgraph/pkg/llm"
	"github.com/soundprediction/faqgraph/pkg/server/dto"
)

// ChatHandler answers questions using retrieved context and the language
// model.
type ChatHandler struct {
	kb     faqgraph.ContextQuerier
	llm    llm.Client
	logger *slog.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(kb faqgraph.ContextQuerier, llmClient llm.Client, logger *slog.Logger) *ChatHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatHandler{kb: kb, llm: llmClient, logger: logger}
}

// Chat handles POST /chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}

	items := h.kb.QueryContext(req.Text)

	history := make([]llm.Message, 0, len(req.History))
	for _, m := range req.History {
		history = append(history, llm.Message{Role: m.Role, Content: m.Content})
	}

	answer, err := h.llm.Chat(c.Request.Context(), llm.BuildMessages(req.Text, items, history))
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "answer generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "generation_failed", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.AnswerResponse{Text: answer, Context: items})
}
