// Package dto defines the request and response types of the HTTP API.
package dto

import (
	"errors"
	"strings"

	"github.com/soundprediction/faqgraph/pkg/types"
)

// Validation errors
var (
	ErrEmptyText       = errors.New("text cannot be empty")
	ErrTextTooLong     = errors.New("text exceeds maximum length (1MB)")
	ErrTooManyTurns    = errors.New("history exceeds maximum turn count (200)")
	ErrFieldTooLong    = errors.New("field exceeds maximum length (1024)")
	ErrInvalidRole     = errors.New("invalid role: must be user, assistant, or system")
	ErrTooManyProperty = errors.New("properties count exceeds maximum (100)")
)

// Maximum lengths for fields to prevent abuse
const (
	MaxTextLength    = 1024 * 1024 // 1MB
	MaxFieldLength   = 1024
	MaxHistoryTurns  = 200
	MaxPropertyCount = 100
)

// Message is one prior turn of the conversation.
type Message struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ValidRoles defines acceptable message roles
var ValidRoles = map[string]bool{
	"user":      true,
	"assistant": true,
	"system":    true,
}

// Validate performs validation on Message
func (m *Message) Validate() error {
	if !ValidRoles[strings.ToLower(m.Role)] {
		return ErrInvalidRole
	}
	if strings.TrimSpace(m.Content) == "" {
		return ErrEmptyText
	}
	if len(m.Content) > MaxTextLength {
		return ErrTextTooLong
	}
	return nil
}

// AnswerResponse carries the generated answer and the context that produced
// it.
type AnswerResponse struct {
	Text    string              `json:"text"`
	Context []types.ContextItem `json:"context"`
}

// Result represents a generic API result
type Result struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
