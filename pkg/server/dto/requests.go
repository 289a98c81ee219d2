package dto

import (
	"fmt"
	"strings"

	"github.com/soundprediction/faqgraph/pkg/types"
)

// ChatRequest asks a question, optionally carrying prior turns.
type ChatRequest struct {
	Text    string    `json:"text" binding:"required"`
	History []Message `json:"history,omitempty"`
}

// Validate performs validation on ChatRequest
func (r *ChatRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrEmptyText
	}
	if len(r.Text) > MaxTextLength {
		return ErrTextTooLong
	}
	if len(r.History) > MaxHistoryTurns {
		return ErrTooManyTurns
	}
	for i, msg := range r.History {
		if err := msg.Validate(); err != nil {
			return fmt.Errorf("history[%d]: %w", i, err)
		}
	}
	return nil
}

// FAQRequest adds one FAQ entry.
type FAQRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
	Category string `json:"category" binding:"required"`
	Concepts string `json:"concepts,omitempty"`
}

// Validate performs validation on FAQRequest
func (r *FAQRequest) Validate() error {
	for name, value := range map[string]string{
		"question": r.Question,
		"answer":   r.Answer,
		"category": r.Category,
	} {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s: %w", name, ErrEmptyText)
		}
	}
	if len(r.Question) > MaxTextLength || len(r.Answer) > MaxTextLength {
		return ErrTextTooLong
	}
	if len(r.Category) > MaxFieldLength {
		return ErrFieldTooLong
	}
	return nil
}

// EntityRequest adds one entity with optional properties.
type EntityRequest struct {
	Name       string                         `json:"name" binding:"required"`
	EntityType string                         `json:"entity_type" binding:"required"`
	Properties map[string]types.PropertyValue `json:"properties,omitempty"`
}

// Validate performs validation on EntityRequest
func (r *EntityRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name: %w", ErrEmptyText)
	}
	if strings.TrimSpace(r.EntityType) == "" {
		return fmt.Errorf("entity_type: %w", ErrEmptyText)
	}
	if len(r.Name) > MaxFieldLength || len(r.EntityType) > MaxFieldLength {
		return ErrFieldTooLong
	}
	if len(r.Properties) > MaxPropertyCount {
		return ErrTooManyProperty
	}
	return nil
}

// RelationshipRequest adds one directed relationship.
type RelationshipRequest struct {
	FromEntity       string `json:"from_entity" binding:"required"`
	RelationshipType string `json:"relationship_type" binding:"required"`
	ToEntity         string `json:"to_entity" binding:"required"`
	Context          string `json:"context,omitempty"`
}

// Validate performs validation on RelationshipRequest
func (r *RelationshipRequest) Validate() error {
	for name, value := range map[string]string{
		"from_entity":       r.FromEntity,
		"relationship_type": r.RelationshipType,
		"to_entity":         r.ToEntity,
	} {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s: %w", name, ErrEmptyText)
		}
		if len(value) > MaxFieldLength {
			return fmt.Errorf("%s: %w", name, ErrFieldTooLong)
		}
	}
	return nil
}

// ExtractRequest submits free text for knowledge extraction.
type ExtractRequest struct {
	Text string `json:"text" binding:"required"`
}

// Validate performs validation on ExtractRequest
func (r *ExtractRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrEmptyText
	}
	if len(r.Text) > MaxTextLength {
		return ErrTextTooLong
	}
	return nil
}
