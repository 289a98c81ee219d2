package faqgraph

import (
	"io"

	"github.com/soundprediction/faqgraph/pkg/factstore"
	"github.com/soundprediction/faqgraph/pkg/types"
)

// This file defines focused interfaces that follow the Interface Segregation
// Principle. The composed KnowledgeBase interface exists for callers that need
// everything; consumers should depend on the smallest interface that meets
// their needs.

// ContextQuerier provides read-only retrieval over the knowledge base.
type ContextQuerier interface {
	// QueryContext runs the retrieval strategies for a question and returns
	// the assembled context items in pass order.
	QueryContext(question string) []types.ContextItem
}

// KnowledgeMutator provides the append-only mutation operations.
type KnowledgeMutator interface {
	// AddFAQ appends a FAQ record. Concepts may be empty.
	AddFAQ(question, answer, category, concepts string) error

	// AddEntity appends an entity record plus one property record per entry
	// in properties. Properties may be nil.
	AddEntity(name, entityType string, properties map[string]types.PropertyValue) error

	// AddRelationship appends a directed relationship record. Context may be
	// empty. Neither endpoint needs to exist.
	AddRelationship(from, relationType, to, context string) error
}

// KnowledgeLoader populates the store from knowledge-base sources.
type KnowledgeLoader interface {
	// LoadKnowledgeBase parses a schema source and a data source and inserts
	// the resulting facts. Parse failures abort the load with nothing
	// inserted.
	LoadKnowledgeBase(schema, data io.Reader) error
}

// KnowledgeBase composes the full client surface.
type KnowledgeBase interface {
	ContextQuerier
	KnowledgeMutator
	KnowledgeLoader

	// Stats returns record counts per fact kind.
	Stats() factstore.Stats
}

var _ KnowledgeBase = (*Client)(nil)
