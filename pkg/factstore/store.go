package factstore

import (
	"github.com/soundprediction/faqgraph/pkg/types"
)

// Store defines the interface for fact storage and lookup.
//
// Implementations must preserve insertion order within each kind, permit
// duplicate records, and never mutate or remove a record once inserted.
// Queries that find nothing return empty results, not errors.
type Store interface {
	// Insert appends a record to its kind's sequence.
	Insert(fact types.Fact) error

	// Facts returns every record of the given kind in insertion order.
	Facts(kind types.FactKind) []types.Fact

	// Query returns every record of the given kind satisfying the predicate,
	// in insertion order.
	Query(kind types.FactKind, pred func(types.Fact) bool) []types.Fact

	// FAQs returns all FAQ records.
	FAQs() []*types.FAQ

	// FAQsByCategory returns FAQs whose category equals the argument exactly.
	FAQsByCategory(category string) []*types.FAQ

	// EntitiesByName returns entities whose name equals the argument exactly.
	EntitiesByName(name string) []*types.Entity

	// PropertiesFor returns the properties attached to the named entity.
	PropertiesFor(entityName string) []*types.Property

	// RelationshipsFrom returns relationships whose from-side is the named
	// entity.
	RelationshipsFrom(entityName string) []*types.Relationship

	// CategoryByName returns the first category record with the given name,
	// or false if none exists.
	CategoryByName(name string) (*types.Category, bool)

	// SynonymsFor returns synonyms whose term equals the argument exactly.
	SynonymsFor(term string) []*types.Synonym

	// ContextWeightsFor returns weighted contexts attached to the named
	// entity.
	ContextWeightsFor(entityName string) []*types.ContextWeight

	// Stats returns record counts per kind.
	Stats() Stats
}

// Stats holds record counts for each fact kind.
type Stats struct {
	FAQs           int `json:"faqs"`
	Entities       int `json:"entities"`
	Properties     int `json:"properties"`
	Relationships  int `json:"relationships"`
	Categories     int `json:"categories"`
	Synonyms       int `json:"synonyms"`
	ContextWeights int `json:"context_weights"`
}

// Total returns the number of records across all kinds.
func (s Stats) Total() int {
	return s.FAQs + s.Entities + s.Properties + s.Relationships +
		s.Categories + s.Synonyms + s.ContextWeights
}
