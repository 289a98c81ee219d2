package factstore

import (
	"errors"

	"github.com/soundprediction/faqgraph/pkg/types"
)

// ErrNilFact is returned when a nil record is inserted.
var ErrNilFact = errors.New("factstore: nil fact")

// MemoryStore is the in-memory Store implementation: one insertion-ordered
// slice per fact kind, every query a linear scan. It performs no locking of
// its own (see the package documentation for the synchronization contract).
type MemoryStore struct {
	faqs           []*types.FAQ
	entities       []*types.Entity
	properties     []*types.Property
	relationships  []*types.Relationship
	categories     []*types.Category
	synonyms       []*types.Synonym
	contextWeights []*types.ContextWeight
}

// NewMemoryStore creates an empty in-memory fact store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Insert appends a record to its kind's sequence. Duplicates are permitted
// and not deduplicated. An unknown concrete type is a programmer error.
func (s *MemoryStore) Insert(fact types.Fact) error {
	if fact == nil {
		return ErrNilFact
	}
	switch f := fact.(type) {
	case *types.FAQ:
		s.faqs = append(s.faqs, f)
	case *types.Entity:
		s.entities = append(s.entities, f)
	case *types.Property:
		s.properties = append(s.properties, f)
	case *types.Relationship:
		s.relationships = append(s.relationships, f)
	case *types.Category:
		s.categories = append(s.categories, f)
	case *types.Synonym:
		s.synonyms = append(s.synonyms, f)
	case *types.ContextWeight:
		s.contextWeights = append(s.contextWeights, f)
	default:
		panic("factstore: unknown fact type")
	}
	return nil
}

// Facts returns every record of the given kind in insertion order.
// An unknown kind is a programmer error.
func (s *MemoryStore) Facts(kind types.FactKind) []types.Fact {
	switch kind {
	case types.KindFAQ:
		return asFacts(s.faqs)
	case types.KindEntity:
		return asFacts(s.entities)
	case types.KindProperty:
		return asFacts(s.properties)
	case types.KindRelationship:
		return asFacts(s.relationships)
	case types.KindCategory:
		return asFacts(s.categories)
	case types.KindSynonym:
		return asFacts(s.synonyms)
	case types.KindContextWeight:
		return asFacts(s.contextWeights)
	default:
		panic("factstore: unknown fact kind " + string(kind))
	}
}

// Query returns every record of the given kind satisfying the predicate,
// in insertion order.
func (s *MemoryStore) Query(kind types.FactKind, pred func(types.Fact) bool) []types.Fact {
	var out []types.Fact
	for _, f := range s.Facts(kind) {
		if pred(f) {
			out = append(out, f)
		}
	}
	return out
}

// FAQs returns all FAQ records.
func (s *MemoryStore) FAQs() []*types.FAQ {
	out := make([]*types.FAQ, len(s.faqs))
	copy(out, s.faqs)
	return out
}

// FAQsByCategory returns FAQs whose category equals the argument exactly
// (case-sensitive).
func (s *MemoryStore) FAQsByCategory(category string) []*types.FAQ {
	var out []*types.FAQ
	for _, f := range s.faqs {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}

// EntitiesByName returns entities whose name equals the argument exactly
// (case-sensitive).
func (s *MemoryStore) EntitiesByName(name string) []*types.Entity {
	var out []*types.Entity
	for _, e := range s.entities {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

// PropertiesFor returns the properties attached to the named entity.
func (s *MemoryStore) PropertiesFor(entityName string) []*types.Property {
	var out []*types.Property
	for _, p := range s.properties {
		if p.EntityName == entityName {
			out = append(out, p)
		}
	}
	return out
}

// RelationshipsFrom returns relationships whose from-side is the named
// entity.
func (s *MemoryStore) RelationshipsFrom(entityName string) []*types.Relationship {
	var out []*types.Relationship
	for _, r := range s.relationships {
		if r.FromEntity == entityName {
			out = append(out, r)
		}
	}
	return out
}

// CategoryByName returns the first category record with the given name.
func (s *MemoryStore) CategoryByName(name string) (*types.Category, bool) {
	for _, c := range s.categories {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// SynonymsFor returns synonyms whose term equals the argument exactly
// (case-sensitive).
func (s *MemoryStore) SynonymsFor(term string) []*types.Synonym {
	var out []*types.Synonym
	for _, syn := range s.synonyms {
		if syn.Term == term {
			out = append(out, syn)
		}
	}
	return out
}

// ContextWeightsFor returns weighted contexts attached to the named entity.
func (s *MemoryStore) ContextWeightsFor(entityName string) []*types.ContextWeight {
	var out []*types.ContextWeight
	for _, c := range s.contextWeights {
		if c.EntityName == entityName {
			out = append(out, c)
		}
	}
	return out
}

// Stats returns record counts per kind.
func (s *MemoryStore) Stats() Stats {
	return Stats{
		FAQs:           len(s.faqs),
		Entities:       len(s.entities),
		Properties:     len(s.properties),
		Relationships:  len(s.relationships),
		Categories:     len(s.categories),
		Synonyms:       len(s.synonyms),
		ContextWeights: len(s.contextWeights),
	}
}

func asFacts[T types.Fact](records []T) []types.Fact {
	out := make([]types.Fact, len(records))
	for i, r := range records {
		out[i] = r
	}
	return out
}

var _ Store = (*MemoryStore)(nil)
