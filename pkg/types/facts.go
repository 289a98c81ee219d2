package types

import "fmt"

// FactKind identifies one of the seven record kinds held by the fact store.
type FactKind string

const (
	KindFAQ           FactKind = "FAQ"
	KindEntity        FactKind = "Entity"
	KindProperty      FactKind = "Property"
	KindRelationship  FactKind = "Relationship"
	KindCategory      FactKind = "Category"
	KindSynonym       FactKind = "Synonym"
	KindContextWeight FactKind = "Context"
)

// Kinds lists every fact kind in its canonical order.
var Kinds = []FactKind{
	KindFAQ,
	KindEntity,
	KindProperty,
	KindRelationship,
	KindCategory,
	KindSynonym,
	KindContextWeight,
}

// ValidationError reports an empty required field on a fact or mutation call.
type ValidationError struct {
	Kind  FactKind
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: field %q cannot be empty", e.Kind, e.Field)
}

// Fact is implemented by every fact record.
type Fact interface {
	FactKind() FactKind
	Validate() error
}

// FAQ is a question/answer pair filed under a category. Concepts is a
// space-separated tag string.
type FAQ struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
	Category string `json:"category" yaml:"category"`
	Concepts string `json:"concepts,omitempty" yaml:"concepts,omitempty"`
}

func (f *FAQ) FactKind() FactKind { return KindFAQ }

// Validate checks the required fields of the FAQ.
func (f *FAQ) Validate() error {
	if f.Question == "" {
		return &ValidationError{Kind: KindFAQ, Field: "question"}
	}
	if f.Answer == "" {
		return &ValidationError{Kind: KindFAQ, Field: "answer"}
	}
	if f.Category == "" {
		return &ValidationError{Kind: KindFAQ, Field: "category"}
	}
	return nil
}

// Entity is a named thing of some type. The name is the join key used by
// Property, Relationship, Synonym and ContextWeight records.
type Entity struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

func (e *Entity) FactKind() FactKind { return KindEntity }

func (e *Entity) Validate() error {
	if e.Name == "" {
		return &ValidationError{Kind: KindEntity, Field: "name"}
	}
	if e.Type == "" {
		return &ValidationError{Kind: KindEntity, Field: "type"}
	}
	return nil
}

// Property attaches a key/value pair to an entity by name. Metadata is an
// opaque string, commonly of the form "source: X confidence: 0.NN"; it is
// stored and returned verbatim, never parsed.
type Property struct {
	EntityName string `json:"entity_name" yaml:"entity_name"`
	Key        string `json:"key" yaml:"key"`
	Value      string `json:"value" yaml:"value"`
	Metadata   string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

func (p *Property) FactKind() FactKind { return KindProperty }

func (p *Property) Validate() error {
	if p.EntityName == "" {
		return &ValidationError{Kind: KindProperty, Field: "entity_name"}
	}
	if p.Key == "" {
		return &ValidationError{Kind: KindProperty, Field: "key"}
	}
	return nil
}

// Relationship is a directed edge between two entities named by value.
// Duplicate edges are permitted; there is no edge identity.
type Relationship struct {
	FromEntity   string `json:"from_entity" yaml:"from_entity"`
	RelationType string `json:"relation_type" yaml:"relation_type"`
	ToEntity     string `json:"to_entity" yaml:"to_entity"`
	Context      string `json:"context,omitempty" yaml:"context,omitempty"`
}

func (r *Relationship) FactKind() FactKind { return KindRelationship }

func (r *Relationship) Validate() error {
	if r.FromEntity == "" {
		return &ValidationError{Kind: KindRelationship, Field: "from_entity"}
	}
	if r.RelationType == "" {
		return &ValidationError{Kind: KindRelationship, Field: "relation_type"}
	}
	if r.ToEntity == "" {
		return &ValidationError{Kind: KindRelationship, Field: "to_entity"}
	}
	return nil
}

// RootCategory is the parent sentinel meaning "no parent".
const RootCategory = "Root"

// Category is one node of the single-parent category tree.
type Category struct {
	Name        string `json:"name" yaml:"name"`
	Parent      string `json:"parent" yaml:"parent"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

func (c *Category) FactKind() FactKind { return KindCategory }

func (c *Category) Validate() error {
	if c.Name == "" {
		return &ValidationError{Kind: KindCategory, Field: "name"}
	}
	if c.Parent == "" {
		return &ValidationError{Kind: KindCategory, Field: "parent"}
	}
	return nil
}

// Synonym maps a term to a semantically equivalent term with a confidence
// in [0, 1]. Lookup on Term is exact and case-sensitive.
type Synonym struct {
	Term       string  `json:"term" yaml:"term"`
	Equivalent string  `json:"equivalent" yaml:"equivalent"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

func (s *Synonym) FactKind() FactKind { return KindSynonym }

func (s *Synonym) Validate() error {
	if s.Term == "" {
		return &ValidationError{Kind: KindSynonym, Field: "term"}
	}
	if s.Equivalent == "" {
		return &ValidationError{Kind: KindSynonym, Field: "equivalent"}
	}
	return nil
}

// ContextWeight associates an entity with a context label and a weight
// in [0, 1].
type ContextWeight struct {
	EntityName   string  `json:"entity_name" yaml:"entity_name"`
	ContextLabel string  `json:"context" yaml:"context"`
	Weight       float64 `json:"weight" yaml:"weight"`
}

func (c *ContextWeight) FactKind() FactKind { return KindContextWeight }

func (c *ContextWeight) Validate() error {
	if c.EntityName == "" {
		return &ValidationError{Kind: KindContextWeight, Field: "entity_name"}
	}
	if c.ContextLabel == "" {
		return &ValidationError{Kind: KindContextWeight, Field: "context"}
	}
	return nil
}
