package types

// ContextKind tags a ContextItem with the retrieval strategy that produced it.
type ContextKind string

const (
	ContextKindFAQ               ContextKind = "faq"
	ContextKindEntity            ContextKind = "entity"
	ContextKindSynonym           ContextKind = "synonym"
	ContextKindCategoryHierarchy ContextKind = "category_hierarchy"
	ContextKindContextWeight     ContextKind = "context_relationship"
)

// FAQ match types.
const (
	MatchDirect   = "direct"
	MatchCategory = "category"
)

// FAQMatch is a FAQ surfaced for a question, either by keyword overlap
// (MatchDirect) or because an extracted term named its category exactly
// (MatchCategory).
type FAQMatch struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Category  string `json:"category,omitempty"`
	MatchType string `json:"match_type"`
}

// PropertyValue is one property of a matched entity.
type PropertyValue struct {
	Value    string `json:"value"`
	Metadata string `json:"metadata,omitempty"`
}

// Relation is one outgoing relationship of a matched entity.
type Relation struct {
	To      string `json:"to"`
	Type    string `json:"type"`
	Context string `json:"context,omitempty"`
}

// EntityMatch bundles a matched entity with all of its properties and
// outgoing relationships, resolved by name at query time.
type EntityMatch struct {
	Name       string                   `json:"name"`
	Type       string                   `json:"type"`
	Properties map[string]PropertyValue `json:"properties"`
	Relations  []Relation               `json:"relations"`
}

// SynonymMatch is a semantic equivalent of an extracted term.
type SynonymMatch struct {
	Term       string  `json:"term"`
	Confidence float64 `json:"confidence"`
}

// CategoryHierarchy is the immediate parent lookup for a category surfaced by
// an earlier pass. One level only; it never walks to the grandparent.
type CategoryHierarchy struct {
	Category    string `json:"category"`
	Parent      string `json:"parent"`
	Description string `json:"description,omitempty"`
}

// WeightedContext is a weighted context label attached to an extracted term.
type WeightedContext struct {
	Context string  `json:"context"`
	Weight  float64 `json:"weight"`
}

// ContextItem is one unit of retrieved evidence. Exactly one payload field is
// set, matching Kind.
type ContextItem struct {
	Kind ContextKind `json:"kind"`

	FAQ               *FAQMatch          `json:"faq,omitempty"`
	Entity            *EntityMatch       `json:"entity,omitempty"`
	Synonym           *SynonymMatch      `json:"synonym,omitempty"`
	CategoryHierarchy *CategoryHierarchy `json:"category_hierarchy,omitempty"`
	ContextWeight     *WeightedContext   `json:"context_relationship,omitempty"`
}

// contextKey is a private type for request-scoped context values.
type contextKey string

// Context keys for request metadata propagated through the service layer.
const (
	ContextKeyUserID        contextKey = "user_id"
	ContextKeySessionID     contextKey = "session_id"
	ContextKeyRequestSource contextKey = "request_source"
)
