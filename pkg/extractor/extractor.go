// Package extractor turns unstructured text into knowledge-base facts.
//
// It prompts a language model for a JSON document of entities, relationships
// and FAQ entries, repairs the inevitable malformed output, and applies the
// result through the append-only mutation API. Records the model returns
// without their required fields are skipped, not fatal.
package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	jsonrepair "github.com/kaptinlin/jsonrepair"

	"github.com/soundprediction/faqgraph/pkg/llm"
	"github.com/soundprediction/faqgraph/pkg/types"
)

const extractionPrompt = `Extract structured knowledge from the following text. Identify entities, their properties,
and relationships between entities. Format the output as JSON.

Text: %s

Output format:
{
    "entities": [
        {
            "name": "entity_name",
            "type": "entity_type",
            "properties": {
                "property_name": {
                    "value": "property_value",
                    "metadata": "source: text confidence: 0.9"
                }
            }
        }
    ],
    "relationships": [
        {
            "from_entity": "entity1_name",
            "relationship_type": "relates_to",
            "to_entity": "entity2_name",
            "context": "relationship_context confidence: 0.85"
        }
    ],
    "faq_entries": [
        {
            "question": "extracted_question",
            "answer": "extracted_answer",
            "category": "extracted_category",
            "concepts": "space_separated_concepts"
        }
    ]
}

Only extract information that is explicitly stated or strongly implied in the text.
Assign confidence scores based on how explicitly the information is stated.
Return only the JSON document.`

// ExtractedEntity is one entity the model found, with optional properties.
type ExtractedEntity struct {
	Name       string                         `json:"name"`
	Type       string                         `json:"type"`
	Properties map[string]types.PropertyValue `json:"properties,omitempty"`
}

// ExtractedRelationship is one directed relationship the model found.
type ExtractedRelationship struct {
	FromEntity       string `json:"from_entity"`
	RelationshipType string `json:"relationship_type"`
	ToEntity         string `json:"to_entity"`
	Context          string `json:"context,omitempty"`
}

// ExtractedFAQ is one question/answer pair the model found.
type ExtractedFAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category,omitempty"`
	Concepts string `json:"concepts,omitempty"`
}

// Extraction is the parsed model output.
type Extraction struct {
	Entities      []ExtractedEntity       `json:"entities"`
	Relationships []ExtractedRelationship `json:"relationships"`
	FAQEntries    []ExtractedFAQ          `json:"faq_entries"`
}

// Mutator is the slice of the knowledge-base surface the extractor writes
// through.
type Mutator interface {
	AddFAQ(question, answer, category, concepts string) error
	AddEntity(name, entityType string, properties map[string]types.PropertyValue) error
	AddRelationship(from, relationType, to, context string) error
}

// Extractor extracts facts from text using a language model.
type Extractor struct {
	llm    llm.Client
	logger *slog.Logger
}

// New creates an extractor over the given model client.
func New(client llm.Client, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{llm: client, logger: logger}
}

// ExtractFromText asks the model for structured knowledge in the given text.
func (e *Extractor) ExtractFromText(ctx context.Context, text string) (*Extraction, error) {
	reply, err := e.llm.Chat(ctx, []llm.Message{
		{Role: llm.RoleUser, Content: fmt.Sprintf(extractionPrompt, text)},
	})
	if err != nil {
		return nil, fmt.Errorf("extractor: model call: %w", err)
	}
	return ParseExtraction(reply)
}

// ParseExtraction parses a model reply into an Extraction, stripping code
// fences and repairing malformed JSON before unmarshaling.
func ParseExtraction(reply string) (*Extraction, error) {
	raw := stripCodeFences(reply)

	var extraction Extraction
	if err := json.Unmarshal([]byte(raw), &extraction); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(raw)
		if repairErr != nil {
			return nil, fmt.Errorf("extractor: invalid JSON: %w", err)
		}
		if err := json.Unmarshal([]byte(repaired), &extraction); err != nil {
			return nil, fmt.Errorf("extractor: invalid JSON after repair: %w", err)
		}
	}
	return &extraction, nil
}

// Apply writes an extraction into the knowledge base. Individual records
// failing validation are logged and skipped; the counts of applied records
// are returned.
func (e *Extractor) Apply(extraction *Extraction, mutator Mutator) (applied int, skipped int) {
	for _, entity := range extraction.Entities {
		if err := mutator.AddEntity(entity.Name, entity.Type, entity.Properties); err != nil {
			e.logger.Warn("skipping extracted entity", "name", entity.Name, "error", err)
			skipped++
			continue
		}
		applied++
	}

	for _, rel := range extraction.Relationships {
		if err := mutator.AddRelationship(rel.FromEntity, rel.RelationshipType, rel.ToEntity, rel.Context); err != nil {
			e.logger.Warn("skipping extracted relationship", "from", rel.FromEntity, "error", err)
			skipped++
			continue
		}
		applied++
	}

	for _, faq := range extraction.FAQEntries {
		category := faq.Category
		if category == "" {
			category = "General"
		}
		if err := mutator.AddFAQ(faq.Question, faq.Answer, category, faq.Concepts); err != nil {
			e.logger.Warn("skipping extracted faq", "question", faq.Question, "error", err)
			skipped++
			continue
		}
		applied++
	}

	return applied, skipped
}

// stripCodeFences removes a surrounding markdown code fence, with or without
// a language tag.
func stripCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
