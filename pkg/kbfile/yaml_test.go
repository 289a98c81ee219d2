package kbfile

import (
	"errors"
	"strings"
	"testing"

	"github.com/soundprediction/faqgraph/pkg/types"
)

func TestParseYAML(t *testing.T) {
	doc := `
faqs:
  - question: "What is a graph?"
    answer: "Nodes and edges."
    category: "Basics"
entities:
  - name: "MeTTa"
    type: "Language"
properties:
  - entity_name: "MeTTa"
    key: "type"
    value: "declarative language"
synonyms:
  - term: "metta"
    equivalent: "MeTTa"
    confidence: 0.95
contexts:
  - entity_name: "MeTTa"
    context: "query evaluation"
    weight: 0.7
`
	facts, err := ParseYAML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if len(facts) != 5 {
		t.Fatalf("expected 5 facts, got %d", len(facts))
	}

	// Facts come out grouped by kind in declaration order.
	if facts[0].FactKind() != types.KindFAQ {
		t.Errorf("expected FAQ first, got %s", facts[0].FactKind())
	}
	if facts[1].FactKind() != types.KindEntity {
		t.Errorf("expected Entity second, got %s", facts[1].FactKind())
	}

	syn := facts[3].(*types.Synonym)
	if syn.Confidence != 0.95 {
		t.Errorf("expected confidence 0.95, got %v", syn.Confidence)
	}
}

func TestParseYAMLEmptyDocument(t *testing.T) {
	facts, err := ParseYAML(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if len(facts) != 0 {
		t.Errorf("expected no facts, got %d", len(facts))
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed yaml", "faqs: [unclosed"},
		{"confidence out of range", "synonyms:\n  - term: a\n    equivalent: b\n    confidence: 2"},
		{"weight out of range", "contexts:\n  - entity_name: a\n    context: b\n    weight: -1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML(strings.NewReader(tt.doc))
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T: %v", err, err)
			}
		})
	}
}
