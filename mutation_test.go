package faqgraph_test

import (
	"errors"
	"testing"

	"github.com/soundprediction/faqgraph"
	"github.com/soundprediction/faqgraph/pkg/types"
)

func TestAddFAQ(t *testing.T) {
	client := faqgraph.NewClient(nil, nil)

	if err := client.AddFAQ("What is a graph?", "Nodes and edges.", "Basics", "graph"); err != nil {
		t.Fatalf("AddFAQ failed: %v", err)
	}

	stats := client.Stats()
	if stats.FAQs != 1 {
		t.Errorf("expected 1 FAQ, got %d", stats.FAQs)
	}

	items := client.QueryContext("graph")
	if len(items) == 0 || items[0].Kind != types.ContextKindFAQ {
		t.Errorf("expected the added FAQ to be retrievable, got %v", items)
	}
}

func TestAddFAQValidation(t *testing.T) {
	client := faqgraph.NewClient(nil, nil)

	tests := []struct {
		name      string
		question  string
		answer    string
		category  string
		wantField string
	}{
		{"empty question", "", "a", "c", "question"},
		{"empty answer", "q", "", "c", "answer"},
		{"empty category", "q", "a", "", "category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := client.AddFAQ(tt.question, tt.answer, tt.category, "")
			var ve *types.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *types.ValidationError, got %T: %v", err, err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, ve.Field)
			}
		})
	}

	if total := client.Stats().Total(); total != 0 {
		t.Errorf("expected the store untouched after failures, got %d records", total)
	}
}

func TestAddEntityWithProperties(t *testing.T) {
	client := faqgraph.NewClient(nil, nil)

	err := client.AddEntity("redis", "Database", map[string]types.PropertyValue{
		"model":   {Value: "key-value", Metadata: "source: docs"},
		"license": {Value: "RSAL"},
	})
	if err != nil {
		t.Fatalf("AddEntity failed: %v", err)
	}

	stats := client.Stats()
	if stats.Entities != 1 || stats.Properties != 2 {
		t.Errorf("expected 1 entity and 2 properties, got %+v", stats)
	}

	items := client.QueryContext("redis")
	var entity *types.EntityMatch
	for _, item := range items {
		if item.Kind == types.ContextKindEntity {
			entity = item.Entity
		}
	}
	if entity == nil {
		t.Fatal("expected the added entity to be retrievable")
	}
	if got := entity.Properties["model"]; got.Value != "key-value" || got.Metadata != "source: docs" {
		t.Errorf("unexpected property: %+v", got)
	}
}

func TestAddEntityValidation(t *testing.T) {
	client := faqgraph.NewClient(nil, nil)

	var ve *types.ValidationError
	if err := client.AddEntity("", "Database", nil); !errors.As(err, &ve) {
		t.Errorf("expected validation error for empty name, got %v", err)
	}
	if err := client.AddEntity("redis", "", nil); !errors.As(err, &ve) {
		t.Errorf("expected validation error for empty type, got %v", err)
	}

	// An empty property key fails before anything is inserted.
	err := client.AddEntity("redis", "Database", map[string]types.PropertyValue{
		"": {Value: "v"},
	})
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error for empty property key, got %v", err)
	}
	if total := client.Stats().Total(); total != 0 {
		t.Errorf("expected the store untouched, got %d records", total)
	}
}

func TestAddEntityDuplicateNamesPermitted(t *testing.T) {
	client := faqgraph.NewClient(nil, nil)

	if err := client.AddEntity("redis", "Database", nil); err != nil {
		t.Fatalf("first AddEntity failed: %v", err)
	}
	if err := client.AddEntity("redis", "Cache", nil); err != nil {
		t.Fatalf("second AddEntity failed: %v", err)
	}
	if got := client.Stats().Entities; got != 2 {
		t.Errorf("expected 2 entity records, got %d", got)
	}
}

func TestAddRelationship(t *testing.T) {
	client := faqgraph.NewClient(nil, nil)

	// Dangling endpoints are legal.
	if err := client.AddRelationship("redis", "caches_for", "postgres", "hot paths"); err != nil {
		t.Fatalf("AddRelationship failed: %v", err)
	}
	if got := client.Stats().Relationships; got != 1 {
		t.Errorf("expected 1 relationship, got %d", got)
	}
}

func TestAddRelationshipValidation(t *testing.T) {
	client := faqgraph.NewClient(nil, nil)

	tests := []struct {
		name             string
		from, relType, to string
		wantField        string
	}{
		{"empty from", "", "caches_for", "postgres", "from_entity"},
		{"empty type", "redis", "", "postgres", "relation_type"},
		{"empty to", "redis", "caches_for", "", "to_entity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := client.AddRelationship(tt.from, tt.relType, tt.to, "")
			var ve *types.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *types.ValidationError, got %T: %v", err, err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, ve.Field)
			}
		})
	}
}
