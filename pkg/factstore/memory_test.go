package factstore

import (
	"testing"

	"github.com/soundprediction/faqgraph/pkg/types"
)

func TestInsertNil(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Insert(nil); err != ErrNilFact {
		t.Errorf("expected ErrNilFact, got %v", err)
	}
}

func TestInsertPreservesOrder(t *testing.T) {
	store := NewMemoryStore()
	questions := []string{"first", "second", "third"}
	for _, q := range questions {
		err := store.Insert(&types.FAQ{Question: q, Answer: "a", Category: "c"})
		if err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	faqs := store.FAQs()
	if len(faqs) != len(questions) {
		t.Fatalf("expected %d FAQs, got %d", len(questions), len(faqs))
	}
	for i, q := range questions {
		if faqs[i].Question != q {
			t.Errorf("position %d: expected %q, got %q", i, q, faqs[i].Question)
		}
	}
}

func TestDuplicatesPermitted(t *testing.T) {
	store := NewMemoryStore()
	entity := &types.Entity{Name: "MeTTa", Type: "Language"}
	for i := 0; i < 3; i++ {
		if err := store.Insert(entity); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}
	if got := len(store.EntitiesByName("MeTTa")); got != 3 {
		t.Errorf("expected 3 duplicate entities, got %d", got)
	}
}

func TestLookupsAreExact(t *testing.T) {
	store := NewMemoryStore()
	store.Insert(&types.Entity{Name: "MeTTa", Type: "Language"})
	store.Insert(&types.FAQ{Question: "q", Answer: "a", Category: "Basics"})
	store.Insert(&types.Synonym{Term: "metta", Equivalent: "MeTTa", Confidence: 0.95})

	if got := store.EntitiesByName("metta"); len(got) != 0 {
		t.Errorf("expected case-sensitive miss for entity name, got %d results", len(got))
	}
	if got := store.FAQsByCategory("basics"); len(got) != 0 {
		t.Errorf("expected case-sensitive miss for category, got %d results", len(got))
	}
	if got := store.SynonymsFor("MeTTa"); len(got) != 0 {
		t.Errorf("expected case-sensitive miss for synonym term, got %d results", len(got))
	}
	if got := store.SynonymsFor("metta"); len(got) != 1 {
		t.Errorf("expected 1 synonym for exact term, got %d", len(got))
	}
}

func TestEmptyLookups(t *testing.T) {
	store := NewMemoryStore()

	if got := store.FAQs(); len(got) != 0 {
		t.Errorf("expected no FAQs, got %d", len(got))
	}
	if got := store.PropertiesFor("anything"); len(got) != 0 {
		t.Errorf("expected no properties, got %d", len(got))
	}
	if got := store.RelationshipsFrom("anything"); len(got) != 0 {
		t.Errorf("expected no relationships, got %d", len(got))
	}
	if got := store.ContextWeightsFor("anything"); len(got) != 0 {
		t.Errorf("expected no context weights, got %d", len(got))
	}
	if _, ok := store.CategoryByName("anything"); ok {
		t.Error("expected no category")
	}
}

func TestCategoryByNameFirstMatch(t *testing.T) {
	store := NewMemoryStore()
	store.Insert(&types.Category{Name: "Basics", Parent: "Root", Description: "first"})
	store.Insert(&types.Category{Name: "Basics", Parent: "Other", Description: "second"})

	cat, ok := store.CategoryByName("Basics")
	if !ok {
		t.Fatal("expected category to be found")
	}
	if cat.Description != "first" {
		t.Errorf("expected first inserted record, got %q", cat.Description)
	}
}

func TestPropertiesAndRelationshipsJoinByName(t *testing.T) {
	store := NewMemoryStore()
	store.Insert(&types.Entity{Name: "MeTTa", Type: "Language"})
	store.Insert(&types.Property{EntityName: "MeTTa", Key: "type", Value: "declarative"})
	store.Insert(&types.Property{EntityName: "Other", Key: "type", Value: "imperative"})
	store.Insert(&types.Relationship{FromEntity: "MeTTa", RelationType: "operates_on", ToEntity: "KnowledgeGraph"})
	store.Insert(&types.Relationship{FromEntity: "KnowledgeGraph", RelationType: "queried_by", ToEntity: "MeTTa"})

	props := store.PropertiesFor("MeTTa")
	if len(props) != 1 || props[0].Value != "declarative" {
		t.Errorf("unexpected properties: %+v", props)
	}

	rels := store.RelationshipsFrom("MeTTa")
	if len(rels) != 1 || rels[0].ToEntity != "KnowledgeGraph" {
		t.Errorf("unexpected relationships: %+v", rels)
	}
}

func TestFactsAndQuery(t *testing.T) {
	store := NewMemoryStore()
	store.Insert(&types.FAQ{Question: "q1", Answer: "a", Category: "Basics"})
	store.Insert(&types.FAQ{Question: "q2", Answer: "a", Category: "Models"})

	all := store.Facts(types.KindFAQ)
	if len(all) != 2 {
		t.Fatalf("expected 2 facts, got %d", len(all))
	}

	matched := store.Query(types.KindFAQ, func(f types.Fact) bool {
		return f.(*types.FAQ).Category == "Models"
	})
	if len(matched) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matched))
	}
	if matched[0].(*types.FAQ).Question != "q2" {
		t.Errorf("expected q2, got %q", matched[0].(*types.FAQ).Question)
	}
}

func TestStats(t *testing.T) {
	store := NewMemoryStore()
	store.Insert(&types.FAQ{Question: "q", Answer: "a", Category: "c"})
	store.Insert(&types.Entity{Name: "e", Type: "t"})
	store.Insert(&types.Entity{Name: "e2", Type: "t"})
	store.Insert(&types.Property{EntityName: "e", Key: "k", Value: "v"})
	store.Insert(&types.Synonym{Term: "s", Equivalent: "e", Confidence: 1})

	stats := store.Stats()
	if stats.FAQs != 1 || stats.Entities != 2 || stats.Properties != 1 || stats.Synonyms != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.Total() != 5 {
		t.Errorf("expected total 5, got %d", stats.Total())
	}
}
