// Package faqgraph provides a knowledge-graph-backed retrieval engine for
// FAQ chatbots.
//
// Facts (FAQs, entities, properties, relationships, categories, synonyms,
// weighted contexts) live in an append-only in-memory store. Given a free-text
// question, the client runs five retrieval strategies over the store (direct
// FAQ matching, entity matching, synonym expansion, a category-hierarchy walk,
// and weighted-context lookup) and assembles their results into one ordered
// context bundle suitable for LLM prompt construction.
//
// # Basic Usage
//
// Create a client and load the knowledge base from its schema and data
// sources:
//
//	store := factstore.NewMemoryStore()
//	client := faqgraph.NewClient(store, slog.Default())
//
//	schema, _ := os.Open("knowledge/schema.kb")
//	data, _ := os.Open("knowledge/data.kb")
//	if err := client.LoadKnowledgeBase(schema, data); err != nil {
//	    log.Fatal(err)
//	}
//
// # Querying
//
// QueryContext returns the ordered evidence bundle for a question:
//
//	items := client.QueryContext("What is a knowledge graph?")
//	for _, item := range items {
//	    fmt.Println(item.Kind)
//	}
//
// # Mutation
//
// The mutation API is append-only and validates required fields:
//
//	err := client.AddFAQ("How do I reset my password?",
//	    "Use the account settings page.", "accounts", "password reset")
//
// Dangling references are legal: a relationship may name entities that were
// never added. All joins resolve by name at query time.
//
// # Concurrency
//
// The store itself is unsynchronized; the client serializes every query and
// mutation behind a single RWMutex, so one client is safe to share across
// concurrent request handlers.
package faqgraph
