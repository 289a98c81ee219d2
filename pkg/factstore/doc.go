// Package factstore provides the append-only store for knowledge-base facts.
//
// The store holds the seven fact kinds defined in pkg/types as flat,
// insertion-ordered sequences, one per kind. It supports exactly two shapes of
// access: appending a record, and scanning a kind with an exact field-equality
// predicate. There is no update or delete path, no index beyond the linear
// scan, and no persistence.
//
// # Usage
//
//	store := factstore.NewMemoryStore()
//	if err := store.Insert(&types.FAQ{
//	    Question: "What is a knowledge graph?",
//	    Answer:   "A graph-structured knowledge base.",
//	    Category: "basics",
//	}); err != nil {
//	    return err
//	}
//	for _, faq := range store.FAQsByCategory("basics") {
//	    fmt.Println(faq.Question)
//	}
//
// # Synchronization
//
// The store itself performs no locking. Callers that expose the store to
// concurrent requests must serialize mutation against queries externally; the
// faqgraph Client does this with a single RWMutex around every store access.
package factstore
