// Package types defines the core data types for the faqgraph knowledge base.
//
// This package contains the fundamental types used throughout faqgraph:
//   - The seven fact kinds stored in the fact store: FAQ, Entity, Property,
//     Relationship, Category, Synonym, and ContextWeight
//   - ContextItem: One unit of retrieved evidence returned by the retrieval
//     strategies, tagged by its originating kind
//
// # Fact Model
//
// Facts are immutable once created and the store that holds them is
// append-only. Facts reference each other by name only (a Property names its
// entity, a Relationship names both endpoints); nothing owns anything, and
// dangling references are legal. All joins happen at query time by exact
// field equality.
//
// # Validation
//
// Fact types provide Validate() methods checking the required string fields:
//
//	faq := &types.FAQ{Question: "What is a knowledge graph?", Answer: "..."}
//	if err := faq.Validate(); err != nil {
//	    // Handle validation error
//	}
//
// # JSON Serialization
//
// All types are designed to be JSON-serializable with appropriate struct tags.
package types
