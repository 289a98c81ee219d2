// Package kbfile parses knowledge-base source files into fact records.
//
// # Data Format
//
// The data format is a sequence of parenthesized tuples, one fact per line,
// tagged by a leading kind keyword and followed by positional fields:
//
//	; FAQ: question answer category concepts
//	(FAQ "What is a knowledge graph?" "A graph-structured knowledge base." "basics" "graph knowledge")
//	(Entity "gemini" "LanguageModel")
//	(Property "gemini" "vendor" "Google" "source: docs confidence: 0.9")
//	(Relationship "gemini" "used_by" "chatbot" "answer generation")
//	(Category "basics" "Root" "Introductory material")
//	(Synonym "metta" "MeTTa" 0.95)
//	(Context "gemini" "answer generation" 0.8)
//
// String fields are double-quoted with backslash escapes; confidence and
// weight fields are bare numbers. Lines starting with ';' are comments.
//
// # Schema Format
//
// A schema source declares aliases for the built-in fact kinds, so a data
// file can tag facts with domain vocabulary:
//
//	(alias Question FAQ)
//	(alias Concept Entity)
//
// # Errors
//
// Malformed input fails with a *ParseError carrying the line number. Parsing
// is all-or-nothing: no facts are returned on error.
//
// Facts can alternatively be authored as YAML (see ParseYAML), which maps the
// same record fields onto named keys.
package kbfile
