package llm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/soundprediction/faqgraph/pkg/types"
)

const systemPrompt = `You are a domain-specific FAQ chatbot backed by a knowledge graph.
Answer from the CONTEXT INFORMATION when it is relevant; otherwise answer from
general knowledge and say so. Be accurate and concise.`

// BuildMessages assembles the chat request for a question: the system prompt,
// prior turns, and a user message carrying the formatted context bundle plus
// the question.
func BuildMessages(question string, items []types.ContextItem, history []Message) []Message {
	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: RoleSystem, Content: systemPrompt})
	messages = append(messages, history...)

	var b strings.Builder
	if contextStr := FormatContext(items); contextStr != "" {
		b.WriteString("CONTEXT INFORMATION:\n")
		b.WriteString(contextStr)
		b.WriteString("\n\n")
	}
	b.WriteString("USER QUESTION: ")
	b.WriteString(question)

	messages = append(messages, Message{Role: RoleUser, Content: b.String()})
	return messages
}

// FormatContext renders retrieved context items into the structured sections
// the prompt embeds: FAQs, entities, category hierarchies, then weighted
// contexts. Synonym items only steer retrieval and are not rendered.
func FormatContext(items []types.ContextItem) string {
	var sections []string

	var faqs []string
	for _, item := range items {
		if item.Kind != types.ContextKindFAQ {
			continue
		}
		faqs = append(faqs, fmt.Sprintf("Q: %s\nA: %s\nCategory: %s\nMatch Type: %s",
			item.FAQ.Question, item.FAQ.Answer, item.FAQ.Category, item.FAQ.MatchType))
	}
	if len(faqs) > 0 {
		sections = append(sections, "RELEVANT FAQs:\n"+strings.Join(faqs, "\n\n"))
	}

	var entities []string
	for _, item := range items {
		if item.Kind != types.ContextKindEntity {
			continue
		}
		entities = append(entities, formatEntity(item.Entity))
	}
	if len(entities) > 0 {
		sections = append(sections, "RELEVANT ENTITIES:\n"+strings.Join(entities, "\n\n"))
	}

	var hierarchies []string
	for _, item := range items {
		if item.Kind != types.ContextKindCategoryHierarchy {
			continue
		}
		h := item.CategoryHierarchy
		hierarchies = append(hierarchies, fmt.Sprintf("Category: %s\nParent: %s\nDescription: %s",
			h.Category, h.Parent, h.Description))
	}
	if len(hierarchies) > 0 {
		sections = append(sections, "CATEGORY HIERARCHIES:\n"+strings.Join(hierarchies, "\n"))
	}

	var weighted []string
	for _, item := range items {
		if item.Kind != types.ContextKindContextWeight {
			continue
		}
		weighted = append(weighted, fmt.Sprintf("- %s (Weight: %g)",
			item.ContextWeight.Context, item.ContextWeight.Weight))
	}
	if len(weighted) > 0 {
		sections = append(sections, "CONTEXTUAL RELATIONSHIPS:\n"+strings.Join(weighted, "\n"))
	}

	return strings.Join(sections, "\n\n")
}

func formatEntity(entity *types.EntityMatch) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Entity: %s (Type: %s)\n", entity.Name, entity.Type)

	b.WriteString("Properties:\n")
	keys := make([]string, 0, len(entity.Properties))
	for key := range entity.Properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		pv := entity.Properties[key]
		fmt.Fprintf(&b, "- %s: %s (Metadata: %s)\n", key, pv.Value, pv.Metadata)
	}

	b.WriteString("Relationships:")
	for _, rel := range entity.Relations {
		fmt.Fprintf(&b, "\n- %s (%s) Context: %s", rel.To, rel.Type, rel.Context)
	}
	return b.String()
}
