package faqgraph

import (
	"github.com/soundprediction/faqgraph/pkg/terms"
	"github.com/soundprediction/faqgraph/pkg/types"
)

// QueryContext runs the five retrieval strategies for a question and returns
// their outputs concatenated in pass order:
//
//  1. FAQ matcher (keyword overlap, then category-name matches)
//  2. Entity matcher
//  3. Synonym matcher, each equivalent expanded into entity matches
//  4. Category-hierarchy walk over the categories surfaced by passes 1-3
//  5. Weighted-context lookup
//
// Within a pass, results follow store insertion order. Nothing is deduplicated
// across passes: a fact reachable through two strategies appears twice. The
// result is deterministic for an unchanged store.
func (c *Client) QueryContext(question string) []types.ContextItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	questionTerms := terms.Extract(question)

	var items []types.ContextItem
	items = append(items, c.queryFAQs(question, questionTerms)...)
	items = append(items, c.queryEntities(questionTerms)...)
	items = append(items, c.querySynonyms(questionTerms)...)

	for _, category := range extractCategories(items) {
		if hierarchy, ok := c.queryCategoryHierarchy(category); ok {
			items = append(items, types.ContextItem{
				Kind:              types.ContextKindCategoryHierarchy,
				CategoryHierarchy: hierarchy,
			})
		}
	}

	items = append(items, c.queryContextWeights(questionTerms)...)

	c.logger.Debug("assembled question context",
		"terms", len(questionTerms), "items", len(items))
	return items
}

// queryFAQs surfaces FAQs by keyword overlap against the stored question or
// answer, then FAQs whose category exactly equals an extracted term. The
// category comparison is case-sensitive, so only lower-case category names
// are reachable this way.
func (c *Client) queryFAQs(question string, questionTerms []string) []types.ContextItem {
	var items []types.ContextItem

	for _, faq := range c.store.FAQs() {
		if terms.IsRelevant(question, faq.Question) || terms.IsRelevant(question, faq.Answer) {
			items = append(items, types.ContextItem{
				Kind: types.ContextKindFAQ,
				FAQ: &types.FAQMatch{
					Question:  faq.Question,
					Answer:    faq.Answer,
					Category:  faq.Category,
					MatchType: types.MatchDirect,
				},
			})
		}
	}

	for _, term := range questionTerms {
		for _, faq := range c.store.FAQsByCategory(term) {
			items = append(items, types.ContextItem{
				Kind: types.ContextKindFAQ,
				FAQ: &types.FAQMatch{
					Question:  faq.Question,
					Answer:    faq.Answer,
					Category:  faq.Category,
					MatchType: types.MatchCategory,
				},
			})
		}
	}

	return items
}

// queryEntities matches extracted terms against entity names exactly. Stored
// names keep their original casing while terms are lower-cased, so
// mixed-case entities are only reachable through a synonym (see
// querySynonyms).
func (c *Client) queryEntities(questionTerms []string) []types.ContextItem {
	var items []types.ContextItem
	for _, term := range questionTerms {
		items = append(items, c.entityMatches(term)...)
	}
	return items
}

// entityMatches bundles every entity record with the given name together with
// its properties and outgoing relationships.
func (c *Client) entityMatches(name string) []types.ContextItem {
	var items []types.ContextItem
	for _, entity := range c.store.EntitiesByName(name) {
		properties := make(map[string]types.PropertyValue)
		for _, p := range c.store.PropertiesFor(entity.Name) {
			properties[p.Key] = types.PropertyValue{Value: p.Value, Metadata: p.Metadata}
		}

		relations := make([]types.Relation, 0)
		for _, r := range c.store.RelationshipsFrom(entity.Name) {
			relations = append(relations, types.Relation{
				To:      r.ToEntity,
				Type:    r.RelationType,
				Context: r.Context,
			})
		}

		items = append(items, types.ContextItem{
			Kind: types.ContextKindEntity,
			Entity: &types.EntityMatch{
				Name:       entity.Name,
				Type:       entity.Type,
				Properties: properties,
				Relations:  relations,
			},
		})
	}
	return items
}

// querySynonyms matches extracted terms against synonym terms exactly and
// emits one synonym item per hit, immediately followed by the entity matches
// for the equivalent. The equivalent is resolved against entity names as
// stored, without re-extraction, which is what keeps mixed-case entities
// reachable from lower-case question terms.
func (c *Client) querySynonyms(questionTerms []string) []types.ContextItem {
	var items []types.ContextItem
	for _, term := range questionTerms {
		for _, syn := range c.store.SynonymsFor(term) {
			items = append(items, types.ContextItem{
				Kind: types.ContextKindSynonym,
				Synonym: &types.SynonymMatch{
					Term:       syn.Equivalent,
					Confidence: syn.Confidence,
				},
			})
			items = append(items, c.entityMatches(syn.Equivalent)...)
		}
	}
	return items
}

// queryCategoryHierarchy looks up the single category record for a name and
// returns its immediate parent. One level only; it never recurses, so the
// unchecked parent chain cannot loop here.
func (c *Client) queryCategoryHierarchy(category string) (*types.CategoryHierarchy, bool) {
	record, ok := c.store.CategoryByName(category)
	if !ok {
		return nil, false
	}
	return &types.CategoryHierarchy{
		Category:    category,
		Parent:      record.Parent,
		Description: record.Description,
	}, true
}

// queryContextWeights matches extracted terms against weighted-context entity
// names exactly.
func (c *Client) queryContextWeights(questionTerms []string) []types.ContextItem {
	var items []types.ContextItem
	for _, term := range questionTerms {
		for _, cw := range c.store.ContextWeightsFor(term) {
			items = append(items, types.ContextItem{
				Kind: types.ContextKindContextWeight,
				ContextWeight: &types.WeightedContext{
					Context: cw.ContextLabel,
					Weight:  cw.Weight,
				},
			})
		}
	}
	return items
}

// extractCategories pulls the unique set of categories referenced by already
// assembled items: the category of faq items and the type of entity items,
// in first-seen order.
func extractCategories(items []types.ContextItem) []string {
	var categories []string
	seen := make(map[string]struct{})
	for _, item := range items {
		var category string
		switch item.Kind {
		case types.ContextKindFAQ:
			category = item.FAQ.Category
		case types.ContextKindEntity:
			category = item.Entity.Type
		default:
			continue
		}
		if category == "" {
			continue
		}
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		categories = append(categories, category)
	}
	return categories
}
