package faqgraph

import (
	"sort"

	"github.com/soundprediction/faqgraph/pkg/types"
)

// AddFAQ appends a FAQ record. Concepts is a space-separated tag string and
// may be empty. An empty question, answer or category fails with a
// *types.ValidationError and leaves the store unchanged.
func (c *Client) AddFAQ(question, answer, category, concepts string) error {
	faq := &types.FAQ{
		Question: question,
		Answer:   answer,
		Category: category,
		Concepts: concepts,
	}
	if err := faq.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.Insert(faq); err != nil {
		return err
	}
	c.logger.Debug("added faq", "category", category)
	return nil
}

// AddEntity appends an entity record, then one property record per entry in
// properties. Property metadata is caller-supplied free text and is not
// validated. Everything is validated up front so a bad property leaves the
// store unchanged. It is legal to add an entity whose name duplicates an
// existing one.
func (c *Client) AddEntity(name, entityType string, properties map[string]types.PropertyValue) error {
	entity := &types.Entity{Name: name, Type: entityType}
	if err := entity.Validate(); err != nil {
		return err
	}

	// Sort keys so repeated calls produce the same insertion order.
	keys := make([]string, 0, len(properties))
	for key := range properties {
		if key == "" {
			return &types.ValidationError{Kind: types.KindProperty, Field: "key"}
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.Insert(entity); err != nil {
		return err
	}
	for _, key := range keys {
		pv := properties[key]
		err := c.store.Insert(&types.Property{
			EntityName: name,
			Key:        key,
			Value:      pv.Value,
			Metadata:   pv.Metadata,
		})
		if err != nil {
			return err
		}
	}
	c.logger.Debug("added entity", "name", name, "type", entityType, "properties", len(keys))
	return nil
}

// AddRelationship appends a directed relationship record. Context may be
// empty. Neither endpoint is checked for existence; dangling names are legal
// and resolve to nothing at query time.
func (c *Client) AddRelationship(from, relationType, to, context string) error {
	rel := &types.Relationship{
		FromEntity:   from,
		RelationType: relationType,
		ToEntity:     to,
		Context:      context,
	}
	if err := rel.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.Insert(rel); err != nil {
		return err
	}
	c.logger.Debug("added relationship", "from", from, "type", relationType, "to", to)
	return nil
}
