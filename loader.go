package faqgraph

import (
	"fmt"
	"io"
	"os"

	"github.com/soundprediction/faqgraph/pkg/kbfile"
)

// LoadKnowledgeBase parses a schema source (fact-kind alias declarations) and
// a data source (the fact list) and appends every fact to the store. A parse
// failure in either source aborts the load with a *kbfile.ParseError and
// nothing inserted.
func (c *Client) LoadKnowledgeBase(schema, data io.Reader) error {
	parsedSchema, err := kbfile.ParseSchema(schema)
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}
	facts, err := kbfile.Parse(data, parsedSchema)
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, fact := range facts {
		if err := c.store.Insert(fact); err != nil {
			return err
		}
	}
	c.logger.Info("knowledge base loaded", "facts", len(facts))
	return nil
}

// LoadKnowledgeBaseFiles is a convenience wrapper over LoadKnowledgeBase for
// on-disk sources.
func (c *Client) LoadKnowledgeBaseFiles(schemaPath, dataPath string) error {
	schema, err := os.Open(schemaPath)
	if err != nil {
		return fmt.Errorf("open schema: %w", err)
	}
	defer schema.Close()

	data, err := os.Open(dataPath)
	if err != nil {
		return fmt.Errorf("open data: %w", err)
	}
	defer data.Close()

	return c.LoadKnowledgeBase(schema, data)
}

// LoadYAML appends facts authored as a YAML document (see kbfile.ParseYAML).
func (c *Client) LoadYAML(data io.Reader) error {
	facts, err := kbfile.ParseYAML(data)
	if err != nil {
		return fmt.Errorf("load yaml: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, fact := range facts {
		if err := c.store.Insert(fact); err != nil {
			return err
		}
	}
	c.logger.Info("knowledge base loaded", "facts", len(facts))
	return nil
}
