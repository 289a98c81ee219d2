package kbfile

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/soundprediction/faqgraph/pkg/types"
)

// yamlDocument is the YAML rendering of a fact list: one named sequence per
// kind. All sequences are optional.
type yamlDocument struct {
	FAQs          []*types.FAQ           `yaml:"faqs"`
	Entities      []*types.Entity        `yaml:"entities"`
	Properties    []*types.Property      `yaml:"properties"`
	Relationships []*types.Relationship  `yaml:"relationships"`
	Categories    []*types.Category      `yaml:"categories"`
	Synonyms      []*types.Synonym       `yaml:"synonyms"`
	Contexts      []*types.ContextWeight `yaml:"contexts"`
}

// ParseYAML reads a YAML fact document and returns the facts grouped by kind
// in declaration order (FAQs first, then entities, and so on). Score ranges
// are validated the same way as in the tuple format.
func ParseYAML(r io.Reader) ([]types.Fact, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("kbfile: read yaml: %w", err)
	}

	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Line: 0, Msg: err.Error()}
	}

	var facts []types.Fact
	for _, f := range doc.FAQs {
		facts = append(facts, f)
	}
	for _, e := range doc.Entities {
		facts = append(facts, e)
	}
	for _, p := range doc.Properties {
		facts = append(facts, p)
	}
	for _, rel := range doc.Relationships {
		facts = append(facts, rel)
	}
	for _, c := range doc.Categories {
		facts = append(facts, c)
	}
	for _, s := range doc.Synonyms {
		if s.Confidence < 0 || s.Confidence > 1 {
			return nil, &ParseError{Msg: fmt.Sprintf("synonym %q: confidence %v out of range [0, 1]", s.Term, s.Confidence)}
		}
		facts = append(facts, s)
	}
	for _, c := range doc.Contexts {
		if c.Weight < 0 || c.Weight > 1 {
			return nil, &ParseError{Msg: fmt.Sprintf("context %q: weight %v out of range [0, 1]", c.EntityName, c.Weight)}
		}
		facts = append(facts, c)
	}
	return facts, nil
}
