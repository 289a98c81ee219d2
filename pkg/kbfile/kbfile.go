package kbfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/soundprediction/faqgraph/pkg/types"
)

// ParseError reports malformed knowledge-base input. It aborts loading; no
// partial fact list is ever returned alongside one.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("kbfile: line %d: %s", e.Line, e.Msg)
}

func errorf(line int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// Schema maps fact-kind tags (canonical names plus declared aliases) to kinds.
type Schema struct {
	aliases map[string]types.FactKind
}

// DefaultSchema returns a schema containing only the canonical kind names.
func DefaultSchema() *Schema {
	s := &Schema{aliases: make(map[string]types.FactKind, len(types.Kinds))}
	for _, k := range types.Kinds {
		s.aliases[string(k)] = k
	}
	return s
}

// Resolve maps a tag to its fact kind.
func (s *Schema) Resolve(tag string) (types.FactKind, bool) {
	k, ok := s.aliases[tag]
	return k, ok
}

// ParseSchema reads alias declarations of the form (alias <name> <kind>) and
// returns a schema extending the canonical kind names. Comment lines start
// with ';'.
func ParseSchema(r io.Reader) (*Schema, error) {
	schema := DefaultSchema()

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields, err := tokenizeLine(scanner.Text(), line)
		if err != nil {
			return nil, err
		}
		if fields == nil {
			continue
		}
		if len(fields) != 3 || fields[0] != "alias" {
			return nil, errorf(line, "expected (alias <name> <kind>), got %d fields", len(fields))
		}
		kind, ok := schema.aliases[fields[2]]
		if !ok {
			return nil, errorf(line, "unknown fact kind %q", fields[2])
		}
		schema.aliases[fields[1]] = kind
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("kbfile: read schema: %w", err)
	}
	return schema, nil
}

// Parse reads one fact tuple per line and returns the facts in file order.
// A nil schema means canonical kind names only.
func Parse(r io.Reader, schema *Schema) ([]types.Fact, error) {
	if schema == nil {
		schema = DefaultSchema()
	}

	var facts []types.Fact
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		fields, err := tokenizeLine(scanner.Text(), line)
		if err != nil {
			return nil, err
		}
		if fields == nil {
			continue
		}

		kind, ok := schema.Resolve(fields[0])
		if !ok {
			return nil, errorf(line, "unknown fact kind %q", fields[0])
		}
		fact, err := buildFact(kind, fields[1:], line)
		if err != nil {
			return nil, err
		}
		facts = append(facts, fact)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("kbfile: read data: %w", err)
	}
	return facts, nil
}

// buildFact constructs one fact record from positional fields, enforcing the
// per-kind field count.
func buildFact(kind types.FactKind, fields []string, line int) (types.Fact, error) {
	want := fieldCount(kind)
	if len(fields) != want {
		return nil, errorf(line, "%s takes %d fields, got %d", kind, want, len(fields))
	}

	switch kind {
	case types.KindFAQ:
		return &types.FAQ{Question: fields[0], Answer: fields[1], Category: fields[2], Concepts: fields[3]}, nil
	case types.KindEntity:
		return &types.Entity{Name: fields[0], Type: fields[1]}, nil
	case types.KindProperty:
		return &types.Property{EntityName: fields[0], Key: fields[1], Value: fields[2], Metadata: fields[3]}, nil
	case types.KindRelationship:
		return &types.Relationship{FromEntity: fields[0], RelationType: fields[1], ToEntity: fields[2], Context: fields[3]}, nil
	case types.KindCategory:
		return &types.Category{Name: fields[0], Parent: fields[1], Description: fields[2]}, nil
	case types.KindSynonym:
		conf, err := parseScore(fields[2], line, "confidence")
		if err != nil {
			return nil, err
		}
		return &types.Synonym{Term: fields[0], Equivalent: fields[1], Confidence: conf}, nil
	case types.KindContextWeight:
		weight, err := parseScore(fields[2], line, "weight")
		if err != nil {
			return nil, err
		}
		return &types.ContextWeight{EntityName: fields[0], ContextLabel: fields[1], Weight: weight}, nil
	default:
		panic("kbfile: unhandled fact kind " + string(kind))
	}
}

func fieldCount(kind types.FactKind) int {
	switch kind {
	case types.KindFAQ, types.KindProperty, types.KindRelationship:
		return 4
	case types.KindCategory, types.KindSynonym, types.KindContextWeight:
		return 3
	case types.KindEntity:
		return 2
	default:
		panic("kbfile: unhandled fact kind " + string(kind))
	}
}

func parseScore(field string, line int, name string) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, errorf(line, "invalid %s %q", name, field)
	}
	if v < 0 || v > 1 {
		return 0, errorf(line, "%s %v out of range [0, 1]", name, v)
	}
	return v, nil
}

// tokenizeLine splits one source line into its tuple fields. It returns nil
// fields for blank and comment lines.
func tokenizeLine(text string, line int) ([]string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.HasPrefix(trimmed, ";") {
		return nil, nil
	}
	if !strings.HasPrefix(trimmed, "(") || !strings.HasSuffix(trimmed, ")") {
		return nil, errorf(line, "expected parenthesized tuple")
	}
	body := trimmed[1 : len(trimmed)-1]

	var fields []string
	for i := 0; i < len(body); {
		switch {
		case body[i] == ' ' || body[i] == '\t':
			i++
		case body[i] == '"':
			value, rest, err := scanString(body[i:], line)
			if err != nil {
				return nil, err
			}
			fields = append(fields, value)
			i = len(body) - len(rest)
		case body[i] == '(' || body[i] == ')':
			return nil, errorf(line, "nested tuples are not supported")
		default:
			// A quote ends the atom so the string scanner sees it; a stray
			// quote then fails as an unterminated string.
			j := i
			for j < len(body) && body[j] != ' ' && body[j] != '\t' && body[j] != '(' && body[j] != ')' && body[j] != '"' {
				j++
			}
			fields = append(fields, body[i:j])
			i = j
		}
	}
	if len(fields) == 0 {
		return nil, errorf(line, "empty tuple")
	}
	return fields, nil
}

// scanString consumes a double-quoted string with backslash escapes and
// returns its value plus the unconsumed remainder.
func scanString(s string, line int) (string, string, error) {
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 >= len(s) {
				return "", "", errorf(line, "unterminated escape")
			}
			i++
			switch s[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(s[i])
			}
		case '"':
			return b.String(), s[i+1:], nil
		default:
			b.WriteByte(s[i])
		}
	}
	return "", "", errorf(line, "unterminated string")
}
