// Package jsonpath provides a minimal JSONPath implementation for selecting
// and replacing nodes in untyped document trees.
//
// This package implements the subset of RFC 9535 JSONPath that oasnorm needs
// for scoping and exclusion: path navigation, wildcards, and array indices.
//
// Supported syntax:
//   - $ (root)
//   - .field or ['field'] (child access)
//   - .* or [*] (wildcard - all children)
//   - [0] (array index, negative indices count from the end)
//
// Not supported (planned for future):
//   - .. (recursive descent)
//   - [start:end:step] (array slicing)
//   - [?expr] (filter expressions)
package jsonpath

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Path represents a parsed JSONPath expression.
type Path struct {
	raw      string
	segments []segment
}

// String returns the original JSONPath expression.
func (p *Path) String() string {
	return p.raw
}

// IsRoot reports whether the expression selects only the document root ($).
func (p *Path) IsRoot() bool {
	return len(p.segments) == 0
}

// segment is a single selector in a parsed expression. The root marker is
// implicit and not stored.
type segment interface {
	// matches reports whether this selector admits the given concrete step.
	matches(s Step) bool
}

// childSegment selects a mapping child by key (.field or ['field']).
type childSegment struct {
	key string
}

func (c childSegment) matches(s Step) bool { return !s.IsIndex && s.Key == c.key }

// indexSegment selects a sequence element by index ([n]).
type indexSegment struct {
	index int
}

func (i indexSegment) matches(s Step) bool { return s.IsIndex && s.Index == i.index }

// wildcardSegment selects all children (.* or [*]).
type wildcardSegment struct{}

func (wildcardSegment) matches(Step) bool { return true }

// Parse parses a JSONPath expression string into a Path.
//
// Examples:
//
//	Parse("$")                          // Document root
//	Parse("$.components.responses")     // Navigate to nested object
//	Parse("$.paths['/users'].get")      // Bracketed key with special chars
//	Parse("$.servers[0]")               // Array index
//	Parse("$.paths.*")                  // All children
func Parse(expr string) (*Path, error) {
	if expr == "" {
		return nil, fmt.Errorf("jsonpath: empty expression")
	}

	p := &parser{input: expr}
	segments, err := p.parse()
	if err != nil {
		return nil, err
	}

	return &Path{raw: expr, segments: segments}, nil
}

// parser is the internal JSONPath parser.
type parser struct {
	input string
	pos   int
}

func (p *parser) parse() ([]segment, error) {
	if !p.consume('$') {
		return nil, fmt.Errorf("jsonpath: expression must start with '$'")
	}

	var segments []segment
	for p.pos < len(p.input) {
		switch ch := p.peek(); ch {
		case '.':
			p.advance()
			seg, err := p.parseDotSegment()
			if err != nil {
				return nil, err
			}
			segments = append(segments, seg)

		case '[':
			p.advance()
			seg, err := p.parseBracketSegment()
			if err != nil {
				return nil, err
			}
			segments = append(segments, seg)

		default:
			return nil, fmt.Errorf("jsonpath: unexpected character %q at position %d", ch, p.pos)
		}
	}

	return segments, nil
}

func (p *parser) parseDotSegment() (segment, error) {
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("jsonpath: unexpected end after '.'")
	}

	if p.peek() == '*' {
		p.advance()
		return wildcardSegment{}, nil
	}

	key := p.parseIdentifier()
	if key == "" {
		return nil, fmt.Errorf("jsonpath: expected identifier after '.' at position %d", p.pos)
	}
	return childSegment{key: key}, nil
}

func (p *parser) parseBracketSegment() (segment, error) {
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("jsonpath: unexpected end after '['")
	}

	ch := p.peek()

	// Wildcard: [*]
	if ch == '*' {
		p.advance()
		if !p.consume(']') {
			return nil, fmt.Errorf("jsonpath: expected ']' after '[*'")
		}
		return wildcardSegment{}, nil
	}

	// Quoted string: ['key'] or ["key"]
	if ch == '\'' || ch == '"' {
		quote := ch
		p.advance()
		key, err := p.parseQuotedString(quote)
		if err != nil {
			return nil, err
		}
		if !p.consume(']') {
			return nil, fmt.Errorf("jsonpath: expected ']' after quoted key")
		}
		return childSegment{key: key}, nil
	}

	// Numeric index
	if unicode.IsDigit(rune(ch)) || ch == '-' {
		numStr := p.parseNumber()
		if !p.consume(']') {
			return nil, fmt.Errorf("jsonpath: expected ']' after index")
		}
		idx, err := strconv.Atoi(numStr)
		if err != nil {
			return nil, fmt.Errorf("jsonpath: invalid index %q: %w", numStr, err)
		}
		return indexSegment{index: idx}, nil
	}

	return nil, fmt.Errorf("jsonpath: unexpected character %q in bracket at position %d", ch, p.pos)
}

func (p *parser) parseIdentifier() string {
	start := p.pos
	for p.pos < len(p.input) && isIdentChar(p.input[p.pos]) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *parser) parseQuotedString(quote byte) (string, error) {
	var result strings.Builder
	for p.pos < len(p.input) {
		ch := p.input[p.pos]
		if ch == quote {
			p.pos++
			return result.String(), nil
		}
		if ch == '\\' && p.pos+1 < len(p.input) {
			p.pos++
			escaped := p.input[p.pos]
			switch escaped {
			case 'n':
				result.WriteByte('\n')
			case 't':
				result.WriteByte('\t')
			default:
				result.WriteByte(escaped)
			}
			p.pos++
			continue
		}
		result.WriteByte(ch)
		p.pos++
	}
	return "", fmt.Errorf("jsonpath: unterminated string at position %d", p.pos)
}

func (p *parser) parseNumber() string {
	start := p.pos
	if p.pos < len(p.input) && p.input[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.input) && unicode.IsDigit(rune(p.input[p.pos])) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) advance() {
	if p.pos < len(p.input) {
		p.pos++
	}
}

func (p *parser) consume(ch byte) bool {
	if p.peek() == ch {
		p.advance()
		return true
	}
	return false
}

func isIdentChar(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') ||
		ch == '_' || ch == '-' || ch == '$'
}
