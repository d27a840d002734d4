// Package parser decodes structured (JSON) log lines into records.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/good-yellow-bee/logstat/internal/record"
)

// Common errors returned by the parser.
var (
	ErrInvalidFormat = errors.New("invalid log format")
	ErrEmptyLine     = errors.New("empty line")
)

// Parser decodes one JSON object per line into a record.Record.
type Parser struct {
	fields FieldMap
}

// New creates a parser. A zero-value FieldMap uses the default field names.
func New(fields FieldMap) *Parser {
	return &Parser{fields: fields.withDefaults()}
}

// Fields returns the effective field mapping.
func (p *Parser) Fields() FieldMap {
	return p.fields
}

// CanParse returns true if the line looks like a JSON object.
func (p *Parser) CanParse(line string) bool {
	line = strings.TrimSpace(line)
	return len(line) > 0 && line[0] == '{'
}

// Parse decodes a single log line. Returns ErrEmptyLine for blank input and
// ErrInvalidFormat (wrapped with the cause) when the line is not exactly one
// well-formed JSON object. Numbers are preserved as json.Number so status
// codes keep their literal text.
func (p *Parser) Parse(line string) (*record.Record, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, ErrEmptyLine
	}

	dec := json.NewDecoder(strings.NewReader(line))
	dec.UseNumber()

	var fields map[string]interface{}
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	// One object per line: anything after the decoded value is garbage.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after object", ErrInvalidFormat)
	}

	return &record.Record{Fields: fields}, nil
}
