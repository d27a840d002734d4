package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/good-yellow-bee/logstat/internal/record"
	"gopkg.in/yaml.v3"
)

// FieldMap names the record keys carrying each recognized metric. Empty
// entries fall back to the default field names.
type FieldMap struct {
	// ResponseTime is the key holding the response latency in milliseconds.
	ResponseTime string `yaml:"response_time,omitempty"`
	// Status is the key holding the HTTP status code.
	Status string `yaml:"http_status,omitempty"`
	// Timestamp is the key holding the YYYY-MM-DDTHH:MM:SSZ timestamp.
	Timestamp string `yaml:"timestamp,omitempty"`
}

// DefaultFieldMap returns the standard field names.
func DefaultFieldMap() FieldMap {
	return FieldMap{
		ResponseTime: record.FieldResponseTime,
		Status:       record.FieldStatus,
		Timestamp:    record.FieldTimestamp,
	}
}

func (m FieldMap) withDefaults() FieldMap {
	def := DefaultFieldMap()
	if m.ResponseTime == "" {
		m.ResponseTime = def.ResponseTime
	}
	if m.Status == "" {
		m.Status = def.Status
	}
	if m.Timestamp == "" {
		m.Timestamp = def.Timestamp
	}
	return m
}

// LoadFieldMap reads a field mapping from a YAML file. Unknown keys are
// rejected so typos don't silently fall back to defaults.
func LoadFieldMap(path string) (FieldMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FieldMap{}, fmt.Errorf("read field map: %w", err)
	}

	var m FieldMap
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return FieldMap{}, fmt.Errorf("parse field map %q: %w", path, err)
	}

	return m.withDefaults(), nil
}
