// Package record contains the core data structures for logstat.
package record

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Well-known field names in a structured log record.
const (
	FieldResponseTime = "response_time_ms"
	FieldStatus       = "http_status"
	FieldTimestamp    = "timestamp"
)

// FieldError reports a recognized field whose value could not be used.
type FieldError struct {
	Field string
	Cause string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Cause)
}

// Record is a single decoded log entry. Values come straight from the JSON
// decoder with numbers preserved as json.Number.
type Record struct {
	// Fields contains the decoded key/value pairs of the line.
	Fields map[string]interface{}
}

// New creates a Record with an initialized field map.
func New() *Record {
	return &Record{Fields: make(map[string]interface{})}
}

// Get retrieves a raw field value.
func (r *Record) Get(key string) (interface{}, bool) {
	if r.Fields == nil {
		return nil, false
	}
	val, ok := r.Fields[key]
	return val, ok
}

// ResponseTime returns the response time value under key.
// The second result reports presence; a present non-numeric value yields
// a FieldError.
func (r *Record) ResponseTime(key string) (float64, bool, error) {
	val, ok := r.Get(key)
	if !ok {
		return 0, false, nil
	}

	num, ok := val.(json.Number)
	if !ok {
		return 0, true, &FieldError{Field: key, Cause: fmt.Sprintf("expected number, got %T", val)}
	}

	f, err := num.Float64()
	if err != nil {
		return 0, true, &FieldError{Field: key, Cause: err.Error()}
	}

	return f, true, nil
}

// Status returns the canonical string form of the status value under key.
// Numbers keep their literal JSON text, strings pass through, anything else
// is rendered with fmt.Sprint.
func (r *Record) Status(key string) (string, bool) {
	val, ok := r.Get(key)
	if !ok {
		return "", false
	}

	switch v := val.(type) {
	case json.Number:
		return v.String(), true
	case string:
		return v, true
	default:
		return fmt.Sprint(v), true
	}
}

// Hour extracts the hour-of-day from the fixed-form timestamp under key.
// The timestamp lexical form is YYYY-MM-DDTHH:MM:SSZ; the hour is the
// two-character substring at offset 11. Out-of-range and non-numeric hours
// are FieldErrors.
func (r *Record) Hour(key string) (int, bool, error) {
	val, ok := r.Get(key)
	if !ok {
		return 0, false, nil
	}

	ts, ok := val.(string)
	if !ok {
		return 0, true, &FieldError{Field: key, Cause: fmt.Sprintf("expected string, got %T", val)}
	}

	if len(ts) < 13 {
		return 0, true, &FieldError{Field: key, Cause: fmt.Sprintf("timestamp %q too short", ts)}
	}

	hour, err := strconv.Atoi(ts[11:13])
	if err != nil {
		return 0, true, &FieldError{Field: key, Cause: fmt.Sprintf("invalid hour in %q", ts)}
	}
	if hour < 0 || hour > 23 {
		return 0, true, &FieldError{Field: key, Cause: fmt.Sprintf("hour %d out of range", hour)}
	}

	return hour, true, nil
}
