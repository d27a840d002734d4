package record

import (
	"encoding/json"
	"testing"
)

func TestRecord_ResponseTime(t *testing.T) {
	tests := []struct {
		name        string
		value       interface{}
		absent      bool
		want        float64
		wantPresent bool
		wantErr     bool
	}{
		{
			name:        "integer value",
			value:       json.Number("100"),
			want:        100,
			wantPresent: true,
		},
		{
			name:        "float value",
			value:       json.Number("12.5"),
			want:        12.5,
			wantPresent: true,
		},
		{
			name:   "absent",
			absent: true,
		},
		{
			name:        "string value",
			value:       "fast",
			wantPresent: true,
			wantErr:     true,
		},
		{
			name:        "boolean value",
			value:       true,
			wantPresent: true,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := New()
			if !tt.absent {
				rec.Fields[FieldResponseTime] = tt.value
			}

			got, present, err := rec.ResponseTime(FieldResponseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResponseTime() error = %v, wantErr %v", err, tt.wantErr)
			}
			if present != tt.wantPresent {
				t.Errorf("ResponseTime() present = %v, want %v", present, tt.wantPresent)
			}
			if err == nil && got != tt.want {
				t.Errorf("ResponseTime() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecord_Status(t *testing.T) {
	tests := []struct {
		name        string
		value       interface{}
		absent      bool
		want        string
		wantPresent bool
	}{
		{
			name:        "numeric status keeps literal text",
			value:       json.Number("200"),
			want:        "200",
			wantPresent: true,
		},
		{
			name:        "string status",
			value:       "404",
			want:        "404",
			wantPresent: true,
		},
		{
			name:        "non-numeric non-string",
			value:       true,
			want:        "true",
			wantPresent: true,
		},
		{
			name:   "absent",
			absent: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := New()
			if !tt.absent {
				rec.Fields[FieldStatus] = tt.value
			}

			got, present := rec.Status(FieldStatus)
			if present != tt.wantPresent {
				t.Errorf("Status() present = %v, want %v", present, tt.wantPresent)
			}
			if got != tt.want {
				t.Errorf("Status() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecord_Hour(t *testing.T) {
	tests := []struct {
		name        string
		value       interface{}
		absent      bool
		want        int
		wantPresent bool
		wantErr     bool
	}{
		{
			name:        "morning hour",
			value:       "2024-01-01T10:00:00Z",
			want:        10,
			wantPresent: true,
		},
		{
			name:        "midnight",
			value:       "2024-01-01T00:00:00Z",
			want:        0,
			wantPresent: true,
		},
		{
			name:        "last hour of day",
			value:       "2024-01-01T23:59:59Z",
			want:        23,
			wantPresent: true,
		},
		{
			name:   "absent",
			absent: true,
		},
		{
			name:        "too short",
			value:       "2024-01-01",
			wantPresent: true,
			wantErr:     true,
		},
		{
			name:        "non-numeric hour",
			value:       "2024-01-01Txx:00:00Z",
			wantPresent: true,
			wantErr:     true,
		},
		{
			name:        "hour out of range",
			value:       "2024-01-01T25:00:00Z",
			wantPresent: true,
			wantErr:     true,
		},
		{
			name:        "not a string",
			value:       json.Number("1704103200"),
			wantPresent: true,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := New()
			if !tt.absent {
				rec.Fields[FieldTimestamp] = tt.value
			}

			got, present, err := rec.Hour(FieldTimestamp)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Hour() error = %v, wantErr %v", err, tt.wantErr)
			}
			if present != tt.wantPresent {
				t.Errorf("Hour() present = %v, want %v", present, tt.wantPresent)
			}
			if err == nil && got != tt.want {
				t.Errorf("Hour() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFieldError_Error(t *testing.T) {
	err := &FieldError{Field: "response_time_ms", Cause: "expected number, got string"}
	want := `field "response_time_ms": expected number, got string`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
