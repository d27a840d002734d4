package cmd

import "testing"

func TestFormatHour(t *testing.T) {
	tests := []struct {
		name string
		hour *int
		want string
	}{
		{"absent", nil, "n/a"},
		{"single digit padded", intPtr(7), "07:00"},
		{"double digit", intPtr(23), "23:00"},
		{"midnight", intPtr(0), "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatHour(tt.hour); got != tt.want {
				t.Errorf("formatHour() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int64{"500": 1, "200": 10, "404": 3}
	got := sortedKeys(m)

	want := []string{"200", "404", "500"}
	for i, k := range want {
		if got[i] != k {
			t.Fatalf("sortedKeys() = %v, want %v", got, want)
		}
	}
}

func intPtr(v int) *int {
	return &v
}
