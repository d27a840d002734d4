package analyzer

import "math"

// Stats is the running accumulator for one analysis pass. It is owned by a
// single run and never shared, so it needs no locking.
type Stats struct {
	TotalRequests    int64            `json:"total_requests"`
	ResponseTimeSum  float64          `json:"response_time_sum"`
	StatusCodeCounts map[string]int64 `json:"status_code_counts"`
	HourlyRequests   map[int]int64    `json:"hourly_requests"`
	MalformedLines   int64            `json:"malformed_lines"`
}

// NewStats creates a Stats with initialized maps.
func NewStats() *Stats {
	return &Stats{
		StatusCodeCounts: make(map[string]int64),
		HourlyRequests:   make(map[int]int64),
	}
}

// Merge adds the counters of other into s. Counters and maps are
// commutative, so merging per-file accumulators in any order yields the
// same totals.
func (s *Stats) Merge(other *Stats) {
	if other == nil {
		return
	}

	s.TotalRequests += other.TotalRequests
	s.ResponseTimeSum += other.ResponseTimeSum
	s.MalformedLines += other.MalformedLines

	for code, count := range other.StatusCodeCounts {
		s.StatusCodeCounts[code] += count
	}
	for hour, count := range other.HourlyRequests {
		s.HourlyRequests[hour] += count
	}
}

// Result is the finalized analysis output.
type Result struct {
	TotalRequests int64 `json:"total_requests"`

	// AverageResponseTimeMs is the arithmetic mean of all response times,
	// rounded half away from zero to 2 decimal places. Zero when no
	// requests were counted.
	AverageResponseTimeMs float64 `json:"average_response_time_ms"`

	StatusCodeCounts map[string]int64 `json:"status_code_counts"`

	// BusiestHour is the hour-of-day (0-23) with the most requests, nil
	// when no record carried a timestamp. Ties break to the lowest hour.
	BusiestHour *int `json:"busiest_hour"`
}

// Result finalizes the accumulator into an immutable Result.
func (s *Stats) Result() *Result {
	res := &Result{
		TotalRequests:    s.TotalRequests,
		StatusCodeCounts: s.StatusCodeCounts,
	}
	if res.StatusCodeCounts == nil {
		res.StatusCodeCounts = make(map[string]int64)
	}

	if s.TotalRequests > 0 {
		avg := s.ResponseTimeSum / float64(s.TotalRequests)
		res.AverageResponseTimeMs = math.Round(avg*100) / 100
	}

	// Scan hours in ascending order so ties break deterministically.
	var best int64
	for hour := 0; hour < 24; hour++ {
		count, ok := s.HourlyRequests[hour]
		if !ok || count <= best {
			continue
		}
		best = count
		h := hour
		res.BusiestHour = &h
	}

	return res
}
