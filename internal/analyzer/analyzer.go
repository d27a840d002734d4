// Package analyzer implements the single-pass log aggregation run.
package analyzer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/good-yellow-bee/logstat/internal/parser"
)

// Fatal error kinds. Per-line problems never surface here; they are
// reported on the diagnostics writer and the run continues.
var (
	// ErrSourceUnavailable means the input could not be opened at all.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrIOFailure means reading an already-open source failed.
	ErrIOFailure = errors.New("read failure")
)

// Options configures an analysis run.
type Options struct {
	// Fields remaps the recognized record keys. Zero value uses defaults.
	Fields parser.FieldMap
	// Diagnostics receives one line per malformed-line event. Defaults to
	// os.Stderr.
	Diagnostics io.Writer
}

// Analyzer folds structured log lines into aggregate statistics.
type Analyzer struct {
	parser *parser.Parser
	diag   io.Writer
}

// New creates an analyzer.
func New(opts *Options) *Analyzer {
	if opts == nil {
		opts = &Options{}
	}
	diag := opts.Diagnostics
	if diag == nil {
		diag = os.Stderr
	}

	return &Analyzer{
		parser: parser.New(opts.Fields),
		diag:   diag,
	}
}

// AnalyzeFile runs a single pass over the file at path. The file is closed
// on every exit path. Returns ErrSourceUnavailable if the file cannot be
// opened and ErrIOFailure if reading it fails; no partial result is
// produced in either case.
func (a *Analyzer) AnalyzeFile(path string) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer file.Close()

	return a.AnalyzeReader(file)
}

// AnalyzeReader runs a single pass over r. Any line-producing stream
// satisfies the contract; an empty stream yields a zero-request result.
func (a *Analyzer) AnalyzeReader(r io.Reader) (*Result, error) {
	stats, err := a.Accumulate(r)
	if err != nil {
		return nil, err
	}
	return stats.Result(), nil
}

// Accumulate folds r into a fresh accumulator without finalizing it, so
// callers analyzing several sources can Merge the pieces themselves.
func (a *Analyzer) Accumulate(r io.Reader) (*Stats, error) {
	stats := NewStats()

	// bufio.Reader rather than Scanner: lines carry no fixed length cap,
	// so one over-long line cannot abort the run.
	reader := bufio.NewReaderSize(r, 64*1024)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
		}
		if line != "" {
			a.foldLine(strings.TrimRight(line, "\r\n"), stats)
		}
		if err != nil {
			return stats, nil
		}
	}
}

// foldLine applies one raw line to the accumulator. A decoded record always
// increments TotalRequests before its fields are examined; the first field
// error stops processing of that line but keeps the effects already
// applied. Blank lines are skipped silently.
func (a *Analyzer) foldLine(line string, stats *Stats) {
	rec, err := a.parser.Parse(line)
	if err != nil {
		if errors.Is(err, parser.ErrEmptyLine) {
			return
		}
		stats.MalformedLines++
		fmt.Fprintf(a.diag, "skipping malformed log line: %s | %v\n", line, err)
		return
	}

	stats.TotalRequests++

	fields := a.parser.Fields()

	if ms, present, err := rec.ResponseTime(fields.ResponseTime); err != nil {
		stats.MalformedLines++
		fmt.Fprintf(a.diag, "skipping malformed log line: %s | %v\n", line, err)
		return
	} else if present {
		stats.ResponseTimeSum += ms
	}

	if code, present := rec.Status(fields.Status); present {
		stats.StatusCodeCounts[code]++
	}

	if hour, present, err := rec.Hour(fields.Timestamp); err != nil {
		stats.MalformedLines++
		fmt.Fprintf(a.diag, "skipping malformed log line: %s | %v\n", line, err)
		return
	} else if present {
		stats.HourlyRequests[hour]++
	}
}
