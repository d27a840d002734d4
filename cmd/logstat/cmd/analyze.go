package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/good-yellow-bee/logstat/internal/analyzer"
	"github.com/good-yellow-bee/logstat/internal/parser"
	"github.com/spf13/cobra"
)

var analyzeFields string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Compute aggregate statistics for a log file",
	Long: `Analyze a newline-delimited JSON access log in a single pass.

Each non-empty line is decoded as a JSON object with optional fields
response_time_ms, http_status and timestamp (YYYY-MM-DDTHH:MM:SSZ).
Malformed lines are reported on stderr and skipped; the run only fails
when the file cannot be opened or read.

Examples:
  # JSON statistics on stdout
  logstat analyze /var/log/app/access.log

  # Human-readable summary with hourly breakdown
  logstat analyze /var/log/app/access.log -o table

  # Remap field names for a different log schema
  logstat analyze access.log --fields fields.yaml`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeFields, "fields", "", "YAML file remapping the recognized field names")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	opts := &analyzer.Options{Diagnostics: os.Stderr}

	if analyzeFields != "" {
		fields, err := parser.LoadFieldMap(analyzeFields)
		if err != nil {
			return fmt.Errorf("invalid --fields: %w", err)
		}
		opts.Fields = fields
	}

	a := analyzer.New(opts)

	PrintVerbose("Analyzing %s...", args[0])

	result, err := a.AnalyzeFile(args[0])
	if err != nil {
		return err
	}

	outputResult(result)
	return nil
}

func outputResult(result *analyzer.Result) {
	switch GetOutput() {
	case "table":
		outputResultTable(result)
	case "plain":
		outputResultPlain(result)
	default:
		outputResultJSON(result)
	}
}

func outputResultJSON(result *analyzer.Result) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func outputResultPlain(result *analyzer.Result) {
	fmt.Printf("Requests: %d | Avg Response: %.2f ms | Busiest Hour: %s\n",
		result.TotalRequests, result.AverageResponseTimeMs, formatHour(result.BusiestHour))
}

func outputResultTable(result *analyzer.Result) {
	fmt.Println()
	fmt.Println("Log Analysis Report")
	fmt.Println("===================")
	fmt.Printf("Total Requests:    %d\n", result.TotalRequests)
	fmt.Printf("Avg Response Time: %.2f ms\n", result.AverageResponseTimeMs)
	fmt.Printf("Busiest Hour:      %s\n", formatHour(result.BusiestHour))
	fmt.Println()

	if len(result.StatusCodeCounts) > 0 {
		fmt.Println("By Status Code:")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  STATUS\tCOUNT\t%%\n")
		fmt.Fprintf(w, "  ------\t-----\t-\n")

		// Sort codes for consistent output
		codes := sortedKeys(result.StatusCodeCounts)
		for _, code := range codes {
			count := result.StatusCodeCounts[code]
			pct := float64(count) / float64(result.TotalRequests) * 100
			fmt.Fprintf(w, "  %s\t%d\t%.1f%%\n", code, count, pct)
		}
		w.Flush()
		fmt.Println()
	}
}

func formatHour(hour *int) string {
	if hour == nil {
		return "n/a"
	}
	return fmt.Sprintf("%02d:00", *hour)
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
