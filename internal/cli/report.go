package cli

import (
	"fmt"
	"os"

	"github.com/ppiankov/neolex/internal/pipeline"
	"github.com/ppiankov/neolex/internal/report"
	"github.com/spf13/cobra"
)

var reportJSON string

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compute the final per-genre neologism frequencies",
	Long: `Report combines each genre's unique-token count with its confirmed
neologism verdicts and prints the normalized frequency:

  frequency (%) = confirmed neologisms / unique tokens * 100

A genre with no confirmed neologisms is reported as a zero row, not an
error.

Example:
  neolex report
  neolex report --json metrics.json`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportJSON, "json", "", "also write metrics to this JSON path")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if reportJSON != "" {
		cfg.Output.JSONPath = reportJSON
	}

	p := pipeline.New(cfg)
	metrics, err := p.Metrics()
	if err != nil {
		return err
	}

	report.RenderTable(os.Stdout, metrics)

	if cfg.Output.JSONPath != "" {
		if err := report.RenderJSON(cfg.Output.JSONPath, metrics); err != nil {
			return fmt.Errorf("write metrics JSON: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Metrics written to %s\n", cfg.Output.JSONPath)
	}

	return nil
}
