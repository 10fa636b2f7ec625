package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ppiankov/neolex/internal/model"
)

// RenderTable writes the per-genre results as an aligned text table
func RenderTable(w io.Writer, metrics []model.GenreMetrics) {
	fmt.Fprintf(w, "%-16s %14s %12s %12s\n", "Genre", "Unique tokens", "Confirmed", "Frequency")
	fmt.Fprintf(w, "%-16s %14s %12s %12s\n", "-----", "-------------", "---------", "---------")

	for _, m := range metrics {
		fmt.Fprintf(w, "%-16s %14d %12d %11.4f%%\n",
			m.Genre.Display(), m.TotalUniqueTokens, m.ConfirmedNeologismCount, m.FrequencyPercent)
	}
}

// RenderJSON writes the metrics to a JSON file
func RenderJSON(path string, metrics []model.GenreMetrics) error {
	data, err := json.MarshalIndent(metrics, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
