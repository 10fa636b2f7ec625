package cli

import (
	"fmt"
	"os"

	"github.com/ppiankov/neolex/internal/pipeline"
	"github.com/spf13/cobra"
)

var archivePath string

// novelsCmd represents the novels command
var novelsCmd = &cobra.Command{
	Use:   "novels",
	Short: "Retrieve the studied novels from a local Gutenberg archive",
	Long: `Novels looks up each configured work by title in a local
gutenberg-dammit ZIP archive and saves its plain text under the raw
data directory, one file per novel, grouped by genre.

A title that cannot be found produces a warning and the load continues;
the archive itself being missing or unreadable is an error.

Example:
  neolex novels
  neolex novels --archive /data/gutenberg-dammit-files-v002.zip`,
	Args: cobra.NoArgs,
	RunE: runNovels,
}

func init() {
	rootCmd.AddCommand(novelsCmd)

	novelsCmd.Flags().StringVar(&archivePath, "archive", "", "path to the gutenberg-dammit ZIP (overrides config)")
}

func runNovels(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if archivePath != "" {
		cfg.Data.ArchivePath = archivePath
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Archive: %s\n", cfg.Data.ArchivePath)
		fmt.Fprintf(os.Stderr, "Data root: %s\n", cfg.Data.Root)
	}

	p := pipeline.New(cfg)
	if err := p.LoadNovels(); err != nil {
		return fmt.Errorf("load novels: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Raw novel texts saved under %s\n", p.Paths().Root)
	return nil
}
