package cli

import (
	"fmt"
	"os"

	"github.com/ppiankov/neolex/internal/pipeline"
	"github.com/spf13/cobra"
)

// aggregateCmd represents the aggregate command
var aggregateCmd = &cobra.Command{
	Use:   "aggregate [genre]",
	Short: "Fold annotated novels into per-genre unique-token counts",
	Long: `Aggregate reads every enriched novel of the given genre (or all
genres), drops named entities, proper nouns, punctuation, numerals and
stopwords, and folds what remains into one unique-token aggregate per
genre keyed by lowercased surface form.

Example:
  neolex aggregate
  neolex aggregate scifi`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAggregate,
}

func init() {
	rootCmd.AddCommand(aggregateCmd)
}

func runAggregate(cmd *cobra.Command, args []string) error {
	genres, err := genresFromArg(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p := pipeline.New(cfg)
	for _, genre := range genres {
		agg, err := p.AggregateGenre(genre)
		if err != nil {
			return fmt.Errorf("aggregate %s: %w", genre, err)
		}
		fmt.Fprintf(os.Stderr, "%s: %d total tokens, %d unique\n",
			genre.Display(), agg.TotalTokens, agg.UniqueTokens)
	}

	return nil
}
