package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/ppiankov/neolex/internal/dict"
	"github.com/ppiankov/neolex/internal/model"
	"github.com/ppiankov/neolex/internal/pipeline"
	"github.com/spf13/cobra"
)

var runTimeout time.Duration

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run every batch stage up to validation",
	Long: `Run chains the batch stages in order: novels, annotate, aggregate
and classify. The exclusion dictionaries must already exist (build
them once with 'neolex dict').

Validation is interactive and is not part of the chain; run
'neolex validate' afterwards, then 'neolex report'.

Example:
  neolex run
  neolex run --timeout 4h`,
	Args: cobra.NoArgs,
	RunE: runAll,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().DurationVar(&runTimeout, "timeout", 4*time.Hour, "overall timeout for the full chain")
}

func runAll(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Annotation.Provider == "openai" && cfg.Annotation.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	p := pipeline.New(cfg)
	paths := p.Paths()

	// Fail before any work if the dictionaries are missing
	exclusion, err := dict.LoadCombined(paths.HeadwordsFile(), paths.CorpusFile())
	if err != nil {
		return fmt.Errorf("load exclusion dictionaries (run 'neolex dict' first): %w", err)
	}

	annotator, err := buildAnnotator(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), runTimeout)
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	fmt.Fprintf(os.Stderr, "Stage 1/4: loading novels\n")
	if err := p.LoadNovels(); err != nil {
		return fmt.Errorf("load novels: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Stage 2/4: annotating\n")
	for _, genre := range model.Genres {
		if err := p.AnnotateGenre(ctx, genre, annotator); err != nil {
			return fmt.Errorf("annotate %s: %w", genre, err)
		}
	}

	fmt.Fprintf(os.Stderr, "Stage 3/4: aggregating\n")
	for _, genre := range model.Genres {
		agg, err := p.AggregateGenre(genre)
		if err != nil {
			return fmt.Errorf("aggregate %s: %w", genre, err)
		}
		fmt.Fprintf(os.Stderr, "  %s: %d unique tokens\n", genre.Display(), agg.UniqueTokens)
	}

	fmt.Fprintf(os.Stderr, "Stage 4/4: classifying\n")
	for _, genre := range model.Genres {
		result, err := p.ClassifyGenre(genre, exclusion)
		if err != nil {
			return fmt.Errorf("classify %s: %w", genre, err)
		}
		fmt.Fprintf(os.Stderr, "  %s: %d novel neologism candidates\n",
			genre.Display(), len(result.NovelNeologisms.Tokens))
	}

	fmt.Fprintf(os.Stderr, "\nDone. Next: 'neolex validate', then 'neolex report'\n")
	return nil
}
