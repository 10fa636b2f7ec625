package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/ppiankov/neolex/internal/annotate"
	"github.com/ppiankov/neolex/internal/model"
	"github.com/ppiankov/neolex/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	annotateProvider string
	annotateModel    string
	annotateTimeout  time.Duration
	noCache          bool
)

// annotateCmd represents the annotate command
var annotateCmd = &cobra.Command{
	Use:   "annotate [genre]",
	Short: "Annotate raw novel texts via the NLP service",
	Long: `Annotate pre-cleans every raw novel of the given genre (or all
genres) and sends it in chunks to the configured annotation service,
persisting the enriched sentence sequences.

A novel is either fully annotated or excluded from the run with a
warning; no partial annotation is ever persisted. Chunk results are
cached, so a re-run after a transient service failure only re-sends
the chunks that failed.

Example:
  neolex annotate
  neolex annotate scifi
  neolex annotate romance --provider openai --model gpt-4o-mini`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnnotate,
}

func init() {
	rootCmd.AddCommand(annotateCmd)

	annotateCmd.Flags().StringVar(&annotateProvider, "provider", "", "annotation provider (spacy, openai; overrides config)")
	annotateCmd.Flags().StringVar(&annotateModel, "model", "", "provider model name (overrides config)")
	annotateCmd.Flags().DurationVar(&annotateTimeout, "timeout", 2*time.Hour, "overall annotation timeout")
	annotateCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the annotation cache")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	genres, err := genresFromArg(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if annotateProvider != "" {
		cfg.Annotation.Provider = annotateProvider
	}
	if annotateModel != "" {
		cfg.Annotation.Model = annotateModel
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	if cfg.Annotation.Provider == "openai" && cfg.Annotation.APIKey == "" {
		cfg.Annotation.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Annotation.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	annotator, err := buildAnnotator(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), annotateTimeout)
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	p := pipeline.New(cfg)
	for _, genre := range genres {
		if verbose {
			fmt.Fprintf(os.Stderr, "Annotating %s novels\n", genre.Display())
		}
		if err := p.AnnotateGenre(ctx, genre, annotator); err != nil {
			return fmt.Errorf("annotate %s: %w", genre, err)
		}
	}

	return nil
}

// buildAnnotator wires the provider, cache and pacing from config
func buildAnnotator(cfg *model.Config) (*annotate.Annotator, error) {
	providerCfg := annotate.ConfigFromModel(cfg.Annotation)

	provider, err := annotate.NewProvider(providerCfg)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, fmt.Errorf("no annotation provider configured (set annotation.provider to spacy or openai)")
	}

	cacheLayer := annotate.BuildCache(cfg.Cache, cfg.Data.Root)
	return annotate.NewAnnotator(provider, cacheLayer, providerCfg, verbose), nil
}
