package cli

import (
	"fmt"
	"os"

	"github.com/ppiankov/neolex/internal/dict"
	"github.com/ppiankov/neolex/internal/pipeline"
	"github.com/spf13/cobra"
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify [genre]",
	Short: "Filter aggregated tokens into neologism candidates",
	Long: `Classify checks every unique token of a genre against the combined
exclusion dictionary. A token whose surface form is attested is
excluded outright. A token whose surface form is unattested but whose
lemma is attested becomes a neo-combination (a new form of a known
word). A token attested in neither form becomes a novel neologism
candidate.

Both candidate lists are persisted per genre for the validate stage.

Example:
  neolex classify
  neolex classify romance`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	genres, err := genresFromArg(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p := pipeline.New(cfg)
	paths := p.Paths()

	exclusion, err := dict.LoadCombined(paths.HeadwordsFile(), paths.CorpusFile())
	if err != nil {
		return fmt.Errorf("load exclusion dictionaries (run 'neolex dict' first?): %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Exclusion dictionary: %d entries\n", exclusion.Len())
	}

	for _, genre := range genres {
		result, err := p.ClassifyGenre(genre, exclusion)
		if err != nil {
			return fmt.Errorf("classify %s: %w", genre, err)
		}
		fmt.Fprintf(os.Stderr, "%s: %d neo-combinations, %d novel neologism candidates\n",
			genre.Display(), len(result.NeoCombinations.Tokens), len(result.NovelNeologisms.Tokens))
	}

	return nil
}
