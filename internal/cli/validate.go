package cli

import (
	"fmt"
	"os"

	"github.com/ppiankov/neolex/internal/pipeline"
	"github.com/ppiankov/neolex/internal/validate"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Review neologism candidates interactively",
	Long: `Validate walks through every undecided candidate, prints its
details and a pre-built Google Books Ngram link, and records the
reviewer's verdict:

  t / y   confirm as true neologism
  f / n   reject
  s       skip for now
  p       go back to the previous candidate
  q       save and quit

Progress is saved continuously, so the session can be resumed at any
time. Final per-genre true/false neologism lists are written when
every candidate has a verdict.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p := pipeline.New(cfg)
	sets, err := p.LoadCandidates()
	if err != nil {
		return err
	}

	store, err := validate.LoadStore(p.Paths().ProgressFile())
	if err != nil {
		return err
	}

	session := validate.NewSession(store, os.Stdin, os.Stdout)
	decided, err := session.Run(sets)
	if err != nil {
		return fmt.Errorf("validation session: %w", err)
	}

	fmt.Fprintf(os.Stderr, "\nRecorded %d verdicts this session\n", decided)

	remaining := 0
	for _, set := range sets {
		for word := range set.Tokens {
			if !store.Decided(word) {
				remaining++
			}
		}
	}
	if remaining > 0 {
		fmt.Fprintf(os.Stderr, "%d candidates still undecided; run 'neolex validate' again to continue\n", remaining)
		return nil
	}

	if err := store.WriteResults(p.Paths().ValidatedDir()); err != nil {
		return fmt.Errorf("write validated lists: %w", err)
	}
	fmt.Fprintf(os.Stderr, "All candidates decided; results written to %s\n", p.Paths().ValidatedDir())
	return nil
}
