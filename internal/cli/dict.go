package cli

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"

	"github.com/ppiankov/neolex/internal/archive"
	"github.com/ppiankov/neolex/internal/dict"
	"github.com/ppiankov/neolex/internal/pipeline"
	"github.com/spf13/cobra"
)

var recordLimit int

// dictCmd represents the dict command
var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Build the period exclusion dictionaries",
	Long: `Dict builds the two exclusion dictionaries a token must escape
to count as a neologism candidate:

  headwords  headword entries extracted from an OCR'd period dictionary
  corpus     token frequencies over pre-1900 English Gutenberg texts

Both are persisted under the dicts data directory and combined at
classification time.`,
}

// dictHeadwordsCmd represents the dict headwords command
var dictHeadwordsCmd = &cobra.Command{
	Use:   "headwords <ocr.txt>",
	Short: "Extract headword entries from an OCR'd period dictionary",
	Long: `Headwords scans an OCR'd dictionary text line by line and extracts
entry headwords, suppressing bracketed etymology blocks, hyphenated
line continuations and OCR noise that jumps out of alphabetical order.

Example:
  neolex dict headwords chambers_1908.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runDictHeadwords,
}

// dictCorpusCmd represents the dict corpus command
var dictCorpusCmd = &cobra.Command{
	Use:   "corpus [archive.zip]",
	Short: "Build token frequencies over pre-1900 English Gutenberg texts",
	Long: `Corpus walks every English work in the archive whose author died
before the cutoff year, tokenizes it and accumulates token frequencies.

Progress is checkpointed, so an interrupted build resumes where it
left off. Interrupt with Ctrl-C; the checkpoint is saved on the way
out.

Example:
  neolex dict corpus
  neolex dict corpus /data/gutenberg-dammit-files-v002.zip --limit 500`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDictCorpus,
}

func init() {
	rootCmd.AddCommand(dictCmd)
	dictCmd.AddCommand(dictHeadwordsCmd)
	dictCmd.AddCommand(dictCorpusCmd)

	dictCorpusCmd.Flags().IntVar(&recordLimit, "limit", 0, "stop after this many records (0 = no limit)")
}

func runDictHeadwords(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open dictionary text: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read dictionary text: %w", err)
	}

	result := dict.ExtractHeadwords(lines)

	paths := pipeline.NewPaths(cfg.Data.Root)
	if err := dict.SaveHeadwords(paths.HeadwordsFile(), result.Entries); err != nil {
		return fmt.Errorf("save headwords: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Extracted %d headwords (%d lines skipped) to %s\n",
		len(result.Entries), result.Skipped, paths.HeadwordsFile())
	return nil
}

func runDictCorpus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Data.ArchivePath = args[0]
	}
	if recordLimit > 0 {
		cfg.Dictionary.RecordLimit = recordLimit
	}

	a, err := archive.Open(cfg.Data.ArchivePath)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer a.Close()

	// Ctrl-C cancels the context; the builder saves its checkpoint
	// before returning so the next run resumes.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	paths := pipeline.NewPaths(cfg.Data.Root)
	builder := dict.NewCorpusBuilder(a, cfg.Dictionary, paths.CorpusCheckpointFile(), verbose)

	counts, err := builder.Build(ctx)
	if err != nil {
		return fmt.Errorf("build corpus dictionary: %w", err)
	}

	if err := dict.SaveCorpusCounts(paths.CorpusFile(), counts); err != nil {
		return fmt.Errorf("save corpus dictionary: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Corpus dictionary with %d tokens saved to %s\n",
		len(counts), paths.CorpusFile())
	return nil
}
