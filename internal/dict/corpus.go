package dict

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/ppiankov/neolex/internal/archive"
	"github.com/ppiankov/neolex/internal/model"
)

// Fast pattern-based tokenization, no linguistic annotation: the corpus
// side of the exclusion resource trades precision for throughput over a
// million-record archive. Hyphenated words are kept whole.
var corpusTokenRe = regexp.MustCompile(`\b[a-zA-Z]+(?:-[a-zA-Z]+)*\b`)

// TokenizeCounts lowercases text and counts pattern tokens of at least
// minLen characters.
func TokenizeCounts(text string, minLen int) map[string]int {
	counts := make(map[string]int)
	for _, token := range corpusTokenRe.FindAllString(strings.ToLower(text), -1) {
		if len(token) < minLen {
			continue
		}
		counts[token]++
	}
	return counts
}

// CorpusBuilder folds every qualifying archive record into one token
// counter, checkpointing so an interrupted run resumes where it left off.
type CorpusBuilder struct {
	archive    *archive.Archive
	config     model.DictionaryConfig
	checkpoint *Checkpoint
	verbose    bool
}

// NewCorpusBuilder creates a builder over an opened archive
func NewCorpusBuilder(a *archive.Archive, config model.DictionaryConfig, checkpointPath string, verbose bool) *CorpusBuilder {
	return &CorpusBuilder{
		archive:    a,
		config:     config,
		checkpoint: NewCheckpoint(checkpointPath),
		verbose:    verbose,
	}
}

// Build tokenizes all English pre-cutoff records and returns the merged
// counter. Individual record failures are warnings; the build continues.
func (b *CorpusBuilder) Build(ctx context.Context) (map[string]int, error) {
	state, err := b.checkpoint.Load()
	if err != nil {
		return nil, fmt.Errorf("load checkpoint: %w", err)
	}
	if len(state.Processed) > 0 && b.verbose {
		fmt.Fprintf(os.Stderr, "Resuming from checkpoint: %d records done, %d unique tokens\n",
			len(state.Processed), len(state.Counter))
	}

	records, err := b.archive.Metadata()
	if err != nil {
		return nil, fmt.Errorf("load metadata: %w", err)
	}

	qualifying := archive.FilterPre1900English(records, b.config.CutoffYear)
	if b.verbose {
		fmt.Fprintf(os.Stderr, "%d of %d records qualify (English, author died before %d)\n",
			len(qualifying), len(records), b.config.CutoffYear)
	}

	var pending []archive.Record
	for _, r := range qualifying {
		if _, done := state.Processed[r.ID()]; !done {
			pending = append(pending, r)
		}
	}
	if b.config.RecordLimit > 0 && len(pending) > b.config.RecordLimit {
		pending = pending[:b.config.RecordLimit]
	}

	batchSize := b.config.BatchSize
	if batchSize <= 0 {
		batchSize = 20
	}
	checkpointEvery := b.config.CheckpointFrequency
	if checkpointEvery <= 0 {
		checkpointEvery = 5
	}

	sinceCheckpoint := 0
	for i, record := range pending {
		if err := ctx.Err(); err != nil {
			// Save progress before giving up on cancellation
			if saveErr := b.checkpoint.Save(state); saveErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: checkpoint save failed: %v\n", saveErr)
			}
			return nil, err
		}

		text, err := b.archive.Retrieve(record.GDPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", record.GDPath, err)
			continue
		}

		for token, n := range TokenizeCounts(text, b.config.MinTokenLen) {
			state.Counter[token] += n
		}
		state.Processed[record.ID()] = struct{}{}

		sinceCheckpoint++
		if sinceCheckpoint >= checkpointEvery {
			if err := b.checkpoint.Save(state); err != nil {
				return nil, fmt.Errorf("save checkpoint: %w", err)
			}
			sinceCheckpoint = 0
		}

		if b.verbose && (i+1)%batchSize == 0 {
			fmt.Fprintf(os.Stderr, "Processed %d/%d records, %d unique tokens\n",
				i+1, len(pending), len(state.Counter))
		}
	}

	if err := b.checkpoint.Save(state); err != nil {
		return nil, fmt.Errorf("save checkpoint: %w", err)
	}

	return state.Counter, nil
}
