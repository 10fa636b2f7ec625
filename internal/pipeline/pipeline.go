package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ppiankov/neolex/internal/annotate"
	"github.com/ppiankov/neolex/internal/archive"
	"github.com/ppiankov/neolex/internal/classify"
	"github.com/ppiankov/neolex/internal/dict"
	"github.com/ppiankov/neolex/internal/extract"
	"github.com/ppiankov/neolex/internal/model"
	"github.com/ppiankov/neolex/internal/report"
	"github.com/ppiankov/neolex/internal/validate"
)

// Pipeline wires the batch stages together. Every stage reads its
// complete input from disk, computes its complete output, writes it and
// terminates; counts travel inside the persisted artifacts, never in
// shared state.
type Pipeline struct {
	config *model.Config
	paths  Paths
}

// New creates a pipeline over the configured data root
func New(cfg *model.Config) *Pipeline {
	return &Pipeline{
		config: cfg,
		paths:  NewPaths(cfg.Data.Root),
	}
}

// Paths exposes the data layout
func (p *Pipeline) Paths() Paths {
	return p.paths
}

// LoadNovels retrieves every configured novel from the local archive
// into the raw text directory. A missing title is a warning; the load
// continues for the remaining works.
func (p *Pipeline) LoadNovels() error {
	a, err := archive.Open(p.config.Data.ArchivePath)
	if err != nil {
		return err
	}
	defer a.Close()

	for _, genre := range model.Genres {
		rawDir := p.paths.RawDir(genre)
		if err := os.MkdirAll(rawDir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", rawDir, err)
		}

		for title := range p.config.Novels.ByGenre(genre) {
			_, text, err := a.SearchByTitle(title)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not find %q in the archive: %v\n", title, err)
				continue
			}

			path := filepath.Join(rawDir, strings.ReplaceAll(title, " ", "_")+".txt")
			if err := os.WriteFile(path, []byte(text), 0644); err != nil {
				return fmt.Errorf("save %q: %w", title, err)
			}
			if p.config.Output.Verbose {
				fmt.Fprintf(os.Stderr, "Saved raw text for %q to %s\n", title, path)
			}
		}
	}

	return nil
}

// AnnotateGenre annotates every raw novel of a genre and persists the
// enriched sentences. A novel whose annotation fails is excluded with a
// warning: it gets no enriched file and therefore never reaches the
// token counts.
func (p *Pipeline) AnnotateGenre(ctx context.Context, genre model.Genre, annotator *annotate.Annotator) error {
	rawDir := p.paths.RawDir(genre)
	entries, err := os.ReadDir(rawDir)
	if err != nil {
		return fmt.Errorf("read %s: %w", rawDir, err)
	}

	processedDir := p.paths.ProcessedDir(genre)
	if err := os.MkdirAll(processedDir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", processedDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(rawDir, entry.Name()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping unreadable novel %s: %v\n", entry.Name(), err)
			continue
		}

		if p.config.Output.Verbose {
			fmt.Fprintf(os.Stderr, "Annotating %s\n", entry.Name())
		}

		sentences, err := annotator.AnnotateText(ctx, extract.Clean(string(raw)))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: excluding %s from the run, annotation failed: %v\n", entry.Name(), err)
			continue
		}

		outName := strings.TrimSuffix(entry.Name(), ".txt") + "_enriched.json"
		if err := writeJSON(filepath.Join(processedDir, outName), sentences); err != nil {
			return err
		}
	}

	return nil
}

// AggregateGenre folds every enriched novel of a genre into one
// unique-token aggregate and persists it.
func (p *Pipeline) AggregateGenre(genre model.Genre) (*model.TokenAggregate, error) {
	processedDir := p.paths.ProcessedDir(genre)
	entries, err := os.ReadDir(processedDir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", processedDir, err)
	}

	agg := model.NewTokenAggregate()
	novels := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "_enriched.json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(processedDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}

		var sentences []model.Sentence
		if err := json.Unmarshal(data, &sentences); err != nil {
			return nil, fmt.Errorf("parse %s: %w", entry.Name(), err)
		}

		extract.Fold(agg, sentences)
		novels++
	}
	extract.Finalize(agg)

	if p.config.Output.Verbose {
		fmt.Fprintf(os.Stderr, "%s: %d novels, %d total tokens, %d unique\n",
			genre, novels, agg.TotalTokens, agg.UniqueTokens)
	}

	if err := writeJSON(p.paths.FilteredFile(genre), agg); err != nil {
		return nil, err
	}
	return agg, nil
}

// ClassifyGenre filters a genre's aggregate against the combined
// exclusion dictionary and persists both candidate categories.
func (p *Pipeline) ClassifyGenre(genre model.Genre, exclusion *dict.Exclusion) (classify.Result, error) {
	agg, err := p.LoadAggregate(genre)
	if err != nil {
		return classify.Result{}, err
	}

	result := classify.Classify(genre, agg, exclusion)

	if err := writeJSON(p.paths.CandidateFile(genre, model.CategoryNeoCombination), result.NeoCombinations); err != nil {
		return classify.Result{}, err
	}
	if err := writeJSON(p.paths.CandidateFile(genre, model.CategoryNovelNeologism), result.NovelNeologisms); err != nil {
		return classify.Result{}, err
	}

	if p.config.Output.Verbose {
		fmt.Fprintf(os.Stderr, "%s: %d neo-combinations, %d novel neologisms\n",
			genre, len(result.NeoCombinations.Tokens), len(result.NovelNeologisms.Tokens))
	}

	return result, nil
}

// LoadAggregate reads a genre's persisted unique-token aggregate
func (p *Pipeline) LoadAggregate(genre model.Genre) (*model.TokenAggregate, error) {
	data, err := os.ReadFile(p.paths.FilteredFile(genre))
	if err != nil {
		return nil, fmt.Errorf("load %s aggregate (run 'neolex aggregate' first?): %w", genre, err)
	}

	var agg model.TokenAggregate
	if err := json.Unmarshal(data, &agg); err != nil {
		return nil, fmt.Errorf("parse %s aggregate: %w", genre, err)
	}
	return &agg, nil
}

// LoadCandidates reads every persisted candidate set, in stable order
func (p *Pipeline) LoadCandidates() ([]model.CandidateSet, error) {
	var sets []model.CandidateSet
	for _, genre := range model.Genres {
		for _, category := range model.Categories {
			path := p.paths.CandidateFile(genre, category)
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("load candidates %s (run 'neolex classify' first?): %w", path, err)
			}

			var set model.CandidateSet
			if err := json.Unmarshal(data, &set); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
			sets = append(sets, set)
		}
	}
	return sets, nil
}

// Metrics computes the final per-genre figures from the persisted
// aggregates and validated results.
func (p *Pipeline) Metrics() ([]model.GenreMetrics, error) {
	store, err := validate.LoadStore(p.paths.ProgressFile())
	if err != nil {
		return nil, err
	}

	var metrics []model.GenreMetrics
	for _, genre := range model.Genres {
		agg, err := p.LoadAggregate(genre)
		if err != nil {
			return nil, err
		}

		confirmed := len(store.ConfirmedByGenre(genre))
		metrics = append(metrics, report.Compute(genre, agg.UniqueTokens, confirmed))
	}

	return metrics, nil
}

// writeJSON persists a value as indented JSON, creating parent dirs
func writeJSON(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}

	// encoding/json emits map keys sorted, which keeps persisted
	// candidate lists deterministic across runs.
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// SortedWords returns a candidate set's words in lexical order
func SortedWords(set model.CandidateSet) []string {
	words := make([]string, 0, len(set.Tokens))
	for w := range set.Tokens {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
