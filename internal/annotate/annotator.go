package annotate

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/neolex/internal/cache"
	"github.com/ppiankov/neolex/internal/model"
	"github.com/ppiankov/neolex/internal/worker"
)

// Annotator drives a Provider over a whole novel: chunking, caching and
// request pacing. A novel is either fully annotated or fails as a whole;
// partial annotation is never returned.
type Annotator struct {
	provider Provider
	cache    cache.Cache
	limiter  *worker.Limiter
	config   Config
	verbose  bool
}

// NewAnnotator creates an annotator around the configured provider.
// cacheLayer may be nil to disable caching.
func NewAnnotator(provider Provider, cacheLayer cache.Cache, config Config, verbose bool) *Annotator {
	return &Annotator{
		provider: provider,
		cache:    cacheLayer,
		limiter:  worker.NewLimiter(config.RateLimit, config.RateBurst),
		config:   config,
		verbose:  verbose,
	}
}

// AnnotateText annotates a full pre-cleaned text and returns the
// concatenated sentence sequence.
func (a *Annotator) AnnotateText(ctx context.Context, text string) ([]model.Sentence, error) {
	chunks := SplitChunks(text, a.config.ChunkSize)

	var sentences []model.Sentence
	for i, chunk := range chunks {
		chunkSentences, err := a.annotateChunk(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
		}
		sentences = append(sentences, chunkSentences...)

		if a.verbose {
			fmt.Fprintf(os.Stderr, "  annotated chunk %d/%d (%d sentences)\n", i+1, len(chunks), len(chunkSentences))
		}
	}

	return sentences, nil
}

func (a *Annotator) annotateChunk(ctx context.Context, chunk string) ([]model.Sentence, error) {
	key := cache.ChunkKey(a.provider.Name(), a.config.Model, chunk)

	if a.cache != nil {
		if data, found := a.cache.Get(key); found {
			var cached []model.Sentence
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
			// Corrupt entry: drop it and re-annotate
			_ = a.cache.Delete(key)
		}
	}

	if err := a.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	sentences, err := a.provider.Annotate(ctx, chunk)
	if err != nil {
		return nil, err
	}

	if a.cache != nil {
		if data, err := json.Marshal(sentences); err == nil {
			if err := a.cache.Set(key, data, 0); err != nil && a.verbose {
				fmt.Fprintf(os.Stderr, "  warning: cache write failed: %v\n", err)
			}
		}
	}

	return sentences, nil
}

// BuildCache constructs the annotation cache from configuration,
// returning nil when caching is disabled.
func BuildCache(cfg model.CacheConfig, dataRoot string) cache.Cache {
	if !cfg.Enabled {
		return nil
	}

	dir := cfg.Dir
	if dir == "" {
		dir = dataRoot + "/cache"
	}

	ttl := time.Duration(cfg.TTLHours) * time.Hour
	if ttl == 0 {
		ttl = 30 * 24 * time.Hour
	}

	return cache.NewLayeredCache(time.Hour, dir, ttl)
}
