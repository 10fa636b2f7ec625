package annotate

import (
	"context"

	"github.com/ppiankov/neolex/internal/model"
)

// Provider defines the interface for NLP annotation services. The
// service is a black box: it tokenizes, lemmatizes, POS-tags and
// NER-tags a document and returns the annotated sentence sequence.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Annotate annotates a single text chunk
	Annotate(ctx context.Context, text string) ([]model.Sentence, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// Config holds annotation provider configuration
type Config struct {
	// Provider name: "spacy", "openai", ""
	Provider string

	// Model name (provider-specific; the spaCy model or OpenAI model)
	Model string

	// APIKey for OpenAI
	APIKey string

	// BaseURL for custom endpoints (spacy-server)
	BaseURL string

	// Timeout for API requests, seconds
	Timeout int

	// ChunkSize is the maximum characters per annotation request
	ChunkSize int

	// RateLimit is the request pacing toward the service
	RateLimit float64
	RateBurst int

	// Proxy settings for the spacy provider
	HTTPProxy  string
	HTTPSProxy string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "spacy",
		BaseURL:   "http://localhost:8080",
		Timeout:   120,
		ChunkSize: 50000,
		RateLimit: 2.0,
		RateBurst: 5,
	}
}

// ConfigFromModel converts model.AnnotationConfig to annotate.Config
func ConfigFromModel(c model.AnnotationConfig) Config {
	return Config{
		Provider:   c.Provider,
		Model:      c.Model,
		APIKey:     c.APIKey,
		BaseURL:    c.BaseURL,
		Timeout:    c.Timeout,
		ChunkSize:  c.ChunkSize,
		RateLimit:  c.RateLimit,
		RateBurst:  c.RateBurst,
		HTTPProxy:  c.HTTPProxy,
		HTTPSProxy: c.HTTPSProxy,
	}
}
