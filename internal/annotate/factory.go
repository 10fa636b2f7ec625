package annotate

import (
	"fmt"
	"strings"
)

// NewProvider creates a new annotation provider based on configuration
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "spacy":
		return NewSpacyProvider(config)

	case "openai":
		return NewOpenAIProvider(config)

	case "":
		// No provider configured - annotation stages cannot run
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown annotation provider: %s (supported: spacy, openai)", config.Provider)
	}
}
