package annotate

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/ppiankov/neolex/internal/model"
)

// OpenAIProvider implements annotation through OpenAI chat completions.
// It is a fallback for running without a local spaCy server; lemma and
// POS quality depends entirely on the model.
type OpenAIProvider struct {
	client *openai.Client
	config Config
}

const annotationSystemPrompt = `You are a linguistic annotation engine. Tokenize the user's text into sentences and tokens. For every token return:
- "text": the exact surface form
- "lemma": the base/dictionary form
- "pos": a Universal Dependencies POS tag (NOUN, VERB, ADJ, ADV, PRON, DET, ADP, AUX, CCONJ, SCONJ, PART, INTJ, NUM, PROPN, PUNCT, SYM, SPACE, X)
- "ent_type": the named-entity label if the token is part of a named entity, otherwise omit
- "is_stop": true if the token is an English stopword
- "is_punct": true if the token is punctuation
- "lower": the lowercased surface form

Respond with exactly one JSON object: {"sentences": [[token, ...], ...]}. No prose, no markdown.`

// NewOpenAIProvider creates a new OpenAI annotation provider
func NewOpenAIProvider(config Config) (*OpenAIProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the provider is properly configured
func (p *OpenAIProvider) IsAvailable(ctx context.Context) bool {
	_, err := p.client.ListModels(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "OpenAI API check failed: %v\n", err)
		return false
	}
	return true
}

// Annotate annotates one chunk of text via chat completions
func (p *OpenAIProvider) Annotate(ctx context.Context, text string) ([]model.Sentence, error) {
	modelName := p.config.Model
	if modelName == "" {
		modelName = openai.GPT4oMini
	}

	timeout := time.Duration(p.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model: modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: annotationSystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		Temperature: 0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := p.client.CreateChatCompletion(ctxWithTimeout, chatReq)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	return parseAnnotationJSON(content)
}

// parseAnnotationJSON parses the model's JSON annotation output into
// sentences. The wire shape matches the spaCy provider's response.
func parseAnnotationJSON(content string) ([]model.Sentence, error) {
	var parsed spacyResponse
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("parse annotation JSON: %w", err)
	}
	if parsed.Sentences == nil {
		return nil, fmt.Errorf("annotation JSON missing \"sentences\"")
	}
	return convertSentences(parsed.Sentences), nil
}
