package annotate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ppiankov/neolex/internal/model"
	"github.com/ppiankov/neolex/internal/util"
)

// SpacyProvider talks to a local spacy-server style REST annotator
type SpacyProvider struct {
	baseURL    string
	httpClient *http.Client
	config     Config
}

// spacy-server API structures
type spacyRequest struct {
	Text  string `json:"text"`
	Model string `json:"model,omitempty"`
}

type spacyToken struct {
	Text    string `json:"text"`
	Lemma   string `json:"lemma"`
	POS     string `json:"pos"`
	Ent     string `json:"ent_type,omitempty"`
	IsStop  bool   `json:"is_stop"`
	IsPunct bool   `json:"is_punct"`
	Lower   string `json:"lower"`
}

type spacyResponse struct {
	Sentences [][]spacyToken `json:"sentences"`
}

type spacyError struct {
	Error string `json:"error"`
}

// NewSpacyProvider creates a new spacy-server provider
func NewSpacyProvider(config Config) (*SpacyProvider, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second // Transformer models are slow on long chunks
	}

	return &SpacyProvider{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(config.HTTPProxy, config.HTTPSProxy),
			},
		},
		config: config,
	}, nil
}

// Name returns the provider name
func (p *SpacyProvider) Name() string {
	return "spacy"
}

// IsAvailable checks if the annotator is reachable
func (p *SpacyProvider) IsAvailable(ctx context.Context) bool {
	url := fmt.Sprintf("%s/health", p.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spaCy availability check failed (request creation): %v\n", err)
		return false
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spaCy availability check failed (connection to %s): %v\n", p.baseURL, err)
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "spaCy availability check failed (HTTP %d from %s)\n", resp.StatusCode, p.baseURL)
		return false
	}

	return true
}

// Annotate sends one chunk of text for annotation
func (p *SpacyProvider) Annotate(ctx context.Context, text string) ([]model.Sentence, error) {
	body, err := json.Marshal(spacyRequest{
		Text:  text,
		Model: p.config.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/annotate", p.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("spaCy request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr spacyError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("spaCy error (HTTP %d): %s", resp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("spaCy error: HTTP %d", resp.StatusCode)
	}

	var parsed spacyResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	return convertSentences(parsed.Sentences), nil
}

func convertSentences(raw [][]spacyToken) []model.Sentence {
	sentences := make([]model.Sentence, 0, len(raw))
	for _, sent := range raw {
		tokens := make(model.Sentence, 0, len(sent))
		for _, tok := range sent {
			lower := tok.Lower
			if lower == "" {
				lower = strings.ToLower(tok.Text)
			}
			tokens = append(tokens, model.AnnotatedToken{
				Text:    tok.Text,
				Lemma:   tok.Lemma,
				POS:     model.POS(tok.POS),
				NER:     tok.Ent,
				IsStop:  tok.IsStop,
				IsPunct: tok.IsPunct,
				Lower:   lower,
			})
		}
		sentences = append(sentences, tokens)
	}
	return sentences
}
