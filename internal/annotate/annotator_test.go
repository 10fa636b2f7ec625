package annotate

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/neolex/internal/cache"
	"github.com/ppiankov/neolex/internal/model"
)

// fakeProvider counts calls and can be made to fail
type fakeProvider struct {
	calls    int
	failFrom int // Fail on call number failFrom and later (0 = never)
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) IsAvailable(ctx context.Context) bool { return true }

func (p *fakeProvider) Annotate(ctx context.Context, text string) ([]model.Sentence, error) {
	p.calls++
	if p.failFrom > 0 && p.calls >= p.failFrom {
		return nil, fmt.Errorf("annotation service unavailable")
	}
	return []model.Sentence{
		{{Text: "word", Lemma: "word", POS: model.POSNoun, Lower: "word"}},
	}, nil
}

func TestAnnotator_CachesChunks(t *testing.T) {
	provider := &fakeProvider{}
	diskCache := cache.NewDiskCache(t.TempDir(), time.Hour)

	config := Config{ChunkSize: 1000, RateLimit: 100, RateBurst: 10}
	a := NewAnnotator(provider, diskCache, config, false)

	text := "A single short text."
	if _, err := a.AnnotateText(context.Background(), text); err != nil {
		t.Fatalf("first annotation failed: %v", err)
	}
	if _, err := a.AnnotateText(context.Background(), text); err != nil {
		t.Fatalf("second annotation failed: %v", err)
	}

	if provider.calls != 1 {
		t.Errorf("Expected 1 provider call with a warm cache, got %d", provider.calls)
	}
}

func TestAnnotator_FailedChunkFailsWholeText(t *testing.T) {
	para := strings.Repeat("word ", 30)
	text := para + "\n\n" + para + "\n\n" + para

	provider := &fakeProvider{failFrom: 2}
	config := Config{ChunkSize: 170, RateLimit: 100, RateBurst: 10}
	a := NewAnnotator(provider, nil, config, false)

	sentences, err := a.AnnotateText(context.Background(), text)
	if err == nil {
		t.Fatal("Expected whole-text failure when one chunk fails")
	}
	if sentences != nil {
		t.Error("No partial annotation may be returned")
	}
}

func TestAnnotator_NoCacheStillWorks(t *testing.T) {
	provider := &fakeProvider{}
	config := Config{ChunkSize: 1000, RateLimit: 100, RateBurst: 10}
	a := NewAnnotator(provider, nil, config, false)

	sentences, err := a.AnnotateText(context.Background(), "text")
	if err != nil {
		t.Fatalf("annotation failed: %v", err)
	}
	if len(sentences) != 1 {
		t.Errorf("Expected 1 sentence, got %d", len(sentences))
	}
}

func TestParseAnnotationJSON(t *testing.T) {
	content := `{"sentences": [[{"text": "Spaceship", "lemma": "spaceship", "pos": "NOUN", "lower": "spaceship"}]]}`

	sentences, err := parseAnnotationJSON(content)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(sentences) != 1 || len(sentences[0]) != 1 {
		t.Fatalf("Unexpected shape: %v", sentences)
	}
	if sentences[0][0].Lemma != "spaceship" {
		t.Errorf("Unexpected lemma: %q", sentences[0][0].Lemma)
	}
}

func TestParseAnnotationJSON_MissingSentences(t *testing.T) {
	if _, err := parseAnnotationJSON(`{"tokens": []}`); err == nil {
		t.Error("Expected error for JSON without sentences key")
	}
}

func TestNewProvider_Factory(t *testing.T) {
	if _, err := NewProvider(Config{Provider: "carrier-pigeon"}); err == nil {
		t.Error("Expected error for unknown provider")
	}

	p, err := NewProvider(Config{Provider: ""})
	if err != nil || p != nil {
		t.Error("Expected nil provider and nil error when unconfigured")
	}

	p, err = NewProvider(Config{Provider: "spacy", BaseURL: "http://localhost:9999"})
	if err != nil {
		t.Fatalf("spacy provider: %v", err)
	}
	if p.Name() != "spacy" {
		t.Errorf("Unexpected provider name: %s", p.Name())
	}
}
