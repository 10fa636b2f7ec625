package validate

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ppiankov/neolex/internal/model"
)

func candidateSet(genre model.Genre, words ...string) model.CandidateSet {
	tokens := make(map[string]model.UniqueTokenRecord)
	for _, w := range words {
		tokens[w] = model.UniqueTokenRecord{FullForm: w, Lemma: w, POS: model.POSNoun, Frequency: 1}
	}
	return model.CandidateSet{
		Genre:    genre,
		Category: model.CategoryNovelNeologism,
		Tokens:   tokens,
	}
}

func TestSession_RecordsVerdicts(t *testing.T) {
	store, err := LoadStore(filepath.Join(t.TempDir(), "progress.json"))
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	// Candidates are presented sorted: aetherfoil, spacefolk
	set := candidateSet(model.GenreSciFi, "spacefolk", "aetherfoil")
	input := strings.NewReader("t\nf\n")
	var out bytes.Buffer

	session := NewSession(store, input, &out)
	decided, err := session.Run([]model.CandidateSet{set})
	if err != nil {
		t.Fatalf("session: %v", err)
	}

	if decided != 2 {
		t.Errorf("Expected 2 verdicts, got %d", decided)
	}
	if _, ok := store.Confirmed["aetherfoil"]; !ok {
		t.Error("Expected first (sorted) candidate confirmed")
	}
	if _, ok := store.Rejected["spacefolk"]; !ok {
		t.Error("Expected second candidate rejected")
	}

	if !strings.Contains(out.String(), "books.google.com/ngrams") {
		t.Error("Expected ngram lookup link in the prompt")
	}
}

func TestSession_SkipLeavesUndecided(t *testing.T) {
	store, err := LoadStore(filepath.Join(t.TempDir(), "progress.json"))
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	set := candidateSet(model.GenreRomance, "heartfire")
	session := NewSession(store, strings.NewReader("s\n"), &bytes.Buffer{})

	decided, err := session.Run([]model.CandidateSet{set})
	if err != nil {
		t.Fatalf("session: %v", err)
	}

	if decided != 0 {
		t.Errorf("Expected 0 verdicts after skip, got %d", decided)
	}
	if store.Decided("heartfire") {
		t.Error("Skipped candidate must stay undecided")
	}
}

func TestSession_EOFEndsLikeQuit(t *testing.T) {
	store, err := LoadStore(filepath.Join(t.TempDir(), "progress.json"))
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	set := candidateSet(model.GenreSciFi, "alpha", "beta")
	session := NewSession(store, strings.NewReader("t\n"), &bytes.Buffer{})

	decided, err := session.Run([]model.CandidateSet{set})
	if err != nil {
		t.Fatalf("session: %v", err)
	}

	if decided != 1 {
		t.Errorf("Expected 1 verdict before EOF, got %d", decided)
	}
}

func TestSession_AlreadyDecidedNotRepresented(t *testing.T) {
	store, err := LoadStore(filepath.Join(t.TempDir(), "progress.json"))
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	store.Record(verdictFor("alpha", model.GenreSciFi, true))

	set := candidateSet(model.GenreSciFi, "alpha", "beta")
	var out bytes.Buffer
	session := NewSession(store, strings.NewReader("f\n"), &out)

	if _, err := session.Run([]model.CandidateSet{set}); err != nil {
		t.Fatalf("session: %v", err)
	}

	if _, ok := store.Rejected["beta"]; !ok {
		t.Error("Expected the undecided candidate to receive the verdict")
	}
	if _, ok := store.Confirmed["alpha"]; !ok {
		t.Error("Existing verdict must be untouched")
	}
}
