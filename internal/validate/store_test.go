package validate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ppiankov/neolex/internal/model"
)

func verdictFor(word string, genre model.Genre, confirmed bool) model.Verdict {
	return model.Verdict{
		Word:      word,
		Data:      model.UniqueTokenRecord{FullForm: word, Lemma: word, POS: model.POSNoun, Frequency: 1},
		Genre:     genre,
		Category:  model.CategoryNovelNeologism,
		Confirmed: confirmed,
		DecidedAt: time.Now().UTC(),
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")

	s, err := LoadStore(path)
	if err != nil {
		t.Fatalf("load fresh: %v", err)
	}

	s.Record(verdictFor("spaceship", model.GenreSciFi, true))
	s.Record(verdictFor("blunder", model.GenreRomance, false))

	if err := s.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded, err := LoadStore(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}

	if !reloaded.Decided("spaceship") || !reloaded.Decided("blunder") {
		t.Error("Verdicts lost across save/load")
	}
	if _, ok := reloaded.Confirmed["spaceship"]; !ok {
		t.Error("Confirmed verdict missing after reload")
	}
	if _, ok := reloaded.Rejected["blunder"]; !ok {
		t.Error("Rejected verdict missing after reload")
	}
}

func TestStore_RecordReplacesEarlierDecision(t *testing.T) {
	s, err := LoadStore(filepath.Join(t.TempDir(), "progress.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	s.Record(verdictFor("glider", model.GenreSciFi, true))
	s.Record(verdictFor("glider", model.GenreSciFi, false))

	if _, ok := s.Confirmed["glider"]; ok {
		t.Error("Reversed verdict must leave the confirmed set")
	}
	if _, ok := s.Rejected["glider"]; !ok {
		t.Error("Reversed verdict must land in the rejected set")
	}
}

func TestStore_WriteResults(t *testing.T) {
	dir := t.TempDir()
	s, err := LoadStore(filepath.Join(dir, "progress.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	s.Record(verdictFor("spaceship", model.GenreSciFi, true))
	s.Record(verdictFor("heartfire", model.GenreRomance, true))
	s.Record(verdictFor("typo", model.GenreSciFi, false))

	if err := s.WriteResults(dir); err != nil {
		t.Fatalf("write results: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "scifi", "true_neologisms.json"))
	if err != nil {
		t.Fatalf("read scifi results: %v", err)
	}

	var agg model.TokenAggregate
	if err := json.Unmarshal(data, &agg); err != nil {
		t.Fatalf("parse results: %v", err)
	}

	if agg.UniqueTokens != 1 {
		t.Errorf("Expected 1 confirmed scifi neologism, got %d", agg.UniqueTokens)
	}
	if _, ok := agg.AggregatedTokens["spaceship"]; !ok {
		t.Error("Expected 'spaceship' in scifi true neologisms")
	}
	if _, ok := agg.AggregatedTokens["heartfire"]; ok {
		t.Error("Romance verdict leaked into scifi results")
	}
}

func TestStore_ConfirmedByGenre(t *testing.T) {
	s, err := LoadStore(filepath.Join(t.TempDir(), "progress.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	s.Record(verdictFor("spaceship", model.GenreSciFi, true))
	s.Record(verdictFor("heartfire", model.GenreRomance, true))

	scifi := s.ConfirmedByGenre(model.GenreSciFi)
	if len(scifi) != 1 {
		t.Fatalf("Expected 1 scifi confirmation, got %d", len(scifi))
	}
	if _, ok := scifi["spaceship"]; !ok {
		t.Error("Expected 'spaceship' confirmed for scifi")
	}
}
