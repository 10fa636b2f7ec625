package dict

import (
	"path/filepath"
	"testing"
)

func TestCombine_UnionsBothSources(t *testing.T) {
	e := Combine([]string{"Rocket", "Abbey"}, map[string]int{"run": 100, "ran": 12})

	for _, word := range []string{"rocket", "abbey", "run", "ran"} {
		if !e.Contains(word) {
			t.Errorf("Expected %q in combined set", word)
		}
	}
	if e.Len() != 4 {
		t.Errorf("Len = %d, want 4", e.Len())
	}
}

func TestExclusion_CaseInsensitive(t *testing.T) {
	e := Combine([]string{"Rocket"}, nil)

	if !e.Contains("ROCKET") || !e.Contains("rocket") {
		t.Error("Membership must be case-insensitive")
	}
	if e.Contains("spaceship") {
		t.Error("Absent word reported as member")
	}
}

func TestHeadwords_SaveLoadSortedUnique(t *testing.T) {
	path := filepath.Join(t.TempDir(), "headwords.json")

	if err := SaveHeadwords(path, []string{"zebra", "abbey", "zebra"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadHeadwords(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(loaded) != 2 {
		t.Fatalf("Expected 2 unique entries, got %v", loaded)
	}
	if loaded[0] != "abbey" || loaded[1] != "zebra" {
		t.Errorf("Expected sorted entries, got %v", loaded)
	}
}

func TestLoadCombined(t *testing.T) {
	dir := t.TempDir()
	headwordsPath := filepath.Join(dir, "headwords.json")
	corpusPath := filepath.Join(dir, "corpus.json")

	if err := SaveHeadwords(headwordsPath, []string{"run"}); err != nil {
		t.Fatalf("save headwords: %v", err)
	}
	if err := SaveCorpusCounts(corpusPath, map[string]int{"rocket": 3}); err != nil {
		t.Fatalf("save corpus: %v", err)
	}

	e, err := LoadCombined(headwordsPath, corpusPath)
	if err != nil {
		t.Fatalf("load combined: %v", err)
	}
	if !e.Contains("run") || !e.Contains("rocket") {
		t.Error("Combined dictionary missing entries")
	}
}

func TestLoadCombined_MissingFile(t *testing.T) {
	if _, err := LoadCombined("/nonexistent/h.json", "/nonexistent/c.json"); err == nil {
		t.Error("Expected error for missing dictionary files")
	}
}
