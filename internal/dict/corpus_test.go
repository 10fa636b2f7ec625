package dict

import (
	"testing"
)

func TestTokenizeCounts_KeepsHyphenatedWords(t *testing.T) {
	counts := TokenizeCounts("The self-acting machine was self-acting indeed.", 2)

	if counts["self-acting"] != 2 {
		t.Errorf("Expected 'self-acting' counted twice, got %d", counts["self-acting"])
	}
	if counts["machine"] != 1 {
		t.Errorf("Expected 'machine' counted once, got %d", counts["machine"])
	}
}

func TestTokenizeCounts_Lowercases(t *testing.T) {
	counts := TokenizeCounts("London LONDON london", 2)

	if counts["london"] != 3 {
		t.Errorf("Expected case-folded count 3, got %d", counts["london"])
	}
	if _, ok := counts["London"]; ok {
		t.Error("Uppercase key must not appear")
	}
}

func TestTokenizeCounts_MinimumLength(t *testing.T) {
	counts := TokenizeCounts("I am a big cat", 2)

	for _, short := range []string{"i", "a"} {
		if _, ok := counts[short]; ok {
			t.Errorf("Token %q below minimum length must be dropped", short)
		}
	}
	if counts["am"] != 1 || counts["big"] != 1 || counts["cat"] != 1 {
		t.Errorf("Unexpected counts: %v", counts)
	}
}

func TestTokenizeCounts_IgnoresDigitsAndPunctuation(t *testing.T) {
	counts := TokenizeCounts("In 1908, the airship (so-called) flew!", 2)

	if _, ok := counts["1908"]; ok {
		t.Error("Numbers must not be tokenized")
	}
	if counts["so-called"] != 1 {
		t.Errorf("Expected 'so-called', got %v", counts)
	}
}

func TestCheckpoint_RoundTrip(t *testing.T) {
	path := t.TempDir() + "/checkpoint.json"
	cp := NewCheckpoint(path)

	state, err := cp.Load()
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if len(state.Processed) != 0 || len(state.Counter) != 0 {
		t.Fatal("Expected fresh state when no checkpoint exists")
	}

	state.Processed["46"] = struct{}{}
	state.Counter["marley"] = 7

	if err := cp.Save(state); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded, err := cp.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if _, ok := reloaded.Processed["46"]; !ok {
		t.Error("Processed record lost across save/load")
	}
	if reloaded.Counter["marley"] != 7 {
		t.Errorf("Counter lost across save/load: %v", reloaded.Counter)
	}
}
