package dict

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Exclusion is a historical word set used to filter out already-attested
// tokens. Immutable once built: membership tests only after construction.
type Exclusion struct {
	words map[string]struct{}
}

// NewExclusion creates an empty exclusion set
func NewExclusion() *Exclusion {
	return &Exclusion{words: make(map[string]struct{})}
}

// Combine builds the unioned exclusion resource from the dictionary
// headword list and the corpus token counter, lowercasing everything.
func Combine(headwords []string, corpus map[string]int) *Exclusion {
	e := NewExclusion()
	for _, w := range headwords {
		e.add(w)
	}
	for w := range corpus {
		e.add(w)
	}
	return e
}

func (e *Exclusion) add(word string) {
	e.words[strings.ToLower(word)] = struct{}{}
}

// Contains tests case-insensitive membership
func (e *Exclusion) Contains(word string) bool {
	_, ok := e.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of distinct entries
func (e *Exclusion) Len() int {
	return len(e.words)
}

// SaveHeadwords persists a headword list as a sorted, deduplicated JSON
// array of strings.
func SaveHeadwords(path string, entries []string) error {
	seen := make(map[string]struct{}, len(entries))
	var unique []string
	for _, entry := range entries {
		if _, ok := seen[entry]; ok {
			continue
		}
		seen[entry] = struct{}{}
		unique = append(unique, entry)
	}
	sort.Strings(unique)

	data, err := json.MarshalIndent(unique, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal headwords: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// LoadHeadwords reads a JSON array of headword strings
func LoadHeadwords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return entries, nil
}

// SaveCorpusCounts persists the corpus token counter as a JSON object
// of token -> frequency.
func SaveCorpusCounts(path string, counts map[string]int) error {
	data, err := json.MarshalIndent(counts, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal corpus counts: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// LoadCorpusCounts reads a JSON object of token -> frequency
func LoadCorpusCounts(path string) (map[string]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var counts map[string]int
	if err := json.Unmarshal(data, &counts); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return counts, nil
}

// LoadCombined loads both persisted dictionaries and unions them
func LoadCombined(headwordsPath, corpusPath string) (*Exclusion, error) {
	headwords, err := LoadHeadwords(headwordsPath)
	if err != nil {
		return nil, fmt.Errorf("load headword dictionary: %w", err)
	}
	corpus, err := LoadCorpusCounts(corpusPath)
	if err != nil {
		return nil, fmt.Errorf("load corpus dictionary: %w", err)
	}
	return Combine(headwords, corpus), nil
}
