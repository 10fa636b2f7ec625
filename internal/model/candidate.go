package model

import "time"

// Category classifies how a candidate escaped the exclusion dictionaries
type Category string

const (
	// CategoryNeoCombination: the lemma is attested but this surface form
	// is not (unattested inflection or derivation of a known base).
	CategoryNeoCombination Category = "neo_combination"

	// CategoryNovelNeologism: neither surface form nor lemma is attested.
	CategoryNovelNeologism Category = "novel_neologism"
)

// Categories lists candidate categories in stable order
var Categories = []Category{CategoryNeoCombination, CategoryNovelNeologism}

// CandidateSet holds the candidates of one genre and category, keyed by
// lowercased surface form. Derived from a TokenAggregate, never mutated.
type CandidateSet struct {
	Genre    Genre                        `json:"genre"`
	Category Category                     `json:"category"`
	Tokens   map[string]UniqueTokenRecord `json:"aggregated_tokens"`
}

// Verdict is a human decision on one candidate
type Verdict struct {
	Word       string            `json:"word"`
	Data       UniqueTokenRecord `json:"data"`
	Genre      Genre             `json:"genre"`
	Category   Category          `json:"category"`
	Confirmed  bool              `json:"confirmed"`
	DecidedAt  time.Time         `json:"decided_at"`
}

// GenreMetrics is the final per-genre result
type GenreMetrics struct {
	Genre                   Genre   `json:"genre"`
	TotalUniqueTokens       int     `json:"total_unique_tokens"`
	ConfirmedNeologismCount int     `json:"confirmed_neologism_count"`
	FrequencyPercent        float64 `json:"frequency_percent"`
}
