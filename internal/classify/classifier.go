package classify

import (
	"strings"

	"github.com/ppiankov/neolex/internal/dict"
	"github.com/ppiankov/neolex/internal/model"
)

// Result carries the two candidate categories for one genre.
//
// Tokens whose surface form is attested are excluded outright: a surface
// match in either dictionary is always sufficient. Of the remainder,
// tokens with an attested lemma are neo-combinations (known base,
// unattested inflection or derivation) and tokens with neither attested
// are the candidate neologisms proper. The OR rule between surface and
// lemma is the published methodology's exact policy; do not tighten or
// loosen it.
type Result struct {
	NeoCombinations model.CandidateSet
	NovelNeologisms model.CandidateSet
}

// Candidates returns the candidate neologism list: tokens absent from
// both dictionaries by surface form and by lemma.
func (r Result) Candidates() model.CandidateSet {
	return r.NovelNeologisms
}

// Classify filters a genre's token aggregate against the combined
// exclusion dictionary. Deterministic: the output sets depend only on
// the aggregate contents and the dictionary, never on iteration order.
func Classify(genre model.Genre, agg *model.TokenAggregate, exclusion *dict.Exclusion) Result {
	result := Result{
		NeoCombinations: model.CandidateSet{
			Genre:    genre,
			Category: model.CategoryNeoCombination,
			Tokens:   make(map[string]model.UniqueTokenRecord),
		},
		NovelNeologisms: model.CandidateSet{
			Genre:    genre,
			Category: model.CategoryNovelNeologism,
			Tokens:   make(map[string]model.UniqueTokenRecord),
		},
	}

	for token, record := range agg.AggregatedTokens {
		// Single-character tokens and lemmas are tokenizer debris
		if len(token) <= 1 {
			continue
		}
		lemma := strings.ToLower(record.Lemma)
		if len(lemma) <= 1 {
			continue
		}

		if exclusion.Contains(token) {
			continue
		}

		if exclusion.Contains(lemma) {
			result.NeoCombinations.Tokens[token] = record
		} else {
			result.NovelNeologisms.Tokens[token] = record
		}
	}

	return result
}
