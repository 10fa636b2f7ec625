package extract

import (
	"strings"

	"github.com/ppiankov/neolex/internal/model"
)

// Dropped reports whether a token is excluded from aggregation:
// named entities, punctuation, whitespace, proper nouns, unclassified
// tokens, numerals (or anything containing a digit) and stopwords.
// Named-entity vs. neologism confusion is a known limitation of this
// rule, not something resolved here.
func Dropped(tok model.AnnotatedToken) bool {
	if tok.NER != "" {
		return true
	}
	if tok.IsPunct {
		return true
	}
	switch tok.POS {
	case model.POSSpace, model.POSPropn, model.POSOther, model.POSPunct:
		return true
	}
	if tok.POS == model.POSNum || strings.ContainsAny(tok.Text, "0123456789") {
		return true
	}
	if tok.IsStop {
		return true
	}
	return false
}

// Fold adds every surviving token of sentences into agg, keyed by the
// lowercased surface form. The first encountered surface form is kept
// as the record's full form.
func Fold(agg *model.TokenAggregate, sentences []model.Sentence) {
	for _, sent := range sentences {
		for _, tok := range sent {
			if Dropped(tok) {
				continue
			}

			agg.TotalTokens++
			key := tok.Lower
			if rec, ok := agg.AggregatedTokens[key]; ok {
				rec.Frequency++
				agg.AggregatedTokens[key] = rec
			} else {
				agg.AggregatedTokens[key] = model.UniqueTokenRecord{
					FullForm:  tok.Text,
					Lemma:     tok.Lemma,
					POS:       tok.POS,
					Frequency: 1,
				}
			}
		}
	}
}

// Finalize stamps the unique-token count once folding is done
func Finalize(agg *model.TokenAggregate) {
	agg.UniqueTokens = len(agg.AggregatedTokens)
}
