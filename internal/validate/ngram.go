package validate

import (
	"fmt"
	"net/url"
)

// Google Books Ngram viewer settings used as the evidence source:
// English corpus 26, 1800-2019, smoothing 3. The link is followed by
// the human validator; nothing is fetched programmatically.
const (
	ngramBase      = "https://books.google.com/ngrams/graph"
	ngramYearStart = 1800
	ngramYearEnd   = 2019
	ngramCorpus    = 26
	ngramSmoothing = 3
)

// NgramURL builds the lookup link for a candidate. When the lemma
// differs from the word, both are plotted so the validator sees the
// base form's history alongside the candidate's.
func NgramURL(word, lemma string) string {
	query := word
	if lemma != "" && lemma != word {
		query = word + "," + lemma
	}

	return fmt.Sprintf("%s?content=%s&year_start=%d&year_end=%d&corpus=%d&smoothing=%d",
		ngramBase, url.QueryEscape(query), ngramYearStart, ngramYearEnd, ngramCorpus, ngramSmoothing)
}
