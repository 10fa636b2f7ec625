package model

// POS tags follow the Universal Dependencies tag set emitted by the
// annotation service.
type POS string

const (
	POSAdj   POS = "ADJ"
	POSAdp   POS = "ADP"
	POSAdv   POS = "ADV"
	POSAux   POS = "AUX"
	POSConj  POS = "CCONJ"
	POSDet   POS = "DET"
	POSIntj  POS = "INTJ"
	POSNoun  POS = "NOUN"
	POSNum   POS = "NUM"
	POSPart  POS = "PART"
	POSPron  POS = "PRON"
	POSPropn POS = "PROPN"
	POSPunct POS = "PUNCT"
	POSSconj POS = "SCONJ"
	POSSpace POS = "SPACE"
	POSSym   POS = "SYM"
	POSVerb  POS = "VERB"
	POSOther POS = "X"
)

// AnnotatedToken is one token occurrence as returned by the annotation
// service. The field names match the enriched JSON the pipeline persists.
type AnnotatedToken struct {
	Text    string `json:"text"`           // Original surface form
	Lemma   string `json:"lemma"`          // Base/dictionary form
	POS     POS    `json:"pos"`            // Universal POS tag
	NER     string `json:"ner,omitempty"`  // Named-entity label, empty if none
	IsStop  bool   `json:"is_stop"`        // Stopword flag
	IsPunct bool   `json:"is_punct"`       // Punctuation flag
	Lower   string `json:"lower"`          // Lowercased surface form
}

// Sentence is an ordered run of annotated tokens
type Sentence []AnnotatedToken

// UniqueTokenRecord collapses all occurrences of one lowercased surface
// form within a genre aggregate.
type UniqueTokenRecord struct {
	FullForm  string `json:"full_form"` // First encountered surface form
	Lemma     string `json:"lemma"`
	POS       POS    `json:"pos"`
	Frequency int    `json:"frequency"`
}

// TokenAggregate is the persisted per-genre token mapping, keyed by
// lowercased surface form. TotalTokens counts every occurrence that
// survived filtering; UniqueTokens counts distinct keys.
type TokenAggregate struct {
	AggregatedTokens map[string]UniqueTokenRecord `json:"aggregated_tokens"`
	TotalTokens      int                          `json:"total_tokens"`
	UniqueTokens     int                          `json:"unique_tokens"`
}

// NewTokenAggregate returns an empty aggregate ready for folding
func NewTokenAggregate() *TokenAggregate {
	return &TokenAggregate{
		AggregatedTokens: make(map[string]UniqueTokenRecord),
	}
}
