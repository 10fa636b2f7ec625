package validate

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/ppiankov/neolex/internal/model"
)

// Session drives an interactive terminal review of candidate sets.
// Confirmation is a human policy decision (minimal pre-1900 usage with
// a later spike, or total absence that is not a typographical artifact);
// the session only presents evidence and records verdicts.
type Session struct {
	store *Store
	in    *bufio.Scanner
	out   io.Writer
}

// NewSession creates a session reading verdicts from in
func NewSession(store *Store, in io.Reader, out io.Writer) *Session {
	return &Session{
		store: store,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run reviews every undecided candidate in the given sets. Words are
// presented in sorted order so interrupted sessions resume predictably.
// Returns the number of verdicts recorded in this session.
func (s *Session) Run(sets []model.CandidateSet) (int, error) {
	type item struct {
		word string
		rec  model.UniqueTokenRecord
		set  model.CandidateSet
	}

	var items []item
	for _, set := range sets {
		for word, rec := range set.Tokens {
			if s.store.Decided(word) {
				continue
			}
			items = append(items, item{word: word, rec: rec, set: set})
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].word < items[j].word })

	decided := 0
	for i := 0; i < len(items); i++ {
		it := items[i]
		s.present(it.word, it.rec, it.set, i+1, len(items))

		cmd, err := s.read()
		if err != nil {
			return decided, err
		}

		switch cmd {
		case "t", "y":
			s.store.Record(s.verdict(it.word, it.rec, it.set, true))
			decided++
		case "f", "n":
			s.store.Record(s.verdict(it.word, it.rec, it.set, false))
			decided++
		case "s":
			// Skip, leave undecided
		case "p":
			if i > 0 {
				i -= 2
			} else {
				i--
			}
		case "q":
			return decided, s.store.Save()
		default:
			fmt.Fprintf(s.out, "Unknown command %q (t/f/s/p/q)\n", cmd)
			i--
			continue
		}

		// Persist every few verdicts so a crash loses little work
		if decided > 0 && decided%5 == 0 {
			if err := s.store.Save(); err != nil {
				return decided, err
			}
		}
	}

	return decided, s.store.Save()
}

func (s *Session) present(word string, rec model.UniqueTokenRecord, set model.CandidateSet, pos, total int) {
	fmt.Fprintf(s.out, "\n[%d/%d] %s\n", pos, total, word)
	fmt.Fprintf(s.out, "  Full form: %s\n", rec.FullForm)
	fmt.Fprintf(s.out, "  Lemma:     %s\n", rec.Lemma)
	fmt.Fprintf(s.out, "  POS:       %s\n", rec.POS)
	fmt.Fprintf(s.out, "  Frequency: %d\n", rec.Frequency)
	fmt.Fprintf(s.out, "  Genre:     %s\n", set.Genre.Display())
	switch set.Category {
	case model.CategoryNeoCombination:
		fmt.Fprintf(s.out, "  Category:  neo-combination (lemma attested, this form is not)\n")
	default:
		fmt.Fprintf(s.out, "  Category:  novel neologism (neither form nor lemma attested)\n")
	}
	fmt.Fprintf(s.out, "  Ngram:     %s\n", NgramURL(word, rec.Lemma))
	fmt.Fprintf(s.out, "[t]rue neologism  [f]alse  [s]kip  [p]revious  [q]uit+save > ")
}

func (s *Session) read() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "q", nil // EOF ends the session like quit
	}
	return strings.ToLower(strings.TrimSpace(s.in.Text())), nil
}

func (s *Session) verdict(word string, rec model.UniqueTokenRecord, set model.CandidateSet, confirmed bool) model.Verdict {
	return model.Verdict{
		Word:      word,
		Data:      rec,
		Genre:     set.Genre,
		Category:  set.Category,
		Confirmed: confirmed,
		DecidedAt: time.Now().UTC(),
	}
}
