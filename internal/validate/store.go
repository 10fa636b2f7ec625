package validate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ppiankov/neolex/internal/model"
)

// Store is the human-maintained verdict store. It persists progress so
// a validation session can stop and resume, and writes the final
// per-genre confirmed/rejected files the aggregator consumes.
type Store struct {
	path      string
	Confirmed map[string]model.Verdict
	Rejected  map[string]model.Verdict
}

type progressFile struct {
	Confirmed map[string]model.Verdict `json:"validated_true"`
	Rejected  map[string]model.Verdict `json:"validated_false"`
}

// LoadStore reads existing progress from path, or starts fresh
func LoadStore(path string) (*Store, error) {
	s := &Store{
		path:      path,
		Confirmed: make(map[string]model.Verdict),
		Rejected:  make(map[string]model.Verdict),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read progress: %w", err)
	}

	var file progressFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse progress %s: %w", path, err)
	}
	if file.Confirmed != nil {
		s.Confirmed = file.Confirmed
	}
	if file.Rejected != nil {
		s.Rejected = file.Rejected
	}

	return s, nil
}

// Record stores one verdict, replacing any earlier decision on the word
func (s *Store) Record(v model.Verdict) {
	if v.Confirmed {
		s.Confirmed[v.Word] = v
		delete(s.Rejected, v.Word)
	} else {
		s.Rejected[v.Word] = v
		delete(s.Confirmed, v.Word)
	}
}

// Decided reports whether the word already has a verdict
func (s *Store) Decided(word string) bool {
	if _, ok := s.Confirmed[word]; ok {
		return true
	}
	_, ok := s.Rejected[word]
	return ok
}

// Save persists progress to the store path
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create progress dir: %w", err)
	}

	data, err := json.MarshalIndent(progressFile{
		Confirmed: s.Confirmed,
		Rejected:  s.Rejected,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	return nil
}

// ConfirmedByGenre returns the confirmed verdicts for one genre
func (s *Store) ConfirmedByGenre(genre model.Genre) map[string]model.UniqueTokenRecord {
	out := make(map[string]model.UniqueTokenRecord)
	for word, v := range s.Confirmed {
		if v.Genre == genre {
			out[word] = v.Data
		}
	}
	return out
}

// WriteResults writes the final true/false neologism files per genre
// under dir/<genre>/, in the same aggregate shape the pipeline uses
// elsewhere.
func (s *Store) WriteResults(dir string) error {
	for _, genre := range model.Genres {
		genreDir := filepath.Join(dir, genre.String())
		if err := os.MkdirAll(genreDir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", genreDir, err)
		}

		confirmed := s.ConfirmedByGenre(genre)
		rejected := make(map[string]model.UniqueTokenRecord)
		for word, v := range s.Rejected {
			if v.Genre == genre {
				rejected[word] = v.Data
			}
		}

		if err := writeAggregate(filepath.Join(genreDir, "true_neologisms.json"), confirmed); err != nil {
			return err
		}
		if err := writeAggregate(filepath.Join(genreDir, "false_neologisms.json"), rejected); err != nil {
			return err
		}
	}
	return nil
}

func writeAggregate(path string, tokens map[string]model.UniqueTokenRecord) error {
	agg := model.TokenAggregate{
		AggregatedTokens: tokens,
		TotalTokens:      len(tokens),
		UniqueTokens:     len(tokens),
	}

	data, err := json.MarshalIndent(agg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
