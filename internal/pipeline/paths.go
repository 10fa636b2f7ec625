package pipeline

import (
	"path/filepath"

	"github.com/ppiankov/neolex/internal/model"
)

// Paths fixes the on-disk layout of every pipeline intermediate so the
// stage commands can run independently and hand off through files.
type Paths struct {
	Root string
}

// NewPaths creates the layout rooted at root
func NewPaths(root string) Paths {
	return Paths{Root: root}
}

// RawDir holds one novel text file per configured work
func (p Paths) RawDir(g model.Genre) string {
	return filepath.Join(p.Root, "raw", g.String())
}

// ProcessedDir holds per-novel enriched annotation JSON
func (p Paths) ProcessedDir(g model.Genre) string {
	return filepath.Join(p.Root, "processed", g.String())
}

// FilteredFile is the per-genre unique-token aggregate
func (p Paths) FilteredFile(g model.Genre) string {
	return filepath.Join(p.Root, "filtered", g.String()+"_filtered.json")
}

// CandidateFile is a per-genre, per-category candidate list
func (p Paths) CandidateFile(g model.Genre, c model.Category) string {
	return filepath.Join(p.Root, "candidates", g.String(), string(c)+"s.json")
}

// ValidatedDir holds the verdict store and final neologism lists
func (p Paths) ValidatedDir() string {
	return filepath.Join(p.Root, "validated")
}

// ProgressFile is the resumable verdict store
func (p Paths) ProgressFile() string {
	return filepath.Join(p.ValidatedDir(), "progress.json")
}

// TrueNeologismsFile is the confirmed list for one genre
func (p Paths) TrueNeologismsFile(g model.Genre) string {
	return filepath.Join(p.ValidatedDir(), g.String(), "true_neologisms.json")
}

// DictsDir holds the exclusion dictionaries
func (p Paths) DictsDir() string {
	return filepath.Join(p.Root, "dicts")
}

// HeadwordsFile is the OCR-extracted dictionary headword list
func (p Paths) HeadwordsFile() string {
	return filepath.Join(p.DictsDir(), "extracted_chamber_entries.json")
}

// CorpusFile is the corpus-derived token frequency dictionary
func (p Paths) CorpusFile() string {
	return filepath.Join(p.DictsDir(), "corpus_filter_dictionary.json")
}

// CorpusCheckpointFile is the resumable corpus-build state
func (p Paths) CorpusCheckpointFile() string {
	return filepath.Join(p.DictsDir(), "corpus_checkpoint.json")
}

// CacheDir holds cached annotation results
func (p Paths) CacheDir() string {
	return filepath.Join(p.Root, "cache")
}
