package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func writeTestArchive(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gutenberg-test.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create archive: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	files := map[string]string{
		"gutenberg-dammit-files/gutenberg-metadata.json": `[
			{"Title": ["The War in the Air"], "Author": ["H. G. Wells"],
			 "Author Death": ["1946"], "Language": ["English"],
			 "gd-path": "007/00780.txt", "Num": "780"},
			{"Title": "A Christmas Carol", "Author": ["Charles Dickens"],
			 "Author Death": ["1870"], "Language": ["English"],
			 "gd-path": "000/00046.txt", "Num": "46"},
			{"Title": ["Les Misérables"], "Author": ["Victor Hugo"],
			 "Author Death": ["1885"], "Language": ["French"],
			 "gd-path": "001/00135.txt", "Num": "135"},
			{"Title": ["Anonymous Fragment"], "Author": [],
			 "Author Death": [], "Language": ["English"],
			 "gd-path": "009/00900.txt", "Num": "900"}
		]`,
		"gutenberg-dammit-files/007/00780.txt": "The airships came over the ridge.",
		"gutenberg-dammit-files/000/00046.txt": "Marley was dead, to begin with.",
	}

	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}

	return path
}

func TestArchive_SearchByTitle(t *testing.T) {
	a, err := Open(writeTestArchive(t))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer a.Close()

	record, text, err := a.SearchByTitle("War in the Air")
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	if record.Author.First() != "H. G. Wells" {
		t.Errorf("Expected Wells, got %q", record.Author.First())
	}
	if text != "The airships came over the ridge." {
		t.Errorf("Unexpected text: %q", text)
	}
}

func TestArchive_SearchByTitle_NotFound(t *testing.T) {
	a, err := Open(writeTestArchive(t))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer a.Close()

	if _, _, err := a.SearchByTitle("Moby Dick"); err == nil {
		t.Error("Expected error for missing title")
	}
}

func TestArchive_MetadataToleratesStringTitles(t *testing.T) {
	a, err := Open(writeTestArchive(t))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer a.Close()

	records, err := a.Metadata()
	if err != nil {
		t.Fatalf("metadata: %v", err)
	}

	found := false
	for _, r := range records {
		if r.Title.First() == "A Christmas Carol" {
			found = true
		}
	}
	if !found {
		t.Error("Expected plain-string title to parse into a one-element list")
	}
}

func TestFilterPre1900English(t *testing.T) {
	a, err := Open(writeTestArchive(t))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer a.Close()

	records, err := a.Metadata()
	if err != nil {
		t.Fatalf("metadata: %v", err)
	}

	filtered := FilterPre1900English(records, 1900)

	// Dickens (d. 1870, English) qualifies. Wells died after 1900,
	// Hugo is French, the fragment has no death year.
	if len(filtered) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(filtered))
	}
	if filtered[0].Num != "46" {
		t.Errorf("Expected record 46, got %s", filtered[0].Num)
	}
}
