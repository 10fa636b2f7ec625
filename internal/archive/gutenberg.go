package archive

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const metadataName = "gutenberg-metadata.json"

// StringList tolerates the Gutenberg-dammit metadata convention of
// encoding single values either as a string or a one-element array.
type StringList []string

// UnmarshalJSON accepts both "value" and ["value", ...]
func (s *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("string list: %s", data)
	}
	*s = []string{single}
	return nil
}

// First returns the first value or the empty string
func (s StringList) First() string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

// Record is one work's metadata entry in the archive
type Record struct {
	Title       StringList `json:"Title"`
	Author      StringList `json:"Author"`
	AuthorDeath StringList `json:"Author Death"`
	Language    StringList `json:"Language"`
	GDPath      string     `json:"gd-path"`
	Num         string     `json:"Num"`
}

// ID returns a stable identifier for checkpointing
func (r Record) ID() string {
	if r.Num != "" {
		return r.Num
	}
	return r.GDPath
}

// Archive reads novels and corpus texts from a local Gutenberg-dammit ZIP
type Archive struct {
	zr     *zip.ReadCloser
	byName map[string]*zip.File
	prefix string // Directory prefix inside the ZIP, e.g. "gutenberg-dammit-files/"
}

// Open opens the archive at path and indexes its contents
func Open(path string) (*Archive, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}

	a := &Archive{
		zr:     zr,
		byName: make(map[string]*zip.File, len(zr.File)),
	}

	for _, f := range zr.File {
		a.byName[f.Name] = f
		if strings.HasSuffix(f.Name, metadataName) {
			a.prefix = strings.TrimSuffix(f.Name, metadataName)
		}
	}

	if _, ok := a.byName[a.prefix+metadataName]; !ok {
		zr.Close()
		return nil, fmt.Errorf("archive %s: %s not found", path, metadataName)
	}

	return a, nil
}

// Close releases the underlying ZIP reader
func (a *Archive) Close() error {
	return a.zr.Close()
}

// Metadata loads and parses all metadata records
func (a *Archive) Metadata() ([]Record, error) {
	data, err := a.readFile(a.prefix + metadataName)
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse metadata: %w", err)
	}

	return records, nil
}

// Retrieve returns the full text of a work by its gd-path
func (a *Archive) Retrieve(gdPath string) (string, error) {
	data, err := a.readFile(a.prefix + gdPath)
	if err != nil {
		return "", fmt.Errorf("retrieve %s: %w", gdPath, err)
	}
	return string(data), nil
}

// SearchByTitle returns the first record whose title contains keyword
// together with its text.
func (a *Archive) SearchByTitle(keyword string) (Record, string, error) {
	records, err := a.Metadata()
	if err != nil {
		return Record{}, "", err
	}

	for _, r := range records {
		for _, title := range r.Title {
			if strings.Contains(title, keyword) {
				text, err := a.Retrieve(r.GDPath)
				if err != nil {
					return Record{}, "", err
				}
				return r, text, nil
			}
		}
	}

	return Record{}, "", fmt.Errorf("no work matching title %q", keyword)
}

// FilterPre1900English keeps records of English works whose author died
// before cutoffYear. Records with missing or unparsable death years are
// dropped, never fatal.
func FilterPre1900English(records []Record, cutoffYear int) []Record {
	var filtered []Record
	for _, r := range records {
		death, err := strconv.Atoi(strings.TrimSpace(r.AuthorDeath.First()))
		if err != nil || death >= cutoffYear {
			continue
		}

		english := false
		for _, lang := range r.Language {
			if strings.EqualFold(lang, "english") {
				english = true
				break
			}
		}
		if !english {
			continue
		}

		filtered = append(filtered, r)
	}
	return filtered
}

func (a *Archive) readFile(name string) ([]byte, error) {
	f, ok := a.byName[name]
	if !ok {
		return nil, fmt.Errorf("%s: not in archive", name)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}
