package extract

import (
	"regexp"
	"strings"
)

// Raw Gutenberg texts keep a table of contents and per-chapter headings
// that would pollute the token counts, and OCR leaves punctuation runs
// the tokenizer trips over.
var (
	contentsBlockRe = regexp.MustCompile(`(?is)CONTENTS.*?\n\s*\n`)
	chapterLineRe   = regexp.MustCompile(`(?im)^CHAPTER\s+[IVXLCDM]+\b.*$`)
	punctRunRe      = regexp.MustCompile(`([!?.,;:"'\-]){2,}`)
	punctWordRe     = regexp.MustCompile(`([!?.,;:"'\-])([A-Za-z])`)
	wordPunctRe     = regexp.MustCompile(`([A-Za-z])([!?.,;:"'\-])`)
	spacesRe        = regexp.MustCompile(`[ \t]+`)
)

// Clean prepares a raw novel text for annotation:
//   - drops the table-of-contents block (from a CONTENTS line to the
//     first blank line)
//   - drops CHAPTER headings with roman numerals
//   - collapses repeated punctuation and detaches punctuation stuck to
//     words
//   - collapses spaces and tabs but preserves newlines, which chunking
//     relies on
func Clean(text string) string {
	text = contentsBlockRe.ReplaceAllString(text, "")
	text = chapterLineRe.ReplaceAllString(text, "")

	text = punctRunRe.ReplaceAllString(text, "$1")
	text = punctWordRe.ReplaceAllString(text, "$1 $2")
	text = wordPunctRe.ReplaceAllString(text, "$1 $2")

	text = spacesRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
