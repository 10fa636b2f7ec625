package annotate

import "strings"

// SplitChunks splits a long text into chunks no longer than chunkSize.
// Splitting happens on paragraph breaks so sentence boundaries survive;
// a single paragraph longer than chunkSize becomes its own oversized
// chunk rather than being cut mid-sentence.
func SplitChunks(text string, chunkSize int) []string {
	if chunkSize <= 0 || len(text) <= chunkSize {
		return []string{text}
	}

	paragraphs := strings.Split(text, "\n\n")
	var chunks []string
	var current strings.Builder

	for _, para := range paragraphs {
		if current.Len()+len(para)+2 < chunkSize {
			current.WriteString(para)
			current.WriteString("\n\n")
			continue
		}
		if current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		current.WriteString(para)
		current.WriteString("\n\n")
	}

	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}
