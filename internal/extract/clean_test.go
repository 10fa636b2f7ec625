package extract

import (
	"strings"
	"testing"
)

func TestClean_RemovesContentsBlock(t *testing.T) {
	text := "THE WAR IN THE AIR\n\nCONTENTS\nI. Of Progress\nII. The City\n\nThe first chapter begins here."

	cleaned := Clean(text)

	if strings.Contains(cleaned, "Of Progress") {
		t.Error("Expected table of contents to be removed")
	}
	if !strings.Contains(cleaned, "The first chapter begins here") {
		t.Error("Body text must survive cleaning")
	}
}

func TestClean_RemovesChapterHeadings(t *testing.T) {
	text := "CHAPTER I\nIt was a dark night.\nCHAPTER XIV. THE RETURN\nAnd so it ended."

	cleaned := Clean(text)

	if strings.Contains(cleaned, "CHAPTER") {
		t.Errorf("Expected chapter headings to be removed, got %q", cleaned)
	}
	if !strings.Contains(cleaned, "It was a dark night") || !strings.Contains(cleaned, "And so it ended") {
		t.Error("Body text must survive cleaning")
	}
}

func TestClean_CollapsesPunctuationRuns(t *testing.T) {
	cleaned := Clean("What!!! No way...")

	if strings.Contains(cleaned, "!!") || strings.Contains(cleaned, "..") {
		t.Errorf("Expected punctuation runs collapsed, got %q", cleaned)
	}
}

func TestClean_DetachesStuckPunctuation(t *testing.T) {
	cleaned := Clean("hello,world")

	if !strings.Contains(cleaned, "hello , world") {
		t.Errorf("Expected punctuation detached on both sides, got %q", cleaned)
	}
}

func TestClean_PreservesNewlines(t *testing.T) {
	cleaned := Clean("first   paragraph\n\nsecond\tparagraph")

	if !strings.Contains(cleaned, "\n\n") {
		t.Error("Paragraph breaks must survive for chunking")
	}
	if strings.Contains(cleaned, "  ") || strings.Contains(cleaned, "\t") {
		t.Errorf("Expected spaces and tabs collapsed, got %q", cleaned)
	}
}
