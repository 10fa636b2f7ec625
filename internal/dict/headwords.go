package dict

import (
	"regexp"
	"strings"
)

// The scanned Chambers dictionary marks a headword as a line-initial
// word followed by a comma and two spaces. Everything else on an entry
// line is definition text. OCR noise makes the structural cues below
// heuristic; lines that fit no cue are skipped, never fatal.
var (
	// Capture group stands in for the original lookahead: headword
	// immediately followed by ",  ".
	entryRe = regexp.MustCompile(`^([A-Za-z\-']+),  `)

	// Continuation of a hyphenated headword broken across lines
	hyphenEndRe = regexp.MustCompile(`. ([a-zA-Z]+)-$`)
)

// bracketAge is how many lines a bracketed block may suppress entries
// before it is assumed to be an unclosed OCR artifact.
const bracketAge = 10

// HeadwordResult reports what extraction found
type HeadwordResult struct {
	Entries []string
	Skipped int // Lines that produced no entry
}

// ExtractHeadwords walks the OCR text line by line and collects headword
// entries, suppressing etymology blocks inside brackets, joining
// hyphenated continuations and guarding against OCR-induced alphabetic
// jumps.
func ExtractHeadwords(lines []string) HeadwordResult {
	var (
		entries             []string
		skipped             int
		previousLineIsEntry bool
		previousEntry       string
		incompleteWord      string
		bracketStack        []int // Ages of currently open bracket blocks
		firstLetters        = make(map[byte]struct{})
	)

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		currentEntry := ""
		if m := entryRe.FindStringSubmatch(line); m != nil {
			currentEntry = incompleteWord + m[1]
			incompleteWord = ""
		}

		bracketIndex := firstBracketIndex(line)

		switch {
		case currentEntry != "" && bracketIndex != -1 && bracketIndex > strings.Index(line, currentEntry):
			// Brackets open after the headword: the entry is valid,
			// the bracketed tail is just definition material.
			bracketStack = updateBrackets(bracketStack, line)
			bracketStack = ageBrackets(bracketStack, line == "")

		case currentEntry == "":
			skipped++
			previousLineIsEntry = false
			bracketStack = updateBrackets(bracketStack, line)
			bracketStack = ageBrackets(bracketStack, line == "")
			continue

		default:
			bracketStack = updateBrackets(bracketStack, line)
			bracketStack = ageBrackets(bracketStack, line == "")
			if len(bracketStack) > 0 {
				skipped++
				continue
			}
		}

		if m := hyphenEndRe.FindStringSubmatch(line); m != nil {
			if incompleteWord == "" {
				// Start of a hyphenated headword; finish it next line
				incompleteWord = m[1] + "-"
				skipped++
				continue
			}
			incompleteWord += m[1]
		}

		if previousLineIsEntry || alphabeticJump(currentEntry, previousEntry, firstLetters) {
			skipped++
			previousLineIsEntry = false
			continue
		}

		entries = append(entries, currentEntry)
		previousLineIsEntry = true
		previousEntry = currentEntry
	}

	return HeadwordResult{Entries: entries, Skipped: skipped}
}

func firstBracketIndex(line string) int {
	idx := -1
	for _, c := range []byte{'(', '['} {
		if i := strings.IndexByte(line, c); i != -1 && (idx == -1 || i < idx) {
			idx = i
		}
	}
	return idx
}

// updateBrackets pushes an age-zero block for each opener and pops one
// for each closer.
func updateBrackets(stack []int, line string) []int {
	for _, c := range line {
		switch c {
		case '[', '(':
			stack = append(stack, 0)
		case ']', ')':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	return stack
}

// ageBrackets increments every open block's age and drops blocks that
// outlived bracketAge or hit an empty line (unclosed OCR brackets).
func ageBrackets(stack []int, emptyLine bool) []int {
	kept := stack[:0]
	for _, age := range stack {
		if age >= bracketAge || emptyLine {
			continue
		}
		kept = append(kept, age+1)
	}
	return kept
}

// alphabeticJump flags an entry whose first letter jumps more than one
// place in the alphabet from the previous entry. The first time a letter
// appears after such a jump it is treated as OCR noise; once the letter
// is established, entries under it pass.
func alphabeticJump(current, previous string, firstLetters map[byte]struct{}) bool {
	if previous == "" || current == "" {
		return false
	}

	prev := lowerByte(previous[0])
	curr := lowerByte(current[0])

	if abs(int(curr)-int(prev)) > 1 {
		if _, ok := firstLetters[curr]; ok {
			return false
		}
		firstLetters[curr] = struct{}{}
		return true
	}
	return false
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
