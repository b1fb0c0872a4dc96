package todosync

import "strings"

// SplitLines splits document text on "\n". A trailing newline yields a
// final empty element, so JoinLines(SplitLines(s)) == s for any s.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// Block is a contiguous region of a document located between two delimiter
// lines. Prefix and Suffix carry the untouched surrounding text so the
// document can be reassembled losslessly.
type Block struct {
	Prefix []string // lines before the start delimiter line
	Start  string   // matched start delimiter line; unset when HasStart is false
	Lines  []string // lines between the delimiters
	End    string   // matched end delimiter line; unset when HasEnd is false
	Suffix []string // lines after the end delimiter line

	// HasStart/HasEnd are false when the corresponding boundary is a
	// document edge rather than a matched line.
	HasStart bool
	HasEnd   bool
}
