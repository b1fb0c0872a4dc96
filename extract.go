package todosync

import (
	"fmt"
	"regexp"
)

// Extract locates the block bounded by start and end within the document
// lines. Each pattern-based delimiter must match exactly one line. When
// inclusive is true the matched delimiter lines also appear in Block.Lines;
// Block.Start and Block.End retain them either way so reconstruction is
// lossless. The scan is purely positional: one pass, no side effects.
func Extract(lines []string, start, end DelimiterSpec, inclusive bool) (Block, error) {
	startRe, err := start.compile()
	if err != nil {
		return Block{}, err
	}
	endRe, err := end.compile()
	if err != nil {
		return Block{}, err
	}
	return extract(lines, startRe, endRe, inclusive)
}

// extract implements Extract for pre-compiled delimiters; nil means the
// document edge.
func extract(lines []string, startRe, endRe *regexp.Regexp, inclusive bool) (Block, error) {
	var b Block

	// Resolve the start boundary. startIdx is the index of the matched
	// delimiter line, or -1 for the document edge.
	startIdx := -1
	if startRe != nil {
		matches := matchingLines(lines, startRe)
		if err := requireUnique(startRe, matches); err != nil {
			return Block{}, err
		}
		startIdx = matches[0]
		b.Start = lines[startIdx]
		b.HasStart = true
	}

	// Resolve the end boundary among lines after the start. A unique match
	// that precedes the start is an inverted range, not a missing one.
	endIdx := len(lines)
	if endRe != nil {
		all := matchingLines(lines, endRe)
		after := make([]int, 0, len(all))
		for _, idx := range all {
			if idx > startIdx {
				after = append(after, idx)
			}
		}
		if len(after) == 0 && len(all) > 0 {
			return Block{}, fmt.Errorf("%w: %q matched only before the start delimiter", ErrInvalidRange, endRe.String())
		}
		if err := requireUnique(endRe, after); err != nil {
			return Block{}, err
		}
		endIdx = after[0]
		b.End = lines[endIdx]
		b.HasEnd = true
	}

	if b.HasStart {
		b.Prefix = lines[:startIdx] // the delimiter line itself lives in Start
	}

	b.Lines = make([]string, 0, endIdx-startIdx+1)
	if inclusive && b.HasStart {
		b.Lines = append(b.Lines, b.Start)
	}
	b.Lines = append(b.Lines, lines[startIdx+1:endIdx]...)
	if inclusive && b.HasEnd {
		b.Lines = append(b.Lines, b.End)
	}

	if b.HasEnd {
		b.Suffix = lines[endIdx+1:]
	}

	return b, nil
}

// matchingLines returns the indexes of all lines matched by re.
func matchingLines(lines []string, re *regexp.Regexp) []int {
	var matches []int
	for i, line := range lines {
		if re.MatchString(line) {
			matches = append(matches, i)
		}
	}
	return matches
}

// requireUnique enforces the exactly-one-match delimiter invariant.
func requireUnique(re *regexp.Regexp, matches []int) error {
	switch len(matches) {
	case 0:
		return fmt.Errorf("%w: %q", ErrDelimiterNotFound, re.String())
	case 1:
		return nil
	default:
		return fmt.Errorf("%w: %q matched %d lines", ErrDelimiterAmbiguous, re.String(), len(matches))
	}
}
