package todosync

import (
	"regexp"
	"strings"
)

// Precompiled line classification patterns.
var (
	// Bullet line: optional indentation, then an unordered list marker.
	bulletLinePattern = regexp.MustCompile(`^[\t ]*[-*+]( |$)`)

	// Logseq block property: "key:: value" continuation line.
	blockPropertyPattern = regexp.MustCompile(`^[\t ]*[A-Za-z0-9_.-]+::( .*)?$`)

	// Leading indentation run (spaces and tabs only).
	leadingIndentPattern = regexp.MustCompile(`^[\t ]*`)
)

// Indentation defaults. Levels are 1-based: a bullet at column zero is
// level 1, each indent unit of leading whitespace adds one level.
const (
	DefaultIndentWidth = 2
	UnlimitedLevel     = -1
)

// Level returns the 1-based nesting level of a line. A tab counts as one
// full indent unit. Depth is recomputed from whitespace on every call,
// never stored alongside the line.
func Level(line string, indentWidth int) int {
	if indentWidth <= 0 {
		indentWidth = DefaultIndentWidth
	}
	return indentRun(line, indentWidth)/indentWidth + 1
}

// indentRun measures the leading whitespace run in space-equivalents.
func indentRun(line string, indentWidth int) int {
	width := 0
	for _, r := range line {
		switch r {
		case ' ':
			width++
		case '\t':
			width += indentWidth
		default:
			return width
		}
	}
	return width
}

// splitIndent separates a line into its leading whitespace and content.
func splitIndent(line string) (indent, content string) {
	indent = leadingIndentPattern.FindString(line)
	return indent, line[len(indent):]
}

// isBulletLine returns true if the line starts a new outline node.
func isBulletLine(line string) bool {
	return bulletLinePattern.MatchString(line)
}

// isBlockProperty returns true for Logseq "key:: value" metadata lines.
func isBlockProperty(line string) bool {
	return blockPropertyPattern.MatchString(line)
}

// isBlankLine returns true if the line is empty or contains only whitespace.
func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}
