package todosync

// Splice replaces dest's block content with lines and reassembles the
// whole document text: prefix, start delimiter, new block, end delimiter,
// suffix. Everything outside the delimiters is preserved byte-for-byte;
// an empty lines slice produces a well-formed empty block.
func Splice(dest Block, lines []string) string {
	out := make([]string, 0, len(dest.Prefix)+len(lines)+len(dest.Suffix)+2)
	out = append(out, dest.Prefix...)
	if dest.HasStart {
		out = append(out, dest.Start)
	}
	out = append(out, lines...)
	if dest.HasEnd {
		out = append(out, dest.End)
	}
	out = append(out, dest.Suffix...)
	return JoinLines(out)
}
