package todosync

import "regexp"

// matchKind classifies one line during filtering.
type matchKind int

const (
	matchNone      matchKind = iota // excluded
	matchDirect                     // satisfies the inclusion regex within the ceiling
	matchInherited                  // kept only because a kept ancestor encloses it
)

// Filter returns the block lines kept by cfg, in their original relative
// order. An empty result is valid; callers that require a non-empty block
// enforce that themselves. Lines are measured with DefaultIndentWidth; use
// a Service with WithIndentWidth for other conventions.
func Filter(lines []string, cfg FilterConfig) ([]string, error) {
	f, err := cfg.compile(DefaultIndentWidth)
	if err != nil {
		return nil, err
	}
	return f.run(lines), nil
}

// compiledFilter is the regex-compiled form of a FilterConfig.
type compiledFilter struct {
	re          *regexp.Regexp // nil matches every line
	maxLevel    int
	recursive   bool
	indentWidth int
}

func (cfg FilterConfig) compile(indentWidth int) (compiledFilter, error) {
	f := compiledFilter{
		maxLevel:    cfg.MaxLevel,
		recursive:   cfg.Recursive,
		indentWidth: indentWidth,
	}
	if cfg.Pattern != "" {
		re, err := regexp.Compile(cfg.Pattern)
		if err != nil {
			return compiledFilter{}, wrapPattern(cfg.Pattern, err)
		}
		f.re = re
	}
	return f, nil
}

// run walks the lines once, tracking the levels of kept ancestors on a
// stack. A line at level <= the stack top closes that subtree, so inherited
// keeping stops at the first sibling-or-shallower line. Descendants are
// still checked against the level ceiling individually.
func (f compiledFilter) run(lines []string) []string {
	kept := make([]string, 0, len(lines))
	var ancestors []int // levels of kept lines whose subtrees are open

	for _, line := range lines {
		level := Level(line, f.indentWidth)
		for len(ancestors) > 0 && ancestors[len(ancestors)-1] >= level {
			ancestors = ancestors[:len(ancestors)-1]
		}

		if f.classify(line, level, len(ancestors) > 0) == matchNone {
			continue
		}
		kept = append(kept, line)
		if f.recursive {
			ancestors = append(ancestors, level)
		}
	}

	return kept
}

// classify tags a line as a direct match, an inherited match, or excluded.
// The level ceiling applies to both kinds: recursion extends keeping
// downward but never past the ceiling.
func (f compiledFilter) classify(line string, level int, insideKept bool) matchKind {
	if f.maxLevel != UnlimitedLevel && level > f.maxLevel {
		return matchNone
	}
	if f.re == nil || f.re.MatchString(line) {
		return matchDirect
	}
	if f.recursive && insideKept {
		return matchInherited
	}
	return matchNone
}
