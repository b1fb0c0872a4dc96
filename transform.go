package todosync

import (
	"regexp"
	"strings"
)

// Transform rewrites kept lines according to cfg: block-property lines are
// stripped first, then the substitution is applied to each remaining
// line's content (never to its indentation), then continuation lines are
// joined into their owning bullet unless KeepNewLines is set. Output order
// follows input order; the output never has more lines than the input.
func Transform(lines []string, cfg TransformConfig) ([]string, error) {
	t, err := cfg.compile()
	if err != nil {
		return nil, err
	}
	return t.run(lines), nil
}

// compiledTransform is the regex-compiled form of a TransformConfig.
type compiledTransform struct {
	search          *regexp.Regexp // nil disables substitution
	replace         string
	stripProperties bool
	keepNewLines    bool
}

func (cfg TransformConfig) compile() (compiledTransform, error) {
	t := compiledTransform{
		replace:         cfg.Replace,
		stripProperties: cfg.StripProperties,
		keepNewLines:    cfg.KeepNewLines,
	}
	if cfg.Search != "" {
		re, err := regexp.Compile(cfg.Search)
		if err != nil {
			return compiledTransform{}, wrapPattern(cfg.Search, err)
		}
		t.search = re
	}
	return t, nil
}

func (t compiledTransform) run(lines []string) []string {
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		if t.stripProperties && isBlockProperty(line) {
			continue
		}
		if t.search != nil {
			line = t.substitute(line)
		}
		if !t.keepNewLines && isContinuation(line) && len(out) > 0 {
			// Embedded newline within one logical bullet: fold the
			// continuation into the line that owns it.
			out[len(out)-1] += " " + strings.TrimSpace(line)
			continue
		}
		out = append(out, line)
	}

	return out
}

// substitute applies the search/replace pair to the line's content,
// leaving leading indentation untouched. The replacement template supports
// references to captured groups ($1, ${name}).
func (t compiledTransform) substitute(line string) string {
	indent, content := splitIndent(line)
	return indent + t.search.ReplaceAllString(content, t.replace)
}

// isContinuation reports a non-blank line that does not start a new
// outline node, i.e. multi-line content attached to the bullet above it.
func isContinuation(line string) bool {
	return !isBlankLine(line) && !isBulletLine(line)
}
