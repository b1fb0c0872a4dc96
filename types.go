package todosync

import (
	"fmt"
	"regexp"
)

// DelimiterSpec locates one boundary of a block: either a regex pattern
// that must match exactly one line, or the physical edge of the document.
type DelimiterSpec struct {
	Pattern string // regex matched against whole lines (search semantics)
	Edge    bool   // use the document edge; Pattern is ignored
}

// Delimiter returns a pattern-based delimiter spec.
func Delimiter(pattern string) DelimiterSpec {
	return DelimiterSpec{Pattern: pattern}
}

// DocumentEdge returns the sentinel spec meaning "start or end of the
// document": no line is consumed, the boundary is the file's edge.
func DocumentEdge() DelimiterSpec {
	return DelimiterSpec{Edge: true}
}

// compile returns the delimiter's regexp, or nil for a document edge.
func (d DelimiterSpec) compile() (*regexp.Regexp, error) {
	if d.Edge {
		return nil, nil
	}
	re, err := regexp.Compile(d.Pattern)
	if err != nil {
		return nil, wrapPattern(d.Pattern, err)
	}
	return re, nil
}

// wrapPattern decorates a regex compile failure with the offending pattern.
func wrapPattern(pattern string, err error) error {
	return fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
}

// FilterConfig selects which block lines survive filtering.
type FilterConfig struct {
	Pattern   string // inclusion regex; empty matches every line
	MaxLevel  int    // deepest kept level (1-based); UnlimitedLevel = no ceiling
	Recursive bool   // a kept line also keeps its nested descendants
}

// DefaultFilterConfig returns a filter that keeps every line.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{MaxLevel: UnlimitedLevel}
}

// TransformConfig rewrites kept lines before splicing.
type TransformConfig struct {
	Search          string // substitution regex; empty disables substitution
	Replace         string // replacement template (Go syntax: $1, ${name})
	StripProperties bool   // drop Logseq "key:: value" lines
	KeepNewLines    bool   // keep continuation lines instead of joining them
}

// Input contains one sync run's documents and configuration.
type Input struct {
	Source string // full text of the source document
	Dest   string // full text of the destination document

	// Source block boundaries; either side may be a document edge.
	SourceStart DelimiterSpec
	SourceEnd   DelimiterSpec

	// Destination block boundaries; must be patterns, never edges, since
	// the destination always carries literal markers.
	DestStart DelimiterSpec
	DestEnd   DelimiterSpec

	Filter    FilterConfig
	Transform TransformConfig

	// StrictEmpty treats a filtered block with zero kept lines as an
	// error instead of a valid empty sync.
	StrictEmpty bool
}

// Validate checks that all patterns compile and all values are in range.
func (in Input) Validate() error {
	_, err := in.compile(DefaultIndentWidth)
	return err
}

// compiledInput is the validated, regex-compiled form of an Input.
type compiledInput struct {
	sourceStart *regexp.Regexp // nil = document edge
	sourceEnd   *regexp.Regexp
	destStart   *regexp.Regexp
	destEnd     *regexp.Regexp
	filter      compiledFilter
	transform   compiledTransform
	strictEmpty bool
}

func (in Input) compile(indentWidth int) (*compiledInput, error) {
	if in.Source == "" {
		return nil, ErrEmptyDocument
	}
	if in.DestStart.Edge || in.DestEnd.Edge {
		return nil, ErrEdgeDelimiter
	}
	if in.Filter.MaxLevel < UnlimitedLevel {
		return nil, fmt.Errorf("%w: %d (must be >= -1)", ErrInvalidMaxLevel, in.Filter.MaxLevel)
	}

	c := &compiledInput{strictEmpty: in.StrictEmpty}

	var err error
	if c.sourceStart, err = in.SourceStart.compile(); err != nil {
		return nil, err
	}
	if c.sourceEnd, err = in.SourceEnd.compile(); err != nil {
		return nil, err
	}
	if c.destStart, err = in.DestStart.compile(); err != nil {
		return nil, err
	}
	if c.destEnd, err = in.DestEnd.compile(); err != nil {
		return nil, err
	}
	if c.filter, err = in.Filter.compile(indentWidth); err != nil {
		return nil, err
	}
	if c.transform, err = in.Transform.compile(); err != nil {
		return nil, err
	}

	return c, nil
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	indentWidth int
}

// WithIndentWidth sets how many leading spaces equal one nesting level.
// Panics if width <= 0 (programmer error, similar to time.NewTicker).
func WithIndentWidth(width int) Option {
	if width <= 0 {
		panic("todosync: WithIndentWidth must be positive")
	}
	return func(s *Service) {
		s.cfg.indentWidth = width
	}
}
