package todosync

import "fmt"

// Service orchestrates the extract-filter-transform-splice pipeline.
type Service struct {
	cfg serviceConfig
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithIndentWidth).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{indentWidth: DefaultIndentWidth},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Sync runs the full pipeline and returns the new text of the destination
// document. Each call is a pure function of its input: no state survives
// between runs, and re-running with identical inputs yields identical
// output.
func (s *Service) Sync(input Input) (string, error) {
	c, err := input.compile(s.cfg.indentWidth)
	if err != nil {
		return "", err
	}

	// Locate the source block.
	src, err := extract(SplitLines(input.Source), c.sourceStart, c.sourceEnd, false)
	if err != nil {
		return "", fmt.Errorf("extracting source block: %w", err)
	}

	// Filter, then transform the kept lines.
	kept := c.filter.run(src.Lines)
	block := c.transform.run(kept)

	if c.strictEmpty && len(block) == 0 {
		return "", fmt.Errorf("%w: pattern %q", ErrEmptyResult, input.Filter.Pattern)
	}

	// Locate the destination block and splice the new content into it.
	dst, err := extract(SplitLines(input.Dest), c.destStart, c.destEnd, false)
	if err != nil {
		return "", fmt.Errorf("extracting destination block: %w", err)
	}

	return Splice(dst, block), nil
}
