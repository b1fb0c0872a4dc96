package todosync

import "errors"

// Sentinel errors for library operations.
var (
	// Delimiter resolution errors.
	ErrDelimiterNotFound  = errors.New("delimiter pattern matched no line")
	ErrDelimiterAmbiguous = errors.New("delimiter pattern matched more than one line")
	ErrInvalidRange       = errors.New("end delimiter precedes start delimiter")
	ErrEdgeDelimiter      = errors.New("destination delimiter cannot be a document edge")

	// Configuration validation errors.
	ErrInvalidPattern     = errors.New("invalid regex pattern")
	ErrInvalidMaxLevel    = errors.New("invalid max level")
	ErrInvalidIndentWidth = errors.New("invalid indent width")

	// Pipeline errors.
	ErrEmptyDocument = errors.New("source document cannot be empty")
	ErrEmptyResult   = errors.New("filter kept no lines")
)
