package materials

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("study material not found")

const parseSnippetLen = 120

// ParseError reports a model completion that could not be normalized into a
// structured record. Snippet is a bounded prefix of the offending text; the
// full payload belongs in logs only.
type ParseError struct {
	Snippet string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse model response: %v (text begins %q)", e.Err, e.Snippet)
}

func (e *ParseError) Unwrap() error { return e.Err }
