package beatmap

import (
	"errors"
	"fmt"
)

// Common parse failures.
var (
	ErrMissingSection = errors.New("missing required section")
	ErrShortRecord    = errors.New("record has too few fields")
)

// ParseError reports a malformed beatmap, naming the file and line
// when they are known. Line 0 means the failure is not tied to a line
// (for example a missing section).
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	switch {
	case e.File != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
	case e.File != "":
		return fmt.Sprintf("%s: %v", e.File, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	default:
		return e.Err.Error()
	}
}

func (e *ParseError) Unwrap() error { return e.Err }
