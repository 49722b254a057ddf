package audio

import "fmt"

// BackendError reports a failure of the external audio tooling for a
// specific file, so a bad track is named instead of silently producing
// a mismatched merge.
type BackendError struct {
	Path string
	Err  error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("audio backend: %s: %v", e.Path, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }
