package merge

import "fmt"

// MismatchError reports an input directory whose beatmap/audio pairing
// is broken: unequal counts, non-numeric stems, duplicate numbers, or a
// numbering gap.
type MismatchError struct {
	Dir    string
	Reason string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: %s", e.Dir, e.Reason)
}

// OffsetError reports a map whose audio duration makes the merge
// ordering ill-defined. Index is the 1-based map number.
type OffsetError struct {
	Index  int
	Reason string
}

func (e *OffsetError) Error() string {
	return fmt.Sprintf("map %d: %s", e.Index, e.Reason)
}
