package merge

import (
	"errors"
	"fmt"
	"sort"

	"github.com/aoiumi/mapstitch/pkg/beatmap"
)

// Concatenate merges the parsed documents into one, in input order.
//
// Map i's records are shifted by the summed audio durations of maps
// 0..i-1; every non-time field is copied unchanged, so the slider
// velocity encoded in inherited timing points stays relative to the
// same uninherited point it always referenced. Non-timing sections
// (General, Metadata, Events, Difficulty and anything unknown) come
// from the first map alone.
//
// durations[i] is the audio length of map i in milliseconds. A missing,
// zero or negative duration for any map that has a successor is an
// OffsetError, since every later map's position depends on it.
func Concatenate(docs []*beatmap.Document, durations []int64) (*beatmap.Document, error) {
	if len(docs) == 0 {
		return nil, errors.New("no input maps")
	}
	if len(durations) != len(docs) {
		return nil, &OffsetError{
			Index:  len(durations) + 1,
			Reason: fmt.Sprintf("have %d audio durations for %d maps", len(durations), len(docs)),
		}
	}
	for i, d := range durations {
		if i < len(durations)-1 && d <= 0 {
			return nil, &OffsetError{Index: i + 1, Reason: fmt.Sprintf("audio duration %dms is not positive", d)}
		}
	}

	merged := cloneBase(docs[0])

	var offset int64
	for i, doc := range docs {
		for _, tp := range doc.TimingPoints {
			tp.Time += int(offset)
			merged.TimingPoints = append(merged.TimingPoints, tp)
		}
		for _, ho := range doc.HitObjects {
			ho.Time += int(offset)
			ho.Rest = append([]string(nil), ho.Rest...)
			merged.HitObjects = append(merged.HitObjects, ho)
		}
		offset += durations[i]
	}

	// Shifting by a per-map constant keeps each map internally ordered;
	// the stable sort only interleaves maps whose source offsets were
	// unsorted, without ever moving an inherited timing point ahead of
	// the uninherited point it hangs off.
	sort.SliceStable(merged.TimingPoints, func(i, j int) bool {
		return merged.TimingPoints[i].Time < merged.TimingPoints[j].Time
	})
	sort.SliceStable(merged.HitObjects, func(i, j int) bool {
		return merged.HitObjects[i].Time < merged.HitObjects[j].Time
	})

	return merged, nil
}

// cloneBase copies the first map's preamble and non-record sections into
// a fresh document, so later stages never alias the parsed input.
func cloneBase(first *beatmap.Document) *beatmap.Document {
	merged := &beatmap.Document{
		Preamble: append([]string(nil), first.Preamble...),
		Sections: make([]beatmap.Section, 0, len(first.Sections)),
	}
	for _, sec := range first.Sections {
		merged.Sections = append(merged.Sections, beatmap.Section{
			Name:  sec.Name,
			Lines: append([]string(nil), sec.Lines...),
		})
	}
	return merged
}
