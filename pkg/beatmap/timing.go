package beatmap

import (
	"fmt"
	"strconv"
	"strings"
)

const timingPointFields = 8

// TimingPoint is one record of the [TimingPoints] section.
//
// Uninherited points define a BPM through BeatLength (milliseconds per
// beat). Inherited points (Uninherited=false) carry a negative BeatLength
// encoding a slider-velocity multiplier relative to the most recent
// preceding uninherited point. That relation lives purely in the field
// values, so it survives any constant time shift untouched.
type TimingPoint struct {
	Time        int
	BeatLength  float64
	Meter       int
	SampleSet   int
	SampleIndex int
	Volume      int
	Uninherited bool
	Effects     int
}

func parseTimingPoint(line string) (TimingPoint, error) {
	fields := strings.Split(line, ",")
	if len(fields) < timingPointFields {
		return TimingPoint{}, fmt.Errorf("%w: got %d, want %d", ErrShortRecord, len(fields), timingPointFields)
	}
	if len(fields) > timingPointFields {
		return TimingPoint{}, fmt.Errorf("timing point has %d fields, want %d", len(fields), timingPointFields)
	}

	// Offsets appear as floats in some maps; the merged output keeps
	// integer milliseconds, matching what the game reads.
	t, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return TimingPoint{}, fmt.Errorf("time %q: %w", fields[0], err)
	}

	beatLength, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return TimingPoint{}, fmt.Errorf("beatLength %q: %w", fields[1], err)
	}

	ints := make([]int, 0, 6)
	for _, f := range fields[2:] {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return TimingPoint{}, fmt.Errorf("field %q: %w", f, err)
		}
		ints = append(ints, v)
	}

	return TimingPoint{
		Time:        int(t),
		BeatLength:  beatLength,
		Meter:       ints[0],
		SampleSet:   ints[1],
		SampleIndex: ints[2],
		Volume:      ints[3],
		Uninherited: ints[4] != 0,
		Effects:     ints[5],
	}, nil
}

// String re-encodes the record in the format's fixed field order.
func (tp TimingPoint) String() string {
	uninherited := "0"
	if tp.Uninherited {
		uninherited = "1"
	}
	return strings.Join([]string{
		strconv.Itoa(tp.Time),
		strconv.FormatFloat(tp.BeatLength, 'f', -1, 64),
		strconv.Itoa(tp.Meter),
		strconv.Itoa(tp.SampleSet),
		strconv.Itoa(tp.SampleIndex),
		strconv.Itoa(tp.Volume),
		uninherited,
		strconv.Itoa(tp.Effects),
	}, ",")
}
