package beatmap

import (
	"fmt"
	"strconv"
	"strings"
)

const hitObjectMinFields = 5

// HitObject is one record of the [HitObjects] section. The format fixes
// the first five fields; everything after (object params, hit sample)
// varies per object type and is carried verbatim in Rest.
type HitObject struct {
	X        int
	Y        int
	Time     int
	Type     int
	HitSound int
	Rest     []string
}

func parseHitObject(line string) (HitObject, error) {
	fields := strings.Split(line, ",")
	if len(fields) < hitObjectMinFields {
		return HitObject{}, fmt.Errorf("%w: got %d, want at least %d", ErrShortRecord, len(fields), hitObjectMinFields)
	}

	ints := make([]int, 5)
	for i := range ints {
		v, err := strconv.Atoi(strings.TrimSpace(fields[i]))
		if err != nil {
			return HitObject{}, fmt.Errorf("field %q: %w", fields[i], err)
		}
		ints[i] = v
	}

	var rest []string
	if len(fields) > hitObjectMinFields {
		rest = append(rest, fields[hitObjectMinFields:]...)
	}

	return HitObject{
		X:        ints[0],
		Y:        ints[1],
		Time:     ints[2],
		Type:     ints[3],
		HitSound: ints[4],
		Rest:     rest,
	}, nil
}

// String re-encodes the record in the format's fixed field order.
func (ho HitObject) String() string {
	fields := []string{
		strconv.Itoa(ho.X),
		strconv.Itoa(ho.Y),
		strconv.Itoa(ho.Time),
		strconv.Itoa(ho.Type),
		strconv.Itoa(ho.HitSound),
	}
	fields = append(fields, ho.Rest...)
	return strings.Join(fields, ",")
}
