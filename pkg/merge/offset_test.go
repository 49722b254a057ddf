package merge

import (
	"errors"
	"strings"
	"testing"

	"github.com/aoiumi/mapstitch/pkg/beatmap"
)

func mustParse(t *testing.T, text string) *beatmap.Document {
	t.Helper()
	doc, err := beatmap.Parse(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return doc
}

func mapOne(t *testing.T) *beatmap.Document {
	return mustParse(t, `osu file format v14

[General]
AudioFilename: 1.mp3

[Metadata]
Title:First

[Difficulty]
HPDrainRate:5

[Events]
//Background and Video events

[TimingPoints]
0,333.333333333333,4,2,0,60,1,0
4000,-50,4,2,0,60,0,0

[HitObjects]
256,192,1000,1,0,0:0:0:0:
`)
}

func mapTwo(t *testing.T) *beatmap.Document {
	return mustParse(t, `[General]
AudioFilename: 2.mp3

[Metadata]
Title:Second

[Difficulty]
HPDrainRate:7

[TimingPoints]
0,600,4,2,0,60,1,0
200,-100,4,2,0,60,0,0

[HitObjects]
256,192,500,1,0,0:0:0:0:
`)
}

func TestConcatenateOffsets(t *testing.T) {
	merged, err := Concatenate(
		[]*beatmap.Document{mapOne(t), mapTwo(t)},
		[]int64{60000, 45000},
	)
	if err != nil {
		t.Fatalf("Concatenate() error = %v", err)
	}

	// Map 2's hit object at 500ms lands after map 1's 60000ms of audio.
	times := make([]int, 0, len(merged.HitObjects))
	for _, ho := range merged.HitObjects {
		times = append(times, ho.Time)
	}
	if len(times) != 2 || times[0] != 1000 || times[1] != 60500 {
		t.Errorf("hit object times = %v, want [1000 60500]", times)
	}

	wantTP := []int{0, 4000, 60000, 60200}
	for i, tp := range merged.TimingPoints {
		if tp.Time != wantTP[i] {
			t.Errorf("timing point %d time = %d, want %d", i, tp.Time, wantTP[i])
		}
	}
}

func TestConcatenateKeepsNonTimeFields(t *testing.T) {
	second := mapTwo(t)
	merged, err := Concatenate(
		[]*beatmap.Document{mapOne(t), second},
		[]int64{60000, 45000},
	)
	if err != nil {
		t.Fatalf("Concatenate() error = %v", err)
	}

	// The inherited point's multiplier encoding must be untouched.
	var inherited []beatmap.TimingPoint
	for _, tp := range merged.TimingPoints {
		if !tp.Uninherited {
			inherited = append(inherited, tp)
		}
	}
	if len(inherited) != 2 {
		t.Fatalf("got %d inherited points, want 2", len(inherited))
	}
	if inherited[1].BeatLength != -100 {
		t.Errorf("inherited beatLength = %v, want -100", inherited[1].BeatLength)
	}
}

// Each inherited point must still follow the uninherited point it
// referenced in its own map.
func TestConcatenatePreservesInheritance(t *testing.T) {
	merged, err := Concatenate(
		[]*beatmap.Document{mapOne(t), mapTwo(t)},
		[]int64{60000, 45000},
	)
	if err != nil {
		t.Fatalf("Concatenate() error = %v", err)
	}

	anchorOf := func(idx int) int {
		for i := idx - 1; i >= 0; i-- {
			if merged.TimingPoints[i].Uninherited {
				return merged.TimingPoints[i].Time
			}
		}
		return -1
	}
	for i, tp := range merged.TimingPoints {
		if tp.Uninherited {
			continue
		}
		switch tp.Time {
		case 4000:
			if got := anchorOf(i); got != 0 {
				t.Errorf("map 1 inherited point anchored at %d, want 0", got)
			}
		case 60200:
			if got := anchorOf(i); got != 60000 {
				t.Errorf("map 2 inherited point anchored at %d, want 60000", got)
			}
		}
	}
}

func TestConcatenateKeepsFirstMapSections(t *testing.T) {
	merged, err := Concatenate(
		[]*beatmap.Document{mapOne(t), mapTwo(t)},
		[]int64{60000, 45000},
	)
	if err != nil {
		t.Fatalf("Concatenate() error = %v", err)
	}

	meta := merged.Section(beatmap.SectionMetadata)
	if meta == nil || len(meta.Lines) != 1 || meta.Lines[0] != "Title:First" {
		t.Errorf("metadata = %v, want first map's metadata only", meta)
	}
	if len(merged.Preamble) == 0 || merged.Preamble[0] != "osu file format v14" {
		t.Errorf("preamble = %v, want first map's format header", merged.Preamble)
	}
}

func TestConcatenateDurationValidation(t *testing.T) {
	docs := []*beatmap.Document{mapOne(t), mapTwo(t)}

	t.Run("Zero Duration With Successor", func(t *testing.T) {
		_, err := Concatenate(docs, []int64{0, 45000})
		var oe *OffsetError
		if !errors.As(err, &oe) {
			t.Fatalf("error = %v, want *OffsetError", err)
		}
		if oe.Index != 1 {
			t.Errorf("OffsetError.Index = %d, want 1", oe.Index)
		}
	})

	t.Run("Zero Duration On Last Map Is Fine", func(t *testing.T) {
		if _, err := Concatenate(docs, []int64{60000, 0}); err != nil {
			t.Errorf("Concatenate() error = %v", err)
		}
	})

	t.Run("Missing Duration", func(t *testing.T) {
		_, err := Concatenate(docs, []int64{60000})
		var oe *OffsetError
		if !errors.As(err, &oe) {
			t.Fatalf("error = %v, want *OffsetError", err)
		}
	})

	t.Run("No Maps", func(t *testing.T) {
		if _, err := Concatenate(nil, nil); err == nil {
			t.Error("Concatenate() succeeded with no input")
		}
	})
}

func TestConcatenateDoesNotAliasInput(t *testing.T) {
	first := mapOne(t)
	merged, err := Concatenate(
		[]*beatmap.Document{first, mapTwo(t)},
		[]int64{60000, 45000},
	)
	if err != nil {
		t.Fatalf("Concatenate() error = %v", err)
	}

	merged.Section(beatmap.SectionMetadata).Lines[0] = "Title:Changed"
	if first.Section(beatmap.SectionMetadata).Lines[0] != "Title:First" {
		t.Error("mutating the merged document leaked into the input map")
	}
}
