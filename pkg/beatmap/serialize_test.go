package beatmap

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// Parsing serialized output must give back every structured field value.
func TestRoundTrip(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleMap))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	again, err := Parse(strings.NewReader(string(doc.Bytes())))
	if err != nil {
		t.Fatalf("reparse error = %v", err)
	}

	if !reflect.DeepEqual(doc.TimingPoints, again.TimingPoints) {
		t.Errorf("timing points changed across round trip:\n%v\n%v", doc.TimingPoints, again.TimingPoints)
	}
	if !reflect.DeepEqual(doc.HitObjects, again.HitObjects) {
		t.Errorf("hit objects changed across round trip:\n%v\n%v", doc.HitObjects, again.HitObjects)
	}
	if !reflect.DeepEqual(doc.Sections, again.Sections) {
		t.Errorf("sections changed across round trip:\n%v\n%v", doc.Sections, again.Sections)
	}
	if !reflect.DeepEqual(doc.Preamble, again.Preamble) {
		t.Errorf("preamble changed across round trip: %v vs %v", doc.Preamble, again.Preamble)
	}
}

func TestEncodeCanonicalOrder(t *testing.T) {
	input := `[HitObjects]
256,192,1000,1,0,0:0:0:0:

[Difficulty]
HPDrainRate:5

[TimingPoints]
1000,333.33,4,2,0,60,1,0

[General]
AudioFilename: 1.mp3
`
	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	out := string(doc.Bytes())
	order := []string{"[General]", "[Difficulty]", "[TimingPoints]", "[HitObjects]"}
	last := -1
	for _, header := range order {
		idx := strings.Index(out, header)
		if idx < 0 {
			t.Fatalf("output is missing %s:\n%s", header, out)
		}
		if idx < last {
			t.Fatalf("%s emitted out of canonical order:\n%s", header, out)
		}
		last = idx
	}
}

func TestEncodeInheritedFlag(t *testing.T) {
	doc := &Document{
		TimingPoints: []TimingPoint{
			{Time: 1000, BeatLength: 333.333333333333, Meter: 4, SampleSet: 2, Volume: 60, Uninherited: true},
			{Time: 2000, BeatLength: -50, Meter: 4, SampleSet: 2, Volume: 60, Uninherited: false},
		},
	}

	out := string(doc.Bytes())
	if !strings.Contains(out, "1000,333.333333333333,4,2,0,60,1,0") {
		t.Errorf("uninherited point encoded wrong:\n%s", out)
	}
	if !strings.Contains(out, "2000,-50,4,2,0,60,0,0") {
		t.Errorf("inherited point encoded wrong:\n%s", out)
	}
}

func TestParseFileNamesFileAndLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "1.osu")
	bad := "[Difficulty]\nHPDrainRate:5\n\n[TimingPoints]\n1000,333.33,4\n"
	if err := os.WriteFile(path, []byte(bad), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ParseFile(path)
	if err == nil {
		t.Fatal("ParseFile() succeeded on a short record")
	}
	if !strings.Contains(err.Error(), "1.osu:5") {
		t.Errorf("error %q does not name file and line", err)
	}
}
