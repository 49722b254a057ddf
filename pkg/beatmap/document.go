package beatmap

// canonicalOrder is the section order the .osu format expects on output.
// Sections outside this list are appended after, in source order.
var canonicalOrder = []string{
	SectionGeneral,
	SectionMetadata,
	SectionDifficulty,
	SectionEvents,
	SectionTimingPoints,
	SectionHitObjects,
}

// Well-known section names.
const (
	SectionGeneral      = "General"
	SectionMetadata     = "Metadata"
	SectionDifficulty   = "Difficulty"
	SectionEvents       = "Events"
	SectionTimingPoints = "TimingPoints"
	SectionHitObjects   = "HitObjects"
)

// Section is one [Name] block of a beatmap, lines kept verbatim.
// TimingPoints and HitObjects sections carry no lines; their content lives
// in Document.TimingPoints and Document.HitObjects instead.
type Section struct {
	Name  string
	Lines []string
}

// Document is one parsed .osu beatmap.
//
// Sections preserves every section of the source file in order, including
// ones this tool knows nothing about, so they survive a round trip.
// The two timestamp-bearing sections are additionally decoded into
// structured records so offsets can be applied without string surgery.
type Document struct {
	// Preamble holds the lines before the first section header,
	// usually the single "osu file format vN" line.
	Preamble []string

	Sections     []Section
	TimingPoints []TimingPoint
	HitObjects   []HitObject
}

// Section returns the named section, or nil if the document has none.
func (d *Document) Section(name string) *Section {
	for i := range d.Sections {
		if d.Sections[i].Name == name {
			return &d.Sections[i]
		}
	}
	return nil
}

func isCanonical(name string) bool {
	for _, n := range canonicalOrder {
		if n == name {
			return true
		}
	}
	return false
}
