package beatmap

import (
	"strconv"
	"strings"
)

// Difficulty holds the four gameplay settings the merge overrides.
type Difficulty struct {
	HP float64
	CS float64
	OD float64
	AR float64
}

// keys pairs each .osu Difficulty key with its override value,
// in the order missing keys are appended.
func (d Difficulty) keys() [][2]string {
	return [][2]string{
		{"HPDrainRate", formatSetting(d.HP)},
		{"CircleSize", formatSetting(d.CS)},
		{"OverallDifficulty", formatSetting(d.OD)},
		{"ApproachRate", formatSetting(d.AR)},
	}
}

// ApplyDifficulty rewrites exactly the HPDrainRate, CircleSize,
// OverallDifficulty and ApproachRate keys of the Difficulty section.
// Key matching is case-sensitive and exact; any other keys (slider
// multiplier, tick rate, ...) are left untouched. Keys not present are
// appended. Applying the same settings twice is a no-op.
func ApplyDifficulty(doc *Document, d Difficulty) {
	sec := doc.Section(SectionDifficulty)
	if sec == nil {
		doc.Sections = append(doc.Sections, Section{Name: SectionDifficulty})
		sec = &doc.Sections[len(doc.Sections)-1]
	}

	seen := make(map[string]bool, 4)
	for i, line := range sec.Lines {
		key, _, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		for _, kv := range d.keys() {
			if key == kv[0] {
				sec.Lines[i] = kv[0] + ":" + kv[1]
				seen[kv[0]] = true
			}
		}
	}
	for _, kv := range d.keys() {
		if !seen[kv[0]] {
			sec.Lines = append(sec.Lines, kv[0]+":"+kv[1])
		}
	}
}

// SetAudioFilename points the General section at the merged audio track.
func SetAudioFilename(doc *Document, name string) {
	sec := doc.Section(SectionGeneral)
	if sec == nil {
		doc.Sections = append(doc.Sections, Section{Name: SectionGeneral})
		sec = &doc.Sections[len(doc.Sections)-1]
	}

	line := "AudioFilename: " + name
	for i, l := range sec.Lines {
		if strings.HasPrefix(l, "AudioFilename") {
			sec.Lines[i] = line
			return
		}
	}
	sec.Lines = append([]string{line}, sec.Lines...)
}

func formatSetting(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
