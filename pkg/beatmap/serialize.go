package beatmap

import (
	"bufio"
	"bytes"
	"io"
)

// Encode renders the document back to .osu text: preamble first, then the
// canonical section order, then any other sections in source order.
// TimingPoints and HitObjects are re-encoded from their structured records.
// Empty sections are omitted.
func (d *Document) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for _, line := range d.Preamble {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	if len(d.Preamble) > 0 {
		bw.WriteByte('\n')
	}

	for _, name := range canonicalOrder {
		d.encodeSection(bw, name)
	}
	for _, sec := range d.Sections {
		if !isCanonical(sec.Name) {
			d.encodeSection(bw, sec.Name)
		}
	}

	return bw.Flush()
}

// Bytes is a convenience wrapper around Encode.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	d.Encode(&buf)
	return buf.Bytes()
}

func (d *Document) encodeSection(bw *bufio.Writer, name string) {
	var lines []string
	switch name {
	case SectionTimingPoints:
		if len(d.TimingPoints) == 0 {
			return
		}
		lines = make([]string, 0, len(d.TimingPoints))
		for _, tp := range d.TimingPoints {
			lines = append(lines, tp.String())
		}
	case SectionHitObjects:
		if len(d.HitObjects) == 0 {
			return
		}
		lines = make([]string, 0, len(d.HitObjects))
		for _, ho := range d.HitObjects {
			lines = append(lines, ho.String())
		}
	default:
		sec := d.Section(name)
		if sec == nil || len(sec.Lines) == 0 {
			return
		}
		lines = sec.Lines
	}

	bw.WriteString("[" + name + "]\n")
	for _, line := range lines {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
}
