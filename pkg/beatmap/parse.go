package beatmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads one .osu file from r and splits it into sections.
// Section bodies are kept verbatim except TimingPoints and HitObjects,
// which are decoded into structured records. TimingPoints, HitObjects
// and Difficulty must all be present.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{}

	var current *Section
	line := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line++
		text := strings.TrimSuffix(scanner.Text(), "\r")

		if strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") {
			doc.Sections = append(doc.Sections, Section{Name: strings.Trim(text, "[]")})
			current = &doc.Sections[len(doc.Sections)-1]
			continue
		}

		if current == nil {
			doc.Preamble = append(doc.Preamble, text)
			continue
		}

		switch current.Name {
		case SectionTimingPoints:
			if skipRecordLine(text) {
				continue
			}
			tp, err := parseTimingPoint(text)
			if err != nil {
				return nil, &ParseError{Line: line, Err: err}
			}
			doc.TimingPoints = append(doc.TimingPoints, tp)
		case SectionHitObjects:
			if skipRecordLine(text) {
				continue
			}
			ho, err := parseHitObject(text)
			if err != nil {
				return nil, &ParseError{Line: line, Err: err}
			}
			doc.HitObjects = append(doc.HitObjects, ho)
		default:
			current.Lines = append(current.Lines, text)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading beatmap: %w", err)
	}

	doc.Preamble = trimTrailingBlank(doc.Preamble)
	for i := range doc.Sections {
		doc.Sections[i].Lines = trimTrailingBlank(doc.Sections[i].Lines)
	}

	for _, required := range []string{SectionDifficulty, SectionTimingPoints, SectionHitObjects} {
		if doc.Section(required) == nil {
			return nil, &ParseError{Err: fmt.Errorf("%w: [%s]", ErrMissingSection, required)}
		}
	}

	return doc, nil
}

// ParseFile parses the beatmap at path, naming the file in any ParseError.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening beatmap: %w", err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.File = path
			return nil, pe
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Comment and blank lines inside record sections are dropped, matching
// how the game itself reads them.
func skipRecordLine(text string) bool {
	trimmed := strings.TrimSpace(text)
	return trimmed == "" || strings.HasPrefix(trimmed, "//")
}

func trimTrailingBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
