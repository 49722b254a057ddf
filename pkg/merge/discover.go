package merge

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// audioPattern matches the audio containers the merge accepts as track
// inputs. Matching is done against the lowercased file name.
const audioPattern = "*.{mp3,wav,ogg,m4a,flac,aac}"

// Pair is one discovered input: map number k, k.osu and k.<audio-ext>.
type Pair struct {
	Index     int
	MapPath   string
	AudioPath string
}

// DiscoverPairs scans dir for numbered beatmap/audio pairs. The contract
// is strict: equal counts, numeric stems, no duplicates, and numbering
// that runs exactly 1..N. Anything else is a MismatchError.
func DiscoverPairs(dir string) ([]Pair, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	maps := make(map[int]string)
	audio := make(map[int]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		lower := strings.ToLower(name)

		var into map[int]string
		switch {
		case strings.HasSuffix(lower, ".osu"):
			into = maps
		default:
			ok, err := doublestar.Match(audioPattern, lower)
			if err != nil {
				return nil, fmt.Errorf("matching %q: %w", name, err)
			}
			if !ok {
				continue
			}
			into = audio
		}

		stem := strings.TrimSuffix(name, filepath.Ext(name))
		idx, err := strconv.Atoi(stem)
		if err != nil {
			return nil, &MismatchError{Dir: dir, Reason: fmt.Sprintf("%s: file stem is not a number", name)}
		}
		if prev, dup := into[idx]; dup {
			return nil, &MismatchError{Dir: dir, Reason: fmt.Sprintf("files %s and %s both claim number %d", prev, name, idx)}
		}
		into[idx] = name
	}

	if len(maps) == 0 {
		return nil, &MismatchError{Dir: dir, Reason: "no .osu files found"}
	}
	if len(maps) != len(audio) {
		return nil, &MismatchError{Dir: dir, Reason: fmt.Sprintf("%d beatmap files but %d audio files", len(maps), len(audio))}
	}

	pairs := make([]Pair, 0, len(maps))
	for i := 1; i <= len(maps); i++ {
		osuName, ok := maps[i]
		if !ok {
			return nil, &MismatchError{Dir: dir, Reason: fmt.Sprintf("beatmap numbering has a gap: %d.osu missing", i)}
		}
		audioName, ok := audio[i]
		if !ok {
			return nil, &MismatchError{Dir: dir, Reason: fmt.Sprintf("audio numbering has a gap: track %d missing", i)}
		}
		pairs = append(pairs, Pair{
			Index:     i,
			MapPath:   filepath.Join(dir, osuName),
			AudioPath: filepath.Join(dir, audioName),
		})
	}

	return pairs, nil
}
