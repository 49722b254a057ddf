package merge

import "github.com/aoiumi/mapstitch/pkg/beatmap"

// Default output names and difficulty override values.
const (
	DefaultOutputOsu   = "merged.osu"
	DefaultOutputAudio = "merged_audio.mp3"
)

// DefaultDifficulty is the override applied when the user specifies
// nothing else.
var DefaultDifficulty = beatmap.Difficulty{HP: 5.0, OD: 8.0, CS: 4.0, AR: 9.0}

// Spec is the immutable configuration of one merge run, built once from
// flags and the optional config file and passed through the pipeline.
type Spec struct {
	// InputDir holds the numbered {1..N}.osu / {1..N}.<audio> pairs.
	InputDir string
	// OutputOsu and OutputAudio are the two artifacts, resolved
	// relative to the working directory.
	OutputOsu   string
	OutputAudio string
	// Difficulty replaces the first map's HP/CS/OD/AR settings.
	Difficulty beatmap.Difficulty
	// Backend names the audio backend: auto, ffmpeg or wav.
	Backend string
}

// DefaultSpec returns a Spec for dir with every default filled in.
func DefaultSpec(dir string) Spec {
	return Spec{
		InputDir:    dir,
		OutputOsu:   DefaultOutputOsu,
		OutputAudio: DefaultOutputAudio,
		Difficulty:  DefaultDifficulty,
		Backend:     "auto",
	}
}
