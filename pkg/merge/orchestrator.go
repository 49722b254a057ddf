package merge

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/aoiumi/mapstitch/pkg/audio"
	"github.com/aoiumi/mapstitch/pkg/beatmap"
)

// Runner drives one merge: discover pairs, parse maps, probe durations,
// concatenate, override difficulty, and write both outputs atomically.
type Runner struct {
	spec    Spec
	backend audio.Backend
	logger  *slog.Logger
	runID   string
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) { r.logger = logger }
}

// WithBackend injects an audio backend, overriding the one Spec.Backend
// would select. Tests use this to stub the external collaborator.
func WithBackend(b audio.Backend) RunnerOption {
	return func(r *Runner) { r.backend = b }
}

// NewRunner builds a Runner for one run of spec.
func NewRunner(spec Spec, opts ...RunnerOption) *Runner {
	r := &Runner{
		spec:  spec,
		runID: uuid.NewString()[:8],
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Run executes the pipeline. Any failure aborts the run before either
// output file becomes visible.
func (r *Runner) Run(ctx context.Context) error {
	log := r.logger.With("run", r.runID)

	pairs, err := DiscoverPairs(r.spec.InputDir)
	if err != nil {
		return err
	}
	log.Info("discovered input pairs", "dir", r.spec.InputDir, "count", len(pairs))

	docs := make([]*beatmap.Document, 0, len(pairs))
	for _, pair := range pairs {
		doc, err := beatmap.ParseFile(pair.MapPath)
		if err != nil {
			return err
		}
		log.Debug("parsed beatmap",
			"map", pair.Index,
			"timingPoints", len(doc.TimingPoints),
			"hitObjects", len(doc.HitObjects))
		docs = append(docs, doc)
	}

	backend := r.backend
	if backend == nil {
		backend, err = audio.Select(r.spec.Backend, audioPaths(pairs), r.spec.OutputAudio)
		if err != nil {
			return err
		}
	}

	durations := make([]int64, 0, len(pairs))
	for _, pair := range pairs {
		ms, err := backend.DurationMS(ctx, pair.AudioPath)
		if err != nil {
			return fmt.Errorf("map %d: %w", pair.Index, err)
		}
		log.Debug("probed track", "map", pair.Index, "durationMs", ms)
		durations = append(durations, ms)
	}

	merged, err := Concatenate(docs, durations)
	if err != nil {
		return err
	}
	beatmap.SetAudioFilename(merged, filepath.Base(r.spec.OutputAudio))
	beatmap.ApplyDifficulty(merged, r.spec.Difficulty)

	// Export the audio to a staging path first: it is the step most
	// likely to fail, and nothing must be visible until both artifacts
	// exist.
	staged := stagePath(r.spec.OutputAudio, r.runID)
	defer os.Remove(staged)
	if err := backend.ConcatenateExport(ctx, audioPaths(pairs), staged); err != nil {
		return err
	}

	if err := writeFileAtomic(r.spec.OutputOsu, merged.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", r.spec.OutputOsu, err)
	}
	if err := os.Rename(staged, r.spec.OutputAudio); err != nil {
		os.Remove(r.spec.OutputOsu)
		return fmt.Errorf("writing %s: %w", r.spec.OutputAudio, err)
	}

	log.Info("merge complete",
		"maps", len(pairs),
		"totalMs", sum(durations),
		"osu", r.spec.OutputOsu,
		"audio", r.spec.OutputAudio)
	return nil
}

func audioPaths(pairs []Pair) []string {
	paths := make([]string, 0, len(pairs))
	for _, p := range pairs {
		paths = append(paths, p.AudioPath)
	}
	return paths
}

func sum(durations []int64) int64 {
	var total int64
	for _, d := range durations {
		total += d
	}
	return total
}
