package mapstitch

import (
	"context"
	"log/slog"

	"github.com/aoiumi/mapstitch/pkg/audio"
	"github.com/aoiumi/mapstitch/pkg/merge"
)

// Version exposes the version of the tool.
const Version = "0.2.0"

// --- Types ---

// Spec is a public alias for the merge run configuration.
type Spec = merge.Spec

// DefaultSpec returns a Spec for dir with every default filled in.
func DefaultSpec(dir string) Spec {
	return merge.DefaultSpec(dir)
}

// --- Configuration ---

// Option defines a functional option for configuring a merge run.
type Option = merge.RunnerOption

// WithLogger sets the logger for the run.
func WithLogger(logger *slog.Logger) Option {
	return merge.WithLogger(logger)
}

// WithBackend injects a custom audio backend.
func WithBackend(b audio.Backend) Option {
	return merge.WithBackend(b)
}

// Run merges the numbered beatmap/audio pairs described by spec into one
// compilation beatmap and one concatenated audio file.
func Run(ctx context.Context, spec Spec, opts ...Option) error {
	return merge.NewRunner(spec, opts...).Run(ctx)
}
