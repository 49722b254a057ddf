// Package audio wraps the external tools that handle the actual sound
// data: probing track durations and concatenating tracks into one file.
// The merge core only ever talks to the Backend interface.
package audio

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Backend is the audio collaborator the merge pipeline depends on.
type Backend interface {
	// DurationMS returns the playable length of the track in milliseconds.
	DurationMS(ctx context.Context, path string) (int64, error)
	// ConcatenateExport joins the inputs in order and writes them to output.
	ConcatenateExport(ctx context.Context, inputs []string, output string) error
}

// Select picks a backend by name. "auto" (or empty) uses the pure-Go WAV
// backend when every input and the output are .wav files, and ffmpeg
// otherwise.
func Select(name string, inputs []string, output string) (Backend, error) {
	switch name {
	case "", "auto":
		if allWAV(inputs) && isWAV(output) {
			return WAV{}, nil
		}
		return NewFFmpeg(), nil
	case "ffmpeg":
		return NewFFmpeg(), nil
	case "wav":
		return WAV{}, nil
	default:
		return nil, fmt.Errorf("unknown audio backend %q (want auto, ffmpeg or wav)", name)
	}
}

func allWAV(paths []string) bool {
	for _, p := range paths {
		if !isWAV(p) {
			return false
		}
	}
	return len(paths) > 0
}

func isWAV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".wav")
}
