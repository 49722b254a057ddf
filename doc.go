// Package mapstitch is the Composition Root for the mapstitch tool.
//
// It connects the pure transformation core (beatmap parsing, timing
// offsets, serialization) with the external audio collaborator.
//
// Philosophy:
//
// mapstitch turns a folder of numbered osu! beatmaps and audio tracks
// ({1,2,3,...}.osu paired with {1,2,3,...}.mp3) into one compilation:
// a single .osu whose timestamps are shifted by the running sum of the
// preceding tracks' durations, plus one concatenated audio file. The
// beatmap work is done entirely in memory; sound data is delegated to
// an audio backend (ffmpeg by default, pure-Go for all-WAV runs).
//
// Usage:
//
//	spec := mapstitch.DefaultSpec("./songs")
//	spec.Difficulty.AR = 9.5
//
//	err := mapstitch.Run(ctx, spec,
//		mapstitch.WithLogger(logger),
//	)
package mapstitch
