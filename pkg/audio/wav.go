package audio

import (
	"context"
	"errors"
	"fmt"
	"os"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WAV is a pure-Go backend for runs where every track is a RIFF/WAVE
// file. It needs no external binaries but requires all inputs to share
// one PCM format, since it concatenates raw sample data.
type WAV struct{}

func (WAV) DurationMS(ctx context.Context, path string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, &BackendError{Path: path, Err: err}
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, &BackendError{Path: path, Err: err}
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return 0, &BackendError{Path: path, Err: errors.New("not a valid wav file")}
	}
	d, err := dec.Duration()
	if err != nil {
		return 0, &BackendError{Path: path, Err: err}
	}
	return d.Milliseconds(), nil
}

func (WAV) ConcatenateExport(ctx context.Context, inputs []string, output string) error {
	if len(inputs) == 0 {
		return &BackendError{Path: output, Err: errors.New("no input tracks")}
	}

	var combined *gaudio.IntBuffer
	var bitDepth int
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			return &BackendError{Path: in, Err: err}
		}
		buf, depth, err := readPCM(in)
		if err != nil {
			return err
		}
		if combined == nil {
			combined = buf
			bitDepth = depth
			continue
		}
		if buf.Format.SampleRate != combined.Format.SampleRate ||
			buf.Format.NumChannels != combined.Format.NumChannels ||
			depth != bitDepth {
			return &BackendError{
				Path: in,
				Err: fmt.Errorf("pcm format mismatch: %dHz/%dch/%dbit, want %dHz/%dch/%dbit (use the ffmpeg backend for mixed formats)",
					buf.Format.SampleRate, buf.Format.NumChannels, depth,
					combined.Format.SampleRate, combined.Format.NumChannels, bitDepth),
			}
		}
		combined.Data = append(combined.Data, buf.Data...)
	}

	out, err := os.Create(output)
	if err != nil {
		return &BackendError{Path: output, Err: err}
	}

	enc := wav.NewEncoder(out, combined.Format.SampleRate, bitDepth, combined.Format.NumChannels, 1)
	if err := enc.Write(combined); err != nil {
		enc.Close()
		out.Close()
		return &BackendError{Path: output, Err: err}
	}
	if err := enc.Close(); err != nil {
		out.Close()
		return &BackendError{Path: output, Err: err}
	}
	if err := out.Close(); err != nil {
		return &BackendError{Path: output, Err: err}
	}
	return nil
}

func readPCM(path string) (*gaudio.IntBuffer, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, &BackendError{Path: path, Err: err}
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, &BackendError{Path: path, Err: errors.New("not a valid wav file")}
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, &BackendError{Path: path, Err: err}
	}
	return buf, int(dec.BitDepth), nil
}
