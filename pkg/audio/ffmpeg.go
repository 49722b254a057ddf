package audio

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// FFmpeg shells out to ffprobe/ffmpeg. It handles every container the
// local ffmpeg build does, which is why it is the default backend.
type FFmpeg struct {
	FFmpegPath  string
	FFprobePath string
	// Timeout bounds each subprocess when the caller's context has no
	// deadline of its own.
	Timeout time.Duration
}

// NewFFmpeg returns an FFmpeg backend using the binaries on PATH.
func NewFFmpeg() *FFmpeg {
	return &FFmpeg{
		FFmpegPath:  "ffmpeg",
		FFprobePath: "ffprobe",
		Timeout:     2 * time.Minute,
	}
}

type probeResult struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

func (f *FFmpeg) DurationMS(ctx context.Context, path string) (int64, error) {
	ctx, cancel := f.withTimeout(ctx)
	defer cancel()

	cmd := exec.CommandContext(
		ctx,
		f.FFprobePath,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return 0, &BackendError{Path: path, Err: ctx.Err()}
		}
		return 0, &BackendError{Path: path, Err: fmt.Errorf("ffprobe: %w", err)}
	}

	var probe probeResult
	if err := json.Unmarshal(out, &probe); err != nil {
		return 0, &BackendError{Path: path, Err: fmt.Errorf("parsing ffprobe output: %w", err)}
	}
	seconds, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return 0, &BackendError{Path: path, Err: fmt.Errorf("ffprobe reported no duration: %w", err)}
	}

	return int64(math.Round(seconds * 1000)), nil
}

func (f *FFmpeg) ConcatenateExport(ctx context.Context, inputs []string, output string) error {
	ctx, cancel := f.withTimeout(ctx)
	defer cancel()

	list, err := writeConcatList(inputs)
	if err != nil {
		return &BackendError{Path: output, Err: err}
	}
	defer os.Remove(list)

	cmd := exec.CommandContext(
		ctx,
		f.FFmpegPath,
		"-y",
		"-v", "error",
		"-f", "concat",
		"-safe", "0",
		"-i", list,
		output,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		if ctx.Err() != nil {
			return &BackendError{Path: output, Err: ctx.Err()}
		}
		return &BackendError{Path: output, Err: fmt.Errorf("ffmpeg failed: %v (%s)", err, strings.TrimSpace(string(out)))}
	}
	return nil
}

func (f *FFmpeg) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || f.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, f.Timeout)
}

// writeConcatList writes a concat-demuxer list file and returns its path.
func writeConcatList(inputs []string) (string, error) {
	tmp, err := os.CreateTemp("", "mapstitch-concat-*.txt")
	if err != nil {
		return "", fmt.Errorf("creating concat list: %w", err)
	}

	for _, in := range inputs {
		abs, err := filepath.Abs(in)
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return "", err
		}
		if _, err := fmt.Fprintf(tmp, "file '%s'\n", concatEscape(abs)); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return "", err
		}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

// concatEscape quotes a path for ffmpeg's concat list syntax, where a
// single quote inside a quoted string is written as '\''.
func concatEscape(path string) string {
	return strings.ReplaceAll(path, "'", `'\''`)
}
