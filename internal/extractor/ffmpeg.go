package extractor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/daniellupu10/Youtube-Clip-Genie/internal/clip"
	"github.com/daniellupu10/Youtube-Clip-Genie/internal/logger"
)

// runFunc executes the ffmpeg binary and returns its stderr output.
// Replaced in tests.
type runFunc func(ctx context.Context, bin string, args []string) (stderr string, err error)

// strategy is one way of producing the trimmed clip. Strategies are
// tried in order until one succeeds or the list is exhausted.
type strategy struct {
	name string
	args func(streamURL string, job *clip.Job) []string
}

var strategies = []strategy{
	{name: "copy", args: copyArgs},
	{name: "reencode", args: reencodeArgs},
}

// copyArgs seeks on the input and copies container and codec streams
// verbatim, normalizing negative timestamps to zero.
func copyArgs(streamURL string, job *clip.Job) []string {
	return []string{
		"-ss", strconv.Itoa(job.StartSeconds),
		"-i", streamURL,
		"-t", strconv.Itoa(job.Duration),
		"-c", "copy",
		"-avoid_negative_ts", "make_zero",
		"-y",
		job.LocalPath,
	}
}

// reencodeArgs re-encodes the window with the fastest x264 preset and
// AAC audio. Slower, but handles streams the copy mode chokes on.
func reencodeArgs(streamURL string, job *clip.Job) []string {
	return []string{
		"-ss", strconv.Itoa(job.StartSeconds),
		"-i", streamURL,
		"-t", strconv.Itoa(job.Duration),
		"-c:v", "libx264",
		"-preset", "ultrafast",
		"-c:a", "aac",
		"-y",
		job.LocalPath,
	}
}

// FFmpeg trims a resolved stream to the job's window via the ffmpeg binary.
type FFmpeg struct {
	binPath string
	timeout time.Duration
	run     runFunc
}

func NewFFmpeg(binPath string, timeout time.Duration) *FFmpeg {
	return &FFmpeg{
		binPath: binPath,
		timeout: timeout,
		run:     runCommand,
	}
}

// Extract runs the strategy list against the stream. A timeout aborts
// the job immediately: a strategy that ran out the deadline once would
// only burn the remaining request budget on a retry. After a strategy
// reports success the output file is verified independently.
func (f *FFmpeg) Extract(ctx context.Context, stream *clip.ResolvedStream, job *clip.Job) (*clip.Artifact, error) {
	log := logger.FromContext(ctx)

	var lastErr error
	for _, st := range strategies {
		log.Info("Trimming video", "strategy", st.name, "output", job.LocalPath)

		stderr, timedOut, err := f.runStrategy(ctx, st, stream.DirectURL, job)
		if timedOut {
			return nil, &clip.ExtractionError{Message: "Video processing timed out"}
		}
		if err != nil {
			log.Warn("ffmpeg strategy failed", "strategy", st.name, "stderr", tail(stderr, 2000))
			lastErr = &clip.ExtractionError{
				Message: "FFMPEG failed: " + strings.TrimSpace(stderr),
				Err:     err,
			}
			continue
		}

		// ffmpeg can exit zero without producing output (e.g. an
		// immediately closed stream), so never trust the exit code alone.
		info, statErr := os.Stat(job.LocalPath)
		if statErr != nil {
			return nil, &clip.ExtractionError{Message: "Output file was not created"}
		}

		return &clip.Artifact{LocalPath: job.LocalPath, Size: info.Size()}, nil
	}

	return nil, lastErr
}

func (f *FFmpeg) runStrategy(ctx context.Context, st strategy, streamURL string, job *clip.Job) (stderr string, timedOut bool, err error) {
	runCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	stderr, err = f.run(runCtx, f.binPath, st.args(streamURL, job))
	if err != nil && errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return stderr, true, err
	}
	return stderr, false, err
}

func runCommand(ctx context.Context, bin string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, bin, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stderr.String(), err
}

// tail keeps log records bounded; ffmpeg stderr can run to megabytes.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
