package resolver

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/daniellupu10/Youtube-Clip-Genie/internal/clip"
	"github.com/daniellupu10/Youtube-Clip-Genie/internal/logger"
)

const watchURLBase = "https://www.youtube.com/watch?v="

// runFunc executes the resolver binary and returns stdout and stderr.
// Replaced in tests.
type runFunc func(ctx context.Context, bin string, args []string) (stdout, stderr string, err error)

// YtDlp resolves a video ID to a direct stream URL via the yt-dlp binary.
type YtDlp struct {
	binPath string
	timeout time.Duration
	run     runFunc
}

func NewYtDlp(binPath string, timeout time.Duration) *YtDlp {
	return &YtDlp{
		binPath: binPath,
		timeout: timeout,
		run:     runCommand,
	}
}

// Resolve asks yt-dlp for the best progressive MP4 stream, falling back
// to the best available format of any container. Single attempt, bounded
// by the resolver deadline.
func (r *YtDlp) Resolve(ctx context.Context, videoID string) (*clip.ResolvedStream, error) {
	watchURL := watchURLBase + videoID

	logger.FromContext(ctx).Info("Getting stream URL", "watch_url", watchURL)

	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	args := []string{
		"--get-url",
		"-f", "best[ext=mp4]/best",
		"--no-check-certificates",
		watchURL,
	}

	stdout, stderr, err := r.run(runCtx, r.binPath, args)
	if err != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return nil, &clip.StreamResolutionError{Message: "Video URL retrieval timed out"}
		}
		return nil, &clip.StreamResolutionError{
			Message: "Failed to get video URL: " + strings.TrimSpace(stderr),
			Err:     err,
		}
	}

	// yt-dlp may emit one URL per line (separate video and audio
	// streams); the first line is the chosen one.
	directURL := strings.TrimSpace(strings.SplitN(strings.TrimSpace(stdout), "\n", 2)[0])
	if directURL == "" {
		return nil, &clip.StreamResolutionError{Message: "yt-dlp returned no stream URL"}
	}

	logger.FromContext(ctx).Info("Got stream URL", "url_prefix", truncate(directURL, 100))

	return &clip.ResolvedStream{DirectURL: directURL}, nil
}

func runCommand(ctx context.Context, bin string, args []string) (string, string, error) {
	cmd := exec.CommandContext(ctx, bin, args...)

	var out bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	err := cmd.Run()
	return out.String(), stderr.String(), err
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
