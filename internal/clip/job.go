package clip

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/daniellupu10/Youtube-Clip-Genie/internal/validation"
)

// Request is the caller-supplied description of the clip to produce.
type Request struct {
	VideoID   string
	StartTime string
	EndTime   string
	Title     string
}

// Job is a validated request with parsed offsets and a derived identity.
type Job struct {
	VideoID      string
	Title        string
	StartSeconds int
	EndSeconds   int
	Duration     int
	ClipID       string
	LocalPath    string
}

// ResolvedStream is a time-limited direct media URL, used once per job.
type ResolvedStream struct {
	DirectURL string
}

// Artifact is the trimmed clip file on local disk.
type Artifact struct {
	LocalPath string
	Size      int64
}

// Result is the final pipeline output returned to the caller.
type Result struct {
	DownloadURL string
	Title       string
	Duration    int
	FileSize    int64
}

// NewJob validates a request and derives the job identity. The clip ID
// embeds the video ID, both offsets and a timestamp so concurrent
// invocations never collide on the temp-file namespace or the object key.
func NewJob(req *Request, tmpDir string) (*Job, error) {
	if req.VideoID == "" || req.StartTime == "" || req.EndTime == "" {
		return nil, &ValidationError{Message: "Missing required fields: videoId, startTime, endTime"}
	}

	if err := validation.ValidateVideoID(req.VideoID); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	start, err := validation.ParseTimestamp(req.StartTime)
	if err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("Invalid startTime %q: %v", req.StartTime, err)}
	}

	end, err := validation.ParseTimestamp(req.EndTime)
	if err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("Invalid endTime %q: %v", req.EndTime, err)}
	}

	if end-start <= 0 {
		return nil, &ValidationError{Message: "End time must be after start time"}
	}

	title := req.Title
	if title == "" {
		title = "clip"
	}

	clipID := fmt.Sprintf("%s_%d_%d_%s.mp4", req.VideoID, start, end, time.Now().Format("20060102_150405"))

	return &Job{
		VideoID:      req.VideoID,
		Title:        title,
		StartSeconds: start,
		EndSeconds:   end,
		Duration:     end - start,
		ClipID:       clipID,
		LocalPath:    filepath.Join(tmpDir, clipID),
	}, nil
}
