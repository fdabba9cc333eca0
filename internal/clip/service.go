package clip

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/daniellupu10/Youtube-Clip-Genie/internal/logger"
)

const clipContentType = "video/mp4"

// Service runs the clipping pipeline: validate, resolve the stream,
// trim the window, publish the artifact. Stages execute strictly in
// order and the first failure short-circuits the job.
type Service struct {
	resolver  StreamResolver
	extractor Extractor
	storage   StorageProvider
	keyPrefix string
	tmpDir    string
}

func NewService(resolver StreamResolver, extractor Extractor, storage StorageProvider, keyPrefix, tmpDir string) *Service {
	return &Service{
		resolver:  resolver,
		extractor: extractor,
		storage:   storage,
		keyPrefix: keyPrefix,
		tmpDir:    tmpDir,
	}
}

// CreateClip processes a single clip request end to end and returns the
// public download URL. The local temp file is removed on every exit
// path once the extraction stage has run.
func (s *Service) CreateClip(ctx context.Context, req *Request) (*Result, error) {
	job, err := NewJob(req, s.tmpDir)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx).With(
		"video_id", job.VideoID,
		"clip_id", job.ClipID,
	)

	log.Info("Processing clip",
		"start_seconds", job.StartSeconds,
		"end_seconds", job.EndSeconds,
		"duration", job.Duration,
	)

	stream, err := s.resolver.Resolve(ctx, job.VideoID)
	if err != nil {
		log.Error("Stream resolution failed", "error", err)
		return nil, err
	}

	// The extractor may leave a partial file behind on failure, so the
	// cleanup guard covers every path from here on.
	defer s.removeLocalFile(ctx, job.LocalPath)

	artifact, err := s.extractor.Extract(ctx, stream, job)
	if err != nil {
		log.Error("Clip extraction failed", "error", err)
		return nil, err
	}

	log.Info("Created clip", "path", artifact.LocalPath, "size_bytes", artifact.Size)

	key := fmt.Sprintf("%s/%s", s.keyPrefix, job.ClipID)
	disposition := fmt.Sprintf(`attachment; filename="%s.mp4"`, url.PathEscape(job.Title))

	if err := s.storage.UploadPublicFile(ctx, key, artifact.LocalPath, clipContentType, disposition); err != nil {
		log.Error("Upload failed", "key", key, "error", err)
		return nil, &PublishError{Message: "Upload to S3 failed", Err: err}
	}

	publicURL := s.storage.PublicURL(key)
	log.Info("Upload successful", "public_url", publicURL)

	return &Result{
		DownloadURL: publicURL,
		Title:       job.Title,
		Duration:    job.Duration,
		FileSize:    artifact.Size,
	}, nil
}

// removeLocalFile deletes the job's temp file if it exists.
func (s *Service) removeLocalFile(ctx context.Context, path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := os.Remove(path); err != nil {
		logger.FromContext(ctx).Warn("Failed to clean up temp file", "path", path, "error", err)
		return
	}
	logger.FromContext(ctx).Info("Cleaned up temp file", "path", path)
}
