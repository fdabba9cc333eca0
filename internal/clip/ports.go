package clip

import "context"

// StreamResolver obtains a direct media URL for a platform video ID.
type StreamResolver interface {
	Resolve(ctx context.Context, videoID string) (*ResolvedStream, error)
}

// Extractor trims the resolved stream to the job's window and writes
// the clip to job.LocalPath.
type Extractor interface {
	Extract(ctx context.Context, stream *ResolvedStream, job *Job) (*Artifact, error)
}

// StorageProvider is the object-storage surface the pipeline needs.
type StorageProvider interface {
	UploadPublicFile(ctx context.Context, key, localPath, contentType, contentDisposition string) error
	PublicURL(key string) string
}
