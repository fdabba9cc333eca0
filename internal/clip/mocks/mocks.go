package mocks

import (
	"context"

	"github.com/daniellupu10/Youtube-Clip-Genie/internal/clip"
	"github.com/stretchr/testify/mock"
)

// StreamResolver is a testify mock of clip.StreamResolver.
type StreamResolver struct {
	mock.Mock
}

func (m *StreamResolver) Resolve(ctx context.Context, videoID string) (*clip.ResolvedStream, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clip.ResolvedStream), args.Error(1)
}

// Extractor is a testify mock of clip.Extractor.
type Extractor struct {
	mock.Mock
}

func (m *Extractor) Extract(ctx context.Context, stream *clip.ResolvedStream, job *clip.Job) (*clip.Artifact, error) {
	args := m.Called(ctx, stream, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clip.Artifact), args.Error(1)
}

// StorageProvider is a testify mock of clip.StorageProvider.
type StorageProvider struct {
	mock.Mock
}

func (m *StorageProvider) UploadPublicFile(ctx context.Context, key, localPath, contentType, contentDisposition string) error {
	args := m.Called(ctx, key, localPath, contentType, contentDisposition)
	return args.Error(0)
}

func (m *StorageProvider) PublicURL(key string) string {
	args := m.Called(key)
	return args.String(0)
}
