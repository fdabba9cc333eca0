package clip_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/daniellupu10/Youtube-Clip-Genie/internal/clip"
	"github.com/daniellupu10/Youtube-Clip-Genie/internal/clip/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupClipService(t *testing.T) (*clip.Service, *mocks.StreamResolver, *mocks.Extractor, *mocks.StorageProvider, string) {
	mockResolver := new(mocks.StreamResolver)
	mockExtractor := new(mocks.Extractor)
	mockStorage := new(mocks.StorageProvider)
	tmpDir := t.TempDir()

	service := clip.NewService(mockResolver, mockExtractor, mockStorage, "clips", tmpDir)
	return service, mockResolver, mockExtractor, mockStorage, tmpDir
}

// extractToFile makes the extractor mock behave like ffmpeg: it writes
// the output file and reports the artifact for it.
func extractToFile(mockExtractor *mocks.Extractor, content []byte) *clip.Artifact {
	artifact := &clip.Artifact{}
	mockExtractor.On("Extract", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			job := args.Get(2).(*clip.Job)
			if err := os.WriteFile(job.LocalPath, content, 0644); err != nil {
				panic(err)
			}
			artifact.LocalPath = job.LocalPath
			artifact.Size = int64(len(content))
		}).
		Return(artifact, nil)
	return artifact
}

func clipKeyFor(videoID string) interface{} {
	return mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "clips/"+videoID+"_")
	})
}

func TestService_CreateClip_Success(t *testing.T) {
	service, mockResolver, mockExtractor, mockStorage, _ := setupClipService(t)
	ctx := context.Background()

	mockResolver.On("Resolve", mock.Anything, "abc123").
		Return(&clip.ResolvedStream{DirectURL: "https://cdn.example.com/stream.mp4"}, nil)

	artifact := extractToFile(mockExtractor, []byte("clip-bytes"))

	mockStorage.On("UploadPublicFile", mock.Anything, clipKeyFor("abc123"), mock.Anything,
		"video/mp4", `attachment; filename="Test.mp4"`).Return(nil)
	mockStorage.On("PublicURL", clipKeyFor("abc123")).
		Return("https://youtube-clip-generator.s3.amazonaws.com/clips/abc123_90_120_x.mp4")

	result, err := service.CreateClip(ctx, &clip.Request{
		VideoID:   "abc123",
		StartTime: "01:30",
		EndTime:   "02:00",
		Title:     "Test",
	})

	assert.NoError(t, err)
	assert.Equal(t, "https://youtube-clip-generator.s3.amazonaws.com/clips/abc123_90_120_x.mp4", result.DownloadURL)
	assert.Equal(t, "Test", result.Title)
	assert.Equal(t, 30, result.Duration)
	assert.Equal(t, int64(len("clip-bytes")), result.FileSize)

	// Temp file must be gone after a successful run.
	assert.NoFileExists(t, artifact.LocalPath)

	mockResolver.AssertExpectations(t)
	mockExtractor.AssertExpectations(t)
	mockStorage.AssertExpectations(t)
}

func TestService_CreateClip_EscapesTitleInDisposition(t *testing.T) {
	service, mockResolver, mockExtractor, mockStorage, _ := setupClipService(t)
	ctx := context.Background()

	mockResolver.On("Resolve", mock.Anything, "abc123").
		Return(&clip.ResolvedStream{DirectURL: "https://cdn.example.com/stream.mp4"}, nil)
	extractToFile(mockExtractor, []byte("x"))

	mockStorage.On("UploadPublicFile", mock.Anything, mock.Anything, mock.Anything,
		"video/mp4", `attachment; filename="My%20Clip%20%231.mp4"`).Return(nil)
	mockStorage.On("PublicURL", mock.Anything).Return("https://bucket.s3.amazonaws.com/clips/x.mp4")

	_, err := service.CreateClip(ctx, &clip.Request{
		VideoID:   "abc123",
		StartTime: "0",
		EndTime:   "10",
		Title:     "My Clip #1",
	})

	assert.NoError(t, err)
	mockStorage.AssertExpectations(t)
}

func TestService_CreateClip_ValidationFailureNeverResolves(t *testing.T) {
	service, mockResolver, _, _, _ := setupClipService(t)
	ctx := context.Background()

	result, err := service.CreateClip(ctx, &clip.Request{VideoID: "abc123", StartTime: "01:30"})

	assert.Nil(t, result)
	var validationErr *clip.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	mockResolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestService_CreateClip_ResolverFailureSkipsExtraction(t *testing.T) {
	service, mockResolver, mockExtractor, mockStorage, _ := setupClipService(t)
	ctx := context.Background()

	mockResolver.On("Resolve", mock.Anything, "abc123").
		Return(nil, &clip.StreamResolutionError{Message: "Video URL retrieval timed out"})

	result, err := service.CreateClip(ctx, &clip.Request{
		VideoID:   "abc123",
		StartTime: "01:30",
		EndTime:   "02:00",
	})

	assert.Nil(t, result)
	var resolutionErr *clip.StreamResolutionError
	assert.ErrorAs(t, err, &resolutionErr)
	assert.Contains(t, err.Error(), "timed out")

	mockExtractor.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything, mock.Anything)
	mockStorage.AssertNotCalled(t, "UploadPublicFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CreateClip_ExtractionFailureCleansPartialFile(t *testing.T) {
	service, mockResolver, mockExtractor, mockStorage, _ := setupClipService(t)
	ctx := context.Background()

	mockResolver.On("Resolve", mock.Anything, "abc123").
		Return(&clip.ResolvedStream{DirectURL: "https://cdn.example.com/stream.mp4"}, nil)

	var partialPath string
	mockExtractor.On("Extract", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			// Simulate ffmpeg dying half-way with a partial file on disk.
			job := args.Get(2).(*clip.Job)
			partialPath = job.LocalPath
			_ = os.WriteFile(partialPath, []byte("partial"), 0644)
		}).
		Return(nil, &clip.ExtractionError{Message: "FFMPEG failed: broken pipe"})

	result, err := service.CreateClip(ctx, &clip.Request{
		VideoID:   "abc123",
		StartTime: "01:30",
		EndTime:   "02:00",
	})

	assert.Nil(t, result)
	var extractionErr *clip.ExtractionError
	assert.ErrorAs(t, err, &extractionErr)

	assert.NoFileExists(t, partialPath)
	mockStorage.AssertNotCalled(t, "UploadPublicFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CreateClip_UploadFailureCleansTempFile(t *testing.T) {
	service, mockResolver, mockExtractor, mockStorage, _ := setupClipService(t)
	ctx := context.Background()

	mockResolver.On("Resolve", mock.Anything, "abc123").
		Return(&clip.ResolvedStream{DirectURL: "https://cdn.example.com/stream.mp4"}, nil)
	artifact := extractToFile(mockExtractor, []byte("clip-bytes"))

	mockStorage.On("UploadPublicFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("AccessDenied: insufficient permissions"))

	result, err := service.CreateClip(ctx, &clip.Request{
		VideoID:   "abc123",
		StartTime: "01:30",
		EndTime:   "02:00",
	})

	assert.Nil(t, result)
	var publishErr *clip.PublishError
	assert.ErrorAs(t, err, &publishErr)
	assert.Contains(t, err.Error(), "Upload to S3 failed")

	assert.NoFileExists(t, artifact.LocalPath)
	mockStorage.AssertNotCalled(t, "PublicURL", mock.Anything)
}
