package storage

import (
	"context"
	"testing"

	"github.com/daniellupu10/Youtube-Clip-Genie/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestClient_PublicURL(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		bucket   string
		key      string
		expected string
	}{
		{
			name:     "aws default endpoint",
			endpoint: "https://s3.amazonaws.com",
			bucket:   "youtube-clip-generator",
			key:      "clips/abc123_90_120_20260826_120000.mp4",
			expected: "https://youtube-clip-generator.s3.amazonaws.com/clips/abc123_90_120_20260826_120000.mp4",
		},
		{
			name:     "custom endpoint",
			endpoint: "https://storage.yandexcloud.net",
			bucket:   "my-clips",
			key:      "clips/x.mp4",
			expected: "https://my-clips.storage.yandexcloud.net/clips/x.mp4",
		},
		{
			name:     "http endpoint is upgraded",
			endpoint: "http://s3.amazonaws.com",
			bucket:   "b",
			key:      "clips/x.mp4",
			expected: "https://b.s3.amazonaws.com/clips/x.mp4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Client{bucket: tt.bucket, endpoint: tt.endpoint}
			assert.Equal(t, tt.expected, c.PublicURL(tt.key))
		})
	}
}

func TestNewClient_RequiresBucket(t *testing.T) {
	c, err := NewClient(context.Background(), &config.Config{ClipBucket: ""})

	assert.Nil(t, c)
	assert.Error(t, err)
}
