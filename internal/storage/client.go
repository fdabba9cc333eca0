package storage

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/daniellupu10/Youtube-Clip-Genie/internal/config"
)

// Client обертка над S3 клиентом
type Client struct {
	s3Client *s3.Client
	bucket   string
	endpoint string
}

// NewClient создает новый S3 клиент
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	if cfg.ClipBucket == "" {
		return nil, fmt.Errorf("clip bucket name must be set")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	// Static credentials when configured; otherwise the default chain
	// picks up the execution-role credentials (Lambda, EC2).
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3Endpoint)
	})

	return &Client{
		s3Client: client,
		bucket:   cfg.ClipBucket,
		endpoint: cfg.S3Endpoint,
	}, nil
}

// UploadPublicFile uploads a local file under the given key with
// public-read access and download metadata.
func (c *Client) UploadPublicFile(ctx context.Context, key, localPath, contentType, contentDisposition string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", localPath, err)
	}
	defer f.Close()

	_, err = c.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:             aws.String(c.bucket),
		Key:                aws.String(key),
		Body:               f,
		ACL:                types.ObjectCannedACLPublicRead,
		ContentType:        aws.String(contentType),
		ContentDisposition: aws.String(contentDisposition),
	})
	return err
}

// PublicURL возвращает постоянный публичный URL объекта.
// Virtual-Hosted Style: https://bucket.endpoint/key
func (c *Client) PublicURL(key string) string {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", c.bucket, key)
	}

	// Принудительно ставим HTTPS для публичных ссылок
	u.Scheme = "https"
	u.Host = fmt.Sprintf("%s.%s", c.bucket, u.Host)
	u.Path = "/" + key

	return u.String()
}
