package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// S3/Storage configuration
	S3Endpoint         string
	S3Region           string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	ClipBucket         string
	ClipKeyPrefix      string

	// External tool configuration
	YtDlpPath  string
	FFmpegPath string
	TmpDir     string

	// Stage deadlines. Their sum must stay under the ~90s
	// end-to-end budget imposed by the gateway in front of us.
	ResolveTimeout time.Duration
	ExtractTimeout time.Duration

	// Telegram configuration
	TelegramBotToken    string
	TelegramAdminChatID string

	// HTTP configuration
	HTTPPort string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// S3/Storage configuration
	s3Endpoint := getEnv("S3_ENDPOINT", "https://s3.amazonaws.com")
	// If the env var is set but is an empty string, it will override the default.
	// We must fall back to the default in that case to prevent errors.
	if s3Endpoint == "" {
		s3Endpoint = "https://s3.amazonaws.com"
	}
	if !strings.HasPrefix(s3Endpoint, "http://") && !strings.HasPrefix(s3Endpoint, "https://") {
		s3Endpoint = "https://" + s3Endpoint
		log.Printf("WARN: S3_ENDPOINT was missing a protocol scheme. Prepending 'https://'. New endpoint: %s", s3Endpoint)
	}

	return &Config{
		// S3/Storage configuration
		S3Endpoint:         s3Endpoint,
		S3Region:           getEnv("S3_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("CLIP_SA_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("CLIP_SA_KEY", ""),
		ClipBucket:         getEnv("CLIP_BUCKET", "youtube-clip-generator"),
		ClipKeyPrefix:      getEnv("CLIP_KEY_PREFIX", "clips"),

		// External tool configuration
		YtDlpPath:  getEnv("YTDLP_PATH", lookupTool("yt-dlp")),
		FFmpegPath: getEnv("FFMPEG_PATH", lookupTool("ffmpeg")),
		TmpDir:     getEnv("CLIP_TMP_DIR", os.TempDir()),

		// Stage deadlines
		ResolveTimeout: time.Duration(getEnvInt("CLIP_RESOLVE_TIMEOUT_SECONDS", 30, 1, 90)) * time.Second,
		ExtractTimeout: time.Duration(getEnvInt("CLIP_EXTRACT_TIMEOUT_SECONDS", 60, 1, 90)) * time.Second,

		// Telegram configuration
		TelegramBotToken:    getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramAdminChatID: getEnv("TELEGRAM_CHAT_ID", ""),

		// HTTP configuration
		HTTPPort: getEnv("CLIP_HTTP_PORT", "8080"),
	}
}

// lookupTool prefers the Lambda-layer location of a binary and falls
// back to resolution via PATH.
func lookupTool(name string) string {
	layerPath := "/opt/bin/" + name
	if _, err := os.Stat(layerPath); err == nil {
		return layerPath
	}
	return name
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback, min, max int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			if n < min {
				return min
			}
			if n > max {
				return max
			}
			return n
		}
		log.Printf("WARN: %s=%q is not an integer, using default %d", key, v, fallback)
	}

	if fallback < min {
		return min
	}
	if fallback > max {
		return max
	}
	return fallback
}
