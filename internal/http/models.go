package http

// ClipRequest represents a clip creation request
// @Description	Clip request with video ID, time window and display title
type ClipRequest struct {
	VideoID   string `json:"videoId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Title     string `json:"title"`
}

// ClipResponse represents a successful clip creation response
// @Description	Clip response with the public download URL
type ClipResponse struct {
	DownloadURL string `json:"downloadUrl"`
	Title       string `json:"title"`
	Duration    int    `json:"duration"`
	FileSize    *int64 `json:"fileSize"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse represents a health check response
type HealthResponse struct {
	Status string `json:"status"`
}
