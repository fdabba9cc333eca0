package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/daniellupu10/Youtube-Clip-Genie/internal/clip"
)

// pipelineFailureMessage is the user-facing text on 500 responses; the
// stage diagnostic travels in the "error" field.
const pipelineFailureMessage = "Video clipping failed. Please try again."

// ClipService is the pipeline surface the server depends on.
type ClipService interface {
	CreateClip(ctx context.Context, req *clip.Request) (*clip.Result, error)
}

// Server represents HTTP server
type Server struct {
	clipService ClipService
}

// NewServer creates a new HTTP server
func NewServer(clipService ClipService) *Server {
	return &Server{
		clipService: clipService,
	}
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// CreateClip handles clip creation
// @Summary		Create a clip from a YouTube video
// @Description	Extracts a time-bounded sub-clip, uploads it to object storage and returns a public download URL
// @Tags		clip
// @Accept		json
// @Produce	json
// @Param		request	body		ClipRequest	true	"Clip request"
// @Success	200	{object}	ClipResponse
// @Failure	400	{object}	ErrorResponse
// @Failure	500	{object}	ErrorResponse
// @Router		/clip [post]
func (s *Server) CreateClip(w http.ResponseWriter, r *http.Request) {
	var req ClipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	result, err := s.clipService.CreateClip(r.Context(), &clip.Request{
		VideoID:   req.VideoID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Title:     req.Title,
	})
	if err != nil {
		var validationErr *clip.ValidationError
		if errors.As(err, &validationErr) {
			s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: validationErr.Message})
			return
		}

		s.writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   err.Error(),
			Message: pipelineFailureMessage,
		})
		return
	}

	s.writeJSON(w, http.StatusOK, ClipResponse{
		DownloadURL: result.DownloadURL,
		Title:       result.Title,
		Duration:    result.Duration,
		FileSize:    &result.FileSize,
	})
}

// Health handles health checks
// @Summary		Health check
// @Tags		service
// @Produce	json
// @Success	200	{object}	HealthResponse
// @Router		/health [get]
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
