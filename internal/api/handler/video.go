package handler

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hszk-dev/gotube/internal/api/middleware"
	"github.com/hszk-dev/gotube/internal/domain/model"
	"github.com/hszk-dev/gotube/internal/domain/repository"
	"github.com/hszk-dev/gotube/internal/pagination"
	"github.com/hszk-dev/gotube/internal/usecase"
)

// maxUploadBytes bounds the multipart form kept in memory; larger
// bodies spill to disk.
const maxUploadBytes = 32 << 20

type VideoResponse struct {
	ID              string  `json:"id"`
	OwnerID         string  `json:"owner_id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	MediaURL        string  `json:"media_url,omitempty"`
	ThumbnailURL    string  `json:"thumbnail_url,omitempty"`
	DurationSeconds float64 `json:"duration_seconds"`
	Views           int64   `json:"views"`
	IsPublished     bool    `json:"is_published"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type VideoOwnerResponse struct {
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

type VideoSummaryResponse struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	MediaURL        string             `json:"media_url,omitempty"`
	ThumbnailURL    string             `json:"thumbnail_url,omitempty"`
	DurationSeconds float64            `json:"duration_seconds"`
	Views           int64              `json:"views"`
	Owner           VideoOwnerResponse `json:"owner"`
}

// VideoHandler handles video-related HTTP requests.
type VideoHandler struct {
	videos usecase.VideoService
	feed   usecase.FeedService
}

// NewVideoHandler creates a new VideoHandler.
func NewVideoHandler(videos usecase.VideoService, feed usecase.FeedService) *VideoHandler {
	return &VideoHandler{videos: videos, feed: feed}
}

// ListFeed handles GET /v1/videos
func (h *VideoHandler) ListFeed(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	ownerID, err := uuid.Parse(query.Get("owner_id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "Owner ID must be a valid UUID")
		return
	}

	q := repository.FeedQuery{
		Search:  query.Get("search"),
		SortBy:  query.Get("sort_by"),
		SortAsc: query.Get("sort_order") == "asc",
	}
	params := pagination.ParseParams(query.Get("page"), query.Get("limit"))

	userID := middleware.GetUserID(r.Context())

	page, err := h.feed.ListVideos(r.Context(), userID, ownerID, q, params)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toSummaryPage(page), "Videos fetched")
}

// ListLiked handles GET /v1/videos/liked
func (h *VideoHandler) ListLiked(w http.ResponseWriter, r *http.Request) {
	params := pagination.ParseParams(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))
	userID := middleware.GetUserID(r.Context())

	page, err := h.feed.ListLikedVideos(r.Context(), userID, params)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toVideoPage(page), "Liked videos fetched")
}

// Publish handles POST /v1/videos
// The body is a multipart form with title and description fields plus
// video and thumbnail files.
func (h *VideoHandler) Publish(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		Error(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	videoPath, err := saveUpload(r, "video")
	if err != nil {
		Error(w, http.StatusBadRequest, "Video file is required")
		return
	}
	defer os.Remove(videoPath)

	thumbnailPath, err := saveUpload(r, "thumbnail")
	if err != nil {
		Error(w, http.StatusBadRequest, "Thumbnail file is required")
		return
	}
	defer os.Remove(thumbnailPath)

	userID := middleware.GetUserID(r.Context())

	video, err := h.videos.Publish(r.Context(), usecase.PublishVideoInput{
		OwnerID:       userID,
		Title:         r.FormValue("title"),
		Description:   r.FormValue("description"),
		VideoPath:     videoPath,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusCreated, toVideoResponse(video), "Video published")
}

// Get handles GET /v1/videos/{videoID}
func (h *VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "videoID"))
	if err != nil {
		Error(w, http.StatusBadRequest, "Video ID must be a valid UUID")
		return
	}

	userID := middleware.GetUserID(r.Context())

	video, err := h.videos.Get(r.Context(), userID, videoID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toVideoResponse(video), "Video fetched")
}

// Update handles PATCH /v1/videos/{videoID}
// The body is a multipart form with title and description fields and an
// optional replacement thumbnail file.
func (h *VideoHandler) Update(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "videoID"))
	if err != nil {
		Error(w, http.StatusBadRequest, "Video ID must be a valid UUID")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		Error(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	input := usecase.UpdateVideoInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	}

	if thumbnailPath, err := saveUpload(r, "thumbnail"); err == nil {
		defer os.Remove(thumbnailPath)
		input.ThumbnailPath = thumbnailPath
	}

	userID := middleware.GetUserID(r.Context())

	video, err := h.videos.Update(r.Context(), userID, videoID, input)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toVideoResponse(video), "Video updated")
}

// Delete handles DELETE /v1/videos/{videoID}
func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "videoID"))
	if err != nil {
		Error(w, http.StatusBadRequest, "Video ID must be a valid UUID")
		return
	}

	userID := middleware.GetUserID(r.Context())

	if err := h.videos.Delete(r.Context(), userID, videoID); err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, nil, "Video deleted")
}

// TogglePublish handles POST /v1/videos/{videoID}/toggle-publish
func (h *VideoHandler) TogglePublish(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "videoID"))
	if err != nil {
		Error(w, http.StatusBadRequest, "Video ID must be a valid UUID")
		return
	}

	userID := middleware.GetUserID(r.Context())

	video, err := h.videos.TogglePublish(r.Context(), userID, videoID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toVideoResponse(video), "Publish status toggled")
}

// saveUpload copies the named multipart file to a temp file and returns
// its path. The caller removes the file when done.
func saveUpload(r *http.Request, field string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", err
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", "upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, file); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write upload: %w", err)
	}

	return tmp.Name(), nil
}

func toVideoResponse(v *model.Video) VideoResponse {
	return VideoResponse{
		ID:              v.ID.String(),
		OwnerID:         v.OwnerID.String(),
		Title:           v.Title,
		Description:     v.Description,
		MediaURL:        v.MediaURL,
		ThumbnailURL:    v.ThumbnailURL,
		DurationSeconds: v.DurationSeconds,
		Views:           v.Views,
		IsPublished:     v.IsPublished,
		CreatedAt:       v.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       v.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toSummaryResponse(s *model.VideoSummary) VideoSummaryResponse {
	return VideoSummaryResponse{
		ID:              s.ID.String(),
		Title:           s.Title,
		Description:     s.Description,
		MediaURL:        s.MediaURL,
		ThumbnailURL:    s.ThumbnailURL,
		DurationSeconds: s.DurationSeconds,
		Views:           s.Views,
		Owner: VideoOwnerResponse{
			DisplayName: s.Owner.DisplayName,
			AvatarURL:   s.Owner.AvatarURL,
		},
	}
}

func toSummaryPage(page pagination.Page[*model.VideoSummary]) pagination.Page[VideoSummaryResponse] {
	items := make([]VideoSummaryResponse, len(page.Items))
	for i, s := range page.Items {
		items[i] = toSummaryResponse(s)
	}
	return pagination.Page[VideoSummaryResponse]{
		Items:      items,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}
}

func toVideoPage(page pagination.Page[*model.Video]) pagination.Page[VideoResponse] {
	items := make([]VideoResponse, len(page.Items))
	for i, v := range page.Items {
		items[i] = toVideoResponse(v)
	}
	return pagination.Page[VideoResponse]{
		Items:      items,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}
}
