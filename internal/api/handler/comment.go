package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hszk-dev/gotube/internal/api/middleware"
	"github.com/hszk-dev/gotube/internal/domain/model"
	"github.com/hszk-dev/gotube/internal/pagination"
	"github.com/hszk-dev/gotube/internal/usecase"
)

type CommentRequest struct {
	Content string `json:"content"`
}

type CommentResponse struct {
	ID        string `json:"id"`
	VideoID   string `json:"video_id"`
	AuthorID  string `json:"author_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	svc usecase.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(svc usecase.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// List handles GET /v1/videos/{videoID}/comments
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "videoID"))
	if err != nil {
		Error(w, http.StatusBadRequest, "Video ID must be a valid UUID")
		return
	}

	params := pagination.ParseParams(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))

	page, err := h.svc.List(r.Context(), videoID, params)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	message := "Comments fetched"
	if len(page.Items) == 0 {
		message = "No comments on this video"
	}

	JSON(w, http.StatusOK, toCommentPage(page), message)
}

// Add handles POST /v1/videos/{videoID}/comments
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "videoID"))
	if err != nil {
		Error(w, http.StatusBadRequest, "Video ID must be a valid UUID")
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	userID := middleware.GetUserID(r.Context())

	comment, err := h.svc.Add(r.Context(), userID, videoID, req.Content)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusCreated, toCommentResponse(comment), "Comment added")
}

// Update handles PATCH /v1/comments/{commentID}
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	commentID, err := uuid.Parse(chi.URLParam(r, "commentID"))
	if err != nil {
		Error(w, http.StatusBadRequest, "Comment ID must be a valid UUID")
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	userID := middleware.GetUserID(r.Context())

	comment, err := h.svc.Update(r.Context(), userID, commentID, req.Content)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	// A nil comment means nothing matched the caller's ownership; the
	// operation reports success without a payload.
	if comment == nil {
		JSON(w, http.StatusOK, nil, "Comment updated")
		return
	}

	JSON(w, http.StatusOK, toCommentResponse(comment), "Comment updated")
}

// Delete handles DELETE /v1/comments/{commentID}
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	commentID, err := uuid.Parse(chi.URLParam(r, "commentID"))
	if err != nil {
		Error(w, http.StatusBadRequest, "Comment ID must be a valid UUID")
		return
	}

	userID := middleware.GetUserID(r.Context())

	if err := h.svc.Delete(r.Context(), userID, commentID); err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, nil, "Comment deleted")
}

func toCommentResponse(c *model.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID.String(),
		VideoID:   c.VideoID.String(),
		AuthorID:  c.AuthorID.String(),
		Content:   c.Content,
		CreatedAt: c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: c.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toCommentPage(page pagination.Page[*model.Comment]) pagination.Page[CommentResponse] {
	items := make([]CommentResponse, len(page.Items))
	for i, c := range page.Items {
		items[i] = toCommentResponse(c)
	}
	return pagination.Page[CommentResponse]{
		Items:      items,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}
}
