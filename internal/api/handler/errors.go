package handler

import (
	"errors"
	"net/http"

	"github.com/hszk-dev/gotube/internal/domain/model"
	"github.com/hszk-dev/gotube/internal/domain/repository"
	"github.com/hszk-dev/gotube/internal/usecase"
)

// handleServiceError maps sentinel errors from the service layer onto
// HTTP status codes. Anything unrecognized is an internal error; store
// details never leak into the response body.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		Error(w, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, usecase.ErrForbidden):
		Error(w, http.StatusForbidden, "You are not allowed to perform this action")
	case errors.Is(err, repository.ErrVideoNotFound):
		Error(w, http.StatusNotFound, "Video not found")
	case errors.Is(err, repository.ErrCommentNotFound):
		Error(w, http.StatusNotFound, "Comment not found")
	case errors.Is(err, usecase.ErrNoVideosFound):
		Error(w, http.StatusNotFound, "No videos found")
	case errors.Is(err, usecase.ErrNoLikedVideos):
		Error(w, http.StatusNotFound, "No liked videos found")
	case errors.Is(err, usecase.ErrCommentNotDeleted):
		Error(w, http.StatusConflict, "Comment could not be deleted")
	case errors.Is(err, model.ErrInvalidTargetKind):
		Error(w, http.StatusBadRequest, "Invalid reaction target kind")
	case errors.Is(err, model.ErrInvalidTargetID):
		Error(w, http.StatusBadRequest, "Invalid reaction target ID")
	case errors.Is(err, model.ErrInvalidVideoID):
		Error(w, http.StatusBadRequest, "Video ID must be a valid UUID")
	case errors.Is(err, model.ErrEmptyContent):
		Error(w, http.StatusBadRequest, "Content cannot be empty")
	case errors.Is(err, model.ErrInvalidUserID):
		Error(w, http.StatusBadRequest, "User ID cannot be empty")
	case errors.Is(err, model.ErrEmptyTitle):
		Error(w, http.StatusBadRequest, "Title cannot be empty")
	case errors.Is(err, model.ErrTitleTooLong):
		Error(w, http.StatusBadRequest, "Title exceeds maximum length")
	case errors.Is(err, model.ErrEmptyDescription):
		Error(w, http.StatusBadRequest, "Description cannot be empty")
	default:
		Error(w, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
