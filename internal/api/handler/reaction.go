package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hszk-dev/gotube/internal/api/middleware"
	"github.com/hszk-dev/gotube/internal/domain/model"
	"github.com/hszk-dev/gotube/internal/usecase"
)

type ToggleReactionResponse struct {
	State string `json:"state"`
}

// ReactionHandler handles reaction-related HTTP requests.
type ReactionHandler struct {
	svc usecase.ReactionService
}

// NewReactionHandler creates a new ReactionHandler.
func NewReactionHandler(svc usecase.ReactionService) *ReactionHandler {
	return &ReactionHandler{svc: svc}
}

// Toggle handles POST /v1/reactions/{kind}/{targetID}
func (h *ReactionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	kind := model.TargetKind(chi.URLParam(r, "kind"))

	targetID, err := uuid.Parse(chi.URLParam(r, "targetID"))
	if err != nil {
		Error(w, http.StatusBadRequest, "Target ID must be a valid UUID")
		return
	}

	userID := middleware.GetUserID(r.Context())

	state, err := h.svc.Toggle(r.Context(), userID, kind, targetID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	message := "Reaction added"
	if state == model.StateUnliked {
		message = "Reaction removed"
	}

	JSON(w, http.StatusOK, ToggleReactionResponse{State: string(state)}, message)
}
