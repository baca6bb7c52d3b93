package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hszk-dev/gotube/internal/api/middleware"
	"github.com/hszk-dev/gotube/internal/domain/model"
	"github.com/hszk-dev/gotube/internal/usecase"
)

// Mock ReactionService

type mockReactionService struct {
	toggleFn func(ctx context.Context, userID uuid.UUID, kind model.TargetKind, targetID uuid.UUID) (model.ReactionState, error)
}

func (m *mockReactionService) Toggle(ctx context.Context, userID uuid.UUID, kind model.TargetKind, targetID uuid.UUID) (model.ReactionState, error) {
	if m.toggleFn != nil {
		return m.toggleFn(ctx, userID, kind, targetID)
	}
	return model.StateLiked, nil
}

func TestReactionHandler_Toggle(t *testing.T) {
	userID := uuid.New()
	targetID := uuid.New()

	tests := []struct {
		name           string
		kind           string
		targetID       string
		userHeader     string
		setupMock      func(m *mockReactionService)
		wantStatusCode int
		wantState      string
	}{
		{
			name:       "toggles on",
			kind:       "video",
			targetID:   targetID.String(),
			userHeader: userID.String(),
			setupMock: func(m *mockReactionService) {
				m.toggleFn = func(ctx context.Context, userID uuid.UUID, kind model.TargetKind, targetID uuid.UUID) (model.ReactionState, error) {
					return model.StateLiked, nil
				}
			},
			wantStatusCode: http.StatusOK,
			wantState:      "LIKED",
		},
		{
			name:       "toggles off",
			kind:       "video",
			targetID:   targetID.String(),
			userHeader: userID.String(),
			setupMock: func(m *mockReactionService) {
				m.toggleFn = func(ctx context.Context, userID uuid.UUID, kind model.TargetKind, targetID uuid.UUID) (model.ReactionState, error) {
					return model.StateUnliked, nil
				}
			},
			wantStatusCode: http.StatusOK,
			wantState:      "UNLIKED",
		},
		{
			name:           "invalid target ID",
			kind:           "video",
			targetID:       "not-a-uuid",
			userHeader:     userID.String(),
			setupMock:      func(m *mockReactionService) {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:       "invalid kind",
			kind:       "playlist",
			targetID:   targetID.String(),
			userHeader: userID.String(),
			setupMock: func(m *mockReactionService) {
				m.toggleFn = func(ctx context.Context, userID uuid.UUID, kind model.TargetKind, targetID uuid.UUID) (model.ReactionState, error) {
					return "", model.ErrInvalidTargetKind
				}
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:       "missing identity",
			kind:       "video",
			targetID:   targetID.String(),
			userHeader: "",
			setupMock: func(m *mockReactionService) {
				m.toggleFn = func(ctx context.Context, userID uuid.UUID, kind model.TargetKind, targetID uuid.UUID) (model.ReactionState, error) {
					if userID == uuid.Nil {
						return "", usecase.ErrUnauthenticated
					}
					return model.StateLiked, nil
				}
			},
			wantStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockReactionService{}
			tt.setupMock(mock)
			h := NewReactionHandler(mock)

			r := chi.NewRouter()
			r.Use(middleware.Identity)
			r.Post("/v1/reactions/{kind}/{targetID}", h.Toggle)

			req := httptest.NewRequest(http.MethodPost, "/v1/reactions/"+tt.kind+"/"+tt.targetID, nil)
			if tt.userHeader != "" {
				req.Header.Set("X-User-Id", tt.userHeader)
			}
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("expected status %d, got %d", tt.wantStatusCode, rec.Code)
			}

			if tt.wantState != "" {
				var resp struct {
					StatusCode int                    `json:"statusCode"`
					Data       ToggleReactionResponse `json:"data"`
				}
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to unmarshal response: %v", err)
				}
				if resp.Data.State != tt.wantState {
					t.Errorf("expected state %s, got %s", tt.wantState, resp.Data.State)
				}
				if resp.StatusCode != tt.wantStatusCode {
					t.Errorf("expected envelope status %d, got %d", tt.wantStatusCode, resp.StatusCode)
				}
			}
		})
	}
}
