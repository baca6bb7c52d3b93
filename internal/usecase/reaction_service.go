package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hszk-dev/gotube/internal/domain/model"
	"github.com/hszk-dev/gotube/internal/domain/repository"
	"github.com/hszk-dev/gotube/internal/infrastructure/metrics"
)

// ReactionService defines the interface for reaction business logic.
type ReactionService interface {
	// Toggle flips the caller's reaction on the target: present reactions
	// are removed (UNLIKED), absent ones created (LIKED). The target's
	// existence is not re-validated here; callers validate at
	// creation-adjacent sites.
	Toggle(ctx context.Context, userID uuid.UUID, kind model.TargetKind, targetID uuid.UUID) (model.ReactionState, error)
}

type reactionService struct {
	repo repository.ReactionRepository
}

// NewReactionService creates a new ReactionService instance.
func NewReactionService(repo repository.ReactionRepository) ReactionService {
	return &reactionService{repo: repo}
}

// Toggle runs conditional-delete-then-insert against the store. Both
// statements are atomic on the (user, kind, target) key, so concurrent
// toggles resolve at the store's uniqueness constraint instead of racing
// a check-then-act sequence: a duplicate-key insert means a racer won
// and the key is liked either way.
func (s *reactionService) Toggle(ctx context.Context, userID uuid.UUID, kind model.TargetKind, targetID uuid.UUID) (model.ReactionState, error) {
	if userID == uuid.Nil {
		return "", ErrUnauthenticated
	}
	if !kind.IsValid() {
		return "", model.ErrInvalidTargetKind
	}
	if targetID == uuid.Nil {
		return "", model.ErrInvalidTargetID
	}

	deleted, err := s.repo.Delete(ctx, userID, kind, targetID)
	if err != nil {
		return "", fmt.Errorf("delete reaction: %w", err)
	}
	if deleted {
		s.record(kind, model.StateUnliked)
		return model.StateUnliked, nil
	}

	reaction, err := model.NewReaction(userID, kind, targetID)
	if err != nil {
		return "", err
	}

	if err := s.repo.Create(ctx, reaction); err != nil {
		if errors.Is(err, repository.ErrDuplicateReaction) {
			s.record(kind, model.StateLiked)
			return model.StateLiked, nil
		}
		return "", fmt.Errorf("create reaction: %w", err)
	}

	s.record(kind, model.StateLiked)
	return model.StateLiked, nil
}

func (s *reactionService) record(kind model.TargetKind, state model.ReactionState) {
	metrics.ReactionTogglesTotal.WithLabelValues(kind.String(), strings.ToLower(string(state))).Inc()
}
