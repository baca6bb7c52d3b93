package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hszk-dev/gotube/internal/domain/model"
)

// ReactionRepository defines persistence operations for reactions.
// Implementations must back Create with a unique constraint on the
// (user, target kind, target id) key so that toggling stays race-safe.
type ReactionRepository interface {
	// Create persists a new reaction.
	// Returns ErrDuplicateReaction if the key already exists.
	Create(ctx context.Context, reaction *model.Reaction) error

	// Delete removes the reaction for the given key in a single
	// conditional statement. Returns true if a row was deleted.
	Delete(ctx context.Context, userID uuid.UUID, kind model.TargetKind, targetID uuid.UUID) (bool, error)

	// ListVideoIDsByUser returns the IDs of all videos the user has
	// reacted to. Returns an empty slice if there are none.
	ListVideoIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
