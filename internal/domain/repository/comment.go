package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hszk-dev/gotube/internal/domain/model"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	// Create persists a new comment.
	Create(ctx context.Context, comment *model.Comment) error

	// ListByVideoID returns all comments on a video ordered by creation
	// time descending. Returns an empty slice if there are none.
	ListByVideoID(ctx context.Context, videoID uuid.UUID) ([]*model.Comment, error)

	// UpdateOwned updates the content of a comment only when both the ID
	// and the author match. Returns (nil, nil) when no row matches: a
	// mutation against another user's comment is a silent no-op, not an
	// error, so foreign comments are indistinguishable from absent ones.
	UpdateOwned(ctx context.Context, id, authorID uuid.UUID, content string) (*model.Comment, error)

	// DeleteOwned deletes a comment only when both the ID and the author
	// match. A non-matching key is not an error.
	DeleteOwned(ctx context.Context, id, authorID uuid.UUID) error

	// Exists reports whether a comment with the given ID resolves.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
