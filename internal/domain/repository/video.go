package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hszk-dev/gotube/internal/domain/model"
)

// Feed sort fields accepted by ListFeed. Anything else falls back to
// the default ordering (created_at descending).
const (
	SortByCreatedAt = "created_at"
	SortByTitle     = "title"
	SortByDuration  = "duration"
	SortByViews     = "views"
)

// FeedQuery describes the composed feed listing: published-only filter,
// optional case-insensitive substring search over title or description,
// and the sort order. Windowing is applied by the caller.
type FeedQuery struct {
	Search  string
	SortBy  string
	SortAsc bool
}

// VideoUpdate carries the owner-editable video fields.
// Thumbnail fields are applied only when ThumbnailKey is non-empty.
type VideoUpdate struct {
	Title        string
	Description  string
	ThumbnailURL string
	ThumbnailKey string
}

// VideoRepository defines persistence operations for videos.
// All mutating operations are owner-gated: the owner is part of the
// lookup predicate, so a non-owner request surfaces as ErrVideoNotFound
// rather than leaking that the video exists.
type VideoRepository interface {
	// Create persists a new video entity.
	Create(ctx context.Context, video *model.Video) error

	// GetByID retrieves a video by its unique identifier.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error)

	// ListFeed evaluates the composed feed query over published videos,
	// joining each video to its owner and projecting only the summary
	// field set. The full ordered result is returned for windowing.
	ListFeed(ctx context.Context, q FeedQuery) ([]*model.VideoSummary, error)

	// ListByIDs retrieves the videos with the given IDs ordered by
	// creation time descending. Missing IDs are skipped.
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Video, error)

	// UpdateOwned applies the update only when both ID and owner match.
	// Returns ErrVideoNotFound otherwise.
	UpdateOwned(ctx context.Context, id, ownerID uuid.UUID, update VideoUpdate) (*model.Video, error)

	// DeleteOwned deletes the video only when both ID and owner match and
	// returns the deleted row so callers can release its media objects.
	// Returns ErrVideoNotFound otherwise.
	DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) (*model.Video, error)

	// TogglePublishOwned flips is_published in a single conditional
	// statement when both ID and owner match.
	// Returns ErrVideoNotFound otherwise.
	TogglePublishOwned(ctx context.Context, id, ownerID uuid.UUID) (*model.Video, error)

	// AddViews adds the given delta to a video's view counter.
	// Used by the worker when draining the Redis accumulator.
	AddViews(ctx context.Context, id uuid.UUID, delta int64) error
}
