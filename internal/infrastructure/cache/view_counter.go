package cache

import (
	"context"

	"github.com/google/uuid"
)

// ViewCounter accumulates video view events outside the primary store.
// Counts are drained periodically by the worker and added to the videos
// table. This is a write buffer, not a cache: Reaction, Comment and
// Video state is always read fresh from the store.
type ViewCounter interface {
	// Increment records one view for the given video.
	Increment(ctx context.Context, videoID uuid.UUID) error

	// Drain atomically reads and resets all pending counts.
	// Returns an empty map when nothing is pending.
	Drain(ctx context.Context) (map[uuid.UUID]int64, error)
}
