package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/hszk-dev/gotube/internal/domain/model"
	"github.com/hszk-dev/gotube/internal/domain/repository"
	"github.com/hszk-dev/gotube/internal/infrastructure/metrics"
	"github.com/hszk-dev/gotube/internal/pagination"
)

// FeedService defines the interface for the video feed queries.
type FeedService interface {
	// ListVideos evaluates the composed feed query and windows the
	// result. The listing is restricted to self: requesterID must equal
	// ownerID. An empty page is an error (ErrNoVideosFound), unlike
	// comment listing.
	ListVideos(ctx context.Context, requesterID, ownerID uuid.UUID, q repository.FeedQuery, params pagination.Params) (pagination.Page[*model.VideoSummary], error)

	// ListLikedVideos returns the videos the caller has reacted to,
	// newest first. A caller with zero video reactions gets
	// ErrNoLikedVideos.
	ListLikedVideos(ctx context.Context, userID uuid.UUID, params pagination.Params) (pagination.Page[*model.Video], error)
}

type feedService struct {
	videos    repository.VideoRepository
	reactions repository.ReactionRepository
	sfGroup   singleflight.Group
}

// NewFeedService creates a new FeedService instance.
func NewFeedService(videos repository.VideoRepository, reactions repository.ReactionRepository) FeedService {
	return &feedService{
		videos:    videos,
		reactions: reactions,
	}
}

// ListVideos evaluates the composed feed query and windows the result.
func (s *feedService) ListVideos(ctx context.Context, requesterID, ownerID uuid.UUID, q repository.FeedQuery, params pagination.Params) (pagination.Page[*model.VideoSummary], error) {
	var zero pagination.Page[*model.VideoSummary]

	if requesterID == uuid.Nil {
		return zero, ErrUnauthenticated
	}
	if requesterID != ownerID {
		return zero, ErrForbidden
	}

	summaries, err := s.listFeed(ctx, q)
	if err != nil {
		return zero, fmt.Errorf("list feed: %w", err)
	}

	page := pagination.Paginate(summaries, params)
	if len(page.Items) == 0 {
		return zero, ErrNoVideosFound
	}

	return page, nil
}

// listFeed coalesces concurrent identical feed queries with singleflight.
// Results are shared only between in-flight callers; nothing is retained
// across requests, so every evaluation still reads fresh state.
func (s *feedService) listFeed(ctx context.Context, q repository.FeedQuery) ([]*model.VideoSummary, error) {
	key := fmt.Sprintf("%s|%s|%t", q.Search, q.SortBy, q.SortAsc)

	result, err, shared := s.sfGroup.Do(key, func() (any, error) {
		return s.videos.ListFeed(ctx, q)
	})

	if shared {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightShared).Inc()
	} else {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightInitiated).Inc()
	}

	if err != nil {
		return nil, err
	}

	return result.([]*model.VideoSummary), nil
}

// ListLikedVideos returns the videos the caller has reacted to.
func (s *feedService) ListLikedVideos(ctx context.Context, userID uuid.UUID, params pagination.Params) (pagination.Page[*model.Video], error) {
	var zero pagination.Page[*model.Video]

	if userID == uuid.Nil {
		return zero, ErrUnauthenticated
	}

	ids, err := s.reactions.ListVideoIDsByUser(ctx, userID)
	if err != nil {
		return zero, fmt.Errorf("list reactions: %w", err)
	}
	if len(ids) == 0 {
		return zero, ErrNoLikedVideos
	}

	videos, err := s.videos.ListByIDs(ctx, ids)
	if err != nil {
		return zero, fmt.Errorf("list liked videos: %w", err)
	}

	return pagination.Paginate(videos, params), nil
}
