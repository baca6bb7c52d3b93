package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/hszk-dev/gotube/internal/domain/model"
	"github.com/hszk-dev/gotube/internal/domain/repository"
)

// mockReactionRepository provides a configurable mock for ReactionRepository.
type mockReactionRepository struct {
	createFn             func(ctx context.Context, reaction *model.Reaction) error
	deleteFn             func(ctx context.Context, userID uuid.UUID, kind model.TargetKind, targetID uuid.UUID) (bool, error)
	listVideoIDsByUserFn func(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

func (m *mockReactionRepository) Create(ctx context.Context, reaction *model.Reaction) error {
	if m.createFn != nil {
		return m.createFn(ctx, reaction)
	}
	return nil
}

func (m *mockReactionRepository) Delete(ctx context.Context, userID uuid.UUID, kind model.TargetKind, targetID uuid.UUID) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, kind, targetID)
	}
	return false, nil
}

func (m *mockReactionRepository) ListVideoIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if m.listVideoIDsByUserFn != nil {
		return m.listVideoIDsByUserFn(ctx, userID)
	}
	return nil, nil
}

// mockCommentRepository provides a configurable mock for CommentRepository.
type mockCommentRepository struct {
	createFn        func(ctx context.Context, comment *model.Comment) error
	listByVideoIDFn func(ctx context.Context, videoID uuid.UUID) ([]*model.Comment, error)
	updateOwnedFn   func(ctx context.Context, id, authorID uuid.UUID, content string) (*model.Comment, error)
	deleteOwnedFn   func(ctx context.Context, id, authorID uuid.UUID) error
	existsFn        func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	if m.createFn != nil {
		return m.createFn(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) ListByVideoID(ctx context.Context, videoID uuid.UUID) ([]*model.Comment, error) {
	if m.listByVideoIDFn != nil {
		return m.listByVideoIDFn(ctx, videoID)
	}
	return nil, nil
}

func (m *mockCommentRepository) UpdateOwned(ctx context.Context, id, authorID uuid.UUID, content string) (*model.Comment, error) {
	if m.updateOwnedFn != nil {
		return m.updateOwnedFn(ctx, id, authorID, content)
	}
	return nil, nil
}

func (m *mockCommentRepository) DeleteOwned(ctx context.Context, id, authorID uuid.UUID) error {
	if m.deleteOwnedFn != nil {
		return m.deleteOwnedFn(ctx, id, authorID)
	}
	return nil
}

func (m *mockCommentRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return false, nil
}

// mockVideoRepository provides a configurable mock for VideoRepository.
type mockVideoRepository struct {
	createFn             func(ctx context.Context, video *model.Video) error
	getByIDFn            func(ctx context.Context, id uuid.UUID) (*model.Video, error)
	listFeedFn           func(ctx context.Context, q repository.FeedQuery) ([]*model.VideoSummary, error)
	listByIDsFn          func(ctx context.Context, ids []uuid.UUID) ([]*model.Video, error)
	updateOwnedFn        func(ctx context.Context, id, ownerID uuid.UUID, update repository.VideoUpdate) (*model.Video, error)
	deleteOwnedFn        func(ctx context.Context, id, ownerID uuid.UUID) (*model.Video, error)
	togglePublishOwnedFn func(ctx context.Context, id, ownerID uuid.UUID) (*model.Video, error)
	addViewsFn           func(ctx context.Context, id uuid.UUID, delta int64) error
}

func (m *mockVideoRepository) Create(ctx context.Context, video *model.Video) error {
	if m.createFn != nil {
		return m.createFn(ctx, video)
	}
	return nil
}

func (m *mockVideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockVideoRepository) ListFeed(ctx context.Context, q repository.FeedQuery) ([]*model.VideoSummary, error) {
	if m.listFeedFn != nil {
		return m.listFeedFn(ctx, q)
	}
	return nil, nil
}

func (m *mockVideoRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Video, error) {
	if m.listByIDsFn != nil {
		return m.listByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (m *mockVideoRepository) UpdateOwned(ctx context.Context, id, ownerID uuid.UUID, update repository.VideoUpdate) (*model.Video, error) {
	if m.updateOwnedFn != nil {
		return m.updateOwnedFn(ctx, id, ownerID, update)
	}
	return nil, nil
}

func (m *mockVideoRepository) DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) (*model.Video, error) {
	if m.deleteOwnedFn != nil {
		return m.deleteOwnedFn(ctx, id, ownerID)
	}
	return nil, nil
}

func (m *mockVideoRepository) TogglePublishOwned(ctx context.Context, id, ownerID uuid.UUID) (*model.Video, error) {
	if m.togglePublishOwnedFn != nil {
		return m.togglePublishOwnedFn(ctx, id, ownerID)
	}
	return nil, nil
}

func (m *mockVideoRepository) AddViews(ctx context.Context, id uuid.UUID, delta int64) error {
	if m.addViewsFn != nil {
		return m.addViewsFn(ctx, id, delta)
	}
	return nil
}

// mockMediaStorage provides a configurable mock for MediaStorage.
type mockMediaStorage struct {
	uploadFileFn func(ctx context.Context, localPath, contentType string) (*repository.MediaAsset, error)
	removeFn     func(ctx context.Context, key string) error
}

func (m *mockMediaStorage) UploadFile(ctx context.Context, localPath, contentType string) (*repository.MediaAsset, error) {
	if m.uploadFileFn != nil {
		return m.uploadFileFn(ctx, localPath, contentType)
	}
	return &repository.MediaAsset{
		URL: "http://minio:9000/media/" + localPath,
		Key: "media/" + localPath,
	}, nil
}

func (m *mockMediaStorage) Remove(ctx context.Context, key string) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, key)
	}
	return nil
}

// mockProber provides a configurable mock for media.Prober.
type mockProber struct {
	durationFn func(ctx context.Context, path string) (float64, error)
}

func (m *mockProber) Duration(ctx context.Context, path string) (float64, error) {
	if m.durationFn != nil {
		return m.durationFn(ctx, path)
	}
	return 0, nil
}

// mockMessageQueue provides a configurable mock for MessageQueue.
type mockMessageQueue struct {
	publishCleanupTaskFn  func(ctx context.Context, task repository.CleanupTask) error
	consumeCleanupTasksFn func(ctx context.Context, handler func(task repository.CleanupTask) error) error
}

func (m *mockMessageQueue) PublishCleanupTask(ctx context.Context, task repository.CleanupTask) error {
	if m.publishCleanupTaskFn != nil {
		return m.publishCleanupTaskFn(ctx, task)
	}
	return nil
}

func (m *mockMessageQueue) ConsumeCleanupTasks(ctx context.Context, handler func(task repository.CleanupTask) error) error {
	if m.consumeCleanupTasksFn != nil {
		return m.consumeCleanupTasksFn(ctx, handler)
	}
	return nil
}

func (m *mockMessageQueue) Close() error {
	return nil
}

// mockViewCounter provides a configurable mock for cache.ViewCounter.
type mockViewCounter struct {
	incrementFn func(ctx context.Context, videoID uuid.UUID) error
	drainFn     func(ctx context.Context) (map[uuid.UUID]int64, error)
}

func (m *mockViewCounter) Increment(ctx context.Context, videoID uuid.UUID) error {
	if m.incrementFn != nil {
		return m.incrementFn(ctx, videoID)
	}
	return nil
}

func (m *mockViewCounter) Drain(ctx context.Context) (map[uuid.UUID]int64, error) {
	if m.drainFn != nil {
		return m.drainFn(ctx)
	}
	return nil, nil
}
