package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/hszk-dev/gotube/internal/domain/model"
	"github.com/hszk-dev/gotube/internal/domain/repository"
	"github.com/hszk-dev/gotube/internal/infrastructure/cache"
	"github.com/hszk-dev/gotube/internal/media"
)

// PublishVideoInput contains the input parameters for publishing a video.
// VideoPath and ThumbnailPath are local files already received by the
// routing layer.
type PublishVideoInput struct {
	OwnerID       uuid.UUID
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
}

// UpdateVideoInput contains the owner-editable video fields.
// ThumbnailPath is optional; when set, the thumbnail is replaced.
type UpdateVideoInput struct {
	Title         string
	Description   string
	ThumbnailPath string
}

// VideoService defines the interface for video lifecycle operations.
// All mutations are owner-gated through the repository's lookup
// predicate, so foreign videos surface as not-found.
type VideoService interface {
	// Publish uploads the media files, probes the video duration and
	// creates the video record.
	Publish(ctx context.Context, input PublishVideoInput) (*model.Video, error)

	// Get retrieves a video by ID and records a view.
	Get(ctx context.Context, userID, videoID uuid.UUID) (*model.Video, error)

	// Update edits a video's metadata, optionally replacing the thumbnail.
	Update(ctx context.Context, userID, videoID uuid.UUID, input UpdateVideoInput) (*model.Video, error)

	// Delete removes a video and enqueues cleanup of its media objects.
	Delete(ctx context.Context, userID, videoID uuid.UUID) error

	// TogglePublish flips the video's feed visibility.
	TogglePublish(ctx context.Context, userID, videoID uuid.UUID) (*model.Video, error)
}

type videoService struct {
	repo    repository.VideoRepository
	storage repository.MediaStorage
	prober  media.Prober
	queue   repository.MessageQueue
	views   cache.ViewCounter
}

// NewVideoService creates a new VideoService instance.
func NewVideoService(
	repo repository.VideoRepository,
	storage repository.MediaStorage,
	prober media.Prober,
	queue repository.MessageQueue,
	views cache.ViewCounter,
) VideoService {
	return &videoService{
		repo:    repo,
		storage: storage,
		prober:  prober,
		queue:   queue,
		views:   views,
	}
}

// Publish uploads the media files and creates the video record.
func (s *videoService) Publish(ctx context.Context, input PublishVideoInput) (*model.Video, error) {
	if input.OwnerID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	video, err := model.NewVideo(input.OwnerID, input.Title, input.Description)
	if err != nil {
		return nil, err
	}

	duration, err := s.prober.Duration(ctx, input.VideoPath)
	if err != nil {
		return nil, fmt.Errorf("probe video duration: %w", err)
	}

	mediaAsset, err := s.storage.UploadFile(ctx, input.VideoPath, "")
	if err != nil {
		return nil, fmt.Errorf("upload video: %w", err)
	}

	thumbAsset, err := s.storage.UploadFile(ctx, input.ThumbnailPath, "")
	if err != nil {
		s.enqueueCleanup(ctx, video.ID, mediaAsset.Key)
		return nil, fmt.Errorf("upload thumbnail: %w", err)
	}

	video.SetMedia(mediaAsset.URL, mediaAsset.Key, duration)
	video.SetThumbnail(thumbAsset.URL, thumbAsset.Key)

	if err := s.repo.Create(ctx, video); err != nil {
		s.enqueueCleanup(ctx, video.ID, mediaAsset.Key, thumbAsset.Key)
		return nil, fmt.Errorf("create video: %w", err)
	}

	return video, nil
}

// Get retrieves a video by ID and records a view.
func (s *videoService) Get(ctx context.Context, userID, videoID uuid.UUID) (*model.Video, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	video, err := s.repo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	// View recording is best-effort; the read must not fail on it.
	if err := s.views.Increment(ctx, videoID); err != nil {
		slog.Warn("failed to record view",
			"video_id", videoID,
			"error", err,
		)
	}

	return video, nil
}

// Update edits a video's metadata, optionally replacing the thumbnail.
func (s *videoService) Update(ctx context.Context, userID, videoID uuid.UUID, input UpdateVideoInput) (*model.Video, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, model.ErrEmptyTitle
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, model.ErrEmptyDescription
	}

	update := repository.VideoUpdate{
		Title:       title,
		Description: input.Description,
	}

	var replacedKey string
	if input.ThumbnailPath != "" {
		current, err := s.repo.GetByID(ctx, videoID)
		if err != nil {
			return nil, err
		}
		replacedKey = current.ThumbnailKey

		asset, err := s.storage.UploadFile(ctx, input.ThumbnailPath, "")
		if err != nil {
			return nil, fmt.Errorf("upload thumbnail: %w", err)
		}
		update.ThumbnailURL = asset.URL
		update.ThumbnailKey = asset.Key
	}

	video, err := s.repo.UpdateOwned(ctx, videoID, userID, update)
	if err != nil {
		return nil, err
	}

	if replacedKey != "" && replacedKey != video.ThumbnailKey {
		s.enqueueCleanup(ctx, videoID, replacedKey)
	}

	return video, nil
}

// Delete removes a video and enqueues cleanup of its media objects.
func (s *videoService) Delete(ctx context.Context, userID, videoID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthenticated
	}

	video, err := s.repo.DeleteOwned(ctx, videoID, userID)
	if err != nil {
		return err
	}

	s.enqueueCleanup(ctx, video.ID, video.MediaKey, video.ThumbnailKey)
	return nil
}

// TogglePublish flips the video's feed visibility.
func (s *videoService) TogglePublish(ctx context.Context, userID, videoID uuid.UUID) (*model.Video, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	return s.repo.TogglePublishOwned(ctx, videoID, userID)
}

// enqueueCleanup publishes a best-effort cleanup task for the given
// object keys. The row mutation has already committed, so a queue
// failure is logged rather than propagated.
func (s *videoService) enqueueCleanup(ctx context.Context, videoID uuid.UUID, keys ...string) {
	task := repository.CleanupTask{VideoID: videoID}
	for _, key := range keys {
		if key != "" {
			task.Keys = append(task.Keys, key)
		}
	}
	if len(task.Keys) == 0 {
		return
	}

	if err := s.queue.PublishCleanupTask(ctx, task); err != nil {
		slog.Warn("failed to enqueue media cleanup",
			"video_id", videoID,
			"keys", task.Keys,
			"error", err,
		)
	}
}
