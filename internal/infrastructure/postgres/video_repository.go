package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hszk-dev/gotube/internal/domain/model"
	"github.com/hszk-dev/gotube/internal/domain/repository"
	"github.com/hszk-dev/gotube/internal/infrastructure/metrics"
)

// VideoRepository implements repository.VideoRepository using PostgreSQL.
type VideoRepository struct {
	db DBTX
}

// NewVideoRepository creates a new VideoRepository instance.
func NewVideoRepository(db DBTX) *VideoRepository {
	return &VideoRepository{db: db}
}

const videoColumns = `id, owner_id, title, description, media_url, media_key,
		thumbnail_url, thumbnail_key, duration_seconds, views, is_published,
		created_at, updated_at`

// feedSortColumns whitelists the sortable columns of the feed query.
// Unknown fields fall back to the default created_at ordering.
var feedSortColumns = map[string]string{
	repository.SortByCreatedAt: "v.created_at",
	repository.SortByTitle:     "v.title",
	repository.SortByDuration:  "v.duration_seconds",
	repository.SortByViews:     "v.views",
}

// Create persists a new video entity.
func (r *VideoRepository) Create(ctx context.Context, video *model.Video) error {
	const query = `
		INSERT INTO videos (id, owner_id, title, description, media_url, media_key,
			thumbnail_url, thumbnail_key, duration_seconds, views, is_published,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQueryInsert, metrics.TableVideos).Inc()

	_, err := r.db.Exec(ctx, query,
		video.ID,
		video.OwnerID,
		video.Title,
		video.Description,
		video.MediaURL,
		video.MediaKey,
		video.ThumbnailURL,
		video.ThumbnailKey,
		video.DurationSeconds,
		video.Views,
		video.IsPublished,
		video.CreatedAt,
		video.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}

	return nil
}

// GetByID retrieves a video by its unique identifier.
func (r *VideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQuerySelect, metrics.TableVideos).Inc()

	video, err := scanVideo(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to get video by ID: %w", err)
	}

	return video, nil
}

// ListFeed evaluates the composed feed query: published-only filter,
// optional case-insensitive substring search over title or description,
// whitelisted sort, and a join projecting only the owner's display fields.
func (r *VideoRepository) ListFeed(ctx context.Context, q repository.FeedQuery) ([]*model.VideoSummary, error) {
	query := `
		SELECT v.id, v.title, v.description, v.media_url, v.thumbnail_url,
			v.duration_seconds, v.views, u.display_name, u.avatar_url
		FROM videos v
		JOIN users u ON u.id = v.owner_id
		WHERE v.is_published = true
	`

	var args []any
	if q.Search != "" {
		args = append(args, q.Search)
		query += ` AND (v.title ILIKE '%' || $1 || '%' OR v.description ILIKE '%' || $1 || '%')`
	}

	query += ` ORDER BY ` + feedOrderClause(q)

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQuerySelect, metrics.TableVideos).Inc()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query video feed: %w", err)
	}
	defer rows.Close()

	var summaries []*model.VideoSummary
	for rows.Next() {
		var s model.VideoSummary
		err := rows.Scan(
			&s.ID,
			&s.Title,
			&s.Description,
			&s.MediaURL,
			&s.ThumbnailURL,
			&s.DurationSeconds,
			&s.Views,
			&s.Owner.DisplayName,
			&s.Owner.AvatarURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video summary: %w", err)
		}
		summaries = append(summaries, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating video feed: %w", err)
	}

	return summaries, nil
}

// feedOrderClause resolves the sort stage of the feed query.
func feedOrderClause(q repository.FeedQuery) string {
	column, ok := feedSortColumns[q.SortBy]
	if !ok {
		return "v.created_at DESC"
	}
	if q.SortAsc {
		return column + " ASC"
	}
	return column + " DESC"
}

// ListByIDs retrieves the videos with the given IDs, newest first.
func (r *VideoRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = ANY($1) ORDER BY created_at DESC`

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQuerySelect, metrics.TableVideos).Inc()

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos by IDs: %w", err)
	}
	defer rows.Close()

	var videos []*model.Video
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, video)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating videos: %w", err)
	}

	return videos, nil
}

// UpdateOwned applies the update only when both ID and owner match.
// The thumbnail columns are touched only when a replacement was uploaded.
func (r *VideoRepository) UpdateOwned(ctx context.Context, id, ownerID uuid.UUID, update repository.VideoUpdate) (*model.Video, error) {
	query := `
		UPDATE videos
		SET title = $3, description = $4, updated_at = $5
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + videoColumns

	args := []any{id, ownerID, update.Title, update.Description, time.Now()}
	if update.ThumbnailKey != "" {
		query = `
			UPDATE videos
			SET title = $3, description = $4, updated_at = $5,
				thumbnail_url = $6, thumbnail_key = $7
			WHERE id = $1 AND owner_id = $2
			RETURNING ` + videoColumns
		args = append(args, update.ThumbnailURL, update.ThumbnailKey)
	}

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQueryUpdate, metrics.TableVideos).Inc()

	video, err := scanVideo(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to update video: %w", err)
	}

	return video, nil
}

// DeleteOwned deletes the video when both ID and owner match and returns
// the deleted row so its media objects can be released.
func (r *VideoRepository) DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) (*model.Video, error) {
	query := `DELETE FROM videos WHERE id = $1 AND owner_id = $2 RETURNING ` + videoColumns

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQueryDelete, metrics.TableVideos).Inc()

	video, err := scanVideo(r.db.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to delete video: %w", err)
	}

	return video, nil
}

// TogglePublishOwned flips is_published in a single conditional statement.
func (r *VideoRepository) TogglePublishOwned(ctx context.Context, id, ownerID uuid.UUID) (*model.Video, error) {
	query := `
		UPDATE videos
		SET is_published = NOT is_published, updated_at = $3
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + videoColumns

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQueryUpdate, metrics.TableVideos).Inc()

	video, err := scanVideo(r.db.QueryRow(ctx, query, id, ownerID, time.Now()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to toggle publish status: %w", err)
	}

	return video, nil
}

// AddViews adds the given delta to a video's view counter.
func (r *VideoRepository) AddViews(ctx context.Context, id uuid.UUID, delta int64) error {
	const query = `UPDATE videos SET views = views + $2 WHERE id = $1`

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQueryUpdate, metrics.TableVideos).Inc()

	if _, err := r.db.Exec(ctx, query, id, delta); err != nil {
		return fmt.Errorf("failed to add views: %w", err)
	}

	return nil
}

// scanVideo scans a single row into a Video model.
func scanVideo(row pgx.Row) (*model.Video, error) {
	var v model.Video
	err := row.Scan(
		&v.ID,
		&v.OwnerID,
		&v.Title,
		&v.Description,
		&v.MediaURL,
		&v.MediaKey,
		&v.ThumbnailURL,
		&v.ThumbnailKey,
		&v.DurationSeconds,
		&v.Views,
		&v.IsPublished,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Compile-time verification that VideoRepository implements repository.VideoRepository.
var _ repository.VideoRepository = (*VideoRepository)(nil)
