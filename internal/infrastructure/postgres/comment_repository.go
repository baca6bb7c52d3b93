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

// CommentRepository implements repository.CommentRepository using PostgreSQL.
type CommentRepository struct {
	db DBTX
}

// NewCommentRepository creates a new CommentRepository instance.
func NewCommentRepository(db DBTX) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create persists a new comment.
func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	const query = `
		INSERT INTO comments (id, video_id, author_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQueryInsert, metrics.TableComments).Inc()

	_, err := r.db.Exec(ctx, query,
		comment.ID,
		comment.VideoID,
		comment.AuthorID,
		comment.Content,
		comment.CreatedAt,
		comment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

// ListByVideoID returns all comments on a video, newest first.
func (r *CommentRepository) ListByVideoID(ctx context.Context, videoID uuid.UUID) ([]*model.Comment, error) {
	const query = `
		SELECT id, video_id, author_id, content, created_at, updated_at
		FROM comments
		WHERE video_id = $1
		ORDER BY created_at DESC
	`

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQuerySelect, metrics.TableComments).Inc()

	rows, err := r.db.Query(ctx, query, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments by video ID: %w", err)
	}
	defer rows.Close()

	var comments []*model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.VideoID, &c.AuthorID, &c.Content, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return comments, nil
}

// UpdateOwned updates a comment's content when both ID and author match.
// Returns (nil, nil) when no row matches; the caller treats that as a
// silent no-op rather than an error.
func (r *CommentRepository) UpdateOwned(ctx context.Context, id, authorID uuid.UUID, content string) (*model.Comment, error) {
	const query = `
		UPDATE comments
		SET content = $3, updated_at = $4
		WHERE id = $1 AND author_id = $2
		RETURNING id, video_id, author_id, content, created_at, updated_at
	`

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQueryUpdate, metrics.TableComments).Inc()

	var c model.Comment
	err := r.db.QueryRow(ctx, query, id, authorID, content, time.Now()).
		Scan(&c.ID, &c.VideoID, &c.AuthorID, &c.Content, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return &c, nil
}

// DeleteOwned deletes a comment when both ID and author match.
func (r *CommentRepository) DeleteOwned(ctx context.Context, id, authorID uuid.UUID) error {
	const query = `
		DELETE FROM comments
		WHERE id = $1 AND author_id = $2
	`

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQueryDelete, metrics.TableComments).Inc()

	if _, err := r.db.Exec(ctx, query, id, authorID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return nil
}

// Exists reports whether a comment with the given ID resolves.
func (r *CommentRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM comments WHERE id = $1)`

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQuerySelect, metrics.TableComments).Inc()

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check comment existence: %w", err)
	}

	return exists, nil
}

// Compile-time verification that CommentRepository implements repository.CommentRepository.
var _ repository.CommentRepository = (*CommentRepository)(nil)
