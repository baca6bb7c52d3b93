package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hszk-dev/gotube/internal/domain/model"
	"github.com/hszk-dev/gotube/internal/domain/repository"
	"github.com/hszk-dev/gotube/internal/pagination"
)

// CommentService defines the interface for comment business logic.
type CommentService interface {
	// List returns a page of a video's comments, newest first.
	// An empty page is a successful outcome, never an error.
	List(ctx context.Context, videoID uuid.UUID, params pagination.Params) (pagination.Page[*model.Comment], error)

	// Add creates a comment on an existing video.
	Add(ctx context.Context, userID, videoID uuid.UUID, content string) (*model.Comment, error)

	// Update rewrites a comment's content when the caller authored it.
	// A non-matching comment (foreign or absent) returns (nil, nil):
	// the mutation is a silent no-op, not an error.
	Update(ctx context.Context, userID, commentID uuid.UUID, content string) (*model.Comment, error)

	// Delete removes a comment the caller authored and confirms by
	// re-read; ErrCommentNotDeleted if the comment still resolves.
	Delete(ctx context.Context, userID, commentID uuid.UUID) error
}

type commentService struct {
	comments repository.CommentRepository
	videos   repository.VideoRepository
}

// NewCommentService creates a new CommentService instance.
func NewCommentService(comments repository.CommentRepository, videos repository.VideoRepository) CommentService {
	return &commentService{
		comments: comments,
		videos:   videos,
	}
}

// List returns a page of a video's comments, newest first.
func (s *commentService) List(ctx context.Context, videoID uuid.UUID, params pagination.Params) (pagination.Page[*model.Comment], error) {
	if videoID == uuid.Nil {
		return pagination.Page[*model.Comment]{}, model.ErrInvalidVideoID
	}

	comments, err := s.comments.ListByVideoID(ctx, videoID)
	if err != nil {
		return pagination.Page[*model.Comment]{}, fmt.Errorf("list comments: %w", err)
	}

	return pagination.Paginate(comments, params), nil
}

// Add creates a comment on an existing video.
func (s *commentService) Add(ctx context.Context, userID, videoID uuid.UUID, content string) (*model.Comment, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	// Target existence is validated here, at the creation site.
	if _, err := s.videos.GetByID(ctx, videoID); err != nil {
		return nil, err
	}

	comment, err := model.NewComment(videoID, userID, content)
	if err != nil {
		return nil, err
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return comment, nil
}

// Update rewrites a comment's content when the caller authored it.
func (s *commentService) Update(ctx context.Context, userID, commentID uuid.UUID, content string) (*model.Comment, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, model.ErrEmptyContent
	}

	comment, err := s.comments.UpdateOwned(ctx, commentID, userID, content)
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}

	// comment is nil when the ID or the author did not match.
	return comment, nil
}

// Delete removes a comment the caller authored.
func (s *commentService) Delete(ctx context.Context, userID, commentID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthenticated
	}

	if err := s.comments.DeleteOwned(ctx, commentID, userID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	// Deletion is confirmed by re-read. A comment that still resolves
	// here was not deleted (for example, it belongs to another author).
	exists, err := s.comments.Exists(ctx, commentID)
	if err != nil {
		return fmt.Errorf("confirm comment deletion: %w", err)
	}
	if exists {
		return ErrCommentNotDeleted
	}

	return nil
}
