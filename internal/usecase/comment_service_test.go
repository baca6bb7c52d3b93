package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hszk-dev/gotube/internal/domain/model"
	"github.com/hszk-dev/gotube/internal/domain/repository"
	"github.com/hszk-dev/gotube/internal/pagination"
)

func testComments(videoID uuid.UUID, n int) []*model.Comment {
	comments := make([]*model.Comment, n)
	for i := range comments {
		comments[i] = &model.Comment{
			ID:        uuid.New(),
			VideoID:   videoID,
			AuthorID:  uuid.New(),
			Content:   "comment",
			CreatedAt: time.Now().Add(-time.Duration(i) * time.Minute),
		}
	}
	return comments
}

func TestCommentService_List(t *testing.T) {
	videoID := uuid.New()

	tests := []struct {
		name      string
		videoID   uuid.UUID
		params    pagination.Params
		mock      *mockCommentRepository
		wantItems int
		wantTotal int
		wantErr   error
	}{
		{
			name:    "returns first page",
			videoID: videoID,
			params:  pagination.Params{Page: 1, Limit: 10},
			mock: &mockCommentRepository{
				listByVideoIDFn: func(ctx context.Context, videoID uuid.UUID) ([]*model.Comment, error) {
					return testComments(videoID, 25), nil
				},
			},
			wantItems: 10,
			wantTotal: 25,
		},
		{
			name:    "empty page is success",
			videoID: videoID,
			params:  pagination.Params{Page: 1, Limit: 10},
			mock: &mockCommentRepository{
				listByVideoIDFn: func(ctx context.Context, videoID uuid.UUID) ([]*model.Comment, error) {
					return nil, nil
				},
			},
			wantItems: 0,
			wantTotal: 0,
		},
		{
			name:    "missing video id",
			videoID: uuid.Nil,
			params:  pagination.Params{Page: 1, Limit: 10},
			mock:    &mockCommentRepository{},
			wantErr: model.ErrInvalidVideoID,
		},
		{
			name:    "repository error",
			videoID: videoID,
			params:  pagination.Params{Page: 1, Limit: 10},
			mock: &mockCommentRepository{
				listByVideoIDFn: func(ctx context.Context, videoID uuid.UUID) ([]*model.Comment, error) {
					return nil, errors.New("connection refused")
				},
			},
			wantErr: errors.New("list comments"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewCommentService(tt.mock, &mockVideoRepository{})

			page, err := service.List(context.Background(), tt.videoID, tt.params)

			if tt.wantErr != nil {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if errors.Is(tt.wantErr, model.ErrInvalidVideoID) && !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(page.Items) != tt.wantItems {
				t.Errorf("expected %d items, got %d", tt.wantItems, len(page.Items))
			}
			if page.TotalItems != tt.wantTotal {
				t.Errorf("expected %d total items, got %d", tt.wantTotal, page.TotalItems)
			}
		})
	}
}

func TestCommentService_Add(t *testing.T) {
	userID := uuid.New()
	videoID := uuid.New()

	tests := []struct {
		name     string
		userID   uuid.UUID
		content  string
		comments *mockCommentRepository
		videos   *mockVideoRepository
		wantErr  error
	}{
		{
			name:     "success",
			userID:   userID,
			content:  "great video",
			comments: &mockCommentRepository{},
			videos: &mockVideoRepository{
				getByIDFn: func(ctx context.Context, id uuid.UUID) (*model.Video, error) {
					return &model.Video{ID: id}, nil
				},
			},
		},
		{
			name:     "missing user",
			userID:   uuid.Nil,
			content:  "great video",
			comments: &mockCommentRepository{},
			videos:   &mockVideoRepository{},
			wantErr:  ErrUnauthenticated,
		},
		{
			name:     "video not found",
			userID:   userID,
			content:  "great video",
			comments: &mockCommentRepository{},
			videos: &mockVideoRepository{
				getByIDFn: func(ctx context.Context, id uuid.UUID) (*model.Video, error) {
					return nil, repository.ErrVideoNotFound
				},
			},
			wantErr: repository.ErrVideoNotFound,
		},
		{
			name:     "empty content",
			userID:   userID,
			content:  "   ",
			comments: &mockCommentRepository{},
			videos: &mockVideoRepository{
				getByIDFn: func(ctx context.Context, id uuid.UUID) (*model.Video, error) {
					return &model.Video{ID: id}, nil
				},
			},
			wantErr: model.ErrEmptyContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewCommentService(tt.comments, tt.videos)

			comment, err := service.Add(context.Background(), tt.userID, videoID, tt.content)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if comment == nil {
				t.Fatal("expected comment, got nil")
			}
			if comment.VideoID != videoID {
				t.Errorf("expected video ID %s, got %s", videoID, comment.VideoID)
			}
			if comment.AuthorID != tt.userID {
				t.Errorf("expected author ID %s, got %s", tt.userID, comment.AuthorID)
			}
		})
	}
}

func TestCommentService_Update(t *testing.T) {
	userID := uuid.New()
	commentID := uuid.New()

	t.Run("rewrites owned comment", func(t *testing.T) {
		mock := &mockCommentRepository{
			updateOwnedFn: func(ctx context.Context, id, authorID uuid.UUID, content string) (*model.Comment, error) {
				return &model.Comment{ID: id, AuthorID: authorID, Content: content}, nil
			},
		}
		service := NewCommentService(mock, &mockVideoRepository{})

		comment, err := service.Update(context.Background(), userID, commentID, "  revised  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if comment == nil {
			t.Fatal("expected comment, got nil")
		}
		if comment.Content != "revised" {
			t.Errorf("expected trimmed content, got %q", comment.Content)
		}
	})

	t.Run("foreign comment is a silent no-op", func(t *testing.T) {
		mock := &mockCommentRepository{
			updateOwnedFn: func(ctx context.Context, id, authorID uuid.UUID, content string) (*model.Comment, error) {
				return nil, nil
			},
		}
		service := NewCommentService(mock, &mockVideoRepository{})

		comment, err := service.Update(context.Background(), userID, commentID, "revised")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if comment != nil {
			t.Errorf("expected nil comment for non-matching update, got %+v", comment)
		}
	})

	t.Run("empty content", func(t *testing.T) {
		service := NewCommentService(&mockCommentRepository{}, &mockVideoRepository{})

		if _, err := service.Update(context.Background(), userID, commentID, "   "); !errors.Is(err, model.ErrEmptyContent) {
			t.Errorf("expected ErrEmptyContent, got %v", err)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		service := NewCommentService(&mockCommentRepository{}, &mockVideoRepository{})

		if _, err := service.Update(context.Background(), uuid.Nil, commentID, "revised"); !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("expected ErrUnauthenticated, got %v", err)
		}
	})
}

func TestCommentService_Delete(t *testing.T) {
	userID := uuid.New()
	commentID := uuid.New()

	tests := []struct {
		name    string
		userID  uuid.UUID
		mock    *mockCommentRepository
		wantErr error
	}{
		{
			name:   "confirmed deletion",
			userID: userID,
			mock: &mockCommentRepository{
				existsFn: func(ctx context.Context, id uuid.UUID) (bool, error) {
					return false, nil
				},
			},
		},
		{
			name:   "comment still resolves after delete",
			userID: userID,
			mock: &mockCommentRepository{
				existsFn: func(ctx context.Context, id uuid.UUID) (bool, error) {
					return true, nil
				},
			},
			wantErr: ErrCommentNotDeleted,
		},
		{
			name:    "missing user",
			userID:  uuid.Nil,
			mock:    &mockCommentRepository{},
			wantErr: ErrUnauthenticated,
		},
		{
			name:   "delete failure",
			userID: userID,
			mock: &mockCommentRepository{
				deleteOwnedFn: func(ctx context.Context, id, authorID uuid.UUID) error {
					return errors.New("connection refused")
				},
			},
			wantErr: errors.New("delete comment"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewCommentService(tt.mock, &mockVideoRepository{})

			err := service.Delete(context.Background(), tt.userID, commentID)

			if tt.wantErr != nil {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if (errors.Is(tt.wantErr, ErrCommentNotDeleted) || errors.Is(tt.wantErr, ErrUnauthenticated)) &&
					!errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
