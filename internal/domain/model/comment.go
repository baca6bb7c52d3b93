package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Comment belongs to exactly one video and one authoring user.
type Comment struct {
	ID        uuid.UUID
	VideoID   uuid.UUID
	AuthorID  uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

var (
	ErrEmptyContent   = errors.New("content cannot be empty")
	ErrInvalidVideoID = errors.New("video ID cannot be nil")
)

// NewComment creates a comment after trimming and validating its content.
func NewComment(videoID, authorID uuid.UUID, content string) (*Comment, error) {
	if authorID == uuid.Nil {
		return nil, ErrInvalidUserID
	}
	if videoID == uuid.Nil {
		return nil, ErrInvalidVideoID
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	now := time.Now()
	return &Comment{
		ID:        uuid.New(),
		VideoID:   videoID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
