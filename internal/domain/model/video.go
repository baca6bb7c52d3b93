package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Video represents a published or draft video entity.
type Video struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Title           string
	Description     string
	MediaURL        string
	MediaKey        string
	ThumbnailURL    string
	ThumbnailKey    string
	DurationSeconds float64
	Views           int64
	IsPublished     bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// VideoOwner carries the only owner fields exposed on feed listings.
type VideoOwner struct {
	DisplayName string
	AvatarURL   string
}

// VideoSummary is the fixed projection returned by the feed listing.
// Fields outside this set are never exposed there.
type VideoSummary struct {
	ID              uuid.UUID
	Title           string
	Description     string
	MediaURL        string
	ThumbnailURL    string
	DurationSeconds float64
	Views           int64
	Owner           VideoOwner
}

var (
	ErrInvalidUserID    = errors.New("user ID cannot be nil")
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrTitleTooLong     = errors.New("title exceeds maximum length of 255 characters")
)

const maxTitleLength = 255

// NewVideo creates a video owned by the given user. New videos are
// published immediately; TogglePublish flips visibility afterwards.
func NewVideo(ownerID uuid.UUID, title, description string) (*Video, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidUserID
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return nil, ErrTitleTooLong
	}

	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}

	now := time.Now()
	return &Video{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// SetMedia records the uploaded media object and its probed duration.
func (v *Video) SetMedia(url, key string, durationSeconds float64) {
	v.MediaURL = url
	v.MediaKey = key
	v.DurationSeconds = durationSeconds
	v.UpdatedAt = time.Now()
}

// SetThumbnail records the uploaded thumbnail object.
func (v *Video) SetThumbnail(url, key string) {
	v.ThumbnailURL = url
	v.ThumbnailKey = key
	v.UpdatedAt = time.Now()
}

// Summary projects the video into its feed representation.
func (v *Video) Summary(owner VideoOwner) *VideoSummary {
	return &VideoSummary{
		ID:              v.ID,
		Title:           v.Title,
		Description:     v.Description,
		MediaURL:        v.MediaURL,
		ThumbnailURL:    v.ThumbnailURL,
		DurationSeconds: v.DurationSeconds,
		Views:           v.Views,
		Owner:           owner,
	}
}
