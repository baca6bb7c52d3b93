package usecase

import "errors"

var (
	// ErrUnauthenticated is returned when an operation requires a
	// resolved caller identity and none was provided.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden is returned when the caller is resolved but not
	// allowed to perform the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrNoVideosFound is returned when the feed listing matches nothing.
	// Unlike comment listing, an empty video feed is an error.
	ErrNoVideosFound = errors.New("no videos found")

	// ErrNoLikedVideos is returned when a user with zero video reactions
	// requests their liked videos.
	ErrNoLikedVideos = errors.New("no liked videos found")

	// ErrCommentNotDeleted is returned when a comment still resolves
	// after a delete. Deletion is confirmed by re-read, not by write
	// acknowledgment.
	ErrCommentNotDeleted = errors.New("comment not deleted")
)
