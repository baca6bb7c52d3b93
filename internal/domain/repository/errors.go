package repository

import "errors"

var (
	// ErrVideoNotFound is returned when a video cannot be found, including
	// owner-gated lookups where the requester does not own the video.
	ErrVideoNotFound = errors.New("video not found")

	// ErrCommentNotFound is returned when a comment cannot be found.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrDuplicateReaction is returned when inserting a reaction that
	// violates the (user, target kind, target id) uniqueness constraint.
	ErrDuplicateReaction = errors.New("reaction already exists")
)
