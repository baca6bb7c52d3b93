package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// TargetKind identifies the kind of entity a reaction applies to.
type TargetKind string

const (
	TargetVideo   TargetKind = "video"
	TargetComment TargetKind = "comment"
	TargetPost    TargetKind = "post"
)

func (k TargetKind) IsValid() bool {
	switch k {
	case TargetVideo, TargetComment, TargetPost:
		return true
	default:
		return false
	}
}

func (k TargetKind) String() string {
	return string(k)
}

// ReactionState is the outcome of a toggle operation.
type ReactionState string

const (
	StateLiked   ReactionState = "LIKED"
	StateUnliked ReactionState = "UNLIKED"
)

// Reaction represents one user's positive reaction to a single target.
// At most one reaction may exist per (UserID, TargetKind, TargetID) key;
// the store enforces this with a unique constraint. Reactions are created
// and destroyed by toggling, never updated in place.
type Reaction struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	TargetKind TargetKind
	TargetID   uuid.UUID
	CreatedAt  time.Time
}

var (
	ErrInvalidTargetKind = errors.New("invalid reaction target kind")
	ErrInvalidTargetID   = errors.New("target ID cannot be nil")
)

// NewReaction creates a reaction for the given key.
func NewReaction(userID uuid.UUID, kind TargetKind, targetID uuid.UUID) (*Reaction, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidUserID
	}
	if !kind.IsValid() {
		return nil, ErrInvalidTargetKind
	}
	if targetID == uuid.Nil {
		return nil, ErrInvalidTargetID
	}

	return &Reaction{
		ID:         uuid.New(),
		UserID:     userID,
		TargetKind: kind,
		TargetID:   targetID,
		CreatedAt:  time.Now(),
	}, nil
}
