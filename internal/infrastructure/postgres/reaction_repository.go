package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hszk-dev/gotube/internal/domain/model"
	"github.com/hszk-dev/gotube/internal/domain/repository"
	"github.com/hszk-dev/gotube/internal/infrastructure/metrics"
)

// DBTX is an interface that abstracts pgxpool.Pool and pgx.Tx for testability.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// ReactionRepository implements repository.ReactionRepository using PostgreSQL.
// The reactions table carries a unique constraint on (user_id, target_kind,
// target_id), which makes the toggle's insert path race-safe: a concurrent
// racer surfaces as ErrDuplicateReaction instead of a second row.
type ReactionRepository struct {
	db DBTX
}

// NewReactionRepository creates a new ReactionRepository instance.
func NewReactionRepository(db DBTX) *ReactionRepository {
	return &ReactionRepository{db: db}
}

// Create persists a new reaction.
func (r *ReactionRepository) Create(ctx context.Context, reaction *model.Reaction) error {
	const query = `
		INSERT INTO reactions (id, user_id, target_kind, target_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQueryInsert, metrics.TableReactions).Inc()

	_, err := r.db.Exec(ctx, query,
		reaction.ID,
		reaction.UserID,
		reaction.TargetKind.String(),
		reaction.TargetID,
		reaction.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrDuplicateReaction
		}
		return fmt.Errorf("failed to create reaction: %w", err)
	}

	return nil
}

// Delete removes the reaction for the given key.
// A single conditional DELETE keeps the toggle free of check-then-act races.
func (r *ReactionRepository) Delete(ctx context.Context, userID uuid.UUID, kind model.TargetKind, targetID uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM reactions
		WHERE user_id = $1 AND target_kind = $2 AND target_id = $3
	`

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQueryDelete, metrics.TableReactions).Inc()

	tag, err := r.db.Exec(ctx, query, userID, kind.String(), targetID)
	if err != nil {
		return false, fmt.Errorf("failed to delete reaction: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ListVideoIDsByUser returns the IDs of all videos the user has reacted to.
func (r *ReactionRepository) ListVideoIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	const query = `
		SELECT target_id
		FROM reactions
		WHERE user_id = $1 AND target_kind = $2
	`

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQuerySelect, metrics.TableReactions).Inc()

	rows, err := r.db.Query(ctx, query, userID, model.TargetVideo.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query reactions by user: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan reaction target: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reactions: %w", err)
	}

	return ids, nil
}

// Compile-time verification that ReactionRepository implements repository.ReactionRepository.
var _ repository.ReactionRepository = (*ReactionRepository)(nil)
