package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Kombinat_Go/internal/domain"
)

// ProgressionRepository persists player snapshots as JSONB rows
type ProgressionRepository struct {
	db *pgxpool.Pool
}

// NewProgressionRepository creates a new ProgressionRepository
func NewProgressionRepository(db *pgxpool.Pool) *ProgressionRepository {
	return &ProgressionRepository{db: db}
}

// Load fetches the snapshot for a user; (nil, nil) when none exists.
// A row that fails to decode yields the partially decoded state rather than
// an error; the session sanitizes the remaining fields into defaults. Errors
// are reserved for query failures.
func (r *ProgressionRepository) Load(ctx context.Context, userID string) (*domain.ProgressionState, error) {
	query := `SELECT state FROM player_state WHERE user_id = $1`

	var raw []byte
	err := r.db.QueryRow(ctx, query, userID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load player state: %w", err)
	}

	state := new(domain.ProgressionState)
	if err := json.Unmarshal(raw, state); err != nil {
		slog.Warn("Player state row partially corrupt, keeping decodable fields",
			"user_id", userID, "error", err)
	}
	return state, nil
}

// Save upserts the snapshot for a user
func (r *ProgressionRepository) Save(ctx context.Context, userID string, state *domain.ProgressionState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode player state: %w", err)
	}

	query := `
		INSERT INTO player_state (user_id, state, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET state = EXCLUDED.state, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, userID, raw); err != nil {
		return fmt.Errorf("failed to save player state: %w", err)
	}
	return nil
}
