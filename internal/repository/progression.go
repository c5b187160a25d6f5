package repository

import (
	"context"

	"github.com/osse101/Kombinat_Go/internal/domain"
)

// Progression defines the persistence contract for player snapshots.
// Load returns (nil, nil) when no snapshot exists for the user; the session
// substitutes a fresh default state. Save failures are non-fatal to the
// engine: the in-memory state stays authoritative and the write is retried
// on the next mutation.
type Progression interface {
	Load(ctx context.Context, userID string) (*domain.ProgressionState, error)
	Save(ctx context.Context, userID string, state *domain.ProgressionState) error
}
