// Package jsonfile is a file-backed implementation of the progression
// repository: one JSON snapshot per user under a data directory. It is the
// default backend for local and development runs where no Postgres is
// available.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/osse101/Kombinat_Go/internal/domain"
)

// LogMsgSnapshotCorrupt is logged when a stored snapshot fails to decode
const LogMsgSnapshotCorrupt = "Snapshot partially corrupt, keeping decodable fields"

// ProgressionRepository stores snapshots as <dataDir>/<userID>.json
type ProgressionRepository struct {
	mu      sync.Mutex
	dataDir string
}

// NewProgressionRepository creates the data directory if needed
func NewProgressionRepository(dataDir string) (*ProgressionRepository, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &ProgressionRepository{dataDir: dataDir}, nil
}

// Load reads the user's snapshot; (nil, nil) when none exists. A snapshot
// that fails to decode yields the partially decoded state rather than an
// error; the session repairs the remaining fields.
func (r *ProgressionRepository) Load(ctx context.Context, userID string) (*domain.ProgressionState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := os.ReadFile(r.snapshotPath(userID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	state := new(domain.ProgressionState)
	if err := json.Unmarshal(raw, state); err != nil {
		// Snapshot corruption is not fatal: keep whatever fields decoded
		// and let the session sanitize the rest into defaults. Errors are
		// reserved for I/O failures.
		slog.Warn(LogMsgSnapshotCorrupt, "user_id", userID, "error", err)
	}
	return state, nil
}

// Save writes the snapshot atomically via a temp file and rename so a crash
// mid-write never leaves a truncated snapshot behind
func (r *ProgressionRepository) Save(ctx context.Context, userID string, state *domain.ProgressionState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	path := r.snapshotPath(userID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// snapshotPath sanitizes the user id into a safe file name
func (r *ProgressionRepository) snapshotPath(userID string) string {
	name := strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			return c
		default:
			return '_'
		}
	}, userID)
	return filepath.Join(r.dataDir, name+".json")
}
