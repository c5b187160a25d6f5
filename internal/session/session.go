package session

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/Kombinat_Go/internal/domain"
	"github.com/osse101/Kombinat_Go/internal/engine"
	"github.com/osse101/Kombinat_Go/internal/logger"
	"github.com/osse101/Kombinat_Go/internal/metrics"
	"github.com/osse101/Kombinat_Go/internal/repository"
)

// session owns one player's authoritative state. All access goes through mu;
// the engine itself never locks.
type session struct {
	userID string

	mu       sync.Mutex
	state    *domain.ProgressionState
	dirty    bool
	lastSave time.Time
	saveErr  bool
}

// pollLocked applies time-based completions that happen without a player
// action. Caller holds mu.
func (s *session) pollLocked(ctx context.Context, now time.Time) {
	active := s.state.ActiveResearch
	if active == nil {
		return
	}
	typ := active.Type
	if engine.CompleteResearch(s.state, now) {
		s.dirty = true
		metrics.ResearchCompleted.WithLabelValues(string(typ)).Inc()
		logger.FromContext(ctx).Info(LogMsgResearchCompleted,
			"user_id", s.userID,
			"research", typ,
			"level", s.state.Researches[typ].Level)
	}
}

// saveLocked persists the current state. Failures are logged and the session
// stays dirty so the next mutation or tick retries. Caller holds mu.
func (s *session) saveLocked(ctx context.Context, repo repository.Progression, backend string, now time.Time) {
	if !s.dirty {
		return
	}
	log := logger.FromContext(ctx)
	if err := repo.Save(ctx, s.userID, s.state); err != nil {
		s.saveErr = true
		metrics.StateSaveFailures.WithLabelValues(backend).Inc()
		log.Error(LogMsgSaveFailed, "user_id", s.userID, "error", err)
		return
	}
	if s.saveErr {
		s.saveErr = false
		log.Info(LogMsgSaveRecovered, "user_id", s.userID)
	}
	s.dirty = false
	s.lastSave = now
	metrics.StateSaves.WithLabelValues(backend).Inc()
}

// maybeSaveLocked saves only when the debounce window has elapsed. Caller
// holds mu.
func (s *session) maybeSaveLocked(ctx context.Context, repo repository.Progression, backend string, debounce time.Duration, now time.Time) {
	if !s.dirty {
		return
	}
	if !s.lastSave.IsZero() && now.Sub(s.lastSave) < debounce {
		return
	}
	s.saveLocked(ctx, repo, backend, now)
}
