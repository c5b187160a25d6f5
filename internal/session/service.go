// Package session keeps each player's authoritative progression state in
// memory and persists it with debounced, best-effort snapshot saves. Engine
// transitions stay pure; everything stateful about serving a player lives
// here.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/Kombinat_Go/internal/domain"
	"github.com/osse101/Kombinat_Go/internal/economy"
	"github.com/osse101/Kombinat_Go/internal/engine"
	"github.com/osse101/Kombinat_Go/internal/logger"
	"github.com/osse101/Kombinat_Go/internal/metrics"
	"github.com/osse101/Kombinat_Go/internal/repository"
)

// Service defines the player session business logic
type Service interface {
	// Reads
	GetState(ctx context.Context, userID string) (engine.StateView, error)
	DailyStatus(ctx context.Context, userID string) (engine.DailyReward, error)

	// Shift operations
	StartShift(ctx context.Context, userID string) (engine.StateView, error)
	ClaimSalary(ctx context.Context, userID string) (*engine.SalaryResult, engine.StateView, error)

	// Research
	StartResearch(ctx context.Context, userID string, typ domain.ResearchType) (engine.StateView, error)

	// Store
	BuyItem(ctx context.Context, userID, itemID string) (engine.StateView, error)
	BuyPartnership(ctx context.Context, userID, partnershipID string) (engine.StateView, error)
	JoinProduction(ctx context.Context, userID, productionID string) (engine.StateView, error)

	// Income and rewards
	ClaimIncome(ctx context.Context, userID string) (int, engine.StateView, error)
	ClaimDaily(ctx context.Context, userID string) (*engine.DailyReward, engine.StateView, error)

	// Tick applies time-based completions and flushes debounced saves.
	// Called periodically by the scheduler.
	Tick(ctx context.Context)

	// Flush persists every dirty session regardless of debounce
	Flush(ctx context.Context) error

	// Shutdown gracefully shuts down the service
	Shutdown(ctx context.Context) error
}

type service struct {
	repo         repository.Progression
	backend      string
	saveDebounce time.Duration
	now          func() time.Time // Injectable for testing

	mu       sync.Mutex
	sessions map[string]*session
}

// NewService creates a new session service. The backend label names the
// storage implementation for metrics.
func NewService(repo repository.Progression, backend string) Service {
	return &service{
		repo:         repo,
		backend:      backend,
		saveDebounce: DefaultSaveDebounce,
		now:          time.Now,
		sessions:     make(map[string]*session),
	}
}

// getSession returns the live session for a user, loading it on first use.
// A missing snapshot starts a fresh player, a malformed one is repaired, and
// an unreachable store substitutes defaults: session startup never fails.
func (s *service) getSession(ctx context.Context, userID string) *session {
	s.mu.Lock()
	if sess, ok := s.sessions[userID]; ok {
		s.mu.Unlock()
		return sess
	}
	s.mu.Unlock()

	log := logger.FromContext(ctx)
	loaded, err := s.repo.Load(ctx, userID)
	if err != nil {
		// The in-memory state is authoritative; the dirty flag retries
		// the write once the store recovers
		metrics.StateLoadFailures.WithLabelValues(s.backend).Inc()
		log.Error(LogMsgLoadFailed, "user_id", userID, "error", err)
		loaded = nil
	}

	sess := &session{userID: userID}
	if loaded == nil {
		sess.state = domain.NewProgressionState()
		sess.dirty = true
		log.Info(LogMsgStateCreated, "user_id", userID)
	} else {
		before, _ := json.Marshal(loaded)
		sess.state = engine.Sanitize(loaded)
		after, _ := json.Marshal(sess.state)
		if !bytes.Equal(before, after) {
			metrics.SanitizedLoads.Inc()
			sess.dirty = true
			log.Warn(LogMsgStateRepaired, "user_id", userID)
		} else {
			log.Debug(LogMsgStateLoaded, "user_id", userID)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another request may have loaded the same user concurrently
	if existing, ok := s.sessions[userID]; ok {
		return existing
	}
	s.sessions[userID] = sess
	metrics.SessionsActive.Set(float64(len(s.sessions)))
	return sess
}

// mutate runs fn against the user's state under the session lock and
// schedules a save on success. Time-based completions are polled first so fn
// sees a state consistent with the clock.
func (s *service) mutate(ctx context.Context, userID string, fn func(state *domain.ProgressionState, now time.Time) error) (engine.StateView, error) {
	sess := s.getSession(ctx, userID)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	now := s.now()
	sess.pollLocked(ctx, now)

	if err := fn(sess.state, now); err != nil {
		sess.maybeSaveLocked(ctx, s.repo, s.backend, s.saveDebounce, now)
		return engine.StateView{}, err
	}

	sess.dirty = true
	sess.maybeSaveLocked(ctx, s.repo, s.backend, s.saveDebounce, now)
	return engine.View(sess.state, now), nil
}

func (s *service) GetState(ctx context.Context, userID string) (engine.StateView, error) {
	sess := s.getSession(ctx, userID)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	now := s.now()
	sess.pollLocked(ctx, now)
	sess.maybeSaveLocked(ctx, s.repo, s.backend, s.saveDebounce, now)
	return engine.View(sess.state, now), nil
}

func (s *service) DailyStatus(ctx context.Context, userID string) (engine.DailyReward, error) {
	sess := s.getSession(ctx, userID)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return engine.DailyRewardStatus(sess.state, s.now()), nil
}

func (s *service) StartShift(ctx context.Context, userID string) (engine.StateView, error) {
	view, err := s.mutate(ctx, userID, func(state *domain.ProgressionState, now time.Time) error {
		if err := engine.StartShift(state, now); err != nil {
			return err
		}
		metrics.ShiftsStarted.Inc()
		return nil
	})
	return view, err
}

func (s *service) ClaimSalary(ctx context.Context, userID string) (*engine.SalaryResult, engine.StateView, error) {
	var result *engine.SalaryResult
	view, err := s.mutate(ctx, userID, func(state *domain.ProgressionState, now time.Time) error {
		res, err := engine.ClaimSalary(state, now)
		if err != nil {
			return err
		}
		result = res
		metrics.SalariesClaimed.Inc()
		metrics.SalaryPaid.Add(float64(res.Salary))
		metrics.ExperienceGranted.Add(float64(res.XPGained))
		metrics.LevelUps.Add(float64(res.LevelsGained))
		return nil
	})
	if err != nil {
		return nil, engine.StateView{}, err
	}
	return result, view, nil
}

func (s *service) StartResearch(ctx context.Context, userID string, typ domain.ResearchType) (engine.StateView, error) {
	return s.mutate(ctx, userID, func(state *domain.ProgressionState, now time.Time) error {
		before := state.Balance
		if err := engine.StartResearch(state, typ, now); err != nil {
			return err
		}
		metrics.ResearchStarted.WithLabelValues(string(typ)).Inc()
		metrics.MoneySpent.Add(float64(before - state.Balance))
		return nil
	})
}

func (s *service) BuyItem(ctx context.Context, userID, itemID string) (engine.StateView, error) {
	return s.mutate(ctx, userID, func(state *domain.ProgressionState, now time.Time) error {
		if err := engine.PurchaseItem(state, itemID); err != nil {
			return err
		}
		metrics.ItemsBought.WithLabelValues(itemID).Inc()
		metrics.MoneySpent.Add(float64(economy.InventoryItemByID(itemID).Cost))
		return nil
	})
}

func (s *service) BuyPartnership(ctx context.Context, userID, partnershipID string) (engine.StateView, error) {
	return s.mutate(ctx, userID, func(state *domain.ProgressionState, now time.Time) error {
		if err := engine.PurchasePartnership(state, partnershipID, now); err != nil {
			return err
		}
		metrics.PartnershipsBought.WithLabelValues(partnershipID).Inc()
		metrics.MoneySpent.Add(float64(economy.PartnershipByID(partnershipID).Cost))
		return nil
	})
}

func (s *service) JoinProduction(ctx context.Context, userID, productionID string) (engine.StateView, error) {
	return s.mutate(ctx, userID, func(state *domain.ProgressionState, now time.Time) error {
		if err := engine.JoinProduction(state, productionID); err != nil {
			return err
		}
		metrics.ProductionsJoined.WithLabelValues(productionID).Inc()
		return nil
	})
}

func (s *service) ClaimIncome(ctx context.Context, userID string) (int, engine.StateView, error) {
	var claimed int
	view, err := s.mutate(ctx, userID, func(state *domain.ProgressionState, now time.Time) error {
		amount, err := engine.ClaimPassiveIncome(state, now)
		if err != nil {
			return err
		}
		claimed = amount
		metrics.IncomeClaimed.Add(float64(amount))
		return nil
	})
	if err != nil {
		return 0, engine.StateView{}, err
	}
	return claimed, view, nil
}

func (s *service) ClaimDaily(ctx context.Context, userID string) (*engine.DailyReward, engine.StateView, error) {
	var reward *engine.DailyReward
	view, err := s.mutate(ctx, userID, func(state *domain.ProgressionState, now time.Time) error {
		r, err := engine.ClaimDailyReward(state, now)
		if err != nil {
			return err
		}
		reward = r
		metrics.DailyRewardsClaimed.Inc()
		return nil
	})
	if err != nil {
		return nil, engine.StateView{}, err
	}
	return reward, view, nil
}

func (s *service) Tick(ctx context.Context) {
	now := s.now()
	for _, sess := range s.snapshot() {
		sess.mu.Lock()
		sess.pollLocked(ctx, now)
		sess.maybeSaveLocked(ctx, s.repo, s.backend, s.saveDebounce, now)
		sess.mu.Unlock()
	}
}

func (s *service) Flush(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgFlushingSessions)

	now := s.now()
	var failed int
	for _, sess := range s.snapshot() {
		sess.mu.Lock()
		sess.saveLocked(ctx, s.repo, s.backend, now)
		if sess.dirty {
			failed++
			log.Error(LogMsgFlushFailed, "user_id", sess.userID)
		}
		sess.mu.Unlock()
	}
	if failed > 0 {
		return fmt.Errorf("%s: %d session(s) not persisted", ErrMsgSaveState, failed)
	}
	return nil
}

func (s *service) Shutdown(ctx context.Context) error {
	return s.Flush(ctx)
}

// snapshot copies the session list so ticks never hold the registry lock
// while saving
func (s *service) snapshot() []*session {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess)
	}
	return out
}
