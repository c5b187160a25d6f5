package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Kombinat_Go/internal/domain"
	"github.com/osse101/Kombinat_Go/internal/economy"
)

// fakeRepo stores snapshots as JSON to mimic real storage round-trips
type fakeRepo struct {
	mu      sync.Mutex
	states  map[string][]byte
	saves   int
	saveErr error
	loadErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{states: make(map[string][]byte)}
}

func (f *fakeRepo) Load(ctx context.Context, userID string) (*domain.ProgressionState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	raw, ok := f.states[userID]
	if !ok {
		return nil, nil
	}
	// Mirrors the real repositories: decode errors keep the partial state
	state := new(domain.ProgressionState)
	_ = json.Unmarshal(raw, state)
	return state, nil
}

func (f *fakeRepo) Save(ctx context.Context, userID string, state *domain.ProgressionState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	f.states[userID] = raw
	f.saves++
	return nil
}

func (f *fakeRepo) saveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves
}

// testClock drives the injected now func
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestService(repo *fakeRepo) (*service, *testClock) {
	clock := &testClock{now: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)}
	svc := NewService(repo, "test").(*service)
	svc.now = clock.Now
	return svc, clock
}

func TestGetState_NewPlayerGetsDefaults(t *testing.T) {
	svc, _ := newTestService(newFakeRepo())

	view, err := svc.GetState(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, view.Balance)
	assert.Equal(t, 1, view.Level)
	assert.Equal(t, domain.ShiftIdle, view.ShiftPhase)
	assert.True(t, view.DailyReward.Available)
}

func TestShiftFlow(t *testing.T) {
	svc, clock := newTestService(newFakeRepo())
	ctx := context.Background()

	view, err := svc.StartShift(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.ShiftActive, view.ShiftPhase)

	// Claiming before the shift ends is rejected
	_, _, err = svc.ClaimSalary(ctx, "u1")
	assert.ErrorIs(t, err, domain.ErrShiftNotOver)

	clock.Advance(economy.ShiftDuration)

	result, view, err := svc.ClaimSalary(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, economy.SalaryAmount, result.Salary)
	assert.Equal(t, economy.SalaryAmount, view.Balance)
	assert.Equal(t, 2, view.Level)
	assert.Equal(t, domain.ShiftIdle, view.ShiftPhase)
}

func TestResearchCompletesOnRead(t *testing.T) {
	repo := newFakeRepo()
	svc, clock := newTestService(repo)
	ctx := context.Background()

	state := domain.NewProgressionState()
	state.Balance = 5000
	raw, err := json.Marshal(state)
	require.NoError(t, err)
	repo.states["u1"] = raw

	view, err := svc.StartResearch(ctx, "u1", domain.ResearchEconomic)
	require.NoError(t, err)
	require.NotNil(t, view.ActiveResearch)

	clock.Advance(25 * time.Hour)

	view, err = svc.GetState(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, view.ActiveResearch)
	assert.Equal(t, 1, view.Researches[domain.ResearchEconomic].Level)
}

func TestDebouncedSaves(t *testing.T) {
	repo := newFakeRepo()
	svc, clock := newTestService(repo)
	ctx := context.Background()

	// Seed the snapshot so session creation itself is not the first save
	state := domain.NewProgressionState()
	state.Balance = 10000
	raw, err := json.Marshal(state)
	require.NoError(t, err)
	repo.states["u1"] = raw

	_, err = svc.BuyItem(ctx, "u1", "gloves")
	require.NoError(t, err)
	first := repo.saveCount()
	assert.Equal(t, 1, first)

	// A second mutation inside the debounce window rides along later
	_, err = svc.BuyItem(ctx, "u1", "helmet")
	require.NoError(t, err)
	assert.Equal(t, first, repo.saveCount())

	clock.Advance(2 * time.Second)
	svc.Tick(ctx)
	assert.Equal(t, first+1, repo.saveCount())

	loaded, err := repo.Load(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, loaded.Inventory.Has("helmet"))
}

func TestSaveFailureRetriesOnTick(t *testing.T) {
	repo := newFakeRepo()
	svc, clock := newTestService(repo)
	ctx := context.Background()

	state := domain.NewProgressionState()
	state.Balance = 500
	raw, err := json.Marshal(state)
	require.NoError(t, err)
	repo.states["u1"] = raw

	repo.saveErr = errors.New("storage down")
	_, err = svc.BuyItem(ctx, "u1", "gloves")
	require.NoError(t, err) // gameplay continues on save failure
	assert.Equal(t, 0, repo.saveCount())

	repo.mu.Lock()
	repo.saveErr = nil
	repo.mu.Unlock()

	clock.Advance(2 * time.Second)
	svc.Tick(ctx)
	assert.Equal(t, 1, repo.saveCount())

	loaded, err := repo.Load(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, loaded.Inventory.Has("gloves"))
}

func TestFlushReportsFailure(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newTestService(repo)
	ctx := context.Background()

	_, err := svc.GetState(ctx, "u1")
	require.NoError(t, err)

	repo.mu.Lock()
	repo.saveErr = errors.New("storage down")
	repo.mu.Unlock()

	// Dirty a session inside the debounce window so Flush has work to do
	_, err = svc.StartShift(ctx, "u1")
	require.NoError(t, err)

	err = svc.Flush(ctx)
	assert.Error(t, err)

	repo.mu.Lock()
	repo.saveErr = nil
	repo.mu.Unlock()

	require.NoError(t, svc.Flush(ctx))
}

func TestCorruptSnapshotRepairedOnLoad(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newTestService(repo)

	repo.states["u1"] = []byte(`{"balance":-50,"level":0,"experience":-3,"daily_streak":0,"inventory":["gloves","no-such-item"]}`)

	view, err := svc.GetState(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, view.Balance)
	assert.Equal(t, 1, view.Level)
	assert.Equal(t, []string{"gloves"}, view.Inventory)
}

func TestCorruptScalarFieldRepairedOnLoad(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newTestService(repo)

	// A wrong-typed field must not discard the rest of the snapshot
	repo.states["u1"] = []byte(`{"balance":"not-a-number","level":3,"experience":10,"daily_streak":2}`)

	view, err := svc.GetState(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, view.Balance)
	assert.Equal(t, 3, view.Level)
	assert.Equal(t, 10, view.Experience)
}

func TestLoadFailureStartsFromDefaults(t *testing.T) {
	repo := newFakeRepo()
	repo.loadErr = errors.New("storage down")
	repo.saveErr = errors.New("storage down")
	svc, clock := newTestService(repo)
	ctx := context.Background()

	// An unreachable store never blocks a session; play starts from defaults
	view, err := svc.GetState(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, view.Balance)
	assert.Equal(t, 1, view.Level)

	view, err = svc.StartShift(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.ShiftActive, view.ShiftPhase)
	assert.Equal(t, 0, repo.saveCount())

	// Once the store recovers, the substituted state is persisted
	repo.mu.Lock()
	repo.loadErr = nil
	repo.saveErr = nil
	repo.mu.Unlock()

	clock.Advance(2 * time.Second)
	svc.Tick(ctx)
	assert.Equal(t, 1, repo.saveCount())
}
