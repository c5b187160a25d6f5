package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Kombinat_Go/internal/domain"
	"github.com/osse101/Kombinat_Go/internal/engine"
)

// MockSessionService mocks session.Service
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) GetState(ctx context.Context, userID string) (engine.StateView, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(engine.StateView), args.Error(1)
}

func (m *MockSessionService) DailyStatus(ctx context.Context, userID string) (engine.DailyReward, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(engine.DailyReward), args.Error(1)
}

func (m *MockSessionService) StartShift(ctx context.Context, userID string) (engine.StateView, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(engine.StateView), args.Error(1)
}

func (m *MockSessionService) ClaimSalary(ctx context.Context, userID string) (*engine.SalaryResult, engine.StateView, error) {
	args := m.Called(ctx, userID)
	var result *engine.SalaryResult
	if args.Get(0) != nil {
		result = args.Get(0).(*engine.SalaryResult)
	}
	return result, args.Get(1).(engine.StateView), args.Error(2)
}

func (m *MockSessionService) StartResearch(ctx context.Context, userID string, typ domain.ResearchType) (engine.StateView, error) {
	args := m.Called(ctx, userID, typ)
	return args.Get(0).(engine.StateView), args.Error(1)
}

func (m *MockSessionService) BuyItem(ctx context.Context, userID, itemID string) (engine.StateView, error) {
	args := m.Called(ctx, userID, itemID)
	return args.Get(0).(engine.StateView), args.Error(1)
}

func (m *MockSessionService) BuyPartnership(ctx context.Context, userID, partnershipID string) (engine.StateView, error) {
	args := m.Called(ctx, userID, partnershipID)
	return args.Get(0).(engine.StateView), args.Error(1)
}

func (m *MockSessionService) JoinProduction(ctx context.Context, userID, productionID string) (engine.StateView, error) {
	args := m.Called(ctx, userID, productionID)
	return args.Get(0).(engine.StateView), args.Error(1)
}

func (m *MockSessionService) ClaimIncome(ctx context.Context, userID string) (int, engine.StateView, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Get(1).(engine.StateView), args.Error(2)
}

func (m *MockSessionService) ClaimDaily(ctx context.Context, userID string) (*engine.DailyReward, engine.StateView, error) {
	args := m.Called(ctx, userID)
	var reward *engine.DailyReward
	if args.Get(0) != nil {
		reward = args.Get(0).(*engine.DailyReward)
	}
	return reward, args.Get(1).(engine.StateView), args.Error(2)
}

func (m *MockSessionService) Tick(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockSessionService) Flush(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionService) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func postJSON(t *testing.T, handlerFunc http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	w := httptest.NewRecorder()
	handlerFunc(w, req)
	return w
}

func TestHandleGetState(t *testing.T) {
	t.Run("returns state view", func(t *testing.T) {
		mockSvc := &MockSessionService{}
		mockSvc.On("GetState", mock.Anything, "u1").
			Return(engine.StateView{Balance: 250, Level: 3}, nil)

		h := NewGameHandler(mockSvc)
		req := httptest.NewRequest(http.MethodGet, "/state?user_id=u1", nil)
		w := httptest.NewRecorder()
		h.HandleGetState(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp StateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 250, resp.State.Balance)
		assert.Equal(t, 3, resp.State.Level)
		mockSvc.AssertExpectations(t)
	})

	t.Run("requires user_id", func(t *testing.T) {
		h := NewGameHandler(&MockSessionService{})
		req := httptest.NewRequest(http.MethodGet, "/state", nil)
		w := httptest.NewRecorder()
		h.HandleGetState(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleStartShift(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := &MockSessionService{}
		mockSvc.On("StartShift", mock.Anything, "u1").
			Return(engine.StateView{ShiftPhase: domain.ShiftActive}, nil)

		h := NewGameHandler(mockSvc)
		w := postJSON(t, h.HandleStartShift, "/shift/start", UserRequest{UserID: "u1"})

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("already active maps to conflict", func(t *testing.T) {
		mockSvc := &MockSessionService{}
		mockSvc.On("StartShift", mock.Anything, "u1").
			Return(engine.StateView{}, domain.ErrShiftAlreadyActive)

		h := NewGameHandler(mockSvc)
		w := postJSON(t, h.HandleStartShift, "/shift/start", UserRequest{UserID: "u1"})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgShiftActiveError)
	})

	t.Run("missing user_id fails validation", func(t *testing.T) {
		h := NewGameHandler(&MockSessionService{})
		w := postJSON(t, h.HandleStartShift, "/shift/start", UserRequest{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleClaimSalary(t *testing.T) {
	t.Run("returns payout breakdown", func(t *testing.T) {
		mockSvc := &MockSessionService{}
		mockSvc.On("ClaimSalary", mock.Anything, "u1").
			Return(&engine.SalaryResult{Salary: 127, XPGained: 110, LevelsGained: 1, NewLevel: 2, LeveledUp: true},
				engine.StateView{Balance: 127, Level: 2}, nil)

		h := NewGameHandler(mockSvc)
		w := postJSON(t, h.HandleClaimSalary, "/shift/claim", UserRequest{UserID: "u1"})

		assert.Equal(t, http.StatusOK, w.Code)
		var resp SalaryResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 127, resp.Result.Salary)
		assert.True(t, resp.Result.LeveledUp)
		assert.Equal(t, 127, resp.State.Balance)
	})

	t.Run("mid-shift claim maps to conflict", func(t *testing.T) {
		mockSvc := &MockSessionService{}
		mockSvc.On("ClaimSalary", mock.Anything, "u1").
			Return(nil, engine.StateView{}, domain.ErrShiftNotOver)

		h := NewGameHandler(mockSvc)
		w := postJSON(t, h.HandleClaimSalary, "/shift/claim", UserRequest{UserID: "u1"})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgShiftNotOverError)
	})
}

func TestHandleStartResearch(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := &MockSessionService{}
		mockSvc.On("StartResearch", mock.Anything, "u1", domain.ResearchEconomic).
			Return(engine.StateView{}, nil)

		h := NewGameHandler(mockSvc)
		w := postJSON(t, h.HandleStartResearch, "/research/start",
			StartResearchRequest{UserID: "u1", Type: "economic"})

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown track fails validation", func(t *testing.T) {
		h := NewGameHandler(&MockSessionService{})
		w := postJSON(t, h.HandleStartResearch, "/research/start",
			StartResearchRequest{UserID: "u1", Type: "alchemy"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid research type")
	})

	t.Run("insufficient funds maps to bad request", func(t *testing.T) {
		mockSvc := &MockSessionService{}
		mockSvc.On("StartResearch", mock.Anything, "u1", domain.ResearchTraining).
			Return(engine.StateView{}, domain.ErrInsufficientFunds)

		h := NewGameHandler(mockSvc)
		w := postJSON(t, h.HandleStartResearch, "/research/start",
			StartResearchRequest{UserID: "u1", Type: "training"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNotEnoughMoneyError)
	})
}

func TestHandleBuyItem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := &MockSessionService{}
		mockSvc.On("BuyItem", mock.Anything, "u1", "gloves").
			Return(engine.StateView{Inventory: []string{"gloves"}}, nil)

		h := NewGameHandler(mockSvc)
		w := postJSON(t, h.HandleBuyItem, "/item/buy",
			BuyItemRequest{UserID: "u1", ItemID: "gloves"})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("duplicate purchase maps to conflict", func(t *testing.T) {
		mockSvc := &MockSessionService{}
		mockSvc.On("BuyItem", mock.Anything, "u1", "gloves").
			Return(engine.StateView{}, domain.ErrAlreadyOwned)

		h := NewGameHandler(mockSvc)
		w := postJSON(t, h.HandleBuyItem, "/item/buy",
			BuyItemRequest{UserID: "u1", ItemID: "gloves"})

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandleClaimIncome(t *testing.T) {
	t.Run("returns claimed amount", func(t *testing.T) {
		mockSvc := &MockSessionService{}
		mockSvc.On("ClaimIncome", mock.Anything, "u1").
			Return(150, engine.StateView{Balance: 150}, nil)

		h := NewGameHandler(mockSvc)
		w := postJSON(t, h.HandleClaimIncome, "/partnership/claim-income", UserRequest{UserID: "u1"})

		assert.Equal(t, http.StatusOK, w.Code)
		var resp IncomeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 150, resp.Claimed)
	})

	t.Run("nothing to collect maps to conflict", func(t *testing.T) {
		mockSvc := &MockSessionService{}
		mockSvc.On("ClaimIncome", mock.Anything, "u1").
			Return(0, engine.StateView{}, domain.ErrNothingToCollect)

		h := NewGameHandler(mockSvc)
		w := postJSON(t, h.HandleClaimIncome, "/partnership/claim-income", UserRequest{UserID: "u1"})

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandleDaily(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		mockSvc := &MockSessionService{}
		mockSvc.On("DailyStatus", mock.Anything, "u1").
			Return(engine.DailyReward{Available: true, Streak: 3, Amount: 100}, nil)

		h := NewGameHandler(mockSvc)
		req := httptest.NewRequest(http.MethodGet, "/daily?user_id=u1", nil)
		w := httptest.NewRecorder()
		h.HandleGetDaily(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var reward engine.DailyReward
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reward))
		assert.True(t, reward.Available)
		assert.Equal(t, 3, reward.Streak)
	})

	t.Run("claim", func(t *testing.T) {
		mockSvc := &MockSessionService{}
		mockSvc.On("ClaimDaily", mock.Anything, "u1").
			Return(&engine.DailyReward{Available: false, Streak: 4, Amount: 125},
				engine.StateView{Balance: 125}, nil)

		h := NewGameHandler(mockSvc)
		w := postJSON(t, h.HandleClaimDaily, "/daily/claim", UserRequest{UserID: "u1"})

		assert.Equal(t, http.StatusOK, w.Code)
		var resp DailyClaimResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 4, resp.Reward.Streak)
		assert.Equal(t, 125, resp.Reward.Amount)
	})

	t.Run("already claimed maps to conflict", func(t *testing.T) {
		mockSvc := &MockSessionService{}
		mockSvc.On("ClaimDaily", mock.Anything, "u1").
			Return(nil, engine.StateView{}, domain.ErrRewardUnavailable)

		h := NewGameHandler(mockSvc)
		w := postJSON(t, h.HandleClaimDaily, "/daily/claim", UserRequest{UserID: "u1"})

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
