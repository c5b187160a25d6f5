package handler

import (
	"net/http"

	"github.com/osse101/Kombinat_Go/internal/domain"
	"github.com/osse101/Kombinat_Go/internal/engine"
	"github.com/osse101/Kombinat_Go/internal/logger"
	"github.com/osse101/Kombinat_Go/internal/session"
)

// UserRequest identifies the acting player in operation requests
type UserRequest struct {
	UserID string `json:"user_id" validate:"required,max=64"`
}

// StartResearchRequest selects the research track to start
type StartResearchRequest struct {
	UserID string `json:"user_id" validate:"required,max=64"`
	Type   string `json:"type" validate:"required,research"`
}

// BuyItemRequest names the inventory item to purchase
type BuyItemRequest struct {
	UserID string `json:"user_id" validate:"required,max=64"`
	ItemID string `json:"item_id" validate:"required,max=64"`
}

// BuyPartnershipRequest names the partnership to purchase
type BuyPartnershipRequest struct {
	UserID        string `json:"user_id" validate:"required,max=64"`
	PartnershipID string `json:"partnership_id" validate:"required,max=64"`
}

// JoinProductionRequest names the production to join
type JoinProductionRequest struct {
	UserID       string `json:"user_id" validate:"required,max=64"`
	ProductionID string `json:"production_id" validate:"required,max=64"`
}

// StateResponse wraps the state view for operations that return it
type StateResponse struct {
	State engine.StateView `json:"state"`
}

// SalaryResponse carries the payout breakdown together with the new state
type SalaryResponse struct {
	Result engine.SalaryResult `json:"result"`
	State  engine.StateView    `json:"state"`
}

// IncomeResponse carries the claimed amount together with the new state
type IncomeResponse struct {
	Claimed int              `json:"claimed"`
	State   engine.StateView `json:"state"`
}

// DailyClaimResponse carries the granted reward together with the new state
type DailyClaimResponse struct {
	Reward engine.DailyReward `json:"reward"`
	State  engine.StateView   `json:"state"`
}

// GameHandler handles gameplay HTTP requests
type GameHandler struct {
	sessions session.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(sessions session.Service) *GameHandler {
	return &GameHandler{sessions: sessions}
}

// HandleGetState returns the player's current state view
func (h *GameHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	view, err := h.sessions.GetState(r.Context(), userID)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgGetStateFailed, "error", err, "user_id", userID)
		respondServiceError(w, "Get state", err)
		return
	}

	respondJSON(w, http.StatusOK, StateResponse{State: view})
}

// HandleStartShift starts a work shift
func (h *GameHandler) HandleStartShift(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req UserRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Start shift"); err != nil {
		return
	}

	view, err := h.sessions.StartShift(r.Context(), req.UserID)
	if err != nil {
		respondServiceError(w, "Start shift", err)
		return
	}

	log.Info("Shift started", "user_id", req.UserID, "end_time", view.ShiftEndTime)
	respondJSON(w, http.StatusOK, StateResponse{State: view})
}

// HandleClaimSalary claims the payout of a completed shift
func (h *GameHandler) HandleClaimSalary(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req UserRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Claim salary"); err != nil {
		return
	}

	result, view, err := h.sessions.ClaimSalary(r.Context(), req.UserID)
	if err != nil {
		respondServiceError(w, "Claim salary", err)
		return
	}

	log.Info("Salary claimed",
		"user_id", req.UserID,
		"salary", result.Salary,
		"xp", result.XPGained,
		"leveled_up", result.LeveledUp)
	respondJSON(w, http.StatusOK, SalaryResponse{Result: *result, State: view})
}

// HandleStartResearch starts a research on the requested track
func (h *GameHandler) HandleStartResearch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req StartResearchRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Start research"); err != nil {
		return
	}

	view, err := h.sessions.StartResearch(r.Context(), req.UserID, domain.ResearchType(req.Type))
	if err != nil {
		respondServiceError(w, "Start research", err)
		return
	}

	log.Info("Research started", "user_id", req.UserID, "type", req.Type)
	respondJSON(w, http.StatusOK, StateResponse{State: view})
}

// HandleBuyItem purchases an inventory item
func (h *GameHandler) HandleBuyItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req BuyItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy item"); err != nil {
		return
	}

	view, err := h.sessions.BuyItem(r.Context(), req.UserID, req.ItemID)
	if err != nil {
		respondServiceError(w, "Buy item", err)
		return
	}

	log.Info("Item bought", "user_id", req.UserID, "item", req.ItemID)
	respondJSON(w, http.StatusOK, StateResponse{State: view})
}

// HandleBuyPartnership purchases a partnership
func (h *GameHandler) HandleBuyPartnership(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req BuyPartnershipRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy partnership"); err != nil {
		return
	}

	view, err := h.sessions.BuyPartnership(r.Context(), req.UserID, req.PartnershipID)
	if err != nil {
		respondServiceError(w, "Buy partnership", err)
		return
	}

	log.Info("Partnership bought", "user_id", req.UserID, "partnership", req.PartnershipID)
	respondJSON(w, http.StatusOK, StateResponse{State: view})
}

// HandleClaimIncome collects accumulated passive income
func (h *GameHandler) HandleClaimIncome(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req UserRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Claim income"); err != nil {
		return
	}

	claimed, view, err := h.sessions.ClaimIncome(r.Context(), req.UserID)
	if err != nil {
		respondServiceError(w, "Claim income", err)
		return
	}

	log.Info("Passive income claimed", "user_id", req.UserID, "amount", claimed)
	respondJSON(w, http.StatusOK, IncomeResponse{Claimed: claimed, State: view})
}

// HandleJoinProduction joins a production facility
func (h *GameHandler) HandleJoinProduction(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req JoinProductionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Join production"); err != nil {
		return
	}

	view, err := h.sessions.JoinProduction(r.Context(), req.UserID, req.ProductionID)
	if err != nil {
		respondServiceError(w, "Join production", err)
		return
	}

	log.Info("Production joined", "user_id", req.UserID, "production", req.ProductionID)
	respondJSON(w, http.StatusOK, StateResponse{State: view})
}

// HandleGetDaily returns the player's daily reward status
func (h *GameHandler) HandleGetDaily(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	reward, err := h.sessions.DailyStatus(r.Context(), userID)
	if err != nil {
		respondServiceError(w, "Get daily reward", err)
		return
	}

	respondJSON(w, http.StatusOK, reward)
}

// HandleClaimDaily claims the daily streak reward
func (h *GameHandler) HandleClaimDaily(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req UserRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Claim daily reward"); err != nil {
		return
	}

	reward, view, err := h.sessions.ClaimDaily(r.Context(), req.UserID)
	if err != nil {
		respondServiceError(w, "Claim daily reward", err)
		return
	}

	log.Info("Daily reward claimed", "user_id", req.UserID, "streak", reward.Streak, "amount", reward.Amount)
	respondJSON(w, http.StatusOK, DailyClaimResponse{Reward: *reward, State: view})
}
