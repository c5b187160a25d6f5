package handler

import (
	"net/http"

	"github.com/osse101/Kombinat_Go/internal/domain"
	"github.com/osse101/Kombinat_Go/internal/engine"
	"github.com/osse101/Kombinat_Go/internal/identity"
	"github.com/osse101/Kombinat_Go/internal/logger"
	"github.com/osse101/Kombinat_Go/internal/session"
)

// TelegramAuthRequest carries the raw init data received from Telegram
type TelegramAuthRequest struct {
	InitData string `json:"init_data"`
}

// AuthResponse returns the verified profile and the player's state
type AuthResponse struct {
	User  domain.User      `json:"user"`
	State engine.StateView `json:"state"`
}

// mockUser stands in for a Telegram profile when running outside Telegram
// in dev mode. Mirrors the browser fallback of the web client.
var mockUser = domain.User{
	ID:        "987654321",
	FirstName: "Dev",
	Username:  "dev_user",
}

// AuthHandler handles login verification
type AuthHandler struct {
	verifier *identity.Verifier
	sessions session.Service
	devMode  bool
}

// NewAuthHandler creates a new auth handler. The verifier may be nil only in
// dev mode.
func NewAuthHandler(verifier *identity.Verifier, sessions session.Service, devMode bool) *AuthHandler {
	return &AuthHandler{
		verifier: verifier,
		sessions: sessions,
		devMode:  devMode,
	}
}

// HandleTelegramAuth verifies a Telegram login and returns the player state
func (h *AuthHandler) HandleTelegramAuth(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req TelegramAuthRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Telegram auth"); err != nil {
		return
	}

	var user *domain.User
	switch {
	case req.InitData == "" && h.devMode:
		user = &mockUser
		log.Warn("Dev mode login, identity not verified")
	case req.InitData == "":
		respondError(w, http.StatusBadRequest, ErrMsgLoginDataRequired)
		return
	default:
		if h.verifier == nil {
			respondError(w, http.StatusUnauthorized, ErrMsgLoginFailed)
			return
		}
		verified, err := h.verifier.Verify(req.InitData)
		if err != nil {
			log.Warn(ErrMsgLoginFailed, "error", err)
			respondServiceError(w, "Telegram auth", err)
			return
		}
		user = verified
	}

	view, err := h.sessions.GetState(r.Context(), user.ID)
	if err != nil {
		respondServiceError(w, "Telegram auth", err)
		return
	}

	log.Info("Login verified", "user_id", user.ID, "username", user.Username)
	respondJSON(w, http.StatusOK, AuthResponse{User: *user, State: view})
}
