package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/degenfarm/internal/farm"
	"github.com/osse101/degenfarm/internal/logger"
)

// RegisterRequest creates a new player
type RegisterRequest struct {
	Username    string `json:"username" validate:"required,farm_username"`
	CharacterID string `json:"character_id" validate:"required,max=32"`
}

// FarmHandler handles player farm requests
type FarmHandler struct {
	svc farm.Service
}

// NewFarmHandler creates a new farm handler
func NewFarmHandler(svc farm.Service) *FarmHandler {
	return &FarmHandler{svc: svc}
}

// HandleCharacters lists the playable characters.
func (h *FarmHandler) HandleCharacters(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Characters())
}

// HandleRegister creates a player with a unique username and a character.
func (h *FarmHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpRegister); err != nil {
		return
	}

	logger.FromContext(r.Context()).Info("Register request received",
		"username", req.Username, "character_id", req.CharacterID)

	result, err := h.svc.Register(r.Context(), req.Username, req.CharacterID)
	if err != nil {
		respondServiceError(w, r, OpRegister, err)
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

// HandleView returns the farm snapshot: balance, pending, capacity, bonus and streak.
func (h *FarmHandler) HandleView(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.View(r.Context(), chi.URLParam(r, ParamUsername))
	if err != nil {
		respondServiceError(w, r, OpView, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleCollect moves pending seeds into the balance.
func (h *FarmHandler) HandleCollect(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Collect(r.Context(), chi.URLParam(r, ParamUsername))
	if err != nil {
		respondServiceError(w, r, OpCollect, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleUpgrades lists the catalog with the player's status and effective cost.
func (h *FarmHandler) HandleUpgrades(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Upgrades(r.Context(), chi.URLParam(r, ParamUsername))
	if err != nil {
		respondServiceError(w, r, OpUpgrades, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandlePurchase buys one upgrade.
func (h *FarmHandler) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, ParamUsername)
	upgradeID := chi.URLParam(r, ParamUpgradeID)

	result, err := h.svc.PurchaseUpgrade(r.Context(), username, upgradeID)
	if err != nil {
		respondServiceError(w, r, OpPurchase, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Routes mounts the farm endpoints on r. r is expected to be the /api/v1 router.
func (h *FarmHandler) Routes(r chi.Router) {
	r.Get("/characters", h.HandleCharacters)
	r.Get("/leaderboard", h.HandleLeaderboard)

	r.Route("/players", func(r chi.Router) {
		r.Post("/", h.HandleRegister)

		r.Route("/{"+ParamUsername+"}", func(r chi.Router) {
			r.Get("/farm", h.HandleView)
			r.Post("/collect", h.HandleCollect)
			r.Get("/upgrades", h.HandleUpgrades)
			r.Post("/upgrades/{"+ParamUpgradeID+"}", h.HandlePurchase)
		})
	})
}
