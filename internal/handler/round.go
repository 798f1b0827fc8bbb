package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/ChinchiroBot_Go/internal/history"
	"github.com/osse101/ChinchiroBot_Go/internal/logger"
	"github.com/osse101/ChinchiroBot_Go/internal/round"
)

// DefaultRecentLimit bounds the round list endpoint
const DefaultRecentLimit = 20

// RoundHandler serves the round play and lookup endpoints
type RoundHandler struct {
	service round.Service
	store   *history.Store
}

// NewRoundHandler creates a round handler
func NewRoundHandler(service round.Service, store *history.Store) *RoundHandler {
	return &RoundHandler{
		service: service,
		store:   store,
	}
}

// PlayRoundRequest is the body for POST /round/play
type PlayRoundRequest struct {
	Bet int `json:"bet" validate:"required,min=1"`
}

// HandlePlayRound runs one full round for the requested stake. The response
// blocks until the reveal animation completes; spectators receive the frames
// over SSE in the meantime.
func (h *RoundHandler) HandlePlayRound(w http.ResponseWriter, r *http.Request) {
	var req PlayRoundRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Play round"); err != nil {
		return
	}

	record, err := h.service.PlayRound(r.Context(), req.Bet)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to play round", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	if h.store != nil {
		h.store.Add(*record)
	}

	respondJSON(w, http.StatusCreated, record)
}

// HandleGetRound looks up a resolved round by ID
func (h *RoundHandler) HandleGetRound(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, ErrMsgInvalidRoundID, http.StatusBadRequest)
		return
	}

	record, ok := h.store.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, ErrMsgRoundNotFoundError)
		return
	}

	respondJSON(w, http.StatusOK, record)
}

// HandleGetRecentRounds lists recently resolved rounds, newest first
func (h *RoundHandler) HandleGetRecentRounds(w http.ResponseWriter, r *http.Request) {
	limit := DefaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			http.Error(w, ErrMsgInvalidRequestError, http.StatusBadRequest)
			return
		}
		limit = n
	}

	respondJSON(w, http.StatusOK, h.store.Recent(limit))
}
