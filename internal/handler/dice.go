package handler

import (
	"net/http"

	"github.com/osse101/ChinchiroBot_Go/internal/dice"
	"github.com/osse101/ChinchiroBot_Go/internal/domain"
	"github.com/osse101/ChinchiroBot_Go/internal/logger"
)

// ClassifyRequest is the body for POST /dice/classify
type ClassifyRequest struct {
	Dice []int `json:"dice" validate:"required,len=3,dive,min=1,max=6"`
}

// HandleClassify evaluates an arbitrary three-die roll without playing a
// round. Useful for clients rendering hand rankings.
func HandleClassify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClassifyRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Classify dice"); err != nil {
			return
		}

		roll, err := domain.NewRoll(req.Dice[0], req.Dice[1], req.Dice[2])
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to build roll", "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, dice.Classify(roll))
	}
}
