package handler

import (
	"net/http"

	"github.com/greenlegacy-ng/greenlegacy/internal/stats"
)

// HandleGetStats returns the landing page stats fixture
// @Summary Get stats
// @Description The published landing page figures. Identical on every call.
// @Tags stats
// @Produce json
// @Success 200 {object} Envelope{data=domain.TreeStats}
// @Router /stats [get]
func HandleGetStats(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondData(w, http.StatusOK, svc.GetStats(r.Context()), "")
	}
}

// HandleGetLiveStats returns figures computed from the stored trees and donations
// @Summary Live stats
// @Description Aggregates over current data plus the recent activity feed. Cached briefly.
// @Tags stats
// @Produce json
// @Success 200 {object} Envelope{data=domain.TreeStats}
// @Failure 500 {object} Envelope
// @Router /stats/live [get]
func HandleGetLiveStats(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		live, err := svc.GetLiveStats(r.Context())
		if err != nil {
			respondServiceError(w, r, OpLiveStats, err)
			return
		}
		respondData(w, http.StatusOK, live, "")
	}
}
