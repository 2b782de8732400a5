package handler

import (
	"net/http"
	"time"

	"github.com/greenlegacy-ng/greenlegacy/internal/eventlog"
	"github.com/greenlegacy-ng/greenlegacy/internal/logger"
	"github.com/greenlegacy-ng/greenlegacy/internal/repository"
)

// HandleListEvents returns the audit trail of tree and donation events
// @Summary List event log
// @Description Newest first. Filter by event type, tree or donation id, and start time.
// @Tags events
// @Produce json
// @Param type query string false "Event type, e.g. tree.planted"
// @Param subject query string false "Tree or donation id"
// @Param since query string false "RFC 3339 timestamp"
// @Param limit query int false "Maximum entries (default 50, max 500)"
// @Success 200 {object} Envelope{data=[]repository.EventLogEntry}
// @Failure 400 {object} Envelope
// @Failure 401 {object} Envelope
// @Security AdminKey
// @Router /events [get]
func HandleListEvents(svc eventlog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := repository.EventLogFilter{
			EventType: GetOptionalQueryParam(r, "type", ""),
			SubjectID: GetOptionalQueryParam(r, "subject", ""),
			Limit:     parseLimit(r),
		}

		if raw := GetOptionalQueryParam(r, "since", ""); raw != "" {
			since, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				logger.FromContext(r.Context()).Debug("Invalid since parameter", "value", raw)
				respondError(w, http.StatusBadRequest, ErrMsgInvalidSince)
				return
			}
			filter.Since = &since
		}

		entries, err := svc.List(r.Context(), filter)
		if err != nil {
			respondServiceError(w, r, OpListEvents, err)
			return
		}
		respondList(w, entries, len(entries))
	}
}
