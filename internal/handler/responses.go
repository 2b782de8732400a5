package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/greenlegacy-ng/greenlegacy/internal/domain"
	"github.com/greenlegacy-ng/greenlegacy/internal/donation"
	"github.com/greenlegacy-ng/greenlegacy/internal/logger"
)

// Envelope is the shape of every API response
type Envelope struct {
	Success    bool              `json:"success"`
	Data       interface{}       `json:"data,omitempty"`
	Error      string            `json:"error,omitempty"`
	Message    string            `json:"message,omitempty"`
	Total      *int              `json:"total,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`
	PaymentURL string            `json:"paymentUrl,omitempty"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode first so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondData sends a successful envelope carrying data
func respondData(w http.ResponseWriter, status int, data interface{}, message string) {
	respondJSON(w, status, Envelope{Success: true, Data: data, Message: message})
}

// respondList sends a successful envelope carrying a list and its total
func respondList(w http.ResponseWriter, data interface{}, total int) {
	respondJSON(w, http.StatusOK, Envelope{Success: true, Data: data, Total: &total})
}

// respondMessage sends a successful envelope with only a message
func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, Envelope{Success: true, Message: message})
}

// respondError sends a failed envelope
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, Envelope{Success: false, Error: message})
}

// respondServiceError logs a service failure and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to status codes and messages
// users can act on. Internal details never reach the client for 5xx.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrTreeNotFound):
		return http.StatusNotFound, ErrMsgTreeNotFound
	case errors.Is(err, domain.ErrTierNotFound):
		return http.StatusNotFound, ErrMsgTierNotFound
	case errors.Is(err, domain.ErrDonationBelowMinimum):
		return http.StatusBadRequest, donation.MinimumAmountMessage()
	case errors.Is(err, domain.ErrDonationAboveMaximum):
		return http.StatusBadRequest, donation.MaximumAmountMessage()
	case errors.Is(err, domain.ErrDuplicateTreeID):
		return http.StatusConflict, ErrMsgDuplicateTree
	case errors.Is(err, domain.ErrInvalidInput):
		// Validation details are written for users
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
