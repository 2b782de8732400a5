package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/greenlegacy-ng/greenlegacy/internal/logger"
)

// ValidationErrorResponse is the envelope for requests that parsed but failed validation
type ValidationErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields"`
}

var errTrailingData = errors.New("unexpected data after JSON body")

// decodeStrict decodes exactly one JSON value, rejecting unknown fields
func decodeStrict(body io.Reader, dst interface{}) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

// DecodeAndValidateRequest decodes a JSON request body strictly and validates it.
// If it returns an error the response has already been written and the handler
// should return.
//
// Example usage:
//
//	var req CreateTreeRequest
//	if err := DecodeAndValidateRequest(r, w, &req, OpCreateTree); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := decodeStrict(r.Body, req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(fmt.Sprintf("%s request failed validation", actionName), "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Success: false,
			Error:   ErrMsgInvalidRequestSum,
			Fields:  FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetOptionalQueryParam retrieves an optional query parameter, trimmed,
// falling back to defaultValue when absent or blank.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := strings.TrimSpace(r.URL.Query().Get(paramName))
	if value == "" {
		return defaultValue
	}
	return value
}

// parseLimit reads the limit query parameter permissively: anything that is
// not a positive integer yields 0, meaning "use the default".
func parseLimit(r *http.Request) int {
	n, err := strconv.Atoi(GetOptionalQueryParam(r, "limit", ""))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
