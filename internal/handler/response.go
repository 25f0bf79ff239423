package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Raymond9734/linkpager/internal/linkheader"
	"github.com/Raymond9734/linkpager/internal/models"
	"github.com/Raymond9734/linkpager/internal/pagination"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error code and message
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondJSON writes a JSON response with the given status code.
// URLs in the body are written unescaped.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(data); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// respondError writes a standard error response
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// respondSuccess writes a successful response with 200 OK
func respondSuccess(w http.ResponseWriter, data any) {
	respondJSON(w, http.StatusOK, data)
}

// respondCreated writes a successful response with 201 Created
func respondCreated(w http.ResponseWriter, data any) {
	respondJSON(w, http.StatusCreated, data)
}

// respondPage writes one page of a list endpoint: the Link header always,
// and the next/previous/results envelope when mode asks for it.
func respondPage(w http.ResponseWriter, strategy string, page linkheader.Source, data any, mode linkheader.Mode) {
	headers, body := linkheader.Decorate(page, data, mode)
	for key, values := range headers {
		w.Header()[key] = values
	}

	pagination.RecordLinks(linkheader.Collect(page))
	pagination.RecordRequest(strategy, http.StatusOK)

	respondSuccess(w, body)
}

// pageTimer records how long a strategy spent reading its source
func pageTimer(strategy string) func() {
	start := time.Now()
	return func() {
		pagination.RecordDuration(strategy, time.Since(start).Seconds())
	}
}

// paginationFailed counts a failed list request and writes the error.
// Invalid page, offset and cursor errors pass through as 404s.
func paginationFailed(w http.ResponseWriter, strategy string, err error, logger *slog.Logger) {
	errType := "source"
	status := http.StatusInternalServerError
	if errors.Is(err, models.ErrNotFound) {
		errType = "not_found"
		status = http.StatusNotFound
	}

	var appErr *models.AppError
	if errors.As(err, &appErr) && appErr.Code == models.CodeInvalidInput {
		errType = "invalid_input"
		status = http.StatusBadRequest
	}

	pagination.RecordError(strategy, errType)
	pagination.RecordRequest(strategy, status)
	handleError(w, err, logger)
}
