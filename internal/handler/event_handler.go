package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Raymond9734/linkpager/internal/linkheader"
	"github.com/Raymond9734/linkpager/internal/models"
	"github.com/Raymond9734/linkpager/internal/pagination"
	"github.com/Raymond9734/linkpager/internal/service"
)

// EventHandler handles the activity log
type EventHandler struct {
	eventService service.EventService
	feed         pagination.Cursor
	logger       *slog.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService service.EventService, feed pagination.Cursor, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		feed:         feed,
		logger:       logger,
	}
}

// ListEvents handles GET /events
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	done := pageTimer(pagination.StrategyCursor)
	events, page, err := pagination.PaginateCursor(r.Context(), r, h.feed, h.eventService.Source())
	done()
	if err != nil {
		paginationFailed(w, pagination.StrategyCursor, err, h.logger)
		return
	}

	respondPage(w, pagination.StrategyCursor, page, events, linkheader.HeaderAndBody)
}

// CreateEvent handles POST /events
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.NewEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON format")
		return
	}

	event, err := h.eventService.Append(r.Context(), &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondCreated(w, event)
}
