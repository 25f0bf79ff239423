package handler

import (
	"log/slog"
	"net/http"

	"github.com/Raymond9734/linkpager/internal/linkheader"
	"github.com/Raymond9734/linkpager/internal/models"
	"github.com/Raymond9734/linkpager/internal/pagination"
	"github.com/Raymond9734/linkpager/internal/service"
)

// MessageHandler serves the outbound message feed, newest first
type MessageHandler struct {
	messageService service.MessageService
	feed           pagination.Cursor
	logger         *slog.Logger
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageService service.MessageService, feed pagination.Cursor, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		feed:           feed,
		logger:         logger,
	}
}

// ListMessages handles GET /messages
func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	src, err := h.messageService.Source(models.OutboundMessageFilter{
		Status: r.URL.Query().Get("status"),
	})
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	done := pageTimer(pagination.StrategyCursor)
	messages, page, err := pagination.PaginateCursor(r.Context(), r, h.feed, src)
	done()
	if err != nil {
		paginationFailed(w, pagination.StrategyCursor, err, h.logger)
		return
	}

	respondPage(w, pagination.StrategyCursor, page, messages, linkheader.HeaderOnly)
}
