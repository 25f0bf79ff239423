package handler

import (
	"log/slog"
	"net/http"

	"github.com/Raymond9734/linkpager/internal/linkheader"
	"github.com/Raymond9734/linkpager/internal/models"
	"github.com/Raymond9734/linkpager/internal/pagination"
	"github.com/Raymond9734/linkpager/internal/service"
)

// CampaignHandler handles campaign HTTP requests
type CampaignHandler struct {
	campaignService service.CampaignService
	window          pagination.LimitOffset
	feed            pagination.Cursor
	logger          *slog.Logger
}

// NewCampaignHandler creates a new campaign handler. window paginates the
// campaign list; feed paginates a campaign's messages.
func NewCampaignHandler(campaignService service.CampaignService, window pagination.LimitOffset, feed pagination.Cursor, logger *slog.Logger) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
		window:          window,
		feed:            feed,
		logger:          logger,
	}
}

// ListCampaigns handles GET /campaigns
func (h *CampaignHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.CampaignFilter{
		Channel: query.Get("channel"),
		Status:  query.Get("status"),
	}

	src, err := h.campaignService.Source(filter)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	done := pageTimer(pagination.StrategyLimitOffset)
	campaigns, page, err := pagination.PaginateOffset(r.Context(), r, h.window, src)
	done()
	if err != nil {
		paginationFailed(w, pagination.StrategyLimitOffset, err, h.logger)
		return
	}

	respondPage(w, pagination.StrategyLimitOffset, page, campaigns, linkheader.HeaderOnly)
}

// GetCampaign handles GET /campaigns/{id}
func (h *CampaignHandler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "campaign")
	if !ok {
		return
	}

	campaign, err := h.campaignService.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, campaign)
}

// ListCampaignMessages handles GET /campaigns/{id}/messages.
// The body carries next/previous alongside the results.
func (h *CampaignHandler) ListCampaignMessages(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "campaign")
	if !ok {
		return
	}

	src, err := h.campaignService.Messages(r.Context(), id)
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

	respondPage(w, pagination.StrategyCursor, page, messages, linkheader.HeaderAndBody)
}
