package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Raymond9734/linkpager/internal/config"
	"github.com/Raymond9734/linkpager/internal/pagination"
	"github.com/Raymond9734/linkpager/internal/service"
)

// Dependencies are the collaborators the router wires into handlers
type Dependencies struct {
	Pagination config.PaginationConfig

	Customers service.CustomerService
	Campaigns service.CampaignService
	Messages  service.MessageService
	Events    service.EventService

	DBHealth     HealthChecker
	EventsHealth HealthChecker

	Logger *slog.Logger
}

// cursor builds a cursor strategy from the configured sizes
func cursor(cfg config.PaginationConfig, ordering string) pagination.Cursor {
	c := pagination.NewCursor(cfg.CursorPageSize, cfg.MaxPageSize, ordering)
	c.OffsetCutoff = cfg.CursorOffsetCutoff
	return c
}

// NewRouter builds the HTTP routes
func NewRouter(deps Dependencies) http.Handler {
	cfg := deps.Pagination
	logger := deps.Logger

	customerHandler := NewCustomerHandler(deps.Customers, pagination.NewPageNumber(cfg.PageSize, cfg.MaxPageSize), logger)
	campaignHandler := NewCampaignHandler(deps.Campaigns, pagination.NewLimitOffset(cfg.DefaultLimit, cfg.MaxLimit), cursor(cfg, "id"), logger)
	messageHandler := NewMessageHandler(deps.Messages, cursor(cfg, "-id"), logger)
	eventHandler := NewEventHandler(deps.Events, cursor(cfg, "-id"), logger)
	healthHandler := NewHealthHandler(deps.DBHealth, deps.EventsHealth, logger)

	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(RecoveryMiddleware(logger))
	r.Use(LoggingMiddleware(logger))
	r.Use(CORSMiddleware)
	r.Use(MetricsMiddleware)

	r.Get("/health", healthHandler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/customers", func(r chi.Router) {
		r.Get("/", customerHandler.ListCustomers)
		r.Get("/{id}", customerHandler.GetCustomer)
	})

	r.Route("/campaigns", func(r chi.Router) {
		r.Get("/", campaignHandler.ListCampaigns)
		r.Get("/{id}", campaignHandler.GetCampaign)
		r.Get("/{id}/messages", campaignHandler.ListCampaignMessages)
	})

	r.Get("/messages", messageHandler.ListMessages)

	r.Route("/events", func(r chi.Router) {
		r.Get("/", eventHandler.ListEvents)
		r.Post("/", eventHandler.CreateEvent)
	})

	return r
}
