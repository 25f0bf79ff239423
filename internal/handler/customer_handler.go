package handler

import (
	"log/slog"
	"net/http"

	"github.com/Raymond9734/linkpager/internal/linkheader"
	"github.com/Raymond9734/linkpager/internal/models"
	"github.com/Raymond9734/linkpager/internal/pagination"
	"github.com/Raymond9734/linkpager/internal/service"
)

// CustomerHandler serves the customer directory. Listings are paginated by
// page number and advertise their neighbours in the Link header only.
type CustomerHandler struct {
	customerService service.CustomerService
	paginator       pagination.PageNumber
	logger          *slog.Logger
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService service.CustomerService, paginator pagination.PageNumber, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		paginator:       paginator,
		logger:          logger,
	}
}

// ListCustomers handles GET /customers
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.CustomerFilter{
		Phone:    query.Get("phone"),
		Location: query.Get("location"),
	}

	done := pageTimer(pagination.StrategyPageNumber)
	customers, page, err := pagination.PaginatePages(r.Context(), r, h.paginator, h.customerService.Source(filter))
	done()
	if err != nil {
		paginationFailed(w, pagination.StrategyPageNumber, err, h.logger)
		return
	}

	respondPage(w, pagination.StrategyPageNumber, page, customers, linkheader.HeaderOnly)
}

// GetCustomer handles GET /customers/{id}
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "customer")
	if !ok {
		return
	}

	customer, err := h.customerService.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, customer)
}
