package service

import (
	"context"
	"log/slog"

	"github.com/Raymond9734/linkpager/internal/models"
	"github.com/Raymond9734/linkpager/internal/pagination"
	"github.com/Raymond9734/linkpager/internal/repository"
)

// CustomerService exposes customers to the list endpoints
type CustomerService interface {
	GetByID(ctx context.Context, id int64) (*models.Customer, error)
	// Source returns the customers matching filter as a countable collection
	Source(filter models.CustomerFilter) pagination.Source[*models.Customer]
}

type customerService struct {
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	logger *slog.Logger,
) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// GetByID retrieves a customer by ID
func (s *customerService) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) Source(filter models.CustomerFilter) pagination.Source[*models.Customer] {
	return pagination.SourceFuncs[*models.Customer]{
		CountFunc: func(ctx context.Context) (int64, error) {
			count, err := s.customerRepo.Count(ctx, filter)
			if err != nil {
				s.logger.Error("failed to count customers",
					slog.String("location", filter.Location),
					slog.String("error", err.Error()),
				)
			}
			return count, err
		},
		SliceFunc: func(ctx context.Context, offset, limit int) ([]*models.Customer, error) {
			customers, err := s.customerRepo.List(ctx, filter, offset, limit)
			if err != nil {
				s.logger.Error("failed to list customers",
					slog.Int("offset", offset),
					slog.Int("limit", limit),
					slog.String("error", err.Error()),
				)
			}
			return customers, err
		},
	}
}
