package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Raymond9734/linkpager/internal/models"
)

// CustomerRepository defines read access to customers.
// Listings are ordered by id ascending.
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Customer, error)
	Count(ctx context.Context, filter models.CustomerFilter) (int64, error)
	List(ctx context.Context, filter models.CustomerFilter, offset, limit int) ([]*models.Customer, error)
}

// customerRepository implements CustomerRepository using PostgreSQL
type customerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *sql.DB) CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, phone, first_name, last_name, location, preferred_product`

// GetByID retrieves a customer by ID
func (r *customerRepository) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	customer, err := scanCustomer(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("customer with ID %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return customer, nil
}

func customerWhere(filter models.CustomerFilter) *where {
	w := &where{}
	if filter.Phone != "" {
		w.add("phone LIKE $%d", "%"+filter.Phone+"%")
	}
	if filter.Location != "" {
		w.add("location = $%d", filter.Location)
	}
	return w
}

// Count returns the number of customers matching filter
func (r *customerRepository) Count(ctx context.Context, filter models.CustomerFilter) (int64, error) {
	w := customerWhere(filter)

	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`+w.String(), w.args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}

	return count, nil
}

// List reads limit customers starting at offset
func (r *customerRepository) List(ctx context.Context, filter models.CustomerFilter, offset, limit int) ([]*models.Customer, error) {
	w := customerWhere(filter)
	query := `SELECT ` + customerColumns + ` FROM customers` + w.String()
	query += fmt.Sprintf(" ORDER BY id ASC LIMIT %s OFFSET %s", w.next(limit), w.next(offset))

	rows, err := r.db.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := []*models.Customer{}
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCustomer(s scanner) (*models.Customer, error) {
	customer := &models.Customer{}
	err := s.Scan(
		&customer.ID,
		&customer.Phone,
		&customer.FirstName,
		&customer.LastName,
		&customer.Location,
		&customer.PreferredProduct,
	)
	if err != nil {
		return nil, err
	}
	return customer, nil
}
