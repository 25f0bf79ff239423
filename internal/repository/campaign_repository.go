package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Raymond9734/linkpager/internal/models"
)

// CampaignRepository defines read access to campaigns.
// Listings are ordered newest first (id descending).
type CampaignRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Campaign, error)
	Count(ctx context.Context, filter models.CampaignFilter) (int64, error)
	List(ctx context.Context, filter models.CampaignFilter, offset, limit int) ([]*models.Campaign, error)
}

// campaignRepository implements CampaignRepository using PostgreSQL
type campaignRepository struct {
	db *sql.DB
}

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(db *sql.DB) CampaignRepository {
	return &campaignRepository{db: db}
}

const campaignColumns = `id, name, channel, status, base_template, scheduled_at, created_at, updated_at`

// GetByID retrieves a campaign by ID
func (r *campaignRepository) GetByID(ctx context.Context, id int64) (*models.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`

	campaign, err := scanCampaign(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("campaign with ID %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	return campaign, nil
}

func campaignWhere(filter models.CampaignFilter) *where {
	w := &where{}
	if filter.Channel != "" {
		w.add("channel = $%d", filter.Channel)
	}
	if filter.Status != "" {
		w.add("status = $%d", filter.Status)
	}
	return w
}

// Count returns the number of campaigns matching filter
func (r *campaignRepository) Count(ctx context.Context, filter models.CampaignFilter) (int64, error) {
	w := campaignWhere(filter)

	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM campaigns`+w.String(), w.args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count campaigns: %w", err)
	}

	return count, nil
}

// List reads limit campaigns starting at offset
func (r *campaignRepository) List(ctx context.Context, filter models.CampaignFilter, offset, limit int) ([]*models.Campaign, error) {
	w := campaignWhere(filter)
	query := `SELECT ` + campaignColumns + ` FROM campaigns` + w.String()
	query += fmt.Sprintf(" ORDER BY id DESC LIMIT %s OFFSET %s", w.next(limit), w.next(offset))

	rows, err := r.db.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	campaigns := []*models.Campaign{}
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating campaigns: %w", err)
	}

	return campaigns, nil
}

func scanCampaign(s scanner) (*models.Campaign, error) {
	campaign := &models.Campaign{}
	err := s.Scan(
		&campaign.ID,
		&campaign.Name,
		&campaign.Channel,
		&campaign.Status,
		&campaign.BaseTemplate,
		&campaign.ScheduledAt,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return campaign, nil
}
