package service

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/Raymond9734/linkpager/internal/models"
	"github.com/Raymond9734/linkpager/internal/pagination"
	"github.com/Raymond9734/linkpager/internal/repository"
)

// CampaignService exposes campaigns and their message feeds
type CampaignService interface {
	GetByID(ctx context.Context, id int64) (*models.Campaign, error)
	// Source returns the campaigns matching filter, newest first
	Source(filter models.CampaignFilter) (pagination.Source[*models.Campaign], error)
	// Messages returns the outbound messages of an existing campaign
	Messages(ctx context.Context, campaignID int64) (pagination.KeysetSource[*models.OutboundMessage], error)
}

type campaignService struct {
	campaignRepo repository.CampaignRepository
	messageRepo  repository.OutboundMessageRepository
	logger       *slog.Logger
}

// NewCampaignService creates a new campaign service
func NewCampaignService(
	campaignRepo repository.CampaignRepository,
	messageRepo repository.OutboundMessageRepository,
	logger *slog.Logger,
) CampaignService {
	return &campaignService{
		campaignRepo: campaignRepo,
		messageRepo:  messageRepo,
		logger:       logger,
	}
}

// GetByID retrieves a campaign by ID
func (s *campaignService) GetByID(ctx context.Context, id int64) (*models.Campaign, error) {
	return s.campaignRepo.GetByID(ctx, id)
}

func (s *campaignService) Source(filter models.CampaignFilter) (pagination.Source[*models.Campaign], error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	return pagination.SourceFuncs[*models.Campaign]{
		CountFunc: func(ctx context.Context) (int64, error) {
			count, err := s.campaignRepo.Count(ctx, filter)
			if err != nil {
				s.logger.Error("failed to count campaigns",
					slog.String("channel", filter.Channel),
					slog.String("status", filter.Status),
					slog.String("error", err.Error()),
				)
			}
			return count, err
		},
		SliceFunc: func(ctx context.Context, offset, limit int) ([]*models.Campaign, error) {
			campaigns, err := s.campaignRepo.List(ctx, filter, offset, limit)
			if err != nil {
				s.logger.Error("failed to list campaigns",
					slog.Int("offset", offset),
					slog.Int("limit", limit),
					slog.String("error", err.Error()),
				)
			}
			return campaigns, err
		},
	}, nil
}

func (s *campaignService) Messages(ctx context.Context, campaignID int64) (pagination.KeysetSource[*models.OutboundMessage], error) {
	// Unknown campaigns are a 404, not an empty feed
	if _, err := s.campaignRepo.GetByID(ctx, campaignID); err != nil {
		return nil, err
	}

	return messageSource(s.messageRepo, models.OutboundMessageFilter{CampaignID: campaignID}, s.logger), nil
}

// messageSource adapts the message repository to the cursor strategy
func messageSource(repo repository.OutboundMessageRepository, filter models.OutboundMessageFilter, logger *slog.Logger) pagination.KeysetSource[*models.OutboundMessage] {
	return pagination.KeysetFuncs[*models.OutboundMessage]{
		FetchFunc: func(ctx context.Context, q pagination.KeysetQuery) ([]*models.OutboundMessage, error) {
			messages, err := repo.Keyset(ctx, filter, q)
			if err != nil && err != pagination.ErrInvalidCursor {
				logger.Error("failed to read outbound messages",
					slog.Int64("campaign_id", filter.CampaignID),
					slog.String("error", err.Error()),
				)
			}
			return messages, err
		},
		PositionFunc: func(m *models.OutboundMessage) string {
			return strconv.FormatInt(m.ID, 10)
		},
	}
}
