package service

import (
	"log/slog"

	"github.com/Raymond9734/linkpager/internal/models"
	"github.com/Raymond9734/linkpager/internal/pagination"
	"github.com/Raymond9734/linkpager/internal/repository"
)

// MessageService exposes the outbound message feed across campaigns
type MessageService interface {
	Source(filter models.OutboundMessageFilter) (pagination.KeysetSource[*models.OutboundMessage], error)
}

type messageService struct {
	messageRepo repository.OutboundMessageRepository
	logger      *slog.Logger
}

// NewMessageService creates a new message service
func NewMessageService(
	messageRepo repository.OutboundMessageRepository,
	logger *slog.Logger,
) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		logger:      logger,
	}
}

func (s *messageService) Source(filter models.OutboundMessageFilter) (pagination.KeysetSource[*models.OutboundMessage], error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return messageSource(s.messageRepo, filter, s.logger), nil
}
