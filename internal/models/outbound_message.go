package models

import (
	"fmt"
	"time"
)

// Outbound message status constants
const (
	MessageStatusPending = "pending"
	MessageStatusSent    = "sent"
	MessageStatusFailed  = "failed"
)

// OutboundMessage is a message rendered for one customer of a campaign
type OutboundMessage struct {
	ID              int64     `json:"id"`
	CampaignID      int64     `json:"campaign_id"`
	CustomerID      int64     `json:"customer_id"`
	Status          string    `json:"status"`
	RenderedContent string    `json:"rendered_content"`
	LastError       *string   `json:"last_error,omitempty"`
	RetryCount      int       `json:"retry_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// OutboundMessageFilter narrows a message feed. Zero values are ignored.
type OutboundMessageFilter struct {
	CampaignID int64
	Status     string
}

// Validate checks the status filter
func (f OutboundMessageFilter) Validate() error {
	if f.Status != "" && !IsValidMessageStatus(f.Status) {
		return ErrInvalidInput(fmt.Sprintf("invalid status: %s", f.Status))
	}
	return nil
}

// IsValidMessageStatus checks if the message status is valid
func IsValidMessageStatus(status string) bool {
	switch status {
	case MessageStatusPending, MessageStatusSent, MessageStatusFailed:
		return true
	default:
		return false
	}
}
