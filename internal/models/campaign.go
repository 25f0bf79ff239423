package models

import (
	"fmt"
	"time"
)

// Campaign status constants
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusScheduled = "scheduled"
	CampaignStatusSending   = "sending"
	CampaignStatusSent      = "sent"
	CampaignStatusFailed    = "failed"
)

// Campaign channel constants
const (
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"
)

// Campaign is a messaging campaign. Campaigns are listed newest first.
type Campaign struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Channel      string     `json:"channel"`
	Status       string     `json:"status"`
	BaseTemplate string     `json:"base_template"`
	ScheduledAt  *time.Time `json:"scheduled_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CampaignFilter narrows a campaign listing
type CampaignFilter struct {
	Channel string
	Status  string
}

// Validate checks the filter values against the known channels and statuses
func (f CampaignFilter) Validate() error {
	if f.Channel != "" && !IsValidChannel(f.Channel) {
		return ErrInvalidInput(fmt.Sprintf("invalid channel: %s (must be 'sms' or 'whatsapp')", f.Channel))
	}
	if f.Status != "" && !IsValidCampaignStatus(f.Status) {
		return ErrInvalidInput(fmt.Sprintf("invalid status: %s", f.Status))
	}
	return nil
}

// IsValidChannel checks if the channel is valid
func IsValidChannel(channel string) bool {
	return channel == ChannelSMS || channel == ChannelWhatsApp
}

// IsValidCampaignStatus checks if the campaign status is valid
func IsValidCampaignStatus(status string) bool {
	switch status {
	case CampaignStatusDraft, CampaignStatusScheduled, CampaignStatusSending, CampaignStatusSent, CampaignStatusFailed:
		return true
	default:
		return false
	}
}
