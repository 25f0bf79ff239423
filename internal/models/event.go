package models

import (
	"encoding/json"
	"time"
)

// Event is an entry of the append-only activity log kept in Redis
type Event struct {
	ID         int64           `json:"id"`
	Type       string          `json:"type"`
	CampaignID int64           `json:"campaign_id,omitempty"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// NewEventRequest is the body of POST /events
type NewEventRequest struct {
	Type       string          `json:"type" validate:"required,max=64"`
	CampaignID int64           `json:"campaign_id" validate:"gte=0"`
	Payload    json.RawMessage `json:"payload"`
}
