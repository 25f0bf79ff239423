package service

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strconv"

	"github.com/Raymond9734/linkpager/internal/models"
	"github.com/Raymond9734/linkpager/internal/pagination"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// mockCustomerRepository serves customers from memory
type mockCustomerRepository struct {
	customers []*models.Customer
	err       error
}

func (m *mockCustomerRepository) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	for _, c := range m.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, models.ErrNotFoundWithMsg("customer not found")
}

func (m *mockCustomerRepository) filtered(filter models.CustomerFilter) []*models.Customer {
	out := []*models.Customer{}
	for _, c := range m.customers {
		if filter.Location != "" && c.Location != filter.Location {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (m *mockCustomerRepository) Count(ctx context.Context, filter models.CustomerFilter) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.filtered(filter))), nil
}

func (m *mockCustomerRepository) List(ctx context.Context, filter models.CustomerFilter, offset, limit int) ([]*models.Customer, error) {
	if m.err != nil {
		return nil, m.err
	}
	all := m.filtered(filter)
	start := min(offset, len(all))
	end := min(start+limit, len(all))
	return all[start:end], nil
}

// mockCampaignRepository serves campaigns newest first
type mockCampaignRepository struct {
	campaigns []*models.Campaign
}

func (m *mockCampaignRepository) GetByID(ctx context.Context, id int64) (*models.Campaign, error) {
	for _, c := range m.campaigns {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, models.ErrNotFoundWithMsg("campaign not found")
}

func (m *mockCampaignRepository) filtered(filter models.CampaignFilter) []*models.Campaign {
	out := []*models.Campaign{}
	for _, c := range slices.Backward(m.campaigns) {
		if filter.Channel != "" && c.Channel != filter.Channel {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (m *mockCampaignRepository) Count(ctx context.Context, filter models.CampaignFilter) (int64, error) {
	return int64(len(m.filtered(filter))), nil
}

func (m *mockCampaignRepository) List(ctx context.Context, filter models.CampaignFilter, offset, limit int) ([]*models.Campaign, error) {
	all := m.filtered(filter)
	start := min(offset, len(all))
	end := min(start+limit, len(all))
	return all[start:end], nil
}

// mockMessageRepository implements keyset reads over messages sorted by id
type mockMessageRepository struct {
	messages []*models.OutboundMessage
	queries  []pagination.KeysetQuery
}

func (m *mockMessageRepository) Keyset(ctx context.Context, filter models.OutboundMessageFilter, q pagination.KeysetQuery) ([]*models.OutboundMessage, error) {
	m.queries = append(m.queries, q)

	var pos int64
	if q.Position != nil {
		p, err := strconv.ParseInt(*q.Position, 10, 64)
		if err != nil {
			return nil, pagination.ErrInvalidCursor
		}
		pos = p
	}

	out := []*models.OutboundMessage{}
	for _, msg := range m.messages {
		if filter.CampaignID != 0 && msg.CampaignID != filter.CampaignID {
			continue
		}
		if filter.Status != "" && msg.Status != filter.Status {
			continue
		}
		if q.Position != nil && q.Before && msg.ID >= pos {
			continue
		}
		if q.Position != nil && !q.Before && msg.ID <= pos {
			continue
		}
		out = append(out, msg)
	}
	if q.Descending {
		slices.Reverse(out)
	}

	start := min(q.Offset, len(out))
	end := min(start+q.Limit, len(out))
	return out[start:end], nil
}

// mockEventStore records appended events
type mockEventStore struct {
	events []*models.Event
	err    error
}

func (m *mockEventStore) Append(ctx context.Context, req *models.NewEventRequest) (*models.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	event := &models.Event{ID: int64(len(m.events) + 1), Type: req.Type, CampaignID: req.CampaignID, Payload: req.Payload}
	m.events = append(m.events, event)
	return event, nil
}

func (m *mockEventStore) Keyset(ctx context.Context, q pagination.KeysetQuery) ([]*models.Event, error) {
	out := slices.Clone(m.events)
	if q.Descending {
		slices.Reverse(out)
	}
	start := min(q.Offset, len(out))
	end := min(start+q.Limit, len(out))
	return out[start:end], nil
}

func (m *mockEventStore) Health(ctx context.Context) error { return nil }
func (m *mockEventStore) Close() error                     { return nil }
