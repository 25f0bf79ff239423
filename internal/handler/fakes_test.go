package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strconv"

	"github.com/Raymond9734/linkpager/internal/config"
	"github.com/Raymond9734/linkpager/internal/models"
	"github.com/Raymond9734/linkpager/internal/pagination"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

var testPagination = config.PaginationConfig{
	PageSize:           5,
	MaxPageSize:        100,
	DefaultLimit:       4,
	MaxLimit:           100,
	CursorPageSize:     5,
	CursorOffsetCutoff: 1000,
}

func window[T any](items []T, offset, limit int) []T {
	start := min(offset, len(items))
	end := min(start+limit, len(items))
	return items[start:end]
}

type fakeCustomers struct {
	customers []*models.Customer
}

func (f *fakeCustomers) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, models.ErrNotFoundWithMsg("customer with ID " + strconv.FormatInt(id, 10) + " not found")
}

func (f *fakeCustomers) Source(filter models.CustomerFilter) pagination.Source[*models.Customer] {
	matched := []*models.Customer{}
	for _, c := range f.customers {
		if filter.Location == "" || c.Location == filter.Location {
			matched = append(matched, c)
		}
	}
	return pagination.SourceFuncs[*models.Customer]{
		CountFunc: func(ctx context.Context) (int64, error) { return int64(len(matched)), nil },
		SliceFunc: func(ctx context.Context, offset, limit int) ([]*models.Customer, error) {
			return window(matched, offset, limit), nil
		},
	}
}

// keyset filters messages (sorted by id) the way the repository does
func keyset(messages []*models.OutboundMessage, q pagination.KeysetQuery) ([]*models.OutboundMessage, error) {
	var pos int64
	if q.Position != nil {
		p, err := strconv.ParseInt(*q.Position, 10, 64)
		if err != nil {
			return nil, pagination.ErrInvalidCursor
		}
		pos = p
	}

	out := []*models.OutboundMessage{}
	for _, m := range messages {
		if q.Position != nil && ((q.Before && m.ID >= pos) || (!q.Before && m.ID <= pos)) {
			continue
		}
		out = append(out, m)
	}
	if q.Descending {
		slices.Reverse(out)
	}
	return window(out, q.Offset, q.Limit), nil
}

func messageSource(messages []*models.OutboundMessage) pagination.KeysetSource[*models.OutboundMessage] {
	return pagination.KeysetFuncs[*models.OutboundMessage]{
		FetchFunc: func(ctx context.Context, q pagination.KeysetQuery) ([]*models.OutboundMessage, error) {
			return keyset(messages, q)
		},
		PositionFunc: func(m *models.OutboundMessage) string { return strconv.FormatInt(m.ID, 10) },
	}
}

type fakeCampaigns struct {
	campaigns []*models.Campaign
	messages  []*models.OutboundMessage
	countErr  error
}

func (f *fakeCampaigns) GetByID(ctx context.Context, id int64) (*models.Campaign, error) {
	for _, c := range f.campaigns {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, models.ErrNotFoundWithMsg("campaign not found")
}

func (f *fakeCampaigns) Source(filter models.CampaignFilter) (pagination.Source[*models.Campaign], error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return pagination.SourceFuncs[*models.Campaign]{
		CountFunc: func(ctx context.Context) (int64, error) { return int64(len(f.campaigns)), f.countErr },
		SliceFunc: func(ctx context.Context, offset, limit int) ([]*models.Campaign, error) {
			return window(f.campaigns, offset, limit), nil
		},
	}, nil
}

func (f *fakeCampaigns) Messages(ctx context.Context, campaignID int64) (pagination.KeysetSource[*models.OutboundMessage], error) {
	if _, err := f.GetByID(ctx, campaignID); err != nil {
		return nil, err
	}
	return messageSource(f.messages), nil
}

type fakeMessages struct {
	messages []*models.OutboundMessage
}

func (f *fakeMessages) Source(filter models.OutboundMessageFilter) (pagination.KeysetSource[*models.OutboundMessage], error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return messageSource(f.messages), nil
}

type fakeEvents struct {
	events []*models.Event
}

func (f *fakeEvents) Append(ctx context.Context, req *models.NewEventRequest) (*models.Event, error) {
	if req.Type == "" {
		return nil, models.ErrInvalidInput("type is required")
	}
	event := &models.Event{ID: int64(len(f.events) + 1), Type: req.Type, CampaignID: req.CampaignID}
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeEvents) Source() pagination.KeysetSource[*models.Event] {
	return pagination.KeysetFuncs[*models.Event]{
		FetchFunc: func(ctx context.Context, q pagination.KeysetQuery) ([]*models.Event, error) {
			out := slices.Clone(f.events)
			if q.Descending {
				slices.Reverse(out)
			}
			return window(out, q.Offset, q.Limit), nil
		},
		PositionFunc: func(e *models.Event) string { return strconv.FormatInt(e.ID, 10) },
	}
}

type fakeChecker struct {
	err error
}

func (f fakeChecker) Health(ctx context.Context) error { return f.err }

var errDown = errors.New("connection refused")
