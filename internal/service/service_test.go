package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raymond9734/linkpager/internal/models"
	"github.com/Raymond9734/linkpager/internal/pagination"
)

func TestCustomerService_Source(t *testing.T) {
	repo := &mockCustomerRepository{}
	for i := int64(1); i <= 12; i++ {
		location := "Nairobi"
		if i%2 == 0 {
			location = "Mombasa"
		}
		repo.customers = append(repo.customers, &models.Customer{ID: i, Location: location})
	}
	svc := NewCustomerService(repo, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "http://testserver/customers?location=Mombasa&page=2", nil)
	items, page, err := pagination.PaginatePages(context.Background(), req, pagination.PageNumber{PageSize: 4}, svc.Source(models.CustomerFilter{Location: "Mombasa"}))
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, int64(10), items[0].ID)
	assert.Equal(t, int64(12), items[1].ID)
	assert.Equal(t, 2, page.NumPages)
}

func TestCustomerService_SourceError(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewCustomerService(&mockCustomerRepository{err: boom}, discardLogger())

	_, err := svc.Source(models.CustomerFilter{}).Count(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestCustomerService_GetByID(t *testing.T) {
	svc := NewCustomerService(&mockCustomerRepository{customers: []*models.Customer{{ID: 1}}}, discardLogger())

	got, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)

	_, err = svc.GetByID(context.Background(), 2)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestCampaignService_Source(t *testing.T) {
	repo := &mockCampaignRepository{}
	for i := int64(1); i <= 10; i++ {
		repo.campaigns = append(repo.campaigns, &models.Campaign{ID: i, Channel: models.ChannelSMS, Status: models.CampaignStatusDraft})
	}
	svc := NewCampaignService(repo, &mockMessageRepository{}, discardLogger())

	src, err := svc.Source(models.CampaignFilter{Channel: models.ChannelSMS})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "http://testserver/campaigns?limit=3&offset=3", nil)
	items, page, err := pagination.PaginateOffset(context.Background(), req, pagination.LimitOffset{DefaultLimit: 3}, src)
	require.NoError(t, err)

	require.Len(t, items, 3)
	assert.Equal(t, int64(7), items[0].ID)
	assert.Equal(t, "http://testserver/campaigns?limit=3&offset=9", page.LastLink())
}

func TestCampaignService_Source_InvalidFilter(t *testing.T) {
	svc := NewCampaignService(&mockCampaignRepository{}, &mockMessageRepository{}, discardLogger())

	_, err := svc.Source(models.CampaignFilter{Channel: "email"})

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeInvalidInput, appErr.Code)
}

func TestCampaignService_Messages(t *testing.T) {
	campaigns := &mockCampaignRepository{campaigns: []*models.Campaign{{ID: 1}, {ID: 2}}}
	messages := &mockMessageRepository{}
	for i := int64(1); i <= 9; i++ {
		messages.messages = append(messages.messages, &models.OutboundMessage{ID: i, CampaignID: 1 + i%2})
	}
	svc := NewCampaignService(campaigns, messages, discardLogger())

	src, err := svc.Messages(context.Background(), 2)
	require.NoError(t, err)

	var seen []int64
	target := "http://testserver/campaigns/2/messages"
	for target != "" {
		items, page, err := pagination.PaginateCursor(context.Background(), httptest.NewRequest(http.MethodGet, target, nil), pagination.NewCursor(2, 10, "id"), src)
		require.NoError(t, err)

		for _, m := range items {
			seen = append(seen, m.ID)
		}
		target = page.NextLink()
	}

	assert.Equal(t, []int64{1, 3, 5, 7, 9}, seen)
	for _, q := range messages.queries {
		assert.Equal(t, 3, q.Limit, "one extra row is fetched to detect the next page")
	}
}

func TestCampaignService_Messages_UnknownCampaign(t *testing.T) {
	svc := NewCampaignService(&mockCampaignRepository{}, &mockMessageRepository{}, discardLogger())

	_, err := svc.Messages(context.Background(), 42)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestMessageService_Source(t *testing.T) {
	repo := &mockMessageRepository{messages: []*models.OutboundMessage{
		{ID: 1, Status: models.MessageStatusSent},
		{ID: 2, Status: models.MessageStatusFailed},
		{ID: 3, Status: models.MessageStatusFailed},
	}}
	svc := NewMessageService(repo, discardLogger())

	src, err := svc.Source(models.OutboundMessageFilter{Status: models.MessageStatusFailed})
	require.NoError(t, err)

	items, page, err := pagination.PaginateCursor(context.Background(), httptest.NewRequest(http.MethodGet, "http://testserver/messages", nil), pagination.NewCursor(5, 10, "-id"), src)
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, int64(3), items[0].ID)
	assert.Equal(t, int64(2), items[1].ID)
	assert.False(t, page.HasNext())

	_, err = svc.Source(models.OutboundMessageFilter{Status: "bounced"})
	assert.Error(t, err)
}

func TestEventService_Append(t *testing.T) {
	store := &mockEventStore{}
	svc := NewEventService(store, discardLogger())

	event, err := svc.Append(context.Background(), &models.NewEventRequest{Type: "campaign.sent", CampaignID: 3, Payload: json.RawMessage(`{"sent":10}`)})
	require.NoError(t, err)

	assert.Equal(t, int64(1), event.ID)
	assert.Len(t, store.events, 1)
}

func TestEventService_Append_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.NewEventRequest
		wantMsg string
	}{
		{name: "missing type", req: &models.NewEventRequest{}, wantMsg: "type is required"},
		{name: "negative campaign", req: &models.NewEventRequest{Type: "x", CampaignID: -1}, wantMsg: "campaign_id must be greater than or equal 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockEventStore{}
			_, err := NewEventService(store, discardLogger()).Append(context.Background(), tt.req)

			var appErr *models.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, models.CodeInvalidInput, appErr.Code)
			assert.Equal(t, tt.wantMsg, appErr.Message)
			assert.Empty(t, store.events)
		})
	}
}

func TestEventService_Source(t *testing.T) {
	store := &mockEventStore{}
	svc := NewEventService(store, discardLogger())
	for range 3 {
		_, err := svc.Append(context.Background(), &models.NewEventRequest{Type: "customer.created"})
		require.NoError(t, err)
	}

	src := svc.Source()
	events, err := src.Fetch(context.Background(), pagination.KeysetQuery{Descending: true, Limit: 2})
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, "3", src.Position(events[0]))
}
