package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/Raymond9734/linkpager/internal/models"
	"github.com/Raymond9734/linkpager/internal/pagination"
)

// OutboundMessageRepository defines read access to outbound messages
type OutboundMessageRepository interface {
	// Keyset reads messages ordered by id relative to q's position
	Keyset(ctx context.Context, filter models.OutboundMessageFilter, q pagination.KeysetQuery) ([]*models.OutboundMessage, error)
}

// outboundMessageRepository implements OutboundMessageRepository using PostgreSQL
type outboundMessageRepository struct {
	db *sql.DB
}

// NewOutboundMessageRepository creates a new outbound message repository
func NewOutboundMessageRepository(db *sql.DB) OutboundMessageRepository {
	return &outboundMessageRepository{db: db}
}

// Keyset reads one window of messages. A position that is not an id is
// reported as an invalid cursor.
func (r *outboundMessageRepository) Keyset(ctx context.Context, filter models.OutboundMessageFilter, q pagination.KeysetQuery) ([]*models.OutboundMessage, error) {
	w := &where{}
	if filter.CampaignID != 0 {
		w.add("campaign_id = $%d", filter.CampaignID)
	}
	if filter.Status != "" {
		w.add("status = $%d", filter.Status)
	}
	if q.Position != nil {
		id, err := strconv.ParseInt(*q.Position, 10, 64)
		if err != nil {
			return nil, pagination.ErrInvalidCursor
		}
		if q.Before {
			w.add("id < $%d", id)
		} else {
			w.add("id > $%d", id)
		}
	}

	direction := "ASC"
	if q.Descending {
		direction = "DESC"
	}

	query := `
		SELECT id, campaign_id, customer_id, status, rendered_content, last_error, retry_count, created_at, updated_at
		FROM outbound_messages` + w.String()
	query += fmt.Sprintf(" ORDER BY id %s LIMIT %s OFFSET %s", direction, w.next(q.Limit), w.next(q.Offset))

	rows, err := r.db.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list outbound messages: %w", err)
	}
	defer rows.Close()

	messages := []*models.OutboundMessage{}
	for rows.Next() {
		message := &models.OutboundMessage{}
		err := rows.Scan(
			&message.ID,
			&message.CampaignID,
			&message.CustomerID,
			&message.Status,
			&message.RenderedContent,
			&message.LastError,
			&message.RetryCount,
			&message.CreatedAt,
			&message.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan outbound message: %w", err)
		}
		messages = append(messages, message)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating outbound messages: %w", err)
	}

	return messages, nil
}
