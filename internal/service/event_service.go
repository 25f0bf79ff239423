package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Raymond9734/linkpager/internal/events"
	"github.com/Raymond9734/linkpager/internal/models"
	"github.com/Raymond9734/linkpager/internal/pagination"
)

// EventService appends to and reads the activity log
type EventService interface {
	Append(ctx context.Context, req *models.NewEventRequest) (*models.Event, error)
	Source() pagination.KeysetSource[*models.Event]
}

type eventService struct {
	store    events.Store
	validate *validator.Validate
	logger   *slog.Logger
}

// NewEventService creates a new event service
func NewEventService(store events.Store, logger *slog.Logger) EventService {
	return &eventService{
		store:    store,
		validate: newValidator(),
		logger:   logger,
	}
}

// Append validates req and stores it as the next event
func (s *eventService) Append(ctx context.Context, req *models.NewEventRequest) (*models.Event, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	event, err := s.store.Append(ctx, req)
	if err != nil {
		s.logger.Error("failed to append event",
			slog.String("type", req.Type),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("event appended",
		slog.Int64("event_id", event.ID),
		slog.String("type", event.Type),
	)

	return event, nil
}

func (s *eventService) Source() pagination.KeysetSource[*models.Event] {
	return pagination.KeysetFuncs[*models.Event]{
		FetchFunc: s.store.Keyset,
		PositionFunc: func(e *models.Event) string {
			return strconv.FormatInt(e.ID, 10)
		},
	}
}

// newValidator reports fields by their JSON names
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationError turns validator failures into a single invalid input error
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return models.ErrInvalidInput(err.Error())
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than or equal %s", field, fe.Param()))
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return models.ErrInvalidInput(strings.Join(msgs, "; "))
}
