package services

import (
	"context"
	"log/slog"
	"time"

	"calendra.dev/internal/config"
	"calendra.dev/internal/models"
	"calendra.dev/internal/repositories"
)

// EventStore is the persistence collaborator of the event workflows. The
// domain layer produces validated change sets; the store applies them.
type EventStore interface {
	GetByID(ctx context.Context, id models.EventID) (*models.Event, error)
	GetCalendarEvents(
		ctx context.Context,
		calendarID models.CalendarID,
		from time.Time,
		to time.Time,
	) ([]models.Event, error)
	Insert(ctx context.Context, event models.Event) error
	ApplyChange(ctx context.Context, change models.EventChange) error
	ApplyDelete(ctx context.Context, result models.DeleteResult) error
}

type CalendarStore interface {
	Insert(ctx context.Context, calendar models.Calendar) error
	GetByOwner(ctx context.Context, ownerID string) ([]models.Calendar, error)
}

type Services struct {
	Events       *EventService
	Calendars    *CalendarService
	Invalidation *InvalidationService
}

func New(
	logger *slog.Logger,
	cfg config.Config,
	repos *repositories.Repositories,
) *Services {
	invalidation := NewInvalidationService(logger, []string{cfg.WebURL})
	events := NewEventService(
		logger,
		repos.Events,
		invalidation,
		cfg.MaxQueryWindow,
	)
	calendars := NewCalendarService(repos.Calendars)

	return &Services{
		Events:       events,
		Calendars:    calendars,
		Invalidation: invalidation,
	}
}
