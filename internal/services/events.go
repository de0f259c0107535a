package services

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"calendra.dev/internal/dtos"
	"calendra.dev/internal/models"
)

type EventService struct {
	logger         *slog.Logger
	events         EventStore
	invalidation   *InvalidationService
	maxQueryWindow time.Duration
}

func NewEventService(
	logger *slog.Logger,
	events EventStore,
	invalidation *InvalidationService,
	maxQueryWindow time.Duration,
) *EventService {
	return &EventService{
		logger:         logger,
		events:         events,
		invalidation:   invalidation,
		maxQueryWindow: maxQueryWindow,
	}
}

// Create validates the raw input into an event and persists it. All field
// errors are reported together.
func (service *EventService) Create(
	ctx context.Context,
	calendarID string,
	dto dtos.CreateEventDto,
) (*models.Event, error) {
	var rrule *models.UnvalidatedRRule
	if dto.RRule != nil {
		rrule = &models.UnvalidatedRRule{
			Freq:  dto.RRule.Freq,
			Until: dto.RRule.Until,
		}
	}

	event, err := models.NewEvent(models.UnvalidatedEvent{
		CalendarID:  calendarID,
		Title:       dto.Title,
		Start:       dto.Start,
		End:         dto.End,
		IsRecurring: dto.IsRecurring,
		IsAllDay:    dto.IsAllDay,
		RRule:       rrule,
	})
	if err != nil {
		return nil, err
	}

	if err = service.events.Insert(ctx, event); err != nil {
		return nil, err
	}

	return &event, nil
}

func (service *EventService) GetByID(
	ctx context.Context,
	id string,
) (*models.Event, error) {
	eventID, err := models.NewEventID(id)
	if err != nil {
		ve := models.NewValidationError()
		ve.Add("id", err)
		return nil, ve
	}

	return service.events.GetByID(ctx, eventID)
}

// Update edits an event by scope pattern. The affected occurrence range is
// computed before the aggregate is touched and returned so callers (and
// subscribed clients) can drop stale cached windows.
func (service *EventService) Update(
	ctx context.Context,
	id string,
	dto dtos.UpdateEventDto,
) (*models.EventChange, *models.DateRange, error) {
	event, err := service.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	input, err := service.validateUpdate(*event, dto)
	if err != nil {
		return nil, nil, err
	}

	affected := event.AffectedRange(input.Pattern, input.TargetDate)

	change, err := event.Update(input)
	if err != nil {
		return nil, nil, err
	}

	if err = service.events.ApplyChange(ctx, change); err != nil {
		return nil, nil, err
	}

	service.invalidation.Publish(event.CalendarID, affected)

	return &change, &affected, nil
}

func (service *EventService) validateUpdate(
	event models.Event,
	dto dtos.UpdateEventDto,
) (models.UpdateInput, error) {
	ve := models.NewValidationError()

	title, err := models.NewTitle(dto.Title)
	ve.Add("title", err)

	start, err := models.NewStart(dto.Start)
	ve.Add("start", err)

	end, err := models.NewEnd(dto.End)
	ve.Add("end", err)

	var duration models.Duration
	if !ve.Has("start") && !ve.Has("end") {
		duration, err = models.DurationBetween(start, end)
		ve.Add("duration", err)
	}

	targetDate, err := models.NewExceptionDate(dto.TargetDate)
	ve.Add("targetDate", err)
	if err == nil && !event.ValidTargetDate(targetDate) {
		ve.Add("targetDate", models.ErrInvalidTargetDate)
	}

	pattern, err := models.NewOperationPattern(dto.Pattern)
	ve.Add("pattern", err)

	if err = ve.AsError(); err != nil {
		return models.UpdateInput{}, err
	}

	return models.UpdateInput{
		TargetDate: targetDate,
		Title:      title,
		Start:      start,
		End:        end,
		Duration:   duration,
		IsAllDay:   dto.IsAllDay,
		Pattern:    pattern,
	}, nil
}

// Delete removes occurrences by scope pattern and reports the invalidated
// range alongside the outcome.
func (service *EventService) Delete(
	ctx context.Context,
	id string,
	dto dtos.DeleteEventDto,
) (*models.DeleteResult, *models.DateRange, error) {
	event, err := service.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	ve := models.NewValidationError()

	targetDate, err := models.NewExceptionDate(dto.TargetDate)
	ve.Add("targetDate", err)

	pattern, err := models.NewOperationPattern(dto.Pattern)
	ve.Add("pattern", err)

	if err = ve.AsError(); err != nil {
		return nil, nil, err
	}

	affected := event.AffectedRange(pattern, targetDate)

	result, err := event.Delete(models.DeleteInput{
		TargetDate: targetDate,
		Pattern:    pattern,
	})
	if err != nil {
		return nil, nil, err
	}

	if err = service.events.ApplyDelete(ctx, result); err != nil {
		return nil, nil, err
	}

	service.invalidation.Publish(event.CalendarID, affected)

	return &result, &affected, nil
}

// GetOccurrences lists every calendar-visible occurrence within the window,
// ordered by start time.
func (service *EventService) GetOccurrences(
	ctx context.Context,
	calendarID string,
	from string,
	to string,
) ([]models.Occurrence, error) {
	id, fromDate, toDate, err := service.validateQuery(calendarID, from, to)
	if err != nil {
		return nil, err
	}

	events, err := service.events.GetCalendarEvents(ctx, id, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	occurrences := []models.Occurrence{}
	for _, event := range events {
		occurrences = append(occurrences, event.Occurrences(fromDate, toDate)...)
	}

	slices.SortFunc(occurrences, func(a, b models.Occurrence) int {
		return a.Start.Compare(b.Start)
	})

	return occurrences, nil
}

func (service *EventService) validateQuery(
	calendarID string,
	from string,
	to string,
) (models.CalendarID, time.Time, time.Time, error) {
	ve := models.NewValidationError()

	id, err := models.NewCalendarID(calendarID)
	ve.Add("calendarId", err)

	fromDate, err := models.NewStart(from)
	ve.Add("from", err)

	toDate, err := models.NewEnd(to)
	ve.Add("to", err)

	if !ve.Has("from") && !ve.Has("to") {
		if !toDate.After(fromDate) {
			ve.Add("range", models.ErrInvalidDateRange)
		} else if service.maxQueryWindow > 0 &&
			toDate.Sub(fromDate) > service.maxQueryWindow {
			ve.Add("range", models.ErrInvalidDateRange)
		}
	}

	if err = ve.AsError(); err != nil {
		return "", time.Time{}, time.Time{}, err
	}

	return id, fromDate, toDate, nil
}
