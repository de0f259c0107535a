package repositories

import (
	"context"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/database"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"

	"calendra.dev/internal/models"
)

type EventRepository struct {
	db postgres.DB
}

func (repo *EventRepository) GetByID(
	ctx context.Context,
	id models.EventID,
) (*models.Event, error) {
	query := `
		SELECT calendar_id, title, start, "end", duration_ms,
		is_recurring, is_all_day
		FROM events
		WHERE id = $1
	`

	event := models.Event{ID: id}
	var durationMs int64

	err := repo.db.QueryRow(ctx, query, id).Scan(
		&event.CalendarID,
		&event.Title,
		&event.Start,
		&event.End,
		&durationMs,
		&event.IsRecurring,
		&event.IsAllDay,
	)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	event.Duration = models.Duration(time.Duration(durationMs) * time.Millisecond)
	event.Exceptions = []models.Exception{}

	if err = repo.loadRecurrence(ctx, &event); err != nil {
		return nil, err
	}

	return &event, nil
}

// GetCalendarEvents returns every event of the calendar whose stored span
// intersects the window. The window is widened to whole days so an
// occurrence on the boundary day is never missed; precise filtering happens
// during expansion.
func (repo *EventRepository) GetCalendarEvents(
	ctx context.Context,
	calendarID models.CalendarID,
	from time.Time,
	to time.Time,
) ([]models.Event, error) {
	query := `
		SELECT id, title, start, "end", duration_ms, is_recurring, is_all_day
		FROM events
		WHERE calendar_id = $1 AND start <= $3 AND "end" >= $2
		ORDER BY start asc
	`

	rows, err := repo.db.Query(
		ctx,
		query,
		calendarID,
		models.StartOfDay(from),
		models.EndOfDay(to),
	)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		event := models.Event{
			CalendarID: calendarID,
			Exceptions: []models.Exception{},
		}
		var durationMs int64

		err = rows.Scan(
			&event.ID,
			&event.Title,
			&event.Start,
			&event.End,
			&durationMs,
			&event.IsRecurring,
			&event.IsAllDay,
		)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		event.Duration = models.Duration(
			time.Duration(durationMs) * time.Millisecond,
		)
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	for i := range events {
		if err = repo.loadRecurrence(ctx, &events[i]); err != nil {
			return nil, err
		}
	}

	return events, nil
}

func (repo *EventRepository) loadRecurrence(
	ctx context.Context,
	event *models.Event,
) error {
	if !event.IsRecurring {
		return nil
	}

	ruleQuery := `
		SELECT freq, dtstart, until
		FROM event_rrule
		WHERE event_id = $1
	`

	var rule models.RRule
	err := repo.db.QueryRow(ctx, ruleQuery, event.ID).Scan(
		&rule.Freq,
		&rule.Dtstart,
		&rule.Until,
	)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}
	event.RRule = &rule

	exceptionsQuery := `
		SELECT target_date, type
		FROM event_exceptions
		WHERE event_id = $1
		ORDER BY target_date asc
	`

	rows, err := repo.db.Query(ctx, exceptionsQuery, event.ID)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var exception models.Exception

		err = rows.Scan(&exception.TargetDate, &exception.Type)
		if err != nil {
			return postgres.PgxErrorToHTTPError(err)
		}

		event.Exceptions = append(event.Exceptions, exception)
	}

	if err = rows.Err(); err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}

func (repo *EventRepository) Insert(
	ctx context.Context,
	event models.Event,
) error {
	query := `
		INSERT INTO events
		(id, calendar_id, title, start, "end", duration_ms,
		is_recurring, is_all_day)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := repo.db.Exec(
		ctx,
		query,
		event.ID,
		event.CalendarID,
		event.Title,
		event.Start,
		event.End,
		event.Duration.Milliseconds(),
		event.IsRecurring,
		event.IsAllDay,
	)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	if event.IsRecurring {
		if err = repo.upsertRule(ctx, event); err != nil {
			return err
		}
	}

	return repo.replaceExceptions(ctx, event)
}

// ApplyChange persists an update result: the reworked original plus, for
// splits and per-occurrence edits, the newly created sibling.
func (repo *EventRepository) ApplyChange(
	ctx context.Context,
	change models.EventChange,
) error {
	if err := repo.update(ctx, change.Update); err != nil {
		return err
	}

	if change.Create != nil {
		return repo.Insert(ctx, *change.Create)
	}

	return nil
}

func (repo *EventRepository) ApplyDelete(
	ctx context.Context,
	result models.DeleteResult,
) error {
	if result.Kind == models.KindDeleted {
		return repo.delete(ctx, result.ID)
	}

	return repo.update(ctx, *result.Event)
}

func (repo *EventRepository) update(
	ctx context.Context,
	event models.Event,
) error {
	query := `
		UPDATE events
		SET title = $2, start = $3, "end" = $4, duration_ms = $5,
		is_all_day = $6
		WHERE id = $1
	`

	result, err := repo.db.Exec(
		ctx,
		query,
		event.ID,
		event.Title,
		event.Start,
		event.End,
		event.Duration.Milliseconds(),
		event.IsAllDay,
	)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	rowsAffected := result.RowsAffected()
	if rowsAffected == 0 {
		return database.ErrResourceNotFound
	}

	if event.IsRecurring {
		if err = repo.upsertRule(ctx, event); err != nil {
			return err
		}
	}

	return repo.replaceExceptions(ctx, event)
}

func (repo *EventRepository) upsertRule(
	ctx context.Context,
	event models.Event,
) error {
	query := `
		INSERT INTO event_rrule (event_id, freq, dtstart, until)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (event_id)
		DO UPDATE SET freq = $2, dtstart = $3, until = $4
	`

	_, err := repo.db.Exec(
		ctx,
		query,
		event.ID,
		event.RRule.Freq,
		event.RRule.Dtstart,
		event.RRule.Until,
	)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}

func (repo *EventRepository) replaceExceptions(
	ctx context.Context,
	event models.Event,
) error {
	deleteQuery := `
		DELETE FROM event_exceptions
		WHERE event_id = $1
	`

	_, err := repo.db.Exec(ctx, deleteQuery, event.ID)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	insertQuery := `
		INSERT INTO event_exceptions (event_id, target_date, type)
		VALUES ($1, $2, $3)
	`

	for _, exception := range event.Exceptions {
		_, err = repo.db.Exec(
			ctx,
			insertQuery,
			event.ID,
			exception.TargetDate,
			exception.Type,
		)
		if err != nil {
			return postgres.PgxErrorToHTTPError(err)
		}
	}

	return nil
}

func (repo *EventRepository) delete(
	ctx context.Context,
	id models.EventID,
) error {
	query := `
		DELETE FROM events
		WHERE id = $1
	`

	result, err := repo.db.Exec(ctx, query, id)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	rowsAffected := result.RowsAffected()
	if rowsAffected == 0 {
		return database.ErrResourceNotFound
	}

	return nil
}
