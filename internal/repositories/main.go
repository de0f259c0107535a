package repositories

import (
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

type Repositories struct {
	Events    *EventRepository
	Calendars *CalendarRepository
}

func New(db postgres.DB) *Repositories {
	events := &EventRepository{db: db}
	calendars := &CalendarRepository{db: db}

	return &Repositories{
		Events:    events,
		Calendars: calendars,
	}
}
