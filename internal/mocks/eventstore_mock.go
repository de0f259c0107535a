package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/database"

	"calendra.dev/internal/models"
)

// MockedEventStore keeps events in memory and applies change sets the way
// the real repository does.
type MockedEventStore struct {
	mu     sync.Mutex
	events map[models.EventID]models.Event
}

func NewMockedEventStore(events ...models.Event) *MockedEventStore {
	store := &MockedEventStore{
		events: make(map[models.EventID]models.Event),
	}
	for _, event := range events {
		store.events[event.ID] = event
	}
	return store
}

func (m *MockedEventStore) GetByID(
	_ context.Context,
	id models.EventID,
) (*models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	event, ok := m.events[id]
	if !ok {
		return nil, database.ErrResourceNotFound
	}
	return &event, nil
}

func (m *MockedEventStore) GetCalendarEvents(
	_ context.Context,
	calendarID models.CalendarID,
	from time.Time,
	to time.Time,
) ([]models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := []models.Event{}
	for _, event := range m.events {
		if event.CalendarID != calendarID {
			continue
		}
		if event.Start.After(to) || event.End.Before(from) {
			continue
		}
		result = append(result, event)
	}
	return result, nil
}

func (m *MockedEventStore) Insert(_ context.Context, event models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events[event.ID] = event
	return nil
}

func (m *MockedEventStore) ApplyChange(
	_ context.Context,
	change models.EventChange,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.events[change.Update.ID]; !ok {
		return database.ErrResourceNotFound
	}

	m.events[change.Update.ID] = change.Update
	if change.Create != nil {
		m.events[change.Create.ID] = *change.Create
	}
	return nil
}

func (m *MockedEventStore) ApplyDelete(
	_ context.Context,
	result models.DeleteResult,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.events[result.ID]; !ok {
		return database.ErrResourceNotFound
	}

	if result.Kind == models.KindDeleted {
		delete(m.events, result.ID)
		return nil
	}

	m.events[result.ID] = *result.Event
	return nil
}
