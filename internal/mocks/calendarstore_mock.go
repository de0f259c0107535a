package mocks

import (
	"context"
	"sort"
	"sync"

	"calendra.dev/internal/models"
)

type MockedCalendarStore struct {
	mu        sync.Mutex
	calendars map[models.CalendarID]models.Calendar
}

func NewMockedCalendarStore(calendars ...models.Calendar) *MockedCalendarStore {
	store := &MockedCalendarStore{
		calendars: make(map[models.CalendarID]models.Calendar),
	}
	for _, calendar := range calendars {
		store.calendars[calendar.ID] = calendar
	}
	return store
}

func (m *MockedCalendarStore) Insert(
	_ context.Context,
	calendar models.Calendar,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calendars[calendar.ID] = calendar
	return nil
}

func (m *MockedCalendarStore) GetByOwner(
	_ context.Context,
	ownerID string,
) ([]models.Calendar, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := []models.Calendar{}
	for _, calendar := range m.calendars {
		if calendar.OwnerID == ownerID {
			result = append(result, calendar)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}
