package services

import (
	"context"

	"calendra.dev/internal/dtos"
	"calendra.dev/internal/models"
)

type CalendarService struct {
	calendars CalendarStore
}

func NewCalendarService(calendars CalendarStore) *CalendarService {
	return &CalendarService{calendars: calendars}
}

func (service *CalendarService) Create(
	ctx context.Context,
	ownerID string,
	dto dtos.CreateCalendarDto,
) (*models.Calendar, error) {
	calendar, err := models.NewCalendar(dto.Name, ownerID)
	if err != nil {
		return nil, err
	}

	if err = service.calendars.Insert(ctx, calendar); err != nil {
		return nil, err
	}

	return &calendar, nil
}

func (service *CalendarService) GetAll(
	ctx context.Context,
	ownerID string,
) ([]models.Calendar, error) {
	return service.calendars.GetByOwner(ctx, ownerID)
}
