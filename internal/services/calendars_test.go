package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"calendra.dev/internal/dtos"
	"calendra.dev/internal/mocks"
	"calendra.dev/internal/models"
	"calendra.dev/internal/services"
)

func TestCalendarServiceCreate(t *testing.T) {
	store := mocks.NewMockedCalendarStore()
	service := services.NewCalendarService(store)

	calendar, err := service.Create(
		context.Background(),
		"user-1",
		dtos.CreateCalendarDto{Name: "Work", OwnerID: "user-1"},
	)

	assert.Nil(t, err)
	assert.NotEmpty(t, calendar.ID)

	calendars, err := service.GetAll(context.Background(), "user-1")
	assert.Nil(t, err)
	assert.Len(t, calendars, 1)
	assert.Equal(t, models.CalendarName("Work"), calendars[0].Name)
}

func TestCalendarServiceCreateInvalid(t *testing.T) {
	service := services.NewCalendarService(mocks.NewMockedCalendarStore())

	_, err := service.Create(
		context.Background(),
		"",
		dtos.CreateCalendarDto{Name: "", OwnerID: ""},
	)

	var ve *models.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.True(t, ve.Has("name"))
	assert.True(t, ve.Has("ownerId"))
}

func TestCalendarServiceGetAllFiltersByOwner(t *testing.T) {
	store := mocks.NewMockedCalendarStore()
	service := services.NewCalendarService(store)

	_, err := service.Create(
		context.Background(),
		"user-1",
		dtos.CreateCalendarDto{Name: "Work", OwnerID: "user-1"},
	)
	assert.Nil(t, err)

	_, err = service.Create(
		context.Background(),
		"user-2",
		dtos.CreateCalendarDto{Name: "Private", OwnerID: "user-2"},
	)
	assert.Nil(t, err)

	calendars, err := service.GetAll(context.Background(), "user-1")
	assert.Nil(t, err)
	assert.Len(t, calendars, 1)
	assert.Equal(t, "user-1", calendars[0].OwnerID)
}
