package models_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"calendra.dev/internal/models"
)

func TestParseDate(t *testing.T) {
	for value, expected := range map[string]time.Time{
		"2023-01-01T10:30:00Z":      time.Date(2023, 1, 1, 10, 30, 0, 0, time.UTC),
		"2023-01-01T10:30:00+02:00": time.Date(2023, 1, 1, 8, 30, 0, 0, time.UTC),
		"2023-01-01T10:30:00":       time.Date(2023, 1, 1, 10, 30, 0, 0, time.UTC),
		"2023-01-01":                time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	} {
		parsed, ok := models.ParseDate(value)
		assert.True(t, ok)
		assert.Equal(t, expected, parsed)
	}

	_, ok := models.ParseDate("not a date")
	assert.False(t, ok)
}

func TestNewTitle(t *testing.T) {
	title, err := models.NewTitle("Standup")
	assert.Nil(t, err)
	assert.Equal(t, models.Title("Standup"), title)

	_, err = models.NewTitle("")
	assert.ErrorIs(t, err, models.ErrInvalidTitle)

	_, err = models.NewTitle(strings.Repeat("a", 101))
	assert.ErrorIs(t, err, models.ErrInvalidTitle)
}

func TestNewDuration(t *testing.T) {
	duration, err := models.NewDuration(360000)
	assert.Nil(t, err)
	assert.Equal(t, int64(360000), duration.Milliseconds())

	zero, err := models.NewDuration(0)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), zero.Milliseconds())

	_, err = models.NewDuration(-1)
	assert.ErrorIs(t, err, models.ErrInvalidDuration)
}

func TestDurationJSON(t *testing.T) {
	data, err := json.Marshal(models.Duration(6 * time.Minute))
	assert.Nil(t, err)
	assert.Equal(t, "360000", string(data))

	var duration models.Duration
	err = json.Unmarshal([]byte("360000"), &duration)
	assert.Nil(t, err)
	assert.Equal(t, models.Duration(6*time.Minute), duration)

	err = json.Unmarshal([]byte("-1"), &duration)
	assert.ErrorIs(t, err, models.ErrInvalidDuration)
}

func TestDurationBetween(t *testing.T) {
	start := time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)

	duration, err := models.DurationBetween(start, start.Add(time.Hour))
	assert.Nil(t, err)
	assert.Equal(t, models.Duration(time.Hour), duration)

	_, err = models.DurationBetween(start, start.Add(-time.Second))
	assert.ErrorIs(t, err, models.ErrInvalidDuration)
}

func TestDayBounds(t *testing.T) {
	moment := time.Date(2023, 5, 17, 13, 45, 12, 0, time.UTC)

	assert.Equal(t,
		time.Date(2023, 5, 17, 0, 0, 0, 0, time.UTC),
		models.StartOfDay(moment))
	assert.Equal(t,
		time.Date(2023, 5, 17, 23, 59, 59, 999000000, time.UTC),
		models.EndOfDay(moment))
}

func TestNewException(t *testing.T) {
	exception, err := models.NewException("2023-01-08T00:00:00Z", "modified")
	assert.Nil(t, err)
	assert.Equal(t, models.ExceptionModified, exception.Type)
	assert.Equal(t,
		time.Date(2023, 1, 8, 0, 0, 0, 0, time.UTC),
		exception.TargetDate)

	_, err = models.NewException("garbage", "postponed")
	var ve *models.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "InvalidExceptionDate", ve.Fields()["targetDate"])
	assert.Equal(t, "InvalidExceptionType", ve.Fields()["type"])
}

func TestNewCalendar(t *testing.T) {
	calendar, err := models.NewCalendar("Work", "user-1")
	assert.Nil(t, err)
	assert.NotEmpty(t, calendar.ID)
	assert.Equal(t, models.CalendarName("Work"), calendar.Name)
	assert.Equal(t, "user-1", calendar.OwnerID)

	_, err = models.NewCalendar("", "")
	var ve *models.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "InvalidCalendarName", ve.Fields()["name"])
	assert.Equal(t, "InvalidOwnerId", ve.Fields()["ownerId"])
}

func TestValidationErrorMessage(t *testing.T) {
	ve := models.NewValidationError()
	ve.Add("title", models.ErrInvalidTitle)
	ve.Add("start", models.ErrInvalidStartDate)
	ve.Add("noop", nil)

	assert.False(t, ve.Valid())
	assert.Equal(t, "start: InvalidStartDate, title: InvalidTitle", ve.Error())
	assert.Nil(t, models.NewValidationError().AsError())
}
