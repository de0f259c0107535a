package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"calendra.dev/internal/models"
)

func TestNewRRule(t *testing.T) {
	rule, ve := models.NewRRule(3, "2023-01-01T00:00:00Z", "2023-01-10T00:00:00Z")

	assert.Nil(t, ve)
	assert.Equal(t, models.Daily, rule.Freq)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), rule.Dtstart)
	assert.Equal(t, time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC), rule.Until)
}

func TestNewRRuleRangeFailsFast(t *testing.T) {
	// both bounds parse but are inverted, the bogus freq is not even looked at
	_, ve := models.NewRRule(-1, "2023-01-10T00:00:00Z", "2023-01-01T00:00:00Z")

	assert.NotNil(t, ve)
	assert.Equal(t, "InvalidRRuleUntil", ve.Fields()["until"])
	assert.False(t, ve.Has("freq"))
}

func TestNewRRuleAccumulatesFieldErrors(t *testing.T) {
	_, ve := models.NewRRule(-1, "garbage", "garbage")

	assert.NotNil(t, ve)
	assert.Equal(t, "InvalidFrequency", ve.Fields()["freq"])
	assert.Equal(t, "InvalidRRuleDtstart", ve.Fields()["dtstart"])
	assert.Equal(t, "InvalidRRuleUntil", ve.Fields()["until"])
}

func TestNewRRuleEqualBoundsRejected(t *testing.T) {
	_, ve := models.NewRRule(3, "2023-01-01T00:00:00Z", "2023-01-01T00:00:00Z")

	assert.NotNil(t, ve)
	assert.Equal(t, "InvalidRRuleUntil", ve.Fields()["until"])
}

func TestExpandDaily(t *testing.T) {
	rule, ve := models.NewRRule(3, "2023-01-01T00:00:00Z", "2023-01-10T00:00:00Z")
	assert.Nil(t, ve)

	dates := rule.Expand(
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC),
	)

	assert.Len(t, dates, 10)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC), dates[9])
}

func TestExpandWindowBoundsInclusive(t *testing.T) {
	rule, ve := models.NewRRule(3, "2023-01-01T00:00:00Z", "2023-01-10T00:00:00Z")
	assert.Nil(t, ve)

	dates := rule.Expand(
		time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC),
	)

	assert.Equal(t, []time.Time{
		time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC),
	}, dates)
}

func TestExpandNeverPassesUntil(t *testing.T) {
	rule, ve := models.NewRRule(3, "2023-01-01T00:00:00Z", "2023-01-10T00:00:00Z")
	assert.Nil(t, ve)

	dates := rule.Expand(
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	)

	assert.Len(t, dates, 10)
	for _, date := range dates {
		assert.False(t, date.After(rule.Until))
	}
}

func TestExpandWeekly(t *testing.T) {
	rule, ve := models.NewRRule(2, "2023-01-02T09:00:00Z", "2023-02-01T00:00:00Z")
	assert.Nil(t, ve)

	dates := rule.Expand(
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
	)

	assert.Equal(t, []time.Time{
		time.Date(2023, 1, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 9, 9, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 16, 9, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 23, 9, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 30, 9, 0, 0, 0, time.UTC),
	}, dates)
}

func TestExpandEmptyWindow(t *testing.T) {
	rule, ve := models.NewRRule(3, "2023-01-01T00:00:00Z", "2023-01-10T00:00:00Z")
	assert.Nil(t, ve)

	dates := rule.Expand(
		time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC),
	)

	assert.Empty(t, dates)
}

func TestNewFrequency(t *testing.T) {
	for value, expected := range map[int]models.Frequency{
		0: models.Yearly,
		1: models.Monthly,
		2: models.Weekly,
		3: models.Daily,
	} {
		freq, err := models.NewFrequency(value)
		assert.Nil(t, err)
		assert.Equal(t, expected, freq)
	}

	_, err := models.NewFrequency(4)
	assert.ErrorIs(t, err, models.ErrInvalidFrequency)
}
