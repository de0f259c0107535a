package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const maxTitleLength = 100

// EventID and CalendarID are opaque identifiers. They are only constructed
// through the validating New* functions or generated as UUIDs, so a plain
// string can never be passed where a checked id is expected.
type (
	EventID    string
	CalendarID string
)

func NewEventID(value string) (EventID, error) {
	if len(value) == 0 {
		return "", ErrInvalidEventID
	}
	return EventID(value), nil
}

func GenerateEventID() EventID {
	return EventID(uuid.NewString())
}

func NewCalendarID(value string) (CalendarID, error) {
	if len(value) == 0 {
		return "", ErrInvalidCalendarID
	}
	return CalendarID(value), nil
}

func GenerateCalendarID() CalendarID {
	return CalendarID(uuid.NewString())
}

type Title string

func NewTitle(value string) (Title, error) {
	if len(value) == 0 || len(value) > maxTitleLength {
		return "", ErrInvalidTitle
	}
	return Title(value), nil
}

// Duration is the length of a single occurrence. Zero-length events are
// allowed, only negative durations are rejected.
type Duration time.Duration

func NewDuration(milliseconds int64) (Duration, error) {
	if milliseconds < 0 {
		return 0, ErrInvalidDuration
	}
	return Duration(time.Duration(milliseconds) * time.Millisecond), nil
}

// DurationBetween derives the duration of a single event from its bounds.
func DurationBetween(start, end time.Time) (Duration, error) {
	diff := end.Sub(start)
	if diff < 0 {
		return 0, ErrInvalidDuration
	}
	return Duration(diff), nil
}

func (d Duration) Milliseconds() int64 {
	return time.Duration(d).Milliseconds()
}

// Durations travel as millisecond counts on the wire and in storage.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Milliseconds())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var milliseconds int64
	if err := json.Unmarshal(data, &milliseconds); err != nil {
		return err
	}

	duration, err := NewDuration(milliseconds)
	if err != nil {
		return err
	}

	*d = duration
	return nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate accepts RFC 3339 timestamps and bare dates, the formats clients
// send. Callers map the failure to a field-specific error code.
func ParseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func NewStart(value string) (time.Time, error) {
	t, ok := ParseDate(value)
	if !ok {
		return time.Time{}, ErrInvalidStartDate
	}
	return t, nil
}

func NewEnd(value string) (time.Time, error) {
	t, ok := ParseDate(value)
	if !ok {
		return time.Time{}, ErrInvalidEndDate
	}
	return t, nil
}

// StartOfDay and EndOfDay normalize window bounds to whole days, matching how
// stored events are matched against a query range.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Millisecond)
}
