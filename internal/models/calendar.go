package models

const maxCalendarNameLength = 100

type CalendarName string

func NewCalendarName(value string) (CalendarName, error) {
	if len(value) == 0 || len(value) > maxCalendarNameLength {
		return "", ErrInvalidCalendarName
	}
	return CalendarName(value), nil
}

type Calendar struct {
	ID      CalendarID   `json:"id"`
	Name    CalendarName `json:"name"`
	OwnerID string       `json:"ownerId"`
}

// NewCalendar validates raw input into a Calendar with a generated id.
func NewCalendar(name string, ownerID string) (Calendar, error) {
	ve := NewValidationError()

	calendarName, err := NewCalendarName(name)
	ve.Add("name", err)

	if len(ownerID) == 0 {
		ve.Add("ownerId", ErrInvalidOwnerID)
	}

	if err := ve.AsError(); err != nil {
		return Calendar{}, err
	}

	return Calendar{
		ID:      GenerateCalendarID(),
		Name:    calendarName,
		OwnerID: ownerID,
	}, nil
}
