package dtos

import (
	"time"
)

// SubscribeMessageDto subscribes a client to invalidation pushes for one
// calendar.
type SubscribeMessageDto struct {
	CalendarID string `json:"calendarId"`
}

func (dto SubscribeMessageDto) Topic() string {
	return dto.CalendarID
}

func (dto SubscribeMessageDto) Validate() (bool, map[string]string) {
	return true, make(map[string]string)
}

// InvalidatedRangeDto tells subscribed clients which cached window of
// occurrences is stale after an edit or delete.
type InvalidatedRangeDto struct {
	CalendarID string    `json:"calendarId"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}
