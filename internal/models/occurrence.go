package models

import "time"

// Occurrence is one concrete calendar appearance of an event within a query
// window.
type Occurrence struct {
	ID       EventID   `json:"id"`
	Title    Title     `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	IsAllDay bool      `json:"isAllDay"`
}

// Occurrences expands the event into its appearances between from and to,
// both ends inclusive. A single event always yields its one appearance;
// range filtering is the caller's concern. For recurring events every
// exception date is excluded from the base expansion: cancelled occurrences
// are gone, modified ones resurface as the single event that was split off
// when the exception was recorded.
func (e Event) Occurrences(from, to time.Time) []Occurrence {
	if !e.IsRecurring {
		return []Occurrence{{
			ID:       e.ID,
			Title:    e.Title,
			Start:    e.Start,
			End:      e.End,
			IsAllDay: e.IsAllDay,
		}}
	}

	excluded := make(map[int64]struct{}, len(e.Exceptions))
	for _, ex := range e.Exceptions {
		excluded[ex.TargetDate.UnixMilli()] = struct{}{}
	}

	occurrences := []Occurrence{}
	for _, date := range e.RRule.Expand(from, to) {
		if _, ok := excluded[date.UnixMilli()]; ok {
			continue
		}
		occurrences = append(occurrences, Occurrence{
			ID:       e.ID,
			Title:    e.Title,
			Start:    date,
			End:      date.Add(time.Duration(e.Duration)),
			IsAllDay: e.IsAllDay,
		})
	}

	return occurrences
}
