package dtos

import (
	"github.com/xdoubleu/essentia/v2/pkg/validate"

	"calendra.dev/internal/models"
)

// RRuleDto is the raw recurrence rule attached to a recurring event. Dtstart
// is implied by the event's start.
type RRuleDto struct {
	Freq  int    `json:"freq"`
	Until string `json:"until"`
}

type CreateEventDto struct {
	Title       string    `json:"title"`
	Start       string    `json:"start"`
	End         string    `json:"end"`
	IsRecurring bool      `json:"isRecurring"`
	IsAllDay    bool      `json:"isAllDay"`
	RRule       *RRuleDto `json:"rrule"`
}

func (dto CreateEventDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "title", dto.Title, validate.IsNotEmpty)
	validate.Check(v, "start", dto.Start, validate.IsNotEmpty)
	validate.Check(v, "end", dto.End, validate.IsNotEmpty)
	if dto.IsRecurring && dto.RRule != nil {
		validate.Check(v, "rrule.until", dto.RRule.Until, validate.IsNotEmpty)
	}

	return v.Valid(), v.Errors()
}

type UpdateEventDto struct {
	Title      string `json:"title"`
	Start      string `json:"start"`
	End        string `json:"end"`
	TargetDate string `json:"targetDate"`
	IsAllDay   bool   `json:"isAllDay"`
	Pattern    int    `json:"pattern"`
}

func (dto UpdateEventDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "title", dto.Title, validate.IsNotEmpty)
	validate.Check(v, "start", dto.Start, validate.IsNotEmpty)
	validate.Check(v, "end", dto.End, validate.IsNotEmpty)
	validate.Check(v, "targetDate", dto.TargetDate, validate.IsNotEmpty)
	validate.Check(v, "pattern", dto.Pattern, validate.IsInSlice([]int{0, 1, 2}))

	return v.Valid(), v.Errors()
}

// UpdatedEventDto reports an applied edit: the reworked original, the
// sibling created by a split (if any) and the invalidated occurrence range.
type UpdatedEventDto struct {
	Update        models.Event     `json:"update"`
	Create        *models.Event    `json:"create,omitempty"`
	AffectedRange models.DateRange `json:"affectedRange"`
}

type DeleteEventDto struct {
	TargetDate string `json:"targetDate"`
	Pattern    int    `json:"pattern"`
}

// DeletedEventDto reports how a delete resolved. Event is set when the
// series survives in reduced form.
type DeletedEventDto struct {
	ID            models.EventID    `json:"id"`
	Kind          models.ChangeKind `json:"kind"`
	Event         *models.Event     `json:"event,omitempty"`
	AffectedRange models.DateRange  `json:"affectedRange"`
}

func (dto DeleteEventDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "targetDate", dto.TargetDate, validate.IsNotEmpty)
	validate.Check(v, "pattern", dto.Pattern, validate.IsInSlice([]int{0, 1, 2}))

	return v.Valid(), v.Errors()
}
