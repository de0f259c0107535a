package models

import "time"

// OperationPattern selects the scope of an edit or delete on a recurring
// series.
type OperationPattern int

const (
	PatternThis OperationPattern = iota
	PatternFuture
	PatternAll
)

func NewOperationPattern(value int) (OperationPattern, error) {
	switch OperationPattern(value) {
	case PatternThis, PatternFuture, PatternAll:
		return OperationPattern(value), nil
	default:
		return 0, ErrInvalidOperationPattern
	}
}

type ChangeKind string

const (
	KindCreated ChangeKind = "created"
	KindUpdated ChangeKind = "updated"
	KindDeleted ChangeKind = "deleted"
)

// Event is a tagged union on IsRecurring. For single events End is the actual
// end time; for recurring events End mirrors RRule.Until and RRule and
// Exceptions are set. Events are never mutated in place: every operation
// returns fresh values.
type Event struct {
	ID          EventID     `json:"id"`
	CalendarID  CalendarID  `json:"calendarId"`
	Title       Title       `json:"title"`
	Start       time.Time   `json:"start"`
	End         time.Time   `json:"end"`
	Duration    Duration    `json:"duration"`
	IsAllDay    bool        `json:"isAllDay"`
	IsRecurring bool        `json:"isRecurring"`
	RRule       *RRule      `json:"rrule,omitempty"`
	Exceptions  []Exception `json:"exceptions,omitempty"`
}

// UnvalidatedEvent carries raw creation input exactly as received from the
// client.
type UnvalidatedEvent struct {
	CalendarID  string
	Title       string
	Start       string
	End         string
	IsRecurring bool
	IsAllDay    bool
	RRule       *UnvalidatedRRule
}

type UnvalidatedRRule struct {
	Freq  int
	Until string
}

// NewEvent validates raw input into an Event with a freshly generated id and
// an empty exception list. Every invalid field is reported, not just the
// first. A recurring event derives its end from the rule's until; a single
// event requires an explicit end.
func NewEvent(input UnvalidatedEvent) (Event, error) {
	ve := NewValidationError()

	calendarID, err := NewCalendarID(input.CalendarID)
	ve.Add("calendarId", err)

	title, err := NewTitle(input.Title)
	ve.Add("title", err)

	start, err := NewStart(input.Start)
	ve.Add("start", err)

	if !input.IsRecurring {
		end, err := NewEnd(input.End)
		ve.Add("end", err)

		var duration Duration
		if !ve.Has("start") && !ve.Has("end") {
			duration, err = DurationBetween(start, end)
			ve.Add("duration", err)
		}

		if err := ve.AsError(); err != nil {
			return Event{}, err
		}

		return Event{
			ID:          GenerateEventID(),
			CalendarID:  calendarID,
			Title:       title,
			Start:       start,
			End:         end,
			Duration:    duration,
			IsAllDay:    input.IsAllDay,
			IsRecurring: false,
			Exceptions:  []Exception{},
		}, nil
	}

	if input.RRule == nil {
		ve.Add("rrule", ErrEmptyRRule)
		return Event{}, ve
	}

	end, err := NewEnd(input.End)
	ve.Add("end", err)

	// The occurrence duration comes from the explicit start/end pair; the
	// series bound lives in the rule's until.
	var duration Duration
	if !ve.Has("start") && !ve.Has("end") {
		duration, err = DurationBetween(start, end)
		ve.Add("duration", err)
	}

	rule, ruleErr := NewRRule(input.RRule.Freq, input.Start, input.RRule.Until)
	if ruleErr != nil {
		for field, code := range ruleErr.Fields() {
			ve.addCode("rrule."+field, code)
		}
	}

	if err := ve.AsError(); err != nil {
		return Event{}, err
	}

	return Event{
		ID:          GenerateEventID(),
		CalendarID:  calendarID,
		Title:       title,
		Start:       start,
		End:         rule.Until,
		Duration:    duration,
		IsAllDay:    input.IsAllDay,
		IsRecurring: true,
		RRule:       &rule,
		Exceptions:  []Exception{},
	}, nil
}

// UpdateInput is a fully validated edit command.
type UpdateInput struct {
	TargetDate time.Time
	Title      Title
	Start      time.Time
	End        time.Time
	Duration   Duration
	IsAllDay   bool
	Pattern    OperationPattern
}

// EventChange is the outcome of an update: the reworked original plus,
// for series splits and per-occurrence edits, a newly created sibling.
type EventChange struct {
	Update Event
	Create *Event
}

// Update applies an edit and returns the resulting change set. Single events
// ignore the pattern and are replaced field-for-field. Recurring events
// dispatch on the pattern:
//
//   - PatternThis records a "modified" exception and spins off a single event
//     carrying the new values; fails with ErrExistException when the target
//     date already has an exception.
//   - PatternFuture truncates the series at the target date and creates a new
//     recurring event covering the remainder.
//   - PatternAll rewrites the whole series; exceptions are cleared when the
//     start or end time actually changed.
func (e Event) Update(input UpdateInput) (EventChange, error) {
	if !e.IsRecurring {
		updated := e
		updated.Title = input.Title
		updated.Start = input.Start
		updated.End = input.End
		updated.Duration = input.Duration
		updated.IsAllDay = input.IsAllDay
		return EventChange{Update: updated}, nil
	}

	switch input.Pattern {
	case PatternThis:
		return e.updateThis(input)
	case PatternFuture:
		return e.updateFuture(input)
	default:
		return e.updateAll(input)
	}
}

func (e Event) updateThis(input UpdateInput) (EventChange, error) {
	exceptions := dedupeExceptions(e.Exceptions)
	for _, ex := range exceptions {
		if ex.TargetDate.Equal(input.TargetDate) {
			return EventChange{}, ErrExistException
		}
	}

	updated := e
	updated.Exceptions = append(exceptions, Exception{
		TargetDate: input.TargetDate,
		Type:       ExceptionModified,
	})

	// The modified occurrence lives on as its own single event.
	created := Event{
		ID:          GenerateEventID(),
		CalendarID:  e.CalendarID,
		Title:       input.Title,
		Start:       input.Start,
		End:         input.End,
		Duration:    input.Duration,
		IsAllDay:    input.IsAllDay,
		IsRecurring: false,
		Exceptions:  []Exception{},
	}

	return EventChange{Update: updated, Create: &created}, nil
}

func (e Event) updateFuture(input UpdateInput) (EventChange, error) {
	originalUntil := e.RRule.Until

	truncated := *e.RRule
	truncated.Until = input.TargetDate
	updated := e
	updated.RRule = &truncated

	remainder := *e.RRule
	remainder.Dtstart = input.TargetDate
	created := Event{
		ID:          GenerateEventID(),
		CalendarID:  e.CalendarID,
		Title:       input.Title,
		Start:       input.Start,
		End:         originalUntil,
		Duration:    input.Duration,
		IsAllDay:    input.IsAllDay,
		IsRecurring: true,
		RRule:       &remainder,
		Exceptions:  []Exception{},
	}

	return EventChange{Update: updated, Create: &created}, nil
}

func (e Event) updateAll(input UpdateInput) (EventChange, error) {
	timeChanged := !input.Start.Equal(e.Start) || !input.End.Equal(e.End)

	updated := e
	updated.Title = input.Title
	updated.Start = input.Start
	updated.Duration = input.Duration
	updated.IsAllDay = input.IsAllDay
	if timeChanged {
		// A full-series time change invalidates per-occurrence overrides.
		updated.Exceptions = []Exception{}
	}

	return EventChange{Update: updated}, nil
}

// DeleteInput is a fully validated delete command.
type DeleteInput struct {
	TargetDate time.Time
	Pattern    OperationPattern
}

// DeleteResult reports how a delete resolved: either the event is gone
// (KindDeleted) or it survives in reduced form (KindUpdated, Event set).
type DeleteResult struct {
	Kind  ChangeKind
	ID    EventID
	Event *Event
}

// Delete removes occurrences by scope. Single events are always fully
// deleted. For recurring events PatternThis cancels one occurrence via an
// exception, PatternFuture pulls the series' until just before the target
// date, and PatternAll drops the whole series.
func (e Event) Delete(input DeleteInput) (DeleteResult, error) {
	if !e.IsRecurring {
		return DeleteResult{Kind: KindDeleted, ID: e.ID}, nil
	}

	switch input.Pattern {
	case PatternThis:
		updated := e
		updated.Exceptions = dedupeExceptions(append(
			append([]Exception{}, e.Exceptions...),
			Exception{TargetDate: input.TargetDate, Type: ExceptionCancelled},
		))
		return DeleteResult{Kind: KindUpdated, ID: e.ID, Event: &updated}, nil

	case PatternFuture:
		truncated := *e.RRule
		// The target occurrence itself is deleted, so the series must end
		// strictly before it.
		truncated.Until = input.TargetDate.Add(-time.Millisecond)
		updated := e
		updated.RRule = &truncated
		return DeleteResult{Kind: KindUpdated, ID: e.ID, Event: &updated}, nil

	default:
		return DeleteResult{Kind: KindDeleted, ID: e.ID}, nil
	}
}

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// AffectedRange reports which span of occurrences an edit or delete
// invalidates, so cached query windows can be dropped. It must be computed
// before the operation mutates the rule.
func (e Event) AffectedRange(pattern OperationPattern, targetDate time.Time) DateRange {
	if !e.IsRecurring {
		return DateRange{Start: e.Start, End: e.End}
	}

	if pattern == PatternThis {
		return DateRange{Start: targetDate, End: targetDate}
	}
	return DateRange{Start: e.Start, End: e.RRule.Until}
}

// ValidTargetDate reports whether target lands on an actual recurrence
// instance or a recorded exception. Single events accept any target since the
// pattern is ignored for them anyway.
func (e Event) ValidTargetDate(target time.Time) bool {
	if !e.IsRecurring {
		return true
	}

	for _, date := range e.RRule.Expand(StartOfDay(e.Start), EndOfDay(e.End)) {
		if date.Equal(target) {
			return true
		}
	}
	for _, ex := range e.Exceptions {
		if ex.TargetDate.Equal(target) {
			return true
		}
	}
	return false
}
