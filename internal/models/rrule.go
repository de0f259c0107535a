package models

import (
	"time"

	"github.com/teambition/rrule-go"
)

// Frequency values deliberately line up with rrule-go's enumeration, so the
// stored smallint converts straight into an rrule.Frequency.
type Frequency int

const (
	Yearly Frequency = iota
	Monthly
	Weekly
	Daily
)

func NewFrequency(value int) (Frequency, error) {
	switch Frequency(value) {
	case Yearly, Monthly, Weekly, Daily:
		return Frequency(value), nil
	default:
		return 0, ErrInvalidFrequency
	}
}

// RRule is the recurrence rule of a recurring event. Dtstart must be strictly
// before Until.
type RRule struct {
	Freq    Frequency `json:"freq"`
	Dtstart time.Time `json:"dtstart"`
	Until   time.Time `json:"until"`
}

// NewRRule validates a raw rule. The range check fails fast: when both bounds
// parse but dtstart is not strictly before until, no field errors are
// collected. Otherwise every invalid field is reported at once.
func NewRRule(freq int, dtstart string, until string) (RRule, *ValidationError) {
	ds, dsOK := ParseDate(dtstart)
	var utTime time.Time
	utOK := false
	if until != "" {
		utTime, utOK = ParseDate(until)
	}

	ve := NewValidationError()
	if dsOK && utOK && !ds.Before(utTime) {
		ve.Add("until", ErrInvalidRRuleUntil)
		return RRule{}, ve
	}

	frequency, err := NewFrequency(freq)
	ve.Add("freq", err)
	if !dsOK {
		ve.Add("dtstart", ErrInvalidRRuleDtstart)
	}
	if !utOK {
		ve.Add("until", ErrInvalidRRuleUntil)
	}
	if !ve.Valid() {
		return RRule{}, ve
	}

	return RRule{Freq: frequency, Dtstart: ds, Until: utTime}, nil
}

// Expand returns every occurrence start between from and to, both ends
// inclusive, in ascending order. Dates past Until are never produced, no
// matter how far the window extends. The expansion is purely functional; a
// rule that cannot be built (dtstart past until slipped through construction)
// expands to nothing.
func (r RRule) Expand(from, to time.Time) []time.Time {
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.Frequency(r.Freq),
		Dtstart: r.Dtstart,
		Until:   r.Until,
	})
	if err != nil {
		return nil
	}
	return rule.Between(from, to, true)
}
