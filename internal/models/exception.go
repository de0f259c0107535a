package models

import "time"

// ExceptionType marks how a single occurrence of a recurring series deviates:
// "modified" occurrences are replaced by a spun-off single event, "cancelled"
// ones are suppressed entirely.
type ExceptionType string

const (
	ExceptionModified  ExceptionType = "modified"
	ExceptionCancelled ExceptionType = "cancelled"
)

func NewExceptionType(value string) (ExceptionType, error) {
	switch ExceptionType(value) {
	case ExceptionModified, ExceptionCancelled:
		return ExceptionType(value), nil
	default:
		return "", ErrInvalidExceptionType
	}
}

// Exception is a per-date override on a recurring series. An event holds at
// most one exception per target date.
type Exception struct {
	TargetDate time.Time     `json:"targetDate"`
	Type       ExceptionType `json:"type"`
}

func NewExceptionDate(value string) (time.Time, error) {
	t, ok := ParseDate(value)
	if !ok {
		return time.Time{}, ErrInvalidExceptionDate
	}
	return t, nil
}

func NewException(targetDate string, exceptionType string) (Exception, error) {
	ve := NewValidationError()

	date, err := NewExceptionDate(targetDate)
	ve.Add("targetDate", err)

	typ, err := NewExceptionType(exceptionType)
	ve.Add("type", err)

	if err := ve.AsError(); err != nil {
		return Exception{}, err
	}
	return Exception{TargetDate: date, Type: typ}, nil
}

// dedupeExceptions collapses duplicate target dates, first entry wins. The
// exception list is keyed by (event, target date) in storage, so the in-memory
// model keeps the same uniqueness.
func dedupeExceptions(exceptions []Exception) []Exception {
	seen := make(map[int64]struct{}, len(exceptions))
	result := make([]Exception, 0, len(exceptions))
	for _, ex := range exceptions {
		key := ex.TargetDate.UnixMilli()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, ex)
	}
	return result
}
