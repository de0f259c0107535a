package models

import (
	"errors"
	"sort"
	"strings"
)

// Field-level validation errors. The error text doubles as the machine
// readable code surfaced to API clients.
var (
	ErrInvalidEventID          = errors.New("InvalidEventId")
	ErrInvalidCalendarID       = errors.New("InvalidCalendarId")
	ErrInvalidCalendarName     = errors.New("InvalidCalendarName")
	ErrInvalidOwnerID          = errors.New("InvalidOwnerId")
	ErrInvalidTitle            = errors.New("InvalidTitle")
	ErrInvalidStartDate        = errors.New("InvalidStartDate")
	ErrInvalidEndDate          = errors.New("InvalidEndDate")
	ErrInvalidDuration         = errors.New("InvalidDuration")
	ErrInvalidFrequency        = errors.New("InvalidFrequency")
	ErrInvalidRRuleDtstart     = errors.New("InvalidRRuleDtstart")
	ErrInvalidRRuleUntil       = errors.New("InvalidRRuleUntil")
	ErrEmptyRRule              = errors.New("EmptyRRule")
	ErrInvalidExceptionDate    = errors.New("InvalidExceptionDate")
	ErrInvalidExceptionType    = errors.New("InvalidExceptionType")
	ErrInvalidOperationPattern = errors.New("InvalidOperationPattern")
	ErrInvalidDateRange        = errors.New("InvalidDateRange")
)

// Domain errors returned by aggregate operations and workflows.
var (
	ErrExistException    = errors.New("ExistException")
	ErrInvalidTargetDate = errors.New("InvalidTargetDate")
)

// ValidationError accumulates field-level error codes so a caller sees every
// invalid field at once instead of only the first one.
type ValidationError struct {
	fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{fields: make(map[string]string)}
}

// Add records err under field. A nil err is ignored, which lets callers
// funnel every constructor result through Add without branching.
func (ve *ValidationError) Add(field string, err error) {
	if err == nil {
		return
	}
	ve.fields[field] = err.Error()
}

func (ve *ValidationError) addCode(field string, code string) {
	ve.fields[field] = code
}

func (ve *ValidationError) Has(field string) bool {
	_, ok := ve.fields[field]
	return ok
}

func (ve *ValidationError) Valid() bool {
	return len(ve.fields) == 0
}

// Fields returns the accumulated field -> code map.
func (ve *ValidationError) Fields() map[string]string {
	return ve.fields
}

// AsError returns ve as an error, or nil when no field failed. Returning the
// concrete type directly would yield a non-nil error interface.
func (ve *ValidationError) AsError() error {
	if ve.Valid() {
		return nil
	}
	return ve
}

func (ve *ValidationError) Error() string {
	codes := make([]string, 0, len(ve.fields))
	for field, code := range ve.fields {
		codes = append(codes, field+": "+code)
	}
	sort.Strings(codes)
	return strings.Join(codes, ", ")
}
