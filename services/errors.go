package services

import "errors"

var (
	ErrMalformedTime   = errors.New("malformed time")
	ErrInvalidInterval = errors.New("invalid interval")
	ErrUnknownWeekday  = errors.New("unknown weekday")
	ErrFetchFailure    = errors.New("roster fetch failed")
	ErrTeacherNotFound = errors.New("teacher not found")
	ErrRosterEmpty     = errors.New("roster is empty")
)
