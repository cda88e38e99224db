package services

import "errors"

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrInvalidCriteria  = errors.New("invalid filter criteria")
	ErrInvalidPosition  = errors.New("invalid position")
	ErrInvalidHour      = errors.New("hour must be between 0 and 23")
)
