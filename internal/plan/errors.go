package plan

import "errors"

var (
	// ErrKeyNotFound indicates a lookup for a day key that the store does not hold.
	ErrKeyNotFound = errors.New("day key not found")

	// ErrEmptyPlan indicates a plan with no days.
	ErrEmptyPlan = errors.New("plan has no days")

	// ErrDuplicateKey indicates the same day key appears more than once.
	ErrDuplicateKey = errors.New("duplicate day key")

	// ErrUnknownDay indicates a day key outside the weekday set.
	ErrUnknownDay = errors.New("unknown day key")

	// ErrInvalidDay indicates a day record missing required fields.
	ErrInvalidDay = errors.New("invalid day record")
)
