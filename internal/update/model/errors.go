package model

import "errors"

var (
	// ErrInvalidDate indicates a date that does not parse as YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")
	// ErrEmptyUpdate indicates a submission with all three text fields empty.
	ErrEmptyUpdate = errors.New("update must have at least one non-empty field")
)
