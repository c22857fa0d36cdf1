package model

import "errors"

var (
	// ErrProfileNotFound indicates that the requested profile does not exist.
	// On read paths this is an expected outcome signalling the setup flow.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileExists indicates that a profile with the given id already exists.
	ErrProfileExists = errors.New("profile already exists")
	// ErrInvalidRole indicates a role outside the defined employee/manager values.
	ErrInvalidRole = errors.New("invalid role")
	// ErrInvalidProfile indicates a profile payload that fails validation.
	ErrInvalidProfile = errors.New("invalid profile")
)
