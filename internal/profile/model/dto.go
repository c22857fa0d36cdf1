// Package model provides domain models and DTOs for the profile module.
package model

// SaveProfileRequest represents the body of profile create/update calls.
// The profile id and email are always taken from the authenticated caller,
// never from the request body.
type SaveProfileRequest struct {
	Name string `json:"name" binding:"required"`
	Role Role   `json:"role" binding:"required"`
	Team string `json:"team" binding:"required"`
}

// ProfileResponse represents a single-profile response.
type ProfileResponse struct {
	Profile Profile `json:"profile"`
}

// ProfilesResponse represents the response listing all profiles.
type ProfilesResponse struct {
	Profiles []Profile `json:"profiles"`
	Total    int       `json:"total"`
}

// TeamsResponse represents the response listing distinct team labels.
type TeamsResponse struct {
	Teams []string `json:"teams"`
}
