// Package model provides domain models and DTOs for the update module.
package model

// SubmitUpdateRequest represents the body of an update submission. The
// owning user id is always taken from the authenticated caller, never from
// the request body.
type SubmitUpdateRequest struct {
	Date            string `json:"date" binding:"required"`
	Accomplishments string `json:"accomplishments"`
	CarryForward    string `json:"carry_forward"`
	TodayPlans      string `json:"today_plans"`
}

// SubmitUpdateResponse represents the response after a submission. The
// enriched record is built from the caller's own profile so the client can
// prepend it and stay consistent with a fresh fetch.
type SubmitUpdateResponse struct {
	Update EnrichedUpdate `json:"update"`
}

// FeedResponse represents the aggregated, role-scoped feed.
type FeedResponse struct {
	Updates []EnrichedUpdate `json:"updates"`
	Total   int              `json:"total"`
}

// FilterOptions is a transient query descriptor. Empty fields mean
// unbounded/all; Start and End are inclusive calendar dates.
type FilterOptions struct {
	Start  string
	End    string
	Team   string
	UserID string
}

// IsEmpty reports whether no filter field is set. The all-empty case
// short-circuits filtering entirely instead of evaluating an always-true
// predicate.
func (f FilterOptions) IsEmpty() bool {
	return f.Start == "" && f.End == "" && f.Team == "" && f.UserID == ""
}
