package model

import "time"

// DateLayout is the calendar-date format used throughout the update module.
// Dates are stored and compared as date-only strings, so range checks are
// plain lexicographic comparisons with no time-zone component.
const DateLayout = "2006-01-02"

// Update represents a stored daily update in its raw form. Append-only:
// created exactly once per submission, never mutated or deleted. The id is
// derived from the creation timestamp at write time and is not guaranteed
// globally unique under concurrent writers.
type Update struct {
	UpdateID        string    `gorm:"primaryKey;column:update_id;type:varchar(255)"                     json:"id"`
	UserID          string    `gorm:"column:user_id;type:varchar(255);not null;index:idx_updates_user_id" json:"user_id"`
	Date            string    `gorm:"column:date;type:varchar(10);not null;index:idx_updates_date"      json:"date"`
	Accomplishments string    `gorm:"column:accomplishments;type:text;not null"                         json:"accomplishments"`
	CarryForward    string    `gorm:"column:carry_forward;type:text;not null"                           json:"carry_forward"`
	TodayPlans      string    `gorm:"column:today_plans;type:text;not null"                             json:"today_plans"`
	CreatedAt       time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"         json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Update) TableName() string {
	return "updates"
}

// Sentinel labels substituted when an update's owner profile cannot be
// resolved. The record itself is never dropped for this reason.
const (
	UnknownUserLabel = "Unknown User"
	UnknownTeamLabel = "Unknown Team"
)

// EnrichedUpdate is the ephemeral view form of an update: the raw record
// joined with its owner's current display name and team. Never stored;
// recomputed on every read so profile edits are retroactively visible.
type EnrichedUpdate struct {
	UpdateID        string    `json:"id"`
	UserID          string    `json:"user_id"`
	UserName        string    `json:"user_name"`
	Team            string    `json:"team"`
	Date            string    `json:"date"`
	Accomplishments string    `json:"accomplishments"`
	CarryForward    string    `json:"carry_forward"`
	TodayPlans      string    `json:"today_plans"`
	CreatedAt       time.Time `json:"created_at"`
}
