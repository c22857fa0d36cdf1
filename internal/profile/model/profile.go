package model

import (
	"time"

	"gorm.io/gorm"
)

// Role is the access role assigned to a profile. Only the two defined
// values are valid; anything else is treated as a defensive error rather
// than silently defaulting.
type Role string

// Defined roles.
const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

// Valid reports whether the role is one of the defined values.
func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleManager
}

// Profile represents a user profile entity.
// The id is issued by the external identity provider and is immutable once
// the profile exists. Matches the profiles table schema.
type Profile struct {
	UserID    string    `gorm:"primaryKey;column:user_id;type:varchar(255)"              json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"                   json:"name"`
	Email     string    `gorm:"column:email;type:varchar(255);not null"                  json:"email"`
	Role      Role      `gorm:"column:role;type:varchar(32);not null"                    json:"role"`
	Team      string    `gorm:"column:team;type:varchar(255);not null;index:idx_profiles_team" json:"team"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Profile) TableName() string {
	return "profiles"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (p *Profile) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return nil
}
