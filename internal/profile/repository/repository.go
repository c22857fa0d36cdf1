// Package repository provides data access layer for the profile module.
package repository

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/teampulse/standup/internal/profile/model"
)

// Repository defines the interface for profile data access operations.
// Two interchangeable implementations exist: GORM-backed and in-memory.
type Repository interface {
	// List returns all profiles, unordered.
	List(ctx context.Context) ([]model.Profile, error)

	// GetByID finds a profile by user id.
	GetByID(ctx context.Context, userID string) (*model.Profile, error)

	// Create stores a new profile. The id is pre-assigned by the caller.
	Create(ctx context.Context, profile *model.Profile) error

	// Update fully replaces the stored profile. Idempotent.
	Update(ctx context.Context, userID string, profile *model.Profile) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new GORM-backed profile repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// List returns all profiles, unordered.
func (r *repository) List(ctx context.Context) ([]model.Profile, error) {
	r.logger.Debugw("List called")

	var profiles []model.Profile
	err := r.db.WithContext(ctx).Find(&profiles).Error
	if err != nil {
		r.logger.Errorw("List database error", "error", err)
		return nil, err
	}

	if profiles == nil {
		profiles = []model.Profile{}
	}

	return profiles, nil
}

// GetByID finds a profile by user id.
func (r *repository) GetByID(ctx context.Context, userID string) (*model.Profile, error) {
	r.logger.Debugw("GetByID called", "user_id", userID)

	var profile model.Profile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw("GetByID profile not found", "user_id", userID)
			return nil, model.ErrProfileNotFound
		}
		r.logger.Errorw("GetByID database error", "user_id", userID, "error", err)
		return nil, err
	}

	return &profile, nil
}

// Create stores a new profile. Duplicate ids surface as ErrProfileExists,
// backed by the primary-key constraint.
func (r *repository) Create(ctx context.Context, profile *model.Profile) error {
	r.logger.Infow("Create called", "user_id", profile.UserID)

	err := r.db.WithContext(ctx).Create(profile).Error
	if err != nil {
		if isDuplicateError(err) {
			r.logger.Debugw("Create duplicate profile", "user_id", profile.UserID)
			return model.ErrProfileExists
		}
		r.logger.Errorw("Create database error", "user_id", profile.UserID, "error", err)
		return err
	}

	r.logger.Infow("Create completed", "user_id", profile.UserID)
	return nil
}

// Update fully replaces the stored profile.
func (r *repository) Update(ctx context.Context, userID string, profile *model.Profile) error {
	r.logger.Infow("Update called", "user_id", userID)

	result := r.db.WithContext(ctx).
		Model(&model.Profile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"name":  profile.Name,
			"email": profile.Email,
			"role":  profile.Role,
			"team":  profile.Team,
		})

	if result.Error != nil {
		r.logger.Errorw("Update database error", "user_id", userID, "error", result.Error)
		return result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.Debugw("Update profile not found", "user_id", userID)
		return model.ErrProfileNotFound
	}

	r.logger.Infow("Update completed", "user_id", userID)
	return nil
}

// isDuplicateError checks if the error is a duplicate key violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}
