// Package repository provides data access layer for the update module.
package repository

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/teampulse/standup/internal/update/model"
)

// Repository defines the interface for update data access operations.
// Updates are append-only: there is no update or delete.
type Repository interface {
	// List returns all updates across all users, unordered.
	List(ctx context.Context) ([]model.Update, error)

	// ListByUser returns all updates owned by the given user.
	ListByUser(ctx context.Context, userID string) ([]model.Update, error)

	// ListByTeam returns all updates whose owner belongs to the given team,
	// resolved against profiles at read time.
	ListByTeam(ctx context.Context, team string) ([]model.Update, error)

	// Create stores a new update, generating the id and creation timestamp
	// at the store boundary.
	Create(ctx context.Context, userID, date, accomplishments, carryForward, todayPlans string) (*model.Update, error)
}

// newUpdateID derives an update id from the creation timestamp. Monotonic
// under a single writer; not guaranteed globally unique under concurrent
// writers.
func newUpdateID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new GORM-backed update repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// List returns all updates, unordered.
func (r *repository) List(ctx context.Context) ([]model.Update, error) {
	r.logger.Debugw("List called")

	var updates []model.Update
	err := r.db.WithContext(ctx).Find(&updates).Error
	if err != nil {
		r.logger.Errorw("List database error", "error", err)
		return nil, err
	}

	if updates == nil {
		updates = []model.Update{}
	}

	return updates, nil
}

// ListByUser returns all updates owned by the given user.
func (r *repository) ListByUser(ctx context.Context, userID string) ([]model.Update, error) {
	r.logger.Debugw("ListByUser called", "user_id", userID)

	var updates []model.Update
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&updates).Error
	if err != nil {
		r.logger.Errorw("ListByUser database error", "user_id", userID, "error", err)
		return nil, err
	}

	if updates == nil {
		updates = []model.Update{}
	}

	r.logger.Debugw("ListByUser completed", "user_id", userID, "count", len(updates))
	return updates, nil
}

// ListByTeam returns all updates whose owner belongs to the given team.
// Team membership is resolved through the profiles table at read time.
func (r *repository) ListByTeam(ctx context.Context, team string) ([]model.Update, error) {
	r.logger.Debugw("ListByTeam called", "team", team)

	var updates []model.Update
	err := r.db.WithContext(ctx).
		Table("updates").
		Select("updates.*").
		Joins("JOIN profiles ON profiles.user_id = updates.user_id").
		Where("profiles.team = ?", team).
		Find(&updates).Error
	if err != nil {
		r.logger.Errorw("ListByTeam database error", "team", team, "error", err)
		return nil, err
	}

	if updates == nil {
		updates = []model.Update{}
	}

	r.logger.Debugw("ListByTeam completed", "team", team, "count", len(updates))
	return updates, nil
}

// Create stores a new update.
func (r *repository) Create(ctx context.Context, userID, date, accomplishments, carryForward, todayPlans string) (*model.Update, error) {
	r.logger.Infow("Create called", "user_id", userID, "date", date)

	now := time.Now()
	update := &model.Update{
		UpdateID:        newUpdateID(now),
		UserID:          userID,
		Date:            date,
		Accomplishments: accomplishments,
		CarryForward:    carryForward,
		TodayPlans:      todayPlans,
		CreatedAt:       now,
	}

	if err := r.db.WithContext(ctx).Create(update).Error; err != nil {
		r.logger.Errorw("Create database error", "user_id", userID, "error", err)
		return nil, err
	}

	r.logger.Infow("Create completed", "user_id", userID, "update_id", update.UpdateID)
	return update, nil
}
