package repository

import (
	"context"
	"sync"
	"time"

	profileRepo "github.com/teampulse/standup/internal/profile/repository"
	"github.com/teampulse/standup/internal/update/model"
)

// memoryRepository is the in-memory store backend. Team membership is
// resolved through the profile repository, mirroring the join the GORM
// backend performs.
type memoryRepository struct {
	mu       sync.RWMutex
	updates  []model.Update
	profiles profileRepo.Repository
}

// NewMemory creates a new in-memory update repository instance.
func NewMemory(profiles profileRepo.Repository) Repository {
	return &memoryRepository{profiles: profiles}
}

// List returns all updates.
func (r *memoryRepository) List(ctx context.Context) ([]model.Update, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	updates := make([]model.Update, len(r.updates))
	copy(updates, r.updates)
	return updates, nil
}

// ListByUser returns all updates owned by the given user.
func (r *memoryRepository) ListByUser(ctx context.Context, userID string) ([]model.Update, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	updates := []model.Update{}
	for _, update := range r.updates {
		if update.UserID == userID {
			updates = append(updates, update)
		}
	}
	return updates, nil
}

// ListByTeam returns all updates whose owner belongs to the given team.
func (r *memoryRepository) ListByTeam(ctx context.Context, team string) ([]model.Update, error) {
	profiles, err := r.profiles.List(ctx)
	if err != nil {
		return nil, err
	}

	members := make(map[string]bool)
	for _, profile := range profiles {
		if profile.Team == team {
			members[profile.UserID] = true
		}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	updates := []model.Update{}
	for _, update := range r.updates {
		if members[update.UserID] {
			updates = append(updates, update)
		}
	}
	return updates, nil
}

// Create stores a new update.
func (r *memoryRepository) Create(ctx context.Context, userID, date, accomplishments, carryForward, todayPlans string) (*model.Update, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	update := model.Update{
		UpdateID:        newUpdateID(now),
		UserID:          userID,
		Date:            date,
		Accomplishments: accomplishments,
		CarryForward:    carryForward,
		TodayPlans:      todayPlans,
		CreatedAt:       now,
	}
	r.updates = append(r.updates, update)
	return &update, nil
}
