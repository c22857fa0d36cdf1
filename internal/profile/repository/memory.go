package repository

import (
	"context"
	"sync"

	"github.com/teampulse/standup/internal/profile/model"
)

// memoryRepository is the in-memory store backend, interchangeable with the
// GORM-backed one behind the same Repository interface.
type memoryRepository struct {
	mu       sync.RWMutex
	profiles map[string]model.Profile
}

// NewMemory creates a new in-memory profile repository instance.
func NewMemory() Repository {
	return &memoryRepository{profiles: make(map[string]model.Profile)}
}

// List returns all profiles, unordered.
func (r *memoryRepository) List(ctx context.Context) ([]model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profiles := make([]model.Profile, 0, len(r.profiles))
	for _, profile := range r.profiles {
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// GetByID finds a profile by user id.
func (r *memoryRepository) GetByID(ctx context.Context, userID string) (*model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[userID]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	return &profile, nil
}

// Create stores a new profile, rejecting duplicates.
func (r *memoryRepository) Create(ctx context.Context, profile *model.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[profile.UserID]; ok {
		return model.ErrProfileExists
	}
	r.profiles[profile.UserID] = *profile
	return nil
}

// Update fully replaces the stored profile. Last write wins.
func (r *memoryRepository) Update(ctx context.Context, userID string, profile *model.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[userID]; !ok {
		return model.ErrProfileNotFound
	}
	stored := *profile
	stored.UserID = userID
	r.profiles[userID] = stored
	return nil
}
