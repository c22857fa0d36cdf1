// Package service provides business logic layer for the profile module.
package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/teampulse/standup/internal/identity"
	"github.com/teampulse/standup/internal/profile/model"
	"github.com/teampulse/standup/internal/profile/repository"
)

// Service defines the interface for profile business logic operations.
type Service interface {
	// GetOwn returns the caller's own profile. ErrProfileNotFound is a
	// normal outcome signalling that the setup flow should be shown.
	GetOwn(ctx context.Context, ident identity.Identity) (*model.Profile, error)

	// Create creates the caller's profile. Fails with ErrProfileExists if
	// one already exists for the caller's id.
	Create(ctx context.Context, ident identity.Identity, req *model.SaveProfileRequest) (*model.Profile, error)

	// Update fully replaces the caller's profile. Idempotent.
	Update(ctx context.Context, ident identity.Identity, req *model.SaveProfileRequest) (*model.Profile, error)

	// List returns all profiles.
	List(ctx context.Context) (*model.ProfilesResponse, error)

	// ListTeams returns the distinct team labels, sorted.
	ListTeams(ctx context.Context) (*model.TeamsResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new profile service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// GetOwn returns the caller's own profile.
func (s *service) GetOwn(ctx context.Context, ident identity.Identity) (*model.Profile, error) {
	s.logger.Debugw("GetOwn called", "user_id", ident.UserID)

	profile, err := s.repo.GetByID(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// Create creates the caller's profile. The id and email come from the
// verified identity, never from the request body.
func (s *service) Create(ctx context.Context, ident identity.Identity, req *model.SaveProfileRequest) (*model.Profile, error) {
	s.logger.Debugw("Create called", "user_id", ident.UserID)

	profile, err := s.buildProfile(ident, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		s.logger.Errorw("Create failed", "user_id", ident.UserID, "error", err)
		return nil, err
	}

	s.logger.Infow("Create completed", "user_id", ident.UserID, "role", profile.Role, "team", profile.Team)
	return profile, nil
}

// Update fully replaces the caller's profile.
func (s *service) Update(ctx context.Context, ident identity.Identity, req *model.SaveProfileRequest) (*model.Profile, error) {
	s.logger.Debugw("Update called", "user_id", ident.UserID)

	profile, err := s.buildProfile(ident, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, ident.UserID, profile); err != nil {
		s.logger.Errorw("Update failed", "user_id", ident.UserID, "error", err)
		return nil, err
	}

	s.logger.Infow("Update completed", "user_id", ident.UserID, "role", profile.Role, "team", profile.Team)
	return profile, nil
}

// List returns all profiles.
func (s *service) List(ctx context.Context) (*model.ProfilesResponse, error) {
	s.logger.Debugw("List called")

	profiles, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Errorw("List failed", "error", err)
		return nil, err
	}

	return &model.ProfilesResponse{
		Profiles: profiles,
		Total:    len(profiles),
	}, nil
}

// ListTeams returns the distinct team labels, sorted.
func (s *service) ListTeams(ctx context.Context) (*model.TeamsResponse, error) {
	s.logger.Debugw("ListTeams called")

	profiles, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Errorw("ListTeams failed", "error", err)
		return nil, err
	}

	seen := make(map[string]bool)
	teams := []string{}
	for _, profile := range profiles {
		if profile.Team == "" || seen[profile.Team] {
			continue
		}
		seen[profile.Team] = true
		teams = append(teams, profile.Team)
	}
	sort.Strings(teams)

	return &model.TeamsResponse{Teams: teams}, nil
}

// buildProfile assembles the stored profile from the verified identity and
// the request body.
func (s *service) buildProfile(ident identity.Identity, req *model.SaveProfileRequest) (*model.Profile, error) {
	if ident.UserID == "" {
		return nil, model.ErrInvalidProfile
	}
	if !req.Role.Valid() {
		s.logger.Debugw("invalid role rejected", "user_id", ident.UserID, "role", req.Role)
		return nil, model.ErrInvalidRole
	}
	if req.Name == "" || req.Team == "" {
		return nil, model.ErrInvalidProfile
	}

	now := time.Now()
	return &model.Profile{
		UserID:    ident.UserID,
		Name:      req.Name,
		Email:     ident.Email,
		Role:      req.Role,
		Team:      req.Team,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
