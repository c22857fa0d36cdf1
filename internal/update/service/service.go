// Package service provides business logic layer for the update module:
// submission plus the role-scoped aggregation and filter pipeline.
package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/teampulse/standup/internal/identity"
	profileModel "github.com/teampulse/standup/internal/profile/model"
	profileRepo "github.com/teampulse/standup/internal/profile/repository"
	"github.com/teampulse/standup/internal/update/model"
	"github.com/teampulse/standup/internal/update/repository"
)

// Service defines the interface for update business logic operations.
type Service interface {
	// Feed returns the role-scoped, enriched, sorted and filtered feed for
	// the caller. Employees see their own history; managers see their
	// team's. ErrProfileNotFound means the caller has no profile yet.
	Feed(ctx context.Context, ident identity.Identity, filter model.FilterOptions) (*model.FeedResponse, error)

	// Submit stores a new update owned by the authenticated caller and
	// returns it enriched with the caller's own name and team.
	Submit(ctx context.Context, ident identity.Identity, req *model.SubmitUpdateRequest) (*model.SubmitUpdateResponse, error)
}

type service struct {
	repo     repository.Repository
	profiles profileRepo.Repository
	logger   *zap.SugaredLogger
}

// New creates a new update service instance.
func New(repo repository.Repository, profiles profileRepo.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, profiles: profiles, logger: logger}
}

// Feed returns the caller's visible feed.
func (s *service) Feed(ctx context.Context, ident identity.Identity, filter model.FilterOptions) (*model.FeedResponse, error) {
	s.logger.Debugw("Feed called", "user_id", ident.UserID)

	caller, err := s.profiles.GetByID(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}

	raw, err := s.visibleSet(ctx, caller)
	if err != nil {
		s.logger.Errorw("Feed failed to load visible set", "user_id", ident.UserID, "error", err)
		return nil, err
	}

	enriched := s.enrich(ctx, raw)
	sortByDateDesc(enriched)
	enriched = applyFilter(enriched, filter)

	s.logger.Infow("Feed completed", "user_id", ident.UserID, "role", caller.Role, "count", len(enriched))
	return &model.FeedResponse{
		Updates: enriched,
		Total:   len(enriched),
	}, nil
}

// Submit stores a new update owned by the caller.
func (s *service) Submit(ctx context.Context, ident identity.Identity, req *model.SubmitUpdateRequest) (*model.SubmitUpdateResponse, error) {
	s.logger.Debugw("Submit called", "user_id", ident.UserID)

	caller, err := s.profiles.GetByID(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}

	if _, err := time.Parse(model.DateLayout, req.Date); err != nil {
		s.logger.Debugw("Submit validation failed", "user_id", ident.UserID, "date", req.Date)
		return nil, model.ErrInvalidDate
	}

	if req.Accomplishments == "" && req.CarryForward == "" && req.TodayPlans == "" {
		return nil, model.ErrEmptyUpdate
	}

	// The owning id comes from the verified identity, never from the body.
	stored, err := s.repo.Create(ctx, caller.UserID, req.Date, req.Accomplishments, req.CarryForward, req.TodayPlans)
	if err != nil {
		s.logger.Errorw("Submit failed", "user_id", ident.UserID, "error", err)
		return nil, err
	}

	s.logger.Infow("Submit completed", "user_id", ident.UserID, "update_id", stored.UpdateID, "date", stored.Date)

	// The submitter enriches their own record, so the result matches what a
	// fresh fetch would return.
	return &model.SubmitUpdateResponse{
		Update: enrichWith(*stored, caller.Name, caller.Team),
	}, nil
}

// visibleSet resolves role-based visibility: employees see only their own
// updates, managers see their team's. Any other role value is an error.
func (s *service) visibleSet(ctx context.Context, caller *profileModel.Profile) ([]model.Update, error) {
	switch caller.Role {
	case profileModel.RoleEmployee:
		return s.repo.ListByUser(ctx, caller.UserID)
	case profileModel.RoleManager:
		return s.repo.ListByTeam(ctx, caller.Team)
	default:
		s.logger.Errorw("undefined role in stored profile", "user_id", caller.UserID, "role", caller.Role)
		return nil, profileModel.ErrInvalidRole
	}
}

// enrich joins each raw update with its owner's current name and team.
// Owners are resolved per read so later profile edits show up retroactively.
// A missing profile yields sentinel labels; the record is never dropped, so
// the visible count is stable regardless of resolution outcome.
func (s *service) enrich(ctx context.Context, raw []model.Update) []model.EnrichedUpdate {
	owners := make(map[string]*profileModel.Profile)
	enriched := make([]model.EnrichedUpdate, 0, len(raw))

	for _, update := range raw {
		owner, seen := owners[update.UserID]
		if !seen {
			resolved, err := s.profiles.GetByID(ctx, update.UserID)
			if err != nil {
				s.logger.Debugw("owner profile unresolved", "user_id", update.UserID, "error", err)
				resolved = nil
			}
			owners[update.UserID] = resolved
			owner = resolved
		}

		name, team := model.UnknownUserLabel, model.UnknownTeamLabel
		if owner != nil {
			name, team = owner.Name, owner.Team
		}
		enriched = append(enriched, enrichWith(update, name, team))
	}

	return enriched
}

// enrichWith builds the view form of a raw update.
func enrichWith(update model.Update, name, team string) model.EnrichedUpdate {
	return model.EnrichedUpdate{
		UpdateID:        update.UpdateID,
		UserID:          update.UserID,
		UserName:        name,
		Team:            team,
		Date:            update.Date,
		Accomplishments: update.Accomplishments,
		CarryForward:    update.CarryForward,
		TodayPlans:      update.TodayPlans,
		CreatedAt:       update.CreatedAt,
	}
}

// sortByDateDesc orders most recent calendar date first. Equal dates tie-break
// on creation timestamp descending, then id descending, so ordering is
// deterministic.
func sortByDateDesc(updates []model.EnrichedUpdate) {
	sort.SliceStable(updates, func(i, j int) bool {
		if updates[i].Date != updates[j].Date {
			return updates[i].Date > updates[j].Date
		}
		if !updates[i].CreatedAt.Equal(updates[j].CreatedAt) {
			return updates[i].CreatedAt.After(updates[j].CreatedAt)
		}
		return updates[i].UpdateID > updates[j].UpdateID
	})
}

// applyFilter applies the AND of all active conditions. The all-empty case
// returns the input untouched instead of evaluating an always-true predicate.
// Date bounds are inclusive and compared by calendar date only.
func applyFilter(updates []model.EnrichedUpdate, filter model.FilterOptions) []model.EnrichedUpdate {
	if filter.IsEmpty() {
		return updates
	}

	filtered := make([]model.EnrichedUpdate, 0, len(updates))
	for _, update := range updates {
		if filter.Start != "" && update.Date < filter.Start {
			continue
		}
		if filter.End != "" && update.Date > filter.End {
			continue
		}
		if filter.Team != "" && update.Team != filter.Team {
			continue
		}
		if filter.UserID != "" && update.UserID != filter.UserID {
			continue
		}
		filtered = append(filtered, update)
	}

	return filtered
}
