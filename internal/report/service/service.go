// Package service provides business logic layer for the report module:
// summary generation, stats and plain-text export over the caller's
// visible feed.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/teampulse/standup/internal/identity"
	"github.com/teampulse/standup/internal/report/model"
	updateModel "github.com/teampulse/standup/internal/update/model"
	updateService "github.com/teampulse/standup/internal/update/service"
)

// promptBudget bounds the serialized text handed to the summarizer. The cut
// is a plain character truncation and can split a record mid-field; that
// boundary is a documented property of the summarization input, kept as is.
const promptBudget = 1000

const promptPreamble = "Please summarize the following daily updates from our team:\n\n"

const exportDateLayout = "January 2, 2006"

// Summarizer is the external text-summarization call. Any error takes the
// local fallback path.
type Summarizer interface {
	Summarize(ctx context.Context, input string) (string, error)
}

// Service defines the interface for report business logic operations.
type Service interface {
	// Summary generates a summary of the caller's visible feed. Never fails
	// on summarizer errors; those produce the deterministic local fallback.
	Summary(ctx context.Context, ident identity.Identity, filter updateModel.FilterOptions) (*model.SummaryResponse, error)

	// Stats returns aggregate counts over the caller's visible feed.
	Stats(ctx context.Context, ident identity.Identity, filter updateModel.FilterOptions) (*model.StatsResponse, error)

	// Export renders the caller's visible feed as a plain-text report.
	Export(ctx context.Context, ident identity.Identity, filter updateModel.FilterOptions) (*model.ExportedReport, error)
}

type service struct {
	updates    updateService.Service
	summarizer Summarizer
	now        func() time.Time
	logger     *zap.SugaredLogger
}

// New creates a new report service instance.
func New(updates updateService.Service, summarizer Summarizer, logger *zap.SugaredLogger) Service {
	return &service{
		updates:    updates,
		summarizer: summarizer,
		now:        time.Now,
		logger:     logger,
	}
}

// Summary generates a summary of the caller's visible feed.
func (s *service) Summary(ctx context.Context, ident identity.Identity, filter updateModel.FilterOptions) (*model.SummaryResponse, error) {
	s.logger.Debugw("Summary called", "user_id", ident.UserID)

	feed, err := s.updates.Feed(ctx, ident, filter)
	if err != nil {
		return nil, err
	}

	summary := s.generateSummary(ctx, feed.Updates)

	s.logger.Infow("Summary completed", "user_id", ident.UserID, "update_count", len(feed.Updates))
	return &model.SummaryResponse{Summary: summary}, nil
}

// Stats returns aggregate counts over the caller's visible feed.
func (s *service) Stats(ctx context.Context, ident identity.Identity, filter updateModel.FilterOptions) (*model.StatsResponse, error) {
	s.logger.Debugw("Stats called", "user_id", ident.UserID)

	feed, err := s.updates.Feed(ctx, ident, filter)
	if err != nil {
		return nil, err
	}

	return &model.StatsResponse{
		TotalUpdates: len(feed.Updates),
		Teams:        len(distinctTeams(feed.Updates)),
		Contributors: countContributors(feed.Updates),
	}, nil
}

// Export renders the caller's visible feed as a plain-text report document.
func (s *service) Export(ctx context.Context, ident identity.Identity, filter updateModel.FilterOptions) (*model.ExportedReport, error) {
	s.logger.Debugw("Export called", "user_id", ident.UserID)

	feed, err := s.updates.Feed(ctx, ident, filter)
	if err != nil {
		return nil, err
	}

	summary := s.generateSummary(ctx, feed.Updates)
	generatedAt := s.now()

	s.logger.Infow("Export completed", "user_id", ident.UserID, "update_count", len(feed.Updates))
	return &model.ExportedReport{
		Filename: ExportFilename(generatedAt),
		Content:  RenderReport(summary, feed.Updates, generatedAt),
	}, nil
}

// generateSummary calls the external summarizer and falls back to the local
// deterministic summary on any failure. It never returns an error.
func (s *service) generateSummary(ctx context.Context, updates []updateModel.EnrichedUpdate) string {
	prompt := promptPreamble + truncate(SerializeUpdates(updates), promptBudget)

	summary, err := s.summarizer.Summarize(ctx, prompt)
	if err != nil {
		s.logger.Warnw("summarizer failed, using local fallback", "error", err)
		return FallbackSummary(updates)
	}

	return summary
}

// SerializeUpdates renders the enriched set as the summarization input text.
func SerializeUpdates(updates []updateModel.EnrichedUpdate) string {
	blocks := make([]string, 0, len(updates))
	for _, update := range updates {
		blocks = append(blocks, fmt.Sprintf(
			"Team: %s\nEmployee: %s\nDate: %s\nAccomplishments: %s\nCarry Forward: %s\nToday's Plans: %s\n---\n",
			update.Team, update.UserName, update.Date,
			update.Accomplishments, update.CarryForward, update.TodayPlans,
		))
	}
	return strings.Join(blocks, "\n")
}

// truncate cuts the text to the first limit characters.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}

// FallbackSummary builds a summary purely from counts and fixed boilerplate.
// Pure and total: the same update set always yields the same string, with no
// network dependency.
func FallbackSummary(updates []updateModel.EnrichedUpdate) string {
	teams := distinctTeams(updates)

	return fmt.Sprintf(
		"Summary Report:\n\n"+
			"Total Updates: %d\n"+
			"Teams Involved: %s\n"+
			"Active Employees: %d\n\n"+
			"Key Highlights:\n"+
			"- Multiple teams are actively reporting progress\n"+
			"- Regular communication and task tracking is maintained\n"+
			"- Teams are managing carry-forward tasks effectively\n\n"+
			"Note: This is a basic summary. For detailed AI analysis, please check your API configuration.",
		len(updates),
		strings.Join(teams, ", "),
		countContributors(updates),
	)
}

// distinctTeams returns team labels in first-appearance order.
func distinctTeams(updates []updateModel.EnrichedUpdate) []string {
	seen := make(map[string]bool)
	teams := []string{}
	for _, update := range updates {
		if seen[update.Team] {
			continue
		}
		seen[update.Team] = true
		teams = append(teams, update.Team)
	}
	return teams
}

// countContributors counts distinct contributor display names.
func countContributors(updates []updateModel.EnrichedUpdate) int {
	seen := make(map[string]bool)
	for _, update := range updates {
		seen[update.UserName] = true
	}
	return len(seen)
}

// ExportFilename embeds the ISO calendar date of generation.
func ExportFilename(generatedAt time.Time) string {
	return fmt.Sprintf("daily-updates-report-%s.txt", generatedAt.Format("2006-01-02"))
}

// RenderReport produces the plain-text report document. Pure formatting: no
// network or store access. An empty update set and an empty summary still
// yield a well-formed document with header and generation timestamp.
func RenderReport(summary string, updates []updateModel.EnrichedUpdate, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("Daily Updates Report\n")
	b.WriteString("Generated on: " + generatedAt.Format(exportDateLayout) + "\n\n")

	b.WriteString("SUMMARY:\n")
	b.WriteString(summary + "\n\n")

	b.WriteString("DETAILED UPDATES:\n")
	for _, update := range updates {
		b.WriteString("\n")
		b.WriteString("Date: " + formatExportDate(update.Date) + "\n")
		b.WriteString("Employee: " + update.UserName + "\n")
		b.WriteString("Team: " + update.Team + "\n\n")
		b.WriteString("Accomplishments:\n" + update.Accomplishments + "\n\n")
		b.WriteString("Carry Forward:\n" + update.CarryForward + "\n\n")
		b.WriteString("Today's Plans:\n" + update.TodayPlans + "\n\n")
		b.WriteString("---\n")
	}

	return b.String()
}

// formatExportDate renders a stored calendar date in the report's long form,
// leaving unparseable values untouched.
func formatExportDate(date string) string {
	parsed, err := time.Parse(updateModel.DateLayout, date)
	if err != nil {
		return date
	}
	return parsed.Format(exportDateLayout)
}
