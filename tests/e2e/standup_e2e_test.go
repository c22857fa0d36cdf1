//go:build e2e
// +build e2e

package e2e

import (
	"net/http"
	"strings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileResponse struct {
	Profile struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Role string `json:"role"`
		Team string `json:"team"`
	} `json:"profile"`
}

type feedResponse struct {
	Updates []struct {
		UpdateID string `json:"id"`
		UserID   string `json:"user_id"`
		UserName string `json:"user_name"`
		Team     string `json:"team"`
		Date     string `json:"date"`
	} `json:"updates"`
	Total int `json:"total"`
}

func (s *E2ETestSuite) TestProfileLifecycle() {
	// No profile yet: 404 signals the setup flow.
	resp, _ := s.do(http.MethodGet, "/profile", "alice", nil)
	require.Equal(s.T(), http.StatusNotFound, resp.StatusCode)

	s.createProfile("alice", "Alice", "employee", "Platform")

	resp, data := s.do(http.MethodGet, "/profile", "alice", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var profile profileResponse
	decodeJSON(s.T(), data, &profile)
	assert.Equal(s.T(), "alice", profile.Profile.ID)
	assert.Equal(s.T(), "Platform", profile.Profile.Team)

	// Creating again conflicts; updating replaces.
	resp, _ = s.do(http.MethodPost, "/profile", "alice", map[string]string{
		"name": "Alice", "role": "employee", "team": "Platform",
	})
	assert.Equal(s.T(), http.StatusConflict, resp.StatusCode)

	resp, data = s.do(http.MethodPut, "/profile", "alice", map[string]string{
		"name": "Alice", "role": "manager", "team": "Platform",
	})
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	decodeJSON(s.T(), data, &profile)
	assert.Equal(s.T(), "manager", profile.Profile.Role)
}

func (s *E2ETestSuite) TestTeamScopedVisibility() {
	s.createProfile("alice", "Alice", "employee", "Platform")
	s.createProfile("bob", "Bob", "employee", "Platform")
	s.createProfile("mia", "Mia", "manager", "Platform")
	s.createProfile("noah", "Noah", "manager", "Mobile")

	s.submitUpdate("alice", "2024-01-05", "shipped the API")
	s.submitUpdate("bob", "2024-01-06", "fixed the build")

	// Employees see only their own updates.
	resp, data := s.do(http.MethodGet, "/updates", "alice", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var feed feedResponse
	decodeJSON(s.T(), data, &feed)
	require.Equal(s.T(), 1, feed.Total)
	assert.Equal(s.T(), "alice", feed.Updates[0].UserID)
	assert.Equal(s.T(), "Alice", feed.Updates[0].UserName)
	assert.Equal(s.T(), "Platform", feed.Updates[0].Team)

	// The team's manager sees both, newest date first.
	resp, data = s.do(http.MethodGet, "/updates", "mia", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	decodeJSON(s.T(), data, &feed)
	require.Equal(s.T(), 2, feed.Total)
	assert.Equal(s.T(), "2024-01-06", feed.Updates[0].Date)
	assert.Equal(s.T(), "2024-01-05", feed.Updates[1].Date)

	// A manager of another team sees none of it.
	resp, data = s.do(http.MethodGet, "/updates", "noah", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	decodeJSON(s.T(), data, &feed)
	assert.Equal(s.T(), 0, feed.Total)
}

func (s *E2ETestSuite) TestFeedFilters() {
	s.createProfile("alice", "Alice", "employee", "Platform")
	s.createProfile("bob", "Bob", "employee", "Platform")
	s.createProfile("mia", "Mia", "manager", "Platform")

	s.submitUpdate("alice", "2024-01-01", "kickoff")
	s.submitUpdate("alice", "2024-01-15", "midpoint")
	s.submitUpdate("bob", "2024-01-31", "wrap up")
	s.submitUpdate("bob", "2024-02-01", "next month")

	var feed feedResponse

	// Inclusive date range keeps both boundary days.
	resp, data := s.do(http.MethodGet, "/updates?start=2024-01-01&end=2024-01-31", "mia", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	decodeJSON(s.T(), data, &feed)
	assert.Equal(s.T(), 3, feed.Total)

	// User filter narrows to one contributor.
	resp, data = s.do(http.MethodGet, "/updates?user=bob", "mia", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	decodeJSON(s.T(), data, &feed)
	require.Equal(s.T(), 2, feed.Total)
	for _, u := range feed.Updates {
		assert.Equal(s.T(), "bob", u.UserID)
	}

	// Malformed dates are rejected before touching the store.
	resp, _ = s.do(http.MethodGet, "/updates?start=01/01/2024", "mia", nil)
	assert.Equal(s.T(), http.StatusBadRequest, resp.StatusCode)
}

func (s *E2ETestSuite) TestSubmitValidation() {
	s.createProfile("alice", "Alice", "employee", "Platform")

	// A date outside the calendar layout is rejected.
	resp, _ := s.do(http.MethodPost, "/updates", "alice", map[string]string{
		"date": "Jan 5 2024", "accomplishments": "something",
	})
	assert.Equal(s.T(), http.StatusBadRequest, resp.StatusCode)

	// An update with no content is rejected.
	resp, _ = s.do(http.MethodPost, "/updates", "alice", map[string]string{
		"date": "2024-01-05",
	})
	assert.Equal(s.T(), http.StatusBadRequest, resp.StatusCode)

	// Submitting without a profile is a 404.
	resp, _ = s.do(http.MethodPost, "/updates", "stranger", map[string]string{
		"date": "2024-01-05", "accomplishments": "something",
	})
	assert.Equal(s.T(), http.StatusNotFound, resp.StatusCode)
}

func (s *E2ETestSuite) TestAuthRequired() {
	for _, path := range []string{"/profile", "/updates", "/reports/summary", "/reports/export"} {
		resp, data := s.do(http.MethodGet, path, "", nil)
		assert.Equal(s.T(), http.StatusUnauthorized, resp.StatusCode, "path %s: %s", path, string(data))
	}
}

func (s *E2ETestSuite) TestSummaryAndFallback() {
	s.createProfile("alice", "Alice", "employee", "Platform")
	s.submitUpdate("alice", "2024-01-05", "shipped the API")

	// The stub summarizer answers normally.
	resp, data := s.do(http.MethodGet, "/reports/summary", "alice", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var summary struct {
		Summary string `json:"summary"`
	}
	decodeJSON(s.T(), data, &summary)
	assert.Equal(s.T(), "stub summary", summary.Summary)

	// When the summarizer fails the endpoint still succeeds with the
	// locally computed fallback.
	s.summarizerStatus = http.StatusServiceUnavailable
	resp, data = s.do(http.MethodGet, "/reports/summary", "alice", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	decodeJSON(s.T(), data, &summary)
	assert.Contains(s.T(), summary.Summary, "Total Updates: 1")
}

func (s *E2ETestSuite) TestExport() {
	s.createProfile("alice", "Alice", "employee", "Platform")
	s.submitUpdate("alice", "2024-01-05", "shipped the API")

	resp, data := s.do(http.MethodGet, "/reports/export", "alice", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.Contains(s.T(), resp.Header.Get("Content-Disposition"), "daily-updates-report-")
	assert.Contains(s.T(), resp.Header.Get("Content-Type"), "text/plain")

	content := string(data)
	assert.True(s.T(), strings.HasPrefix(content, "Daily Updates Report\n"))
	assert.Contains(s.T(), content, "SUMMARY:")
	assert.Contains(s.T(), content, "DETAILED UPDATES:")
	assert.Contains(s.T(), content, "Employee: Alice")
}

func (s *E2ETestSuite) TestStats() {
	s.createProfile("alice", "Alice", "employee", "Platform")
	s.createProfile("bob", "Bob", "employee", "Platform")
	s.createProfile("mia", "Mia", "manager", "Platform")

	s.submitUpdate("alice", "2024-01-05", "shipped the API")
	s.submitUpdate("bob", "2024-01-05", "fixed the build")

	resp, data := s.do(http.MethodGet, "/reports/stats", "mia", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var stats struct {
		TotalUpdates int `json:"total_updates"`
		Teams        int `json:"teams"`
		Contributors int `json:"contributors"`
	}
	decodeJSON(s.T(), data, &stats)
	assert.Equal(s.T(), 2, stats.TotalUpdates)
	assert.Equal(s.T(), 1, stats.Teams)
	assert.Equal(s.T(), 2, stats.Contributors)
}

func (s *E2ETestSuite) TestTeamsDirectory() {
	s.createProfile("alice", "Alice", "employee", "Platform")
	s.createProfile("noah", "Noah", "manager", "Mobile")

	resp, data := s.do(http.MethodGet, "/teams", "alice", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var teams struct {
		Teams []string `json:"teams"`
	}
	decodeJSON(s.T(), data, &teams)
	assert.Equal(s.T(), []string{"Mobile", "Platform"}, teams.Teams)
}
