package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/teampulse/standup/internal/identity"
	"github.com/teampulse/standup/internal/profile/model"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetOwn(ctx context.Context, ident identity.Identity) (*model.Profile, error) {
	args := m.Called(ctx, ident)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *mockService) Create(ctx context.Context, ident identity.Identity, req *model.SaveProfileRequest) (*model.Profile, error) {
	args := m.Called(ctx, ident, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *mockService) Update(ctx context.Context, ident identity.Identity, req *model.SaveProfileRequest) (*model.Profile, error) {
	args := m.Called(ctx, ident, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *mockService) List(ctx context.Context) (*model.ProfilesResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProfilesResponse), args.Error(1)
}

func (m *mockService) ListTeams(ctx context.Context) (*model.TeamsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamsResponse), args.Error(1)
}

func authAs(ident identity.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("identity", ident)
		c.Next()
	}
}

func setupRouter(svc *mockService, authed bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := New(svc, zap.NewNop().Sugar())
	r := gin.New()
	if authed {
		r.Use(authAs(identity.Identity{UserID: "u1", Email: "alice@example.com"}))
	}
	r.GET("/profile", h.GetOwn)
	r.POST("/profile", h.Create)
	r.PUT("/profile", h.Update)
	r.GET("/profiles", h.List)
	r.GET("/teams", h.ListTeams)
	return r
}

func errorCode(t *testing.T, body *bytes.Buffer) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(body.Bytes(), &resp))
	return resp.Error.Code
}

func storedProfile() *model.Profile {
	return &model.Profile{
		UserID: "u1",
		Name:   "Alice",
		Email:  "alice@example.com",
		Role:   model.RoleEmployee,
		Team:   "Alpha",
	}
}

func TestHandler_GetOwn(t *testing.T) {
	t.Run("returns the caller's profile", func(t *testing.T) {
		svc := new(mockService)
		r := setupRouter(svc, true)

		svc.On("GetOwn", mock.Anything, identity.Identity{UserID: "u1", Email: "alice@example.com"}).
			Return(storedProfile(), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var resp model.ProfileResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "u1", resp.Profile.UserID)
		assert.Equal(t, model.RoleEmployee, resp.Profile.Role)
	})

	t.Run("no profile yet is a 404", func(t *testing.T) {
		svc := new(mockService)
		r := setupRouter(svc, true)

		svc.On("GetOwn", mock.Anything, mock.Anything).Return(nil, model.ErrProfileNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "PROFILE_NOT_FOUND", errorCode(t, w.Body))
	})

	t.Run("no identity in context", func(t *testing.T) {
		svc := new(mockService)
		r := setupRouter(svc, false)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "UNAUTHENTICATED", errorCode(t, w.Body))
	})
}

func TestHandler_Create(t *testing.T) {
	validBody := `{"name":"Alice","role":"employee","team":"Alpha"}`

	t.Run("creates the profile", func(t *testing.T) {
		svc := new(mockService)
		r := setupRouter(svc, true)

		svc.On("Create", mock.Anything, mock.Anything, &model.SaveProfileRequest{
			Name: "Alice", Role: model.RoleEmployee, Team: "Alpha",
		}).Return(storedProfile(), nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/profile", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("existing profile conflicts", func(t *testing.T) {
		svc := new(mockService)
		r := setupRouter(svc, true)

		svc.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, model.ErrProfileExists)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/profile", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "PROFILE_EXISTS", errorCode(t, w.Body))
	})

	t.Run("unknown role in body", func(t *testing.T) {
		svc := new(mockService)
		r := setupRouter(svc, true)

		svc.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, model.ErrInvalidRole)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/profile", bytes.NewBufferString(`{"name":"Alice","role":"admin","team":"Alpha"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_ROLE", errorCode(t, w.Body))
	})

	t.Run("missing required fields", func(t *testing.T) {
		svc := new(mockService)
		r := setupRouter(svc, true)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/profile", bytes.NewBufferString(`{"name":"Alice"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_REQUEST", errorCode(t, w.Body))
		svc.AssertNotCalled(t, "Create")
	})
}

func TestHandler_Update(t *testing.T) {
	validBody := `{"name":"Alice","role":"manager","team":"Beta"}`

	t.Run("replaces the profile", func(t *testing.T) {
		svc := new(mockService)
		r := setupRouter(svc, true)

		updated := storedProfile()
		updated.Role = model.RoleManager
		updated.Team = "Beta"
		svc.On("Update", mock.Anything, mock.Anything, &model.SaveProfileRequest{
			Name: "Alice", Role: model.RoleManager, Team: "Beta",
		}).Return(updated, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/profile", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp model.ProfileResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, model.RoleManager, resp.Profile.Role)
	})

	t.Run("missing profile", func(t *testing.T) {
		svc := new(mockService)
		r := setupRouter(svc, true)

		svc.On("Update", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, model.ErrProfileNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/profile", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "PROFILE_NOT_FOUND", errorCode(t, w.Body))
	})
}

func TestHandler_List(t *testing.T) {
	svc := new(mockService)
	r := setupRouter(svc, true)

	svc.On("List", mock.Anything).Return(&model.ProfilesResponse{
		Profiles: []model.Profile{*storedProfile()},
		Total:    1,
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profiles", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp model.ProfilesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
}

func TestHandler_ListTeams(t *testing.T) {
	t.Run("returns the distinct teams", func(t *testing.T) {
		svc := new(mockService)
		r := setupRouter(svc, true)

		svc.On("ListTeams", mock.Anything).Return(&model.TeamsResponse{Teams: []string{"Alpha", "Beta"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teams", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var resp model.TeamsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, []string{"Alpha", "Beta"}, resp.Teams)
	})

	t.Run("store failure", func(t *testing.T) {
		svc := new(mockService)
		r := setupRouter(svc, true)

		svc.On("ListTeams", mock.Anything).Return(nil, errors.New("database error"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teams", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "INTERNAL_ERROR", errorCode(t, w.Body))
	})
}
