// Package handler provides HTTP handlers for profile endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teampulse/standup/internal/identity"
	"github.com/teampulse/standup/internal/profile/model"
	"github.com/teampulse/standup/internal/profile/service"
)

// Handler handles HTTP requests for profile endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new profile handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetOwn handles GET /profile. A 404 here is the signal for the client to
// show the profile setup flow, not a failure.
func (h *Handler) GetOwn(c *gin.Context) {
	ident, ok := identity.FromContext(c)
	if !ok {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}

	profile, err := h.service.GetOwn(c.Request.Context(), ident)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			notFoundResponse(c, "PROFILE_NOT_FOUND", "profile not found")
			return
		}
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, model.ProfileResponse{Profile: *profile})
}

// Create handles POST /profile.
func (h *Handler) Create(c *gin.Context) {
	ident, ok := identity.FromContext(c)
	if !ok {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}

	var req model.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	profile, err := h.service.Create(c.Request.Context(), ident, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrProfileExists):
			errorResponse(c, "PROFILE_EXISTS", "profile already exists", http.StatusConflict)
		case errors.Is(err, model.ErrInvalidRole):
			errorResponse(c, "INVALID_ROLE", "role must be employee or manager", http.StatusBadRequest)
		case errors.Is(err, model.ErrInvalidProfile):
			errorResponse(c, "INVALID_REQUEST", "invalid profile", http.StatusBadRequest)
		default:
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, model.ProfileResponse{Profile: *profile})
}

// Update handles PUT /profile. Full replace of the caller's own profile.
func (h *Handler) Update(c *gin.Context) {
	ident, ok := identity.FromContext(c)
	if !ok {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}

	var req model.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	profile, err := h.service.Update(c.Request.Context(), ident, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrProfileNotFound):
			notFoundResponse(c, "PROFILE_NOT_FOUND", "profile not found")
		case errors.Is(err, model.ErrInvalidRole):
			errorResponse(c, "INVALID_ROLE", "role must be employee or manager", http.StatusBadRequest)
		case errors.Is(err, model.ErrInvalidProfile):
			errorResponse(c, "INVALID_REQUEST", "invalid profile", http.StatusBadRequest)
		default:
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, model.ProfileResponse{Profile: *profile})
}

// List handles GET /profiles.
func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListTeams handles GET /teams.
func (h *Handler) ListTeams(c *gin.Context) {
	resp, err := h.service.ListTeams(c.Request.Context())
	if err != nil {
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
