// Package handler provides HTTP handlers for update endpoints.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teampulse/standup/internal/identity"
	profileModel "github.com/teampulse/standup/internal/profile/model"
	"github.com/teampulse/standup/internal/update/model"
	"github.com/teampulse/standup/internal/update/service"
)

// Handler handles HTTP requests for update endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new update handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ParseFilter builds FilterOptions from query parameters, validating date
// bounds against the calendar-date layout.
func ParseFilter(c *gin.Context) (model.FilterOptions, error) {
	filter := model.FilterOptions{
		Start:  c.Query("start"),
		End:    c.Query("end"),
		Team:   c.Query("team"),
		UserID: c.Query("user"),
	}

	if filter.Start != "" {
		if _, err := time.Parse(model.DateLayout, filter.Start); err != nil {
			return model.FilterOptions{}, model.ErrInvalidDate
		}
	}
	if filter.End != "" {
		if _, err := time.Parse(model.DateLayout, filter.End); err != nil {
			return model.FilterOptions{}, model.ErrInvalidDate
		}
	}

	return filter, nil
}

// Feed handles GET /updates. Optional query parameters: start, end
// (inclusive calendar dates), team, user.
func (h *Handler) Feed(c *gin.Context) {
	ident, ok := identity.FromContext(c)
	if !ok {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}

	filter, err := ParseFilter(c)
	if err != nil {
		errorResponse(c, "INVALID_DATE", "dates must be formatted as YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Feed(c.Request.Context(), ident, filter)
	if err != nil {
		switch {
		case errors.Is(err, profileModel.ErrProfileNotFound):
			notFoundResponse(c, "PROFILE_NOT_FOUND", "profile not found")
		case errors.Is(err, profileModel.ErrInvalidRole):
			errorResponse(c, "INVALID_ROLE", "stored profile has an undefined role", http.StatusInternalServerError)
		default:
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Submit handles POST /updates.
func (h *Handler) Submit(c *gin.Context) {
	ident, ok := identity.FromContext(c)
	if !ok {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}

	var req model.SubmitUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), ident, &req)
	if err != nil {
		switch {
		case errors.Is(err, profileModel.ErrProfileNotFound):
			notFoundResponse(c, "PROFILE_NOT_FOUND", "profile not found")
		case errors.Is(err, model.ErrInvalidDate):
			errorResponse(c, "INVALID_DATE", "date must be formatted as YYYY-MM-DD", http.StatusBadRequest)
		case errors.Is(err, model.ErrEmptyUpdate):
			errorResponse(c, "INVALID_REQUEST", "update must have at least one non-empty field", http.StatusBadRequest)
		default:
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}
