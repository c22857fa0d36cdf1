// Package handler provides HTTP handlers for report endpoints.
package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teampulse/standup/internal/identity"
	profileModel "github.com/teampulse/standup/internal/profile/model"
	"github.com/teampulse/standup/internal/report/service"
	updateHandler "github.com/teampulse/standup/internal/update/handler"
)

// Handler handles HTTP requests for report endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new report handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Summary handles GET /reports/summary. Accepts the same filter query
// parameters as the feed.
func (h *Handler) Summary(c *gin.Context) {
	ident, ok := identity.FromContext(c)
	if !ok {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}

	filter, err := updateHandler.ParseFilter(c)
	if err != nil {
		errorResponse(c, "INVALID_DATE", "dates must be formatted as YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Summary(c.Request.Context(), ident, filter)
	if err != nil {
		h.writeFeedError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Stats handles GET /reports/stats.
func (h *Handler) Stats(c *gin.Context) {
	ident, ok := identity.FromContext(c)
	if !ok {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}

	filter, err := updateHandler.ParseFilter(c)
	if err != nil {
		errorResponse(c, "INVALID_DATE", "dates must be formatted as YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Stats(c.Request.Context(), ident, filter)
	if err != nil {
		h.writeFeedError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Export handles GET /reports/export, returning the report as a plain-text
// attachment whose filename embeds the generation date.
func (h *Handler) Export(c *gin.Context) {
	ident, ok := identity.FromContext(c)
	if !ok {
		errorResponse(c, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized)
		return
	}

	filter, err := updateHandler.ParseFilter(c)
	if err != nil {
		errorResponse(c, "INVALID_DATE", "dates must be formatted as YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	report, err := h.service.Export(c.Request.Context(), ident, filter)
	if err != nil {
		h.writeFeedError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(report.Content))
}

// writeFeedError maps feed-resolution errors shared by all report endpoints.
func (h *Handler) writeFeedError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, profileModel.ErrProfileNotFound):
		notFoundResponse(c, "PROFILE_NOT_FOUND", "profile not found")
	case errors.Is(err, profileModel.ErrInvalidRole):
		errorResponse(c, "INVALID_ROLE", "stored profile has an undefined role", http.StatusInternalServerError)
	default:
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
