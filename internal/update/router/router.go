// Package router provides update module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	profileRepo "github.com/teampulse/standup/internal/profile/repository"
	"github.com/teampulse/standup/internal/update/handler"
	"github.com/teampulse/standup/internal/update/repository"
	"github.com/teampulse/standup/internal/update/service"
)

// RegisterRoutes registers update module routes on an auth-gated group.
func RegisterRoutes(r gin.IRoutes, repo repository.Repository, profiles profileRepo.Repository, logger *zap.SugaredLogger) {
	svc := service.New(repo, profiles, logger)
	h := handler.New(svc, logger)

	r.GET("/updates", h.Feed)
	r.POST("/updates", h.Submit)
}
