// Package router provides profile module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teampulse/standup/internal/profile/handler"
	"github.com/teampulse/standup/internal/profile/repository"
	"github.com/teampulse/standup/internal/profile/service"
)

// RegisterRoutes registers profile module routes on an auth-gated group.
func RegisterRoutes(r gin.IRoutes, repo repository.Repository, logger *zap.SugaredLogger) {
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/profile", h.GetOwn)
	r.POST("/profile", h.Create)
	r.PUT("/profile", h.Update)
	r.GET("/profiles", h.List)
	r.GET("/teams", h.ListTeams)
}
