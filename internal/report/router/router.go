// Package router provides report module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appConfig "github.com/teampulse/standup/internal/config"
	profileRepo "github.com/teampulse/standup/internal/profile/repository"
	"github.com/teampulse/standup/internal/report/handler"
	"github.com/teampulse/standup/internal/report/service"
	"github.com/teampulse/standup/internal/report/summarizer"
	updateRepo "github.com/teampulse/standup/internal/update/repository"
	updateService "github.com/teampulse/standup/internal/update/service"
)

// RegisterRoutes registers report module routes on an auth-gated group.
func RegisterRoutes(r gin.IRoutes, updates updateRepo.Repository, profiles profileRepo.Repository, cfg appConfig.SummarizerConfig, logger *zap.SugaredLogger) {
	feedSvc := updateService.New(updates, profiles, logger)
	client := summarizer.NewClient(cfg, logger)
	svc := service.New(feedSvc, client, logger)
	h := handler.New(svc, logger)

	r.GET("/reports/summary", h.Summary)
	r.GET("/reports/stats", h.Stats)
	r.GET("/reports/export", h.Export)
}
