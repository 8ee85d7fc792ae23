package handlers

import (
	"net/http"

	"tutorship-api/middleware"
	"tutorship-api/models"
	"tutorship-api/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RosterHandler struct {
	scheduleService *services.ScheduleService
	logger          *zap.Logger
}

func NewRosterHandler(schedule *services.ScheduleService, logger *zap.Logger) *RosterHandler {
	return &RosterHandler{
		scheduleService: schedule,
		logger:          logger,
	}
}

// Refresh заново скачивает документ с консультациями и сбрасывает кэш сеток
func (h *RosterHandler) Refresh(c *gin.Context) {
	log := middleware.GetLogger(c, h.logger)
	log.Info("RosterHandler - Refresh")

	if err := h.scheduleService.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "failed to fetch roster",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.RefreshResponse{
		Message:  "roster refreshed successfully",
		Teachers: len(h.scheduleService.Teachers()),
		LoadedAt: h.scheduleService.LoadedAt(),
	})
}
