package handlers

import (
	"net/http"

	"tutorship-api/models"
	"tutorship-api/services"

	"github.com/gin-gonic/gin"
)

type TeacherHandler struct {
	scheduleService *services.ScheduleService
}

func NewTeacherHandler(schedule *services.ScheduleService) *TeacherHandler {
	return &TeacherHandler{
		scheduleService: schedule,
	}
}

// GetTeachers возвращает список имён преподавателей и выбор по умолчанию
func (h *TeacherHandler) GetTeachers(c *gin.Context) {
	defaultName, _ := h.scheduleService.DefaultTeacher()

	c.JSON(http.StatusOK, models.TeacherListResponse{
		Data:     h.scheduleService.Teachers(),
		Default:  defaultName,
		Loading:  h.scheduleService.Loading(),
		LoadedAt: h.scheduleService.LoadedAt(),
	})
}
