package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"tutorship-api/middleware"
	"tutorship-api/models"
	"tutorship-api/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ScheduleHandler struct {
	scheduleService *services.ScheduleService
	logger          *zap.Logger
}

func NewScheduleHandler(schedule *services.ScheduleService, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: schedule,
		logger:          logger,
	}
}

// GetDefaultSchedule возвращает сетку первого преподавателя
func (h *ScheduleHandler) GetDefaultSchedule(c *gin.Context) {
	name, ok := h.scheduleService.DefaultTeacher()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"loading": true,
			"error":   "roster is not loaded yet",
		})
		return
	}

	h.respondWithGrid(c, name)
}

// GetTeacherSchedule возвращает сетку выбранного преподавателя
func (h *ScheduleHandler) GetTeacherSchedule(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "name parameter is required",
		})
		return
	}

	h.respondWithGrid(c, name)
}

// ExportTeacherSchedule отдаёт сетку преподавателя файлом XLSX
func (h *ScheduleHandler) ExportTeacherSchedule(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "name parameter is required",
		})
		return
	}

	data, err := h.scheduleService.Export(name)
	if err != nil {
		h.respondWithError(c, name, err)
		return
	}

	c.Header("Content-Disposition", attachmentDisposition(name+".xlsx"))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *ScheduleHandler) respondWithGrid(c *gin.Context, name string) {
	order, ok := parseOrder(c.Query("order"), h.scheduleService.GridOrder())
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid order",
			Message: fmt.Sprintf("order must be %q or %q", models.RowOrderFirstSeen, models.RowOrderChronological),
		})
		return
	}

	result, cached, err := h.scheduleService.SelectInfoOrdered(name, order)
	if err != nil {
		h.respondWithError(c, name, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":   result,
		"cached": cached,
	})
}

func (h *ScheduleHandler) respondWithError(c *gin.Context, name string, err error) {
	if errors.Is(err, services.ErrTeacherNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "teacher not found",
			Message: name,
		})
		return
	}

	middleware.GetLogger(c, h.logger).Error("failed to build schedule", zap.String("teacher", name), zap.Error(err))
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "failed to build schedule",
		Message: err.Error(),
	})
}

func parseOrder(value string, fallback models.RowOrder) (models.RowOrder, bool) {
	switch models.RowOrder(value) {
	case "":
		return fallback, true
	case models.RowOrderFirstSeen, models.RowOrderChronological:
		return models.RowOrder(value), true
	default:
		return "", false
	}
}

// attachmentDisposition отдаёт имя файла дважды: ASCII-заменой в filename
// и полным UTF-8 в filename* (RFC 5987)
func attachmentDisposition(filename string) string {
	fallback := strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e || r == '"' || r == '\\' {
			return '_'
		}
		return r
	}, filename)

	var encoded strings.Builder
	for i := 0; i < len(filename); i++ {
		b := filename[i]
		if isAttrChar(b) {
			encoded.WriteByte(b)
			continue
		}
		fmt.Fprintf(&encoded, "%%%02X", b)
	}

	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, fallback, encoded.String())
}

func isAttrChar(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	}
	return strings.IndexByte("!#$&+-.^_`|~", b) >= 0
}
