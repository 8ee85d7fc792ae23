package handlers

import (
	"errors"
	"html/template"
	"net/http"

	"tutorship-api/models"
	"tutorship-api/services"

	"github.com/gin-gonic/gin"
)

const PageTemplateName = "schedule.html"

var pageTemplate = template.Must(template.New(PageTemplateName).Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Asesorías</title>
</head>
<body>
<ul id="profesores">
{{- range .Teachers}}
<li><a href="?teacher={{.}}"{{if eq . $.Selected}} class="active"{{end}}>{{.}}</a></li>
{{- end}}
</ul>
{{if .Loading}}
<p id="loading">Cargando...</p>
{{else}}
<h2>{{.Selected}}</h2>
<table>
<thead>
<tr><th scope="col">Hora</th>{{range .Weekdays}}<th scope="col">{{.}}</th>{{end}}</tr>
</thead>
<tbody id="horarios_agendados">
{{- range .Rows}}
<tr><th scope="row" id="{{.Label}}">{{.Label}}</th>{{range .Columns}}<td{{if .}} class="ocupado"{{end}}>{{.}}</td>{{end}}</tr>
{{- end}}
</tbody>
</table>
{{end}}
</body>
</html>
`))

// PageTemplate подключается к роутеру через SetHTMLTemplate
func PageTemplate() *template.Template {
	return pageTemplate
}

type PageHandler struct {
	scheduleService *services.ScheduleService
}

func NewPageHandler(schedule *services.ScheduleService) *PageHandler {
	return &PageHandler{
		scheduleService: schedule,
	}
}

type pageData struct {
	Teachers []string
	Selected string
	Loading  bool
	Weekdays [models.WeekdayColumns]string
	Rows     []models.GridRow
}

// Index показывает список преподавателей и таблицу выбранного
func (h *PageHandler) Index(c *gin.Context) {
	data := pageData{
		Teachers: h.scheduleService.Teachers(),
		Weekdays: models.WeekdayLabels,
		Loading:  h.scheduleService.Loading(),
	}
	if data.Loading {
		c.HTML(http.StatusOK, PageTemplateName, data)
		return
	}

	var (
		result *models.GridResult
		err    error
	)
	if name := c.Query("teacher"); name != "" {
		result, _, err = h.scheduleService.SelectInfo(name)
	} else {
		result, _, err = h.scheduleService.DefaultInfo()
	}

	if errors.Is(err, services.ErrTeacherNotFound) {
		c.String(http.StatusNotFound, "teacher not found")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	data.Selected = result.Teacher
	data.Rows = result.Rows
	c.HTML(http.StatusOK, PageTemplateName, data)
}
