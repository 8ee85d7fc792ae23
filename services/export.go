package services

import (
	"fmt"
	"strings"

	"tutorship-api/models"

	"github.com/xuri/excelize/v2"
)

const maxSheetNameLength = 31

type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// GridToXLSX выгружает сетку в книгу Excel: заголовок "Hora, Lunes..Sábado" и строка на каждый слот
func (s *ExportService) GridToXLSX(result *models.GridResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := s.sheetName(result.Teacher)
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	header := make([]interface{}, 0, models.WeekdayColumns+1)
	header = append(header, "Hora")
	for _, label := range models.WeekdayLabels {
		header = append(header, label)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range result.Rows {
		cells := row.Cells()
		values := make([]interface{}, len(cells))
		for j, cell := range cells {
			values[j] = cell
		}

		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, axis, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %s: %w", row.Label, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetName очищает имя преподавателя от символов, запрещённых в имени листа
func (s *ExportService) sheetName(teacher string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, strings.TrimSpace(teacher))

	runes := []rune(name)
	if len(runes) > maxSheetNameLength {
		name = string(runes[:maxSheetNameLength])
	}
	// Excel не допускает апостроф в начале и в конце имени листа
	name = strings.Trim(name, "'")
	if name == "" {
		return "Horario"
	}
	return name
}
