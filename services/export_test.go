package services

import (
	"bytes"
	"strings"
	"testing"

	"tutorship-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func TestGridToXLSX(t *testing.T) {
	grids := NewGridService(zap.NewNop(), models.RowOrderFirstSeen, "")
	result := grids.BuildGrid("Ana Ruiz", []models.Interval{
		interval("Martes", "09:00", "10:00"),
		interval("Sábado", "09:30", "10:00"),
	})

	data, err := NewExportService().GridToXLSX(result)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Ana Ruiz"}, f.GetSheetList())

	header := []string{"Hora", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}
	for i, want := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		got, err := f.GetCellValue("Ana Ruiz", cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, cell)
	}

	expected := map[string]string{
		"A2": "09:00", "B2": "", "C2": "X", "G2": "",
		"A3": "09:30", "B3": "", "C3": "X", "G3": "X",
		"A4": "",
	}
	for cell, want := range expected {
		got, err := f.GetCellValue("Ana Ruiz", cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, cell)
	}
}

func TestExportSheetName(t *testing.T) {
	s := NewExportService()

	assert.Equal(t, "Horario", s.sheetName("  "))
	assert.Equal(t, "Ana_Ruiz_ _1__", s.sheetName("Ana/Ruiz: [1]?"))
	assert.Len(t, []rune(s.sheetName(strings.Repeat("á", 40))), maxSheetNameLength)
	assert.Equal(t, "Ana", s.sheetName("'Ana'"))
	assert.Equal(t, "O'Brien", s.sheetName("'O'Brien"))
	assert.Equal(t, "Horario", s.sheetName("'''"))
	assert.Equal(t, strings.Repeat("a", maxSheetNameLength-1), s.sheetName(strings.Repeat("a", maxSheetNameLength-1)+"'tail"))
}

func TestGridToXLSX_QuotedTeacherName(t *testing.T) {
	grids := NewGridService(zap.NewNop(), models.RowOrderFirstSeen, "")
	result := grids.BuildGrid("'Ana'", []models.Interval{interval("Lunes", "08:00", "08:30")})

	data, err := NewExportService().GridToXLSX(result)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Ana"}, f.GetSheetList())
	value, err := f.GetCellValue("Ana", "B2")
	require.NoError(t, err)
	assert.Equal(t, "X", value)
}
