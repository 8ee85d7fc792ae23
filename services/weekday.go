package services

import (
	"fmt"
	"strings"
	"unicode"

	"tutorship-api/models"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Названия дней приводятся к нижнему регистру без диакритики ("Miércoles" -> "miercoles")
var weekdayColumns = map[string]int{
	"lunes":     models.Monday,
	"martes":    models.Tuesday,
	"miercoles": models.Wednesday,
	"jueves":    models.Thursday,
	"viernes":   models.Friday,
	"sabado":    models.Saturday,

	"monday":    models.Monday,
	"tuesday":   models.Tuesday,
	"wednesday": models.Wednesday,
	"thursday":  models.Thursday,
	"friday":    models.Friday,
	"saturday":  models.Saturday,
}

// WeekdayIndex возвращает номер колонки (1..6) для названия дня недели.
// Воскресенье и неизвестные названия возвращают ErrUnknownWeekday.
func WeekdayIndex(name string) (int, error) {
	key := normalizeWeekday(name)
	if col, ok := weekdayColumns[key]; ok {
		return col, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, name)
}

func normalizeWeekday(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, strings.TrimSpace(name))
	if err != nil {
		stripped = strings.TrimSpace(name)
	}
	return strings.ToLower(stripped)
}
