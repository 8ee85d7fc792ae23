package services

import (
	"fmt"
	"strings"
)

const (
	BlockMinutes   = 30
	MinutesPerDay  = 24 * 60
	minutesPerHour = 60
)

// ParseTime переводит "HH:MM" в минуты от полуночи.
// Обе части строго из двух цифр: "8:30", " 08:00" и "+8:00" не принимаются.
func ParseTime(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	hours, ok := parseTwoDigits(parts[0])
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	minutes, ok := parseTwoDigits(parts[1])
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	if hours > 23 || minutes >= minutesPerHour {
		return 0, fmt.Errorf("%w: %q out of range", ErrMalformedTime, s)
	}

	return hours*minutesPerHour + minutes, nil
}

func parseTwoDigits(part string) (int, bool) {
	if len(part) != 2 || !isDigit(part[0]) || !isDigit(part[1]) {
		return 0, false
	}
	return int(part[0]-'0')*10 + int(part[1]-'0'), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// FormatTime переводит минуты от полуночи в "HH:MM".
// Значения вне [0, 1440) не соответствуют времени суток, за это отвечает вызывающий.
func FormatTime(m int) string {
	return fmt.Sprintf("%02d:%02d", m/minutesPerHour, m%minutesPerHour)
}

// BlockCount считает количество получасовых блоков между start и end.
// Ноль и отрицательные значения возвращаются как есть, их отбрасывает построитель сетки.
func BlockCount(start, end string) (int, error) {
	startMinutes, err := ParseTime(start)
	if err != nil {
		return 0, err
	}
	endMinutes, err := ParseTime(end)
	if err != nil {
		return 0, err
	}

	diff := endMinutes - startMinutes
	if diff%BlockMinutes != 0 {
		return 0, fmt.Errorf("%w: %s-%s is not a multiple of %d minutes", ErrInvalidInterval, start, end, BlockMinutes)
	}

	return diff / BlockMinutes, nil
}
