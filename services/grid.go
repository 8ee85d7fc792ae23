package services

import (
	"errors"
	"fmt"
	"sort"

	"tutorship-api/models"

	"go.uber.org/zap"
)

const DefaultOccupancyMark = "X"

type GridService struct {
	logger *zap.Logger
	order  models.RowOrder
	mark   string
}

func NewGridService(logger *zap.Logger, order models.RowOrder, mark string) *GridService {
	if order != models.RowOrderChronological {
		order = models.RowOrderFirstSeen
	}
	if mark == "" {
		mark = DefaultOccupancyMark
	}
	return &GridService{
		logger: logger,
		order:  order,
		mark:   mark,
	}
}

func (s *GridService) Order() models.RowOrder {
	return s.order
}

// BuildGrid строит недельную сетку с порядком строк из конфигурации
func (s *GridService) BuildGrid(teacher string, intervals []models.Interval) *models.GridResult {
	return s.BuildGridOrdered(teacher, intervals, s.order)
}

// BuildGridOrdered строит сетку по получасовым слотам.
// Строки идут в порядке первого появления подписи; при RowOrderChronological сортируются по времени.
// Ошибочные интервалы пропускаются и попадают в Skipped, сборка при этом не прерывается.
func (s *GridService) BuildGridOrdered(teacher string, intervals []models.Interval, order models.RowOrder) *models.GridResult {
	result := &models.GridResult{
		Teacher: teacher,
		Order:   order,
		Rows:    make([]models.GridRow, 0),
		Skipped: make([]models.SkippedInterval, 0),
	}
	rowIndex := make(map[string]int)

	for i, interval := range intervals {
		blocks, err := BlockCount(interval.StartTime, interval.EndingTime)
		if err != nil {
			kind := models.SkipInvalidInterval
			if errors.Is(err, ErrMalformedTime) {
				kind = models.SkipMalformedTime
			}
			s.skip(result, i, interval, kind, err)
			continue
		}
		if blocks <= 0 {
			s.skip(result, i, interval, models.SkipInvalidInterval, wrapInvalid(interval))
			continue
		}

		col, err := WeekdayIndex(interval.Day)
		if err != nil {
			s.skip(result, i, interval, models.SkipUnknownWeekday, err)
			continue
		}

		// Время начала уже проверено в BlockCount
		current, _ := ParseTime(interval.StartTime)
		for b := 0; b < blocks; b++ {
			label := FormatTime(current)
			idx, seen := rowIndex[label]
			if !seen {
				result.Rows = append(result.Rows, models.GridRow{
					Label:   label,
					Minutes: current,
				})
				idx = len(result.Rows) - 1
				rowIndex[label] = idx
			}
			result.Rows[idx].Columns[col-1] = s.mark
			current += BlockMinutes
		}
	}

	if order == models.RowOrderChronological {
		sort.SliceStable(result.Rows, func(i, j int) bool {
			return result.Rows[i].Minutes < result.Rows[j].Minutes
		})
	}

	switch {
	case len(result.Rows) == 0:
		result.Status = models.GridStatusEmpty
	case len(result.Skipped) > 0:
		result.Status = models.GridStatusPartial
	default:
		result.Status = models.GridStatusComplete
	}

	return result
}

func (s *GridService) skip(result *models.GridResult, index int, interval models.Interval, kind models.SkipKind, err error) {
	s.logger.Warn("skipping planned interval",
		zap.String("teacher", result.Teacher),
		zap.Int("index", index),
		zap.String("day", interval.Day),
		zap.String("start_time", interval.StartTime),
		zap.String("ending_time", interval.EndingTime),
		zap.String("kind", string(kind)),
		zap.Error(err),
	)
	result.Skipped = append(result.Skipped, models.SkippedInterval{
		Index:    index,
		Interval: interval,
		Kind:     kind,
		Reason:   err.Error(),
	})
}

func wrapInvalid(interval models.Interval) error {
	return fmt.Errorf("%w: %s-%s has no positive duration", ErrInvalidInterval, interval.StartTime, interval.EndingTime)
}
