package services

import (
	"context"
	"fmt"
	"time"

	"tutorship-api/models"

	"go.uber.org/zap"
)

// ScheduleService связывает хранилище, источник, построитель сетки и кэш.
// Это точки входа для слоя отображения.
type ScheduleService struct {
	roster *RosterStore
	source RosterSource
	grids  *GridService
	cache  *CacheService
	export *ExportService
	logger *zap.Logger
}

func NewScheduleService(roster *RosterStore, source RosterSource, grids *GridService, cache *CacheService, export *ExportService, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{
		roster: roster,
		source: source,
		grids:  grids,
		cache:  cache,
		export: export,
		logger: logger,
	}
}

// Refresh заново загружает список преподавателей.
// При ошибке хранилище не меняется.
func (s *ScheduleService) Refresh(ctx context.Context) error {
	start := time.Now()
	teachers, err := s.source.FetchTeachers(ctx)
	if err != nil {
		s.logger.Error("failed to fetch roster", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return err
	}

	s.roster.Load(teachers)
	s.cache.Flush()

	s.logger.Info("roster loaded",
		zap.Int("teachers", len(teachers)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// Loading сообщает, что данных ещё нет
func (s *ScheduleService) Loading() bool {
	return s.roster.Len() == 0
}

func (s *ScheduleService) Teachers() []string {
	return s.roster.Names()
}

func (s *ScheduleService) DefaultTeacher() (string, bool) {
	teacher, ok := s.roster.Default()
	return teacher.Name, ok
}

func (s *ScheduleService) LoadedAt() time.Time {
	return s.roster.LoadedAt()
}

func (s *ScheduleService) GridOrder() models.RowOrder {
	return s.grids.Order()
}

// SelectInfo строит сетку выбранного преподавателя. Второе значение - взята ли сетка из кэша.
func (s *ScheduleService) SelectInfo(name string) (*models.GridResult, bool, error) {
	return s.SelectInfoOrdered(name, s.grids.Order())
}

// SelectInfoOrdered кэширует сетку под поколением списка, из которого взят преподаватель.
// Сетка, достроенная после Refresh, в кэш нового поколения не попадает.
func (s *ScheduleService) SelectInfoOrdered(name string, order models.RowOrder) (*models.GridResult, bool, error) {
	teacher, generation, err := s.roster.FindByName(name)
	if err != nil {
		return nil, false, err
	}

	if cached, found := s.cache.GetGrid(generation, teacher.Name, order); found {
		return cached, true, nil
	}

	result := s.grids.BuildGridOrdered(teacher.Name, teacher.Intervals, order)
	if generation == s.roster.Generation() {
		s.cache.SetGrid(generation, result)
	}

	return result, false, nil
}

// DefaultInfo строит сетку первого преподавателя в списке
func (s *ScheduleService) DefaultInfo() (*models.GridResult, bool, error) {
	name, ok := s.DefaultTeacher()
	if !ok {
		return nil, false, ErrRosterEmpty
	}
	return s.SelectInfo(name)
}

// Export выгружает сетку преподавателя в XLSX
func (s *ScheduleService) Export(name string) ([]byte, error) {
	result, _, err := s.SelectInfo(name)
	if err != nil {
		return nil, err
	}

	data, err := s.export.GridToXLSX(result)
	if err != nil {
		return nil, fmt.Errorf("failed to export schedule for %q: %w", name, err)
	}
	return data, nil
}
