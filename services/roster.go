package services

import (
	"fmt"
	"sync"
	"time"

	"tutorship-api/models"
)

// RosterStore хранит последний загруженный список преподавателей.
// Load заменяет список целиком, частичных обновлений нет.
// Каждый Load увеличивает поколение, по нему кэш отличает сетки старого списка.
type RosterStore struct {
	mu         sync.RWMutex
	teachers   []models.Teacher
	byName     map[string]int
	loadedAt   time.Time
	generation uint64
}

func NewRosterStore() *RosterStore {
	return &RosterStore{
		byName: make(map[string]int),
	}
}

func (s *RosterStore) Load(teachers []models.Teacher) {
	snapshot := make([]models.Teacher, len(teachers))
	copy(snapshot, teachers)

	index := make(map[string]int, len(snapshot))
	for i, teacher := range snapshot {
		// При повторяющихся именах побеждает первый
		if _, exists := index[teacher.Name]; !exists {
			index[teacher.Name] = i
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.teachers = snapshot
	s.byName = index
	s.loadedAt = time.Now()
	s.generation++
}

// FindByName возвращает преподавателя вместе с поколением списка, из которого он взят
func (s *RosterStore) FindByName(name string) (models.Teacher, uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byName[name]
	if !ok {
		return models.Teacher{}, s.generation, fmt.Errorf("%w: %q", ErrTeacherNotFound, name)
	}
	return s.teachers[idx], s.generation, nil
}

func (s *RosterStore) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Default возвращает первого преподавателя в порядке загрузки
func (s *RosterStore) Default() (models.Teacher, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.teachers) == 0 {
		return models.Teacher{}, false
	}
	return s.teachers[0], true
}

func (s *RosterStore) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.teachers))
	for _, teacher := range s.teachers {
		names = append(names, teacher.Name)
	}
	return names
}

func (s *RosterStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.teachers)
}

func (s *RosterStore) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
