package services

import (
	"testing"

	"tutorship-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTeachers() []models.Teacher {
	return []models.Teacher{
		{Name: "Ana Ruiz", Intervals: []models.Interval{interval("Lunes", "08:00", "09:00")}},
		{Name: "Luis Cortés", Intervals: []models.Interval{interval("Martes", "10:00", "11:00")}},
	}
}

func TestRosterStore_EmptyByDefault(t *testing.T) {
	store := NewRosterStore()

	_, ok := store.Default()
	assert.False(t, ok)
	assert.Zero(t, store.Len())
	assert.Empty(t, store.Names())
	assert.True(t, store.LoadedAt().IsZero())

	_, _, err := store.FindByName("Ana Ruiz")
	assert.ErrorIs(t, err, ErrTeacherNotFound)
}

func TestRosterStore_LoadAndFind(t *testing.T) {
	store := NewRosterStore()
	store.Load(sampleTeachers())

	assert.Equal(t, 2, store.Len())
	assert.Equal(t, []string{"Ana Ruiz", "Luis Cortés"}, store.Names())
	assert.False(t, store.LoadedAt().IsZero())

	def, ok := store.Default()
	require.True(t, ok)
	assert.Equal(t, "Ana Ruiz", def.Name)

	teacher, _, err := store.FindByName("Luis Cortés")
	require.NoError(t, err)
	assert.Equal(t, "Martes", teacher.Intervals[0].Day)

	_, _, err = store.FindByName("Nadie")
	assert.ErrorIs(t, err, ErrTeacherNotFound)
}

func TestRosterStore_LoadReplacesWholesale(t *testing.T) {
	store := NewRosterStore()
	store.Load(sampleTeachers())
	store.Load([]models.Teacher{{Name: "Marta"}})

	assert.Equal(t, []string{"Marta"}, store.Names())
	_, _, err := store.FindByName("Ana Ruiz")
	assert.ErrorIs(t, err, ErrTeacherNotFound)
}

func TestRosterStore_LoadCopiesInput(t *testing.T) {
	teachers := sampleTeachers()
	store := NewRosterStore()
	store.Load(teachers)

	teachers[0] = models.Teacher{Name: "Changed"}

	def, ok := store.Default()
	require.True(t, ok)
	assert.Equal(t, "Ana Ruiz", def.Name)
}

func TestRosterStore_DuplicateNamesFirstWins(t *testing.T) {
	store := NewRosterStore()
	store.Load([]models.Teacher{
		{Name: "Ana", Intervals: []models.Interval{interval("Lunes", "08:00", "09:00")}},
		{Name: "Ana", Intervals: []models.Interval{interval("Viernes", "08:00", "09:00")}},
	})

	teacher, _, err := store.FindByName("Ana")
	require.NoError(t, err)
	assert.Equal(t, "Lunes", teacher.Intervals[0].Day)
}

func TestRosterStore_GenerationAdvancesOnLoad(t *testing.T) {
	store := NewRosterStore()
	assert.Zero(t, store.Generation())

	store.Load(sampleTeachers())
	_, first, err := store.FindByName("Ana Ruiz")
	require.NoError(t, err)
	assert.Equal(t, store.Generation(), first)

	store.Load(sampleTeachers())
	_, second, err := store.FindByName("Ana Ruiz")
	require.NoError(t, err)
	assert.Greater(t, second, first)
}
