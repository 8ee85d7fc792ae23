package services

import (
	"testing"
	"time"

	"tutorship-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheService_Grid(t *testing.T) {
	cache := NewCacheService(time.Minute, 2*time.Minute)

	_, found := cache.GetGrid(1, "Ana", models.RowOrderFirstSeen)
	assert.False(t, found)

	result := &models.GridResult{Teacher: "Ana", Order: models.RowOrderFirstSeen}
	cache.SetGrid(1, result)

	got, found := cache.GetGrid(1, "Ana", models.RowOrderFirstSeen)
	require.True(t, found)
	assert.Same(t, result, got)

	_, found = cache.GetGrid(1, "Ana", models.RowOrderChronological)
	assert.False(t, found, "orders are cached separately")

	cache.Flush()
	assert.Zero(t, cache.ItemCount())
}

func TestCacheService_GridIsKeyedByGeneration(t *testing.T) {
	cache := NewCacheService(time.Minute, 2*time.Minute)
	cache.SetGrid(1, &models.GridResult{Teacher: "Ana", Order: models.RowOrderFirstSeen})

	_, found := cache.GetGrid(2, "Ana", models.RowOrderFirstSeen)
	assert.False(t, found)

	_, found = cache.Get(gridCacheKey(1, "Ana", models.RowOrderFirstSeen))
	assert.True(t, found)
}

func TestCacheService_WrongTypeIsMiss(t *testing.T) {
	cache := NewCacheService(time.Minute, 2*time.Minute)
	cache.Set(gridCacheKey(1, "Ana", models.RowOrderFirstSeen), "not a grid", 0)

	_, found := cache.GetGrid(1, "Ana", models.RowOrderFirstSeen)
	assert.False(t, found)
}
