package services

import (
	"fmt"
	"time"

	"tutorship-api/models"

	"github.com/patrickmn/go-cache"
)

type CacheService struct {
	cache *cache.Cache
}

func NewCacheService(defaultExpiration, cleanupInterval time.Duration) *CacheService {
	return &CacheService{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

func (s *CacheService) Get(key string) (interface{}, bool) {
	return s.cache.Get(key)
}

func (s *CacheService) Set(key string, value interface{}, duration time.Duration) {
	s.cache.Set(key, value, duration)
}

func (s *CacheService) Flush() {
	s.cache.Flush()
}

func (s *CacheService) ItemCount() int {
	return s.cache.ItemCount()
}

// GetGrid достаёт сетку преподавателя, построенную по списку поколения generation
func (s *CacheService) GetGrid(generation uint64, teacher string, order models.RowOrder) (*models.GridResult, bool) {
	cached, found := s.Get(gridCacheKey(generation, teacher, order))
	if !found {
		return nil, false
	}
	result, ok := cached.(*models.GridResult)
	return result, ok
}

func (s *CacheService) SetGrid(generation uint64, result *models.GridResult) {
	s.Set(gridCacheKey(generation, result.Teacher, result.Order), result, cache.DefaultExpiration)
}

func gridCacheKey(generation uint64, teacher string, order models.RowOrder) string {
	return fmt.Sprintf("grid:%d:%s:%s", generation, order, teacher)
}
