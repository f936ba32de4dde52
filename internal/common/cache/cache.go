package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"table-booking-backend/internal/platform/redis"
)

// Ключи горячих списков. Инвалидация обязана выполняться после каждой
// мутации соответствующей сущности, иначе кэш расходится с хранилищем.
const (
	KeyBookingList  = "booking_list"
	KeyQuestionList = "question_list"
)

// DefaultListTTL ограничивает время жизни списков на случай пропущенной инвалидации.
const DefaultListTTL = 15 * time.Minute

type CacheService struct {
	redisClient *redis.Client
}

func NewCacheService(redisClient *redis.Client) *CacheService {
	return &CacheService{
		redisClient: redisClient,
	}
}

// Get получает значение из кэша
func (c *CacheService) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.redisClient.Get(ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(data), dest)
}

// Set сохраняет значение в кэш
func (c *CacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return c.redisClient.Set(ctx, key, string(data), ttl).Err()
}

// Delete удаляет значение из кэша
func (c *CacheService) Delete(ctx context.Context, key string) error {
	return c.redisClient.Del(ctx, key).Err()
}

// Exists проверяет существование ключа
func (c *CacheService) Exists(ctx context.Context, key string) (bool, error) {
	result, err := c.redisClient.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return result > 0, nil
}

// GetOrSet получает значение из кэша или устанавливает новое
func (c *CacheService) GetOrSet(ctx context.Context, key string, dest interface{}, ttl time.Duration, setter func() (interface{}, error)) error {
	// Пытаемся получить из кэша
	err := c.Get(ctx, key, dest)
	if err == nil {
		return nil
	}

	// Если не найдено, вызываем setter
	value, err := setter()
	if err != nil {
		return err
	}

	// Сохраняем в кэш
	err = c.Set(ctx, key, value, ttl)
	if err != nil {
		return err
	}

	// Копируем значение в dest
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// InvalidateBookingList инвалидирует кэш списка бронирований
func (c *CacheService) InvalidateBookingList(ctx context.Context) error {
	return c.Delete(ctx, KeyBookingList)
}

// InvalidateQuestionList инвалидирует кэш списка вопросов
func (c *CacheService) InvalidateQuestionList(ctx context.Context) error {
	return c.Delete(ctx, KeyQuestionList)
}
