package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"nexo/internal/models"

	"github.com/redis/go-redis/v9"
)

// CacheService is a read-through cache for member documents. Profile
// reads dominate this workload (directory, showcase, auth middleware),
// so members are cached by id and email with invalidation on write.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// Key generation
func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// Member caching
func (s *CacheService) CacheMember(ctx context.Context, member *models.Member) error {
	if member == nil {
		return errors.New("cannot cache nil member")
	}

	keys := []string{
		s.GenerateKey("member", "id", member.ID),
		s.GenerateKey("member", "email", member.Email),
	}

	for _, key := range keys {
		if err := s.Set(ctx, key, member); err != nil {
			return err
		}
	}
	return nil
}

func (s *CacheService) GetMember(ctx context.Context, key string) (*models.Member, error) {
	var member models.Member
	found, err := s.Get(ctx, key, &member)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.New("member not found in cache")
	}
	return &member, nil
}

// InvalidateMember drops all cache entries for a member.
func (s *CacheService) InvalidateMember(ctx context.Context, memberID uint) error {
	member, err := s.GetMember(ctx, s.GenerateKey("member", "id", memberID))
	if err != nil {
		// Not cached; nothing to invalidate.
		return nil
	}

	return s.Delete(ctx,
		s.GenerateKey("member", "id", memberID),
		s.GenerateKey("member", "email", member.Email),
	)
}

// FlushAll flushes all keys from the cache
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

// Close closes the Redis client connection
func (s *CacheService) Close() error {
	return s.client.Close()
}
