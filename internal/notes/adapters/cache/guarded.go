package cache

import (
	"context"
	"fmt"
	"time"

	"gonotes/internal/notes/ports/cache"
	"gonotes/pkg/resilience"
)

// GuardedCache пропускает обращения к кэшу через предохранитель.
type GuardedCache struct {
	next    cache.Cache
	breaker *resilience.Breaker
}

var _ cache.Cache = (*GuardedCache)(nil)

// NewGuardedCache оборачивает next предохранителем breaker.
func NewGuardedCache(next cache.Cache, breaker *resilience.Breaker) *GuardedCache {
	return &GuardedCache{
		next:    next,
		breaker: breaker,
	}
}

// Get получает значение, если цепь замкнута.
func (c *GuardedCache) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := c.breaker.Execute(ctx, func() error {
		var err error
		value, err = c.next.Get(ctx, key)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("guarded get: %w", err)
	}
	return value, nil
}

// Set сохраняет значение, если цепь замкнута.
func (c *GuardedCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := c.breaker.Execute(ctx, func() error {
		return c.next.Set(ctx, key, value, ttl)
	}); err != nil {
		return fmt.Errorf("guarded set: %w", err)
	}
	return nil
}

// Delete удаляет значение, если цепь замкнута.
func (c *GuardedCache) Delete(ctx context.Context, key string) error {
	if err := c.breaker.Execute(ctx, func() error {
		return c.next.Delete(ctx, key)
	}); err != nil {
		return fmt.Errorf("guarded delete: %w", err)
	}
	return nil
}

// Close закрывает обернутый кэш независимо от состояния цепи.
func (c *GuardedCache) Close() error {
	if err := c.next.Close(); err != nil {
		return fmt.Errorf("guarded close: %w", err)
	}
	return nil
}
