package cache

import (
	"context"
	"time"

	"gonotes/internal/notes/ports/cache"
)

// NoopCache ничего не хранит. Используется, когда Redis отключен.
type NoopCache struct{}

var _ cache.Cache = NoopCache{}

func (NoopCache) Get(context.Context, string) (string, error) { return "", nil }

func (NoopCache) Set(context.Context, string, string, time.Duration) error { return nil }

func (NoopCache) Delete(context.Context, string) error { return nil }

func (NoopCache) Close() error { return nil }
