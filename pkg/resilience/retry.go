package resilience

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gonotes/pkg/logger"
)

// Константы для логирования.
const (
	LogRetryAttempt   = "operation failed, retrying"
	LogRetryExhausted = "operation failed, retries exhausted"
)

// RetryConfig содержит параметры повторов.
type RetryConfig struct {
	// Attempts - общее число попыток, включая первую.
	Attempts int
	// InitialBackoff - задержка перед второй попыткой.
	InitialBackoff time.Duration
	// MaxBackoff - верхняя граница задержки.
	MaxBackoff time.Duration
	// Factor - множитель задержки после каждой неудачи.
	Factor float64
}

// DefaultRetryConfig возвращает параметры повторов по умолчанию.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		Attempts:       3,
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     time.Second,
		Factor:         2,
	}
}

// Retry вызывает fn до успеха или исчерпания попыток.
// Ошибки отмены контекста не повторяются.
func Retry(ctx context.Context, name string, config RetryConfig, fn func(context.Context) error) error {
	log := logger.Log(ctx).With(zap.String("operation", name))
	backoff := config.InitialBackoff

	var err error
	for attempt := 1; ; attempt++ {
		err = fn(ctx)
		if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		if attempt >= config.Attempts {
			log.Warn(ctx, LogRetryExhausted, zap.Int("attempts", attempt), zap.Error(err))
			return err
		}

		log.Info(ctx, LogRetryAttempt,
			zap.Int("attempt", attempt),
			zap.Duration("backoff", backoff),
			zap.Error(err))

		timer := time.NewTimer(backoff)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("retry %s interrupted: %w", name, ctx.Err())
		}

		backoff = time.Duration(float64(backoff) * config.Factor)
		if backoff > config.MaxBackoff {
			backoff = config.MaxBackoff
		}
	}
}
