// Package resilience содержит защиту вызовов внешних зависимостей:
// предохранитель (circuit breaker) и повтор с экспоненциальной задержкой.
package resilience

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"gonotes/pkg/logger"
)

// State - состояние предохранителя.
type State int

// Состояния предохранителя.
const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

// String возвращает имя состояния для логов.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Константы для логирования.
const (
	LogBreakerStateChange = "circuit breaker state changed"
	LogBreakerReject      = "circuit breaker rejected call"
)

// ErrOpen возвращается, пока предохранитель разомкнут.
var ErrOpen = errors.New("circuit breaker is open")

// BreakerConfig содержит пороги предохранителя.
type BreakerConfig struct {
	// FailureThreshold - число ошибок подряд, после которого цепь размыкается.
	FailureThreshold int
	// Cooldown - время в разомкнутом состоянии до пробного вызова.
	Cooldown time.Duration
	// SuccessThreshold - число успешных пробных вызовов для замыкания цепи.
	SuccessThreshold int
}

// DefaultBreakerConfig возвращает пороги по умолчанию.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: 5,
		Cooldown:         10 * time.Second,
		SuccessThreshold: 2,
	}
}

// Breaker размыкает цепь после серии ошибок и пропускает пробные вызовы
// по истечении Cooldown.
type Breaker struct {
	name   string
	config BreakerConfig
	now    func() time.Time

	mu        sync.Mutex
	state     State
	failures  int
	successes int
	changedAt time.Time
}

// BreakerOption настраивает Breaker.
type BreakerOption func(*Breaker)

// WithBreakerClock подменяет источник времени.
func WithBreakerClock(now func() time.Time) BreakerOption {
	return func(b *Breaker) {
		b.now = now
	}
}

// NewBreaker создает замкнутый предохранитель.
func NewBreaker(name string, config BreakerConfig, opts ...BreakerOption) *Breaker {
	b := &Breaker{
		name:   name,
		config: config,
		now:    time.Now,
		state:  StateClosed,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.changedAt = b.now()
	return b
}

// Execute вызывает fn, если цепь это позволяет, и учитывает результат.
func (b *Breaker) Execute(ctx context.Context, fn func() error) error {
	if !b.allow(ctx) {
		return ErrOpen
	}

	err := fn()
	b.record(ctx, err)
	return err
}

// State возвращает текущее состояние.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) allow(ctx context.Context) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != StateOpen {
		return true
	}

	if b.now().Sub(b.changedAt) < b.config.Cooldown {
		logger.Log(ctx).Debug(ctx, LogBreakerReject, zap.String("breaker", b.name))
		return false
	}

	b.transition(ctx, StateHalfOpen)
	return true
}

func (b *Breaker) record(ctx context.Context, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		b.successes = 0
		b.failures++
		if b.state == StateHalfOpen || b.failures >= b.config.FailureThreshold {
			b.transition(ctx, StateOpen)
		}
		return
	}

	b.failures = 0
	if b.state == StateHalfOpen {
		b.successes++
		if b.successes >= b.config.SuccessThreshold {
			b.transition(ctx, StateClosed)
		}
	}
}

// transition вызывается под b.mu.
func (b *Breaker) transition(ctx context.Context, to State) {
	if b.state == to {
		return
	}

	logger.Log(ctx).Warn(ctx, LogBreakerStateChange,
		zap.String("breaker", b.name),
		zap.Stringer("from", b.state),
		zap.Stringer("to", to),
		zap.Int("failures", b.failures))

	b.state = to
	b.changedAt = b.now()
	b.successes = 0
	if to == StateClosed {
		b.failures = 0
	}
}
