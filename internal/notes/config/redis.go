package config

import (
	"time"

	redisdb "gonotes/pkg/db/redis"
	"gonotes/pkg/resilience"
)

// RedisConfig представляет конфигурацию кэша результатов поиска.
type RedisConfig struct {
	Enabled        bool          `yaml:"enabled" env:"NOTES_REDIS_ENABLED" env-default:"false"`
	Host           string        `yaml:"host" env:"NOTES_REDIS_HOST" env-default:"localhost"`
	Port           int           `yaml:"port" env:"NOTES_REDIS_PORT" env-default:"6379"`
	Password       string        `yaml:"password" env:"NOTES_REDIS_PASSWORD" env-default:""`
	DB             int           `yaml:"db" env:"NOTES_REDIS_DB" env-default:"0"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"NOTES_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env:"NOTES_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"NOTES_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	PoolSize       int           `yaml:"pool_size" env:"NOTES_REDIS_POOL_SIZE" env-default:"10"`
	MinIdle        int           `yaml:"min_idle" env:"NOTES_REDIS_MIN_IDLE" env-default:"2"`
	DefaultTTL     time.Duration `yaml:"default_ttl" env:"NOTES_REDIS_DEFAULT_TTL" env-default:"15m"`

	ConnectAttempts  int           `yaml:"connect_attempts" env:"NOTES_REDIS_CONNECT_ATTEMPTS" env-default:"3"`
	BreakerFailures  int           `yaml:"breaker_failures" env:"NOTES_REDIS_BREAKER_FAILURES" env-default:"5"`
	BreakerCooldown  time.Duration `yaml:"breaker_cooldown" env:"NOTES_REDIS_BREAKER_COOLDOWN" env-default:"10s"`
	BreakerSuccesses int           `yaml:"breaker_successes" env:"NOTES_REDIS_BREAKER_SUCCESSES" env-default:"2"`
}

// GetAddress возвращает адрес Redis.
func (c *RedisConfig) GetAddress() string {
	return c.ClientConfig().Address()
}

// ClientConfig преобразует настройки в конфигурацию клиента Redis.
func (c *RedisConfig) ClientConfig() *redisdb.Config {
	return &redisdb.Config{
		Host:           c.Host,
		Port:           c.Port,
		Password:       c.Password,
		DB:             c.DB,
		PoolSize:       c.PoolSize,
		MinIdle:        c.MinIdle,
		ConnectTimeout: c.ConnectTimeout,
		ReadTimeout:    c.ReadTimeout,
		WriteTimeout:   c.WriteTimeout,
	}
}

// BreakerConfig возвращает пороги предохранителя кэша.
func (c *RedisConfig) BreakerConfig() resilience.BreakerConfig {
	return resilience.BreakerConfig{
		FailureThreshold: c.BreakerFailures,
		Cooldown:         c.BreakerCooldown,
		SuccessThreshold: c.BreakerSuccesses,
	}
}

// RetryConfig возвращает параметры повторного подключения.
func (c *RedisConfig) RetryConfig() resilience.RetryConfig {
	retry := resilience.DefaultRetryConfig()
	retry.Attempts = c.ConnectAttempts
	return retry
}
