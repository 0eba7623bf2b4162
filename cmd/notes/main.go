package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gonotes/internal/notes/adapters/cache"
	httpServer "gonotes/internal/notes/adapters/http"
	"gonotes/internal/notes/adapters/http/web"
	"gonotes/internal/notes/adapters/memory"
	"gonotes/internal/notes/app"
	"gonotes/internal/notes/config"
	portscache "gonotes/internal/notes/ports/cache"
	redisdb "gonotes/pkg/db/redis"
	"gonotes/pkg/logger"
	"gonotes/pkg/resilience"
	"gonotes/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "NOTES_LOGGER_MODE"
	EnvLoggerLevel = "NOTES_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrCreateRedisClient    = "failed to create Redis client"
	ErrInitTemplates        = "failed to parse page templates"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "notes service started"
	LogServiceShutdownDone = "notes service shutdown complete"
	LogStoppingHTTP        = "stopping HTTP server"
	LogInitStore           = "initializing in-memory note store"
	LogInitCache           = "initializing search cache"
	LogCacheDisabled       = "search cache disabled"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == string(logger.Production) {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx, config.DefaultEnvPath)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitStore)
		noteRepo := memory.NewNoteRepository()

		searchCache, err := newSearchCache(ctx, &cfg.Redis)
		if err != nil {
			log.Error(ctx, ErrCreateRedisClient, zap.Error(err))
			exitCode = 1
			return
		}

		noteUseCase := app.NewNoteUseCase(noteRepo, searchCache, cfg.Redis.DefaultTTL)

		renderer, err := web.NewRenderer()
		if err != nil {
			log.Error(ctx, ErrInitTemplates, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitHTTPServer)
		fiberApp := fiber.New(fiber.Config{
			AppName:      config.ServiceName,
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})

		httpServer.SetupRouter(fiberApp, noteUseCase, renderer)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := fiberApp.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			// Закрытие кэша поиска.
			func(ctx context.Context) error {
				log.Info(ctx, "Closing search cache")
				return searchCache.Close()
			},
			// Остановка HTTP сервера.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return fiberApp.ShutdownWithContext(ctx)
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// newSearchCache подключается к Redis, если кэш включен, иначе возвращает пустой кэш.
func newSearchCache(ctx context.Context, cfg *config.RedisConfig) (portscache.Cache, error) {
	log := logger.Log(ctx)

	if !cfg.Enabled {
		log.Info(ctx, LogCacheDisabled)
		return cache.NoopCache{}, nil
	}

	log.Info(ctx, LogInitCache, zap.String("address", cfg.GetAddress()))

	var client *redis.Client
	err := resilience.Retry(ctx, "redis connect", cfg.RetryConfig(), func(ctx context.Context) error {
		var err error
		client, err = redisdb.NewClient(ctx, cfg.ClientConfig())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("redis search cache: %w", err)
	}

	breaker := resilience.NewBreaker("search-cache", cfg.BreakerConfig())
	return cache.NewGuardedCache(cache.NewRedisCache(client, cfg.DefaultTTL), breaker), nil
}
