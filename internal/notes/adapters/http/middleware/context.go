// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"
)

// RequestContextKey - ключ Locals, под которым хранится контекст запроса.
const RequestContextKey = "requestContext"

// RequestContext возвращает контекст запроса с request_id.
func RequestContext(c fiber.Ctx) context.Context {
	if ctx, ok := c.Locals(RequestContextKey).(context.Context); ok {
		return ctx
	}
	return c.Context()
}
