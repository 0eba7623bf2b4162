package middleware

import (
	"github.com/gofiber/fiber/v3"

	"gonotes/pkg/logger"
)

// HeaderRequestID - заголовок с идентификатором запроса.
const HeaderRequestID = "X-Request-ID"

// NewRequestIDMiddleware создает промежуточное ПО, которое помещает request_id
// в контекст запроса и возвращает его в заголовке ответа.
func NewRequestIDMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		requestCtx := logger.NewRequestIDContext(c.Context(), c.Get(HeaderRequestID))

		if id, ok := logger.GetRequestID(requestCtx); ok {
			c.Set(HeaderRequestID, id)
		}
		c.Locals(RequestContextKey, requestCtx)

		return c.Next()
	}
}
