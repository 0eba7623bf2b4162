package middleware

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/pkg/logger"
)

// APIPrefix - префикс маршрутов JSON API.
const APIPrefix = "/api/"

// NewRecoveryMiddleware создает новое промежуточное ПО для восстановления после паники.
func NewRecoveryMiddleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		requestCtx := RequestContext(c)

		defer func() {
			r := recover()
			if r == nil {
				return
			}

			log := logger.Log(requestCtx)
			log.Error(requestCtx, "Server panic",
				zap.String("error", fmt.Sprintf("%v", r)),
				zap.String("stack", string(debug.Stack())),
			)

			c.Status(fiber.StatusInternalServerError)
			if strings.HasPrefix(c.Path(), APIPrefix) {
				err = c.JSON(fiber.Map{"error": "Internal Server Error"})
			} else {
				err = c.SendString("Internal Server Error")
			}
			if err != nil {
				log.Error(requestCtx, "Failed to send error response after panic", zap.Error(err))
			}
		}()

		return c.Next()
	}
}
