// Package http содержит компоненты для HTTP сервера.
package http

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"gonotes/internal/notes/adapters/http/api"
	"gonotes/internal/notes/adapters/http/middleware"
	"gonotes/internal/notes/adapters/http/web"
	"gonotes/internal/notes/ports/services"
)

// HealthPath - адрес проверки работоспособности.
const HealthPath = "/healthz"

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, notesService services.NoteService, renderer *web.Renderer) {
	apiHandler := api.NewHandler(notesService)
	webHandler := web.NewHandler(notesService, renderer)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get(HealthPath, func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// API версии 1.
	notesRoutes := app.Group("/api/v1/notes")
	notesRoutes.Get("/", apiHandler.ListNotes)
	notesRoutes.Post("/", apiHandler.CreateNote)
	notesRoutes.Get("/:note_id", apiHandler.GetNote)
	notesRoutes.Put("/:note_id", apiHandler.UpdateNote)
	notesRoutes.Delete("/:note_id", apiHandler.DeleteNote)

	// HTML-страницы.
	webHandler.Register(app)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), middleware.APIPrefix) {
			return api.NotFound(c)
		}
		return webHandler.NotFound(c)
	})
}
