// Package api содержит HTTP-обработчики JSON API заметок.
package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/notes/adapters/http/middleware"
	"gonotes/internal/notes/app"
	"gonotes/internal/notes/app/dto"
	"gonotes/internal/notes/ports/services"
	"gonotes/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerCreateNote = "handling create note request"
	LogHandlerGetNote    = "handling get note request"
	LogHandlerListNotes  = "handling list notes request"
	LogHandlerUpdateNote = "handling update note request"
	LogHandlerDeleteNote = "handling delete note request"

	ErrMsgInvalidNoteID      = "invalid note id"
	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgNoteNotFound       = "note not found"
	ErrMsgInternal           = "Internal server error"

	ParamNoteID = "note_id"
	QuerySearch = "q"
)

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	notesService services.NoteService
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(notesService services.NoteService) *Handler {
	return &Handler{
		notesService: notesService,
	}
}

// CreateNote обрабатывает запрос на создание новой заметки.
func (h *Handler) CreateNote(c fiber.Ctx) error {
	ctx := middleware.RequestContext(c)
	log := logger.Log(ctx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(ctx, LogHandlerCreateNote)

	var req dto.NoteRequest
	if err := c.Bind().Body(&req); err != nil {
		log.Warn(ctx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendError(c, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	note, err := h.notesService.CreateNote(ctx, toInput(req))
	if err != nil {
		log.Warn(ctx, "failed to create note", zap.Error(err))
		return handleError(c, err)
	}

	if err := c.Status(fiber.StatusCreated).JSON(dto.FromEntity(note)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// GetNote обрабатывает запрос на получение заметки по ID.
func (h *Handler) GetNote(c fiber.Ctx) error {
	ctx := middleware.RequestContext(c)
	log := logger.Log(ctx).With(zap.String("handler", "Handler.GetNote"))
	log.Debug(ctx, LogHandlerGetNote)

	noteID := c.Params(ParamNoteID)
	if noteID == "" {
		return sendError(c, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	note, err := h.notesService.GetNote(ctx, noteID)
	if err != nil {
		log.Debug(ctx, "failed to get note", zap.Error(err))
		return handleError(c, err)
	}

	if err := c.JSON(dto.FromEntity(note)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// ListNotes обрабатывает запрос на получение списка заметок с поиском.
func (h *Handler) ListNotes(c fiber.Ctx) error {
	ctx := middleware.RequestContext(c)
	log := logger.Log(ctx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(ctx, LogHandlerListNotes)

	query := c.Query(QuerySearch)

	notes, err := h.notesService.ListNotes(ctx, query)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return handleError(c, err)
	}

	resp := dto.ListNotesResponse{
		Notes:      dto.FromEntities(notes),
		Query:      query,
		TotalCount: h.notesService.CountNotes(ctx),
	}
	if err := c.JSON(resp); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// UpdateNote обрабатывает запрос на замену заметки.
func (h *Handler) UpdateNote(c fiber.Ctx) error {
	ctx := middleware.RequestContext(c)
	log := logger.Log(ctx).With(zap.String("handler", "Handler.UpdateNote"))
	log.Debug(ctx, LogHandlerUpdateNote)

	noteID := c.Params(ParamNoteID)
	if noteID == "" {
		return sendError(c, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	var req dto.NoteRequest
	if err := c.Bind().Body(&req); err != nil {
		log.Warn(ctx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendError(c, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	note, err := h.notesService.UpdateNote(ctx, noteID, toInput(req))
	if err != nil {
		log.Warn(ctx, "failed to update note", zap.Error(err))
		return handleError(c, err)
	}

	if err := c.JSON(dto.FromEntity(note)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteNote обрабатывает запрос на удаление заметки.
func (h *Handler) DeleteNote(c fiber.Ctx) error {
	ctx := middleware.RequestContext(c)
	log := logger.Log(ctx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(ctx, LogHandlerDeleteNote)

	noteID := c.Params(ParamNoteID)
	if noteID == "" {
		return sendError(c, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	if err := h.notesService.DeleteNote(ctx, noteID); err != nil {
		log.Warn(ctx, "failed to delete note", zap.Error(err))
		return handleError(c, err)
	}

	if err := c.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// NotFound отвечает на запросы к несуществующим маршрутам API.
func NotFound(c fiber.Ctx) error {
	return sendError(c, fiber.StatusNotFound, "Route not found")
}

func toInput(req dto.NoteRequest) app.NoteInput {
	return app.NoteInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	}
}

// handleError преобразует ошибки бизнес-логики в HTTP-статус.
func handleError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, app.ErrNotFound):
		return sendError(c, fiber.StatusNotFound, ErrMsgNoteNotFound)
	case errors.Is(err, app.ErrInvalidParams):
		return sendError(c, fiber.StatusBadRequest, err.Error())
	default:
		return sendError(c, fiber.StatusInternalServerError, ErrMsgInternal)
	}
}

func sendError(c fiber.Ctx, status int, msg string) error {
	if err := c.Status(status).JSON(dto.ErrorResponse{Error: msg}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}
	return nil
}
