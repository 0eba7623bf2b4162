package web

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/notes/adapters/http/middleware"
	"gonotes/internal/notes/app"
	"gonotes/internal/notes/ports/services"
	"gonotes/pkg/logger"
)

// Маршруты HTML-страниц.
const (
	RouteHome   = "/"
	RouteNew    = "/new"
	RouteNote   = "/note/:id"
	RouteEdit   = "/edit/:id"
	RouteDelete = "/note/:id/delete"

	ParamID     = "id"
	QuerySearch = "q"
	QueryFlash  = "flash"

	FlashCreated = "created"
	FlashUpdated = "updated"
	FlashDeleted = "deleted"

	FieldTitle   = "title"
	FieldContent = "content"
	FieldTags    = "tags"
)

// Заголовки страниц и сообщения формы.
const (
	TitleList     = "Notlarım"
	TitleCreate   = "Yeni Not Ekle"
	TitleEdit     = "Notu Düzenle"
	TitleDelete   = "Notu Sil"
	TitleMissing  = "Not bulunamadı"
	TitleNotFound = "Sayfa Bulunamadı"

	MsgRequiredFields = "Başlık ve içerik boş bırakılamaz"
)

// Handler обслуживает HTML-страницы заметок.
type Handler struct {
	notesService services.NoteService
	renderer     *Renderer
}

// NewHandler создает обработчик страниц.
func NewHandler(notesService services.NoteService, renderer *Renderer) *Handler {
	return &Handler{
		notesService: notesService,
		renderer:     renderer,
	}
}

// Register подключает маршруты страниц к роутеру.
func (h *Handler) Register(router fiber.Router) {
	router.Get(RouteHome, h.List)
	router.Get(RouteNew, h.NewForm)
	router.Post(RouteNew, h.Create)
	router.Get(RouteNote, h.Detail)
	router.Get(RouteEdit, h.EditForm)
	router.Post(RouteEdit, h.Update)
	router.Get(RouteDelete, h.ConfirmDelete)
	router.Post(RouteDelete, h.Delete)
}

// List показывает все заметки или результаты поиска.
func (h *Handler) List(c fiber.Ctx) error {
	ctx := middleware.RequestContext(c)
	query := c.Query(QuerySearch)

	notes, err := h.notesService.ListNotes(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}

	return h.render(c, fiber.StatusOK, PageList, TitleList, ListView{
		Notes: newNoteViews(notes),
		Query: query,
		Total: h.notesService.CountNotes(ctx),
		Flash: flashMessages[c.Query(QueryFlash)],
	})
}

// NewForm показывает пустую форму новой заметки.
func (h *Handler) NewForm(c fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, PageForm, TitleCreate, newCreateForm(app.NoteInput{}, ""))
}

// Create добавляет заметку из формы.
func (h *Handler) Create(c fiber.Ctx) error {
	ctx := middleware.RequestContext(c)
	input, rawTags := formInput(c)

	_, err := h.notesService.CreateNote(ctx, input)
	switch {
	case errors.Is(err, app.ErrInvalidParams):
		form := newCreateForm(input, rawTags)
		form.Error = MsgRequiredFields
		return h.render(c, fiber.StatusUnprocessableEntity, PageForm, TitleCreate, form)
	case err != nil:
		return fmt.Errorf("failed to create note: %w", err)
	}

	return redirectHome(c, FlashCreated)
}

// Detail показывает заметку целиком.
func (h *Handler) Detail(c fiber.Ctx) error {
	ctx := middleware.RequestContext(c)

	note, err := h.notesService.GetNote(ctx, c.Params(ParamID))
	if err != nil {
		return h.handleError(c, err)
	}

	view := newNoteView(note)
	return h.render(c, fiber.StatusOK, PageDetail, view.Title, view)
}

// EditForm показывает форму редактирования существующей заметки.
func (h *Handler) EditForm(c fiber.Ctx) error {
	ctx := middleware.RequestContext(c)

	note, err := h.notesService.GetNote(ctx, c.Params(ParamID))
	if err != nil {
		return h.handleError(c, err)
	}

	input := app.NoteInput{Title: note.Title, Content: note.Content, Tags: note.Tags}
	return h.render(c, fiber.StatusOK, PageForm, TitleEdit, newEditForm(note.ID, input, app.JoinTags(note.Tags)))
}

// Update сохраняет изменения заметки из формы.
func (h *Handler) Update(c fiber.Ctx) error {
	ctx := middleware.RequestContext(c)
	noteID := c.Params(ParamID)
	input, rawTags := formInput(c)

	_, err := h.notesService.UpdateNote(ctx, noteID, input)
	if errors.Is(err, app.ErrInvalidParams) {
		form := newEditForm(noteID, input, rawTags)
		form.Error = MsgRequiredFields
		return h.render(c, fiber.StatusUnprocessableEntity, PageForm, TitleEdit, form)
	}
	if err != nil {
		return h.handleError(c, err)
	}

	return redirectHome(c, FlashUpdated)
}

// ConfirmDelete запрашивает подтверждение удаления.
func (h *Handler) ConfirmDelete(c fiber.Ctx) error {
	ctx := middleware.RequestContext(c)

	note, err := h.notesService.GetNote(ctx, c.Params(ParamID))
	if err != nil {
		return h.handleError(c, err)
	}

	return h.render(c, fiber.StatusOK, PageDelete, TitleDelete, newNoteView(note))
}

// Delete удаляет заметку после подтверждения.
func (h *Handler) Delete(c fiber.Ctx) error {
	ctx := middleware.RequestContext(c)

	if err := h.notesService.DeleteNote(ctx, c.Params(ParamID)); err != nil {
		return h.handleError(c, err)
	}

	return redirectHome(c, FlashDeleted)
}

// NotFound показывает страницу 404 для неизвестных адресов.
func (h *Handler) NotFound(c fiber.Ctx) error {
	return h.render(c, fiber.StatusNotFound, PageNotFound, TitleNotFound, nil)
}

func (h *Handler) handleError(c fiber.Ctx, err error) error {
	if errors.Is(err, app.ErrNotFound) {
		ctx := middleware.RequestContext(c)
		logger.Log(ctx).Debug(ctx, "note not found", zap.String("noteID", c.Params(ParamID)))
		return h.render(c, fiber.StatusNotFound, PageMissing, TitleMissing, nil)
	}
	return fmt.Errorf("note request failed: %w", err)
}

func (h *Handler) render(c fiber.Ctx, status int, page, title string, data any) error {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page, title, data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	c.Type("html", "utf-8")
	if err := c.Status(status).Send(buf.Bytes()); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

func formInput(c fiber.Ctx) (app.NoteInput, string) {
	rawTags := c.FormValue(FieldTags)
	return app.NoteInput{
		Title:   c.FormValue(FieldTitle),
		Content: c.FormValue(FieldContent),
		Tags:    app.ParseTags(rawTags),
	}, rawTags
}

func redirectHome(c fiber.Ctx, flash string) error {
	target := RouteHome + "?" + url.Values{QueryFlash: {flash}}.Encode()
	if err := c.Redirect().Status(fiber.StatusSeeOther).To(target); err != nil {
		return fmt.Errorf("error redirecting: %w", err)
	}
	return nil
}

func editPath(id string) string {
	return "/edit/" + url.PathEscape(id)
}
