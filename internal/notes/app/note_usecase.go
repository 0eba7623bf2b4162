// Package app реализует бизнес-логику сервиса заметок.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/domain/search"
	"gonotes/internal/notes/ports/cache"
	"gonotes/internal/notes/ports/repositories"
	"gonotes/pkg/logger"
)

// Ошибки уровня бизнес-логики.
var (
	ErrNotFound      = errors.New("note not found")
	ErrInvalidParams = errors.New("invalid parameters")
)

// Константы для логирования.
const (
	LogNoteCreated    = "note created"
	LogNoteUpdated    = "note updated"
	LogNoteDeleted    = "note deleted"
	LogSearchCacheHit = "search cache hit"

	ErrMsgCacheRead   = "failed to read search cache"
	ErrMsgCacheWrite  = "failed to write search cache"
	ErrMsgCacheDecode = "failed to decode cached search result"

	searchKeyPrefix = "notes:search"
)

// NoteInput содержит данные формы заметки.
type NoteInput struct {
	Title   string
	Content string
	Tags    []string
}

// NoteUseCase представляет собой бизнес-логику работы с заметками.
type NoteUseCase struct {
	noteRepo repositories.NoteRepository
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
// cache может быть nil, тогда результаты поиска не кэшируются.
func NewNoteUseCase(noteRepo repositories.NoteRepository, searchCache cache.Cache, cacheTTL time.Duration) *NoteUseCase {
	return &NoteUseCase{
		noteRepo: noteRepo,
		cache:    searchCache,
		cacheTTL: cacheTTL,
	}
}

// CreateNote проверяет ввод и добавляет новую заметку.
func (uc *NoteUseCase) CreateNote(ctx context.Context, input NoteInput) (*entities.Note, error) {
	input, err := validate(input)
	if err != nil {
		return nil, err
	}

	note := uc.noteRepo.Add(ctx, input.Title, input.Content, input.Tags)

	logger.Log(ctx).Info(ctx, LogNoteCreated, zap.String("noteID", note.ID))
	return note, nil
}

// GetNote возвращает заметку по ID.
func (uc *NoteUseCase) GetNote(ctx context.Context, noteID string) (*entities.Note, error) {
	note, ok := uc.noteRepo.FindByID(ctx, noteID)
	if !ok {
		return nil, ErrNotFound
	}
	return note, nil
}

// ListNotes возвращает заметки, подходящие под запрос, в порядке добавления.
func (uc *NoteUseCase) ListNotes(ctx context.Context, query string) ([]*entities.Note, error) {
	revision := uc.noteRepo.Revision()
	notes := uc.noteRepo.List(ctx)

	if query == "" || uc.cache == nil {
		return search.Filter(query, notes), nil
	}

	key := searchKey(revision, query)
	if cached, ok := uc.cachedResult(ctx, key, notes); ok {
		return cached, nil
	}

	result := search.Filter(query, notes)
	uc.storeResult(ctx, key, result)

	return result, nil
}

// CountNotes возвращает общее количество заметок.
func (uc *NoteUseCase) CountNotes(ctx context.Context) int {
	return len(uc.noteRepo.List(ctx))
}

// UpdateNote проверяет ввод и обновляет существующую заметку.
func (uc *NoteUseCase) UpdateNote(ctx context.Context, noteID string, input NoteInput) (*entities.Note, error) {
	input, err := validate(input)
	if err != nil {
		return nil, err
	}

	if !uc.noteRepo.Update(ctx, noteID, input.Title, input.Content, input.Tags) {
		return nil, ErrNotFound
	}

	note, ok := uc.noteRepo.FindByID(ctx, noteID)
	if !ok {
		return nil, ErrNotFound
	}

	logger.Log(ctx).Info(ctx, LogNoteUpdated, zap.String("noteID", noteID))
	return note, nil
}

// DeleteNote удаляет заметку.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, noteID string) error {
	if !uc.noteRepo.Delete(ctx, noteID) {
		return ErrNotFound
	}

	logger.Log(ctx).Info(ctx, LogNoteDeleted, zap.String("noteID", noteID))
	return nil
}

func (uc *NoteUseCase) cachedResult(ctx context.Context, key string, notes []*entities.Note) ([]*entities.Note, bool) {
	log := logger.Log(ctx).With(zap.String("key", key))

	raw, err := uc.cache.Get(ctx, key)
	if err != nil {
		log.Warn(ctx, ErrMsgCacheRead, zap.Error(err))
		return nil, false
	}
	if raw == "" {
		return nil, false
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		log.Warn(ctx, ErrMsgCacheDecode, zap.Error(err))
		return nil, false
	}

	byID := make(map[string]*entities.Note, len(notes))
	for _, note := range notes {
		byID[note.ID] = note
	}

	result := make([]*entities.Note, 0, len(ids))
	for _, id := range ids {
		note, ok := byID[id]
		if !ok {
			return nil, false
		}
		result = append(result, note)
	}

	log.Debug(ctx, LogSearchCacheHit, zap.Int("count", len(result)))
	return result, true
}

func (uc *NoteUseCase) storeResult(ctx context.Context, key string, notes []*entities.Note) {
	ids := make([]string, 0, len(notes))
	for _, note := range notes {
		ids = append(ids, note.ID)
	}

	raw, err := json.Marshal(ids)
	if err != nil {
		return
	}

	if err := uc.cache.Set(ctx, key, string(raw), uc.cacheTTL); err != nil {
		logger.Log(ctx).Warn(ctx, ErrMsgCacheWrite, zap.String("key", key), zap.Error(err))
	}
}

func searchKey(revision uint64, query string) string {
	return fmt.Sprintf("%s:%d:%s", searchKeyPrefix, revision, strings.ToLower(query))
}

func validate(input NoteInput) (NoteInput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return input, fmt.Errorf("%w: title is required", ErrInvalidParams)
	}
	if strings.TrimSpace(input.Content) == "" {
		return input, fmt.Errorf("%w: content is required", ErrInvalidParams)
	}

	input.Tags = NormalizeTags(input.Tags)
	return input, nil
}
