// Package memory реализует хранилище заметок в памяти процесса.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/ports/repositories"
	"gonotes/pkg/logger"
)

// NoteRepository хранит заметки в порядке добавления.
type NoteRepository struct {
	mu       sync.RWMutex
	notes    []*entities.Note
	revision uint64
	now      func() time.Time
	newID    func() string
}

// Option настраивает NoteRepository.
type Option func(*NoteRepository)

// WithClock задает источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(r *NoteRepository) {
		r.now = now
	}
}

// WithIDGenerator задает генератор идентификаторов.
func WithIDGenerator(newID func() string) Option {
	return func(r *NoteRepository) {
		r.newID = newID
	}
}

// NewNoteRepository создает пустое хранилище заметок.
func NewNoteRepository(opts ...Option) *NoteRepository {
	r := &NoteRepository{
		notes: make([]*entities.Note, 0),
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ repositories.NoteRepository = (*NoteRepository)(nil)

// Add добавляет заметку в конец коллекции.
func (r *NoteRepository) Add(ctx context.Context, title, content string, tags []string) *entities.Note {
	r.mu.Lock()
	note := entities.NewNote(r.newID(), title, content, tags, r.now())
	r.notes = append(r.notes, note)
	r.revision++
	r.mu.Unlock()

	logger.Log(ctx).Debug(ctx, "note added",
		zap.String("method", "NoteRepository.Add"),
		zap.String("noteID", note.ID))

	return note.Clone()
}

// Update заменяет заголовок, содержимое и метки заметки.
// Если заметки нет, ничего не происходит и возвращается false.
func (r *NoteRepository) Update(ctx context.Context, id, title, content string, tags []string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		logger.Log(ctx).Debug(ctx, "note to update not found",
			zap.String("method", "NoteRepository.Update"),
			zap.String("noteID", id))
		return false
	}

	r.notes[idx].Apply(title, content, tags, r.now())
	r.revision++
	return true
}

// Delete удаляет заметку. Если заметки нет, возвращается false.
func (r *NoteRepository) Delete(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		logger.Log(ctx).Debug(ctx, "note to delete not found",
			zap.String("method", "NoteRepository.Delete"),
			zap.String("noteID", id))
		return false
	}

	r.notes = slices.Delete(r.notes, idx, idx+1)
	r.revision++
	return true
}

// FindByID возвращает копию заметки по идентификатору.
func (r *NoteRepository) FindByID(_ context.Context, id string) (*entities.Note, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, false
	}
	return r.notes[idx].Clone(), true
}

// List возвращает копии всех заметок в порядке добавления.
func (r *NoteRepository) List(_ context.Context) []*entities.Note {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.Note, 0, len(r.notes))
	for _, note := range r.notes {
		result = append(result, note.Clone())
	}
	return result
}

// Revision возвращает номер ревизии, увеличиваемый каждой успешной мутацией.
func (r *NoteRepository) Revision() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.revision
}

func (r *NoteRepository) indexOf(id string) int {
	return slices.IndexFunc(r.notes, func(n *entities.Note) bool {
		return n.ID == id
	})
}
