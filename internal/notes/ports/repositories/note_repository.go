// Package repositories определяет интерфейсы хранилищ сервиса заметок.
package repositories

import (
	"context"

	"gonotes/internal/notes/domain/entities"
)

// NoteRepository определяет интерфейс хранилища заметок.
// Возвращаемые заметки являются копиями и не связаны с хранилищем.
type NoteRepository interface {
	Add(ctx context.Context, title, content string, tags []string) *entities.Note
	Update(ctx context.Context, id, title, content string, tags []string) bool
	Delete(ctx context.Context, id string) bool
	FindByID(ctx context.Context, id string) (*entities.Note, bool)
	List(ctx context.Context) []*entities.Note
	Revision() uint64
}
