// Package services определяет интерфейс бизнес-логики, используемый HTTP слоем.
package services

import (
	"context"

	"gonotes/internal/notes/app"
	"gonotes/internal/notes/domain/entities"
)

// NoteService определяет операции над заметками, доступные обработчикам.
type NoteService interface {
	CreateNote(ctx context.Context, input app.NoteInput) (*entities.Note, error)
	GetNote(ctx context.Context, noteID string) (*entities.Note, error)
	ListNotes(ctx context.Context, query string) ([]*entities.Note, error)
	CountNotes(ctx context.Context) int
	UpdateNote(ctx context.Context, noteID string, input app.NoteInput) (*entities.Note, error)
	DeleteNote(ctx context.Context, noteID string) error
}

var _ NoteService = (*app.NoteUseCase)(nil)
