// Package dto содержит структуры запросов и ответов JSON API.
package dto

import (
	"time"

	"gonotes/internal/notes/domain/entities"
)

// NoteRequest содержит данные для создания или замены заметки.
type NoteRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// Note представляет заметку в ответе.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListNotesResponse содержит найденные заметки.
type ListNotesResponse struct {
	Notes      []*Note `json:"notes"`
	Query      string  `json:"query,omitempty"`
	TotalCount int     `json:"total_count"`
}

// ErrorResponse описывает ошибку.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FromEntity преобразует доменную заметку в DTO.
func FromEntity(n *entities.Note) *Note {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return &Note{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Tags:      tags,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// FromEntities преобразует список заметок.
func FromEntities(notes []*entities.Note) []*Note {
	result := make([]*Note, 0, len(notes))
	for _, n := range notes {
		result = append(result, FromEntity(n))
	}
	return result
}
