// Package entities определяет доменные сущности сервиса заметок.
package entities

import (
	"slices"
	"time"
)

// Note представляет собой заметку с метками.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNote создает заметку с одинаковыми CreatedAt и UpdatedAt.
func NewNote(id, title, content string, tags []string, now time.Time) *Note {
	return &Note{
		ID:        id,
		Title:     title,
		Content:   content,
		Tags:      cloneTags(tags),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Apply заменяет заголовок, содержимое и метки и обновляет UpdatedAt.
// UpdatedAt всегда строго больше предыдущего значения.
func (n *Note) Apply(title, content string, tags []string, now time.Time) {
	n.Title = title
	n.Content = content
	n.Tags = cloneTags(tags)

	if !now.After(n.UpdatedAt) {
		now = n.UpdatedAt.Add(time.Nanosecond)
	}
	n.UpdatedAt = now
}

// Clone возвращает глубокую копию заметки.
func (n *Note) Clone() *Note {
	c := *n
	c.Tags = cloneTags(n.Tags)
	return &c
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return slices.Clone(tags)
}
