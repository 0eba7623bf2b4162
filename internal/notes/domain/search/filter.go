// Package search реализует поиск заметок по подстроке.
package search

import (
	"strings"

	"gonotes/internal/notes/domain/entities"
)

// TagSeparator разделяет метки при поиске по ним.
const TagSeparator = " "

// Filter возвращает заметки, у которых заголовок, содержимое или метки
// содержат query без учета регистра. Пустой запрос возвращает все заметки.
// Порядок входного списка сохраняется.
func Filter(query string, notes []*entities.Note) []*entities.Note {
	result := make([]*entities.Note, 0, len(notes))
	if query == "" {
		return append(result, notes...)
	}

	q := strings.ToLower(query)
	for _, note := range notes {
		if Matches(q, note) {
			result = append(result, note)
		}
	}
	return result
}

// Matches проверяет заметку на вхождение уже приведенного к нижнему регистру запроса.
func Matches(lowerQuery string, note *entities.Note) bool {
	return strings.Contains(strings.ToLower(note.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(note.Content), lowerQuery) ||
		strings.Contains(strings.ToLower(strings.Join(note.Tags, TagSeparator)), lowerQuery)
}
