package app

import "strings"

// TagInputSeparator разделяет метки в текстовом поле формы.
const TagInputSeparator = ","

// NormalizeTags обрезает пробелы, удаляет пустые метки и повторы,
// сохраняя порядок первого появления.
func NormalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))

	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}

	return result
}

// ParseTags разбирает строку меток, разделенных запятыми.
func ParseTags(raw string) []string {
	return NormalizeTags(strings.Split(raw, TagInputSeparator))
}

// JoinTags собирает метки обратно в строку для поля формы.
func JoinTags(tags []string) string {
	return strings.Join(tags, TagInputSeparator+" ")
}
