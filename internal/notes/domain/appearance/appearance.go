// Package appearance содержит функции оформления заметок для отображения.
package appearance

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"gonotes/pkg/markup"
)

// Palette - цвета аватаров заметок.
var Palette = []string{"#6366F1", "#EC4899", "#10B981", "#F59E0B", "#3B82F6", "#EF4444"}

// DefaultInitial используется, когда у заметки нет текста в заголовке.
const DefaultInitial = "N"

var shortMonths = [...]string{"Oca", "Şub", "Mar", "Nis", "May", "Haz", "Tem", "Ağu", "Eyl", "Eki", "Kas", "Ara"}

// AvatarColor возвращает цвет аватара, детерминированно вычисленный по id.
// Для пустого id (новая заметка) возвращается первый цвет палитры.
func AvatarColor(id string) string {
	var sum int
	for _, r := range id {
		sum += int(r)
	}
	return Palette[sum%len(Palette)]
}

// Initial возвращает первую букву заголовка без разметки в верхнем регистре.
func Initial(title string) string {
	text := markup.Strip(title)
	if text == "" {
		return DefaultInitial
	}
	r, _ := utf8.DecodeRuneInString(text)
	return string(unicode.ToUpper(r))
}

// Preview возвращает текст без разметки, обрезанный до limit символов.
func Preview(s string, limit int) string {
	text := strings.TrimSpace(markup.Strip(s))
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:limit])) + "…"
}

// FormatDate форматирует дату в коротком турецком формате, например "15 Eki 2026".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	local := t.Local()
	return local.Format("2") + " " + shortMonths[local.Month()-1] + " " + local.Format("2006")
}

// FormatDateTime форматирует дату и время, например "15 Eki 2026 14:05".
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return FormatDate(t) + " " + t.Local().Format("15:04")
}
