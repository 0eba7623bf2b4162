package web

import (
	"gonotes/internal/notes/app"
	"gonotes/internal/notes/domain/appearance"
	"gonotes/internal/notes/domain/entities"
	"gonotes/pkg/markup"
)

// Flash-сообщения, передаваемые через параметр flash после перенаправления.
var flashMessages = map[string]string{
	FlashCreated: "Not başarıyla eklendi",
	FlashUpdated: "Not başarıyla güncellendi",
	FlashDeleted: "Not başarıyla silindi",
}

// NoteView - заметка, подготовленная к отображению.
type NoteView struct {
	ID       string
	Title    string
	Content  string
	Tags     []string
	Color    string
	Initial  string
	Date     string
	DateTime string
}

// ListView - данные страницы списка.
type ListView struct {
	Notes []NoteView
	Query string
	Total int
	Flash string
}

// FormView - данные формы создания или редактирования.
type FormView struct {
	Edit    bool
	Action  string
	Title   string
	Content string
	Tags    string
	Color   string
	Initial string
	Error   string
}

func newNoteView(note *entities.Note) NoteView {
	return NoteView{
		ID:       note.ID,
		Title:    markup.Strip(note.Title),
		Content:  markup.Strip(note.Content),
		Tags:     note.Tags,
		Color:    appearance.AvatarColor(note.ID),
		Initial:  appearance.Initial(note.Title),
		Date:     appearance.FormatDate(note.UpdatedAt),
		DateTime: appearance.FormatDateTime(note.UpdatedAt),
	}
}

func newNoteViews(notes []*entities.Note) []NoteView {
	views := make([]NoteView, 0, len(notes))
	for _, note := range notes {
		views = append(views, newNoteView(note))
	}
	return views
}

func newCreateForm(input app.NoteInput, tags string) FormView {
	return FormView{
		Action:  RouteNew,
		Title:   input.Title,
		Content: input.Content,
		Tags:    tags,
		Color:   appearance.Palette[0],
		Initial: appearance.DefaultInitial,
	}
}

func newEditForm(id string, input app.NoteInput, tags string) FormView {
	return FormView{
		Edit:    true,
		Action:  editPath(id),
		Title:   input.Title,
		Content: input.Content,
		Tags:    tags,
		Color:   appearance.AvatarColor(id),
		Initial: appearance.Initial(input.Title),
	}
}
