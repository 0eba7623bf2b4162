package web_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonotes/internal/notes/adapters/http/web"
	"gonotes/internal/notes/adapters/memory"
	"gonotes/internal/notes/app"
)

func newTestApp(t *testing.T) (*fiber.App, *memory.NoteRepository) {
	t.Helper()

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	repo := memory.NewNoteRepository()
	handler := web.NewHandler(app.NewNoteUseCase(repo, nil, 0), renderer)

	fiberApp := fiber.New()
	handler.Register(fiberApp)
	fiberApp.Use(handler.NotFound)

	return fiberApp, repo
}

func get(t *testing.T, fiberApp *fiber.App, target string) (*http.Response, string) {
	t.Helper()
	return send(t, fiberApp, httptest.NewRequest(http.MethodGet, target, nil))
}

func postForm(t *testing.T, fiberApp *fiber.App, target string, form url.Values) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return send(t, fiberApp, req)
}

func send(t *testing.T, fiberApp *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()

	resp, err := fiberApp.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestListPage(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		fiberApp, _ := newTestApp(t)

		resp, body := get(t, fiberApp, "/")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
		assert.Contains(t, body, "Henüz not eklenmemiş")
	})

	t.Run("search without results", func(t *testing.T) {
		fiberApp, repo := newTestApp(t)
		repo.Add(context.Background(), "Shopping", "Buy milk", []string{"errand"})

		_, body := get(t, fiberApp, "/?q=xyz")
		assert.Contains(t, body, "Arama sonucu bulunamadı")
		assert.NotContains(t, body, "Shopping")
	})

	t.Run("cards show stripped text and tags", func(t *testing.T) {
		fiberApp, repo := newTestApp(t)
		note := repo.Add(context.Background(), "<b>Shopping</b>", "<p>Buy milk</p>", []string{"errand"})

		_, body := get(t, fiberApp, "/?q=milk")
		assert.Contains(t, body, "<strong>Shopping</strong>")
		assert.Contains(t, body, "Buy milk")
		assert.NotContains(t, body, "&lt;p&gt;")
		assert.Contains(t, body, `<span class="tag">errand</span>`)
		assert.Contains(t, body, "/note/"+note.ID)
		assert.Contains(t, body, "/edit/"+note.ID)
	})

	t.Run("flash message", func(t *testing.T) {
		fiberApp, _ := newTestApp(t)

		_, body := get(t, fiberApp, "/?flash=deleted")
		assert.Contains(t, body, "Not başarıyla silindi")

		_, body = get(t, fiberApp, "/?flash=unknown")
		assert.NotContains(t, body, `class="flash"`)
	})
}

func TestCreatePage(t *testing.T) {
	fiberApp, repo := newTestApp(t)
	ctx := context.Background()

	resp, body := get(t, fiberApp, "/new")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Yeni Not Ekle")

	resp, body = postForm(t, fiberApp, "/new", url.Values{"title": {""}, "content": {"body"}})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, web.MsgRequiredFields)
	assert.Empty(t, repo.List(ctx))

	resp, _ = postForm(t, fiberApp, "/new", url.Values{
		"title":   {"Shopping"},
		"content": {"Buy milk"},
		"tags":    {"errand, home, errand"},
	})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/?flash=created", resp.Header.Get("Location"))

	notes := repo.List(ctx)
	require.Len(t, notes, 1)
	assert.Equal(t, "Shopping", notes[0].Title)
	assert.Equal(t, []string{"errand", "home"}, notes[0].Tags)
}

func TestDetailPage(t *testing.T) {
	fiberApp, repo := newTestApp(t)
	note := repo.Add(context.Background(), "Work", "Quarterly\nreport", []string{"office"})

	resp, body := get(t, fiberApp, "/note/"+note.ID)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<h1>Work</h1>")
	assert.Contains(t, body, "Quarterly\nreport")

	resp, body = get(t, fiberApp, "/note/missing")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Not bulunamadı")
	assert.Contains(t, body, "Ana Sayfaya Dön")
}

func TestEditPage(t *testing.T) {
	fiberApp, repo := newTestApp(t)
	ctx := context.Background()
	note := repo.Add(ctx, "Old", "Old body", []string{"a", "b"})

	resp, body := get(t, fiberApp, "/edit/"+note.ID)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Notu Düzenle")
	assert.Contains(t, body, `value="a, b"`)

	resp, _ = postForm(t, fiberApp, "/edit/"+note.ID, url.Values{"title": {"New"}, "content": {" "}})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = postForm(t, fiberApp, "/edit/"+note.ID, url.Values{"title": {"New"}, "content": {"New body"}})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/?flash=updated", resp.Header.Get("Location"))

	updated, ok := repo.FindByID(ctx, note.ID)
	require.True(t, ok)
	assert.Equal(t, "New", updated.Title)
	assert.Empty(t, updated.Tags)

	resp, _ = get(t, fiberApp, "/edit/missing")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = postForm(t, fiberApp, "/edit/missing", url.Values{"title": {"t"}, "content": {"c"}})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	fiberApp, repo := newTestApp(t)
	ctx := context.Background()
	note := repo.Add(ctx, "Doomed", "body", nil)

	resp, body := get(t, fiberApp, "/note/"+note.ID+"/delete")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Bu notu silmek istediğinizden emin misiniz?")

	_, ok := repo.FindByID(ctx, note.ID)
	require.True(t, ok, "confirmation page must not delete")

	resp, _ = postForm(t, fiberApp, "/note/"+note.ID+"/delete", url.Values{})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/?flash=deleted", resp.Header.Get("Location"))

	_, ok = repo.FindByID(ctx, note.ID)
	assert.False(t, ok)

	resp, body = postForm(t, fiberApp, "/note/"+note.ID+"/delete", url.Values{})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Not bulunamadı")
}

func TestUnknownPage(t *testing.T) {
	fiberApp, _ := newTestApp(t)

	resp, body := get(t, fiberApp, "/does/not/exist")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Sayfa Bulunamadı")
}

func TestRendererUnknownPage(t *testing.T) {
	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	var sb strings.Builder
	err = renderer.Render(&sb, "missing-page.html", "x", nil)
	assert.ErrorIs(t, err, web.ErrUnknownPage)
}
