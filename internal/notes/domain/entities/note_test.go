package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonotes/internal/notes/domain/entities"
)

func TestNewNote(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	tags := []string{"errand"}

	note := entities.NewNote("id-1", "Shopping", "Buy milk", tags, now)

	assert.Equal(t, "id-1", note.ID)
	assert.Equal(t, "Shopping", note.Title)
	assert.Equal(t, "Buy milk", note.Content)
	assert.Equal(t, []string{"errand"}, note.Tags)
	assert.Equal(t, now, note.CreatedAt)
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)

	tags[0] = "changed"
	assert.Equal(t, "errand", note.Tags[0], "note must not share the caller's slice")
}

func TestNewNoteNilTags(t *testing.T) {
	note := entities.NewNote("id-1", "", "", nil, time.Now())
	require.NotNil(t, note.Tags)
	assert.Empty(t, note.Tags)
}

func TestApply(t *testing.T) {
	created := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	t.Run("replaces fields and advances UpdatedAt", func(t *testing.T) {
		note := entities.NewNote("id-1", "old", "old", []string{"a"}, created)
		later := created.Add(time.Minute)

		note.Apply("new", "body", []string{"b", "c"}, later)

		assert.Equal(t, "new", note.Title)
		assert.Equal(t, "body", note.Content)
		assert.Equal(t, []string{"b", "c"}, note.Tags)
		assert.Equal(t, later, note.UpdatedAt)
		assert.Equal(t, created, note.CreatedAt)
	})

	t.Run("UpdatedAt strictly advances when clock stands still", func(t *testing.T) {
		note := entities.NewNote("id-1", "t", "c", nil, created)

		note.Apply("t2", "c2", nil, created)

		assert.True(t, note.UpdatedAt.After(created))
		assert.Equal(t, created, note.CreatedAt)
	})
}

func TestClone(t *testing.T) {
	note := entities.NewNote("id-1", "t", "c", []string{"x"}, time.Now())

	clone := note.Clone()
	clone.Tags[0] = "y"
	clone.Title = "other"

	assert.Equal(t, "x", note.Tags[0])
	assert.Equal(t, "t", note.Title)
}
