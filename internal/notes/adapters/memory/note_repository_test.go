package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonotes/internal/notes/adapters/memory"
	"gonotes/internal/notes/domain/search"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestAddThenFind(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewNoteRepository()

	cases := []struct {
		title, content string
		tags           []string
	}{
		{"Shopping", "Buy milk", []string{"errand"}},
		{"", "", nil},
		{"<b>bold</b>", "<p>para</p>", []string{"dup", "dup"}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("title=%q", tc.title), func(t *testing.T) {
			added := repo.Add(ctx, tc.title, tc.content, tc.tags)

			_, err := uuid.Parse(added.ID)
			require.NoError(t, err)

			found, ok := repo.FindByID(ctx, added.ID)
			require.True(t, ok)
			assert.Equal(t, tc.title, found.Title)
			assert.Equal(t, tc.content, found.Content)
			if tc.tags == nil {
				assert.Empty(t, found.Tags)
			} else {
				assert.Equal(t, tc.tags, found.Tags)
			}
			assert.Equal(t, found.CreatedAt, found.UpdatedAt)
		})
	}
}

func TestAddGeneratesUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewNoteRepository()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		note := repo.Add(ctx, "t", "c", nil)
		_, dup := seen[note.ID]
		require.False(t, dup)
		seen[note.ID] = struct{}{}
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	repo := memory.NewNoteRepository(memory.WithClock(clock.Now))

	added := repo.Add(ctx, "old title", "old content", []string{"a"})
	clock.Advance(time.Second)

	ok := repo.Update(ctx, added.ID, "new title", "new content", []string{"b", "c"})
	require.True(t, ok)

	found, ok := repo.FindByID(ctx, added.ID)
	require.True(t, ok)
	assert.Equal(t, added.ID, found.ID)
	assert.Equal(t, "new title", found.Title)
	assert.Equal(t, "new content", found.Content)
	assert.Equal(t, []string{"b", "c"}, found.Tags)
	assert.Equal(t, added.CreatedAt, found.CreatedAt)
	assert.True(t, found.UpdatedAt.After(added.UpdatedAt))
}

func TestUpdateWithFrozenClockStillAdvances(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	repo := memory.NewNoteRepository(memory.WithClock(clock.Now))

	added := repo.Add(ctx, "t", "c", nil)
	require.True(t, repo.Update(ctx, added.ID, "t", "c", nil))

	found, _ := repo.FindByID(ctx, added.ID)
	assert.True(t, found.UpdatedAt.After(added.UpdatedAt))
	assert.Equal(t, added.CreatedAt, found.CreatedAt)
}

func TestUpdateMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewNoteRepository()
	existing := repo.Add(ctx, "t", "c", nil)
	revision := repo.Revision()

	assert.False(t, repo.Update(ctx, "missing", "x", "y", nil))

	assert.Equal(t, revision, repo.Revision())
	list := repo.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, existing, list[0])
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewNoteRepository()

	note := repo.Add(ctx, "t", "c", nil)
	require.True(t, repo.Delete(ctx, note.ID))

	_, ok := repo.FindByID(ctx, note.ID)
	assert.False(t, ok)

	assert.False(t, repo.Delete(ctx, note.ID), "second delete is a no-op")
	assert.False(t, repo.Delete(ctx, "never-existed"))
}

func TestFindByIDMissing(t *testing.T) {
	repo := memory.NewNoteRepository()

	note, ok := repo.FindByID(context.Background(), "")
	assert.False(t, ok)
	assert.Nil(t, note)
}

func TestReturnedNotesAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewNoteRepository()

	added := repo.Add(ctx, "title", "content", []string{"tag"})
	added.Title = "mutated"
	added.Tags[0] = "mutated"

	listed := repo.List(ctx)
	listed[0].Content = "mutated"

	found, _ := repo.FindByID(ctx, added.ID)
	assert.Equal(t, "title", found.Title)
	assert.Equal(t, "content", found.Content)
	assert.Equal(t, []string{"tag"}, found.Tags)
}

func TestRevision(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewNoteRepository()
	assert.Equal(t, uint64(0), repo.Revision())

	note := repo.Add(ctx, "t", "c", nil)
	assert.Equal(t, uint64(1), repo.Revision())

	repo.Update(ctx, note.ID, "t2", "c", nil)
	assert.Equal(t, uint64(2), repo.Revision())

	repo.Delete(ctx, note.ID)
	assert.Equal(t, uint64(3), repo.Revision())
}

func TestShoppingScenario(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewNoteRepository()
	require.Empty(t, repo.List(ctx))

	note := repo.Add(ctx, "Shopping", "Buy milk", []string{"errand"})

	all := repo.List(ctx)
	require.Len(t, all, 1)

	milk := search.Filter("milk", all)
	require.Len(t, milk, 1)
	assert.Equal(t, note.ID, milk[0].ID)

	assert.Empty(t, search.Filter("xyz", all))
}

func TestDeleteFirstKeepsSecond(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewNoteRepository()

	first := repo.Add(ctx, "first", "1", nil)
	second := repo.Add(ctx, "second", "2", nil)
	third := repo.Add(ctx, "third", "3", nil)

	repo.Delete(ctx, first.ID)

	all := repo.List(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, third.ID, all[1].ID)
}

func TestWithIDGenerator(t *testing.T) {
	next := 0
	repo := memory.NewNoteRepository(memory.WithIDGenerator(func() string {
		next++
		return fmt.Sprintf("note-%d", next)
	}))

	assert.Equal(t, "note-1", repo.Add(context.Background(), "a", "b", nil).ID)
	assert.Equal(t, "note-2", repo.Add(context.Background(), "a", "b", nil).ID)
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewNoteRepository()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			note := repo.Add(ctx, fmt.Sprintf("note %d", i), "body", nil)
			repo.Update(ctx, note.ID, "updated", "body", []string{"x"})
			_ = repo.List(ctx)
			if i%2 == 0 {
				repo.Delete(ctx, note.ID)
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, repo.List(ctx), 10)
}
