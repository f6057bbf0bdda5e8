package library

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/sant0-9/promptsmith/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(db)
}

func fixedClock(start time.Time) func() time.Time {
	now := start
	return func() time.Time {
		now = now.Add(time.Minute)
		return now
	}
}

func TestSaveGetExactRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	var doc prompt.Document
	doc.Set(prompt.Context, "  Você é um revisor.\n\n")
	doc.Set(prompt.Tests, "")
	doc.Set(prompt.OutputFormat, "<START_X>\n## Testes")

	saved, err := s.Save(ctx, "review", doc)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	got, err := s.Get(ctx, "review")
	require.NoError(t, err)

	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "review", got.Name)
	assert.Equal(t, doc, got.Document)
	assert.True(t, got.Document.Has(prompt.Tests))
}

func TestSaveReplacesByName(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	s.now = fixedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	var first prompt.Document
	first.Set(prompt.Context, "A")
	first.Set(prompt.Tests, "B")
	e1, err := s.Save(ctx, "daily", first)
	require.NoError(t, err)

	var second prompt.Document
	second.Set(prompt.MainContent, "C")
	e2, err := s.Save(ctx, " daily ", second)
	require.NoError(t, err)

	assert.Equal(t, e1.ID, e2.ID)
	assert.True(t, e2.UpdatedAt.After(e1.UpdatedAt))
	assert.True(t, e2.CreatedAt.Equal(e1.CreatedAt))

	got, err := s.Get(ctx, "daily")
	require.NoError(t, err)
	assert.Equal(t, second, got.Document)
}

func TestSaveRequiresName(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Save(context.Background(), "  ", prompt.Document{})
	assert.Error(t, err)
}

func TestListOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	s.now = fixedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	var doc prompt.Document
	doc.Set(prompt.Context, "x")
	doc.Set(prompt.Guidance, "y")

	_, err := s.Save(ctx, "old", doc)
	require.NoError(t, err)
	_, err = s.Save(ctx, "new", prompt.Document{})
	require.NoError(t, err)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "new", list[0].Name)
	assert.Equal(t, 0, list[0].Sections)
	assert.Equal(t, "old", list[1].Name)
	assert.Equal(t, 2, list[1].Sections)
}

func TestGetAndDeleteNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, "missing"), ErrNotFound)
}

func TestDeleteCascadesSections(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	var doc prompt.Document
	doc.Set(prompt.Limitations, "sem rede")
	_, err := s.Save(ctx, "tmp", doc)
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "tmp"))

	var n int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM prompt_sections`).Scan(&n))
	assert.Zero(t, n)

	_, err = s.Get(ctx, "tmp")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpenOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "library.db")

	s, err := Open(path)
	require.NoError(t, err)

	var doc prompt.Document
	doc.Set(prompt.FewShot, "exemplo")
	_, err = s.Save(context.Background(), "persisted", doc)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(context.Background(), "persisted")
	require.NoError(t, err)
	assert.Equal(t, "exemplo", got.Document.Text(prompt.FewShot))
}
