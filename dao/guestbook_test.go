package dao

import (
	"Portfolio/models"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestbookDAO_ListNewest(t *testing.T) {
	d := NewGuestbookDAO(newTestDB(t))
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		entry := &models.GuestbookEntry{Name: name, Message: "hi", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, d.Create(ctx, entry))
	}

	items, err := d.ListNewest(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "third", items[0].Name)
	assert.Equal(t, "second", items[1].Name)
	assert.Equal(t, "first", items[2].Name)
}

func TestGuestbookDAO_ListNewest_TieBreaksOnID(t *testing.T) {
	d := NewGuestbookDAO(newTestDB(t))
	ctx := context.Background()

	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, name := range []string{"a", "b"} {
		require.NoError(t, d.Create(ctx, &models.GuestbookEntry{Name: name, Message: "m", CreatedAt: at}))
	}

	items, err := d.ListNewest(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].Name)
}

func TestGuestbookDAO_ListEmpty(t *testing.T) {
	d := NewGuestbookDAO(newTestDB(t))

	items, err := d.ListNewest(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestGuestbookDAO_DeleteByID(t *testing.T) {
	d := NewGuestbookDAO(newTestDB(t))
	ctx := context.Background()

	entry := &models.GuestbookEntry{Name: "Ann", Message: "Hi"}
	require.NoError(t, d.Create(ctx, entry))
	require.NotZero(t, entry.ID)

	deleted, err := d.DeleteByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = d.DeleteByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
