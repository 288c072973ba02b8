package dao

import (
	"context"
	"errors"
	"testing"

	"Tripnote/models"
	"Tripnote/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionDAO_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStorage()
	d := NewSessionDAO(s)

	u, err := d.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)

	want := &models.User{
		ID:        "alice",
		Password:  "123456",
		Profile:   models.Profile{Nickname: "阿丽", City: "杭州"},
		Following: []string{"bob"},
		Fans:      []string{},
		Favorites: []string{"n1"},
	}
	require.NoError(t, d.Save(ctx, want))

	raw, err := s.GetItem(ctx, "user")
	require.NoError(t, err)
	assert.Contains(t, raw, `"id":"alice"`)

	got, err := d.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, d.Clear(ctx))
	got, err = d.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionDAO_Corrupt(t *testing.T) {
	ctx := context.Background()
	for _, raw := range []string{"not json", "[1,2]", "{}"} {
		s := storage.NewMemoryStorage()
		require.NoError(t, s.SetItem(ctx, SessionKey, raw))

		u, err := NewSessionDAO(s).Load(ctx)
		assert.Nil(t, u, raw)
		assert.True(t, errors.Is(err, ErrCorrupt), raw)
	}
}

func TestSessionDAO_LegacyRecord(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStorage()
	require.NoError(t, s.SetItem(ctx, SessionKey, `{"id":"bob","password":"x","user-info":{"nickname":"B","fans":["alice"]}}`))

	u, err := NewSessionDAO(s).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "B", u.Profile.Nickname)
	assert.Equal(t, []string{"alice"}, u.Fans)
}

func TestSearchHistoryDAO(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStorage()
	d := NewSearchHistoryDAO(s)

	items, err := d.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, d.Save(ctx, []string{"成都", "西湖"}))
	raw, err := s.GetItem(ctx, "user_search_history")
	require.NoError(t, err)
	assert.JSONEq(t, `["成都","西湖"]`, raw)

	items, err = d.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"成都", "西湖"}, items)

	require.NoError(t, d.Clear(ctx))
	items, err = d.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, s.SetItem(ctx, SearchHistoryKey, "{broken"))
	items, err = d.List(ctx)
	assert.True(t, errors.Is(err, ErrCorrupt))
	assert.Empty(t, items)
}
