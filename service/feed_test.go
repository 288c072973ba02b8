package service

import (
	"context"
	"errors"
	"testing"

	"Tripnote/models"
	"Tripnote/pkg/api"
	"Tripnote/pkg/apperr"
	"Tripnote/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPager_StopsWhenNoMore(t *testing.T) {
	var calls int
	h := newHarness(t, nil, withNotes(func(c api.INoteClient) api.INoteClient {
		return &stubNotes{INoteClient: c, listNotes: func(ctx context.Context, req *types.ListNotesRequest) (*types.NotesPage, error) {
			calls++
			assert.Equal(t, types.DefaultPageSize, req.Limit)
			assert.Equal(t, models.NoteStatusApproved, req.Status)
			return c.ListNotes(ctx, req)
		}}
	}))
	ctx := context.Background()
	p := h.feed.NewPager()
	assert.True(t, p.HasMore())

	first, err := p.Next(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 7)
	assert.True(t, p.HasMore())
	assert.NotEmpty(t, p.Cursor())

	second, err := p.Next(ctx)
	require.NoError(t, err)
	assert.Len(t, second, 3)
	assert.False(t, p.HasMore())
	assert.Equal(t, 10, p.Loaded())

	third, err := p.Next(ctx)
	require.NoError(t, err)
	assert.Empty(t, third)
	assert.Equal(t, 2, calls)

	seen := map[string]bool{}
	for _, n := range append(first, second...) {
		assert.False(t, seen[n.ID], "duplicate %s", n.ID)
		seen[n.ID] = true
		assert.Equal(t, models.NoteStatusApproved, n.Status)
	}

	p.Reset()
	again, err := p.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, first[0].ID, again[0].ID)
}

func TestPager_ErrorKeepsPosition(t *testing.T) {
	fail := false
	h := newHarness(t, nil, withNotes(func(c api.INoteClient) api.INoteClient {
		return &stubNotes{INoteClient: c, listNotes: func(ctx context.Context, req *types.ListNotesRequest) (*types.NotesPage, error) {
			if fail {
				return nil, apperr.Network(0, "网络请求失败", nil)
			}
			return c.ListNotes(ctx, req)
		}}
	}))
	ctx := context.Background()
	p := h.feed.NewPager()

	_, err := p.Next(ctx)
	require.NoError(t, err)
	cursor := p.Cursor()

	fail = true
	_, err = p.Next(ctx)
	assert.True(t, errors.Is(err, apperr.ErrNetwork))
	assert.Equal(t, cursor, p.Cursor())
	assert.True(t, p.HasMore())
}

func TestFeedService_EnrichIsolatesFailures(t *testing.T) {
	h := newHarness(t, seedWithGhost())
	ctx := context.Background()

	notes, err := h.feed.NewPager().Next(ctx)
	require.NoError(t, err)
	require.Equal(t, "g1", notes[0].ID)

	cards := h.feed.Enrich(ctx, notes)
	require.Len(t, cards, len(notes))

	ghost := cards[0].Author
	assert.True(t, ghost.Placeholder)
	assert.Equal(t, PlaceholderNickname, ghost.Nickname)
	assert.Equal(t, h.conf.Api.BaseURL, ghost.Avatar)

	for i, c := range cards[1:] {
		assert.Equal(t, notes[i+1], c.Note)
		assert.False(t, c.Author.Placeholder)
		assert.Equal(t, c.Note.UserID, c.Author.ID)
	}
	assert.Equal(t, "阿丽", cards[1].Author.Nickname)
}

func TestFeedService_EnrichEmpty(t *testing.T) {
	h := newHarness(t, nil)
	assert.Empty(t, h.feed.Enrich(context.Background(), nil))
}
