package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"Tripnote/config"
	"Tripnote/internal/mockapi"
	"Tripnote/pkg/apperr"
	"Tripnote/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newMockClient(t *testing.T) *Client {
	t.Helper()
	srv := httptest.NewServer(mockapi.New(nil, "test-salt"))
	t.Cleanup(srv.Close)
	return New(&config.Api{BaseURL: srv.URL + "/", TimeoutMs: 2000})
}

func newStubClient(t *testing.T, fn http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(fn)
	t.Cleanup(srv.Close)
	return NewWithHTTPClient(srv.URL, srv.Client())
}

func TestGetUser(t *testing.T) {
	c := newMockClient(t)
	ctx := context.Background()

	u, err := c.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.ID)
	assert.Equal(t, "123456", u.Password)
	assert.Equal(t, []string{"bob"}, u.Following)

	_, err = c.GetUser(ctx, "nobody")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.Equal(t, "用户不存在", apperr.Message(err))
}

func TestGetUser_ArrayWrapped(t *testing.T) {
	c := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("id") {
		case "x":
			_, _ = w.Write([]byte(`[{"id":"x","password":"p","user-info":{"nickname":"旧昵称"}}]`))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	})

	u, err := c.GetUser(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "旧昵称", u.Profile.Nickname)
	assert.Equal(t, []string{}, u.Following)

	_, err = c.GetUser(context.Background(), "y")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestRequest_ErrorMapping(t *testing.T) {
	c := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("id") {
		case "500":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"code":500,"msg":"系统异常"}`))
		case "400":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"参数错误"}`))
		case "502":
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`<html>bad gateway</html>`))
		case "garbage":
			_, _ = w.Write([]byte(`{not json`))
		}
	})
	ctx := context.Background()

	_, err := c.GetUser(ctx, "500")
	var e *apperr.Error
	require.True(t, errors.As(err, &e))
	assert.True(t, errors.Is(err, apperr.ErrNetwork))
	assert.Equal(t, 500, e.Code)
	assert.Equal(t, "系统异常", e.Msg)

	_, err = c.GetUser(ctx, "400")
	require.True(t, errors.As(err, &e))
	assert.True(t, errors.Is(err, apperr.ErrNetwork))
	assert.Equal(t, "参数错误", e.Msg)

	_, err = c.GetUser(ctx, "502")
	require.True(t, errors.As(err, &e))
	assert.Equal(t, http.StatusBadGateway, e.Code)

	_, err = c.GetUser(ctx, "garbage")
	assert.True(t, errors.Is(err, apperr.ErrNetwork))
	assert.False(t, errors.Is(err, apperr.ErrNotFound))
}

func TestRequest_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := NewWithHTTPClient(srv.URL, http.DefaultClient)

	_, err := c.GetUser(context.Background(), "alice")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNetwork))
}

func TestRequest_Cancelled(t *testing.T) {
	c := newMockClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetUser(ctx, "alice")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNetwork))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRequest_SendsRequestID(t *testing.T) {
	var got string
	c := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(HeaderRequestID)
		_, _ = w.Write([]byte(`{"isFollowing":true}`))
	})

	ok, err := c.IsFollowing(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, got, 36)
}

func TestCreateUser(t *testing.T) {
	c := newMockClient(t)
	ctx := context.Background()

	u, err := c.CreateUser(ctx, &types.CreateUserRequest{ID: "dave", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "dave", u.ID)

	got, err := c.GetUser(ctx, "dave")
	require.NoError(t, err)
	assert.Equal(t, "pw", got.Password)

	_, err = c.CreateUser(ctx, &types.CreateUserRequest{ID: "dave", Password: "pw"})
	var e *apperr.Error
	require.True(t, errors.As(err, &e))
	assert.True(t, errors.Is(err, apperr.ErrAccountExists))
	assert.False(t, errors.Is(err, apperr.ErrNetwork))
	assert.Equal(t, http.StatusConflict, e.Code)
	assert.Equal(t, "账号已存在", e.Msg)
}

func TestCreateUser_EmptyEcho(t *testing.T) {
	c := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	u, err := c.CreateUser(context.Background(), &types.CreateUserRequest{ID: "e", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, "e", u.ID)
	assert.Equal(t, "p", u.Password)
	assert.NotNil(t, u.Following)
	assert.NotNil(t, u.Fans)
}

func TestUpdateUser(t *testing.T) {
	c := newMockClient(t)
	sig := "新签名"

	u, err := c.UpdateUser(context.Background(), &types.UpdateUserRequest{
		ID:      "bob",
		Profile: types.ProfilePatch{Signature: &sig},
	})
	require.NoError(t, err)
	assert.Equal(t, "新签名", u.Profile.Signature)
	assert.Equal(t, "Bob", u.Profile.Nickname)

	_, err = c.UpdateUser(context.Background(), &types.UpdateUserRequest{ID: "ghost"})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestFollowLifecycle(t *testing.T) {
	c := newMockClient(t)
	ctx := context.Background()

	ok, err := c.Follow(ctx, "carol", "bob")
	require.NoError(t, err)
	assert.True(t, ok)

	following, err := c.IsFollowing(ctx, "carol", "bob")
	require.NoError(t, err)
	assert.True(t, following)

	bob, err := c.GetUser(ctx, "bob")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "carol"}, bob.Fans)

	ok, err = c.Unfollow(ctx, "carol", "bob")
	require.NoError(t, err)
	assert.True(t, ok)

	following, err = c.IsFollowing(ctx, "carol", "bob")
	require.NoError(t, err)
	assert.False(t, following)

	_, err = c.Follow(ctx, "carol", "carol")
	assert.True(t, errors.Is(err, apperr.ErrNetwork))
}

func TestListNotes_Pages(t *testing.T) {
	c := newMockClient(t)
	ctx := context.Background()
	req := &types.ListNotesRequest{Limit: types.DefaultPageSize, Status: "approved"}

	first, err := c.ListNotes(ctx, req)
	require.NoError(t, err)
	assert.Len(t, first.Data, 7)
	assert.True(t, first.HasMore)
	require.NotEmpty(t, first.NextCursor)

	req.Cursor = first.NextCursor
	second, err := c.ListNotes(ctx, req)
	require.NoError(t, err)
	assert.Len(t, second.Data, 3)
	assert.False(t, second.HasMore)
	assert.Empty(t, second.NextCursor)
}

func TestListNotes_LenientCursor(t *testing.T) {
	c := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "cursor", r.URL.Query().Get("type"))
		switch r.URL.Query().Get("cursor") {
		case "":
			_, _ = w.Write([]byte(`{"data":[{"id":"1","user_id":"u","title":"t"}],"nextCursor":7,"hasMore":true}`))
		default:
			_, _ = w.Write([]byte(`{"data":[],"hasMore":true}`))
		}
	})
	ctx := context.Background()

	page, err := c.ListNotes(ctx, &types.ListNotesRequest{})
	require.NoError(t, err)
	assert.Equal(t, "7", page.NextCursor)
	assert.True(t, page.HasMore)

	// 没有游标时视为没有更多
	page, err = c.ListNotes(ctx, &types.ListNotesRequest{Cursor: "7"})
	require.NoError(t, err)
	assert.False(t, page.HasMore)
	assert.Empty(t, page.Data)
}

func TestListUserNotes(t *testing.T) {
	c := newMockClient(t)
	notes, err := c.ListUserNotes(context.Background(), "alice")
	require.NoError(t, err)
	require.NotEmpty(t, notes)
	for _, n := range notes {
		assert.Equal(t, "alice", n.UserID)
	}
}

func TestNoteDetailAndComment(t *testing.T) {
	c := newMockClient(t)
	ctx := context.Background()

	note, err := c.GetNoteDetail(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, "alice", note.UserID)
	assert.Len(t, note.Comments, 2)

	comment, err := c.AddComment(ctx, &types.AddCommentRequest{NoteID: "n1", UserID: "bob", Content: "再来一张"})
	require.NoError(t, err)
	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, "bob", comment.UserID)

	note, err = c.GetNoteDetail(ctx, "n1")
	require.NoError(t, err)
	assert.Len(t, note.Comments, 3)

	_, err = c.GetNoteDetail(ctx, "nope")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestSearch(t *testing.T) {
	c := newMockClient(t)
	results, err := c.Search(context.Background(), "洱海")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "n3", results[0].ID)
	assert.Equal(t, "carol", results[0].UserID)
	assert.NotEmpty(t, results[0].Video)
}
