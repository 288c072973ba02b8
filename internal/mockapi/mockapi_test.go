package mockapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"Tripnote/config"
	"Tripnote/models"
	"Tripnote/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestGetUser(t *testing.T) {
	r := New(nil, "salt")

	w := serve(t, r, http.MethodGet, "/api/user?id=alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var u models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
	assert.Equal(t, "alice", u.ID)
	assert.Equal(t, "阿丽", u.Profile.Nickname)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	w = serve(t, r, http.MethodGet, "/api/user?id=nobody", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "用户不存在", gjson.Get(w.Body.String(), "msg").String())

	w = serve(t, r, http.MethodGet, "/api/user", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUser(t *testing.T) {
	r := New(nil, "salt")

	w := serve(t, r, http.MethodPost, "/user", types.CreateUserRequest{ID: "dave", Password: "pw"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "dave", gjson.Get(w.Body.String(), "id").String())
	assert.True(t, gjson.Get(w.Body.String(), "following").IsArray())

	w = serve(t, r, http.MethodPost, "/user", types.CreateUserRequest{ID: "dave", Password: "other"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = serve(t, r, http.MethodPost, "/user", map[string]string{"id": "erin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUser_PartialProfile(t *testing.T) {
	r := New(nil, "salt")
	nick := "新昵称"

	w := serve(t, r, http.MethodPut, "/api/user", types.UpdateUserRequest{
		ID:      "alice",
		Profile: types.ProfilePatch{Nickname: &nick},
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, "新昵称", gjson.Get(body, "profile.nickname").String())
	assert.Equal(t, "杭州", gjson.Get(body, "profile.city").String())
	assert.Equal(t, "123456", gjson.Get(body, "password").String())
}

func TestFollow_BothSides(t *testing.T) {
	r := New(nil, "salt")

	w := serve(t, r, http.MethodPost, "/api/follow", types.FollowRequest{UserID: "carol", TargetUserID: "alice"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, gjson.Get(w.Body.String(), "success").Bool())

	// 重复关注不产生重复记录
	serve(t, r, http.MethodPost, "/api/follow", types.FollowRequest{UserID: "carol", TargetUserID: "alice"})

	carol := serve(t, r, http.MethodGet, "/api/user?id=carol", nil).Body.String()
	alice := serve(t, r, http.MethodGet, "/api/user?id=alice", nil).Body.String()
	assert.Equal(t, `["alice"]`, gjson.Get(carol, "following").Raw)
	assert.Equal(t, `["carol"]`, gjson.Get(alice, "fans").Raw)

	w = serve(t, r, http.MethodGet, "/api/follow?userId=carol&followId=alice", nil)
	assert.True(t, gjson.Get(w.Body.String(), "isFollowing").Bool())

	w = serve(t, r, http.MethodPost, "/api/unfollow", types.FollowRequest{UserID: "carol", TargetUserID: "alice"})
	require.Equal(t, http.StatusOK, w.Code)
	alice = serve(t, r, http.MethodGet, "/api/user?id=alice", nil).Body.String()
	assert.Equal(t, `[]`, gjson.Get(alice, "fans").Raw)

	w = serve(t, r, http.MethodGet, "/api/follow?userId=carol&followId=alice", nil)
	assert.False(t, gjson.Get(w.Body.String(), "isFollowing").Bool())
}

func TestFollow_Rejects(t *testing.T) {
	r := New(nil, "salt")

	w := serve(t, r, http.MethodPost, "/api/follow", types.FollowRequest{UserID: "alice", TargetUserID: "alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(t, r, http.MethodPost, "/api/follow", types.FollowRequest{UserID: "alice", TargetUserID: "ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListNotes_CursorRoundTrip(t *testing.T) {
	r := New(nil, "salt")

	w := serve(t, r, http.MethodGet, "/api/notes?type=cursor&limit=7&status=approved", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Len(t, gjson.Get(body, "data").Array(), 7)
	assert.True(t, gjson.Get(body, "hasMore").Bool())
	cursor := gjson.Get(body, "nextCursor").String()
	require.NotEmpty(t, cursor)
	assert.Equal(t, "n1", gjson.Get(body, "data.0.id").String())

	w = serve(t, r, http.MethodGet, "/api/notes?type=cursor&limit=7&status=approved&cursor="+cursor, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = w.Body.String()
	ids := gjson.Get(body, "data.#.id").Array()
	require.Len(t, ids, 3)
	assert.Equal(t, "n8", ids[0].String())
	assert.False(t, gjson.Get(body, "hasMore").Bool())
	assert.Empty(t, gjson.Get(body, "nextCursor").String())
	for _, st := range gjson.Get(body, "data.#.status").Array() {
		assert.Equal(t, models.NoteStatusApproved, st.String())
	}
}

func TestListNotes_InvalidCursor(t *testing.T) {
	r := New(nil, "salt")
	w := serve(t, r, http.MethodGet, "/api/notes?type=cursor&cursor=garbage", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListNotes_ByUser(t *testing.T) {
	r := New(nil, "salt")
	w := serve(t, r, http.MethodGet, "/api/notes?user_id=carol", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := gjson.Parse(w.Body.String())
	require.True(t, res.IsArray())
	// 待审核的笔记作者自己能看到
	assert.Len(t, res.Array(), 4)
}

func TestNoteDetailAndComment(t *testing.T) {
	r := New(nil, "salt")

	w := serve(t, r, http.MethodGet, "/api/notedetail?id=n1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, gjson.Get(w.Body.String(), "comments").Array(), 2)

	w = serve(t, r, http.MethodPost, "/api/comments", types.AddCommentRequest{NoteID: "n1", UserID: "alice", Content: "好看"})
	require.Equal(t, http.StatusCreated, w.Code)
	id := gjson.Get(w.Body.String(), "id").String()
	assert.NotEmpty(t, id)

	w = serve(t, r, http.MethodGet, "/api/notedetail?id=n1", nil)
	comments := gjson.Get(w.Body.String(), "comments").Array()
	require.Len(t, comments, 3)
	assert.Equal(t, id, comments[2].Get("id").String())
	assert.Equal(t, "alice", comments[2].Get("user_id").String())

	w = serve(t, r, http.MethodGet, "/api/notedetail?id=missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(t, r, http.MethodPost, "/api/comments", types.AddCommentRequest{NoteID: "missing", UserID: "alice", Content: "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearch(t *testing.T) {
	r := New(nil, "salt")

	w := serve(t, r, http.MethodGet, "/api/search?keyword=成都", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := gjson.Parse(w.Body.String()).Array()
	require.NotEmpty(t, res)
	assert.Equal(t, "n2", res[0].Get("id").String())
	assert.Equal(t, models.SearchTypePost, res[0].Get("type").String())

	w = serve(t, r, http.MethodGet, "/api/search?keyword=bob", nil)
	res = gjson.Parse(w.Body.String()).Array()
	require.Len(t, res, 1)
	assert.Equal(t, models.SearchTypeUser, res[0].Get("type").String())

	w = serve(t, r, http.MethodGet, "/api/search?keyword=", nil)
	assert.Equal(t, "[]", w.Body.String())
}

func TestMetrics(t *testing.T) {
	r := New(nil, "salt")
	serve(t, r, http.MethodGet, "/api/user?id=alice", nil)

	w := serve(t, r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tripnote_mock_http_requests_total")
}

func TestLoadSeed_LegacyKeys(t *testing.T) {
	seed, err := LoadSeed("../../configs/seed.json")
	require.NoError(t, err)
	require.Len(t, seed.Users, 3)

	bob := seed.Users[1]
	assert.Equal(t, "Bob", bob.Profile.Nickname)
	assert.Equal(t, []string{"alice"}, bob.Fans)
	assert.Equal(t, "bob", seed.Notes[0].Comments[0].UserID)

	_, err = LoadSeed("does-not-exist.json")
	assert.Error(t, err)
}

func TestProvideSeed(t *testing.T) {
	conf := config.Default()

	conf.Mock.SeedFile = ""
	seed, err := ProvideSeed(conf)
	require.NoError(t, err)
	assert.Len(t, seed.Users, 3)

	conf.Mock.SeedFile = "missing.json"
	seed, err = ProvideSeed(conf)
	require.NoError(t, err)
	assert.Len(t, seed.Notes, 11)

	conf.Mock.SeedFile = "../../configs/seed.json"
	seed, err = ProvideSeed(conf)
	require.NoError(t, err)
	assert.Len(t, seed.Notes, 10)
}

func TestNoRoute(t *testing.T) {
	r := New(nil, "salt")

	w := serve(t, r, http.MethodGet, "/api/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "接口不存在", gjson.Get(w.Body.String(), "msg").String())

	w = serve(t, r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
