package service

import (
	"context"
	"net/http/httptest"
	"testing"

	"Tripnote/config"
	"Tripnote/dao"
	"Tripnote/internal/mockapi"
	"Tripnote/models"
	"Tripnote/pkg/api"
	"Tripnote/pkg/router"
	"Tripnote/pkg/storage"
	"Tripnote/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type harness struct {
	conf    *config.Config
	client  *api.Client
	users   api.IUserDirectory
	notes   api.INoteClient
	storage *storage.MemoryStorage
	nav     *router.Router
	session *SessionStore
	loader  *UserLoader
	follow  *FollowService
	feed    *FeedService
	note    *NoteService
	search  *SearchService
	profile *ProfileService
}

type harnessOption func(h *harness)

func withUsers(fn func(api.IUserDirectory) api.IUserDirectory) harnessOption {
	return func(h *harness) { h.users = fn(h.users) }
}

func withNotes(fn func(api.INoteClient) api.INoteClient) harnessOption {
	return func(h *harness) { h.notes = fn(h.notes) }
}

// newHarness 基于 mockapi 组装全部服务，seed 为空时使用内置数据
func newHarness(t *testing.T, seed *mockapi.Seed, opts ...harnessOption) *harness {
	t.Helper()
	srv := httptest.NewServer(mockapi.New(seed, "test-salt"))
	t.Cleanup(srv.Close)

	conf := config.Default()
	conf.Api.BaseURL = srv.URL
	conf.Storage.Driver = config.StorageDriverMemory

	h := &harness{
		conf:    conf,
		client:  api.New(conf.Api),
		storage: storage.NewMemoryStorage(),
		nav:     router.New(router.Parse("/(tabs)")),
	}
	h.users, h.notes = h.client, h.client
	for _, opt := range opts {
		opt(h)
	}

	h.session = h.newSession()
	h.loader = &UserLoader{Directory: h.users, Config: conf.Api}
	h.follow = &FollowService{Session: h.session, Users: h.users, Loader: h.loader, Cache: NewFollowCache()}
	h.feed = &FeedService{Notes: h.notes, Loader: h.loader, Config: conf}
	h.note = &NoteService{Notes: h.notes, Users: h.users, Session: h.session, Follow: h.follow, Loader: h.loader}
	h.search = &SearchService{Notes: h.notes, Loader: h.loader, HistoryDAO: dao.NewSearchHistoryDAO(h.storage), Config: conf}
	h.profile = &ProfileService{Users: h.users, Notes: h.notes, Session: h.session, Loader: h.loader, Verifier: NewPasswordVerifier()}
	return h
}

// newSession 同一份本地存储上的新会话，模拟冷启动
func (h *harness) newSession() *SessionStore {
	return NewSessionStore(h.users, dao.NewSessionDAO(h.storage), NewPasswordVerifier(), h.nav, h.conf.Session)
}

func (h *harness) login(t *testing.T, id, password string) *models.User {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, h.session.Init(ctx))
	u, err := h.session.Login(ctx, id, password)
	require.NoError(t, err)
	return u
}

func (h *harness) persisted(t *testing.T) *models.User {
	t.Helper()
	u, err := dao.NewSessionDAO(h.storage).Load(context.Background())
	require.NoError(t, err)
	return u
}

// stubUsers 覆盖部分 IUserDirectory 方法，其余走真实客户端
type stubUsers struct {
	api.IUserDirectory
	getUser     func(ctx context.Context, id string) (*models.User, error)
	follow      func(ctx context.Context, followerID, followeeID string) (bool, error)
	isFollowing func(ctx context.Context, followerID, followeeID string) (bool, error)
}

func (s *stubUsers) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	if s.isFollowing != nil {
		return s.isFollowing(ctx, followerID, followeeID)
	}
	return s.IUserDirectory.IsFollowing(ctx, followerID, followeeID)
}

func (s *stubUsers) GetUser(ctx context.Context, id string) (*models.User, error) {
	if s.getUser != nil {
		return s.getUser(ctx, id)
	}
	return s.IUserDirectory.GetUser(ctx, id)
}

func (s *stubUsers) Follow(ctx context.Context, followerID, followeeID string) (bool, error) {
	if s.follow != nil {
		return s.follow(ctx, followerID, followeeID)
	}
	return s.IUserDirectory.Follow(ctx, followerID, followeeID)
}

type stubNotes struct {
	api.INoteClient
	listUserNotes func(ctx context.Context, userID string) ([]models.Note, error)
	search        func(ctx context.Context, keyword string) ([]models.SearchResult, error)
	listNotes     func(ctx context.Context, req *types.ListNotesRequest) (*types.NotesPage, error)
}

func (s *stubNotes) ListUserNotes(ctx context.Context, userID string) ([]models.Note, error) {
	if s.listUserNotes != nil {
		return s.listUserNotes(ctx, userID)
	}
	return s.INoteClient.ListUserNotes(ctx, userID)
}

func (s *stubNotes) Search(ctx context.Context, keyword string) ([]models.SearchResult, error) {
	if s.search != nil {
		return s.search(ctx, keyword)
	}
	return s.INoteClient.Search(ctx, keyword)
}

func (s *stubNotes) ListNotes(ctx context.Context, req *types.ListNotesRequest) (*types.NotesPage, error) {
	if s.listNotes != nil {
		return s.listNotes(ctx, req)
	}
	return s.INoteClient.ListNotes(ctx, req)
}

// seedWithGhost 内置数据外加一篇作者不存在的笔记
func seedWithGhost() *mockapi.Seed {
	seed := mockapi.DefaultSeed()
	seed.Notes = append([]models.Note{{
		ID:        "g1",
		UserID:    "ghost",
		Title:     "作者已注销",
		Content:   "ghost note",
		Image:     []string{},
		Status:    models.NoteStatusApproved,
		CreatedAt: "2024-05-21T08:00:00Z",
		Comments:  []models.Comment{{ID: "gc1", UserID: "ghost", Content: "?"}, {ID: "gc2", UserID: "bob", Content: "!"}},
	}}, seed.Notes...)
	seed.Users[0].Following = append(seed.Users[0].Following, "ghost")
	seed.Users[0].Favorites = append(seed.Users[0].Favorites, "deleted-note")
	return seed
}
