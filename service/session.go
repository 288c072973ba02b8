package service

import (
	"context"
	"errors"
	"sync"

	"Tripnote/config"
	"Tripnote/dao"
	"Tripnote/models"
	"Tripnote/pkg/api"
	"Tripnote/pkg/apperr"
	"Tripnote/pkg/log"
	"Tripnote/pkg/router"
	"Tripnote/types"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var _ ISessionStore = (*SessionStore)(nil)

type ISessionStore interface {
	Init(ctx context.Context) error
	Login(ctx context.Context, id, password string) (*models.User, error)
	Register(ctx context.Context, id, password string) (*models.User, error)
	Logout(ctx context.Context) error
	RefreshUser(ctx context.Context) error
	IsLoading() bool
	IsAuthenticated() bool
	Current() *models.User
	Subscribe(fn func(SessionState)) func()
}

// SessionState 会话快照
type SessionState struct {
	IsLoading       bool
	IsAuthenticated bool
	User            *models.User
}

// Navigator 会话变化后跳转页面
type Navigator interface {
	Replace(route router.Route)
}

// SessionStore 进程内唯一的登录态，所有写操作在锁内完成，读到的都是副本
type SessionStore struct {
	Users      api.IUserDirectory
	SessionDAO *dao.SessionDAO
	Verifier   CredentialVerifier
	Navigator  Navigator
	Config     *config.Session

	mu      sync.RWMutex
	user    *models.User
	loading bool
	// 登录、注册、退出、启动时 +1，刷新结果的 gen 不一致就丢弃
	gen uint64

	lmu       sync.Mutex
	listeners map[int]func(SessionState)
	nextID    int

	refresh singleflight.Group
}

func NewSessionStore(
	users api.IUserDirectory,
	sessions *dao.SessionDAO,
	verifier CredentialVerifier,
	nav Navigator,
	conf *config.Session,
) *SessionStore {
	return &SessionStore{
		Users:      users,
		SessionDAO: sessions,
		Verifier:   verifier,
		Navigator:  nav,
		Config:     conf,
		loading:    true,
		listeners:  make(map[int]func(SessionState)),
	}
}

// Init 冷启动：读本地记录，按配置向服务端校验，然后结束 loading
func (s *SessionStore) Init(ctx context.Context) error {
	u, err := s.SessionDAO.Load(ctx)
	if errors.Is(err, dao.ErrCorrupt) {
		log.L.Warn("discard corrupt session record", zap.Error(err))
		if rmErr := s.SessionDAO.Clear(ctx); rmErr != nil {
			log.L.Warn("remove corrupt session record", zap.Error(rmErr))
		}
		u, err = nil, nil
	}
	if err != nil {
		log.L.Error("load session", zap.Error(err))
		u = nil
	}
	if u != nil && s.Config.ValidateOnStart {
		u = s.validate(ctx, u)
	}

	s.mu.Lock()
	s.user = u
	s.loading = false
	s.gen++
	state := s.stateLocked()
	s.mu.Unlock()

	s.notify(state)
	return err
}

// validate 账号已被删除时清掉本地记录，网络失败时沿用本地记录
func (s *SessionStore) validate(ctx context.Context, cached *models.User) *models.User {
	fresh, err := s.Users.GetUser(ctx, cached.ID)
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		log.L.Info("stored user no longer exists", zap.String("user_id", cached.ID))
		if rmErr := s.SessionDAO.Clear(ctx); rmErr != nil {
			log.L.Warn("remove stale session record", zap.Error(rmErr))
		}
		return nil
	case err != nil:
		log.L.Warn("validate session offline, keep cached record", zap.String("user_id", cached.ID), zap.Error(err))
		return cached
	}
	if err := s.SessionDAO.Save(ctx, fresh); err != nil {
		log.L.Warn("save validated session", zap.Error(err))
	}
	return fresh
}

func (s *SessionStore) Login(ctx context.Context, id, password string) (*models.User, error) {
	u, err := s.Users.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.Verifier.Verify(u.Password, password) {
		return nil, apperr.InvalidCredentials("密码错误")
	}
	if err := s.activate(ctx, u); err != nil {
		return nil, err
	}
	log.L.Info("login", zap.String("user_id", u.ID))
	return u.Clone(), nil
}

// Register 账号不存在（404）才创建，其他查询错误直接返回
func (s *SessionStore) Register(ctx context.Context, id, password string) (*models.User, error) {
	_, err := s.Users.GetUser(ctx, id)
	if err == nil {
		return nil, apperr.AccountExists("账号已存在")
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	u, err := s.Users.CreateUser(ctx, &types.CreateUserRequest{ID: id, Password: password})
	if err != nil {
		return nil, err
	}
	if err := s.activate(ctx, u); err != nil {
		return nil, err
	}
	log.L.Info("register", zap.String("user_id", u.ID))
	return u.Clone(), nil
}

// activate 持久化成功后才替换内存中的会话
func (s *SessionStore) activate(ctx context.Context, u *models.User) error {
	if err := ctx.Err(); err != nil {
		return apperr.Network(0, "请求已取消", err)
	}

	s.mu.Lock()
	if err := s.SessionDAO.Save(ctx, u); err != nil {
		s.mu.Unlock()
		return err
	}
	s.user = u.Clone()
	s.gen++
	state := s.stateLocked()
	s.mu.Unlock()

	s.notify(state)
	s.navigate(s.Config.LandingRoute)
	return nil
}

// Logout 本地记录删除失败也会清空内存中的会话
func (s *SessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	err := s.SessionDAO.Clear(ctx)
	s.user = nil
	s.gen++
	state := s.stateLocked()
	s.mu.Unlock()

	if err != nil {
		log.L.Warn("remove session record", zap.Error(err))
	}
	s.notify(state)
	s.navigate(s.Config.LoginRoute)
	return err
}

// RefreshUser 并发调用合并为一次请求；请求期间会话变了则丢弃结果
func (s *SessionStore) RefreshUser(ctx context.Context) error {
	s.mu.RLock()
	cur, gen := s.user, s.gen
	s.mu.RUnlock()
	if cur == nil {
		return nil
	}

	// 合并后的请求不跟随任一调用方取消，每个调用方只等自己的 ctx
	ch := s.refresh.DoChan(cur.ID, func() (any, error) {
		return s.Users.GetUser(context.WithoutCancel(ctx), cur.ID)
	})
	var res singleflight.Result
	select {
	case <-ctx.Done():
		return apperr.Network(0, "请求已取消", ctx.Err())
	case res = <-ch:
	}
	if res.Err != nil {
		return res.Err
	}
	fresh := res.Val.(*models.User)

	s.mu.Lock()
	if s.gen != gen || s.user == nil || s.user.ID != fresh.ID {
		s.mu.Unlock()
		log.L.Debug("discard stale refresh", zap.String("user_id", fresh.ID))
		return nil
	}
	if err := s.SessionDAO.Save(ctx, fresh); err != nil {
		s.mu.Unlock()
		return err
	}
	s.user = fresh.Clone()
	state := s.stateLocked()
	s.mu.Unlock()

	s.notify(state)
	return nil
}

func (s *SessionStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// Current 当前用户的副本，未登录返回 nil
func (s *SessionStore) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.Clone()
}

func (s *SessionStore) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

// Subscribe 会话变化时回调，返回取消订阅函数
func (s *SessionStore) Subscribe(fn func(SessionState)) func() {
	s.lmu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.lmu.Unlock()

	return func() {
		s.lmu.Lock()
		delete(s.listeners, id)
		s.lmu.Unlock()
	}
}

func (s *SessionStore) stateLocked() SessionState {
	return SessionState{
		IsLoading:       s.loading,
		IsAuthenticated: s.user != nil,
		User:            s.user.Clone(),
	}
}

// notify 在锁外执行，回调里可以再读会话或跳转
func (s *SessionStore) notify(state SessionState) {
	s.lmu.Lock()
	fns := make([]func(SessionState), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.lmu.Unlock()

	for _, fn := range fns {
		st := state
		st.User = state.User.Clone()
		fn(st)
	}
}

func (s *SessionStore) navigate(path string) {
	if s.Navigator == nil || path == "" {
		return
	}
	s.Navigator.Replace(router.Parse(path))
}
