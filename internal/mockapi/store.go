package mockapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"Tripnote/models"
	"Tripnote/pkg/response"
	"Tripnote/pkg/snowflake"
	"Tripnote/types"
)

var (
	ErrUserNotFound = response.NewError(http.StatusNotFound, "用户不存在")
	ErrNoteNotFound = response.NewError(http.StatusNotFound, "游记不存在")
	ErrUserExists   = response.NewError(http.StatusConflict, "账号已存在")
	ErrFollowSelf   = response.NewError(http.StatusBadRequest, "不能关注自己")
)

// Seed 初始数据
type Seed struct {
	Users []models.User `json:"users"`
	Notes []models.Note `json:"notes"`
}

func LoadSeed(path string) (*Seed, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var seed Seed
	if err := json.Unmarshal(content, &seed); err != nil {
		return nil, fmt.Errorf("解析 %s 失败: %w", path, err)
	}
	return &seed, nil
}

// Store 内存数据，读写都返回副本
type Store struct {
	mu    sync.RWMutex
	users map[string]*models.User
	notes []*models.Note // 按发布时间倒序
}

func NewStore(seed *Seed) *Store {
	s := &Store{users: make(map[string]*models.User)}
	if seed == nil {
		return s
	}
	for i := range seed.Users {
		u := seed.Users[i].Clone()
		normalizeUser(u)
		s.users[u.ID] = u
	}
	for i := range seed.Notes {
		s.notes = append(s.notes, cloneNote(&seed.Notes[i]))
	}
	return s
}

func normalizeUser(u *models.User) {
	if u.Following == nil {
		u.Following = []string{}
	}
	if u.Fans == nil {
		u.Fans = []string{}
	}
	if u.Favorites == nil {
		u.Favorites = []string{}
	}
}

func cloneNote(n *models.Note) *models.Note {
	c := *n
	c.Image = slices.Clone(n.Image)
	if c.Image == nil {
		c.Image = []string{}
	}
	c.Comments = slices.Clone(n.Comments)
	if c.Comments == nil {
		c.Comments = []models.Comment{}
	}
	return &c
}

func (s *Store) GetUser(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u.Clone(), nil
}

func (s *Store) CreateUser(req *types.CreateUserRequest) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[req.ID]; ok {
		return nil, ErrUserExists
	}
	u := &models.User{ID: req.ID, Password: req.Password}
	normalizeUser(u)
	s.users[u.ID] = u
	return u.Clone(), nil
}

func (s *Store) UpdateUser(req *types.UpdateUserRequest) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[req.ID]
	if !ok {
		return nil, ErrUserNotFound
	}
	if req.Password != nil {
		u.Password = *req.Password
	}
	req.Profile.Apply(&u.Profile)
	return u.Clone(), nil
}

// Follow 双向关系在同一把锁内修改，重复关注是幂等的
func (s *Store) Follow(userID, targetID string) error {
	if userID == targetID {
		return ErrFollowSelf
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	u, t, err := s.pair(userID, targetID)
	if err != nil {
		return err
	}
	if !slices.Contains(u.Following, targetID) {
		u.Following = append(u.Following, targetID)
	}
	if !slices.Contains(t.Fans, userID) {
		t.Fans = append(t.Fans, userID)
	}
	return nil
}

func (s *Store) Unfollow(userID, targetID string) error {
	if userID == targetID {
		return ErrFollowSelf
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	u, t, err := s.pair(userID, targetID)
	if err != nil {
		return err
	}
	u.Following = slices.DeleteFunc(u.Following, func(id string) bool { return id == targetID })
	t.Fans = slices.DeleteFunc(t.Fans, func(id string) bool { return id == userID })
	return nil
}

func (s *Store) pair(userID, targetID string) (*models.User, *models.User, error) {
	u, ok := s.users[userID]
	if !ok {
		return nil, nil, ErrUserNotFound
	}
	t, ok := s.users[targetID]
	if !ok {
		return nil, nil, response.NewError(http.StatusNotFound, "关注的用户不存在")
	}
	return u, t, nil
}

func (s *Store) IsFollowing(userID, targetID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	return ok && slices.Contains(u.Following, targetID)
}

// ListNotes 按 offset 分页，status 为空时不过滤
func (s *Store) ListNotes(status string, offset, limit int) ([]models.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]*models.Note, 0, len(s.notes))
	for _, n := range s.notes {
		if status == "" || n.Status == status {
			filtered = append(filtered, n)
		}
	}
	if offset >= len(filtered) {
		return []models.Note{}, false
	}
	end := min(offset+limit, len(filtered))
	out := make([]models.Note, 0, end-offset)
	for _, n := range filtered[offset:end] {
		out = append(out, *cloneNote(n))
	}
	return out, end < len(filtered)
}

func (s *Store) NotesByUser(userID string) []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Note, 0)
	for _, n := range s.notes {
		if n.UserID == userID {
			out = append(out, *cloneNote(n))
		}
	}
	return out
}

func (s *Store) GetNote(id string) (*models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.notes {
		if n.ID == id {
			return cloneNote(n), nil
		}
	}
	return nil, ErrNoteNotFound
}

func (s *Store) AddComment(req *types.AddCommentRequest) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[req.UserID]; !ok {
		return nil, ErrUserNotFound
	}
	idx := slices.IndexFunc(s.notes, func(n *models.Note) bool { return n.ID == req.NoteID })
	if idx < 0 {
		return nil, ErrNoteNotFound
	}
	comment := models.Comment{
		ID:        snowflake.GenStringID(),
		UserID:    req.UserID,
		Content:   req.Content,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	s.notes[idx].Comments = append(s.notes[idx].Comments, comment)
	return &comment, nil
}

// Search 标题、正文匹配游记，昵称、账号匹配用户，不区分大小写
func (s *Store) Search(keyword string) []models.SearchResult {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	out := make([]models.SearchResult, 0)
	if kw == "" {
		return out
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.notes {
		if n.Status != models.NoteStatusApproved {
			continue
		}
		if strings.Contains(strings.ToLower(n.Title), kw) || strings.Contains(strings.ToLower(n.Content), kw) {
			out = append(out, models.SearchResult{
				ID:          n.ID,
				UserID:      n.UserID,
				Title:       n.Title,
				Description: n.Content,
				Image:       slices.Clone(n.Image),
				Video:       n.Video,
				Type:        models.SearchTypePost,
				CreatedAt:   n.CreatedAt,
			})
		}
	}

	ids := make([]string, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		u := s.users[id]
		if strings.Contains(strings.ToLower(u.ID), kw) || strings.Contains(strings.ToLower(u.Profile.Nickname), kw) {
			image := []string{}
			if u.Profile.Avatar != "" {
				image = append(image, u.Profile.Avatar)
			}
			out = append(out, models.SearchResult{
				ID:          u.ID,
				UserID:      u.ID,
				Title:       u.DisplayName(),
				Description: u.Profile.Signature,
				Image:       image,
				Type:        models.SearchTypeUser,
			})
		}
	}
	return out
}
