package service

import (
	"context"

	"Tripnote/models"
	"Tripnote/pkg/api"
	"Tripnote/pkg/apperr"
	"Tripnote/pkg/log"

	cmap "github.com/orcaman/concurrent-map/v2"
	"go.uber.org/zap"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Follow(ctx context.Context, targetID string) error
	Unfollow(ctx context.Context, targetID string) error
	IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error)
	CheckFollowing(ctx context.Context, targetID string) (bool, error)
	Followings(ctx context.Context, userID string) ([]*models.User, error)
	Fans(ctx context.Context, userID string) ([]*models.User, error)
}

// FollowCache 本地关注状态，key 为 follower:followee，后返回的结果覆盖先返回的
type FollowCache struct {
	m cmap.ConcurrentMap[string, bool]
}

func NewFollowCache() *FollowCache {
	return &FollowCache{m: cmap.New[bool]()}
}

func (c *FollowCache) Get(followerID, followeeID string) (bool, bool) {
	return c.m.Get(followKey(followerID, followeeID))
}

func (c *FollowCache) Set(followerID, followeeID string, following bool) {
	c.m.Set(followKey(followerID, followeeID), following)
}

func followKey(followerID, followeeID string) string {
	return followerID + ":" + followeeID
}

type FollowService struct {
	Session ISessionStore
	Users   api.IUserDirectory
	Loader  *UserLoader
	Cache   *FollowCache
}

func (s *FollowService) Follow(ctx context.Context, targetID string) error {
	return s.setFollow(ctx, targetID, true)
}

func (s *FollowService) Unfollow(ctx context.Context, targetID string) error {
	return s.setFollow(ctx, targetID, false)
}

// setFollow 失败直接返回，不对界面伪装成功
func (s *FollowService) setFollow(ctx context.Context, targetID string, follow bool) error {
	cur := s.Session.Current()
	if cur == nil {
		return apperr.Validation("请先登录")
	}
	// 不能关注自己
	if cur.ID == targetID {
		return apperr.Validation("不能关注自己")
	}

	var (
		ok  bool
		err error
	)
	if follow {
		ok, err = s.Users.Follow(ctx, cur.ID, targetID)
	} else {
		ok, err = s.Users.Unfollow(ctx, cur.ID, targetID)
	}
	if err != nil {
		return err
	}
	if !ok {
		if follow {
			return apperr.Network(0, "关注失败", nil)
		}
		return apperr.Network(0, "取消关注失败", nil)
	}
	s.Cache.Set(cur.ID, targetID, follow)

	// 刷新关注数、粉丝数
	if err := s.Session.RefreshUser(ctx); err != nil {
		log.L.Warn("refresh user after follow", zap.String("user_id", cur.ID), zap.Error(err))
	}
	return nil
}

// IsFollowing 查询失败时退回本地最近一次确认过的状态
func (s *FollowService) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	following, err := s.Users.IsFollowing(ctx, followerID, followeeID)
	if err != nil {
		if cached, ok := s.Cache.Get(followerID, followeeID); ok {
			log.L.Warn("check following, use cached state",
				zap.String("user_id", followerID), zap.String("target_id", followeeID), zap.Error(err))
			return cached, nil
		}
		return false, err
	}
	s.Cache.Set(followerID, followeeID, following)
	return following, nil
}

// CheckFollowing 当前用户是否关注了 target，未登录或是自己时为 false
func (s *FollowService) CheckFollowing(ctx context.Context, targetID string) (bool, error) {
	cur := s.Session.Current()
	if cur == nil || cur.ID == targetID {
		return false, nil
	}
	return s.IsFollowing(ctx, cur.ID, targetID)
}

func (s *FollowService) Followings(ctx context.Context, userID string) ([]*models.User, error) {
	u, err := s.Users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Loader.List(ctx, u.Following), nil
}

func (s *FollowService) Fans(ctx context.Context, userID string) ([]*models.User, error) {
	u, err := s.Users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Loader.List(ctx, u.Fans), nil
}
