package api

import (
	"context"
	"net/http"
	"net/url"

	"Tripnote/models"
	"Tripnote/pkg/apperr"
	"Tripnote/types"
)

var _ IUserDirectory = (*Client)(nil)

// IUserDirectory 用户与关注关系接口
type IUserDirectory interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, req *types.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, req *types.UpdateUserRequest) (*models.User, error)
	Follow(ctx context.Context, followerID, followeeID string) (bool, error)
	Unfollow(ctx context.Context, followerID, followeeID string) (bool, error)
	IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error)
}

// GetUser 获取用户信息，不存在时返回 apperr.ErrNotFound
func (c *Client) GetUser(ctx context.Context, id string) (*models.User, error) {
	res, err := c.do(ctx, http.MethodGet, "/api/user", url.Values{"id": {id}}, nil)
	if err != nil {
		return nil, err
	}
	r, ok := single(res)
	if !ok {
		return nil, apperr.NotFound("用户不存在")
	}
	var user models.User
	if err := decode(r, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser 注册，服务端没有回显记录时返回请求里的最小记录
func (c *Client) CreateUser(ctx context.Context, req *types.CreateUserRequest) (*models.User, error) {
	res, err := c.do(ctx, http.MethodPost, "/user", nil, req)
	if err != nil {
		return nil, err
	}
	r, ok := single(res)
	if !ok {
		return &models.User{
			ID:        req.ID,
			Password:  req.Password,
			Following: []string{},
			Fans:      []string{},
			Favorites: []string{},
		}, nil
	}
	var user models.User
	if err := decode(r, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser 局部更新用户资料
func (c *Client) UpdateUser(ctx context.Context, req *types.UpdateUserRequest) (*models.User, error) {
	res, err := c.do(ctx, http.MethodPut, "/api/user", nil, req)
	if err != nil {
		return nil, err
	}
	r, ok := single(res)
	if !ok {
		return nil, apperr.NotFound("用户不存在")
	}
	var user models.User
	if err := decode(r, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Follow 关注用户
func (c *Client) Follow(ctx context.Context, followerID, followeeID string) (bool, error) {
	res, err := c.do(ctx, http.MethodPost, "/api/follow", nil, &types.FollowRequest{
		UserID:       followerID,
		TargetUserID: followeeID,
	})
	if err != nil {
		return false, err
	}
	return res.Get("success").Bool(), nil
}

// Unfollow 取消关注
func (c *Client) Unfollow(ctx context.Context, followerID, followeeID string) (bool, error) {
	res, err := c.do(ctx, http.MethodPost, "/api/unfollow", nil, &types.FollowRequest{
		UserID:       followerID,
		TargetUserID: followeeID,
	})
	if err != nil {
		return false, err
	}
	return res.Get("success").Bool(), nil
}

// IsFollowing 查询 follower 是否关注了 followee
func (c *Client) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	res, err := c.do(ctx, http.MethodGet, "/api/follow", url.Values{
		"userId":   {followerID},
		"followId": {followeeID},
	}, nil)
	if err != nil {
		return false, err
	}
	return res.Get("isFollowing").Bool(), nil
}
