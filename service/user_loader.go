package service

import (
	"context"

	"Tripnote/config"
	"Tripnote/models"
	"Tripnote/pkg/api"
	"Tripnote/pkg/log"
	"Tripnote/pkg/utils"
	"Tripnote/types"

	"github.com/sourcegraph/conc/iter"
	"go.uber.org/zap"
)

// PlaceholderNickname 作者信息拉取失败时展示的昵称
const PlaceholderNickname = "momo"

// UserLoader 批量查询用户，单个失败不影响其他
type UserLoader struct {
	Directory api.IUserDirectory
	Config    *config.Api
}

// Users 查询成功的用户，失败的 id 不出现在结果里
func (l *UserLoader) Users(ctx context.Context, ids []string) map[string]*models.User {
	ids = distinct(ids)
	fetched := iter.Map(ids, func(id *string) *models.User {
		u, err := l.Directory.GetUser(ctx, *id)
		if err != nil {
			log.L.Warn("load user failed", zap.String("user_id", *id), zap.Error(err))
			return nil
		}
		return u
	})

	out := make(map[string]*models.User, len(ids))
	for i, u := range fetched {
		if u != nil {
			out[ids[i]] = u
		}
	}
	return out
}

// Authors 列表展示用的作者信息，失败的用占位数据
func (l *UserLoader) Authors(ctx context.Context, ids []string) map[string]types.Author {
	users := l.Users(ctx, ids)
	out := make(map[string]types.Author, len(ids))
	for _, id := range distinct(ids) {
		if u, ok := users[id]; ok {
			out[id] = types.Author{
				ID:       u.ID,
				Nickname: u.DisplayName(),
				Avatar:   u.Profile.Avatar,
			}
			continue
		}
		out[id] = l.PlaceholderAuthor(id)
	}
	return out
}

// List 按 ids 顺序返回，失败的用占位用户
func (l *UserLoader) List(ctx context.Context, ids []string) []*models.User {
	users := l.Users(ctx, ids)
	out := make([]*models.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := users[id]; ok {
			out = append(out, u.Clone())
			continue
		}
		out = append(out, placeholderUser(id, l.Config.BaseURL))
	}
	return out
}

func (l *UserLoader) PlaceholderAuthor(id string) types.Author {
	return types.Author{
		ID:          id,
		Nickname:    PlaceholderNickname,
		Avatar:      l.Config.BaseURL,
		Placeholder: true,
	}
}

func placeholderUser(id, avatar string) *models.User {
	return &models.User{
		ID:        id,
		Profile:   models.Profile{Nickname: PlaceholderNickname, Avatar: avatar},
		Following: []string{},
		Fans:      []string{},
		Favorites: []string{},
	}
}

// distinct 去掉空串和重复 id，保持顺序
func distinct(ids []string) []string {
	return utils.Remove(utils.Unique(ids), "")
}
