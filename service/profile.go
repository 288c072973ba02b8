package service

import (
	"context"

	"Tripnote/models"
	"Tripnote/pkg/api"
	"Tripnote/pkg/apperr"
	"Tripnote/pkg/log"
	"Tripnote/types"

	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/iter"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var _ IProfileService = (*ProfileService)(nil)

type IProfileService interface {
	Overview(ctx context.Context) (*types.ProfileOverview, error)
	Update(ctx context.Context, update types.ProfileUpdate) (*models.User, error)
	ChangePassword(ctx context.Context, form *types.PasswordForm) error
	Favorites(ctx context.Context, userID string) ([]models.Note, error)
}

type ProfileService struct {
	Users    api.IUserDirectory
	Notes    api.INoteClient
	Session  ISessionStore
	Loader   *UserLoader
	Verifier CredentialVerifier
}

// Overview 个人主页；用户或笔记查询失败时所有列表降级为空，同时返回错误
func (s *ProfileService) Overview(ctx context.Context) (*types.ProfileOverview, error) {
	cur := s.Session.Current()
	if cur == nil {
		return nil, apperr.Validation("请先登录")
	}

	var (
		user  *models.User
		notes []models.Note
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		u, err := s.Users.GetUser(egCtx, cur.ID)
		user = u
		return err
	})
	eg.Go(func() error {
		n, err := s.Notes.ListUserNotes(egCtx, cur.ID)
		notes = n
		return err
	})
	if err := eg.Wait(); err != nil {
		log.L.Warn("load profile overview", zap.String("user_id", cur.ID), zap.Error(err))
		return &types.ProfileOverview{
			User:       cur,
			Notes:      []models.Note{},
			Followings: []*models.User{},
			Fans:       []*models.User{},
			Favorites:  []models.Note{},
		}, err
	}

	// 列表以服务端最新的用户记录为准，和 User 保持一致
	var (
		followings []*models.User
		fans       []*models.User
		favorites  []models.Note
		wg         conc.WaitGroup
	)
	wg.Go(func() { followings = s.Loader.List(ctx, user.Following) })
	wg.Go(func() { fans = s.Loader.List(ctx, user.Fans) })
	wg.Go(func() { favorites = s.favorites(ctx, user.Favorites) })
	wg.Wait()

	return &types.ProfileOverview{
		User:       user,
		Notes:      notes,
		Followings: followings,
		Fans:       fans,
		Favorites:  favorites,
	}, nil
}

// Update 只提交修改过的字段，成功后刷新会话
func (s *ProfileService) Update(ctx context.Context, update types.ProfileUpdate) (*models.User, error) {
	cur := s.Session.Current()
	if cur == nil {
		return nil, apperr.Validation("请先登录")
	}
	if update.Empty() {
		return nil, apperr.Validation("没有需要修改的内容")
	}

	updated, err := s.Users.UpdateUser(ctx, &types.UpdateUserRequest{
		ID: cur.ID,
		Profile: types.ProfilePatch{
			Avatar:    update.Avatar,
			Nickname:  update.Nickname,
			Signature: update.Signature,
		},
	})
	if err != nil {
		return nil, err
	}
	if err := s.Session.RefreshUser(ctx); err != nil {
		log.L.Warn("refresh user after profile update", zap.String("user_id", cur.ID), zap.Error(err))
		return updated, nil
	}
	if u := s.Session.Current(); u != nil {
		return u, nil
	}
	return updated, nil
}

// ChangePassword 校验原密码后提交新密码
func (s *ProfileService) ChangePassword(ctx context.Context, form *types.PasswordForm) error {
	if err := ValidateForm(form); err != nil {
		return err
	}
	cur := s.Session.Current()
	if cur == nil {
		return apperr.Validation("请先登录")
	}
	if !s.Verifier.Verify(cur.Password, form.OldPassword) {
		return apperr.InvalidCredentials("原密码错误")
	}

	password := form.NewPassword
	if _, err := s.Users.UpdateUser(ctx, &types.UpdateUserRequest{ID: cur.ID, Password: &password}); err != nil {
		return err
	}
	if err := s.Session.RefreshUser(ctx); err != nil {
		log.L.Warn("refresh user after password change", zap.String("user_id", cur.ID), zap.Error(err))
	}
	return nil
}

// Favorites 某个用户收藏的笔记
func (s *ProfileService) Favorites(ctx context.Context, userID string) ([]models.Note, error) {
	u, err := s.Users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.favorites(ctx, u.Favorites), nil
}

// favorites 单篇笔记拉取失败时保留 id 作为占位
func (s *ProfileService) favorites(ctx context.Context, ids []string) []models.Note {
	return iter.Map(ids, func(id *string) models.Note {
		note, err := s.Notes.GetNoteDetail(ctx, *id)
		if err != nil {
			log.L.Warn("load favorite note", zap.String("note_id", *id), zap.Error(err))
			return models.Note{ID: *id, Image: []string{}, Comments: []models.Comment{}}
		}
		return *note
	})
}
