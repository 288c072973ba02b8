package dao

import (
	"context"
	"errors"

	"Tripnote/models"
	"Tripnote/pkg/storage"
)

const SessionKey = "user"

// SessionDAO 本地保存的登录用户，内容与服务端记录一致
type SessionDAO struct {
	Repo[models.User]
}

func NewSessionDAO(s storage.Storage) *SessionDAO {
	return &SessionDAO{Repo: NewRepo[models.User](s, SessionKey)}
}

// Load 没有登录记录时返回 (nil, nil)，记录损坏返回 ErrCorrupt
func (d *SessionDAO) Load(ctx context.Context) (*models.User, error) {
	u, err := d.Get(ctx)
	if err != nil {
		return nil, err
	}
	if u != nil && u.ID == "" {
		return nil, errors.Join(ErrCorrupt, errors.New("dao: user record without id"))
	}
	return u, nil
}

func (d *SessionDAO) Save(ctx context.Context, u *models.User) error {
	return d.Set(ctx, u)
}

func (d *SessionDAO) Clear(ctx context.Context) error {
	return d.Delete(ctx)
}
