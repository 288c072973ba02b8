package types

import "Tripnote/models"

// CreateUserRequest 注册时写入的最小用户记录
type CreateUserRequest struct {
	ID       string `json:"id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ProfilePatch 资料局部更新，nil 表示不修改
type ProfilePatch struct {
	Avatar    *string `json:"avatar,omitempty"`
	Nickname  *string `json:"nickname,omitempty"`
	Gender    *string `json:"gender,omitempty"`
	Birthday  *string `json:"birthday,omitempty"`
	City      *string `json:"city,omitempty"`
	Signature *string `json:"signature,omitempty"`
}

func (p ProfilePatch) Empty() bool {
	return p.Avatar == nil && p.Nickname == nil && p.Gender == nil &&
		p.Birthday == nil && p.City == nil && p.Signature == nil
}

// Apply 把修改合并到资料上
func (p ProfilePatch) Apply(profile *models.Profile) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&profile.Avatar, p.Avatar)
	set(&profile.Nickname, p.Nickname)
	set(&profile.Gender, p.Gender)
	set(&profile.Birthday, p.Birthday)
	set(&profile.City, p.City)
	set(&profile.Signature, p.Signature)
}

// UpdateUserRequest PUT /api/user 请求体
type UpdateUserRequest struct {
	ID       string       `json:"id" binding:"required"`
	Password *string      `json:"password,omitempty"`
	Profile  ProfilePatch `json:"profile"`
}

// ProfileOverview 个人主页
type ProfileOverview struct {
	User       *models.User   `json:"user"`
	Notes      []models.Note  `json:"notes"`
	Followings []*models.User `json:"followings"`
	Fans       []*models.User `json:"fans"`
	Favorites  []models.Note  `json:"favorites"`
}

// ProfileUpdate 资料编辑页可修改的字段，nil 表示不修改
type ProfileUpdate struct {
	Avatar    *string
	Nickname  *string
	Signature *string
}

func (p ProfileUpdate) Empty() bool {
	return p.Avatar == nil && p.Nickname == nil && p.Signature == nil
}
