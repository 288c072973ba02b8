package models

import (
	"errors"
	"slices"

	"github.com/tidwall/gjson"
)

// User 账号记录，与服务端记录一致并原样保存在本地
type User struct {
	ID        string   `json:"id"`
	Password  string   `json:"password"`
	Name      string   `json:"name,omitempty"`
	Profile   Profile  `json:"profile"`
	Following []string `json:"following"`
	Fans      []string `json:"fans"`
	Favorites []string `json:"favorites"`
}

// Profile 用户资料，所有字段可选
type Profile struct {
	Avatar    string `json:"avatar,omitempty"`
	Nickname  string `json:"nickname,omitempty"`
	Gender    string `json:"gender,omitempty"`
	Birthday  string `json:"birthday,omitempty"`
	City      string `json:"city,omitempty"`
	Signature string `json:"signature,omitempty"`
}

var ErrInvalidJSON = errors.New("invalid json")

// 历史版本里资料字段的 key 不统一，统一在这里解析
var profileKeys = []string{"profile", "user-info", "user_info"}

func (u *User) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return ErrInvalidJSON
	}
	r := gjson.ParseBytes(data)
	if !r.IsObject() {
		return errors.New("user: expected json object")
	}

	p := first(r, profileKeys...)
	*u = User{
		ID:       r.Get("id").String(),
		Password: r.Get("password").String(),
		Name:     r.Get("name").String(),
		Profile: Profile{
			Avatar:    p.Get("avatar").String(),
			Nickname:  p.Get("nickname").String(),
			Gender:    p.Get("gender").String(),
			Birthday:  p.Get("birthday").String(),
			City:      p.Get("city").String(),
			Signature: p.Get("signature").String(),
		},
		Following: stringsOf(first(r, "following", "follow")),
		Fans:      stringsOf(r.Get("fans")),
		Favorites: stringsOf(first(r, "favorites", "favorite")),
	}
	// 旧记录把关注、粉丝放在资料里
	if !first(r, "following", "follow").Exists() {
		u.Following = stringsOf(p.Get("follow"))
	}
	if !r.Get("fans").Exists() {
		u.Fans = stringsOf(p.Get("fans"))
	}
	return nil
}

// Clone 深拷贝，对外暴露的会话快照都经过这里
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Following = slices.Clone(u.Following)
	c.Fans = slices.Clone(u.Fans)
	c.Favorites = slices.Clone(u.Favorites)
	return &c
}

func (u *User) IsFollowing(id string) bool {
	return slices.Contains(u.Following, id)
}

// DisplayName 昵称优先，其次 name，最后是 id
func (u *User) DisplayName() string {
	switch {
	case u.Profile.Nickname != "":
		return u.Profile.Nickname
	case u.Name != "":
		return u.Name
	default:
		return u.ID
	}
}
