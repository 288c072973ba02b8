package handler

import (
	"Tripnote/models"
	"Tripnote/pkg/apperr"
	"Tripnote/service"
	"Tripnote/types"

	"github.com/urfave/cli/v2"
)

type Profile struct {
	ProfileService service.IProfileService
	Session        service.ISessionStore
	Console        *Console
}

func (p *Profile) Commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "profile",
			Usage:  "个人主页",
			Action: p.Show,
			Subcommands: []*cli.Command{
				{
					Name:  "edit",
					Usage: "编辑资料",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "avatar", Usage: "头像地址"},
						&cli.StringFlag{Name: "nickname", Usage: "昵称"},
						&cli.StringFlag{Name: "signature", Usage: "个性签名"},
					},
					Action: p.Edit,
				},
				{
					Name:  "password",
					Usage: "修改密码",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "old", Usage: "原密码"},
						&cli.StringFlag{Name: "new", Usage: "新密码"},
						&cli.StringFlag{Name: "confirm", Usage: "确认密码"},
					},
					Action: p.Password,
				},
				{
					Name:      "favorites",
					Usage:     "收藏的笔记",
					ArgsUsage: "[user-id]",
					Action:    p.Favorites,
				},
			},
		},
	}
}

// Show 部分数据拉取失败时仍然展示已有内容
func (p *Profile) Show(c *cli.Context) error {
	ov, err := p.ProfileService.Overview(c.Context)
	if ov == nil {
		return p.Console.Alert(err)
	}
	if err != nil {
		p.Console.Printf("[提示] %s\n", apperr.Message(err))
	}

	if u := ov.User; u != nil {
		p.Console.Printf("%s (%s)\n", u.DisplayName(), u.ID)
		if u.Profile.Signature != "" {
			p.Console.Printf("%s\n", u.Profile.Signature)
		}
	}
	p.Console.Printf("关注 %d · 粉丝 %d · 笔记 %d · 收藏 %d\n",
		len(ov.Followings), len(ov.Fans), len(ov.Notes), len(ov.Favorites))
	p.Console.Println("笔记:")
	p.printNotes(ov.Notes)
	p.Console.Println("收藏:")
	p.printNotes(ov.Favorites)
	return err
}

func (p *Profile) Edit(c *cli.Context) error {
	var update types.ProfileUpdate
	if c.IsSet("avatar") {
		v := c.String("avatar")
		update.Avatar = &v
	}
	if c.IsSet("nickname") {
		v := c.String("nickname")
		update.Nickname = &v
	}
	if c.IsSet("signature") {
		v := c.String("signature")
		update.Signature = &v
	}

	u, err := p.ProfileService.Update(c.Context, update)
	if err != nil {
		return p.Console.Alert(err)
	}
	p.Console.Printf("资料已更新: %s\n", u.DisplayName())
	return nil
}

func (p *Profile) Password(c *cli.Context) error {
	form := &types.PasswordForm{
		OldPassword:     c.String("old"),
		NewPassword:     c.String("new"),
		ConfirmPassword: c.String("confirm"),
	}
	if err := p.ProfileService.ChangePassword(c.Context, form); err != nil {
		return p.Console.Alert(err)
	}
	p.Console.Println("密码已修改")
	return nil
}

func (p *Profile) Favorites(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		cur := p.Session.Current()
		if cur == nil {
			return p.Console.Alert(apperr.Validation("请先登录"))
		}
		id = cur.ID
	}

	notes, err := p.ProfileService.Favorites(c.Context, id)
	if err != nil {
		return p.Console.Alert(err)
	}
	p.printNotes(notes)
	return nil
}

func (p *Profile) printNotes(notes []models.Note) {
	if len(notes) == 0 {
		p.Console.Println("  (空)")
		return
	}
	for _, n := range notes {
		title := n.Title
		if title == "" {
			title = "笔记已失效"
		}
		p.Console.Printf("  [%s] %s\n", n.ID, title)
	}
}
