package handler

import (
	"Tripnote/models"
	"Tripnote/pkg/apperr"
	"Tripnote/service"

	"github.com/urfave/cli/v2"
)

type Follow struct {
	FollowService service.IFollowService
	Session       service.ISessionStore
	Console       *Console
}

func (f *Follow) Commands() []*cli.Command {
	return []*cli.Command{
		{Name: "follow", Usage: "关注用户", ArgsUsage: "<user-id>", Action: f.FollowUser},
		{Name: "unfollow", Usage: "取消关注", ArgsUsage: "<user-id>", Action: f.UnfollowUser},
		{Name: "following", Usage: "关注列表", ArgsUsage: "[user-id]", Action: f.Followings},
		{Name: "fans", Usage: "粉丝列表", ArgsUsage: "[user-id]", Action: f.Fans},
	}
}

func (f *Follow) FollowUser(c *cli.Context) error {
	target, err := requireArg(c, 0, "用户 id")
	if err != nil {
		return f.Console.Alert(err)
	}
	if err = f.FollowService.Follow(c.Context, target); err != nil {
		return f.Console.Alert(err)
	}
	f.Console.Printf("已关注 %s\n", target)
	return nil
}

func (f *Follow) UnfollowUser(c *cli.Context) error {
	target, err := requireArg(c, 0, "用户 id")
	if err != nil {
		return f.Console.Alert(err)
	}
	if err = f.FollowService.Unfollow(c.Context, target); err != nil {
		return f.Console.Alert(err)
	}
	f.Console.Printf("已取消关注 %s\n", target)
	return nil
}

func (f *Follow) Followings(c *cli.Context) error {
	id, err := f.userID(c)
	if err != nil {
		return f.Console.Alert(err)
	}
	users, err := f.FollowService.Followings(c.Context, id)
	if err != nil {
		return f.Console.Alert(err)
	}
	f.print(users, "还没有关注任何人")
	return nil
}

func (f *Follow) Fans(c *cli.Context) error {
	id, err := f.userID(c)
	if err != nil {
		return f.Console.Alert(err)
	}
	users, err := f.FollowService.Fans(c.Context, id)
	if err != nil {
		return f.Console.Alert(err)
	}
	f.print(users, "还没有粉丝")
	return nil
}

// userID 不传时默认当前登录用户
func (f *Follow) userID(c *cli.Context) (string, error) {
	if id := c.Args().First(); id != "" {
		return id, nil
	}
	cur := f.Session.Current()
	if cur == nil {
		return "", apperr.Validation("请先登录")
	}
	return cur.ID, nil
}

func (f *Follow) print(users []*models.User, empty string) {
	if len(users) == 0 {
		f.Console.Println(empty)
		return
	}
	for _, u := range users {
		f.Console.Printf("%s (%s)\n", u.DisplayName(), u.ID)
	}
}
