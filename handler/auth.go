package handler

import (
	"Tripnote/pkg/apperr"
	"Tripnote/pkg/router"
	"Tripnote/service"
	"Tripnote/types"

	"github.com/urfave/cli/v2"
)

type Auth struct {
	Session service.ISessionStore
	Router  *router.Router
	Console *Console
}

func (a *Auth) Commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "login",
			Usage:     "登录",
			ArgsUsage: "[id] [password]",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "id", Aliases: []string{"u"}, Usage: "账号"},
				&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "密码"},
				&cli.StringFlag{Name: "redirect", Usage: "登录后打开的页面"},
			},
			Action: a.Login,
		},
		{
			Name:  "register",
			Usage: "注册",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "id", Aliases: []string{"u"}, Usage: "账号"},
				&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "密码"},
				&cli.StringFlag{Name: "confirm", Aliases: []string{"c"}, Usage: "确认密码"},
			},
			Action: a.Register,
		},
		{Name: "logout", Usage: "退出登录", Action: a.Logout},
		{Name: "whoami", Usage: "当前登录用户", Action: a.Whoami},
		{Name: "refresh", Usage: "从服务端刷新当前用户", Action: a.Refresh},
	}
}

// Login 登录成功后优先回到 redirect 页面
func (a *Auth) Login(c *cli.Context) error {
	form := &types.LoginForm{
		ID:       flagOrArg(c, "id", 0),
		Password: flagOrArg(c, "password", 1),
	}
	if err := service.ValidateForm(form); err != nil {
		return a.Console.Alert(err)
	}

	redirect := c.String("redirect")
	if redirect == "" {
		redirect = a.Router.Current().Param("redirect")
	}

	u, err := a.Session.Login(c.Context, form.ID, form.Password)
	if err != nil {
		return a.Console.Alert(err)
	}
	if redirect != "" {
		a.Router.Replace(router.Parse(redirect))
	}

	a.Console.Printf("登录成功，欢迎 %s\n", u.DisplayName())
	a.Console.Printf("当前页面: %s\n", a.Router.Current())
	return nil
}

func (a *Auth) Register(c *cli.Context) error {
	form := &types.RegisterForm{
		ID:              c.String("id"),
		Password:        c.String("password"),
		ConfirmPassword: c.String("confirm"),
	}
	if err := service.ValidateForm(form); err != nil {
		return a.Console.Alert(err)
	}

	u, err := a.Session.Register(c.Context, form.ID, form.Password)
	if err != nil {
		return a.Console.Alert(err)
	}
	a.Console.Printf("注册成功，欢迎 %s\n", u.DisplayName())
	a.Console.Printf("当前页面: %s\n", a.Router.Current())
	return nil
}

func (a *Auth) Logout(c *cli.Context) error {
	if err := a.Session.Logout(c.Context); err != nil {
		return a.Console.Alert(err)
	}
	a.Console.Println("已退出登录")
	return nil
}

func (a *Auth) Whoami(c *cli.Context) error {
	u := a.Session.Current()
	if u == nil {
		a.Console.Println("未登录")
		return nil
	}
	a.Console.Printf("%s (%s)\n", u.DisplayName(), u.ID)
	if u.Profile.City != "" {
		a.Console.Printf("城市: %s\n", u.Profile.City)
	}
	if u.Profile.Signature != "" {
		a.Console.Printf("签名: %s\n", u.Profile.Signature)
	}
	a.Console.Printf("关注 %d · 粉丝 %d · 收藏 %d\n", len(u.Following), len(u.Fans), len(u.Favorites))
	return nil
}

func (a *Auth) Refresh(c *cli.Context) error {
	if !a.Session.IsAuthenticated() {
		a.Console.Println("未登录")
		return nil
	}
	if err := a.Session.RefreshUser(c.Context); err != nil {
		return a.Console.Alert(err)
	}
	return a.Whoami(c)
}

// flagOrArg 参数既可以用 flag 也可以按位置传
func flagOrArg(c *cli.Context, name string, pos int) string {
	if v := c.String(name); v != "" {
		return v
	}
	return c.Args().Get(pos)
}

func requireArg(c *cli.Context, pos int, label string) (string, error) {
	v := c.Args().Get(pos)
	if v == "" {
		return "", apperr.Validation("缺少参数: " + label)
	}
	return v, nil
}
