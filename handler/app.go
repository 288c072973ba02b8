package handler

import (
	"context"

	"Tripnote/pkg/log"
	"Tripnote/pkg/router"
	"Tripnote/service"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

type commander interface {
	Commands() []*cli.Command
}

// App 客户端入口，组装会话、守卫和所有命令
type App struct {
	Session  service.ISessionStore
	Guard    *service.RouteGuard
	Router   *router.Router
	Console  *Console
	Auth     *Auth
	Feed     *Feed
	Note     *Note
	Follow   *Follow
	Search   *Search
	Profile  *Profile
	Navigate *Navigate
}

// Start 先挂守卫再恢复本地会话，返回停止函数
func (a *App) Start(ctx context.Context) func() {
	stop := a.Guard.Watch(a.Session, a.Router)
	if err := a.Session.Init(ctx); err != nil {
		log.L.Warn("init session", zap.Error(err))
	}
	return stop
}

func (a *App) CLI() *cli.App {
	var stop func()
	app := &cli.App{
		Name:   "tripnote",
		Usage:  "旅行日记客户端",
		Writer: a.Console.Out,
		Before: func(c *cli.Context) error {
			stop = a.Start(c.Context)
			return nil
		},
		After: func(c *cli.Context) error {
			if stop != nil {
				stop()
			}
			return nil
		},
	}
	for _, h := range []commander{a.Auth, a.Feed, a.Note, a.Follow, a.Search, a.Profile, a.Navigate} {
		app.Commands = append(app.Commands, h.Commands()...)
	}
	return app
}
