package handler

import (
	"Tripnote/config"
	"Tripnote/pkg/router"

	"github.com/google/wire"
)

// ProvideRouter 启动时停在登录后的默认页面
func ProvideRouter(conf *config.Session) *router.Router {
	return router.New(router.Parse(conf.LandingRoute))
}

var ProviderSet = wire.NewSet(
	ProvideRouter,
	NewConsole,
	wire.Struct(new(Auth), "*"),
	wire.Struct(new(Feed), "*"),
	wire.Struct(new(Note), "*"),
	wire.Struct(new(Follow), "*"),
	wire.Struct(new(Search), "*"),
	wire.Struct(new(Profile), "*"),
	wire.Struct(new(Navigate), "*"),
	wire.Struct(new(App), "*"),
)
