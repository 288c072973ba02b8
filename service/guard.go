package service

import (
	"sync"

	"Tripnote/config"
	"Tripnote/pkg/log"
	"Tripnote/pkg/router"
	"Tripnote/pkg/utils"

	"go.uber.org/zap"
)

// GuardInput 守卫的全部输入
type GuardInput struct {
	IsLoading       bool
	IsAuthenticated bool
	Segment         string
}

// SessionObserver 守卫只需要读登录态和订阅变化
type SessionObserver interface {
	IsLoading() bool
	IsAuthenticated() bool
	Subscribe(fn func(SessionState)) func()
}

// RouteGuard 未登录访问受保护页面时跳到登录页，并带上原页面作为 redirect
type RouteGuard struct {
	Config *config.Guard

	mu   sync.Mutex
	last *GuardInput
}

func NewRouteGuard(conf *config.Guard) *RouteGuard {
	return &RouteGuard{Config: conf}
}

// Evaluate 纯函数，返回需要跳转的目标
func (g *RouteGuard) Evaluate(in GuardInput) (router.Route, bool) {
	// 本地会话还没读完，先不做判断
	if in.IsLoading {
		return router.Route{}, false
	}
	if in.IsAuthenticated || in.Segment == g.Config.AuthSegment {
		return router.Route{}, false
	}
	if !utils.Contains(g.Config.Protected, in.Segment) {
		return router.Route{}, false
	}
	return router.Route{
		Path:   g.Config.AuthPath,
		Params: map[string]string{"redirect": "/" + in.Segment},
	}, true
}

// Watch 会话或路由变化时重新判断，返回停止函数
func (g *RouteGuard) Watch(session SessionObserver, nav *router.Router) func() {
	check := func() {
		in := GuardInput{
			IsLoading:       session.IsLoading(),
			IsAuthenticated: session.IsAuthenticated(),
			Segment:         nav.Current().Segment(),
		}
		target, ok := g.Evaluate(in)

		g.mu.Lock()
		if !ok {
			g.last = nil
			g.mu.Unlock()
			return
		}
		// 同样的输入只跳转一次
		if g.last != nil && *g.last == in {
			g.mu.Unlock()
			return
		}
		g.last = &in
		g.mu.Unlock()

		log.L.Info("guard redirect",
			zap.String("from", nav.Current().String()),
			zap.String("to", target.String()),
		)
		nav.Replace(target)
	}

	stopSession := session.Subscribe(func(SessionState) { check() })
	stopRoute := nav.Subscribe(func(router.Route) { check() })
	check()

	return func() {
		stopSession()
		stopRoute()
	}
}
