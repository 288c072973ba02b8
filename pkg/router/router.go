// Package router 导航栈，替代移动端框架的路由
package router

import (
	"maps"
	"net/url"
	"sort"
	"strings"
	"sync"
)

// Route 导航目标
type Route struct {
	Path   string
	Params map[string]string
}

// Parse 解析 "/auth?redirect=/publish" 形式的地址
func Parse(raw string) Route {
	path, query, _ := strings.Cut(raw, "?")
	r := Route{Path: normalize(path)}
	if query == "" {
		return r
	}
	values, err := url.ParseQuery(query)
	if err != nil {
		return r
	}
	r.Params = make(map[string]string, len(values))
	for k := range values {
		r.Params[k] = values.Get(k)
	}
	return r
}

func normalize(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}

// Segment 第一级路径，"/auth/login" 返回 "auth"
func (r Route) Segment() string {
	seg, _, _ := strings.Cut(strings.TrimPrefix(r.Path, "/"), "/")
	return seg
}

func (r Route) Param(key string) string {
	return r.Params[key]
}

func (r Route) String() string {
	if len(r.Params) == 0 {
		return r.Path
	}
	keys := make([]string, 0, len(r.Params))
	for k := range r.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	values := url.Values{}
	for _, k := range keys {
		values.Set(k, r.Params[k])
	}
	return r.Path + "?" + values.Encode()
}

func (r Route) Equal(o Route) bool {
	return r.Path == o.Path && maps.Equal(r.Params, o.Params)
}

// Router 导航栈，变更后同步通知订阅者
type Router struct {
	mu        sync.Mutex
	stack     []Route
	listeners []func(Route)
}

func New(initial Route) *Router {
	return &Router{stack: []Route{initial}}
}

func (r *Router) Current() Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stack)
}

func (r *Router) Push(route Route) {
	r.mu.Lock()
	r.stack = append(r.stack, route)
	r.mu.Unlock()
	r.notify(route)
}

// Replace 替换栈顶
func (r *Router) Replace(route Route) {
	r.mu.Lock()
	r.stack[len(r.stack)-1] = route
	r.mu.Unlock()
	r.notify(route)
}

// Back 出栈，栈里只剩一个时不动
func (r *Router) Back() bool {
	r.mu.Lock()
	if len(r.stack) == 1 {
		r.mu.Unlock()
		return false
	}
	r.stack = r.stack[:len(r.stack)-1]
	top := r.stack[len(r.stack)-1]
	r.mu.Unlock()
	r.notify(top)
	return true
}

// Subscribe 注册路由变更回调，返回取消函数
func (r *Router) Subscribe(fn func(Route)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, fn)
	idx := len(r.listeners) - 1
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.listeners[idx] = nil
	}
}

// 回调在锁外执行，回调里可以再次导航
func (r *Router) notify(route Route) {
	r.mu.Lock()
	listeners := make([]func(Route), 0, len(r.listeners))
	for _, fn := range r.listeners {
		if fn != nil {
			listeners = append(listeners, fn)
		}
	}
	r.mu.Unlock()
	for _, fn := range listeners {
		fn(route)
	}
}
