package config

type Session struct {
	ValidateOnStart bool   `json:"validate_on_start" yaml:"validate_on_start"` // 启动时向服务端校验本地用户
	LandingRoute    string `json:"landing_route" yaml:"landing_route"`         // 登录后默认页面
	LoginRoute      string `json:"login_route" yaml:"login_route"`             // 登出后跳转页面
}

// Guard 路由守卫配置
type Guard struct {
	Protected   []string `json:"protected" yaml:"protected"`
	AuthSegment string   `json:"auth_segment" yaml:"auth_segment"`
	AuthPath    string   `json:"auth_path" yaml:"auth_path"`
}
