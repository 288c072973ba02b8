package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App     *App     `json:"app" yaml:"app"`
	Api     *Api     `json:"api" yaml:"api"`
	Storage *Storage `json:"storage" yaml:"storage"`
	Redis   *Redis   `json:"redis" yaml:"redis"`
	Session *Session `json:"session" yaml:"session"`
	Guard   *Guard   `json:"guard" yaml:"guard"`
	Feed    *Feed    `json:"feed" yaml:"feed"`
	Search  *Search  `json:"search" yaml:"search"`
	Mock    *Mock    `json:"mock" yaml:"mock"`
}

// Api 后端接口配置
type Api struct {
	BaseURL   string `json:"base_url" yaml:"base_url"`
	TimeoutMs int    `json:"timeout_ms" yaml:"timeout_ms"`
}

func (a *Api) Timeout() time.Duration {
	if a.TimeoutMs <= 0 {
		return 10 * time.Second
	}
	return time.Duration(a.TimeoutMs) * time.Millisecond
}

type Feed struct {
	PageSize int    `json:"page_size" yaml:"page_size"`
	Status   string `json:"status" yaml:"status"`
}

const MaxSearchHistory = 10

type Search struct {
	HistoryMax int `json:"history_max" yaml:"history_max"`
}

// New 读取配置文件，缺省字段使用默认值
func New(filename string) *Config {
	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
	}

	return conf
}

func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}
	conf.fill()
	return &conf, nil
}

// Default 不依赖配置文件的默认配置
func Default() *Config {
	conf := &Config{}
	conf.fill()
	return conf
}

func (c *Config) fill() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Api == nil {
		c.Api = &Api{}
	}
	if c.Api.BaseURL == "" {
		c.Api.BaseURL = "http://localhost:3001"
	}
	if c.Storage == nil {
		c.Storage = &Storage{}
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageDriverFile
	}
	if c.Storage.Path == "" {
		c.Storage.Path = ".tripnote/storage.json"
	}
	if c.Redis == nil {
		c.Redis = &Redis{Address: "127.0.0.1", Port: 6379}
	}
	if c.Session == nil {
		c.Session = &Session{}
	}
	if c.Session.LandingRoute == "" {
		c.Session.LandingRoute = "/(tabs)"
	}
	if c.Session.LoginRoute == "" {
		c.Session.LoginRoute = "/auth/login"
	}
	if c.Guard == nil {
		c.Guard = &Guard{}
	}
	if c.Guard.Protected == nil {
		c.Guard.Protected = []string{"publish"}
	}
	if c.Guard.AuthSegment == "" {
		c.Guard.AuthSegment = "auth"
	}
	if c.Guard.AuthPath == "" {
		c.Guard.AuthPath = "/auth"
	}
	if c.Feed == nil {
		c.Feed = &Feed{}
	}
	if c.Feed.PageSize <= 0 {
		c.Feed.PageSize = 7
	}
	if c.Feed.Status == "" {
		c.Feed.Status = "approved"
	}
	if c.Search == nil {
		c.Search = &Search{}
	}
	// 搜索历史最多保留 10 条
	if c.Search.HistoryMax <= 0 || c.Search.HistoryMax > MaxSearchHistory {
		c.Search.HistoryMax = MaxSearchHistory
	}
	if c.Mock == nil {
		c.Mock = &Mock{}
	}
	if c.Mock.Http == 0 {
		c.Mock.Http = 3001
	}
	if c.Mock.HashSalt == "" {
		c.Mock.HashSalt = "tripnote"
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}

func ProvideApiConfig(cfg *Config) *Api {
	return cfg.Api
}

func ProvideSessionConfig(cfg *Config) *Session {
	return cfg.Session
}

func ProvideGuardConfig(cfg *Config) *Guard {
	return cfg.Guard
}
