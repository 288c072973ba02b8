package config

// Mock 本地模拟后端配置
type Mock struct {
	Http     int    `json:"http" yaml:"http"`
	SeedFile string `json:"seed_file" yaml:"seed_file"`
	HashSalt string `json:"hash_salt" yaml:"hash_salt"`
}
