package config

const (
	StorageDriverFile   = "file"
	StorageDriverRedis  = "redis"
	StorageDriverMemory = "memory"
)

// Storage 本地存储配置
type Storage struct {
	Driver   string `json:"driver" yaml:"driver"`       // file | redis | memory
	Path     string `json:"path" yaml:"path"`           // file 驱动的文件路径
	DeviceID string `json:"device_id" yaml:"device_id"` // redis 驱动的 key 前缀，为空时自动生成
}
