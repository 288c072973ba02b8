package mockapi

import (
	"errors"
	"io/fs"

	"Tripnote/config"
	"Tripnote/pkg/log"

	"github.com/google/wire"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(
	ProvideSeed,
	NewStore,
	ProvideHandler,
	NewEngine,
)

// ProvideSeed 没有配置或文件不存在时使用内置数据
func ProvideSeed(conf *config.Config) (*Seed, error) {
	if conf.Mock.SeedFile == "" {
		return DefaultSeed(), nil
	}
	seed, err := LoadSeed(conf.Mock.SeedFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.L.Warn("seed file not found, using built-in data", zap.String("path", conf.Mock.SeedFile))
		return DefaultSeed(), nil
	}
	if err != nil {
		return nil, err
	}
	log.L.Info("seed loaded",
		zap.String("path", conf.Mock.SeedFile),
		zap.Int("users", len(seed.Users)),
		zap.Int("notes", len(seed.Notes)),
	)
	return seed, nil
}

func ProvideHandler(conf *config.Config, store *Store) *Handler {
	return NewHandler(store, conf.Mock.HashSalt)
}
