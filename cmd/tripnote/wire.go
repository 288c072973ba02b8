//go:build wireinject
// +build wireinject

package main

import (
	"Tripnote/config"
	"Tripnote/dao"
	"Tripnote/handler"
	"Tripnote/pkg/api"
	"Tripnote/pkg/storage"
	"Tripnote/service"

	"github.com/google/wire"
)

func InitApp(cfg *config.Config) (*handler.App, error) {
	wire.Build(
		config.ProvideSessionConfig,
		config.ProvideGuardConfig,
		storage.New,
		dao.ProviderSet,
		api.ProviderSet,
		service.ProviderSet,
		handler.ProviderSet,
	)
	return nil, nil
}
