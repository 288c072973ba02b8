//go:build wireinject
// +build wireinject

package main

import (
	"Tripnote/config"
	"Tripnote/internal/mockapi"
	"Tripnote/pkg/server"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, error) {
	wire.Build(
		mockapi.ProviderSet,
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil, nil
}
