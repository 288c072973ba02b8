package api

import (
	"Tripnote/config"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	config.ProvideApiConfig,
	New,
	wire.Bind(new(IUserDirectory), new(*Client)),
	wire.Bind(new(INoteClient), new(*Client)),
)
