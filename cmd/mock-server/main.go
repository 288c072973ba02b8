package main

import (
	"fmt"
	"os"

	"Tripnote/config"
	"Tripnote/pkg/log"
	"Tripnote/pkg/server"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	log.SetLevel(cfg.App.LogLevel)

	cliApp := &cli.App{
		Name:  "mock-server",
		Usage: "本地模拟后端",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "port", Usage: "覆盖 mock.http"},
					&cli.StringFlag{Name: "seed", Usage: "覆盖 mock.seed_file"},
				},
				Action: func(ctx *cli.Context) error {
					if ctx.IsSet("port") {
						cfg.Mock.Http = ctx.Int("port")
					}
					if ctx.IsSet("seed") {
						cfg.Mock.SeedFile = ctx.String("seed")
					}
					appProvider, err := InitServer(cfg)
					if err != nil {
						return err
					}
					return server.Run(ctx, appProvider)
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
