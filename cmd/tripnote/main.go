package main

import (
	"fmt"
	"os"

	"Tripnote/config"
	"Tripnote/handler"
	"Tripnote/pkg/log"

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

	app, err := InitApp(cfg)
	if err != nil {
		log.L.Fatal("failed to init app", zap.Error(err))
	}
	if err := app.CLI().Run(os.Args); err != nil {
		log.L.Debug("command failed", zap.Error(err))
		os.Exit(handler.ExitCode(err))
	}
}
