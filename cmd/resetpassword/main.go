package main

import (
	"os"

	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	cmd := newCommand(di.InitializeMaintenance, os.Stdout)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
