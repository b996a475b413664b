package main

import (
	"os"

	"hotel/config"
	"hotel/helper"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
)

const argLength = 2

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction is required: up, down, drop or step-up")
	}

	direction := helper.Direction(os.Args[1])

	if err := helper.Run(config.Get(), direction); err != nil {
		log.Fatal().Err(err).Str("direction", string(direction)).Msg("Migration failed")
	}
}
