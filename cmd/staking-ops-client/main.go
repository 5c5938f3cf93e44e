package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/babylonchain/staking-ops-client/cmd/staking-ops-client/cli"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("failed to load .env file")
	}
}

func main() {
	ctx := context.Background()

	// setup cli commands and flags, then run the selected command
	if err := cli.Setup(ctx); err != nil {
		log.Fatal().Err(err).Msg("error while running command")
	}
}
