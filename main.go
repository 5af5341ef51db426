package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/eslsoft/courseboxd/cmd"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if err := cmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("courseboxd failed")
	}
}
