package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errValidationFailed) {
			log.Error().Err(err).Msg("x12health failed")
		}
		os.Exit(1)
	}
}
