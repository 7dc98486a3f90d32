package cmd

import (
	"io"

	"finance-engine/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// setupLogging configures gin and the global zerolog logger
func setupLogging(cfg *config.Config, out io.Writer) {
	gin.SetMode(cfg.Server.GinMode)

	output := out
	if cfg.Log.Format == "human" {
		output = zerolog.ConsoleWriter{Out: out}
	}

	// validated by config.Validate
	level, _ := zerolog.ParseLevel(cfg.Log.Level)
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(output).With().Timestamp().Logger()
}
