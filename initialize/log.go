package initialize

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	// console writer to stdout; handlers log through the package logger
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	log.Logger = log.Output(cw)
}
