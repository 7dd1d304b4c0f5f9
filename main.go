package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"adboard/initialize"
	"adboard/server"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	flag.Parse()

	// .env is optional; real environments set variables directly
	_ = godotenv.Load(".env")

	app, err := initialize.Build(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("build app")
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Error().Err(err).Msg("close db")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(app.Cfg.HTTP.Host, app.Cfg.HTTP.Port, app.Router)
	log.Info().Str("addr", srv.Addr).Msg("http server listening")
	if err := server.Run(ctx, srv); err != nil {
		log.Fatal().Err(err).Msg("http server")
	}
	log.Info().Msg("shutdown complete")
}
