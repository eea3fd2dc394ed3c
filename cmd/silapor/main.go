package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/config"
	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/server"
)

var (
	port    = flag.Int("port", 0, "listen port (overrides config.toml)")
	devMode = flag.Bool("dev", false, "development mode")
	dataDir = flag.String("dataDir", "", "data directory (overrides config.toml)")
)

func main() {
	flag.Parse()

	// A .env is optional; environment overrides live in config.LoadConfig.
	_ = godotenv.Load()

	log := newLogger(*devMode)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Warn().Err(err).Msg("config load failed, using defaults")
		cfg = config.DefaultConfig()
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	srv, err := server.NewServer(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("server build failed")
	}
	defer srv.Close()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("silapor listening")
		if err := srv.Run(addr); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
}

func newLogger(dev bool) zerolog.Logger {
	if dev {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}
