package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/corebreaker/pkg/api"
	"github.com/cbodonnell/corebreaker/pkg/config"
	"github.com/cbodonnell/corebreaker/pkg/game"
	"github.com/cbodonnell/corebreaker/pkg/log"
	"github.com/cbodonnell/corebreaker/pkg/repositories"
	"github.com/cbodonnell/corebreaker/pkg/sessions"
	"github.com/cbodonnell/corebreaker/pkg/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	port := flag.Int("port", cfg.HTTPPort, "port to listen on")
	allowOrigin := flag.String("allow-origin", "*", "allowed CORS origin")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level")
	dbURL := flag.String("db", cfg.DatabaseURL, "save database URL (sqlite://, postgres://, file://, memory://)")
	seed := flag.Int64("seed", cfg.Seed, "random seed shared by every session, 0 for a fresh seed per session")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting server version %s", version.Get())
	ctx := context.Background()

	repository, err := repositories.NewRepositoryFromURL(ctx, *dbURL)
	if err != nil {
		panic(fmt.Sprintf("Failed to create repository: %v", err))
	}
	defer repository.Close(ctx)

	sessionOpts := sessions.NewSessionManagerOptions{
		Repository: repository,
	}
	if *seed != 0 {
		sessionOpts.NewRandom = func() game.Random {
			return game.NewRandom(*seed)
		}
	}
	sessionManager := sessions.NewSessionManager(ctx, sessionOpts)

	apiServerOpts := api.NewAPIServerOptions{
		Port:           *port,
		AllowOrigin:    *allowOrigin,
		SessionManager: sessionManager,
	}
	tlsCertFile := os.Getenv("COREBREAKER_TLS_CERT_FILE")
	tlsKeyFile := os.Getenv("COREBREAKER_TLS_KEY_FILE")
	if tlsCertFile != "" && tlsKeyFile != "" {
		apiServerOpts.TLS = &api.TLSConfig{
			CertFile: tlsCertFile,
			KeyFile:  tlsKeyFile,
		}
	}
	server := api.NewAPIServer(apiServerOpts)
	go server.Start()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		log.Error("Failed to stop server: %v", err)
	}
}
