package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"portal-messaging/auth"
	"portal-messaging/moderation"
	"portal-messaging/repositories"
	"portal-messaging/search"
	"portal-messaging/services"
	"portal-messaging/sink"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, drives the console lifecycle, and
// centralizes error reporting so deferred cleanup (database close)
// always executes before the program exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Persisted store (BadgerDB) and search index (Bluge)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("search index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing search index...")
		_ = blugeWriter.Close()
	}()

	// 3. Moderation & credential capability
	replacement, err := config.CharacterRune()
	if err != nil {
		return err
	}
	moderator, err := moderation.NewModerator(config.CensoredWords, replacement, log)
	if err != nil {
		return fmt.Errorf("moderator setup failed: %w", err)
	}

	var verifier auth.Verifier = auth.PlainVerifier{}
	if config.AuthMode == "argon2" {
		log.Info("Using Argon2id credential verification")
		verifier = auth.Argon2Verifier{}
	}

	// 4. Portal core
	repository := repositories.NewPortalRepository(db, log)
	service := services.NewPortalService(
		repository, verifier, &moderator,
		config.SendCooldown, config.SessionStampDuration, log,
	)
	if err := service.Load(); err != nil {
		return err
	}

	index := search.NewIndex(blugeWriter, log)
	console := newConsole(service, index, log)
	service.RegisterSinks(
		sink.NewRenderSink(console.renderState),
		sink.NewAuditSink(log),
		sink.NewSearchSink(index),
	)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Console loop until quit or signal
	if err := console.Run(ctx); err != nil && err != context.Canceled {
		return err
	}

	log.Info("Portal stopped cleanly")
	return nil
}
