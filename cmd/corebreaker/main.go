package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cbodonnell/corebreaker/pkg/config"
	"github.com/cbodonnell/corebreaker/pkg/game"
	"github.com/cbodonnell/corebreaker/pkg/game/types"
	"github.com/cbodonnell/corebreaker/pkg/log"
	"github.com/cbodonnell/corebreaker/pkg/messages"
	"github.com/cbodonnell/corebreaker/pkg/repositories"
	"github.com/cbodonnell/corebreaker/pkg/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	logLevel := flag.String("log-level", cfg.LogLevel, "Log level")
	dbURL := flag.String("db", cfg.DatabaseURL, "save database URL (sqlite://, postgres://, file://, memory://)")
	slot := flag.String("slot", cfg.SaveSlot, "save slot")
	seed := flag.Int64("seed", cfg.Seed, "random seed, 0 for a fresh seed")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	// operational logs go to stderr so they never interleave with the transcript
	logger := log.New(os.Stderr, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Debug("Starting corebreaker version %s", version.Get())

	ctx := context.Background()

	if err := repositories.ValidateSlot(*slot); err != nil {
		panic(err.Error())
	}
	repository, err := repositories.NewRepositoryFromURL(ctx, *dbURL)
	if err != nil {
		panic(fmt.Sprintf("Failed to create repository: %v", err))
	}
	defer repository.Close(ctx)

	store := repositories.NewSaveStore(ctx, repositories.NewSaveStoreOptions{
		Repository: repository,
		Slot:       *slot,
	})

	engineOpts := game.NewEngineOptions{
		Store: store,
	}
	if *seed != 0 {
		engineOpts.Random = game.NewRandom(*seed)
	}
	engine := game.NewEngine(engineOpts)

	play(engine, os.Stdin, os.Stdout)
}

// play runs the read-eval-print loop until in is exhausted.
func play(engine *game.Engine, in io.Reader, out io.Writer) {
	w := bufio.NewWriter(out)
	defer w.Flush()

	printEntries(w, engine.Intro())
	w.Flush()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		start := time.Now()
		result := engine.HandleInput(scanner.Text())
		log.Trace("Handled input in %s", time.Since(start))

		// the input line is already on the terminal
		entries := result.Entries
		if len(entries) > 0 && entries[0].Type == types.LogEntryTypePlayer {
			entries = entries[1:]
		}
		printEntries(w, entries)
		if result.OpenHelp {
			fmt.Fprintln(w, messages.HelpText)
		}
		w.Flush()
	}
	if err := scanner.Err(); err != nil {
		log.Error("Failed to read input: %v", err)
	}
}

func printEntries(w io.Writer, entries []types.LogEntry) {
	for _, entry := range entries {
		if entry.Type == types.LogEntryTypePlayer {
			fmt.Fprintf(w, "> %s\n", entry.Text)
			continue
		}
		fmt.Fprintln(w, entry.Text)
	}
}
