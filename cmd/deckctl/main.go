package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"playing-cards-go/internal/config"
	"playing-cards-go/internal/script"
	"playing-cards-go/internal/snapshot"
	"playing-cards-go/internal/tracing"
	"playing-cards-go/pkg/cards"
)

func main() {
	log.SetPrefix("deckctl: ")
	log.SetFlags(0)

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Args[1:], os.Stdout); err != nil {
		stop()
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg config.Config, args []string, out io.Writer) error {
	shutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName: "deckctl",
		Environment: cfg.AppEnv,
		Export:      cfg.TracesExport,
		PrettyPrint: cfg.PrettyTraces,
	})
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			log.Printf("tracing shutdown error: %v", err)
		}
	}()

	cmds, err := script.Parse(args)
	if err != nil {
		return err
	}

	deck, err := openDeck(cfg)
	if err != nil {
		return err
	}

	runner := &script.Runner{Deck: deck, Language: cfg.Language}
	results, err := runner.Run(ctx, cmds)
	if werr := writeResults(out, cfg.Output, results); werr != nil {
		return werr
	}
	if err != nil {
		return err
	}

	if cfg.StatePath != "" {
		if err := snapshot.Save(cfg.StatePath, deck); err != nil {
			return err
		}
	}
	return nil
}

// openDeck resumes the snapshot at cfg.StatePath when there is one,
// otherwise builds a fresh deck from cfg.
func openDeck(cfg config.Config) (*cards.Deck, error) {
	var rng cards.Rand
	if cfg.Seed != nil {
		seed := uint64(*cfg.Seed)
		rng = rand.New(rand.NewPCG(seed, seed))
	}

	if cfg.StatePath != "" {
		deck, found, err := snapshot.Load(cfg.StatePath)
		if err != nil {
			return nil, err
		}
		if found {
			log.Printf("resumed deck %s with %d cards", deck.ID(), deck.Count())
			deck.SetRand(rng)
			return deck, nil
		}
	}

	return cards.NewDeck(cards.DeckOptions{
		Multiple:      cfg.Multiple,
		AceIsHigh:     cfg.AceIsHigh,
		IncludeJokers: cfg.IncludeJokers,
		Rand:          rng,
	}), nil
}

func writeResults(out io.Writer, format string, results []script.Result) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(out)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return fmt.Errorf("write yaml: %w", err)
			}
		}
		return enc.Close()
	}

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
	}
	return nil
}
