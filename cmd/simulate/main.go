package main

import (
	"casino/internal/config/env"
	"casino/internal/model"
	"casino/internal/simulator"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
)

func main() {
	var (
		game    string
		cfgPath string
		cfg     simulator.Config
		quiet   bool
	)
	flag.StringVar(&game, "game", "", "game to simulate; empty runs every single-shot game")
	flag.StringVar(&cfgPath, "config", "config.yaml", "games config file")
	flag.IntVar(&cfg.Rounds, "rounds", 1000000, "rounds per game")
	flag.IntVar(&cfg.Workers, "workers", runtime.NumCPU(), "number of workers")
	flag.Int64Var(&cfg.BetCents, "bet", 100, "bet in cents")
	flag.BoolVar(&quiet, "q", false, "hide progress bar")
	flag.Parse()
	cfg.Progress = !quiet

	games, err := env.NewGamesConfigFromYAML(cfgPath)
	if err != nil {
		log.Fatalf("failed to load games config: %v", err)
	}
	sim, err := simulator.New(games)
	if err != nil {
		log.Fatalf("failed to create simulator: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	targets := sim.Games()
	if game != "" {
		targets = []model.Game{model.Game(game)}
	}
	for _, g := range targets {
		cfg.Game = g
		rep, err := sim.Run(ctx, cfg)
		if err != nil {
			log.Fatalf("simulation of %s failed: %v", g, err)
		}
		fmt.Println(rep)
	}
}
