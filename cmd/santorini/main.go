// Command santorini runs a Santorini tournament Administrator: either a
// single-elimination cup or a round-robin league over a configured number
// of remote players, padded out with local fallback players as needed.
package main

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/pcatattacks/santorini/internal/admin"
	"github.com/pcatattacks/santorini/internal/config"
	"github.com/pcatattacks/santorini/internal/player"
	"github.com/pcatattacks/santorini/internal/strategy"
	"github.com/pcatattacks/santorini/internal/tournamentlog"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		tournamentlog.Printf("%v", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: santorini (-cup|-league) <N>")
	}
	mode := args[0]
	if mode != "-cup" && mode != "-league" {
		return fmt.Errorf("unrecognized mode %q, want -cup or -league", mode)
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n < 1 {
		return fmt.Errorf("N must be a positive integer, got %q", args[1])
	}

	cfg, err := config.Load("santorini.config")
	if err != nil {
		return err
	}
	strategyCfg, err := config.LoadStrategy("strategy.config")
	if err != nil {
		return err
	}

	newFallback, err := fallbackFactory(cfg.DefaultPlayer, strategyCfg.LookAhead)
	if err != nil {
		return err
	}

	addr := net.JoinHostPort(cfg.IP, strconv.Itoa(cfg.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	defer listener.Close()
	tournamentlog.Printf("listening on %s for %d player(s)", addr, n)

	adminCfg := admin.DefaultConfig()
	adminCfg.Parallel = cfg.Parallel
	a := admin.New(listener, newFallback, adminCfg)

	var ranking []admin.RankedPlayer
	if mode == "-cup" {
		ranking, err = a.RunCup(n)
	} else {
		ranking, err = a.RunLeague(n)
	}
	if err != nil {
		return err
	}

	printRanking(ranking)
	return nil
}

// fallbackFactory returns a constructor for the local player that fills
// out unfilled roster slots, chosen by the default-player config field.
func fallbackFactory(name string, lookAhead int) (func() player.Player, error) {
	switch name {
	case "", "random":
		return func() player.Player { return player.NewLocalPlayer("", strategy.NewRandom()) }, nil
	case "greedy":
		return func() player.Player { return player.NewLocalPlayer("", strategy.NewGreedy()) }, nil
	case "n-looks-ahead":
		return func() player.Player { return player.NewLocalPlayer("", strategy.NewNLooksAhead(lookAhead)) }, nil
	case "smart":
		return func() player.Player { return player.NewLocalPlayer("", strategy.NewSmart(lookAhead)) }, nil
	default:
		return nil, fmt.Errorf("unrecognized default-player %q", name)
	}
}

func printRanking(ranking []admin.RankedPlayer) {
	for i, entry := range ranking {
		fmt.Printf("%d. %s (rank %d)\n", i+1, entry.Player.GetName(), entry.Rank)
	}
}
