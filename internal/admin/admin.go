// Package admin implements the Administrator: it accepts remote
// connections, fills out a roster with local fallback players, and runs
// either a single-elimination cup or a round-robin league.
package admin

import (
	"fmt"
	"net"
	"sort"
	"time"

	"github.com/pcatattacks/santorini/internal/player"
	"github.com/pcatattacks/santorini/internal/proxyplayer"
	"github.com/pcatattacks/santorini/internal/referee"
	"github.com/pcatattacks/santorini/internal/tournamentlog"
)

// Config controls how the Administrator fills out and schedules a
// tournament.
type Config struct {
	// RegisterDeadline bounds how long a newly-accepted connection has
	// to complete Register() before it is dropped and doesn't count
	// toward the requested remote-player count.
	RegisterDeadline time.Duration
	// Parallel, if true, would run independent matches concurrently. The
	// reference scheduler (and the only one implemented here) is
	// sequential; Parallel is a documented extension point, not wired
	// to a concurrent scheduler.
	Parallel bool
}

// DefaultConfig matches the reference implementation: a 3 second
// registration grace period, sequential match scheduling.
func DefaultConfig() Config {
	return Config{RegisterDeadline: 3 * time.Second}
}

// Administrator owns the tournament's listening socket and roster.
type Administrator struct {
	listener net.Listener
	fallback func() player.Player
	cfg      Config
}

// New builds an Administrator listening on listener, falling back to
// newFallback() to fill unfilled roster slots.
func New(listener net.Listener, newFallback func() player.Player, cfg Config) *Administrator {
	return &Administrator{listener: listener, fallback: newFallback, cfg: cfg}
}

// Close releases the listening socket.
func (a *Administrator) Close() error {
	return a.listener.Close()
}

// RankedPlayer pairs a player with its final tournament rank (cup) or
// win count (league); a higher Rank is better, and 0 is the lowest (a
// cheater's cup loss, or a league player with no wins).
type RankedPlayer struct {
	Player player.Player
	Rank   int
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// populateRemote blocks until n remote connections have completed
// Register(); connections that fail to register within the configured
// deadline are dropped and do not count toward n.
func (a *Administrator) populateRemote(n int) ([]player.Player, error) {
	players := make([]player.Player, 0, n)
	for len(players) < n {
		conn, err := a.listener.Accept()
		if err != nil {
			return nil, fmt.Errorf("admin: accept: %w", err)
		}
		if a.cfg.RegisterDeadline > 0 {
			_ = conn.SetDeadline(time.Now().Add(a.cfg.RegisterDeadline))
		}
		proxy := proxyplayer.New(conn)
		name, err := proxy.Register()
		if err != nil {
			tournamentlog.Printf("admin: dropping connection that failed to register: %v", err)
			conn.Close()
			continue
		}
		tournamentlog.Printf("admin: registered remote player %s", name)
		players = append(players, proxy)
	}
	return players, nil
}

// pad registers and appends fallback players until players has target
// entries.
func (a *Administrator) pad(players []player.Player, target int) ([]player.Player, error) {
	for len(players) < target {
		p := a.fallback()
		name, err := p.Register()
		if err != nil {
			return nil, fmt.Errorf("admin: fallback register: %w", err)
		}
		tournamentlog.Printf("admin: added fallback player %s", name)
		players = append(players, p)
	}
	return players, nil
}

// RunCup plays a single-elimination bracket for n remote players, padded
// with fallback locals to the next power of two, and returns every entrant
// sorted by descending Rank: the stage at which it lost (0 for a cheater),
// or rounds+1 for the champion.
func (a *Administrator) RunCup(n int) ([]RankedPlayer, error) {
	remote, err := a.populateRemote(n)
	if err != nil {
		return nil, err
	}
	active, err := a.pad(remote, nextPowerOfTwo(n))
	if err != nil {
		return nil, err
	}
	roster := append([]player.Player{}, active...)

	rank := make(map[player.Player]int)
	stage := 1
	for len(active) > 1 {
		next := make([]player.Player, 0, len(active)/2)
		for i := 0; i < len(active)/2; i++ {
			p1, p2 := active[i], active[len(active)-1-i]
			ref := referee.New(p1, p2)
			winner, cheating := ref.PlayGame()
			loser := p2
			if winner == p2 {
				loser = p1
			}
			if cheating {
				rank[loser] = 0
			} else {
				rank[loser] = stage
			}
			next = append(next, winner)
		}
		active = next
		stage++
	}
	if len(active) == 1 {
		rank[active[0]] = stage
	}

	return rankDescending(roster, rank), nil
}

// RunLeague plays a full round-robin for n remote players (no padding)
// and returns the final ranking by descending win count. A cheating
// loss wipes the cheater's win history, retroactively credits every
// player the cheater had beaten, and substitutes a fresh fallback at the
// cheater's roster slot for the remaining rounds.
func (a *Administrator) RunLeague(n int) ([]RankedPlayer, error) {
	active, err := a.populateRemote(n)
	if err != nil {
		return nil, err
	}

	wins := make(map[player.Player][]player.Player, len(active))
	for _, p := range active {
		wins[p] = nil
	}

	for i := 0; i < len(active); i++ {
		for j := i + 1; j < len(active); j++ {
			p1, p2 := active[i], active[j]
			ref := referee.New(p1, p2)
			winner, cheating := ref.PlayGame()
			loser, loserIdx := p2, j
			if winner == p2 {
				loser, loserIdx = p1, i
			}
			wins[winner] = append(wins[winner], loser)

			if cheating {
				for _, victim := range wins[loser] {
					wins[victim] = append(wins[victim], loser)
				}
				wins[loser] = nil
				sub := a.fallback()
				if _, err := sub.Register(); err != nil {
					return nil, fmt.Errorf("admin: fallback register: %w", err)
				}
				active[loserIdx] = sub
				wins[sub] = nil
			}
		}
	}

	rank := make(map[player.Player]int, len(active))
	for _, p := range active {
		rank[p] = len(wins[p])
	}
	return rankDescending(active, rank), nil
}

func rankDescending(roster []player.Player, rank map[player.Player]int) []RankedPlayer {
	result := make([]RankedPlayer, len(roster))
	for i, p := range roster {
		result[i] = RankedPlayer{Player: p, Rank: rank[p]}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Rank > result[j].Rank })
	return result
}
