package strategy

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pcatattacks/santorini/internal/board"
)

// Interactive reads placements and plays from an injected reader, one
// line at a time, so a human can drive a LocalPlayer from a terminal or
// a test can script a scenario without a real strategy behind it.
type Interactive struct {
	in  *bufio.Reader
	out io.Writer
}

// NewInteractive builds an Interactive strategy reading from in and
// echoing prompts to out. out may be nil to suppress prompts.
func NewInteractive(in io.Reader, out io.Writer) *Interactive {
	return &Interactive{in: bufio.NewReader(in), out: out}
}

func (s *Interactive) prompt(format string, args ...interface{}) {
	if s.out == nil {
		return
	}
	fmt.Fprintf(s.out, format, args...)
}

func (s *Interactive) readLine() string {
	line, _ := s.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// GetPlacements reads "row col" twice.
func (s *Interactive) GetPlacements(b *board.Board, color string) [2]board.Position {
	var placements [2]board.Position
	for i := 0; i < 2; i++ {
		s.prompt("place worker %d for %s (row col): ", i+1, color)
		placements[i] = parsePosition(s.readLine())
	}
	return placements
}

func parsePosition(line string) board.Position {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return board.Position{}
	}
	row, _ := strconv.Atoi(fields[0])
	col, _ := strconv.Atoi(fields[1])
	return board.Position{Row: row, Col: col}
}

// GetPlay reads "worker dir [dir]", e.g. "blue1 N" or "blue1 N SE".
func (s *Interactive) GetPlay(b *board.Board, color string) (Play, bool) {
	plays := GetLegalPlays(b, color)
	if len(plays) == 0 {
		return Play{}, false
	}
	s.prompt("play for %s (worker dir [builddir]): ", color)
	fields := strings.Fields(s.readLine())
	if len(fields) < 2 {
		return Play{}, false
	}
	play := Play{Worker: board.WorkerID(fields[0])}
	for _, f := range fields[1:] {
		play.Dirs = append(play.Dirs, board.Direction(strings.ToUpper(f)))
	}
	return play, true
}
