// internal/game/textloop.go
package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	engine "github.com/jason-s-yu/ninetynine/engine"
)

// FormatBoard renders the public layout on one line, e.g.
//
//	up: 1 1 | down: 100 100 | hand: 0:11 1:22 ... 7:-
func FormatBoard(obs [engine.LayoutSize]int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "up: %d %d | down: %d %d | hand:", obs[0], obs[1], obs[2], obs[3])
	for i := 0; i < engine.HandSize; i++ {
		v := obs[engine.NumStacks+i]
		if v == 0 {
			fmt.Fprintf(&b, " %d:-", i)
		} else {
			fmt.Fprintf(&b, " %d:%d", i, v)
		}
	}
	return b.String()
}

// parseMove reads "card stack" from a line. The card (hand slot) comes first,
// matching the prompt order.
func parseMove(line string) (slot, stack int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected two numbers, got %d fields", len(fields))
	}
	if slot, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, fmt.Errorf("card: %w", err)
	}
	if stack, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, fmt.Errorf("stack: %w", err)
	}
	return slot, stack, nil
}

// LoopOption configures RunTextLoop.
type LoopOption func(*loopConfig)

type loopConfig struct {
	showBoard bool
}

// ShowBoard makes RunTextLoop print the layout before every prompt. By default
// only the prompt and the final score are written.
func ShowBoard() LoopOption {
	return func(c *loopConfig) { c.showBoard = true }
}

// RunTextLoop plays s interactively. Each input line names a hand slot and a
// foundation ("card stack"); invalid or unparsable lines are reported and
// skipped without touching the board. The loop ends when no legal placement
// remains, the input is exhausted, "q" is entered, or ctx is cancelled, and
// returns the final score.
func RunTextLoop(ctx context.Context, s *Session, r io.Reader, w io.Writer, opts ...LoopOption) (int, error) {
	var cfg loopConfig
	for _, o := range opts {
		o(&cfg)
	}
	sc := bufio.NewScanner(r)

	for !s.IsOver() && len(s.LegalActions()) > 0 {
		if err := ctx.Err(); err != nil {
			return s.Summary().Score, err
		}

		if cfg.showBoard {
			fmt.Fprintln(w, FormatBoard(s.Observable()))
		}
		fmt.Fprint(w, "which card and stack? ")
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "q" || line == "quit" {
			break
		}

		slot, stack, err := parseMove(line)
		if err != nil {
			fmt.Fprintf(w, "bad input: %v\n", err)
			continue
		}
		if !s.IsValidAction(stack, slot) {
			fmt.Fprintf(w, "card %d cannot go on stack %d\n", slot, stack)
			continue
		}
		s.Play(stack, slot)
	}
	if err := sc.Err(); err != nil {
		return s.Summary().Score, fmt.Errorf("read input: %w", err)
	}

	sum := s.EndGame()
	fmt.Fprintf(w, "final score: %d (%s after %d moves)\n", sum.Score, sum.Status, sum.Moves)
	return sum.Score, nil
}
