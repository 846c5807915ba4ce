package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// BuildReport formats a human-readable session report: counters, per-pursuer
// state, and event totals pulled from the sim log. Used by the headless
// runner's output and by the in-game report hotkey.
func BuildReport(s *Session, sl *SimLog) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- pursuit session report ---\n")
	fmt.Fprintf(&b, "tick=%d phase=%s score=%d lives=%d\n", s.tick, s.phase, s.player.score, s.player.lives)
	pellets, powers := s.field.Remaining()
	fmt.Fprintf(&b, "items: pellets=%d powers=%d\n", pellets, powers)
	for _, p := range s.pursuers {
		fmt.Fprintf(&b, "G%d: mode=%-10s tile=(%d,%d)\n", p.id, p.mode, p.tile.Row, p.tile.Col)
	}
	fmt.Fprintf(&b, "events: mode_changes=%d captures=%d hits=%d powers=%d refills=%d\n",
		len(sl.Filter("mode", "change")),
		len(sl.Filter("collision", "captured")),
		len(sl.Filter("collision", "player_hit")),
		len(sl.Filter("pickup", "power")),
		len(sl.Filter("session", "refill")),
	)
	return b.String()
}

// CopyReport places the session report on the system clipboard.
func CopyReport(s *Session, sl *SimLog) error {
	return clipboard.WriteAll(BuildReport(s, sl))
}
