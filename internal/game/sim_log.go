package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded simulation event.
type SimLogEntry struct {
	Tick     int
	Actor    string  // "P", "G0".."G3", or "--" for session-level events
	Category string  // mode, pickup, collision, session
	Key      string  // event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] G1   mode      change           scatter -> chase
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-9s %-16s %s",
		e.Tick, e.Actor, e.Category, e.Key, e.Value)
}

// SimLog collects structured events during a session. It is unbounded and
// machine-readable; tests filter it to assert behaviour sequences. A nil
// SimLog is valid and records nothing, so the live game pays no cost.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-tick position entries
// are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, actor, category, key, value string, numVal float64) {
	if sl == nil {
		return
	}
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Actor:    actor,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, actor, category, key, value string, numVal float64) {
	if sl == nil || !sl.verbose {
		return
	}
	sl.Add(tick, actor, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	if sl == nil {
		return nil
	}
	return sl.entries
}

// Filter returns entries matching the given category and/or key. Pass empty
// string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.Entries() {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Summary renders a compact end-of-run block for test and report output.
func (sl *SimLog) Summary(s *Session) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== session summary (tick %d) ===\n", s.tick)
	fmt.Fprintf(&b, "phase=%s score=%d lives=%d\n", s.phase, s.player.score, s.player.lives)
	pellets, powers := s.field.Remaining()
	fmt.Fprintf(&b, "pellets=%d powers=%d\n", pellets, powers)
	for _, p := range s.pursuers {
		fmt.Fprintf(&b, "G%d mode=%-10s tile=(%d,%d)\n", p.id, p.mode, p.tile.Row, p.tile.Col)
	}
	return b.String()
}
