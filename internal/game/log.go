package game

import "fmt"

// ActionLog is the human-readable history of a hand, one line per event.
// Presentation layers depend on the exact wording.
type ActionLog struct {
	entries []string
}

func (l *ActionLog) add(format string, args ...any) {
	l.entries = append(l.entries, fmt.Sprintf(format, args...))
}

// Entries returns a copy of the log.
func (l *ActionLog) Entries() []string {
	return append([]string(nil), l.entries...)
}

// Len returns the number of entries.
func (l *ActionLog) Len() int {
	return len(l.entries)
}

// FormatChips renders a chip count as dollars, e.g. "$20.00".
func FormatChips(chips int) string {
	return fmt.Sprintf("$%d.00", chips)
}

func allInSuffix(p *Player) string {
	if p.AllIn {
		return " (all-in)"
	}
	return ""
}
