package phh

import (
	"strings"

	"github.com/lox/headsup/poker"
)

// formatCards joins cards without separators, e.g. "AhKd".
func formatCards(cards []poker.Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.String())
	}
	return b.String()
}

// boardFor returns the cards dealt on a street.
func boardFor(board []poker.Card, s int) []poker.Card {
	switch s {
	case 1:
		return board[:min(3, len(board))]
	case 2:
		if len(board) > 3 {
			return board[3:4]
		}
	case 3:
		if len(board) > 4 {
			return board[4:5]
		}
	}
	return nil
}
