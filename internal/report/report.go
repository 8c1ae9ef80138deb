// Package report writes match results as CSV and as plain text hand
// histories.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lox/headsup/internal/fileutil"
	"github.com/lox/headsup/internal/game"
	"github.com/lox/headsup/poker"
)

// Header is the CSV column order.
var Header = []string{
	"hand_number", "winner", "amount_won", "description",
	"player1_cards", "player2_cards", "board",
	"player1_stack_before", "player2_stack_before",
	"player1_stack_after", "player2_stack_after",
}

const splitWinner = "split"

// WinnerName is the winning player's name, or "split" when the pot was shared.
func WinnerName(hr *game.HandResult) string {
	if seat := hr.Winner(); seat >= 0 {
		return hr.Players[seat].Name
	}
	return splitWinner
}

// AmountWon is what the winner took from the pot; for a split it is the
// whole pot.
func AmountWon(hr *game.HandResult) int {
	if seat := hr.Winner(); seat >= 0 {
		return hr.Players[seat].Won
	}
	return hr.Pot
}

func spaced(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Record is the CSV row for a hand.
func Record(hr *game.HandResult) []string {
	p1, p2 := hr.Players[0], hr.Players[1]
	return []string{
		strconv.Itoa(hr.HandNumber),
		WinnerName(hr),
		strconv.Itoa(AmountWon(hr)),
		hr.Description,
		spaced(p1.HoleCards[:]),
		spaced(p2.HoleCards[:]),
		spaced(hr.Board),
		strconv.Itoa(p1.StackBefore),
		strconv.Itoa(p2.StackBefore),
		strconv.Itoa(p1.StackAfter),
		strconv.Itoa(p2.StackAfter),
	}
}

// WriteCSV writes a header and one row per hand.
func WriteCSV(w io.Writer, hands []*game.HandResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, hr := range hands {
		if err := cw.Write(Record(hr)); err != nil {
			return fmt.Errorf("hand %d: %w", hr.HandNumber, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

const rule = "======================================================================"

// WriteHistories writes one block per hand with its action log.
func WriteHistories(w io.Writer, hands []*game.HandResult) error {
	ew := &errWriter{w: w}
	ew.printf("%s\nHAND HISTORIES\n%s\n\n", rule, rule)
	for _, hr := range hands {
		writeHistory(ew, hr)
	}
	return ew.err
}

// WriteHistory writes a single hand block.
func WriteHistory(w io.Writer, hr *game.HandResult) error {
	ew := &errWriter{w: w}
	writeHistory(ew, hr)
	return ew.err
}

func writeHistory(ew *errWriter, hr *game.HandResult) {
	p1, p2 := hr.Players[0], hr.Players[1]
	ew.printf("--- Hand #%d (%s) ---\n", hr.HandNumber, hr.HandID)
	ew.printf("Winner: %s (%s) - %s\n", WinnerName(hr), game.FormatChips(AmountWon(hr)), hr.Description)
	ew.printf("%s cards: %s\n", p1.Name, spaced(p1.HoleCards[:]))
	ew.printf("%s cards: %s\n", p2.Name, spaced(p2.HoleCards[:]))
	ew.printf("Board: %s\n", spaced(hr.Board))
	ew.printf("Stacks: %s %s -> %s, %s %s -> %s\n",
		p1.Name, game.FormatChips(p1.StackBefore), game.FormatChips(p1.StackAfter),
		p2.Name, game.FormatChips(p2.StackBefore), game.FormatChips(p2.StackAfter))
	ew.printf("Actions:\n")
	for _, line := range hr.Log {
		ew.printf("  %s\n", line)
	}
	ew.printf("\n")
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

// SaveCSV writes the CSV export atomically.
func SaveCSV(path string, hands []*game.HandResult) error {
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return WriteCSV(w, hands)
	})
}

// SaveHistories writes the text hand histories atomically.
func SaveHistories(path string, hands []*game.HandResult) error {
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return WriteHistories(w, hands)
	})
}
