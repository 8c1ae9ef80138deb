package phh

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lox/headsup/internal/fileutil"
	"github.com/lox/headsup/internal/game"
)

// Variant is no-limit Texas hold'em.
const Variant = "NT"

// Options adds match-level fields to a hand history.
type Options struct {
	Event string // usually the match id
	Table string
	Seed  int64
	Time  time.Time
}

// Encode writes the hand history to the provided writer in PHH TOML format.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return errors.New("phh: hand history is nil")
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(hand *HandHistory) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, hand); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeAll writes several hands as a .phhs file, one numbered table per hand.
func EncodeAll(w io.Writer, hands []*HandHistory) error {
	for i, h := range hands {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "[%d]\n", i+1); err != nil {
			return err
		}
		if err := Encode(w, h); err != nil {
			return fmt.Errorf("phh: hand %d: %w", i+1, err)
		}
	}
	return nil
}

// FormatAction converts an applied decision to a PHH action string.
func FormatAction(player int, rec game.ActionRecord) string {
	p := fmt.Sprintf("p%d", player+1)
	switch rec.Action {
	case game.Fold:
		return p + " f"
	case game.Check, game.Call:
		return p + " cc"
	case game.Raise, game.AllIn:
		return fmt.Sprintf("%s cbr %d", p, rec.Level)
	default:
		return fmt.Sprintf("# %s %s %d", p, rec.Action, rec.Level)
	}
}

// FromHand builds the PHH record of a finished hand.
func FromHand(hr *game.HandResult, opts Options) *HandHistory {
	// PHH positions: the button posts the small blind and is p1.
	seats := [2]int{hr.Button, 1 - hr.Button}
	pos := func(seat int) int {
		if seat == hr.Button {
			return 0
		}
		return 1
	}

	h := &HandHistory{
		Variant:           Variant,
		Table:             opts.Table,
		Antes:             []int{0, 0},
		BlindsOrStraddles: []int{hr.SmallBlind, hr.BigBlind},
		MinBet:            hr.BigBlind,
		Event:             opts.Event,
		Hand:              hr.HandNumber,
		Seed:              opts.Seed,
		HandID:            hr.HandID,
	}
	for i, seat := range seats {
		p := hr.Players[seat]
		h.Players = append(h.Players, p.Name)
		h.StartingStacks = append(h.StartingStacks, p.StackBefore)
		h.FinishingStacks = append(h.FinishingStacks, p.StackAfter)
		h.Winnings = append(h.Winnings, p.Won)
		h.Actions = append(h.Actions, fmt.Sprintf("d dh p%d %s", i+1, formatCards(p.HoleCards[:])))
	}

	street := 0
	dealTo := func(s int) {
		for ; street < s; street++ {
			if cards := boardFor(hr.Board, street+1); len(cards) > 0 {
				h.Actions = append(h.Actions, "d db "+formatCards(cards))
			}
		}
	}
	for _, rec := range hr.Actions {
		dealTo(int(rec.Street))
		h.Actions = append(h.Actions, FormatAction(pos(rec.Seat), rec))
	}
	dealTo(len(hr.Board) - 2) // 3 cards is the flop, 5 the river

	if hr.WentToShowdown() {
		// The big blind shows first.
		for i := len(seats) - 1; i >= 0; i-- {
			p := hr.Players[seats[i]]
			h.Actions = append(h.Actions, fmt.Sprintf("p%d sm %s", i+1, formatCards(p.HoleCards[:])))
		}
	}

	if !opts.Time.IsZero() {
		t := opts.Time
		h.Time = t.Format(time.TimeOnly)
		h.TimeZone = t.Location().String()
		h.Day, h.Month, h.Year = t.Day(), int(t.Month()), t.Year()
	}
	return h
}

// Save writes hands to path as a .phhs file atomically.
func Save(path string, hands []*HandHistory) error {
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return EncodeAll(w, hands)
	})
}
