// Package statistics aggregates per-agent results over a heads-up match.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// Position is the seat role in a hand.
type Position int

const (
	Button Position = iota
	BigBlind
)

func (p Position) String() string {
	if p == Button {
		return "button"
	}
	return "big blind"
}

// HandResult is one hand from one agent's point of view.
type HandResult struct {
	NetChips       int
	BigBlind       int
	Position       Position
	VPIP           bool
	WentToShowdown bool
	Won            bool // took at least part of the pot
	Split          bool
	FinalPotSize   int
	StreetReached  string
}

// NetBB is the result in big blinds.
func (r HandResult) NetBB() float64 {
	if r.BigBlind == 0 {
		return 0
	}
	return float64(r.NetChips) / float64(r.BigBlind)
}

// PositionStats tracks statistics for one position.
type PositionStats struct {
	Hands  int
	SumBB  float64
	SumBB2 float64
}

// Mean returns the position's bb per hand.
func (p PositionStats) Mean() float64 {
	if p.Hands == 0 {
		return 0
	}
	return p.SumBB / float64(p.Hands)
}

// Statistics tracks one agent across a match.
type Statistics struct {
	Hands  int
	SumBB  float64
	SumBB2 float64   // Sum of squares for variance calculation
	Values []float64 // Store all values for median/percentile calculation

	HandsWon  int
	HandsLost int
	Profit    int // chips
	VPIPHands int
	Rebuys    int

	Showdowns       int
	ShowdownWins    int     // Hands won at showdown
	NonShowdownWins int     // Hands won without showdown (fold equity)
	ShowdownBB      float64 // BB from showdown (wins AND losses)
	NonShowdownBB   float64 // BB from fold equity (wins AND losses)
	AllBB           float64 // Total BB for sanity check

	PositionResults [2]PositionStats

	MaxPotChips int
	MaxPotBB    float64
	BigPots     int     // Pots >= 50bb (high action hands)
	BigPotsBB   float64 // BB from big pots
}

// Mean returns the arithmetic mean of all results in big blinds per hand
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// BBPer100 is the win rate in big blinds per hundred hands.
func (s *Statistics) BBPer100() float64 {
	return s.Mean() * 100
}

// AverageProfit is chips won per hand.
func (s *Statistics) AverageProfit() float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.Profit) / float64(s.Hands)
}

// VPIP is the share of hands where the agent put money in voluntarily preflop.
func (s *Statistics) VPIP() float64 {
	return ratio(s.VPIPHands, s.Hands)
}

// ShowdownWinRate is the share of showdowns won outright or split.
func (s *Statistics) ShowdownWinRate() float64 {
	return ratio(s.ShowdownWins, s.Showdowns)
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add incorporates a new hand result into the statistics
func (s *Statistics) Add(result HandResult) {
	netBB := result.NetBB()
	s.Hands++
	s.SumBB += netBB
	s.SumBB2 += netBB * netBB
	s.Values = append(s.Values, netBB)
	s.Profit += result.NetChips

	switch {
	case result.NetChips > 0:
		s.HandsWon++
	case result.NetChips < 0:
		s.HandsLost++
	}
	if result.VPIP {
		s.VPIPHands++
	}

	if result.WentToShowdown {
		s.Showdowns++
		s.ShowdownBB += netBB
		if result.Won {
			s.ShowdownWins++
		}
	} else {
		s.NonShowdownBB += netBB
		if result.Won {
			s.NonShowdownWins++
		}
	}
	s.AllBB += netBB

	if pos := result.Position; pos == Button || pos == BigBlind {
		s.PositionResults[pos].Hands++
		s.PositionResults[pos].SumBB += netBB
		s.PositionResults[pos].SumBB2 += netBB * netBB
	}

	potChips := result.FinalPotSize
	var potBB float64
	if result.BigBlind > 0 {
		potBB = float64(potChips) / float64(result.BigBlind)
	}
	if potChips > s.MaxPotChips {
		s.MaxPotChips = potChips
		s.MaxPotBB = potBB
	}
	if potBB >= 50 {
		s.BigPots++
		s.BigPotsBB += netBB
	}
}

// Merge folds another agent's statistics into s, e.g. across sessions.
func (s *Statistics) Merge(o *Statistics) {
	s.Hands += o.Hands
	s.SumBB += o.SumBB
	s.SumBB2 += o.SumBB2
	s.Values = append(s.Values, o.Values...)
	s.HandsWon += o.HandsWon
	s.HandsLost += o.HandsLost
	s.Profit += o.Profit
	s.VPIPHands += o.VPIPHands
	s.Rebuys += o.Rebuys
	s.Showdowns += o.Showdowns
	s.ShowdownWins += o.ShowdownWins
	s.NonShowdownWins += o.NonShowdownWins
	s.ShowdownBB += o.ShowdownBB
	s.NonShowdownBB += o.NonShowdownBB
	s.AllBB += o.AllBB
	for i := range s.PositionResults {
		s.PositionResults[i].Hands += o.PositionResults[i].Hands
		s.PositionResults[i].SumBB += o.PositionResults[i].SumBB
		s.PositionResults[i].SumBB2 += o.PositionResults[i].SumBB2
	}
	if o.MaxPotChips > s.MaxPotChips {
		s.MaxPotChips = o.MaxPotChips
		s.MaxPotBB = o.MaxPotBB
	}
	s.BigPots += o.BigPots
	s.BigPotsBB += o.BigPotsBB
}

// Median returns the median value of all results
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// PositionMean returns the mean result for a position.
func (s *Statistics) PositionMean(pos Position) float64 {
	if pos != Button && pos != BigBlind {
		return 0
	}
	return s.PositionResults[pos].Mean()
}

// IsLedgerBalanced checks if the accounting is consistent
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.AllBB-s.ShowdownBB-s.NonShowdownBB) <= 1e-6
}

// Validate performs comprehensive validation of statistics data
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: AllBB=%.6f, ShowdownBB=%.6f, NonShowdownBB=%.6f",
			s.AllBB, s.ShowdownBB, s.NonShowdownBB)
	}
	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}
	if len(s.Values) != s.Hands {
		return fmt.Errorf("values array length (%d) does not match hands count (%d)",
			len(s.Values), s.Hands)
	}
	if wins := s.ShowdownWins + s.NonShowdownWins; wins > s.Hands {
		return fmt.Errorf("total wins (%d) exceeds total hands (%d)", wins, s.Hands)
	}
	if s.ShowdownWins > s.Showdowns {
		return fmt.Errorf("showdown wins (%d) exceed showdowns (%d)", s.ShowdownWins, s.Showdowns)
	}
	if n := s.PositionResults[Button].Hands + s.PositionResults[BigBlind].Hands; n != s.Hands {
		return fmt.Errorf("position hands total (%d) does not match total hands (%d)", n, s.Hands)
	}
	return nil
}
