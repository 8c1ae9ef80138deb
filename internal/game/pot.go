package game

import "fmt"

// Pot is the chip accountant for one hand. Chips only move between player
// stacks and the pot, so stacks plus pot stay constant until the award.
type Pot struct {
	total int
}

// Total returns the chips in the pot.
func (p *Pot) Total() int {
	return p.total
}

// Post moves min(amount, stack) chips from the player into the pot and returns
// how many moved. Emptying the stack puts the player all-in.
func (p *Pot) Post(pl *Player, amount int) int {
	moved := min(max(amount, 0), pl.Stack)
	pl.Stack -= moved
	pl.Bet += moved
	pl.TotalBet += moved
	p.total += moved
	if pl.Stack == 0 && moved > 0 {
		pl.AllIn = true
	}
	return moved
}

// Refund hands uncalled chips back to the player who committed them.
func (p *Pot) Refund(pl *Player, amount int) {
	if amount <= 0 {
		return
	}
	if amount > p.total || amount > pl.TotalBet {
		panic(fmt.Sprintf("refund of %d exceeds committed chips", amount))
	}
	p.total -= amount
	pl.Stack += amount
	pl.TotalBet -= amount
	pl.Bet = max(pl.Bet-amount, 0)
	pl.AllIn = false
}

// Award pays amount out of the pot, split evenly across winners. Chips that do
// not divide go to oddChipTo when it is one of the winners, otherwise to the
// first winner. It returns each winner's share in order.
func (p *Pot) Award(amount int, winners []*Player, oddChipTo *Player) []int {
	if len(winners) == 0 {
		panic("award requires at least one winner")
	}
	if amount < 0 || amount > p.total {
		panic(fmt.Sprintf("award of %d from a pot of %d", amount, p.total))
	}

	shares, remainder := splitPot(amount, len(winners))
	odd := 0
	for i, w := range winners {
		if w == oddChipTo {
			odd = i
			break
		}
	}
	shares[odd] += remainder

	for i, w := range winners {
		w.Stack += shares[i]
	}
	p.total -= amount
	return shares
}

// splitPot divides amount into n equal shares and the leftover chips.
func splitPot(amount, n int) ([]int, int) {
	shares := make([]int, n)
	each := amount / n
	for i := range shares {
		shares[i] = each
	}
	return shares, amount - each*n
}
