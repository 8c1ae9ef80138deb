// Package game implements heads-up no-limit Texas Hold'em.
//
// A Hand holds the state of one deal: the two players, the pot, the board and
// the betting level of the current street. An Engine drives a Hand from the
// blinds to the pot award, asking an Agent for every decision and writing a
// human-readable action log as it goes. A Table strings hands together,
// carrying stacks over and moving the button every hand.
//
// # Basic Usage
//
//	engine := game.NewEngine(logger)
//	table := game.NewTable(randutil.New(42), game.TableConfig{
//	    Names:         [2]string{"hero", "villain"},
//	    StartingStack: 1000,
//	    SmallBlind:    5,
//	    BigBlind:      10,
//	}, [2]game.Agent{hero, villain}, engine)
//
//	result, err := table.PlayHand()
//	if err != nil {
//	    // an agent broke the rules or a collaborator failed
//	}
//	for _, line := range result.Log {
//	    fmt.Println(line)
//	}
//
// # Rules
//
// The button posts the small blind, acts first preflop and last on every later
// street. The big blind keeps its option when the button only completes.
// Raise amounts are total levels for the street, never deltas, and a raise must
// add at least the size of the previous full raise (the big blind when nobody
// has bet). An all-in for less is allowed but does not reopen the betting.
//
// When no more than one player can still bet, the remaining streets are dealt
// without asking anyone and each is logged as an all-in runout. At showdown any
// chips the opponent could not match are returned before the pot is split;
// an odd chip in a split pot goes to the button.
//
// # Errors
//
// Illegal decisions (checking while facing a bet, raising below the minimum,
// negative amounts) are not corrected. PlayHand stops and returns an error
// wrapping ErrIllegalAction, as it does for an exhausted deck.
package game
