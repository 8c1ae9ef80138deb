package phh

// HandHistory is a single hand in Poker Hand History (PHH) form. Player
// indexes are PHH positions: p1 is the small blind (the button heads-up) and
// p2 the big blind.
type HandHistory struct {
	Variant           string   `toml:"variant"`
	Table             string   `toml:"table,omitempty"`
	Antes             []int    `toml:"antes"`
	BlindsOrStraddles []int    `toml:"blinds_or_straddles"`
	MinBet            int      `toml:"min_bet"`
	StartingStacks    []int    `toml:"starting_stacks"`
	Actions           []string `toml:"actions"`
	Players           []string `toml:"players,omitempty"`
	FinishingStacks   []int    `toml:"finishing_stacks,omitempty"`
	Winnings          []int    `toml:"winnings,omitempty"`
	Event             string   `toml:"event,omitempty"`
	Hand              int      `toml:"hand,omitempty"`
	Seed              int64    `toml:"_seed,omitempty"`
	HandID            string   `toml:"_hand_id,omitempty"`
	Time              string   `toml:"time,omitempty"`
	TimeZone          string   `toml:"time_zone,omitempty"`
	Day               int      `toml:"day,omitempty"`
	Month             int      `toml:"month,omitempty"`
	Year              int      `toml:"year,omitempty"`
}
