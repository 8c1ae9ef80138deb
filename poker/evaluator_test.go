package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cards string
		want  HandType
	}{
		{"As Ks Qs Js Ts 2d 3c", StraightFlush},
		{"5d 4d 3d 2d Ad Kc Qh", StraightFlush},
		{"9c 9d 9h 9s Ad 2c 3h", FourOfAKind},
		{"Kc Kd Kh 7s 7d 2c 3h", FullHouse},
		{"Kc Kd Kh 7s 7d 7c 3h", FullHouse},
		{"Ah 9h 7h 4h 2h Kd Qc", Flush},
		{"9c Td Jh Qs Kd 2c 2h", Straight},
		{"Ac 2d 3h 4s 5d Kc Kh", Straight},
		{"7c 7d 7h As Kd 2c 3h", ThreeOfAKind},
		{"Ac Ad Kh Ks 2d 2c 9h", TwoPair},
		{"Ac Ad 9h 7s 5d 3c 2h", Pair},
		{"Ac Qd 9h 7s 5d 3c 2h", HighCard},
		{"Ac Ad Kh Ks 2d", TwoPair},
		{"Ac Kd Qh Js Td 9c", Straight},
	}

	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			t.Parallel()
			rank := EvaluateCards(MustParseCards(tt.cards)...)
			assert.Equal(t, tt.want, rank.Type())
		})
	}
}

func TestEvaluateOrdering(t *testing.T) {
	t.Parallel()

	stronger := func(a, b string) {
		t.Helper()
		ra := EvaluateCards(MustParseCards(a)...)
		rb := EvaluateCards(MustParseCards(b)...)
		assert.Equal(t, 1, CompareHands(ra, rb), "%s should beat %s", a, b)
		assert.Equal(t, -1, CompareHands(rb, ra))
	}

	stronger("Ac Ad Kh 7s 5d 3c 2h", "Ac Ad Qh 7s 5d 3c 2h") // kicker
	stronger("Ac Ad Kh Ks 2d 3c 9h", "Ac Ad Qh Qs Jd Tc 9h") // second pair
	stronger("Ac Ad Kh Ks Qd 2c 3h", "Ac Ad Kh Ks Jd 2c 3h") // two pair kicker
	stronger("6c 2d 3h 4s 5d Kc Kh", "Ac 2d 3h 4s 5d Kc Kh") // six high beats the wheel
	stronger("Ah 9h 7h 4h 3h Kd Qc", "Ah 9h 7h 4h 2h Kd Qc") // flush kicker
	stronger("Qc Qd Qh 2s 2d 9c 3h", "Jc Jd Jh As Ad 9c 3h") // full house by trips
	stronger("9c 9d 9h 9s 2d 2c 3h", "Ac Ad Ah Ks Kd 2c 3h") // quads over boat
	stronger("As Ks Qs Js Ts 2d 3c", "Ks Qs Js Ts 9s 2d 3c") // royal over king high
	stronger("Kc Kd Kh 7s 7d 7c 3h", "Kc Kd Kh 6s 6d 7c 3h") // best pair from second trips
	stronger("Ac Ad Kh Ks Qd Qc 3h", "Ac Ad Kh Ks Jd Jc 3h") // third pair plays as kicker
}

func TestEvaluateBoardPlays(t *testing.T) {
	t.Parallel()

	board := MustParseCards("Ac Ad Kh Ks Qd")
	a := EvaluateCards(append(MustParseCards("2c 3d"), board...)...)
	b := EvaluateCards(append(MustParseCards("4h 5s"), board...)...)
	assert.Equal(t, 0, CompareHands(a, b))
	assert.Equal(t, "Two Pair", a.String())
}

func TestEvaluateEmpty(t *testing.T) {
	t.Parallel()
	assert.Zero(t, Evaluate(0))
}

func BenchmarkEvaluate(b *testing.B) {
	hand := NewHand(MustParseCards("As Ks Qd Jh 9c 2d 3c")...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Evaluate(hand)
	}
}
