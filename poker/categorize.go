package poker

// HoleCardCategory buckets starting hands.
type HoleCardCategory uint8

const (
	CategoryTrash HoleCardCategory = iota
	CategoryWeak
	CategoryMedium
	CategoryStrong
	CategoryPremium
)

func (c HoleCardCategory) String() string {
	switch c {
	case CategoryPremium:
		return "Premium"
	case CategoryStrong:
		return "Strong"
	case CategoryMedium:
		return "Medium"
	case CategoryWeak:
		return "Weak"
	case CategoryTrash:
		return "Trash"
	default:
		return "Unknown"
	}
}

// CategorizeHoleCards groups starting hands:
// Premium (JJ+, AK), Strong (TT, AQ, AJ), Medium (77-99, suited broadways),
// Weak (22-66, suited connectors and one-gappers), Trash (everything else).
func CategorizeHoleCards(a, b Card) HoleCardCategory {
	high, low := orderedValues(a, b)
	suited := a.Suit() == b.Suit()
	pair := high == low

	switch {
	case pair && high >= 11, high == 14 && low == 13:
		return CategoryPremium
	case pair && high == 10, high == 14 && (low == 12 || low == 11):
		return CategoryStrong
	case pair && high >= 7, suited && low >= 10:
		return CategoryMedium
	case pair, suited && high-low <= 2:
		return CategoryWeak
	default:
		return CategoryTrash
	}
}

// Strength tables indexed by the low card value (2..14). Pairs index by the
// pair value.
var (
	aceSuited   = [15]float64{2: 0.46, 0.50, 0.54, 0.58, 0.62, 0.66, 0.70, 0.74, 0.78, 0.82, 0.85, 0.88}
	kingSuited  = [15]float64{2: 0.40, 0.44, 0.48, 0.52, 0.56, 0.60, 0.64, 0.68, 0.72, 0.76, 0.80}
	queenSuited = [15]float64{2: 0.36, 0.40, 0.44, 0.48, 0.52, 0.56, 0.60, 0.64, 0.68, 0.72}
	aceOffsuit  = [15]float64{2: 0.38, 0.42, 0.46, 0.50, 0.54, 0.58, 0.62, 0.66, 0.70, 0.74, 0.78, 0.82}
	kingOffsuit = [15]float64{2: 0.32, 0.36, 0.40, 0.44, 0.48, 0.52, 0.56, 0.60, 0.64, 0.68, 0.72}
	pocketPairs = [15]float64{2: 0.31, 0.35, 0.40, 0.46, 0.52, 0.58, 0.64, 0.70, 0.76, 0.82, 0.88, 0.94, 1.00}
)

// PreflopStrength scores a heads-up starting hand from 0 (worst) to 1 (AA).
func PreflopStrength(a, b Card) float64 {
	high, low := orderedValues(a, b)
	if high == low {
		return pocketPairs[high]
	}

	gap := float64(high - low - 1)
	if a.Suit() == b.Suit() {
		switch {
		case high == 14:
			return aceSuited[low]
		case high == 13:
			return kingSuited[low]
		case high == 12:
			return queenSuited[low]
		case high >= 10:
			return max(0.20, 0.60-float64(high-10)*0.08-gap*0.04)
		default:
			return max(0.15, 0.50-float64(high-2)*0.05)
		}
	}

	switch {
	case high == 14:
		return aceOffsuit[low]
	case high == 13:
		return kingOffsuit[low]
	case high >= 10:
		return max(0.10, 0.50-float64(high-10)*0.08-gap*0.05)
	default:
		return max(0.05, 0.40-float64(high-2)*0.06)
	}
}

// orderedValues returns card values on a 2..14 scale, higher first.
func orderedValues(a, b Card) (int, int) {
	x, y := int(a.Rank())+2, int(b.Rank())+2
	if x < y {
		x, y = y, x
	}
	return x, y
}
