package poker

import "pokerodds/pkg/deck"

// rankBitCombos is the size of a table indexed by a 13-bit rank mask
const rankBitCombos = 1 << 13

// straights in descending order, as rank masks
var straights = [...]int32{
	0b1111100000000, // ace high
	0b0111110000000,
	0b0011111000000,
	0b0001111100000,
	0b0000111110000,
	0b0000011111000,
	0b0000001111100,
	0b0000000111110,
	0b0000000011111,
	0b1000000001111, // five high
}

// Tables holds the precomputed lookups used to score a five card hand.
// Tables are immutable after NewTables returns and may be shared by any number of goroutines.
type Tables struct {
	// flushes is indexed by the rank mask of a suited hand
	flushes [rankBitCombos]Score
	// unique is indexed by the rank mask of an unsuited hand with five distinct ranks
	unique [rankBitCombos]Score
	// paired is keyed by the product of the rank primes of a hand with a repeated rank
	paired map[int32]Score
}

// NewTables builds the lookup tables
// This is relatively expensive, so build it once and pass it around
func NewTables() *Tables {
	t := &Tables{
		paired: make(map[int32]Score, 4888),
	}

	highCards := nonStraightRankMasks()
	t.straightsAndFlushes(highCards)
	t.multiples()

	return t
}

// nonStraightRankMasks returns every 5-bit rank mask that is not a straight, strongest first
func nonStraightRankMasks() []int32 {
	isStraight := make(map[int32]bool, len(straights))
	for _, s := range straights {
		isStraight[s] = true
	}

	// C(13,5) = 1287 masks, 10 of which are straights
	masks := make([]int32, 0, 1277)
	for mask := int32(0b11111); mask < rankBitCombos; mask = nextBitPermutation(mask) {
		if !isStraight[mask] {
			masks = append(masks, mask)
		}
	}

	for i, j := 0, len(masks)-1; i < j; i, j = i+1, j-1 {
		masks[i], masks[j] = masks[j], masks[i]
	}

	return masks
}

func (t *Tables) straightsAndFlushes(highCards []int32) {
	rank := BestScore
	for _, s := range straights {
		t.flushes[s] = rank
		rank++
	}

	rank = maxFullHouse + 1
	for _, h := range highCards {
		t.flushes[h] = rank
		rank++
	}

	rank = maxFlush + 1
	for _, s := range straights {
		t.unique[s] = rank
		rank++
	}

	rank = maxPair + 1
	for _, h := range highCards {
		t.unique[h] = rank
		rank++
	}
}

// multiples fills in every hand with a repeated rank.
// Ranks are walked from ace down so each category is filled strongest first.
func (t *Tables) multiples() {
	descending := make([]deck.Rank, 0, 13)
	for r := deck.Ace; r >= deck.Two; r-- {
		descending = append(descending, r)
	}

	// four of a kind
	rank := maxStraightFlush + 1
	for _, quad := range descending {
		for _, kicker := range without(descending, quad) {
			t.paired[product(quad, quad, quad, quad, kicker)] = rank
			rank++
		}
	}

	// full house
	rank = maxFourOfAKind + 1
	for _, trips := range descending {
		for _, pair := range without(descending, trips) {
			t.paired[product(trips, trips, trips, pair, pair)] = rank
			rank++
		}
	}

	// three of a kind
	rank = maxStraight + 1
	for _, trips := range descending {
		kickers := without(descending, trips)
		for i := 0; i < len(kickers)-1; i++ {
			for j := i + 1; j < len(kickers); j++ {
				t.paired[product(trips, trips, trips, kickers[i], kickers[j])] = rank
				rank++
			}
		}
	}

	// two pair
	rank = maxThreeOfAKind + 1
	for i := 0; i < len(descending)-1; i++ {
		for j := i + 1; j < len(descending); j++ {
			high, low := descending[i], descending[j]
			for _, kicker := range without(without(descending, high), low) {
				t.paired[product(high, high, low, low, kicker)] = rank
				rank++
			}
		}
	}

	// one pair
	rank = maxTwoPair + 1
	for _, pair := range descending {
		kickers := without(descending, pair)
		for i := 0; i < len(kickers)-2; i++ {
			for j := i + 1; j < len(kickers)-1; j++ {
				for k := j + 1; k < len(kickers); k++ {
					t.paired[product(pair, pair, kickers[i], kickers[j], kickers[k])] = rank
					rank++
				}
			}
		}
	}
}

// score returns the score of exactly five distinct cards
func (t *Tables) score(c0, c1, c2, c3, c4 deck.Card) Score {
	mask := (c0 | c1 | c2 | c3 | c4).RankBit()

	if c0&c1&c2&c3&c4&0xF000 != 0 {
		return t.flushes[mask]
	}

	if s := t.unique[mask]; s != 0 {
		return s
	}

	return t.paired[c0.Prime()*c1.Prime()*c2.Prime()*c3.Prime()*c4.Prime()]
}

func without(ranks []deck.Rank, exclude deck.Rank) []deck.Rank {
	out := make([]deck.Rank, 0, len(ranks))
	for _, r := range ranks {
		if r != exclude {
			out = append(out, r)
		}
	}

	return out
}

func product(ranks ...deck.Rank) int32 {
	p := int32(1)
	for _, r := range ranks {
		p *= deck.NewCard(r, deck.Spades).Prime()
	}

	return p
}

// nextBitPermutation returns the next larger integer with the same number of set bits.
// See https://graphics.stanford.edu/~seander/bithacks.html#NextBitPermutation
func nextBitPermutation(bits int32) int32 {
	t := (bits | (bits - 1)) + 1
	return t | ((((t & -t) / (bits & -bits)) >> 1) - 1)
}
