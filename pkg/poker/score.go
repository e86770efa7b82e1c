package poker

import "fmt"

// Score is the strength of a five card hand. Lower is stronger.
// The value is an ordinal: 1 is a royal flush and 7462 is 7-5-4-3-2 offsuit.
// Only compare scores, never do arithmetic on them.
type Score int32

// the weakest score in each category
const (
	maxStraightFlush Score = 10
	maxFourOfAKind   Score = 166
	maxFullHouse     Score = 322
	maxFlush         Score = 1599
	maxStraight      Score = 1609
	maxThreeOfAKind  Score = 2467
	maxTwoPair       Score = 3325
	maxPair          Score = 6185
	maxHighCard      Score = 7462
)

// BestScore and WorstScore bound every valid score
const (
	BestScore  Score = 1
	WorstScore Score = maxHighCard
)

var categoryLimits = [...]Score{
	maxStraightFlush,
	maxFourOfAKind,
	maxFullHouse,
	maxFlush,
	maxStraight,
	maxThreeOfAKind,
	maxTwoPair,
	maxPair,
	maxHighCard,
}

// Category returns the category of the hand
func (s Score) Category() Category {
	if s < BestScore {
		panic(fmt.Sprintf("score %d is less than %d", s, BestScore))
	}

	for i, limit := range categoryLimits {
		if s <= limit {
			return Category(i + 1)
		}
	}

	panic(fmt.Sprintf("score %d is unknown", s))
}

// Beats returns true if s is a strictly stronger hand than other
func (s Score) Beats(other Score) bool {
	return s < other
}

// IsRoyalFlush returns true if the score is a royal flush
func (s Score) IsRoyalFlush() bool {
	return s == BestScore
}

// Valid returns true if the score belongs to a real hand
// The zero Score, returned alongside errors, is not valid
func (s Score) Valid() bool {
	return s >= BestScore && s <= WorstScore
}

func (s Score) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Unknown score (%d)", int32(s))
	}

	if s.IsRoyalFlush() {
		return "Royal flush"
	}

	return s.Category().String()
}
