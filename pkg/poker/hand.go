package poker

import "fmt"

// Category is the class of a poker hand, i.e., full house
// Lower values are stronger hands
type Category int

// Constants for category
const (
	StraightFlush Category = iota + 1
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	OnePair
	HighCard
)

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case StraightFlush:
		return "Straight flush"
	case FourOfAKind:
		return "Four of a kind"
	case FullHouse:
		return "Full house"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a kind"
	case TwoPair:
		return "Two pair"
	case OnePair:
		return "Pair"
	case HighCard:
		return "High card"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}
