package deck

import "math/bits"

// CardSet is a compact set of cards keyed by Card.Index()
type CardSet uint64

// NewCardSet returns a set of the cards
// The second return value is false if a card was seen more than once
func NewCardSet(cards ...Card) (CardSet, bool) {
	var s CardSet
	for _, card := range cards {
		if !s.Add(card) {
			return s, false
		}
	}

	return s, true
}

// Add adds the card to the set and returns false if it was already present
func (s *CardSet) Add(card Card) bool {
	bit := CardSet(1) << uint(card.Index())
	if *s&bit != 0 {
		return false
	}

	*s |= bit
	return true
}

// Has returns true if the set contains the card
func (s CardSet) Has(card Card) bool {
	return s&(CardSet(1)<<uint(card.Index())) != 0
}

// Len returns the number of cards in the set
func (s CardSet) Len() int {
	return bits.OnesCount64(uint64(s))
}
