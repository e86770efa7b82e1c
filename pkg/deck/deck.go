package deck

import (
	"errors"

	"pokerodds/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// DeckSize is the number of cards in a standard deck
const DeckSize = 52

var fullDeck = buildDeck()

func buildDeck() [DeckSize]Card {
	var cards [DeckSize]Card
	i := 0
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards[i] = NewCard(rank, suit)
			i++
		}
	}

	return cards
}

// FullDeck returns a new unshuffled slice of all 52 cards
func FullDeck() []Card {
	cards := make([]Card, DeckSize)
	copy(cards, fullDeck[:])
	return cards
}

// Deck represents a playing deck
type Deck struct {
	Cards []Card `json:"cards"`
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	return &Deck{Cards: FullDeck()}
}

// Remaining returns an unshuffled deck without any of the excluded cards
func Remaining(excluded CardSet) *Deck {
	cards := make([]Card, 0, DeckSize-excluded.Len())
	for _, card := range fullDeck {
		if !excluded.Has(card) {
			cards = append(cards, card)
		}
	}

	return &Deck{Cards: cards}
}

// Shuffle will shuffle the deck of cards
func (d *Deck) Shuffle(gen rng.Generator) {
	d.ShuffleTop(gen, len(d.Cards))
}

// ShuffleTop performs a partial Fisher-Yates shuffle so that the first n cards are a
// uniformly random selection, in random order, from the whole deck.
// The rest of the deck is left in an unspecified order.
func (d *Deck) ShuffleTop(gen rng.Generator, n int) {
	size := len(d.Cards)
	if n > size-1 {
		n = size - 1
	}

	for i := 0; i < n; i++ {
		j := i + gen.Intn(size-i)
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned.
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) <= 0 {
		return 0, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
