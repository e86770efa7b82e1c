package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a card string cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
// The values are single bits so a suit can be tested with a mask
type Suit int32

// suit constants
const (
	Spades   Suit = 1
	Hearts   Suit = 2
	Diamonds Suit = 4
	Clubs    Suit = 8
)

// Suits lists every suit in deck order
var Suits = [...]Suit{Clubs, Diamonds, Hearts, Spades}

// Rank is the rank of a card, from Two (0) to Ace (12)
type Rank int32

// rank constants
const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "shdc"
)

// primes are used to build a rank-only key for a hand
var primes = [...]int32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

// Card is an individual playing card
//
// The value is packed into 32 bits:
//
//	xxxbbbbb bbbbbbbb cdhsrrrr xxpppppp
//
// b is a bit for the rank, cdhs is the suit bit, r is the rank and p is the prime of the rank.
// Two cards are the same card if and only if they are ==.
type Card int32

// NewCard returns the card for the rank and suit
func NewCard(rank Rank, suit Suit) Card {
	return Card(int32(1)<<uint(rank)<<16 | int32(suit)<<12 | int32(rank)<<8 | primes[rank])
}

// Rank returns the rank of the card
func (c Card) Rank() Rank {
	return Rank((c >> 8) & 0xF)
}

// Suit returns the suit of the card
func (c Card) Suit() Suit {
	return Suit((c >> 12) & 0xF)
}

// RankBit returns a 13-bit mask with only the bit of the card's rank set
func (c Card) RankBit() int32 {
	return int32(c>>16) & 0x1FFF
}

// Prime returns the prime associated with the card's rank
func (c Card) Prime() int32 {
	return int32(c) & 0x3F
}

// Valid returns true if the card is one of the 52 cards of a standard deck
func (c Card) Valid() bool {
	rank := c.Rank()
	if rank < Two || rank > Ace {
		return false
	}

	switch c.Suit() {
	case Spades, Hearts, Diamonds, Clubs:
		return c == NewCard(rank, c.Suit())
	default:
		return false
	}
}

// Index returns a number from 0-51 that is unique for every card
// Cards are ordered by suit (clubs, diamonds, hearts, spades) then by rank
func (c Card) Index() int {
	var suitIndex int
	switch c.Suit() {
	case Clubs:
		suitIndex = 0
	case Diamonds:
		suitIndex = 1
	case Hearts:
		suitIndex = 2
	case Spades:
		suitIndex = 3
	default:
		panic(fmt.Sprintf("unknown suit: %d", c.Suit()))
	}

	return suitIndex*13 + int(c.Rank())
}

func (c Card) String() string {
	var suit byte
	switch c.Suit() {
	case Spades:
		suit = 's'
	case Hearts:
		suit = 'h'
	case Diamonds:
		suit = 'd'
	case Clubs:
		suit = 'c'
	default:
		return "??"
	}

	return string([]byte{rankChars[c.Rank()], suit})
}

// ParseCard returns a Card from the string.
// The string must be exactly two characters: a rank in [23456789TJQKA] followed by a suit in [hdcs]
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q must be two characters", ErrInvalidCard, s)
	}

	rank := strings.IndexByte(rankChars, s[0])
	if rank < 0 {
		return 0, fmt.Errorf("%w: %q has an unknown rank", ErrInvalidCard, s)
	}

	var suit Suit
	switch s[1] {
	case 's':
		suit = Spades
	case 'h':
		suit = Hearts
	case 'd':
		suit = Diamonds
	case 'c':
		suit = Clubs
	default:
		return 0, fmt.Errorf("%w: %q has an unknown suit", ErrInvalidCard, s)
	}

	return NewCard(Rank(rank), suit), nil
}

// ParseCards parses every string in the slice
// Duplicates are not checked here, see CardSet
func ParseCards(strs []string) ([]Card, error) {
	cards := make([]Card, len(strs))
	for i, s := range strs {
		card, err := ParseCard(s)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardsFromString will return a slice of cards from a string in the format of Ah,Kd,2c
// It panics if any card is invalid, so it is mostly useful for tests
func CardsFromString(s string) []Card {
	if s == "" {
		return []Card{}
	}

	cards, err := ParseCards(strings.Split(s, ","))
	if err != nil {
		panic(err)
	}

	return cards
}

// CardsToString will convert a slice of cards to a string in the format of Ah,Kd,2c
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return strings.Join(c, ",")
}
