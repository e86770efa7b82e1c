package poker

import (
	"errors"
	"fmt"
	"sync"

	"pokerodds/pkg/deck"
)

// ErrInvalidHand is returned when the cards cannot be evaluated
var ErrInvalidHand = errors.New("invalid hand")

// Evaluator scores poker hands of five to seven cards.
// An Evaluator only reads its tables, so it is safe for concurrent use.
type Evaluator struct {
	tables *Tables
}

var (
	defaultOnce      sync.Once
	defaultEvaluator *Evaluator
)

// Default returns an evaluator shared by the whole process
// The tables are built on the first call
func Default() *Evaluator {
	defaultOnce.Do(func() {
		defaultEvaluator = NewEvaluator(NewTables())
	})

	return defaultEvaluator
}

// NewEvaluator returns an evaluator backed by the tables
func NewEvaluator(tables *Tables) *Evaluator {
	if tables == nil {
		panic("tables cannot be nil")
	}

	return &Evaluator{tables: tables}
}

// Evaluate returns the score of the best five card hand that can be made from the cards.
// There must be 5, 6, or 7 distinct cards.
func (e *Evaluator) Evaluate(cards ...deck.Card) (Score, error) {
	if n := len(cards); n < 5 || n > 7 {
		return 0, fmt.Errorf("%w: expected 5-7 cards, got %d", ErrInvalidHand, n)
	}

	for _, card := range cards {
		if !card.Valid() {
			return 0, fmt.Errorf("%w: %d is not a card", ErrInvalidHand, int32(card))
		}
	}

	if _, ok := deck.NewCardSet(cards...); !ok {
		return 0, fmt.Errorf("%w: duplicate card in %s", ErrInvalidHand, deck.CardsToString(cards))
	}

	return e.best(cards), nil
}

// MustEvaluate is like Evaluate, but panics if the cards are invalid
func (e *Evaluator) MustEvaluate(cards ...deck.Card) Score {
	score, err := e.Evaluate(cards...)
	if err != nil {
		panic(err)
	}

	return score
}

// best checks every five card subset of the cards
func (e *Evaluator) best(cards []deck.Card) Score {
	n := len(cards)
	best := WorstScore + 1

	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for f := d + 1; f < n; f++ {
						if s := e.tables.score(cards[a], cards[b], cards[c], cards[d], cards[f]); s < best {
							best = s
						}
					}
				}
			}
		}
	}

	return best
}
