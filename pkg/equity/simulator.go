package equity

import (
	"fmt"
	"time"

	"pokerodds/internal/rng"
	"pokerodds/pkg/deck"
	"pokerodds/pkg/poker"

	"github.com/sirupsen/logrus"
)

// DefaultIterations trades accuracy for latency. At 2000 iterations the estimate is
// within one or two percentage points of the true equity.
const DefaultIterations = 2000

// HoleCards is the number of private cards dealt to each player
const HoleCards = 2

// BoardCards is the number of community cards on a complete board
const BoardCards = 5

// Result is the outcome of a simulation
// All rates are fractions in [0, 1]
type Result struct {
	WinRate    float64 `json:"winRate"`
	TieRate    float64 `json:"tieRate"`
	Equity     float64 `json:"equity"`
	Iterations int     `json:"iterations"`
}

// Option configures a Simulator
type Option func(s *Simulator)

// WithIterations sets the number of random deals per simulation
func WithIterations(iterations int) Option {
	return func(s *Simulator) {
		s.iterations = iterations
	}
}

// WithGeneratorFactory sets where each simulation gets its random numbers from
func WithGeneratorFactory(factory rng.Factory) Option {
	return func(s *Simulator) {
		s.newGenerator = factory
	}
}

// WithSeed makes every simulation start from the same seed
func WithSeed(seed uint64) Option {
	return WithGeneratorFactory(rng.PCGFactory(seed))
}

// WithLogger sets the logger
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Simulator) {
		s.logger = logger
	}
}

// Simulator estimates a hand's equity against random opponents by Monte Carlo sampling.
// A Simulator holds no per-call state and is safe for concurrent use.
type Simulator struct {
	evaluator    *poker.Evaluator
	iterations   int
	newGenerator rng.Factory
	logger       logrus.FieldLogger
}

// NewSimulator returns a Simulator that scores hands with the evaluator
func NewSimulator(evaluator *poker.Evaluator, options ...Option) *Simulator {
	if evaluator == nil {
		panic("evaluator cannot be nil")
	}

	s := &Simulator{
		evaluator:    evaluator,
		iterations:   DefaultIterations,
		newGenerator: rng.PCGFactory(0),
		logger:       logrus.StandardLogger(),
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Iterations returns the number of random deals per simulation
func (s *Simulator) Iterations() int {
	return s.iterations
}

// Simulate deals out the rest of the board and every opponent's hole cards at random, many times,
// and reports how often the hero's hand wins or ties against the best opponent.
// The board may hold 0-5 cards. Neither hole nor board is modified.
func (s *Simulator) Simulate(hole, board []deck.Card, opponents int) (Result, error) {
	if err := s.validate(hole, board, opponents); err != nil {
		return Result{}, err
	}

	known, _ := deck.NewCardSet(append(append([]deck.Card{}, hole...), board...)...)
	remaining := deck.Remaining(known)

	toBoard := BoardCards - len(board)
	// compared by division so a huge opponent count cannot overflow
	if opponents > (remaining.CardsLeft()-toBoard)/HoleCards {
		return Result{}, fmt.Errorf("%w: need %d cards for the board and %d cards for each of %d opponents, only %d remain", ErrInsufficientCards, toBoard, HoleCards, opponents, remaining.CardsLeft())
	}

	toDeal := toBoard + opponents*HoleCards

	start := time.Now()
	gen := s.newGenerator()

	// hand is laid out as [board..., hole1, hole2]; the board part is shared by every player
	hand := make([]deck.Card, BoardCards+HoleCards)
	copy(hand, board)

	wins, ties := 0, 0
	for i := 0; i < s.iterations; i++ {
		remaining.ShuffleTop(gen, toDeal)
		copy(hand[len(board):BoardCards], remaining.Cards[:toBoard])

		hand[5], hand[6] = hole[0], hole[1]
		hero := s.evaluator.MustEvaluate(hand...)

		best := poker.WorstScore + 1
		for o := 0; o < opponents; o++ {
			offset := toBoard + o*HoleCards
			hand[5], hand[6] = remaining.Cards[offset], remaining.Cards[offset+1]
			if score := s.evaluator.MustEvaluate(hand...); score < best {
				best = score
			}
		}

		switch {
		case hero < best:
			wins++
		case hero == best:
			ties++
		}
	}

	result := newResult(wins, ties, s.iterations)

	s.logger.WithFields(logrus.Fields{
		"opponents":  opponents,
		"boardCards": len(board),
		"iterations": s.iterations,
		"wins":       wins,
		"ties":       ties,
		"elapsed":    time.Since(start).String(),
	}).Debug("simulated equity")

	return result, nil
}

func newResult(wins, ties, iterations int) Result {
	winRate := float64(wins) / float64(iterations)
	tieRate := float64(ties) / float64(iterations)

	return Result{
		WinRate:    winRate,
		TieRate:    tieRate,
		Equity:     winRate + tieRate/2,
		Iterations: iterations,
	}
}

func (s *Simulator) validate(hole, board []deck.Card, opponents int) error {
	if len(hole) != HoleCards {
		return fmt.Errorf("%w: expected %d hole cards, got %d", ErrInvalidInput, HoleCards, len(hole))
	}

	if len(board) > BoardCards {
		return fmt.Errorf("%w: the board cannot have more than %d cards, got %d", ErrInvalidInput, BoardCards, len(board))
	}

	if opponents < 1 {
		return fmt.Errorf("%w: need at least one opponent, got %d", ErrInvalidInput, opponents)
	}

	if s.iterations < 1 {
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidInput, s.iterations)
	}

	var seen deck.CardSet
	for _, card := range append(append([]deck.Card{}, hole...), board...) {
		if !card.Valid() {
			return fmt.Errorf("%w: %d is not a card", ErrInvalidInput, int32(card))
		}

		if !seen.Add(card) {
			return fmt.Errorf("%w: %s appears more than once", ErrInvalidInput, card)
		}
	}

	return nil
}
