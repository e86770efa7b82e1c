package odds

import (
	"fmt"
	"math"

	"pokerodds/pkg/deck"
	"pokerodds/pkg/equity"
	"pokerodds/pkg/settlement"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// PotMismatchName is the name of the participant that absorbs a discrepancy between
// what was bought in and what was cashed out
const PotMismatchName = "Pot Mismatch"

// EquityRequest asks for the odds of a hand against random opponents
type EquityRequest struct {
	HoleCards      []string `json:"hole_cards" yaml:"hole_cards"`
	CommunityCards []string `json:"community_cards" yaml:"community_cards"`
	OpponentCount  int      `json:"opponent_count" yaml:"opponent_count"`
}

// EquityResponse holds percentages rounded to one decimal place
type EquityResponse struct {
	WinRate float64 `json:"win_rate" yaml:"win_rate"`
	TieRate float64 `json:"tie_rate" yaml:"tie_rate"`
	Equity  float64 `json:"equity" yaml:"equity"`
}

// SettlePlayer is one player's session
type SettlePlayer struct {
	Name    string  `json:"name" yaml:"name"`
	BuyIn   float64 `json:"buy_in" yaml:"buy_in"`
	EndChip float64 `json:"end_chip" yaml:"end_chip"`
}

// SettleRequest asks who owes whom at the end of a session
type SettleRequest struct {
	Players []SettlePlayer `json:"players" yaml:"players"`
}

// TransactionResponse is a single payment
type TransactionResponse struct {
	From   string  `json:"from" yaml:"from"`
	To     string  `json:"to" yaml:"to"`
	Amount float64 `json:"amount" yaml:"amount"`
}

// SettleResponse lists the payments that settle a session
// Discrepancy is the total cashed out minus the total bought in
type SettleResponse struct {
	Transactions []TransactionResponse `json:"transactions" yaml:"transactions"`
	Discrepancy  float64               `json:"discrepancy" yaml:"discrepancy"`
}

// Option configures a Service
type Option func(s *Service)

// WithPotMismatch sets whether a discrepancy is settled against a "Pot Mismatch" participant
func WithPotMismatch(enabled bool) Option {
	return func(s *Service) {
		s.potMismatch = enabled
	}
}

// WithLogger sets the logger
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// Service turns requests made of strings and floats into calls to the simulator
// and the settlement solver
type Service struct {
	simulator   *equity.Simulator
	potMismatch bool
	logger      logrus.FieldLogger
}

// NewService returns a new Service
func NewService(simulator *equity.Simulator, options ...Option) *Service {
	if simulator == nil {
		panic("simulator cannot be nil")
	}

	s := &Service{
		simulator:   simulator,
		potMismatch: true,
		logger:      logrus.StandardLogger(),
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// ComputeEquity estimates how often the hole cards win against the opponents
// Any error returned is a *RequestError
func (s *Service) ComputeEquity(req EquityRequest) (*EquityResponse, error) {
	hole, err := parseCards("hole", req.HoleCards)
	if err != nil {
		return nil, newRequestError(err)
	}

	board, err := parseCards("community", req.CommunityCards)
	if err != nil {
		return nil, newRequestError(err)
	}

	result, err := s.simulator.Simulate(hole, board, req.OpponentCount)
	if err != nil {
		s.logger.WithError(err).WithField("opponents", req.OpponentCount).Warn("could not compute equity")
		return nil, newRequestError(err)
	}

	res := &EquityResponse{
		WinRate: percent(result.WinRate),
		TieRate: percent(result.TieRate),
		Equity:  percent(result.Equity),
	}

	s.logger.WithFields(logrus.Fields{
		"hole":      deck.CardsToString(hole),
		"board":     deck.CardsToString(board),
		"opponents": req.OpponentCount,
		"equity":    res.Equity,
	}).Info("computed equity")

	return res, nil
}

// SettleGame works out who pays whom at the end of a session
// If the chips cashed out differ from the buy-ins by more than a cent, and pot mismatch handling is on,
// the difference is settled against a participant named "Pot Mismatch".
// Any error returned is a *RequestError
func (s *Service) SettleGame(req SettleRequest) (*SettleResponse, error) {
	players := make([]settlement.PlayerResult, 0, len(req.Players)+1)
	for _, p := range req.Players {
		buyIn, err := toDecimal(p.Name, "buy_in", p.BuyIn)
		if err != nil {
			return nil, newRequestError(err)
		}

		endChip, err := toDecimal(p.Name, "end_chip", p.EndChip)
		if err != nil {
			return nil, newRequestError(err)
		}

		players = append(players, settlement.PlayerResult{
			Name: p.Name,
			Net:  endChip.Sub(buyIn),
		})
	}

	discrepancy := settlement.Total(players).Round(2)
	mismatched := discrepancy.Abs().GreaterThan(settlement.Tolerance)
	if s.potMismatch && mismatched {
		players = append(players, settlement.PlayerResult{
			Name: PotMismatchName,
			Net:  discrepancy.Neg(),
		})
	}

	txns := settlement.Settle(players)
	res := &SettleResponse{
		Transactions: make([]TransactionResponse, len(txns)),
		Discrepancy:  toFloat(discrepancy),
	}

	for i, txn := range txns {
		res.Transactions[i] = TransactionResponse{
			From:   txn.From,
			To:     txn.To,
			Amount: toFloat(txn.Amount.Round(2)),
		}
	}

	entry := s.logger.WithFields(logrus.Fields{
		"players":      len(req.Players),
		"transactions": len(txns),
		"discrepancy":  discrepancy.StringFixed(2),
	})
	if !mismatched {
		entry.Info("settled game")
	} else {
		entry.Warn("settled game with a pot mismatch")
	}

	return res, nil
}

func parseCards(what string, strs []string) ([]deck.Card, error) {
	cards, err := deck.ParseCards(strs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s cards: %w", equity.ErrInvalidInput, what, err)
	}

	return cards, nil
}

func toDecimal(name, field string, f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, fmt.Errorf("%w: %s of %q is %v", ErrInvalidAmount, field, name, f)
	}

	return decimal.NewFromFloat(f), nil
}

// percent converts a fraction to a percentage rounded to one decimal place
func percent(fraction float64) float64 {
	return toFloat(decimal.NewFromFloat(fraction).Mul(decimal.NewFromInt(100)).Round(1))
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
