package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pokerodds/pkg/odds"

	"github.com/pterm/pterm"
)

// splitCards splits "Ah,Kd" or "Ah Kd" into separate card strings
func splitCards(s string) []string {
	cards := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	if cards == nil {
		return []string{}
	}

	return cards
}

func decodeEquityRequest(r io.Reader) (odds.EquityRequest, error) {
	var req odds.EquityRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return odds.EquityRequest{}, fmt.Errorf("could not decode equity request: %w", err)
	}

	return req, nil
}

func decodeSettleRequest(r io.Reader) (odds.SettleRequest, error) {
	var req odds.SettleRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return odds.SettleRequest{}, fmt.Errorf("could not decode settle request: %w", err)
	}

	return req, nil
}

func promptEquityRequest() (odds.EquityRequest, error) {
	holeCards, err := pterm.DefaultInteractiveTextInput.WithDefaultText("Hole cards (e.g. Ah,Kd)").Show()
	if err != nil {
		return odds.EquityRequest{}, err
	}

	boardCards, err := pterm.DefaultInteractiveTextInput.WithDefaultText("Community cards (blank for pre-flop)").Show()
	if err != nil {
		return odds.EquityRequest{}, err
	}

	count, err := pterm.DefaultInteractiveTextInput.WithDefaultText("Opponents").WithDefaultValue("1").Show()
	if err != nil {
		return odds.EquityRequest{}, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(count))
	if err != nil {
		return odds.EquityRequest{}, fmt.Errorf("opponents must be a number: %w", err)
	}

	return odds.EquityRequest{
		HoleCards:      splitCards(holeCards),
		CommunityCards: splitCards(boardCards),
		OpponentCount:  n,
	}, nil
}
