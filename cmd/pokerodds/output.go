package main

import (
	"encoding/json"
	"fmt"
	"io"

	"pokerodds/pkg/odds"

	"github.com/pterm/pterm"
	"gopkg.in/yaml.v2"
)

// output formats
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validFormat(format string) bool {
	switch format {
	case formatText, formatJSON, formatYAML:
		return true
	default:
		return false
	}
}

type errorResponse struct {
	Error   string `json:"error" yaml:"error"`
	Message string `json:"message" yaml:"message"`
}

func writeError(w io.Writer, format string, err error) error {
	res := errorResponse{
		Error:   err.Error(),
		Message: odds.UserMessage(err),
	}

	if format == formatText {
		_, werr := io.WriteString(w, pterm.Error.Sprintln(res.Message))
		return werr
	}

	return encode(w, format, res)
}

func writeResponse(w io.Writer, format string, res interface{}) error {
	if format != formatText {
		return encode(w, format, res)
	}

	var text string
	var err error
	switch r := res.(type) {
	case *odds.EquityResponse:
		text, err = equityText(r)
	case *odds.SettleResponse:
		text, err = settleText(r)
	default:
		return fmt.Errorf("cannot render %T as text", res)
	}

	if err != nil {
		return err
	}

	_, err = io.WriteString(w, text)
	return err
}

func encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		return yaml.NewEncoder(w).Encode(v)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func equityText(res *odds.EquityResponse) (string, error) {
	return pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Win", "Tie", "Equity"},
		{percentText(res.WinRate), percentText(res.TieRate), percentText(res.Equity)},
	}).Srender()
}

func settleText(res *odds.SettleResponse) (string, error) {
	if len(res.Transactions) == 0 {
		return pterm.Info.Sprintln("Nobody owes anybody anything"), nil
	}

	data := pterm.TableData{{"From", "To", "Amount"}}
	for _, txn := range res.Transactions {
		data = append(data, []string{txn.From, txn.To, fmt.Sprintf("%.2f", txn.Amount)})
	}

	text, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", err
	}

	if res.Discrepancy != 0 {
		text += "\n" + pterm.Warning.Sprintfln("Mismatch detected: %.2f. Transactions include %q to balance.", res.Discrepancy, odds.PotMismatchName)
	}

	return text + "\n", nil
}

func percentText(f float64) string {
	return fmt.Sprintf("%.1f%%", f)
}
