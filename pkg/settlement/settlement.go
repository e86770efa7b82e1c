package settlement

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Tolerance is the smallest amount worth moving between two players
var Tolerance = decimal.New(1, -2)

// PlayerResult is a player's profit (positive) or loss (negative) for a session
type PlayerResult struct {
	Name string
	Net  decimal.Decimal
}

// Transaction is a single payment from a player who lost money to a player who won money
type Transaction struct {
	From   string          `json:"from" yaml:"from"`
	To     string          `json:"to" yaml:"to"`
	Amount decimal.Decimal `json:"amount" yaml:"amount"`
}

// Settle returns the payments that bring every player's net back to zero.
//
// Players are sorted by their net, then the biggest loser pays the biggest winner
// until one of them is square, and the process repeats from both ends of the list.
// There are never more than n-1 transactions, but the result is not guaranteed to
// be the fewest possible.
//
// Players with the same name are combined. The input is not modified. If the nets
// do not add up to zero, whatever cannot be paid off is left over.
func Settle(players []PlayerResult) []Transaction {
	balances := combine(players)
	sort.SliceStable(balances, func(i, j int) bool {
		return balances[i].Net.LessThan(balances[j].Net)
	})

	txns := make([]Transaction, 0, len(balances))
	i, j := 0, len(balances)-1
	for i < j {
		debtor, creditor := &balances[i], &balances[j]

		amount := decimal.Min(debtor.Net.Neg(), creditor.Net)
		if amount.LessThan(Tolerance) {
			moved := false
			if isSquare(debtor.Net) {
				i++
				moved = true
			}

			if isSquare(creditor.Net) {
				j--
				moved = true
			}

			// only winners or only losers are left
			if !moved {
				break
			}

			continue
		}

		txns = append(txns, Transaction{
			From:   debtor.Name,
			To:     creditor.Name,
			Amount: amount,
		})

		debtor.Net = debtor.Net.Add(amount)
		creditor.Net = creditor.Net.Sub(amount)

		if isSquare(debtor.Net) {
			i++
		}

		if isSquare(creditor.Net) {
			j--
		}
	}

	return txns
}

// Apply returns each player's net after the transactions have been paid
func Apply(players []PlayerResult, txns []Transaction) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal, len(players))
	for _, p := range players {
		balances[p.Name] = balances[p.Name].Add(p.Net)
	}

	for _, txn := range txns {
		balances[txn.From] = balances[txn.From].Add(txn.Amount)
		balances[txn.To] = balances[txn.To].Sub(txn.Amount)
	}

	return balances
}

// Total returns the sum of every player's net
func Total(players []PlayerResult) decimal.Decimal {
	total := decimal.Zero
	for _, p := range players {
		total = total.Add(p.Net)
	}

	return total
}

func isSquare(net decimal.Decimal) bool {
	return net.Abs().LessThan(Tolerance)
}

// combine copies the players, adding together the nets of players who share a name
func combine(players []PlayerResult) []PlayerResult {
	index := make(map[string]int, len(players))
	balances := make([]PlayerResult, 0, len(players))
	for _, p := range players {
		if i, ok := index[p.Name]; ok {
			balances[i].Net = balances[i].Net.Add(p.Net)
			continue
		}

		index[p.Name] = len(balances)
		balances = append(balances, p)
	}

	return balances
}
