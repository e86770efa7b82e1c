package settlement

import (
	"fmt"
	"pokerodds/internal/rng"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func player(name string, net string) PlayerResult {
	return PlayerResult{Name: name, Net: decimal.RequireFromString(net)}
}

func assertTransaction(t *testing.T, txn Transaction, from, to, amount string) {
	t.Helper()
	assert.Equal(t, from, txn.From)
	assert.Equal(t, to, txn.To)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString(amount)), "expected %s, got %s", amount, txn.Amount)
}

func assertSettled(t *testing.T, players []PlayerResult, txns []Transaction) {
	t.Helper()
	for name, net := range Apply(players, txns) {
		assert.True(t, net.Abs().LessThan(Tolerance), "%s still has %s", name, net)
	}
}

func assertWellFormed(t *testing.T, txns []Transaction) {
	t.Helper()
	for _, txn := range txns {
		assert.True(t, txn.Amount.IsPositive(), "%+v", txn)
		assert.NotEqual(t, txn.From, txn.To)
	}
}

func TestSettle(t *testing.T) {
	players := []PlayerResult{
		player("A", "-50"),
		player("B", "30"),
		player("C", "20"),
	}

	txns := Settle(players)
	if assert.Len(t, txns, 2) {
		assertTransaction(t, txns[0], "A", "B", "30")
		assertTransaction(t, txns[1], "A", "C", "20")
	}

	assertSettled(t, players, txns)
}

func TestSettle_ManyPlayers(t *testing.T) {
	players := []PlayerResult{
		player("Alice", "-120.50"),
		player("Bob", "45.25"),
		player("Carol", "-10"),
		player("Dan", "100"),
		player("Erin", "0"),
		player("Frank", "-14.75"),
		player("Grace", "0.005"),
		player("Heidi", "-0.005"),
	}

	txns := Settle(players)
	assert.True(t, len(txns) <= len(players)-1)
	assertWellFormed(t, txns)
	assertSettled(t, players, txns)

	if assert.NotEmpty(t, txns) {
		assertTransaction(t, txns[0], "Alice", "Dan", "100")
	}
}

func TestSettle_NothingToDo(t *testing.T) {
	a := assert.New(t)

	for _, players := range [][]PlayerResult{
		nil,
		{},
		{player("A", "0")},
		{player("A", "25")},
		{player("A", "0"), player("B", "0"), player("C", "0")},
		{player("A", "-0.004"), player("B", "0.004")},
	} {
		txns := Settle(players)
		a.NotNil(txns)
		a.Empty(txns)
	}
}

func TestSettle_DoesNotModifyInput(t *testing.T) {
	players := []PlayerResult{
		player("C", "20"),
		player("A", "-50"),
		player("B", "30"),
	}

	Settle(players)

	assert.Equal(t, "C", players[0].Name)
	assert.Equal(t, "A", players[1].Name)
	assert.Equal(t, "B", players[2].Name)
	assert.True(t, players[0].Net.Equal(decimal.NewFromInt(20)))
	assert.True(t, players[1].Net.Equal(decimal.NewFromInt(-50)))
	assert.True(t, players[2].Net.Equal(decimal.NewFromInt(30)))
}

func TestSettle_Unbalanced(t *testing.T) {
	a := assert.New(t)

	// more was lost than won
	players := []PlayerResult{player("A", "-50"), player("B", "30")}
	txns := Settle(players)
	if a.Len(txns, 1) {
		assertTransaction(t, txns[0], "A", "B", "30")
	}

	residual := Apply(players, txns)
	a.True(residual["A"].Equal(decimal.NewFromInt(-20)))
	a.True(residual["B"].IsZero())

	// more was won than lost
	players = []PlayerResult{player("A", "-10"), player("B", "30"), player("C", "5")}
	txns = Settle(players)
	if a.Len(txns, 1) {
		assertTransaction(t, txns[0], "A", "B", "10")
	}

	// nobody lost
	a.Empty(Settle([]PlayerResult{player("A", "10"), player("B", "30")}))

	// nobody won
	a.Empty(Settle([]PlayerResult{player("A", "-10"), player("B", "-30")}))
}

func TestSettle_DuplicateNames(t *testing.T) {
	players := []PlayerResult{
		player("A", "-50"),
		player("B", "20"),
		player("A", "10"),
		player("B", "20"),
	}

	txns := Settle(players)
	if assert.Len(t, txns, 1) {
		assertTransaction(t, txns[0], "A", "B", "40")
	}

	assertWellFormed(t, txns)
	assertSettled(t, players, txns)
}

func TestSettle_RandomBalancedSessions(t *testing.T) {
	gen := rng.NewPCG(99)

	for round := 0; round < 500; round++ {
		n := 2 + gen.Intn(9)
		players := make([]PlayerResult, n)
		total := decimal.Zero
		for i := 0; i < n-1; i++ {
			cents := int64(gen.Intn(40001) - 20000)
			players[i] = PlayerResult{Name: fmt.Sprintf("p%d", i), Net: decimal.New(cents, -2)}
			total = total.Add(players[i].Net)
		}

		players[n-1] = PlayerResult{Name: fmt.Sprintf("p%d", n-1), Net: total.Neg()}

		txns := Settle(players)
		assert.True(t, len(txns) <= n-1, "%d transactions for %d players", len(txns), n)
		assertWellFormed(t, txns)
		assertSettled(t, players, txns)
	}
}

func TestApply(t *testing.T) {
	a := assert.New(t)

	players := []PlayerResult{player("A", "-50"), player("B", "50")}
	residual := Apply(players, []Transaction{{From: "A", To: "B", Amount: decimal.NewFromInt(20)}})
	a.True(residual["A"].Equal(decimal.NewFromInt(-30)))
	a.True(residual["B"].Equal(decimal.NewFromInt(30)))

	// transactions between unknown players still show up
	residual = Apply(nil, []Transaction{{From: "X", To: "Y", Amount: decimal.NewFromInt(5)}})
	a.True(residual["X"].Equal(decimal.NewFromInt(5)))
	a.True(residual["Y"].Equal(decimal.NewFromInt(-5)))
}

func TestTotal(t *testing.T) {
	a := assert.New(t)
	a.True(Total(nil).IsZero())
	a.True(Total([]PlayerResult{player("A", "-50.25"), player("B", "30"), player("C", "20")}).Equal(decimal.RequireFromString("-0.25")))
}

func BenchmarkSettle(b *testing.B) {
	players := make([]PlayerResult, 10)
	for i := range players {
		players[i] = PlayerResult{Name: fmt.Sprintf("p%d", i), Net: decimal.NewFromInt(int64(i*10 - 45))}
	}

	for i := 0; i < b.N; i++ {
		Settle(players)
	}
}
