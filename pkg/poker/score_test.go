package poker

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestScore_Category(t *testing.T) {
	a := assert.New(t)

	a.Equal(StraightFlush, Score(1).Category())
	a.Equal(StraightFlush, Score(10).Category())
	a.Equal(FourOfAKind, Score(11).Category())
	a.Equal(FourOfAKind, Score(166).Category())
	a.Equal(FullHouse, Score(167).Category())
	a.Equal(FullHouse, Score(322).Category())
	a.Equal(Flush, Score(323).Category())
	a.Equal(Flush, Score(1599).Category())
	a.Equal(Straight, Score(1600).Category())
	a.Equal(Straight, Score(1609).Category())
	a.Equal(ThreeOfAKind, Score(1610).Category())
	a.Equal(ThreeOfAKind, Score(2467).Category())
	a.Equal(TwoPair, Score(2468).Category())
	a.Equal(TwoPair, Score(3325).Category())
	a.Equal(OnePair, Score(3326).Category())
	a.Equal(OnePair, Score(6185).Category())
	a.Equal(HighCard, Score(6186).Category())
	a.Equal(HighCard, Score(7462).Category())

	a.PanicsWithValue("score 0 is less than 1", func() {
		Score(0).Category()
	})
	a.PanicsWithValue("score 7463 is unknown", func() {
		Score(7463).Category()
	})
}

func TestScore_Beats(t *testing.T) {
	assert.True(t, Score(1).Beats(2))
	assert.False(t, Score(2).Beats(2))
	assert.False(t, Score(3).Beats(2))
}

func TestScore_String(t *testing.T) {
	assert.Equal(t, "Royal flush", Score(1).String())
	assert.Equal(t, "Straight flush", Score(2).String())
	assert.Equal(t, "High card", WorstScore.String())

	assert.NotPanics(t, func() {
		assert.Equal(t, "Unknown score (0)", Score(0).String())
		assert.Equal(t, "Unknown score (7463)", Score(7463).String())
		assert.Equal(t, "score: Unknown score (-1)", fmt.Sprintf("score: %v", Score(-1)))
	})
}

func TestScore_Valid(t *testing.T) {
	a := assert.New(t)
	a.True(BestScore.Valid())
	a.True(WorstScore.Valid())
	a.False(Score(0).Valid())
	a.False((WorstScore + 1).Valid())

	// the score returned with an error prints safely
	s, err := NewEvaluator(testTables).Evaluate()
	a.Error(err)
	a.False(s.Valid())
	a.Equal("Unknown score (0)", s.String())
}
