package engine

import (
	"testing"

	"github.com/piwi3910/profilecut/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestPatternsEnumeratesAllPieceCounts(t *testing.T) {
	pats := Patterns(5, 2)

	assert.Equal(t, []model.Pattern{
		{Pieces: 1, Waste: 3},
		{Pieces: 2, Waste: 1},
	}, pats)
}

func TestPatternsExactDivision(t *testing.T) {
	pats := Patterns(6, 2)

	assert.Len(t, pats, 3)
	assert.Equal(t, model.Pattern{Pieces: 3, Waste: 0}, pats[2])
}

func TestPatternsBarTooShort(t *testing.T) {
	assert.Empty(t, Patterns(2, 3))
}

func TestBuildPatternTable(t *testing.T) {
	stocks := []model.StockBar{
		{Label: "5 m", Length: 5, Quantity: 3},
		{Label: "1 m", Length: 1, Quantity: 2}, // too short
		{Label: "4 m", Length: 4, Quantity: 1},
	}
	table := BuildPatternTable(stocks, model.Demand{Length: 2, Quantity: 5})

	assert.Len(t, table, 3)
	assert.Len(t, table[0], 2)
	assert.Empty(t, table[1])
	assert.Len(t, table[2], 2)
	assert.Equal(t, 4, table.PatternCount())
}
