package engine

import (
	"testing"

	"github.com/piwi3910/profilecut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveSingleStockType(t *testing.T) {
	// Five 2 m pieces out of three 5 m bars: every plan needs all three bars,
	// so the minimal waste is 15 - 10 = 5 m.
	job := model.Job{
		Stocks: []model.StockBar{model.NewStockBar("Steel 5 m", 5, 3)},
		Demand: model.Demand{Length: 2, Quantity: 5},
	}

	sol, err := testOptimizer().Solve(job)
	require.NoError(t, err)

	assert.Equal(t, model.StrategyTwoPhase, sol.Strategy)
	assert.Equal(t, 5, sol.TotalPieces(), "must produce exactly the demanded quantity")
	assert.Equal(t, 3, sol.TotalBars())
	assert.InDelta(t, 5.0, sol.TotalWaste, 1e-9)
}

func TestSolveNotEnoughStock(t *testing.T) {
	job := model.Job{
		Stocks: []model.StockBar{model.NewStockBar("Steel 2 m", 2, 1)},
		Demand: model.Demand{Length: 3, Quantity: 1},
	}

	_, err := testOptimizer().Solve(job)
	require.Error(t, err)
	assert.IsType(t, &InfeasibleError{}, err)
}

func TestSolveNoBarLongEnough(t *testing.T) {
	// Enough total material, but no single bar can yield one piece.
	job := model.Job{
		Stocks: []model.StockBar{model.NewStockBar("Steel 2 m", 2, 5)},
		Demand: model.Demand{Length: 3, Quantity: 2},
	}

	_, err := testOptimizer().Solve(job)
	require.Error(t, err)
	assert.IsType(t, &InfeasibleError{}, err)
}

func TestSolveRoutesToCombinatorial(t *testing.T) {
	// All stock lengths divide evenly by the demand length.
	job := model.Job{
		Stocks: []model.StockBar{
			model.NewStockBar("Steel 6 m", 6, 2),
			model.NewStockBar("Steel 9 m", 9, 2),
		},
		Demand: model.Demand{Length: 3, Quantity: 5},
	}

	sol, err := testOptimizer().Solve(job)
	require.NoError(t, err)

	assert.Equal(t, model.StrategyCombinatorial, sol.Strategy)
	assert.Equal(t, 0.0, sol.TotalWaste)
	assert.Equal(t, 5, sol.TotalPieces())
}

func TestSolveSpreadsUsageAcrossStockTypes(t *testing.T) {
	// Two identical stock types; 1.5 m does not divide 4 m, so the two-phase
	// pipeline runs. Ten pieces need five bars; fairness should split them
	// as evenly as two types allow.
	job := model.Job{
		Stocks: []model.StockBar{
			model.NewStockBar("Rack A", 4, 10),
			model.NewStockBar("Rack B", 4, 10),
		},
		Demand: model.Demand{Length: 1.5, Quantity: 10},
	}

	sol, err := testOptimizer().Solve(job)
	require.NoError(t, err)

	assert.Equal(t, model.StrategyTwoPhase, sol.Strategy)
	assert.Equal(t, 10, sol.TotalPieces())
	require.Len(t, sol.Stocks, 2, "both stock types should be drawn from")

	diff := sol.Stocks[0].BarsUsed() - sol.Stocks[1].BarsUsed()
	if diff < 0 {
		diff = -diff
	}
	assert.LessOrEqual(t, diff, 1, "usage should differ by at most one bar")
}

func TestSolveRespectsStockQuantities(t *testing.T) {
	job := model.Job{
		Stocks: []model.StockBar{
			model.NewStockBar("Steel 5 m", 5, 2),
			model.NewStockBar("Steel 4 m", 4, 2),
		},
		Demand: model.Demand{Length: 2, Quantity: 8},
	}

	sol, err := testOptimizer().Solve(job)
	require.NoError(t, err)

	assert.Equal(t, 8, sol.TotalPieces())
	for _, su := range sol.Stocks {
		assert.LessOrEqual(t, su.BarsUsed(), su.Stock.Quantity,
			"cannot use more bars than stocked of %s", su.Stock.Label)
	}
}

func TestSolveExactPieceCountNeverOverproduces(t *testing.T) {
	// 7 pieces of 2 m from 6 m bars: 3 bars yield at most 9 pieces, the
	// demand constraint must hold at exactly 7.
	job := model.Job{
		Stocks: []model.StockBar{model.NewStockBar("Steel 6 m", 6, 3)},
		Demand: model.Demand{Length: 2, Quantity: 7},
	}

	sol, err := testOptimizer().Solve(job)
	require.NoError(t, err)
	assert.Equal(t, 7, sol.TotalPieces())
}

func TestSolveDeterministicAcrossRuns(t *testing.T) {
	job := model.Job{
		Stocks: []model.StockBar{
			model.NewStockBar("Steel 5 m", 5, 4),
			model.NewStockBar("Steel 4 m", 4, 4),
		},
		Demand: model.Demand{Length: 1.8, Quantity: 9},
	}

	opt := testOptimizer()
	first, err := opt.Solve(job)
	require.NoError(t, err)
	second, err := opt.Solve(job)
	require.NoError(t, err)

	assert.Equal(t, first.TotalBars(), second.TotalBars())
	assert.InDelta(t, first.TotalWaste, second.TotalWaste, 1e-9)
}
