package grid_test

import (
	"math"
	"testing"

	"github.com/isciences/wsim/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateSum_E1(t *testing.T) {
	// E1 from spec.md §8: aggregate_sum([[1,2,3,NaN,NaN,NaN],[5,6,7,8,NaN,NaN]], 2)
	// = [[14, 18, NaN]]
	nan := math.NaN()
	g := grid.NewFrom(2, 6, []float64{
		1, 2, 3, nan, nan, nan,
		5, 6, 7, 8, nan, nan,
	})

	out, err := grid.AggregateSum(g, 2)
	require.NoError(t, err)
	require.Equal(t, 1, out.Rows)
	require.Equal(t, 3, out.Cols)

	assert.Equal(t, 14.0, out.At(0, 0))
	assert.Equal(t, 18.0, out.At(0, 1))
	assert.True(t, math.IsNaN(out.At(0, 2)))
}

func TestAggregateMean_DividesByDefinedCount(t *testing.T) {
	nan := math.NaN()
	g := grid.NewFrom(2, 2, []float64{1, nan, 3, 5})
	out, err := grid.AggregateMean(g, 2)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, out.At(0, 0), 1e-12) // (1+3+5)/3
}

func TestAggregateMean_AllMissingIsNaN(t *testing.T) {
	nan := math.NaN()
	g := grid.NewFrom(2, 2, []float64{nan, nan, nan, nan})
	out, err := grid.AggregateMean(g, 2)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(out.At(0, 0)))
}

func TestAggregateSum_NonDivisibleFactorErrors(t *testing.T) {
	g := grid.New(3, 4)
	_, err := grid.AggregateSum(g, 2)
	assert.Error(t, err)
}

func TestAggregateSum_NonPositiveFactorErrors(t *testing.T) {
	g := grid.New(2, 2)
	_, err := grid.AggregateSum(g, 0)
	assert.Error(t, err)
}

func TestAggregateMeanDOY_WrapsAround(t *testing.T) {
	// Circular mean of {1, 365} should land near 365 or 1, not 183
	// (invariant 7 in spec.md §8).
	g := grid.NewFrom(2, 2, []float64{1, 365, 1, 365})
	out, err := grid.AggregateMeanDOY(g, 2)
	require.NoError(t, err)
	v := out.At(0, 0)
	assert.True(t, v < 3 || v > 363, "expected wraparound near 1 or 365, got %v", v)
}

func TestDisaggregate_RepeatsBlocks(t *testing.T) {
	g := grid.NewFrom(1, 2, []float64{1, 2})
	out, err := grid.Disaggregate(g, 2)
	require.NoError(t, err)
	require.Equal(t, 2, out.Rows)
	require.Equal(t, 4, out.Cols)
	for r := 0; r < 2; r++ {
		assert.Equal(t, 1.0, out.At(r, 0))
		assert.Equal(t, 1.0, out.At(r, 1))
		assert.Equal(t, 2.0, out.At(r, 2))
		assert.Equal(t, 2.0, out.At(r, 3))
	}
}

func TestAggregateDisaggregate_RoundTrip(t *testing.T) {
	// invariant 1 in spec.md §8: disaggregate(aggregate_mean(G, f), f) equals
	// the block mean everywhere a block had at least one defined value.
	nan := math.NaN()
	g := grid.NewFrom(2, 2, []float64{2, 4, nan, nan})
	mean, err := grid.AggregateMean(g, 2)
	require.NoError(t, err)
	back, err := grid.Disaggregate(mean, 2)
	require.NoError(t, err)
	for _, v := range back.Data {
		assert.InDelta(t, 3.0, v, 1e-12)
	}
}

func TestDisaggregatePfun_NaRmActsAsIdentity(t *testing.T) {
	nan := math.NaN()
	a := grid.NewFrom(1, 1, []float64{nan})
	b := grid.NewFrom(1, 1, []float64{5})
	out, err := grid.DisaggregatePfun(a, b, grid.OpSum, true)
	require.NoError(t, err)
	assert.Equal(t, 5.0, out.At(0, 0))
}

func TestReclassify_MapsNaNRow(t *testing.T) {
	nan := math.NaN()
	x := grid.NewFrom(1, 2, []float64{nan, 7})
	table := grid.ReclassTable{{nan, -1}, {7, 70}}
	out, err := grid.Reclassify(x, table, false)
	require.NoError(t, err)
	assert.Equal(t, -1.0, out.At(0, 0))
	assert.Equal(t, 70.0, out.At(0, 1))
}

func TestReclassify_UnmappedFailsWithoutNaDefault(t *testing.T) {
	x := grid.NewFrom(1, 1, []float64{9})
	table := grid.ReclassTable{{1, 2}}
	_, err := grid.Reclassify(x, table, false)
	assert.Error(t, err)
}

func TestSubstitute_ReplacesMatchingValues(t *testing.T) {
	x := grid.NewFrom(1, 3, []float64{1, 2, 3})
	out, err := grid.Substitute(x, []float64{2, 20})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 20, 3}, out.Data)
}
