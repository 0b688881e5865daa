package stack_test

import (
	"math"
	"testing"

	wgrid "github.com/isciences/wsim/grid"
	"github.com/isciences/wsim/stack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func single(depth int, vals ...float64) *stack.Stack {
	s := stack.New(1, 1, depth)
	s.SetSlice(0, 0, vals)
	return s
}

func TestSum_IgnoresMissing(t *testing.T) {
	s := single(3, 1, math.NaN(), 3)
	got := stack.Sum(s)
	assert.InDelta(t, 4.0, got.At(0, 0), 1e-9)
}

func TestMean_AllMissingIsNaN(t *testing.T) {
	s := single(2, math.NaN(), math.NaN())
	got := stack.Mean(s)
	assert.True(t, wgrid.Missing(got.At(0, 0)))
}

func TestMinMax(t *testing.T) {
	s := single(4, 5, 1, math.NaN(), 3)
	assert.InDelta(t, 1.0, stack.Min(s).At(0, 0), 1e-9)
	assert.InDelta(t, 5.0, stack.Max(s).At(0, 0), 1e-9)
}

func TestWhichMin_FirstOccurrenceAmongDefined(t *testing.T) {
	s := single(4, 2, math.NaN(), 1, 1)
	got := stack.WhichMin(s)
	assert.InDelta(t, 3.0, got.At(0, 0), 1e-9)
}

func TestQuantile_Median_E5(t *testing.T) {
	// spec.md E5: values [1,2,3,4], q=0.5 -> 2.5
	s := single(4, 1, 2, 3, 4)
	got := stack.Quantile(s, 0.5)
	assert.InDelta(t, 2.5, got.At(0, 0), 1e-9)
}

func TestQuantile_Extremes(t *testing.T) {
	s := single(4, 1, 2, 3, 4)
	assert.InDelta(t, 1.0, stack.Quantile(s, 0).At(0, 0), 1e-9)
	assert.InDelta(t, 4.0, stack.Quantile(s, 1).At(0, 0), 1e-9)
}

func TestQuantile_OutOfRangeIsNaN(t *testing.T) {
	s := single(4, 1, 2, 3, 4)
	got := stack.Quantile(s, 1.5)
	assert.True(t, wgrid.Missing(got.At(0, 0)))
}

func TestQuantile_Monotone(t *testing.T) {
	// invariant 4 in spec.md §8
	s := single(6, 5, 2, 9, 1, 7, 3)
	prev := math.Inf(-1)
	for q := 0.0; q <= 1.0; q += 0.05 {
		v := stack.Quantile(s, q).At(0, 0)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestWeightedQuantile_EqualWeightsMatchesClassical(t *testing.T) {
	// invariant 5 in spec.md §8: equal weights reduce to Type-7.
	vals := []float64{1, 2, 3, 4}
	weights := []float64{1, 1, 1, 1}
	got, err := stack.WeightedQuantile(vals, weights, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, got, 1e-9)
}

func TestWeightedQuantile_NegativeWeightErrors(t *testing.T) {
	_, err := stack.WeightedQuantile([]float64{1, 2}, []float64{1, -1}, 0.5)
	assert.Error(t, err)
}

func TestWeightedQuantile_AllZeroWeightsErrors(t *testing.T) {
	_, err := stack.WeightedQuantile([]float64{1, 2}, []float64{0, 0}, 0.5)
	assert.Error(t, err)
}

func TestSort_CompactsDefinedAscending(t *testing.T) {
	s := single(4, 3, math.NaN(), 1, 2)
	sorted := stack.Sort(s)
	v := sorted.Slice(0, 0)
	assert.InDelta(t, 1.0, v[0], 1e-9)
	assert.InDelta(t, 2.0, v[1], 1e-9)
	assert.InDelta(t, 3.0, v[2], 1e-9)
	assert.True(t, wgrid.Missing(v[3]))
}

func TestMinRank_MaxRank(t *testing.T) {
	obs := single(3, 1, 2, 3)
	data := wgrid.New(1, 1)
	data.Set(0, 0, 2)
	assert.InDelta(t, 2.0, stack.MinRank(data, obs).At(0, 0), 1e-9) // one obs (1) strictly less
	assert.InDelta(t, 3.0, stack.MaxRank(data, obs).At(0, 0), 1e-9) // two obs (1,2) <= 2
}

func TestSelect_FillsOutOfRange(t *testing.T) {
	s := single(3, 10, 20, 30)
	got := stack.Select(s, 2, 4, -1)
	v := got.Slice(0, 0)
	assert.InDelta(t, 20.0, v[0], 1e-9)
	assert.InDelta(t, 30.0, v[1], 1e-9)
	assert.InDelta(t, -1.0, v[2], 1e-9)
	assert.InDelta(t, -1.0, v[3], 1e-9)
}

func TestFracDefined(t *testing.T) {
	s := single(4, 1, math.NaN(), 3, math.NaN())
	got := stack.FracDefined(s)
	assert.InDelta(t, 0.5, got.At(0, 0), 1e-9)
}

func TestApplyConcurrent_MatchesSequential(t *testing.T) {
	s := stack.New(5, 5, 4)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			s.SetSlice(r, c, []float64{float64(r), float64(c), math.NaN(), float64(r + c)})
		}
	}

	sum := func(v []float64) float64 {
		total := 0.0
		for _, x := range v {
			if !wgrid.Missing(x) {
				total += x
			}
		}
		return total
	}

	conc := stack.ApplyConcurrent(s, sum)

	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			want := float64(r) + float64(c) + float64(r+c)
			assert.InDelta(t, want, conc.At(r, c), 1e-9)
		}
	}
}
