package route_test

import (
	"testing"

	"github.com/isciences/wsim/grid"
	"github.com/isciences/wsim/route"
	"github.com/isciences/wsim/wsimcfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulateFlow_LinearChain(t *testing.T) {
	// A 1x3 row flowing east: cell 0 -> 1 -> 2 (terminal outlet, direction
	// code 0 rather than a missing/nodata direction).
	dirs := grid.NewIntFrom(1, 3, []int32{route.OutEast, route.OutEast, 0})
	weights := grid.NewFrom(1, 3, []float64{10, 5, 1})

	got, err := route.AccumulateFlow(dirs, weights, false, false, wsimcfg.Default())
	require.NoError(t, err)

	assert.InDelta(t, 10.0, got.At(0, 0), 1e-9)
	assert.InDelta(t, 15.0, got.At(0, 1), 1e-9)
	assert.InDelta(t, 16.0, got.At(0, 2), 1e-9)
}

func TestAccumulateFlow_SinkWithoutWrapDropsFlow(t *testing.T) {
	// cell (0,1) tries to exit east off the grid; with wrapX disabled this
	// is a sink and contributes nothing downstream (SPEC_FULL.md §9, open
	// question 2).
	dirs := grid.NewIntFrom(1, 2, []int32{0, route.OutEast})
	weights := grid.NewFrom(1, 2, []float64{10, 5})

	got, err := route.AccumulateFlow(dirs, weights, false, false, wsimcfg.Default())
	require.NoError(t, err)
	assert.InDelta(t, 10.0, got.At(0, 0), 1e-9)
	assert.InDelta(t, 5.0, got.At(0, 1), 1e-9)
}

func TestAccumulateFlow_WrapXCarriesFlowAround(t *testing.T) {
	dirs := grid.NewIntFrom(1, 2, []int32{0, route.OutEast})
	weights := grid.NewFrom(1, 2, []float64{10, 5})

	got, err := route.AccumulateFlow(dirs, weights, true, false, wsimcfg.Default())
	require.NoError(t, err)
	assert.InDelta(t, 15.0, got.At(0, 0), 1e-9)
	assert.InDelta(t, 5.0, got.At(0, 1), 1e-9)
}

func TestAccumulateFlow_DimensionMismatchErrors(t *testing.T) {
	dirs := grid.NewIntFrom(1, 3, []int32{route.OutEast, route.OutEast, grid.MissingInt})
	weights := grid.NewFrom(1, 2, []float64{10, 5})

	_, err := route.AccumulateFlow(dirs, weights, false, false, wsimcfg.Default())
	assert.Error(t, err)
}

func TestDisaggregateAmount_DividesEvenlyAmongSubcells(t *testing.T) {
	m := grid.NewFrom(1, 1, []float64{16})
	got := route.DisaggregateAmount(m, 2)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, 4.0, got.At(i, j), 1e-9)
		}
	}
}
