package hru

import (
	"math"
	"testing"

	"github.com/isciences/wsim/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowAccumulation(t *testing.T) {
	assert.InDelta(t, 10.0, SnowAccumulation(10, -2), 1e-9)
	assert.InDelta(t, 10.0, SnowAccumulation(10, -1), 1e-9)
	assert.InDelta(t, 0.0, SnowAccumulation(10, 5), 1e-9)
}

func TestSnowMelt_HighElevationFirstMonthHalves(t *testing.T) {
	got := SnowMelt(100, 1, 0, 600)
	assert.InDelta(t, 50.0, got, 1e-9)
}

func TestSnowMelt_LowElevationMeltsAll(t *testing.T) {
	got := SnowMelt(100, 3, 0, 100)
	assert.InDelta(t, 100.0, got, 1e-9)
}

func TestSnowMelt_BelowFreezingNoMelt(t *testing.T) {
	got := SnowMelt(100, 1, -5, 600)
	assert.InDelta(t, 0.0, got, 1e-9)
}

func TestSnowMelt_PropagatesMissing(t *testing.T) {
	got := SnowMelt(100, grid.MissingInt, 0, 600)
	assert.True(t, math.IsNaN(got))
}

func TestSoilMoistureChange_DryingCapped(t *testing.T) {
	dwdt := soilMoistureChange(0, 100, 5, 100)
	assert.GreaterOrEqual(t, dwdt, -0.9*5)
}

func TestSoilMoistureChange_FillsToCapacity(t *testing.T) {
	dwdt := soilMoistureChange(200, 10, 50, 100)
	assert.InDelta(t, 50.0, dwdt, 1e-9)
}

func TestSoilMoistureChange_AbsorbsExcess(t *testing.T) {
	dwdt := soilMoistureChange(30, 10, 50, 100)
	assert.InDelta(t, 20.0, dwdt, 1e-9)
}

func TestWetDayList_AllDaysWet(t *testing.T) {
	days := wetDayList(30, 1.0)
	assert.Len(t, days, 30)
}

func TestDailyPrecip_SumsToTotal(t *testing.T) {
	daily := dailyPrecip(30, 30, 0.5)
	sum := 0.0
	for _, v := range daily {
		sum += v
	}
	assert.InDelta(t, 30.0, sum, 1e-6)
}

func TestCellAdvance_NoPrecipNoET(t *testing.T) {
	c := &Cell{Params: Params{Wc: 100, Elevation: 200}, State: State{Ws: 50}}
	res := c.Advance(0, 20, 0, 30, 0.5)
	assert.InDelta(t, 0.0, res.Runoff, 1e-6)
	assert.InDelta(t, 0.0, res.Evapotranspiration, 1e-6)
}

func TestDetain_ZeroNetPrecipYieldsZeroRunoffContribution(t *testing.T) {
	state := &DetentionState{}
	res := Detain(state, 10, 0, 0, 0, 100, 0, 0.5, 0.5)
	assert.InDelta(t, 0.0, res.Rp, 1e-9)
}

func TestDetain_PropagatesMissing(t *testing.T) {
	state := &DetentionState{}
	res := Detain(state, 10, 5, 5, 0, 100, grid.MissingInt, 0.5, 0.5)
	assert.True(t, math.IsNaN(res.Rp))
}

func TestDomainAdvanceGrid_SkipsMissingCells(t *testing.T) {
	dom := NewDomain(1, 2, []Params{{Wc: 100, Elevation: 200}, {Wc: 100, Elevation: 200}})
	dom.Cells[0].State.Ws = 50
	dom.Cells[1].State.Ws = 50

	precip := grid.NewFrom(1, 2, []float64{30, math.NaN()})
	temp := grid.NewFrom(1, 2, []float64{20, 20})
	pet := grid.NewFrom(1, 2, []float64{10, 10})
	pWet := grid.NewFrom(1, 2, []float64{0.5, 0.5})

	runoff, et, wsAve := dom.AdvanceGrid(precip, temp, pet, 30, pWet)

	require.False(t, grid.Missing(runoff.At(0, 0)))
	assert.True(t, grid.Missing(runoff.At(0, 1)))
	assert.True(t, grid.Missing(et.At(0, 1)))
	assert.True(t, grid.Missing(wsAve.At(0, 1)))
}

func TestSnowpackReleaseFraction_ElevationBands(t *testing.T) {
	assert.InDelta(t, 0.1, snowpackReleaseFraction(1, 100), 1e-9)
	assert.InDelta(t, 0.5, snowpackReleaseFraction(2, 100), 1e-9)
	assert.InDelta(t, 0.25, snowpackReleaseFraction(2, 600), 1e-9)
	assert.InDelta(t, 0.5, snowpackReleaseFraction(3, 600), 1e-9)
	assert.InDelta(t, 0.0, snowpackReleaseFraction(0, 600), 1e-9)
}
