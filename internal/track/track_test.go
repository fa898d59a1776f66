package track

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/ephem"
	"github.com/litescript/ls-almanac/internal/state"
)

func testSnapshot() state.Snapshot {
	return state.Snapshot{
		Observer: astro.Observer{LatDeg: 51.4769, LonDeg: 0, Name: "Greenwich"},
	}
}

func TestComputeFullCycle(t *testing.T) {
	c := New(ephem.NewComputed())
	at := time.Date(2024, time.June, 21, 12, 0, 0, 0, time.UTC)

	res := c.Compute(context.Background(), testSnapshot(), at)
	require.NoError(t, res.Error)
	require.NotNil(t, res.Plan)

	// Sun, Moon and seven planets.
	require.Len(t, res.Bodies, 9)
	assert.Equal(t, "SUN", res.Bodies[0].Code)
	assert.Equal(t, "MOON", res.Bodies[1].Code)

	// Noon on the solstice: the sun is up and high.
	sun := res.Bodies[0]
	assert.True(t, sun.Up)
	assert.Greater(t, sun.Coord.ElDeg, 55.0)
	assert.False(t, sun.RiseToday.IsZero(), "sun window should be wired in")

	// Solar snapshot carries the planets for the orbit view.
	assert.NotNil(t, res.Solar.GetBody("SUN"))
	assert.Len(t, res.Solar.GetPlanets(), 8)

	assert.Greater(t, res.Duration, time.Duration(0))
}

func TestComputeRespectsCancellation(t *testing.T) {
	c := New(ephem.NewComputed())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := c.Compute(ctx, testSnapshot(), time.Now())
	assert.ErrorIs(t, res.Error, context.Canceled)
	assert.Nil(t, res.Plan)
}

func TestComputeBodyWindows(t *testing.T) {
	c := New(ephem.NewComputed())
	at := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	res := c.Compute(context.Background(), testSnapshot(), at)
	require.NoError(t, res.Error)

	for _, b := range res.Bodies {
		if b.Code == "SUN" || b.Code == "MOON" {
			continue
		}
		// Every planet gets a window entry from the day plan.
		if b.RiseToday.IsZero() && b.SetToday.IsZero() {
			t.Errorf("%s has no rise/set wired from the plan", b.Name)
		}
	}
}
