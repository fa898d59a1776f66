package almanac

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/sun"
)

var london = astro.Observer{LatDeg: 51.5074, LonDeg: -0.1278, Name: "London"}

// within asserts a time lies inside a tolerance of the expected instant.
func within(t *testing.T, got, want time.Time, tol time.Duration, what string) {
	t.Helper()
	if got.IsZero() {
		t.Fatalf("%s: no event found, want ~%v", what, want)
	}
	if diff := got.Sub(want); diff > tol || diff < -tol {
		t.Errorf("%s = %v, want %v +/- %v", what, got, want, tol)
	}
}

func TestSunRiseSetLondonSolstice(t *testing.T) {
	day := time.Date(2024, time.June, 21, 12, 0, 0, 0, time.UTC)

	w, err := RiseSet(london, sun.Position, day, HorizonSun)
	require.NoError(t, err)
	require.True(t, w.Valid)
	assert.False(t, w.AlwaysUp)
	assert.False(t, w.NeverUp)

	// Published times for London: sunrise 03:43 UTC, sunset 20:21 UTC.
	within(t, w.Rise, time.Date(2024, 6, 21, 3, 43, 0, 0, time.UTC), 5*time.Minute, "sunrise")
	within(t, w.Set, time.Date(2024, 6, 21, 20, 21, 0, 0, time.UTC), 5*time.Minute, "sunset")

	// Solar noon sits near 12:02 UTC at this longitude in late June, and
	// the Sun peaks around 90 - lat + dec = 62 degrees.
	within(t, w.Transit, time.Date(2024, 6, 21, 12, 2, 0, 0, time.UTC), 6*time.Minute, "transit")
	assert.InDelta(t, 61.9, w.MaxElevation, 0.5, "max elevation")
}

func TestSunEquinoxDayLength(t *testing.T) {
	day := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)

	w, err := RiseSet(london, sun.Position, day, HorizonSun)
	require.NoError(t, err)
	require.True(t, w.Valid)
	require.False(t, w.Rise.IsZero())
	require.False(t, w.Set.IsZero())

	// Refraction and the solar radius stretch the equinox day a little
	// past twelve hours.
	length := w.Set.Sub(w.Rise)
	assert.Greater(t, length, 12*time.Hour)
	assert.Less(t, length, 12*time.Hour+25*time.Minute)
}

func TestMidnightSun(t *testing.T) {
	tromso := astro.Observer{LatDeg: 69.6492, LonDeg: 18.9553, Name: "Tromso"}

	w, err := RiseSet(tromso, sun.Position, time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC), HorizonSun)
	require.NoError(t, err)
	assert.True(t, w.AlwaysUp, "midsummer sun above the arctic circle never sets")
	assert.True(t, w.Rise.IsZero())
	assert.False(t, w.Transit.IsZero(), "circumpolar objects still culminate")

	w, err = RiseSet(tromso, sun.Position, time.Date(2024, 12, 21, 0, 0, 0, 0, time.UTC), HorizonSun)
	require.NoError(t, err)
	assert.True(t, w.NeverUp, "polar night sun never rises")
}

func TestCircumpolarStar(t *testing.T) {
	polaris := func(time.Time) astro.SkyCoord {
		return astro.SkyCoord{RAdeg: 37.95, DecDeg: 89.26}
	}
	day := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	w, err := RiseSet(london, polaris, day, HorizonStandard)
	require.NoError(t, err)
	assert.True(t, w.AlwaysUp, "Polaris never sets from London")
	assert.InDelta(t, london.LatDeg, w.MaxElevation, 1.5, "pole star rides near the latitude")

	sydney := astro.Observer{LatDeg: -33.8688, LonDeg: 151.2093, Name: "Sydney"}
	w, err = RiseSet(sydney, polaris, day, HorizonStandard)
	require.NoError(t, err)
	assert.True(t, w.NeverUp, "Polaris never rises from Sydney")
}

func TestStarRiseSetSymmetry(t *testing.T) {
	// A fixed star's window straddles its transit symmetrically.
	sirius := func(time.Time) astro.SkyCoord {
		return astro.SkyCoord{RAdeg: 101.287, DecDeg: -16.716}
	}
	day := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)

	w, err := RiseSet(london, sirius, day, HorizonStandard)
	require.NoError(t, err)
	require.True(t, w.Valid)
	require.False(t, w.Rise.IsZero())
	require.False(t, w.Set.IsZero())

	if w.Set.After(w.Rise) {
		up := w.Transit.Sub(w.Rise)
		down := w.Set.Sub(w.Transit)
		assert.InDelta(t, up.Minutes(), down.Minutes(), 5, "transit should bisect the window")
	}
	// From London Sirius barely clears 21 degrees.
	assert.InDelta(t, 21.8, w.MaxElevation, 1.0)
}

func TestElevationMatchesCurve(t *testing.T) {
	at := time.Date(2024, time.June, 21, 12, 0, 0, 0, time.UTC)
	el := Elevation(london, sun.Position, at)
	assert.InDelta(t, 61.9, el, 0.5, "noon solstice sun elevation")
}

func TestElevationTier(t *testing.T) {
	cases := []struct {
		el   float64
		want Tier
	}{
		{-5, TierNone},
		{0, TierNone},
		{7, TierLow},
		{30, TierMedium},
		{80, TierHigh},
	}
	for _, tc := range cases {
		if got := ElevationTier(tc.el); got != tc.want {
			t.Errorf("ElevationTier(%v) = %v, want %v", tc.el, got, tc.want)
		}
	}
}

func TestRiseSetNilPosition(t *testing.T) {
	_, err := RiseSet(london, nil, time.Now(), HorizonSun)
	assert.ErrorIs(t, err, ErrInsufficientSamples)
}

func TestRefineCrossingAgainstLinear(t *testing.T) {
	// A synthetic linear elevation curve has an exactly computable
	// crossing; the polynomial refinement must reproduce it.
	hours := []float64{0, 0.5, 1, 1.5, 2}
	els := []float64{-2, -1, 0.5, 1.5, 2.5}

	h, err := refineCrossing(hours, els, 2, 0)
	require.NoError(t, err)
	// Between 0.5h (el -1) and 1h (el 0.5) the local fit crosses zero
	// a touch past 0.83h.
	assert.InDelta(t, 0.84, h, 0.05)
}

func TestHoursToDuration(t *testing.T) {
	if got := hoursToDuration(1.5); got != 90*time.Minute {
		t.Errorf("hoursToDuration(1.5) = %v, want 90m", got)
	}
	if got := hoursToDuration(0.25); math.Abs(got.Seconds()-900) > 1 {
		t.Errorf("hoursToDuration(0.25) = %v, want 15m", got)
	}
}
