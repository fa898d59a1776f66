// Package almanac computes rise, transit and set times for celestial
// bodies as seen by a ground observer. Elevation is sampled over a civil
// day and each horizon crossing is refined by fitting an interpolating
// polynomial through the nearby samples and solving for its root;
// culminations come from the polynomial's extremum.
package almanac

import (
	"errors"
	"fmt"
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/interp"
)

// Horizon thresholds in degrees of true elevation. The solar value folds
// in mean refraction plus the solar semidiameter; the lunar value also
// accounts for the Moon's parallax.
const (
	HorizonSun           = -0.8333
	HorizonMoon          = 0.125
	HorizonStandard      = -0.5667
	TwilightCivil        = -6.0
	TwilightNautical     = -12.0
	TwilightAstronomical = -18.0
)

// Sampling cadence for the daily elevation curve.
const (
	sampleStep  = 30 * time.Minute
	sampleCount = 49 // inclusive of both midnights
)

// ErrInsufficientSamples is returned when the elevation curve cannot be
// built for the requested day.
var ErrInsufficientSamples = errors.New("insufficient samples for rise/set calculation")

// PositionFunc returns a body's apparent equatorial coordinates at a
// civil time.
type PositionFunc func(t time.Time) astro.SkyCoord

// Window represents a rise-transit-set cycle for an object on one day.
type Window struct {
	Rise         time.Time // Time object rises above the threshold
	Transit      time.Time // Time of culmination
	Set          time.Time // Time object sets below the threshold
	MaxElevation float64   // Peak elevation in degrees
	Valid        bool      // Whether any part of the window was found
	AlwaysUp     bool      // Object never sets (circumpolar)
	NeverUp      bool      // Object never rises
}

// elevationCurve samples a body's elevation at a fixed cadence starting
// at local midnight of the given day.
func elevationCurve(obs astro.Observer, pos PositionFunc, day time.Time) (start time.Time, hours, els []float64) {
	start = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	hours = make([]float64, sampleCount)
	els = make([]float64, sampleCount)
	for i := 0; i < sampleCount; i++ {
		t := start.Add(time.Duration(i) * sampleStep)
		horiz := astro.EquatorialToHorizontal(pos(t), obs, t)
		hours[i] = t.Sub(start).Hours()
		els[i] = horiz.ElDeg
	}
	return start, hours, els
}

// refineCrossing fits a polynomial through the samples bracketing index i
// and solves for the instant the elevation equals the threshold. The
// returned value is in hours past the curve's start.
func refineCrossing(hours, els []float64, i int, threshold float64) (float64, error) {
	lo, hi := i-2, i+2
	if lo < 0 {
		lo = 0
	}
	if hi > len(hours) {
		hi = len(hours)
	}

	ys := make([]float64, hi-lo)
	for j := range ys {
		ys[j] = els[lo+j] - threshold
	}

	tbl, err := interp.NewTable(hours[lo:hi], ys)
	if err != nil {
		return 0, fmt.Errorf("crossing fit: %w", err)
	}
	return tbl.Root(hours[i-1], hours[i])
}

// refineTransit fits a polynomial around the discrete maximum and locates
// the culmination from the fit's extremum. It falls back to the sampled
// maximum when the extremum cannot be bracketed.
func refineTransit(hours, els []float64, maxIdx int) (hour, el float64) {
	hour, el = hours[maxIdx], els[maxIdx]
	if maxIdx == 0 || maxIdx == len(hours)-1 {
		return hour, el
	}

	lo, hi := maxIdx-2, maxIdx+3
	if lo < 0 {
		lo = 0
	}
	if hi > len(hours) {
		hi = len(hours)
	}

	tbl, err := interp.NewTable(hours[lo:hi], els[lo:hi])
	if err != nil {
		return hour, el
	}
	x, err := tbl.Extremum(hours[maxIdx-1], hours[maxIdx+1])
	if err != nil {
		return hour, el
	}
	y, err := tbl.Eval(x)
	if err != nil || y < el {
		return hour, el
	}
	return x, y
}

// RiseSet computes the visibility window of a body over the civil day
// containing the given time, against an elevation threshold.
func RiseSet(obs astro.Observer, pos PositionFunc, day time.Time, threshold float64) (Window, error) {
	if pos == nil {
		return Window{}, ErrInsufficientSamples
	}
	start, hours, els := elevationCurve(obs, pos, day)

	minEl, maxEl := els[0], els[0]
	maxIdx := 0
	for i, el := range els {
		if el < minEl {
			minEl = el
		}
		if el > maxEl {
			maxEl = el
			maxIdx = i
		}
	}

	// Circumpolar and never-up objects have no crossings to solve for.
	if minEl > threshold {
		h, el := refineTransit(hours, els, maxIdx)
		return Window{
			Transit:      start.Add(hoursToDuration(h)),
			MaxElevation: el,
			Valid:        true,
			AlwaysUp:     true,
		}, nil
	}
	if maxEl < threshold {
		return Window{Valid: true, NeverUp: true}, nil
	}

	var w Window
	for i := 1; i < len(els); i++ {
		up := els[i-1] <= threshold && els[i] > threshold
		down := els[i-1] > threshold && els[i] <= threshold
		if !up && !down {
			continue
		}
		h, err := refineCrossing(hours, els, i, threshold)
		if err != nil {
			continue
		}
		at := start.Add(hoursToDuration(h))
		if up && w.Rise.IsZero() {
			w.Rise = at
		}
		if down && w.Set.IsZero() {
			w.Set = at
		}
	}

	th, tel := refineTransit(hours, els, maxIdx)
	w.Transit = start.Add(hoursToDuration(th))
	w.MaxElevation = tel
	w.Valid = !w.Rise.IsZero() || !w.Set.IsZero()
	return w, nil
}

// Elevation computes the current elevation of a body at a given time.
func Elevation(obs astro.Observer, pos PositionFunc, t time.Time) float64 {
	horiz := astro.EquatorialToHorizontal(pos(t), obs, t)
	return horiz.ElDeg
}

// Tier categorizes elevation for UI display.
type Tier int

const (
	TierNone   Tier = iota // Below horizon
	TierLow                // 0-15 degrees
	TierMedium             // 15-45 degrees
	TierHigh               // 45+ degrees
)

// ElevationTier returns the tier for a given elevation.
func ElevationTier(elDeg float64) Tier {
	switch {
	case elDeg <= 0:
		return TierNone
	case elDeg < 15:
		return TierLow
	case elDeg < 45:
		return TierMedium
	default:
		return TierHigh
	}
}

func hoursToDuration(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour)).Round(time.Second)
}
