package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/moon"
	"github.com/litescript/ls-almanac/internal/state"
)

func samplePlan() *almanac.DayPlan {
	day := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	return &almanac.DayPlan{
		Date: day,
		Sun: almanac.Window{
			Rise:         day.Add(8 * time.Hour),
			Transit:      day.Add(12 * time.Hour),
			Set:          day.Add(16*time.Hour + 20*time.Minute),
			MaxElevation: 17.3,
			Valid:        true,
		},
		CivilTwilight: almanac.Window{
			Rise:  day.Add(7*time.Hour + 20*time.Minute),
			Set:   day.Add(17 * time.Hour),
			Valid: true,
		},
		Moon: almanac.Window{
			Rise:         day.Add(10 * time.Hour),
			Set:          day.Add(21 * time.Hour),
			MaxElevation: 40,
			Valid:        true,
		},
		MoonPhase: moon.Phase{Name: "Waxing Crescent", Illumination: 0.21, Waxing: true},
		Planets: []almanac.PlanetWindow{
			{Name: "Venus", Code: "VEN", Window: almanac.Window{
				Rise: day.Add(5 * time.Hour), Set: day.Add(14 * time.Hour), MaxElevation: 15, Valid: true,
			}},
			{Name: "Saturn", Code: "SAT", Window: almanac.Window{NeverUp: true, Valid: true}},
		},
	}
}

func sampleSnapshot() state.Snapshot {
	return state.Snapshot{
		Observer:    astro.Observer{LatDeg: 51.5074, LonDeg: -0.1278, Name: "London"},
		Plan:        samplePlan(),
		LastCompute: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

func TestExportPlanJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportPlan(sampleSnapshot()).WriteJSON(&buf))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "2024-01-15", decoded["date"])
	assert.Equal(t, "London", decoded["site"])

	sun, ok := decoded["sun"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "08:00", sun["rise"])
	assert.Equal(t, "16:20", sun["set"])

	phase, ok := decoded["moon_phase"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Waxing Crescent", phase["name"])

	planets, ok := decoded["planets"].([]any)
	require.True(t, ok)
	assert.Len(t, planets, 2)
}

func TestExportPlanEmptySnapshot(t *testing.T) {
	export := ExportPlan(state.Snapshot{})
	assert.Empty(t, export.Date)
	assert.Empty(t, export.Planets)
}

func TestWriteSummaryTable(t *testing.T) {
	var buf bytes.Buffer
	WriteSummaryTable(&buf, sampleSnapshot())
	out := buf.String()

	assert.Contains(t, out, "Almanac for London @ 2024-01-15")
	assert.Contains(t, out, "Sun")
	assert.Contains(t, out, "08:00")
	assert.Contains(t, out, "Waxing Crescent 21%")
	assert.Contains(t, out, "never up", "Saturn row should be flagged")
	assert.Contains(t, out, "civil 07:20-17:00")
}

func TestWriteSummaryTableNoPlan(t *testing.T) {
	var buf bytes.Buffer
	WriteSummaryTable(&buf, state.Snapshot{Observer: astro.Observer{LatDeg: 1, LonDeg: 2}})
	assert.Contains(t, buf.String(), "No plan computed")
}

func TestWriteEvents(t *testing.T) {
	events := []state.Event{
		{Type: state.EventRise, Timestamp: time.Date(2024, 1, 15, 7, 59, 0, 0, time.UTC), Body: "Sun"},
		{Type: state.EventSet, Timestamp: time.Date(2024, 1, 15, 16, 21, 0, 0, time.UTC), Body: "Sun"},
	}

	var buf bytes.Buffer
	WriteEvents(&buf, events, 10)
	out := buf.String()
	assert.Contains(t, out, "RISE")
	assert.Contains(t, out, "07:59:00")

	buf.Reset()
	WriteEvents(&buf, events, 1)
	assert.NotContains(t, buf.String(), "RISE", "limit keeps only the newest events")
	assert.Contains(t, buf.String(), "SET")

	buf.Reset()
	WriteEvents(&buf, nil, 5)
	assert.Contains(t, buf.String(), "No events recorded")
}
