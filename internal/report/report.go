// Package report renders day plans for headless use: JSON export and
// plain-text tables.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/state"
)

// PlanExport is the JSON-serializable representation of a day plan.
type PlanExport struct {
	Date       string         `json:"date"`
	Site       string         `json:"site"`
	Latitude   float64        `json:"latitude"`
	Longitude  float64        `json:"longitude"`
	ComputedAt time.Time      `json:"computed_at"`
	Sun        WindowExport   `json:"sun"`
	Twilight   TwilightExport `json:"twilight"`
	Moon       WindowExport   `json:"moon"`
	MoonPhase  PhaseExport    `json:"moon_phase"`
	Planets    []WindowExport `json:"planets"`
}

// WindowExport is a JSON-friendly visibility window.
type WindowExport struct {
	Body         string `json:"body,omitempty"`
	Rise         string `json:"rise,omitempty"`
	Transit      string `json:"transit,omitempty"`
	Set          string `json:"set,omitempty"`
	MaxElevation string `json:"max_elevation,omitempty"`
	AlwaysUp     bool   `json:"always_up,omitempty"`
	NeverUp      bool   `json:"never_up,omitempty"`
}

// TwilightExport holds the dawn/dusk pairs for each threshold.
type TwilightExport struct {
	CivilDawn    string `json:"civil_dawn,omitempty"`
	CivilDusk    string `json:"civil_dusk,omitempty"`
	NauticalDawn string `json:"nautical_dawn,omitempty"`
	NauticalDusk string `json:"nautical_dusk,omitempty"`
	AstroDawn    string `json:"astro_dawn,omitempty"`
	AstroDusk    string `json:"astro_dusk,omitempty"`
}

// PhaseExport is a JSON-friendly lunar phase.
type PhaseExport struct {
	Name         string  `json:"name"`
	Illumination float64 `json:"illumination"`
	AgeDays      float64 `json:"age_days"`
	Waxing       bool    `json:"waxing"`
}

// ExportPlan converts a state snapshot to the exportable format.
func ExportPlan(snap state.Snapshot) *PlanExport {
	if snap.Plan == nil {
		return &PlanExport{ComputedAt: snap.LastCompute}
	}
	plan := snap.Plan

	export := &PlanExport{
		Date:       plan.Date.Format("2006-01-02"),
		Site:       snap.Observer.Name,
		Latitude:   snap.Observer.LatDeg,
		Longitude:  snap.Observer.LonDeg,
		ComputedAt: snap.LastCompute,
		Sun:        exportWindow("Sun", plan.Sun),
		Moon:       exportWindow("Moon", plan.Moon),
		Twilight: TwilightExport{
			CivilDawn:    clock(plan.Dawn(almanac.TwilightCivil)),
			CivilDusk:    clock(plan.Dusk(almanac.TwilightCivil)),
			NauticalDawn: clock(plan.Dawn(almanac.TwilightNautical)),
			NauticalDusk: clock(plan.Dusk(almanac.TwilightNautical)),
			AstroDawn:    clock(plan.Dawn(almanac.TwilightAstronomical)),
			AstroDusk:    clock(plan.Dusk(almanac.TwilightAstronomical)),
		},
		MoonPhase: PhaseExport{
			Name:         plan.MoonPhase.Name,
			Illumination: plan.MoonPhase.Illumination,
			AgeDays:      plan.MoonPhase.AgeDays,
			Waxing:       plan.MoonPhase.Waxing,
		},
	}

	for _, pw := range plan.Planets {
		export.Planets = append(export.Planets, exportWindow(pw.Name, pw.Window))
	}
	return export
}

func exportWindow(body string, w almanac.Window) WindowExport {
	e := WindowExport{
		Body:     body,
		Rise:     clock(w.Rise),
		Transit:  clock(w.Transit),
		Set:      clock(w.Set),
		AlwaysUp: w.AlwaysUp,
		NeverUp:  w.NeverUp,
	}
	if !w.NeverUp {
		e.MaxElevation = fmt.Sprintf("%.1f", w.MaxElevation)
	}
	return e
}

// WriteJSON writes the export as indented JSON.
func (p *PlanExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// SummaryRow represents one row in the summary table.
type SummaryRow struct {
	Body    string
	Rise    string
	Transit string
	Set     string
	MaxEl   string
	Note    string
}

// GenerateSummaryRows flattens a day plan into table rows.
func GenerateSummaryRows(snap state.Snapshot) []SummaryRow {
	if snap.Plan == nil {
		return nil
	}
	plan := snap.Plan

	rows := []SummaryRow{
		windowRow("Sun", plan.Sun),
		windowRow("Moon", plan.Moon),
	}
	rows[1].Note = fmt.Sprintf("%s %.0f%%", plan.MoonPhase.Name, plan.MoonPhase.Illumination*100)

	for _, pw := range plan.Planets {
		rows = append(rows, windowRow(pw.Name, pw.Window))
	}
	return rows
}

func windowRow(body string, w almanac.Window) SummaryRow {
	row := SummaryRow{
		Body:    body,
		Rise:    orDash(clock(w.Rise)),
		Transit: orDash(clock(w.Transit)),
		Set:     orDash(clock(w.Set)),
		MaxEl:   fmt.Sprintf("%5.1f°", w.MaxElevation),
	}
	switch {
	case w.AlwaysUp:
		row.Note = "always up"
	case w.NeverUp:
		row.Note = "never up"
		row.MaxEl = "    -"
	}
	return row
}

// WriteSummaryTable writes a text table for the day plan.
func WriteSummaryTable(w io.Writer, snap state.Snapshot) {
	site := snap.Observer.Name
	if site == "" {
		site = fmt.Sprintf("%.4f, %.4f", snap.Observer.LatDeg, snap.Observer.LonDeg)
	}

	date := "-"
	if snap.Plan != nil {
		date = snap.Plan.Date.Format("2006-01-02")
	}

	fmt.Fprintf(w, "Almanac for %s @ %s\n", site, date)
	fmt.Fprintln(w, strings.Repeat("─", 64))

	rows := GenerateSummaryRows(snap)
	if len(rows) == 0 {
		fmt.Fprintln(w, "No plan computed")
		return
	}

	fmt.Fprintf(w, "%-10s %-8s %-8s %-8s %-8s %s\n",
		"Body", "Rise", "Transit", "Set", "Max El", "Note")
	fmt.Fprintln(w, strings.Repeat("─", 64))
	for _, r := range rows {
		fmt.Fprintf(w, "%-10s %-8s %-8s %-8s %-8s %s\n",
			r.Body, r.Rise, r.Transit, r.Set, r.MaxEl, r.Note)
	}

	if snap.Plan != nil {
		fmt.Fprintf(w, "\nTwilight  civil %s-%s  nautical %s-%s  astronomical %s-%s\n",
			orDash(clock(snap.Plan.Dawn(almanac.TwilightCivil))),
			orDash(clock(snap.Plan.Dusk(almanac.TwilightCivil))),
			orDash(clock(snap.Plan.Dawn(almanac.TwilightNautical))),
			orDash(clock(snap.Plan.Dusk(almanac.TwilightNautical))),
			orDash(clock(snap.Plan.Dawn(almanac.TwilightAstronomical))),
			orDash(clock(snap.Plan.Dusk(almanac.TwilightAstronomical))))
	}
}

// WriteEvents writes the most recent sky events.
func WriteEvents(w io.Writer, events []state.Event, limit int) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No events recorded")
		return
	}
	if len(events) > limit {
		events = events[len(events)-limit:]
	}
	for _, e := range events {
		fmt.Fprintf(w, "%s  %-7s %s\n", e.Timestamp.Format("15:04:05"), e.Type, e.Body)
	}
}

// clock formats an event time as HH:MM, or empty for the zero time.
func clock(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("15:04")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
