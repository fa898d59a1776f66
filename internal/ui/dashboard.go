package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/state"
)

// Styles for the dashboard
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("237"))

	upStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("46"))

	downStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// DashboardModel is the almanac table view.
type DashboardModel struct {
	width    int
	height   int
	cursor   int
	snapshot state.Snapshot
	lastErr  error
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel() DashboardModel {
	return DashboardModel{}
}

// Init implements the Bubble Tea model interface.
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the viewport size.
func (m DashboardModel) SetSize(width, height int) DashboardModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with new data.
func (m DashboardModel) UpdateData(snapshot state.Snapshot) DashboardModel {
	m.snapshot = snapshot
	if m.cursor >= len(snapshot.Bodies) {
		m.cursor = 0
	}
	return m
}

// SetError sets the last error for display.
func (m DashboardModel) SetError(err error) DashboardModel {
	m.lastErr = err
	return m
}

// SelectedBody returns the body under the cursor, if any.
func (m DashboardModel) SelectedBody() *state.BodyStatus {
	if m.cursor < 0 || m.cursor >= len(m.snapshot.Bodies) {
		return nil
	}
	return &m.snapshot.Bodies[m.cursor]
}

// Update handles messages.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		n := len(m.snapshot.Bodies)
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < n-1 {
				m.cursor++
			}
		case "home":
			m.cursor = 0
		case "end":
			if n > 0 {
				m.cursor = n - 1
			}
		}
	}
	return m, nil
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	var b strings.Builder

	if m.lastErr != nil {
		b.WriteString(errorStyle.Render("Error: " + m.lastErr.Error()))
		b.WriteString("\n\n")
	}

	if m.snapshot.Plan == nil && m.lastErr == nil {
		b.WriteString("Computing almanac...\n")
		return b.String()
	}

	b.WriteString(m.renderSunMoonSummary())
	b.WriteString("\n")
	b.WriteString(m.renderBodiesTable())
	b.WriteString("\n")
	b.WriteString(m.renderEvents())

	return b.String()
}

func (m DashboardModel) renderSunMoonSummary() string {
	plan := m.snapshot.Plan
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("Today"))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("  Sun   %s  transit %s  %s   %s\n",
		eventClock("rise", plan.Sun.Rise),
		clockOrDash(plan.Sun.Transit),
		eventClock("set", plan.Sun.Set),
		windowNote(plan.Sun)))
	b.WriteString(fmt.Sprintf("  Moon  %s  %s   %s %.0f%% lit\n",
		eventClock("rise", plan.Moon.Rise),
		eventClock("set", plan.Moon.Set),
		plan.MoonPhase.Name,
		plan.MoonPhase.Illumination*100))
	b.WriteString(dim.Render(fmt.Sprintf("  Twilight  civil %s-%s  nautical %s-%s  astro %s-%s",
		clockOrDash(plan.Dawn(almanac.TwilightCivil)), clockOrDash(plan.Dusk(almanac.TwilightCivil)),
		clockOrDash(plan.Dawn(almanac.TwilightNautical)), clockOrDash(plan.Dusk(almanac.TwilightNautical)),
		clockOrDash(plan.Dawn(almanac.TwilightAstronomical)), clockOrDash(plan.Dusk(almanac.TwilightAstronomical)))))
	b.WriteString("\n")

	return b.String()
}

func (m DashboardModel) renderBodiesTable() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Sky Now"))
	b.WriteString("\n")

	header := fmt.Sprintf("  %-9s %7s %7s %7s %7s  %s",
		"Body", "Az", "El", "Rise", "Set", "Status")
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Render(header))
	b.WriteString("\n")

	for i, body := range m.snapshot.Bodies {
		line := fmt.Sprintf("  %-9s %6.1f° %6.1f° %7s %7s  %s",
			body.Name,
			body.Coord.AzDeg,
			body.Coord.ElDeg,
			clockOrDash(body.RiseToday),
			clockOrDash(body.SetToday),
			statusText(body))

		style := rowStyle
		if i == m.cursor {
			style = selectedRowStyle
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

func (m DashboardModel) renderEvents() string {
	events := m.snapshot.Events
	if len(events) == 0 {
		return ""
	}
	if len(events) > 5 {
		events = events[len(events)-5:]
	}

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("Events"))
	b.WriteString("\n")
	for _, e := range events {
		b.WriteString(dim.Render(fmt.Sprintf("  %s  %-7s %s",
			e.Timestamp.Format("15:04:05"), e.Type, e.Body)))
		b.WriteString("\n")
	}
	return b.String()
}

func statusText(body state.BodyStatus) string {
	if !body.Up {
		return downStyle.Render("below horizon")
	}
	switch body.Tier {
	case almanac.TierHigh:
		return upStyle.Render("high")
	case almanac.TierMedium:
		return upStyle.Render("up")
	default:
		return upStyle.Render("low")
	}
}

func eventClock(label string, t time.Time) string {
	if t.IsZero() {
		return label + " --:--"
	}
	return label + " " + t.Format("15:04")
}

func clockOrDash(t time.Time) string {
	if t.IsZero() {
		return "--:--"
	}
	return t.Format("15:04")
}

func windowNote(w almanac.Window) string {
	switch {
	case w.AlwaysUp:
		return "always up"
	case w.NeverUp:
		return "never up"
	default:
		return fmt.Sprintf("max %.1f°", w.MaxElevation)
	}
}
