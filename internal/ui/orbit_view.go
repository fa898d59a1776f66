package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/planet"
	"github.com/litescript/ls-almanac/internal/state"
)

// OrbitModel renders a top-down view of the solar system on the
// ecliptic plane, with radial distances log-compressed so Mercury and
// Neptune share one screen.
type OrbitModel struct {
	width  int
	height int
	solar  planet.Snapshot

	focusIdx  int // Index into solar.Bodies (-1 = Sun at origin)
	zoomLevel int // Index into orbitZoomLevels
	labelMode LabelMode
}

// Discrete zoom levels for clean stepping.
var orbitZoomLevels = []float64{0.5, 0.75, 1.0, 1.5, 2.0, 3.0}

// NewOrbitModel creates a new orbit view model.
func NewOrbitModel() OrbitModel {
	return OrbitModel{
		focusIdx:  -1,
		zoomLevel: 2, // 1.0x
		labelMode: LabelFocused,
	}
}

func (m OrbitModel) scale() float64 {
	if m.zoomLevel < 0 || m.zoomLevel >= len(orbitZoomLevels) {
		return 1.0
	}
	return orbitZoomLevels[m.zoomLevel]
}

// SetSize updates the viewport size.
func (m OrbitModel) SetSize(width, height int) OrbitModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData refreshes the view from a state snapshot.
func (m OrbitModel) UpdateData(snapshot state.Snapshot) OrbitModel {
	m.solar = snapshot.Solar
	if m.focusIdx >= len(m.solar.Bodies) {
		m.focusIdx = -1
	}
	return m
}

// Update handles input messages.
func (m OrbitModel) Update(msg tea.Msg) (OrbitModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "[":
			m.focusPrev()
		case "k", "]":
			m.focusNext()
		case "+", "=":
			if m.zoomLevel < len(orbitZoomLevels)-1 {
				m.zoomLevel++
			}
		case "-":
			if m.zoomLevel > 0 {
				m.zoomLevel--
			}
		case "0":
			m.zoomLevel = 2
		case "l":
			m.labelMode = (m.labelMode + 1) % 3
		}
	}
	return m, nil
}

func (m *OrbitModel) focusNext() {
	if len(m.solar.Bodies) == 0 {
		return
	}
	m.focusIdx++
	if m.focusIdx >= len(m.solar.Bodies) {
		m.focusIdx = -1 // Wrap to Sun
	}
	m.skipSunEntry(1)
}

func (m *OrbitModel) focusPrev() {
	if len(m.solar.Bodies) == 0 {
		return
	}
	m.focusIdx--
	if m.focusIdx < -1 {
		m.focusIdx = len(m.solar.Bodies) - 1
	}
	m.skipSunEntry(-1)
}

// skipSunEntry steps past the snapshot's Sun body: the Sun is focused
// through the sentinel index -1, not its body entry.
func (m *OrbitModel) skipSunEntry(dir int) {
	if m.focusIdx >= 0 && m.focusIdx < len(m.solar.Bodies) &&
		m.solar.Bodies[m.focusIdx].Kind == planet.BodySun {
		m.focusIdx += dir
		if m.focusIdx >= len(m.solar.Bodies) {
			m.focusIdx = -1
		}
		if m.focusIdx < -1 {
			m.focusIdx = len(m.solar.Bodies) - 1
		}
	}
}

// FocusedBody returns the focused body, or nil when the Sun is focused.
func (m OrbitModel) FocusedBody() *planet.Body {
	if m.focusIdx >= 0 && m.focusIdx < len(m.solar.Bodies) {
		return &m.solar.Bodies[m.focusIdx]
	}
	return nil
}

// View renders the orbit view.
func (m OrbitModel) View() string {
	if m.width < 40 || m.height < 10 {
		return "Terminal too small for orbit view"
	}

	canvas := m.buildCanvas()
	hud := m.renderHUD()

	return lipgloss.JoinVertical(lipgloss.Left, canvas, hud)
}

// orbitBodyPos tracks a body's screen position for label rendering.
type orbitBodyPos struct {
	x, y      int
	name      string
	isFocused bool
}

func (m OrbitModel) buildCanvas() string {
	// Reserve space for the HUD.
	canvasH := m.height - 4
	if canvasH < 5 {
		canvasH = 5
	}
	canvasW := m.width

	grid := make([][]rune, canvasH)
	for y := range grid {
		grid[y] = make([]rune, canvasW)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	originX := canvasW / 2
	originY := canvasH / 2

	// Map log10(30 AU + 1) ~ 1.5 display units to most of the half-width.
	maxDisplayR := float64(minInt(originX, originY*2)) * 0.9
	displayScale := maxDisplayR / 1.5 * m.scale()

	m.drawOrbitRings(grid, originX, originY, displayScale)

	var positions []orbitBodyPos
	for i, body := range m.solar.Bodies {
		if body.Kind == planet.BodySun {
			continue
		}

		proj := astro.ProjectEclipticTopDown(body.Pos)
		sx := originX + int(proj.X*displayScale)
		sy := originY - int(proj.Y*displayScale*0.5) // Character cells are ~2:1

		if sx < 0 || sx >= canvasW || sy < 0 || sy >= canvasH {
			continue
		}

		grid[sy][sx] = orbitGlyph(body.Class, i == m.focusIdx)
		positions = append(positions, orbitBodyPos{
			x:         sx,
			y:         sy,
			name:      body.Name,
			isFocused: i == m.focusIdx,
		})
	}

	// Sun last so a conjunction never hides it.
	if originX >= 0 && originX < canvasW && originY >= 0 && originY < canvasH {
		grid[originY][originX] = '☉'
		positions = append(positions, orbitBodyPos{
			x:         originX,
			y:         originY,
			name:      "Sun",
			isFocused: m.focusIdx == -1,
		})
	}

	m.renderLabels(grid, canvasW, canvasH, positions)

	return m.renderGrid(grid)
}

// drawOrbitRings marks each planet's mean orbit as a dotted circle.
func (m OrbitModel) drawOrbitRings(grid [][]rune, cx, cy int, displayScale float64) {
	for _, p := range planet.Planets {
		proj := astro.ProjectEclipticTopDown(astro.Vec3{X: p.Orbit.A})
		m.drawCircle(grid, cx, cy, proj.X*displayScale)
	}
}

func (m OrbitModel) drawCircle(grid [][]rune, cx, cy int, r float64) {
	if r < 1 {
		return
	}

	h := len(grid)
	w := len(grid[0])

	steps := int(2 * math.Pi * r)
	if steps < 8 {
		steps = 8
	}
	if steps > 360 {
		steps = 360
	}

	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(r*math.Cos(theta))
		y := cy - int(r*math.Sin(theta)*0.5)

		if x >= 0 && x < w && y >= 0 && y < h && grid[y][x] == ' ' {
			grid[y][x] = '·'
		}
	}
}

func (m OrbitModel) renderLabels(grid [][]rune, width, height int, positions []orbitBodyPos) {
	if m.labelMode == LabelNone {
		return
	}

	for _, pos := range positions {
		if m.labelMode == LabelFocused && !pos.isFocused {
			continue
		}

		labelX := pos.x + 2
		labelY := pos.y
		if labelY < 0 || labelY >= height || labelX >= width {
			continue
		}

		labelText := pos.name
		if pos.isFocused {
			labelText = "◄ " + pos.name
		}

		for i, r := range labelText {
			x := labelX + i
			if x >= width {
				break
			}
			// Labels may cross orbit rings but never other bodies.
			if grid[labelY][x] == ' ' || grid[labelY][x] == '·' {
				grid[labelY][x] = r
			}
		}
	}
}

func orbitGlyph(class planet.Class, focused bool) rune {
	if class == planet.ClassGiant {
		if focused {
			return '◉'
		}
		return '○'
	}
	if focused {
		return '●'
	}
	return '•'
}

func (m OrbitModel) renderGrid(grid [][]rune) string {
	var b strings.Builder

	ringStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	sunStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	innerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	giantStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	focusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("249"))

	for _, row := range grid {
		for _, ch := range row {
			var style lipgloss.Style
			switch ch {
			case ' ':
				b.WriteRune(ch)
				continue
			case '·':
				style = ringStyle
			case '☉':
				style = sunStyle
			case '•':
				style = innerStyle
			case '○':
				style = giantStyle
			case '●', '◉', '◄':
				style = focusStyle
			default:
				style = labelStyle
			}
			b.WriteString(style.Render(string(ch)))
		}
		b.WriteRune('\n')
	}

	return b.String()
}

func (m OrbitModel) renderHUD() string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	focused := m.FocusedBody()
	if focused != nil {
		b.WriteString(headerStyle.Render(fmt.Sprintf("◆ %s", focused.Name)))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Dist: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.3f AU", focused.DistanceAU())))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Light: "))
		b.WriteString(valueStyle.Render(astro.FormatLightTime(focused.LightTimeSec())))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Ecl Lon: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.1f°", focused.EclipticLonDeg())))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Ecl Lat: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.1f°", focused.EclipticLatDeg())))
		b.WriteString("  ")
	} else {
		b.WriteString(headerStyle.Render("☉ Sun"))
		b.WriteString("  ")
		b.WriteString(dimStyle.Render("(heliocentric origin)"))
		b.WriteString("\n")
	}

	labelName := "off"
	switch m.labelMode {
	case LabelFocused:
		labelName = "focus"
	case LabelAll:
		labelName = "all"
	}

	b.WriteString(dimStyle.Render("Zoom: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.2gx", m.scale())))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Labels: "))
	b.WriteString(valueStyle.Render(labelName))

	return b.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
