package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/state"
)

const (
	// Field of view in degrees
	fovAz = 120.0
	fovEl = 60.0

	// Animation
	animDuration  = 400 * time.Millisecond
	animFrameRate = 30 * time.Millisecond

	// Body glyphs
	glyphSun         = '☉'
	glyphMoon        = '☾'
	glyphPlanet      = '✦'
	glyphBodyFocused = '◆'

	// Body colors
	colorSun         = "220"
	colorMoon        = "252"
	colorPlanet      = "#d0c8ff"
	colorBodyFocused = "229"

	// Star glyphs by magnitude
	glyphStarBright = '✶'
	glyphStarMedium = '✸'
	glyphStarDim    = '·'

	// Star colors (grayscale to not compete with solar system bodies)
	colorStarBright = "255"
	colorStarMedium = "250"
	colorStarDim    = "244"
)

// LabelMode controls how body labels are displayed.
type LabelMode int

const (
	LabelNone    LabelMode = iota // No labels
	LabelFocused                  // Only focused body
	LabelAll                      // All bodies
)

// SkyViewModel renders the sky dome with the tracked bodies.
type SkyViewModel struct {
	width  int
	height int

	// Camera position (center of view)
	camAz float64
	camEl float64

	// Animation state
	animating   bool
	animStartAz float64
	animStartEl float64
	animTargAz  float64
	animTargEl  float64
	animStart   time.Time

	focusIdx int
	bodies   []state.BodyStatus
	observer astro.Observer

	labelMode LabelMode
	stars     []astro.Star
}

// NewSkyViewModel creates a new sky view model.
func NewSkyViewModel() SkyViewModel {
	return SkyViewModel{
		camAz:     180,
		camEl:     45,
		labelMode: LabelFocused,
		stars:     astro.BrightStars(),
	}
}

// SetSize updates the viewport size.
func (m SkyViewModel) SetSize(width, height int) SkyViewModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates with new data snapshot.
func (m SkyViewModel) UpdateData(snapshot state.Snapshot) SkyViewModel {
	m.bodies = snapshot.Bodies
	m.observer = snapshot.Observer

	if m.focusIdx >= len(m.bodies) {
		m.focusIdx = 0
	}

	// If not animating, snap camera to the focused body
	if !m.animating && len(m.bodies) > 0 && m.focusIdx < len(m.bodies) {
		coord := m.bodies[m.focusIdx].Coord
		m.camAz = coord.AzDeg
		m.camEl = coord.ElDeg
	}

	return m
}

// animTickMsg is sent during animation
type animTickMsg time.Time

func animTick() tea.Cmd {
	return tea.Tick(animFrameRate, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

// Update handles messages.
func (m SkyViewModel) Update(msg tea.Msg) (SkyViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			return m.focusPrev()
		case "down", "j":
			return m.focusNext()
		case "l":
			m.labelMode = (m.labelMode + 1) % 3
		}

	case animTickMsg:
		if m.animating {
			return m.updateAnimation()
		}
	}

	return m, nil
}

func (m SkyViewModel) focusNext() (SkyViewModel, tea.Cmd) {
	if len(m.bodies) == 0 {
		return m, nil
	}
	m.focusIdx = (m.focusIdx + 1) % len(m.bodies)
	return m.startAnimation()
}

func (m SkyViewModel) focusPrev() (SkyViewModel, tea.Cmd) {
	if len(m.bodies) == 0 {
		return m, nil
	}
	m.focusIdx--
	if m.focusIdx < 0 {
		m.focusIdx = len(m.bodies) - 1
	}
	return m.startAnimation()
}

func (m SkyViewModel) startAnimation() (SkyViewModel, tea.Cmd) {
	if len(m.bodies) == 0 || m.focusIdx >= len(m.bodies) {
		return m, nil
	}

	coord := m.bodies[m.focusIdx].Coord
	m.animating = true
	m.animStartAz = m.camAz
	m.animStartEl = m.camEl
	m.animTargAz = coord.AzDeg
	m.animTargEl = coord.ElDeg
	m.animStart = time.Now()

	return m, animTick()
}

func (m SkyViewModel) updateAnimation() (SkyViewModel, tea.Cmd) {
	elapsed := time.Since(m.animStart)
	t := float64(elapsed) / float64(animDuration)

	if t >= 1.0 {
		m.animating = false
		m.camAz = m.animTargAz
		m.camEl = m.animTargEl
		return m, nil
	}

	// Ease-out cubic
	t = 1 - math.Pow(1-t, 3)

	m.camAz = lerpAngle(m.animStartAz, m.animTargAz, t)
	m.camEl = lerp(m.animStartEl, m.animTargEl, t)

	return m, animTick()
}

// View renders the sky view.
func (m SkyViewModel) View() string {
	if m.width < 20 || m.height < 10 {
		return "Sky view requires larger terminal"
	}

	viewHeight := m.height - 4
	canvas := m.renderSkyCanvas(m.width, viewHeight)

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(canvas)
	b.WriteString("\n")
	b.WriteString(m.renderStatus())

	return b.String()
}

func (m SkyViewModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorPlanet))

	title := titleStyle.Render("Sky View")

	var labelStr string
	switch m.labelMode {
	case LabelNone:
		labelStr = dimStyle.Render("Labels: off")
	case LabelFocused:
		labelStr = accentStyle.Render("Labels: focus")
	case LabelAll:
		labelStr = accentStyle.Render("Labels: all")
	}

	compass := dimStyle.Render(fmt.Sprintf("Az:%.0f° El:%.0f°", m.camAz, m.camEl))

	return fmt.Sprintf("%s | %s | %s", title, labelStr, compass)
}

func (m SkyViewModel) renderStatus() string {
	if len(m.bodies) == 0 {
		return "No bodies tracked"
	}
	if m.focusIdx >= len(m.bodies) {
		return ""
	}

	body := m.bodies[m.focusIdx]
	coord := body.Coord

	line := fmt.Sprintf(">>> %s | Az:%.1f° El:%.1f°", body.Name, coord.AzDeg, coord.ElDeg)
	if coord.RangeKm > 0 {
		line += " | " + astro.FormatLightTime(astro.LightTimeFromAU(astro.KmToAU(coord.RangeKm)))
	}
	if !body.RiseToday.IsZero() || !body.SetToday.IsZero() {
		line += fmt.Sprintf(" | rise %s set %s",
			clockOrDash(body.RiseToday), clockOrDash(body.SetToday))
	}

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	return accentStyle.Render(line)
}

// bodyPos tracks body position for label rendering
type bodyPos struct {
	x, y       int
	name       string
	isFocused  bool
	labelStart int
	labelEnd   int
}

func (m SkyViewModel) renderSkyCanvas(width, height int) string {
	canvas := make([][]rune, height)
	colors := make([][]lipgloss.Color, height)
	for y := 0; y < height; y++ {
		canvas[y] = make([]rune, width)
		colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			canvas[y][x] = ' '
			colors[y][x] = "236"
		}
	}

	horizonY := height - 2
	now := time.Now()

	// Draw catalog stars first so bodies overwrite them.
	for _, star := range m.stars {
		eq := astro.SkyCoord{RAdeg: star.RA.Deg(), DecDeg: star.Dec.Deg()}
		horiz := astro.EquatorialToHorizontal(eq, m.observer, now)
		if horiz.ElDeg <= 0 {
			continue
		}

		x, y, visible := m.projectToScreen(horiz.AzDeg, horiz.ElDeg, width, height)
		if !visible || x < 0 || x >= width || y < 0 || y >= horizonY {
			continue
		}

		glyph, color := starGlyph(star.Mag)
		canvas[y][x] = glyph
		colors[y][x] = color
	}

	// Horizon line
	for x := 0; x < width; x++ {
		canvas[horizonY][x] = '─'
		colors[horizonY][x] = "60"
	}

	m.drawCardinal(canvas, colors, width, height, "N", 0)
	m.drawCardinal(canvas, colors, width, height, "E", 90)
	m.drawCardinal(canvas, colors, width, height, "S", 180)
	m.drawCardinal(canvas, colors, width, height, "W", 270)

	var positions []bodyPos

	for i, body := range m.bodies {
		coord := body.Coord
		if coord.ElDeg <= 0 {
			continue
		}

		x, y, visible := m.projectToScreen(coord.AzDeg, coord.ElDeg, width, height)
		if !visible || x < 0 || x >= width || y < 0 || y >= horizonY {
			continue
		}

		isFocused := i == m.focusIdx
		sym, color := bodyGlyph(body.Code)
		if isFocused {
			sym = glyphBodyFocused
			color = colorBodyFocused
		}

		canvas[y][x] = sym
		colors[y][x] = lipgloss.Color(color)

		positions = append(positions, bodyPos{
			x:         x,
			y:         y,
			name:      body.Name,
			isFocused: isFocused,
		})
	}

	m.renderLabels(canvas, colors, width, horizonY, positions)

	// Observer marker at bottom center
	stationX := width / 2
	stationY := height - 1
	if stationY >= 0 && stationX >= 0 && stationX < width {
		canvas[stationY][stationX] = '▲'
		colors[stationY][stationX] = "46"
	}

	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			style := lipgloss.NewStyle().Foreground(colors[y][x])
			b.WriteString(style.Render(string(canvas[y][x])))
		}
		if y < height-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderLabels draws body labels on the canvas based on label mode.
// Focused labels take priority in overlapping regions.
func (m SkyViewModel) renderLabels(canvas [][]rune, colors [][]lipgloss.Color, width, horizonY int, positions []bodyPos) {
	if m.labelMode == LabelNone || len(positions) == 0 {
		return
	}

	for i := range positions {
		pos := &positions[i]
		pos.labelStart = pos.x + 2
		labelLen := len(pos.name)
		if pos.isFocused {
			labelLen += 2
		}
		pos.labelEnd = pos.labelStart + labelLen
	}

	focusedClaims := make(map[int]map[int]bool)
	for _, pos := range positions {
		if !pos.isFocused {
			continue
		}
		if focusedClaims[pos.y] == nil {
			focusedClaims[pos.y] = make(map[int]bool)
		}
		for x := pos.labelStart; x < pos.labelEnd; x++ {
			focusedClaims[pos.y][x] = true
		}
	}

	for _, pos := range positions {
		showLabel := m.labelMode == LabelAll || pos.isFocused
		if !showLabel {
			continue
		}

		labelColor := lipgloss.Color(colorPlanet)
		labelText := pos.name
		if pos.isFocused {
			labelColor = colorBodyFocused
			labelText = "◄ " + pos.name
		}

		for i, r := range []rune(labelText) {
			x := pos.labelStart + i
			if x < 0 || x >= width || pos.y < 0 || pos.y >= horizonY {
				continue
			}
			if !pos.isFocused && focusedClaims[pos.y][x] {
				continue
			}
			canvas[pos.y][x] = r
			colors[pos.y][x] = labelColor
		}
	}
}

// bodyGlyph returns the glyph and color for a tracked body code.
func bodyGlyph(code string) (rune, string) {
	switch code {
	case "SUN":
		return glyphSun, colorSun
	case "MOON":
		return glyphMoon, colorMoon
	default:
		return glyphPlanet, colorPlanet
	}
}

// starGlyph returns the glyph and color for a star magnitude.
func starGlyph(mag float64) (rune, lipgloss.Color) {
	switch {
	case mag < 0.5:
		return glyphStarBright, colorStarBright
	case mag < 1.5:
		return glyphStarMedium, colorStarMedium
	default:
		return glyphStarDim, colorStarDim
	}
}

func (m SkyViewModel) drawCardinal(canvas [][]rune, colors [][]lipgloss.Color, width, height int, label string, az float64) {
	x, _, visible := m.projectToScreen(az, 0, width, height)
	if !visible {
		return
	}
	y := height - 2

	if x >= 0 && x < width && y >= 0 && y < height {
		canvas[y][x] = rune(label[0])
		colors[y][x] = "252"
	}
}

// projectToScreen converts az/el to screen coordinates relative to camera
func (m SkyViewModel) projectToScreen(az, el float64, width, height int) (int, int, bool) {
	dAz := normalizeAngle(az - m.camAz)
	dEl := el - m.camEl

	if dAz < -fovAz/2 || dAz > fovAz/2 {
		return 0, 0, false
	}
	if dEl < -fovEl/2 || dEl > fovEl/2 {
		return 0, 0, false
	}

	horizonY := height - 2
	x := int((dAz + fovAz/2) / fovAz * float64(width))
	y := int((fovEl/2 - dEl) / fovEl * float64(horizonY))

	return x, y, true
}

// normalizeAngle wraps angle to -180..+180 range
func normalizeAngle(a float64) float64 {
	for a > 180 {
		a -= 360
	}
	for a < -180 {
		a += 360
	}
	return a
}

// lerpAngle interpolates between angles, taking shortest path
func lerpAngle(a, b, t float64) float64 {
	diff := normalizeAngle(b - a)
	return a + diff*t
}

// lerp linear interpolation
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Init returns nil cmd
func (m SkyViewModel) Init() tea.Cmd {
	return nil
}
