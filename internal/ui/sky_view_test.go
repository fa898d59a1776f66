package ui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSkyViewFocusCycling(t *testing.T) {
	m := NewSkyViewModel().SetSize(100, 30).UpdateData(testSnapshot())

	if m.focusIdx != 0 {
		t.Fatalf("initial focus = %d, want 0", m.focusIdx)
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if m.focusIdx != 1 {
		t.Errorf("after j, focus = %d, want 1", m.focusIdx)
	}
	if cmd == nil {
		t.Error("focus change should start camera animation")
	}
	if !m.animating {
		t.Error("animating flag not set")
	}

	// Wrap backwards from 0.
	m.focusIdx = 0
	m.animating = false
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if m.focusIdx != 2 {
		t.Errorf("after k from 0, focus = %d, want 2", m.focusIdx)
	}
}

func TestSkyViewCameraSnapsToFocus(t *testing.T) {
	snap := testSnapshot()
	m := NewSkyViewModel().SetSize(100, 30).UpdateData(snap)

	want := snap.Bodies[0].Coord
	if m.camAz != want.AzDeg || m.camEl != want.ElDeg {
		t.Errorf("camera = (%.1f, %.1f), want (%.1f, %.1f)",
			m.camAz, m.camEl, want.AzDeg, want.ElDeg)
	}
}

func TestSkyViewRendersFocusedBody(t *testing.T) {
	m := NewSkyViewModel().SetSize(100, 30).UpdateData(testSnapshot())
	view := m.View()

	// Focused body name appears in the status line and as a label.
	if !strings.Contains(view, "Sun") {
		t.Error("focused body name missing from view")
	}
	if !strings.Contains(view, "Az:") {
		t.Error("status line missing")
	}
}

func TestProjectToScreen(t *testing.T) {
	m := NewSkyViewModel().SetSize(100, 30)
	m.camAz = 180
	m.camEl = 30

	// Dead center of the view.
	x, y, visible := m.projectToScreen(180, 30, 100, 30)
	if !visible {
		t.Fatal("center point not visible")
	}
	if x != 50 {
		t.Errorf("center x = %d, want 50", x)
	}
	if y != 14 {
		t.Errorf("center y = %d, want 14", y)
	}

	// Outside the field of view.
	if _, _, visible := m.projectToScreen(0, 30, 100, 30); visible {
		t.Error("point 180° behind camera should not be visible")
	}
	if _, _, visible := m.projectToScreen(180, 85, 100, 30); visible {
		t.Error("point far above view should not be visible")
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{190, -170},
		{-190, 170},
		{360, 0},
		{-360, 0},
	}
	for _, tt := range tests {
		if got := normalizeAngle(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("normalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLerpAngleShortestPath(t *testing.T) {
	// 350° to 10° should pass through 0°, not 180°.
	if got := lerpAngle(350, 10, 0.5); math.Abs(normalizeAngle(got-0)) > 1e-9 {
		t.Errorf("lerpAngle(350, 10, 0.5) = %v, want 0 (mod 360)", got)
	}
	if got := lerp(10, 20, 0.25); got != 12.5 {
		t.Errorf("lerp = %v, want 12.5", got)
	}
}

func TestBodyGlyph(t *testing.T) {
	if g, _ := bodyGlyph("SUN"); g != glyphSun {
		t.Errorf("SUN glyph = %c", g)
	}
	if g, _ := bodyGlyph("MOON"); g != glyphMoon {
		t.Errorf("MOON glyph = %c", g)
	}
	if g, _ := bodyGlyph("JUPITER"); g != glyphPlanet {
		t.Errorf("planet glyph = %c", g)
	}
}
