package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/odelab/internal/config"
)

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+l":
			msg = tea.KeyMsg{Type: tea.KeyCtrlL}
		case "ctrl+e":
			msg = tea.KeyMsg{Type: tea.KeyCtrlE}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "f1":
			msg = tea.KeyMsg{Type: tea.KeyF1}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func setField(m *Model, field int, value string) {
	m.inputs[field].SetValue(value)
}

func TestSolve_Defaults(t *testing.T) {
	m := press(t, NewApp(), "enter")

	if m.errMsg != "" {
		t.Fatalf("unexpected error: %s", m.errMsg)
	}
	if m.renderer.Curves() != 1 {
		t.Errorf("expected 1 curve, got %d", m.renderer.Curves())
	}
	if !strings.Contains(m.status, "solved") {
		t.Errorf("missing solve status, got %q", m.status)
	}
}

func TestSolve_MissingEquals(t *testing.T) {
	m := NewApp()
	setField(&m, fieldEquation, "dy/dt -a*y")
	m = press(t, m, "enter")

	if !strings.Contains(m.errMsg, "Equation parsing error") {
		t.Errorf("expected parse error, got %q", m.errMsg)
	}
	if m.renderer.Curves() != 0 {
		t.Error("failed solve must not draw a curve")
	}
}

func TestSolve_BadSpan(t *testing.T) {
	m := NewApp()
	setField(&m, fieldSpan, "0 to 10")
	m = press(t, m, "enter")

	if !strings.Contains(m.errMsg, "Input error") {
		t.Errorf("expected input error, got %q", m.errMsg)
	}
}

func TestSolve_BadParam(t *testing.T) {
	m := NewApp()
	setField(&m, fieldParam0, "fast")
	m = press(t, m, "enter")

	if !strings.Contains(m.errMsg, "parameter a") {
		t.Errorf("expected parameter error, got %q", m.errMsg)
	}
}

func TestSolve_ErrorKeepsPreviousCurve(t *testing.T) {
	m := press(t, NewApp(), "enter")
	if m.renderer.Curves() != 1 {
		t.Fatal("setup solve failed")
	}

	setField(&m, fieldSpan, "bogus")
	m = press(t, m, "enter")

	if m.errMsg == "" {
		t.Fatal("expected an error")
	}
	if m.renderer.Curves() != 1 {
		t.Error("error wiped the previous curve")
	}
}

func TestSolve_ParamChangeChangesCurve(t *testing.T) {
	m := press(t, NewApp(), "enter")
	first := m.status

	setField(&m, fieldParam0, "2.0") // a
	m = press(t, m, "enter")

	if m.errMsg != "" {
		t.Fatalf("unexpected error: %s", m.errMsg)
	}
	if m.status == first {
		t.Error("changing a parameter did not change the solution")
	}
}

func TestClearPlot(t *testing.T) {
	m := press(t, NewApp(), "enter", "ctrl+l")

	if m.renderer.Curves() != 0 {
		t.Errorf("expected 0 curves after clear, got %d", m.renderer.Curves())
	}
	if m.status != "" || m.errMsg != "" {
		t.Error("clear must reset status and error")
	}
}

func TestExamples_LoadPopulatesWithoutSolving(t *testing.T) {
	m := press(t, NewApp(), "ctrl+e")
	if m.mode != modeExamples {
		t.Fatal("ctrl+e did not open examples")
	}

	// second entry: Harmonic Oscillator
	m = press(t, m, "down", "enter")

	if m.mode != modeEdit {
		t.Error("loading an example must return to the editor")
	}
	want := config.Presets[1]
	if got := m.inputs[fieldEquation].Value(); got != want.Equation {
		t.Errorf("equation: got %q, want %q", got, want.Equation)
	}
	if got := m.inputs[fieldInitial].Value(); got != want.Initial {
		t.Errorf("initial: got %q, want %q", got, want.Initial)
	}
	if got := m.inputs[fieldSpan].Value(); got != want.Span {
		t.Errorf("span: got %q, want %q", got, want.Span)
	}
	if m.renderer.Curves() != 0 {
		t.Error("loading an example must not solve")
	}
}

func TestExamples_Escape(t *testing.T) {
	m := press(t, NewApp(), "ctrl+e", "esc")
	if m.mode != modeEdit {
		t.Error("esc did not close examples")
	}
}

func TestHelp_AnyKeyCloses(t *testing.T) {
	m := press(t, NewApp(), "f1")
	if m.mode != modeHelp {
		t.Fatal("f1 did not open help")
	}
	m = press(t, m, "x")
	if m.mode != modeEdit {
		t.Error("key did not close help")
	}
}

func TestEscClearsError(t *testing.T) {
	m := NewApp()
	setField(&m, fieldSpan, "bogus")
	m = press(t, m, "enter")
	if m.errMsg == "" {
		t.Fatal("expected an error")
	}

	m = press(t, m, "esc")
	if m.errMsg != "" {
		t.Error("esc did not clear the error banner")
	}
}

func TestFocusCycle(t *testing.T) {
	m := NewApp()
	n := len(m.inputs)

	for i := 0; i < n; i++ {
		m = press(t, m, "tab")
	}
	if m.focus != fieldEquation {
		t.Errorf("tab x%d should wrap to equation, got field %d", n, m.focus)
	}

	m = press(t, m, "shift+tab")
	if m.focus != n-1 {
		t.Errorf("shift+tab should wrap to last field, got %d", m.focus)
	}
}

func TestView_ShowsErrorBanner(t *testing.T) {
	m := NewApp()
	setField(&m, fieldSpan, "bogus")
	m = press(t, m, "enter")

	if !strings.Contains(m.View(), "Input error") {
		t.Error("view missing error banner")
	}
}

func TestView_Examples(t *testing.T) {
	m := press(t, NewApp(), "ctrl+e")
	view := m.View()
	for _, p := range config.Presets {
		if !strings.Contains(view, p.Name) {
			t.Errorf("examples view missing %q", p.Name)
		}
	}
}
