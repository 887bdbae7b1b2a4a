// Package tui implements the interactive equation workbench: an input panel
// for the equation, initial condition, time span, and parameters, with the
// solution chart embedded below it.
//
// Solving runs synchronously on the event loop; the interface has exactly
// two modes, idle and solving, so a solve can never be queued behind
// another.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/odelab/internal/config"
	"github.com/san-kum/odelab/internal/eqn"
	"github.com/san-kum/odelab/internal/integrators"
	"github.com/san-kum/odelab/internal/plot"
	"github.com/san-kum/odelab/internal/solve"
)

// Input panel fields, in focus order. The parameter fields follow
// config.ParamNames.
const (
	fieldEquation = iota
	fieldInitial
	fieldSpan
	fieldParam0
)

const (
	modeEdit = iota
	modeExamples
	modeHelp
)

const (
	chartWidth  = 70
	chartHeight = 14
)

type Model struct {
	mode     int
	inputs   []textinput.Model
	focus    int
	renderer *plot.Renderer
	solver   *solve.Solver
	errMsg   string
	status   string
	exCursor int
	width    int
}

func NewApp() Model {
	cfg := config.DefaultConfig()

	inputs := make([]textinput.Model, fieldParam0+len(config.ParamNames))

	eq := textinput.New()
	eq.SetValue(cfg.Equation)
	eq.CharLimit = 256
	eq.Width = 50
	eq.Focus()
	inputs[fieldEquation] = eq

	ic := textinput.New()
	ic.SetValue(cfg.Initial)
	ic.CharLimit = 32
	ic.Width = 12
	inputs[fieldInitial] = ic

	span := textinput.New()
	span.SetValue(cfg.Span)
	span.CharLimit = 64
	span.Width = 12
	inputs[fieldSpan] = span

	for i, name := range config.ParamNames {
		p := textinput.New()
		p.SetValue(cfg.Params[name])
		p.CharLimit = 32
		p.Width = 8
		inputs[fieldParam0+i] = p
	}

	return Model{
		mode:     modeEdit,
		inputs:   inputs,
		focus:    fieldEquation,
		renderer: plot.NewRenderer(chartWidth, chartHeight),
		solver:   solve.New(integrators.NewRK45()),
		width:    80,
	}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > 20 {
			m.renderer.SetSize(min(msg.Width-10, 100), chartHeight)
		}
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeExamples:
			return m.examplesKey(msg)
		case modeHelp:
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			m.mode = modeEdit
			return m, nil
		default:
			return m.editKey(msg)
		}
	}
	return m, nil
}

func (m Model) editKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "down":
		m.setFocus((m.focus + 1) % len(m.inputs))
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
		return m, nil
	case "enter":
		m.solveCurrent()
		return m, nil
	case "ctrl+l":
		m.clearPlot()
		return m, nil
	case "ctrl+e":
		m.mode = modeExamples
		m.exCursor = 0
		return m, nil
	case "f1":
		m.mode = modeHelp
		return m, nil
	case "esc":
		m.errMsg = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) examplesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.exCursor > 0 {
			m.exCursor--
		}
	case "down", "j":
		if m.exCursor < len(config.Presets)-1 {
			m.exCursor++
		}
	case "enter", " ":
		m.loadExample(config.Presets[m.exCursor])
		m.mode = modeEdit
	case "esc", "ctrl+e":
		m.mode = modeEdit
	}
	return m, nil
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// loadExample overwrites the input fields with the preset's values. It never
// solves; the user still presses enter.
func (m *Model) loadExample(p config.Preset) {
	m.inputs[fieldEquation].SetValue(p.Equation)
	m.inputs[fieldInitial].SetValue(p.Initial)
	m.inputs[fieldSpan].SetValue(p.Span)
	for i, name := range config.ParamNames {
		if val, ok := p.Params[name]; ok {
			m.inputs[fieldParam0+i].SetValue(val)
		}
	}
	m.status = "loaded example: " + p.Name
	m.errMsg = ""
}

// paramValues reads the parameter fields. Blank fields are skipped so their
// symbols stay unbound; a non-numeric value is an input error.
func (m *Model) paramValues() (map[string]float64, error) {
	values := make(map[string]float64)
	for i, name := range config.ParamNames {
		text := strings.TrimSpace(m.inputs[fieldParam0+i].Value())
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("parameter %s must be a number, got %q", name, text)
		}
		values[name] = v
	}
	return values, nil
}

// solveCurrent runs the full pipeline: read fields, parse, integrate, draw.
// Any failure lands in the error banner and leaves the previous chart
// untouched.
func (m *Model) solveCurrent() {
	m.errMsg = ""
	m.status = ""

	t0, tf, err := solve.ParseSpan(m.inputs[fieldSpan].Value())
	if err != nil {
		m.errMsg = "Input error: " + err.Error()
		return
	}
	y0, err := solve.ParseInitial(m.inputs[fieldInitial].Value())
	if err != nil {
		m.errMsg = "Input error: " + err.Error()
		return
	}
	values, err := m.paramValues()
	if err != nil {
		m.errMsg = "Input error: " + err.Error()
		return
	}

	eqText := m.inputs[fieldEquation].Value()
	f, err := eqn.Compile(eqText, config.ParamNames, values)
	if err != nil {
		m.errMsg = "Equation parsing error: " + err.Error()
		return
	}

	start := time.Now()
	sol, err := m.solver.Solve(context.Background(), solve.Problem{
		RHS: f,
		T0:  t0, Tf: tf, Y0: y0,
	})
	if err != nil {
		m.errMsg = "Solution error: " + err.Error()
		return
	}

	m.renderer.Draw(eqText, sol)
	_, yFinal := sol.Final()
	m.status = fmt.Sprintf("solved in %v  y(%g) = %.6g", time.Since(start).Round(time.Millisecond), tf, yFinal)
}

func (m *Model) clearPlot() {
	m.renderer.Clear()
	m.status = ""
	m.errMsg = ""
}

// Run starts the interactive application.
func Run() error {
	_, err := tea.NewProgram(NewApp(), tea.WithAltScreen()).Run()
	return err
}
