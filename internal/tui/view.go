package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/odelab/internal/config"
	"github.com/san-kum/odelab/internal/eqn"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	header = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	key    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
)

func (m Model) View() string {
	switch m.mode {
	case modeExamples:
		return m.viewExamples()
	case modeHelp:
		return m.viewHelp()
	}
	return m.viewMain()
}

func (m Model) viewMain() string {
	var b strings.Builder

	b.WriteString("\n  " + header.Render("odelab") + dim.Render("  first-order ODE workbench") + "\n\n")

	b.WriteString(m.fieldLine(fieldEquation, "equation "))
	b.WriteString(m.fieldLine(fieldInitial, "y(t0)    "))
	b.WriteString(m.fieldLine(fieldSpan, "t span   "))

	b.WriteString("  " + dim.Render("params   "))
	for i, name := range config.ParamNames {
		label := name + "="
		if m.focus == fieldParam0+i {
			b.WriteString(cyan.Render(label))
		} else {
			b.WriteString(dim.Render(label))
		}
		b.WriteString(m.inputs[fieldParam0+i].View() + "  ")
	}
	b.WriteString("\n\n")

	for _, line := range strings.Split(m.renderer.View(), "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("  " + red.Render(m.errMsg) + "\n")
	} else if m.status != "" {
		b.WriteString("  " + green.Render(m.status) + "\n")
	} else {
		b.WriteString("\n")
	}

	b.WriteString("\n  " +
		key.Render("enter") + dim.Render(" solve  ") +
		key.Render("tab") + dim.Render(" next field  ") +
		key.Render("ctrl+l") + dim.Render(" clear  ") +
		key.Render("ctrl+e") + dim.Render(" examples  ") +
		key.Render("f1") + dim.Render(" help  ") +
		key.Render("ctrl+c") + dim.Render(" quit") + "\n")

	return b.String()
}

func (m Model) fieldLine(field int, label string) string {
	style := dim
	if m.focus == field {
		style = cyan
	}
	return "  " + style.Render(label) + m.inputs[field].View() + "\n"
}

func (m Model) viewExamples() string {
	var b strings.Builder

	b.WriteString("\n  " + header.Render("examples") + "\n\n")
	for i, p := range config.Presets {
		if i == m.exCursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n",
				cyan.Render("▸"),
				white.Bold(true).Render(fmt.Sprintf("%-20s", p.Name)),
				yellow.Render(p.Equation)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n",
				dim.Render(fmt.Sprintf("%-20s", p.Name)),
				dim.Render(p.Equation)))
		}
	}

	b.WriteString("\n    " +
		key.Render("j/k") + dim.Render(" navigate  ") +
		key.Render("enter") + dim.Render(" load  ") +
		key.Render("esc") + dim.Render(" back") + "\n")

	return b.String()
}

func (m Model) viewHelp() string {
	var b strings.Builder

	b.WriteString("\n  " + header.Render("help") + "\n\n")
	b.WriteString("  " + white.Render("Enter an equation of the form  dy/dt = f(t, y)") + "\n\n")
	b.WriteString("  " + dim.Render("operators   + - * / ^ (also **), parentheses") + "\n")
	b.WriteString("  " + dim.Render("symbols     t, y and the parameters a, b, c, k") + "\n")
	b.WriteString("  " + dim.Render("functions   "+strings.Join(eqn.Functions(), " ")) + "\n\n")
	b.WriteString("  " + dim.Render("The time span is two comma-separated numbers, e.g. 0, 10.") + "\n")
	b.WriteString("  " + dim.Render("The solution is sampled at 1000 evenly spaced points.") + "\n")
	b.WriteString("\n    " + key.Render("any key") + dim.Render(" back") + "\n")

	return b.String()
}
