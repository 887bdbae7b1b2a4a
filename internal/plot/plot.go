// Package plot renders a solution curve as a terminal line chart, or a
// blank titled grid when nothing is plotted. The renderer holds at most one
// curve: every draw replaces the previous chart wholesale.
package plot

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/odelab/internal/ode"
)

// DefaultTitle is the chart title shown when no equation has been solved.
const DefaultTitle = "Solution Plot"

type Renderer struct {
	width  int
	height int
	title  string
	sol    *ode.Solution
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{width: width, height: height, title: DefaultTitle}
}

// SetSize adjusts the chart dimensions (terminal resize).
func (r *Renderer) SetSize(width, height int) {
	if width > 10 {
		r.width = width
	}
	if height > 4 {
		r.height = height
	}
}

// Draw replaces the current curve with a new solution.
func (r *Renderer) Draw(title string, sol *ode.Solution) {
	r.title = title
	r.sol = sol
}

// Clear discards the curve and restores the default title and grid.
func (r *Renderer) Clear() {
	r.title = DefaultTitle
	r.sol = nil
}

// Curves reports how many curves are plotted (zero or one).
func (r *Renderer) Curves() int {
	if r.sol == nil {
		return 0
	}
	return 1
}

func (r *Renderer) Title() string { return r.title }

// View renders the chart. With no curve it draws an empty gridded frame so
// the plot area keeps its shape between solves.
func (r *Renderer) View() string {
	if r.sol == nil || r.sol.Len() == 0 {
		return r.blank()
	}

	graph := asciigraph.Plot(r.sol.Values,
		asciigraph.Height(r.height),
		asciigraph.Width(r.width),
		asciigraph.Caption(r.title),
	)

	t0 := r.sol.Times[0]
	tf := r.sol.Times[r.sol.Len()-1]
	axis := fmt.Sprintf("t: %.2f .. %.2f  (%d samples)", t0, tf, r.sol.Len())

	return graph + "\n" + axis
}

func (r *Renderer) blank() string {
	var b strings.Builder

	b.WriteString("┌" + strings.Repeat("─", r.width) + "┐\n")
	for row := 0; row < r.height; row++ {
		b.WriteString("│")
		for col := 0; col < r.width; col++ {
			if row%2 == 1 && col%8 == 4 {
				b.WriteString("·")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("│\n")
	}
	b.WriteString("└" + strings.Repeat("─", r.width) + "┘\n")
	b.WriteString(r.title)

	return b.String()
}
