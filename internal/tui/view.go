package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	ballStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	railStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	restStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	heldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// View renders the track, the stats panel and the position history.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("SPRINGSTEP") + "\n")
	b.WriteString(m.renderTrack() + "\n")
	b.WriteString(m.renderStats() + "\n")
	b.WriteString(m.renderHistory())
	if m.lastErr != nil {
		b.WriteString("\n" + errorStyle.Render(m.lastErr.Error()))
	}
	b.WriteString(helpStyle.Render("drag ball with mouse · space pause · tab preset · r reset · q quit"))
	return b.String()
}

func (m Model) renderTrack() string {
	width := m.width
	if width < 10 {
		width = 10
	}

	restCol := m.screenX(m.state.Spring.Rest)
	ballCol := m.screenX(m.state.Position())

	// The ball wins a cell it shares with the rest marker.
	var row strings.Builder
	for col := 0; col < width; col++ {
		switch {
		case col == ballCol && m.state.Held:
			row.WriteString(heldStyle.Render("●"))
		case col == ballCol:
			row.WriteString(ballStyle.Render("●"))
		case col == restCol:
			row.WriteString(restStyle.Render("┊"))
		default:
			row.WriteString(railStyle.Render("─"))
		}
	}
	return row.String()
}

// lagSteps reports how many fixed steps the simulation trails the wall
// clock, clamped at zero: the absorbed extra step can leave StepCount
// one ahead of the wall-clock quotient, which is not lag.
func (m Model) lagSteps() int64 {
	lag := m.state.WallClock/m.eng.StepMillis() - m.state.StepCount
	if lag < 0 {
		return 0
	}
	return lag
}

func (m Model) renderStats() string {
	s := m.state
	lag := m.lagSteps()

	rows := []struct {
		label string
		value string
	}{
		{"position", fmt.Sprintf("%.2f", s.Position())},
		{"velocity", fmt.Sprintf("%.3f", s.Body.Velocity)},
		{"steps", fmt.Sprintf("%d", s.StepCount)},
		{"wall clock", fmt.Sprintf("%.1fs", float64(s.WallClock)/1000)},
		{"lag", fmt.Sprintf("%d steps", lag)},
		{"energy", fmt.Sprintf("%.2f", s.Energy())},
		{"mode", m.modeLabel()},
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(labelStyle.Render(r.label) + valueStyle.Render(r.value) + "\n")
	}
	return b.String()
}

func (m Model) modeLabel() string {
	switch {
	case m.lastErr != nil:
		return errorStyle.Render("FAULTED")
	case m.state.Held:
		return heldStyle.Render("HELD")
	case !m.running:
		return "PAUSED"
	default:
		return "FREE"
	}
}

func (m Model) renderHistory() string {
	if len(m.history) < 2 {
		return ""
	}

	width := m.width - 10
	if width > historyCapacity {
		width = historyCapacity
	}
	if width < 10 {
		width = 10
	}
	height := m.height - 16
	if height < 4 {
		height = 4
	}
	if height > 10 {
		height = 10
	}

	series := m.history
	if len(series) > width {
		series = series[len(series)-width:]
	}
	// asciigraph cannot scale a flat series.
	flat := true
	for _, v := range series {
		if math.Abs(v-series[0]) > 1e-9 {
			flat = false
			break
		}
	}
	if flat {
		return ""
	}

	graph := asciigraph.Plot(series, asciigraph.Height(height), asciigraph.Width(width))
	return graphStyle.Render(graph) + "\n"
}
